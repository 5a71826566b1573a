package dto

const (
	PaymentMethodRazorpay = "razorpay"
	PaymentMethodWallet   = "wallet"
)

type CreateOrderRequest struct {
	CourseID uint  `json:"course_id" validate:"required"`
	Amount   int64 `json:"amount" validate:"required,gt=0"` // paise
}

type CreateOrderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// EnrollRequest is a tagged union on PaymentMethod: the razorpay fields
// are required for gateway payments, WalletTransactionID for wallet ones.
type EnrollRequest struct {
	PaymentMethod       string `json:"payment_method" validate:"required,oneof=razorpay wallet"`
	RazorpayPaymentID   string `json:"razorpay_payment_id,omitempty"`
	RazorpayOrderID     string `json:"razorpay_order_id,omitempty"`
	RazorpaySignature   string `json:"razorpay_signature,omitempty"`
	WalletTransactionID string `json:"wallet_transaction_id,omitempty"`
}
