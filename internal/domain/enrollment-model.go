package domain

import "time"

// Enrollment links a student to a purchased course. PaymentID doubles
// as the idempotency key: replaying the same payment must not enroll
// twice or bump the course counter again.
type Enrollment struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	StudentID           uint      `gorm:"index;not null" json:"student_id"`
	CourseID            uint      `gorm:"index;not null" json:"course_id"`
	Course              *Course   `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	PaymentID           string    `gorm:"uniqueIndex;not null" json:"payment_id"`
	OrderID             string    `json:"order_id"`
	WalletTransactionID string    `json:"wallet_transaction_id,omitempty"`
	Signature           string    `json:"-"`
	Amount              int64     `gorm:"not null" json:"amount"`
	Currency            string    `gorm:"not null;default:INR" json:"currency"`
	EnrolledAt          time.Time `gorm:"not null" json:"enrolled_at"`
}
