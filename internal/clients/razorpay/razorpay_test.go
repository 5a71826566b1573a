package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signPayload(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	const secret = "test_key_secret"
	sig := signPayload("order_123", "pay_456", secret)

	assert.True(t, VerifySignature("order_123", "pay_456", sig, secret))

	// any single-field tamper must fail
	assert.False(t, VerifySignature("order_124", "pay_456", sig, secret))
	assert.False(t, VerifySignature("order_123", "pay_457", sig, secret))
	assert.False(t, VerifySignature("order_123", "pay_456", sig, "other_secret"))
	assert.False(t, VerifySignature("order_123", "pay_456", sig[:len(sig)-1]+"0", secret))
}

func TestVerifySignatureEmptyInputs(t *testing.T) {
	assert.False(t, VerifySignature("", "pay", "sig", "s"))
	assert.False(t, VerifySignature("order", "", "sig", "s"))
	assert.False(t, VerifySignature("order", "pay", "", "s"))
}

func TestCreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key_id", user)
		assert.Equal(t, "key_secret", pass)

		var req orderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(10000), req.Amount)
		assert.Equal(t, "INR", req.Currency)
		assert.Equal(t, "r_1_123456", req.Receipt)

		json.NewEncoder(w).Encode(Order{
			ID:       "order_abc",
			Amount:   req.Amount,
			Currency: req.Currency,
			Receipt:  req.Receipt,
			Status:   "created",
		})
	}))
	defer srv.Close()

	c := NewWithBaseURL("key_id", "key_secret", srv.URL)
	order, err := c.CreateOrder(context.Background(), 10000, "INR", "r_1_123456")
	require.NoError(t, err)
	assert.Equal(t, "order_abc", order.ID)
	assert.Equal(t, int64(10000), order.Amount)
}

func TestCreateOrderGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"amount exceeds maximum"}}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL("key_id", "key_secret", srv.URL)
	_, err := c.CreateOrder(context.Background(), 1, "INR", "r_1_1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount exceeds maximum")
}

func TestCreateOrderMissingKeys(t *testing.T) {
	c := New("", "")
	_, err := c.CreateOrder(context.Background(), 100, "INR", "r")
	assert.Error(t, err)
}
