package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.razorpay.com/v1"

type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type orderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type apiError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

type Client struct {
	keyID     string
	keySecret string
	baseURL   string
	http      *http.Client
}

func New(keyID, keySecret string) *Client {
	return &Client{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   defaultBaseURL,
		http: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// NewWithBaseURL points the client at a different API host. Used by
// tests to talk to a local stub.
func NewWithBaseURL(keyID, keySecret, baseURL string) *Client {
	c := New(keyID, keySecret)
	c.baseURL = baseURL
	return c
}

// CreateOrder reserves a payment against the gateway before capture.
// Endpoint: POST /v1/orders (basic auth with the key pair).
func (c *Client) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*Order, error) {
	if c.keyID == "" || c.keySecret == "" {
		return nil, errors.New("missing razorpay key pair")
	}

	payload, err := json.Marshal(orderRequest{
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return nil, err
	}

	url := c.baseURL + "/orders"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e apiError
		if json.Unmarshal(body, &e) == nil && e.Error.Description != "" {
			return nil, fmt.Errorf("razorpay error (%d): %s", resp.StatusCode, e.Error.Description)
		}
		return nil, fmt.Errorf("razorpay http error (%d): %s", resp.StatusCode, string(body))
	}

	var out Order
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifySignature recomputes the payment signature the gateway sends
// back after checkout: HMAC-SHA256 over "orderID|paymentID" keyed by
// the key secret. Comparison is constant-time.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifySignature(orderID, paymentID, signature, c.keySecret)
}

func VerifySignature(orderID, paymentID, signature, secret string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
