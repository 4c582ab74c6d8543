package foodflex

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/olowojude/Food-Flex/internal/model"
)

// CheckoutResponse is what a successful POST /orders/checkout/ returns: the
// created PENDING order and its pickup QR code as a base64 PNG.
type CheckoutResponse struct {
	Message      string      `json:"message"`
	Order        model.Order `json:"order"`
	QRCodeBase64 string      `json:"qr_code_base64"`
}

// Checkout converts the server-side cart into an order and debits credit.
// Not idempotent: callers must prevent duplicate submission themselves.
func (c *Client) Checkout(ctx context.Context) (*CheckoutResponse, error) {
	var resp CheckoutResponse
	if err := c.do(ctx, http.MethodPost, "/orders/checkout/", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// OrderPage is one page of the order listing.
type OrderPage struct {
	Count    int                  `json:"count"`
	Next     *string              `json:"next"`
	Previous *string              `json:"previous"`
	Results  []model.OrderSummary `json:"results"`
}

// OrderQuery filters the order listing.
type OrderQuery struct {
	Status string
	Page   int
}

func (q OrderQuery) values() url.Values {
	v := url.Values{}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	return v
}

// Orders lists the caller's own orders (buyer or seller; the backend scopes
// by role).
func (c *Client) Orders(ctx context.Context, q OrderQuery) (*OrderPage, error) {
	var page OrderPage
	if err := c.do(ctx, http.MethodGet, "/orders/", q.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// AllOrders is the admin-wide listing.
func (c *Client) AllOrders(ctx context.Context, q OrderQuery) (*OrderPage, error) {
	var page OrderPage
	if err := c.do(ctx, http.MethodGet, "/orders/all/", q.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) Order(ctx context.Context, orderID int64) (*model.Order, error) {
	var o model.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d/", orderID), nil, nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// orderEnvelope wraps seller order transitions: message plus updated order.
type orderEnvelope struct {
	Message string      `json:"message"`
	Order   model.Order `json:"order"`
}

func (c *Client) ConfirmOrder(ctx context.Context, orderID int64) (*model.Order, error) {
	var env orderEnvelope
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/confirm/", orderID), nil, nil, &env); err != nil {
		return nil, err
	}
	return &env.Order, nil
}

func (c *Client) CompleteOrder(ctx context.Context, orderID int64) (*model.Order, error) {
	var env orderEnvelope
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/complete/", orderID), nil, nil, &env); err != nil {
		return nil, err
	}
	return &env.Order, nil
}

// VerifyQR resolves a scanned QR token to the seller's PENDING order.
func (c *Client) VerifyQR(ctx context.Context, qrToken string) (*model.Order, error) {
	body := map[string]string{"qr_code_token": qrToken}
	var env orderEnvelope
	if err := c.do(ctx, http.MethodPost, "/orders/verify-qr/", nil, body, &env); err != nil {
		return nil, err
	}
	return &env.Order, nil
}

// SaveQRCode stores a hosted image URL for the order's QR code.
func (c *Client) SaveQRCode(ctx context.Context, orderID int64, imageURL string) error {
	body := map[string]string{"qr_code_image": imageURL}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/orders/%d/qr-code/", orderID), nil, body, nil)
}
