package model

import "time"

// Order lifecycle as driven by the backend. The client only ever creates
// PENDING orders via checkout; the rest are seller transitions.
const (
	OrderPending   = "PENDING"
	OrderConfirmed = "CONFIRMED"
	OrderCompleted = "COMPLETED"
	OrderCancelled = "CANCELLED"
)

// OrderItem is a priced snapshot of a product at order time.
type OrderItem struct {
	ID           int64  `json:"id"`
	Product      int64  `json:"product"`
	ProductName  string `json:"product_name"`
	ProductPrice Money  `json:"product_price"`
	Quantity     int    `json:"quantity"`
	Subtotal     Money  `json:"subtotal"`
}

// Order is the detail representation from /orders/{id}/ and checkout.
type Order struct {
	ID          int64       `json:"id"`
	OrderNumber string      `json:"order_number"`
	Buyer       *User       `json:"buyer,omitempty"`
	Seller      *User       `json:"seller,omitempty"`
	TotalAmount Money       `json:"total_amount"`
	Status      string      `json:"status"`
	QRCodeToken string      `json:"qr_code_token,omitempty"`
	QRCodeImage string      `json:"qr_code_image,omitempty"`
	Items       []OrderItem `json:"items"`
	Notes       string      `json:"notes,omitempty"`
	CreatedAt   *time.Time  `json:"created_at,omitempty"`
	ConfirmedAt *time.Time  `json:"confirmed_at,omitempty"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
}

// OrderSummary is the lighter list representation from /orders/.
type OrderSummary struct {
	ID          int64      `json:"id"`
	OrderNumber string     `json:"order_number"`
	Buyer       int64      `json:"buyer"`
	BuyerName   string     `json:"buyer_name,omitempty"`
	Seller      int64      `json:"seller"`
	SellerName  string     `json:"seller_name,omitempty"`
	TotalAmount Money      `json:"total_amount"`
	Status      string     `json:"status"`
	ItemsCount  int        `json:"items_count"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}
