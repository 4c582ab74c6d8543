package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line of the server-side cart, joined with its product.
type CartItem struct {
	ID         int64      `json:"id"`
	Product    Product    `json:"product"`
	Quantity   int        `json:"quantity"`
	TotalPrice Money      `json:"total_price"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}

// Cart is the snapshot returned by GET /orders/cart/ and by every cart
// mutation. The client never patches it locally; it is replaced wholesale.
type Cart struct {
	ID         int64      `json:"id"`
	User       int64      `json:"user"`
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"total_items"`
	Subtotal   Money      `json:"subtotal"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// Item finds a line by its id.
func (c *Cart) Item(itemID int64) *CartItem {
	if c == nil {
		return nil
	}
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

// Validate checks the snapshot against the server's own bookkeeping:
// subtotal must equal the sum of price*quantity and total_items the sum of
// quantities. A mismatch means the response cannot be trusted.
func (c *Cart) Validate() error {
	if c == nil {
		return fmt.Errorf("nil cart")
	}
	sum := decimal.Zero
	count := 0
	for _, it := range c.Items {
		if it.Quantity < 1 {
			return fmt.Errorf("cart item %d has quantity %d", it.ID, it.Quantity)
		}
		sum = sum.Add(it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		count += it.Quantity
	}
	if !sum.Equal(c.Subtotal) {
		return fmt.Errorf("cart subtotal mismatch: reported %s, computed %s", c.Subtotal, sum)
	}
	if count != c.TotalItems {
		return fmt.Errorf("cart total_items mismatch: reported %d, computed %d", c.TotalItems, count)
	}
	return nil
}
