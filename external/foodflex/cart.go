package foodflex

import (
	"context"
	"fmt"
	"net/http"

	"github.com/olowojude/Food-Flex/internal/model"
)

// cartEnvelope wraps every cart mutation response: a human message plus the
// full updated cart.
type cartEnvelope struct {
	Message string     `json:"message"`
	Cart    model.Cart `json:"cart"`
}

func (c *Client) Cart(ctx context.Context) (*model.Cart, error) {
	var cart model.Cart
	if err := c.do(ctx, http.MethodGet, "/orders/cart/", nil, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddToCart adds quantity units of a product. Stock validation happens
// server-side; a stale local stock figure never blocks the request.
func (c *Client) AddToCart(ctx context.Context, productID int64, quantity int) (*model.Cart, error) {
	body := map[string]any{"product_id": productID, "quantity": quantity}
	var env cartEnvelope
	if err := c.do(ctx, http.MethodPost, "/orders/cart/add/", nil, body, &env); err != nil {
		return nil, err
	}
	return &env.Cart, nil
}

func (c *Client) UpdateCartItem(ctx context.Context, itemID int64, quantity int) (*model.Cart, error) {
	body := map[string]int{"quantity": quantity}
	var env cartEnvelope
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/orders/cart/items/%d/", itemID), nil, body, &env); err != nil {
		return nil, err
	}
	return &env.Cart, nil
}

func (c *Client) RemoveCartItem(ctx context.Context, itemID int64) (*model.Cart, error) {
	var env cartEnvelope
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/orders/cart/items/%d/remove/", itemID), nil, nil, &env); err != nil {
		return nil, err
	}
	return &env.Cart, nil
}

// ClearCart empties the cart. The backend answers with a bare message, so
// callers re-fetch to converge on server truth.
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/orders/cart/clear/", nil, nil, nil)
}
