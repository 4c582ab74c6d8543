package foodflex

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/olowojude/Food-Flex/internal/model"
)

// ProductQuery mirrors the listing endpoint's filter surface.
type ProductQuery struct {
	Search   string
	Category string // category slug
	MinPrice *model.Money
	MaxPrice *model.Money
	InStock  bool
	Featured bool
	Ordering string // price, -price, name, -name, created_at, ..., random
	Page     int
	PageSize int
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.MinPrice != nil {
		v.Set("min_price", q.MinPrice.String())
	}
	if q.MaxPrice != nil {
		v.Set("max_price", q.MaxPrice.String())
	}
	if q.InStock {
		v.Set("in_stock", "true")
	}
	if q.Featured {
		v.Set("is_featured", "true")
	}
	if q.Ordering != "" {
		v.Set("ordering", q.Ordering)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(q.PageSize))
	}
	return v
}

// ProductPage is one page of catalog results.
type ProductPage struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []model.Product `json:"results"`
}

func (c *Client) Products(ctx context.Context, q ProductQuery) (*ProductPage, error) {
	var page ProductPage
	if err := c.do(ctx, http.MethodGet, "/shop/products/", q.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) Product(ctx context.Context, slug string) (*model.Product, error) {
	var p model.Product
	if err := c.do(ctx, http.MethodGet, "/shop/products/"+url.PathEscape(slug)+"/", nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Inventory lists the authenticated seller's own products.
func (c *Client) Inventory(ctx context.Context, q ProductQuery) (*ProductPage, error) {
	var page ProductPage
	if err := c.do(ctx, http.MethodGet, "/shop/inventory/", q.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ProductInput is the create/update payload for seller inventory.
type ProductInput struct {
	Name          string      `json:"name"`
	Category      int64       `json:"category"`
	Description   string      `json:"description,omitempty"`
	Price         model.Money `json:"price"`
	StockQuantity int         `json:"stock_quantity"`
	MainImage     string      `json:"main_image,omitempty"`
	Weight        string      `json:"weight,omitempty"`
	Unit          string      `json:"unit,omitempty"`
	IsFeatured    bool        `json:"is_featured,omitempty"`
}

func (c *Client) CreateProduct(ctx context.Context, req ProductInput) (*model.Product, error) {
	var p model.Product
	if err := c.do(ctx, http.MethodPost, "/shop/products/create/", nil, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, req ProductInput) (*model.Product, error) {
	var p model.Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/shop/products/%d/update/", id), nil, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/shop/products/%d/delete/", id), nil, nil, nil)
}

func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var cats []model.Category
	if err := c.do(ctx, http.MethodGet, "/shop/categories/", nil, nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (c *Client) Category(ctx context.Context, slug string) (*model.Category, error) {
	var cat model.Category
	if err := c.do(ctx, http.MethodGet, "/shop/categories/"+url.PathEscape(slug)+"/", nil, nil, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// CategoryInput is the admin create/update payload.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

func (c *Client) CreateCategory(ctx context.Context, req CategoryInput) (*model.Category, error) {
	var cat model.Category
	if err := c.do(ctx, http.MethodPost, "/shop/categories/create/", nil, req, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, req CategoryInput) (*model.Category, error) {
	var cat model.Category
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/shop/categories/%d/update/", id), nil, req, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/shop/categories/%d/delete/", id), nil, nil, nil)
}

func (c *Client) ProductReviews(ctx context.Context, productID int64) ([]model.Review, error) {
	var reviews []model.Review
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/shop/products/%d/reviews/", productID), nil, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) CreateReview(ctx context.Context, productID int64, rating int, comment string) (*model.Review, error) {
	body := map[string]any{"rating": rating, "comment": comment}
	var review model.Review
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/shop/products/%d/reviews/create/", productID), nil, body, &review); err != nil {
		return nil, err
	}
	return &review, nil
}
