package model

import "time"

// Product is the catalog representation returned by /shop/products/.
type Product struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Slug           string     `json:"slug"`
	Description    string     `json:"description,omitempty"`
	Category       int64      `json:"category"`
	CategoryName   string     `json:"category_name,omitempty"`
	Seller         int64      `json:"seller"`
	SellerName     string     `json:"seller_name,omitempty"`
	SellerEmail    string     `json:"seller_email,omitempty"`
	Price          Money      `json:"price"`
	FormattedPrice string     `json:"formatted_price,omitempty"`
	StockQuantity  int        `json:"stock_quantity"`
	IsInStock      bool       `json:"is_in_stock"`
	MainImage      string     `json:"main_image,omitempty"`
	Weight         string     `json:"weight,omitempty"`
	Unit           string     `json:"unit,omitempty"`
	IsFeatured     bool       `json:"is_featured"`
	ViewsCount     int        `json:"views_count"`
	SalesCount     int        `json:"sales_count"`
	AverageRating  float64    `json:"average_rating"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

// Category groups products in the shop.
type Category struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description,omitempty"`
	Image        string `json:"image,omitempty"`
	IsActive     bool   `json:"is_active"`
	ProductCount int    `json:"product_count,omitempty"`
}

// Review is a buyer's product review.
type Review struct {
	ID         int64      `json:"id"`
	Product    int64      `json:"product"`
	Buyer      int64      `json:"buyer"`
	BuyerName  string     `json:"buyer_name,omitempty"`
	BuyerEmail string     `json:"buyer_email,omitempty"`
	Rating     int        `json:"rating"`
	Comment    string     `json:"comment,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}
