package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/olowojude/Food-Flex/external/foodflex"
	"github.com/olowojude/Food-Flex/internal/model"
	"github.com/olowojude/Food-Flex/internal/services"
)

func registerShopRoutes(g *echo.Group, catalog *services.CatalogService) {
	p := g.Group("/shop")

	// PRODUCT LISTING: public, filterable. A listing superseded by a newer
	// one comes back canceled; answer 204 so the page just keeps waiting
	// for the winner.
	p.GET("/products", func(c echo.Context) error {
		q, err := parseProductQuery(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": err.Error()})
		}

		page, err := catalog.Search(c.Request().Context(), q)
		if errors.Is(err, context.Canceled) {
			return c.NoContent(http.StatusNoContent)
		}
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, page)
	})

	// PRODUCT DETAIL
	p.GET("/products/:slug", func(c echo.Context) error {
		product, err := catalog.Product(c.Request().Context(), c.Param("slug"))
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, product)
	})

	// CATEGORIES
	p.GET("/categories", func(c echo.Context) error {
		cats, err := catalog.Categories(c.Request().Context())
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, cats)
	})
}

func parseProductQuery(c echo.Context) (foodflex.ProductQuery, error) {
	q := foodflex.ProductQuery{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Ordering: c.QueryParam("ordering"),
		InStock:  c.QueryParam("in_stock") == "true",
		Featured: c.QueryParam("is_featured") == "true",
	}

	if raw := c.QueryParam("min_price"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return q, errors.New("invalid min_price")
		}
		m := model.Money(d)
		q.MinPrice = &m
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return q, errors.New("invalid max_price")
		}
		m := model.Money(d)
		q.MaxPrice = &m
	}
	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		q.Page = page
	}
	if size, err := strconv.Atoi(c.QueryParam("page_size")); err == nil {
		q.PageSize = size
	}
	return q, nil
}
