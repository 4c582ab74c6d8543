package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/olowojude/Food-Flex/internal/middleware"
	"github.com/olowojude/Food-Flex/internal/services"
)

type addCartRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type updateCartRequest struct {
	Quantity int `json:"quantity"`
}

func registerCartRoutes(g *echo.Group, ss *services.SessionService, cart *services.CartService) {
	p := g.Group("/cart", middleware.RequireBuyer(ss))

	// GET cart: always re-fetch, the snapshot is stale by definition
	p.GET("", func(c echo.Context) error {
		snap, err := cart.Fetch(c.Request().Context())
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, snap)
	})

	// ADD item
	p.POST("/add", func(c echo.Context) error {
		req := new(addCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request"})
		}
		snap, err := cart.Add(c.Request().Context(), req.ProductID, req.Quantity)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "cart": snap})
	})

	// UPDATE quantity
	p.PATCH("/items/:id", func(c echo.Context) error {
		itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid cart item id"})
		}
		req := new(updateCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request"})
		}
		snap, err := cart.UpdateQuantity(c.Request().Context(), itemID, req.Quantity)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "cart": snap})
	})

	// REMOVE item
	p.DELETE("/items/:id", func(c echo.Context) error {
		itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid cart item id"})
		}
		snap, err := cart.Remove(c.Request().Context(), itemID)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "cart": snap})
	})

	// CLEAR cart
	p.DELETE("/clear", func(c echo.Context) error {
		snap, err := cart.Clear(c.Request().Context())
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "cart": snap})
	})
}
