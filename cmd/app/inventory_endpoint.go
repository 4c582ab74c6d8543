package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/olowojude/Food-Flex/external/foodflex"
	"github.com/olowojude/Food-Flex/internal/middleware"
	"github.com/olowojude/Food-Flex/internal/services"
)

func registerInventoryRoutes(g *echo.Group, ss *services.SessionService, api *foodflex.Client) {
	p := g.Group("/inventory", middleware.RequireSeller(ss))

	// LIST own products
	p.GET("", func(c echo.Context) error {
		q := foodflex.ProductQuery{Search: c.QueryParam("search")}
		if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
			q.Page = page
		}
		page, err := api.Inventory(c.Request().Context(), q)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, page)
	})

	// CREATE product
	p.POST("/products", func(c echo.Context) error {
		req := new(foodflex.ProductInput)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request"})
		}
		product, err := api.CreateProduct(c.Request().Context(), *req)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusCreated, echo.Map{"success": true, "product": product})
	})

	// UPDATE product
	p.PUT("/products/:id", func(c echo.Context) error {
		productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid product id"})
		}
		req := new(foodflex.ProductInput)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request"})
		}
		product, err := api.UpdateProduct(c.Request().Context(), productID, *req)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "product": product})
	})

	// DELETE product
	p.DELETE("/products/:id", func(c echo.Context) error {
		productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid product id"})
		}
		if err := api.DeleteProduct(c.Request().Context(), productID); err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})
}
