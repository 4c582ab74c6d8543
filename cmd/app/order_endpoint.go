package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/olowojude/Food-Flex/external/foodflex"
	"github.com/olowojude/Food-Flex/internal/middleware"
	"github.com/olowojude/Food-Flex/internal/services"
)

type verifyQRRequest struct {
	QRCodeToken string `json:"qr_code_token"`
}

func registerOrderRoutes(g *echo.Group, ss *services.SessionService, api *foodflex.Client) {
	p := g.Group("/orders", middleware.RequireAuth(ss))

	// LIST: the backend scopes by role, buyers see purchases and sellers
	// see incoming orders
	p.GET("", func(c echo.Context) error {
		q := foodflex.OrderQuery{Status: c.QueryParam("status")}
		if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
			q.Page = page
		}
		page, err := api.Orders(c.Request().Context(), q)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, page)
	})

	// DETAIL
	p.GET("/:id", func(c echo.Context) error {
		orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid order id"})
		}
		order, err := api.Order(c.Request().Context(), orderID)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, order)
	})

	// SELLER ACTIONS
	seller := middleware.RequireSeller(ss)

	p.POST("/verify-qr", func(c echo.Context) error {
		req := new(verifyQRRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request"})
		}
		order, err := api.VerifyQR(c.Request().Context(), req.QRCodeToken)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "order": order})
	}, seller)

	p.POST("/:id/confirm", func(c echo.Context) error {
		orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid order id"})
		}
		order, err := api.ConfirmOrder(c.Request().Context(), orderID)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "order": order})
	}, seller)

	p.POST("/:id/complete", func(c echo.Context) error {
		orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid order id"})
		}
		order, err := api.CompleteOrder(c.Request().Context(), orderID)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "order": order})
	}, seller)
}
