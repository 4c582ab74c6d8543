package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/olowojude/Food-Flex/internal/middleware"
	"github.com/olowojude/Food-Flex/internal/services"
)

func registerCheckoutRoutes(g *echo.Group, ss *services.SessionService, cart *services.CartService, checkout *services.CheckoutService) {
	p := g.Group("/checkout", middleware.RequireBuyer(ss))

	// REVIEW: cart + credit + the submit gate
	p.GET("", func(c echo.Context) error {
		ctx := c.Request().Context()

		snap, err := cart.Fetch(ctx)
		if err != nil {
			return respondErr(c, err)
		}
		acct, err := checkout.CreditAccount(ctx)
		if err != nil {
			return respondErr(c, err)
		}

		canSubmit, reason := checkout.CanSubmit(snap, acct)
		return c.JSON(http.StatusOK, echo.Map{
			"cart":           snap,
			"credit_account": acct,
			"can_submit":     canSubmit,
			"reason":         reason,
		})
	})

	// SUBMIT: the backend re-validates credit and stock; its rejection is
	// surfaced verbatim and the cart stays as it was.
	p.POST("", func(c echo.Context) error {
		conf, err := checkout.Submit(c.Request().Context())
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusCreated, echo.Map{
			"success":        true,
			"order":          conf.Order,
			"qr_code_base64": conf.QRCodeBase64,
			"next":           "/app/checkout/success?order=" + conf.Order.OrderNumber,
		})
	})

	// CONFIRMATION: one-shot envelope first, durable order lookup second,
	// order history as the final fallback. Never an error page.
	p.GET("/success", func(c echo.Context) error {
		orderNumber := c.QueryParam("order")

		conf, err := checkout.Resume(c.Request().Context(), orderNumber)
		if err != nil {
			return c.Redirect(http.StatusSeeOther, "/app/orders")
		}

		if c.QueryParam("format") == "png" {
			png, err := conf.QRCodePNG()
			if err != nil {
				return respondErr(c, err)
			}
			return c.Blob(http.StatusOK, "image/png", png)
		}

		return c.JSON(http.StatusOK, echo.Map{
			"order":          conf.Order,
			"qr_code_base64": conf.QRCodeBase64,
		})
	})
}
