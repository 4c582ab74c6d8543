package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/olowojude/Food-Flex/external/foodflex"
	"github.com/olowojude/Food-Flex/internal/middleware"
	"github.com/olowojude/Food-Flex/internal/services"
)

func registerCreditRoutes(g *echo.Group, ss *services.SessionService, api *foodflex.Client) {
	p := g.Group("/credit", middleware.RequireBuyer(ss))

	// ACCOUNT standing: balance, limit, amount owed
	p.GET("", func(c echo.Context) error {
		acct, err := api.CreditAccount(c.Request().Context())
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, acct)
	})

	// TRANSACTION history
	p.GET("/transactions", func(c echo.Context) error {
		txs, err := api.CreditTransactions(c.Request().Context())
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, txs)
	})

	// REPAYMENT history
	p.GET("/repayments", func(c echo.Context) error {
		reps, err := api.Repayments(c.Request().Context())
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, reps)
	})
}
