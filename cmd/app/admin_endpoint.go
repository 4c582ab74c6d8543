package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/olowojude/Food-Flex/external/foodflex"
	"github.com/olowojude/Food-Flex/internal/middleware"
	"github.com/olowojude/Food-Flex/internal/services"
)

type repaymentRequest struct {
	Amount string `json:"amount"`
	Notes  string `json:"notes"`
}

type creditLimitRequest struct {
	NewLimit string `json:"new_limit"`
	Reason   string `json:"reason"`
}

func registerAdminRoutes(g *echo.Group, ss *services.SessionService, api *foodflex.Client) {
	p := g.Group("/admin", middleware.RequireAdmin(ss))

	// ======================
	// USER MANAGEMENT
	// ======================
	p.GET("/users", func(c echo.Context) error {
		q := foodflex.UserQuery{Search: c.QueryParam("search"), Role: c.QueryParam("role")}
		if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
			q.Page = page
		}
		page, err := api.Users(c.Request().Context(), q)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, page)
	})

	p.GET("/users/:id", func(c echo.Context) error {
		userID, err := parseID(c, "id")
		if err != nil {
			return err
		}
		user, err := api.User(c.Request().Context(), userID)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, user)
	})

	p.PATCH("/users/:id", func(c echo.Context) error {
		userID, err := parseID(c, "id")
		if err != nil {
			return err
		}
		fields := map[string]any{}
		if err := c.Bind(&fields); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request"})
		}
		user, err := api.UpdateUser(c.Request().Context(), userID, fields)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "user": user})
	})

	p.DELETE("/users/:id", func(c echo.Context) error {
		userID, err := parseID(c, "id")
		if err != nil {
			return err
		}
		if err := api.DeleteUser(c.Request().Context(), userID); err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})

	p.POST("/users/:id/approve-seller", func(c echo.Context) error {
		userID, err := parseID(c, "id")
		if err != nil {
			return err
		}
		if err := api.ApproveSeller(c.Request().Context(), userID); err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})

	// ======================
	// CATEGORY MANAGEMENT
	// ======================
	p.POST("/categories", func(c echo.Context) error {
		req := new(foodflex.CategoryInput)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request"})
		}
		cat, err := api.CreateCategory(c.Request().Context(), *req)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusCreated, echo.Map{"success": true, "category": cat})
	})

	p.PUT("/categories/:id", func(c echo.Context) error {
		catID, err := parseID(c, "id")
		if err != nil {
			return err
		}
		req := new(foodflex.CategoryInput)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request"})
		}
		cat, err := api.UpdateCategory(c.Request().Context(), catID, *req)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "category": cat})
	})

	p.DELETE("/categories/:id", func(c echo.Context) error {
		catID, err := parseID(c, "id")
		if err != nil {
			return err
		}
		if err := api.DeleteCategory(c.Request().Context(), catID); err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})

	// ======================
	// CREDIT MANAGEMENT
	// ======================
	p.GET("/credits/accounts", func(c echo.Context) error {
		q := foodflex.PageQuery{Search: c.QueryParam("search")}
		if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
			q.Page = page
		}
		page, err := api.CreditAccounts(c.Request().Context(), q)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, page)
	})

	p.GET("/credits/accounts/:id", func(c echo.Context) error {
		userID, err := parseID(c, "id")
		if err != nil {
			return err
		}
		acct, err := api.CreditAccountFor(c.Request().Context(), userID)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, acct)
	})

	p.POST("/credits/accounts/:id/repayment", func(c echo.Context) error {
		userID, err := parseID(c, "id")
		if err != nil {
			return err
		}
		req := new(repaymentRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request"})
		}
		amount, err := decimal.NewFromString(req.Amount)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid amount"})
		}
		if err := api.ProcessRepayment(c.Request().Context(), userID, amount, req.Notes); err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})

	p.POST("/credits/accounts/:id/increase-limit", func(c echo.Context) error {
		userID, err := parseID(c, "id")
		if err != nil {
			return err
		}
		req := new(creditLimitRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request"})
		}
		newLimit, err := decimal.NewFromString(req.NewLimit)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid new_limit"})
		}
		if err := api.IncreaseCreditLimit(c.Request().Context(), userID, newLimit, req.Reason); err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})

	p.GET("/credits/repayments", func(c echo.Context) error {
		q := foodflex.PageQuery{Search: c.QueryParam("search")}
		if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
			q.Page = page
		}
		reps, err := api.AllRepayments(c.Request().Context(), q)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, reps)
	})

	// ======================
	// ORDER OVERSIGHT
	// ======================
	p.GET("/orders", func(c echo.Context) error {
		q := foodflex.OrderQuery{Status: c.QueryParam("status")}
		if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
			q.Page = page
		}
		page, err := api.AllOrders(c.Request().Context(), q)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, page)
	})
}

// parseID reads a numeric path param, answering 400 itself on garbage. The
// returned error is only a signal to bail out; the response is already
// committed so echo will not write it again.
func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid " + name})
		return 0, echo.ErrBadRequest
	}
	return id, nil
}
