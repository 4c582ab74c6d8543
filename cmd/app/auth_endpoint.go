package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/olowojude/Food-Flex/external/foodflex"
	"github.com/olowojude/Food-Flex/internal/middleware"
	"github.com/olowojude/Food-Flex/internal/services"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func registerAuthRoutes(g *echo.Group, ss *services.SessionService, cart *services.CartService) {
	a := g.Group("/auth")

	// LOGIN
	a.POST("/login", func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request"})
		}

		user, err := ss.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return respondErr(c, err)
		}

		// cart holder activates on buyer login
		if user.IsBuyer() {
			if _, err := cart.Fetch(c.Request().Context()); err != nil {
				c.Logger().Warnf("cart fetch after login: %v", err)
			}
		}

		return c.JSON(http.StatusOK, echo.Map{"success": true, "user": user})
	})

	// REGISTER
	a.POST("/register", func(c echo.Context) error {
		req := new(foodflex.RegisterRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request"})
		}

		user, err := ss.Register(c.Request().Context(), *req)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusCreated, echo.Map{"success": true, "user": user})
	})

	// LOGOUT: always succeeds locally
	a.POST("/logout", func(c echo.Context) error {
		ss.Logout(c.Request().Context())
		cart.Reset()
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})

	p := g.Group("/profile", middleware.RequireAuth(ss))

	p.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"success": true, "user": ss.Current()})
	})

	p.PUT("", func(c echo.Context) error {
		req := new(foodflex.ProfileUpdate)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request"})
		}
		user, err := ss.UpdateProfile(c.Request().Context(), *req)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "user": user})
	})

	p.POST("/password", func(c echo.Context) error {
		req := new(changePasswordRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request"})
		}
		if err := ss.API.ChangePassword(c.Request().Context(), req.OldPassword, req.NewPassword, req.ConfirmPassword); err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})

	p.POST("/business/apply", func(c echo.Context) error {
		req := new(foodflex.SellerApplication)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request"})
		}
		if err := ss.API.ApplyForSeller(c.Request().Context(), *req); err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})

	p.GET("/business", func(c echo.Context) error {
		profile, err := ss.API.SellerProfile(c.Request().Context())
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "profile": profile})
	})
}
