package main

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/olowojude/Food-Flex/external/foodflex"
	"github.com/olowojude/Food-Flex/internal/services"
)

// respondErr converts any failure into the {success:false, error} shape the
// pages expect. Server rejections pass through verbatim; transport failures
// collapse into one generic message.
func respondErr(c echo.Context, err error) error {
	var apiErr *foodflex.APIError
	var urlErr *url.Error

	switch {
	case errors.Is(err, foodflex.ErrSessionExpired):
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"success": false,
			"error":   "session expired, please log in again",
		})

	case errors.Is(err, services.ErrCheckoutInFlight), errors.Is(err, services.ErrLineBusy):
		return c.JSON(http.StatusConflict, echo.Map{"success": false, "error": err.Error()})

	case errors.As(err, &apiErr):
		body := echo.Map{"success": false, "error": apiErr.Message}
		if len(apiErr.Fields) > 0 {
			body["fields"] = apiErr.Fields
		}
		return c.JSON(apiErr.StatusCode, body)

	case errors.As(err, &urlErr):
		return c.JSON(http.StatusBadGateway, echo.Map{
			"success": false,
			"error":   "something went wrong, please try again",
		})

	default:
		// local validation and holder errors
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": err.Error()})
	}
}
