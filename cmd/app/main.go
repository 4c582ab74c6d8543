package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/olowojude/Food-Flex/external/foodflex"
	"github.com/olowojude/Food-Flex/internal/services"
	"github.com/olowojude/Food-Flex/internal/store"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	// ======================
	// PERSISTED SESSION STORAGE
	// ======================
	st, err := store.OpenFile(getEnv("FOODFLEX_SESSION_FILE", defaultSessionFile()))
	if err != nil {
		log.Fatal(err)
	}
	creds := store.NewCredentials(st)

	// ======================
	// BACKEND CLIENT
	// ======================
	api := foodflex.NewClient(os.Getenv("FOODFLEX_API_URL"), creds)

	// ======================
	// STATE HOLDERS
	// session first: it gates everything else
	// ======================
	sessions := services.NewSessionService(api, creds)
	cart := services.NewCartService(api)
	checkout := services.NewCheckoutService(api, cart)
	catalog := services.NewCatalogService(api)

	// cart activates only for an authenticated buyer
	if sessions.IsBuyer() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if _, err := cart.Fetch(ctx); err != nil {
			log.Printf("initial cart fetch: %v", err)
		}
		cancel()
	}

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	app := e.Group("/app")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(app, sessions, cart)
	registerShopRoutes(app, catalog)
	registerCartRoutes(app, sessions, cart)
	registerCheckoutRoutes(app, sessions, cart, checkout)
	registerOrderRoutes(app, sessions, api)
	registerCreditRoutes(app, sessions, api)
	registerInventoryRoutes(app, sessions, api)
	registerAdminRoutes(app, sessions, api)

	// ======================
	// SERVER
	// ======================
	port := getEnv("PORT", "8080")
	e.Logger.Fatal(e.Start(":" + port))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "foodflex-session.json"
	}
	return filepath.Join(home, ".foodflex", "session.json")
}
