package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/olowojude/Food-Flex/external/foodflex"
	"github.com/olowojude/Food-Flex/internal/store"
)

// newTestAPI stands up a fake backend and a client already holding a token
// pair, the state every signed-in test starts from.
func newTestAPI(t *testing.T, mux *http.ServeMux) (*foodflex.Client, *store.Credentials) {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	creds := store.NewCredentials(store.NewMemory())
	creds.SetTokens("test-access", "test-refresh")

	api := foodflex.NewClient(srv.URL, creds)
	api.SetHTTPClient(srv.Client())
	return api, creds
}

// riceCart is a consistent two-unit snapshot: 2 x 6000.00 = 12000.00.
const riceCart = `{
	"id": 1,
	"user": 3,
	"items": [
		{
			"id": 10,
			"product": {"id": 100, "name": "Rice 5kg", "slug": "rice-5kg", "price": "6000.00", "stock_quantity": 8, "is_in_stock": true},
			"quantity": 2,
			"total_price": "12000.00"
		}
	],
	"total_items": 2,
	"subtotal": "12000.00"
}`

const emptyCart = `{"id": 1, "user": 3, "items": [], "total_items": 0, "subtotal": "0.00"}`
