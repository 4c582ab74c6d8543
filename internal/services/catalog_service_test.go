package services

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olowojude/Food-Flex/external/foodflex"
)

const onePageOfProducts = `{
	"count": 1,
	"next": null,
	"previous": null,
	"results": [{"id": 100, "name": "Rice 5kg", "slug": "rice-5kg", "price": "6000.00", "stock_quantity": 8, "is_in_stock": true}]
}`

func TestSearchSupersedesInFlightQuery(t *testing.T) {
	stale := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("/shop/products/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("search") == "stale" {
			close(stale)
			<-r.Context().Done() // hold until the newer search cancels us
			return
		}
		io.WriteString(w, onePageOfProducts)
	})
	api, _ := newTestAPI(t, mux)
	cat := NewCatalogService(api)

	done := make(chan error, 1)
	go func() {
		_, err := cat.Search(context.Background(), foodflex.ProductQuery{Search: "stale"})
		done <- err
	}()
	<-stale

	page, err := cat.Search(context.Background(), foodflex.ProductQuery{Search: "rice"})
	require.NoError(t, err)
	assert.Len(t, page.Results, 1)

	assert.ErrorIs(t, <-done, context.Canceled, "the superseded query is aborted, not answered")
}

func TestSearchSequentialQueriesAllSucceed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/shop/products/", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, onePageOfProducts)
	})
	api, _ := newTestAPI(t, mux)
	cat := NewCatalogService(api)

	for i := 0; i < 3; i++ {
		page, err := cat.Search(context.Background(), foodflex.ProductQuery{Search: "rice"})
		require.NoError(t, err)
		assert.Equal(t, 1, page.Count)
	}
}

func TestProductDetail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/shop/products/rice-5kg/", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"id": 100, "name": "Rice 5kg", "slug": "rice-5kg", "price": "6000.00", "stock_quantity": 8, "is_in_stock": true}`)
	})
	api, _ := newTestAPI(t, mux)
	cat := NewCatalogService(api)

	p, err := cat.Product(context.Background(), "rice-5kg")
	require.NoError(t, err)
	assert.Equal(t, "Rice 5kg", p.Name)
}
