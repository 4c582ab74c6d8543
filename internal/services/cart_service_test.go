package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olowojude/Food-Flex/internal/model"
)

func TestCartFetchAcceptsConsistentSnapshot(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orders/cart/", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, riceCart)
	})
	api, _ := newTestAPI(t, mux)
	cs := NewCartService(api)

	cart, err := cs.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, cart.TotalItems)
	assert.True(t, cart.Subtotal.Equal(model.Naira(12000)))
	assert.Same(t, cart, cs.Snapshot())
}

func TestCartFetchRejectsInconsistentSnapshot(t *testing.T) {
	var bad atomic.Bool
	mux := http.NewServeMux()
	mux.HandleFunc("/orders/cart/", func(w http.ResponseWriter, r *http.Request) {
		if bad.Load() {
			// subtotal disagrees with the line items
			io.WriteString(w, `{"id":1,"user":3,"items":[{"id":10,"product":{"id":100,"price":"6000.00","stock_quantity":8},"quantity":2,"total_price":"12000.00"}],"total_items":2,"subtotal":"9999.00"}`)
			return
		}
		io.WriteString(w, riceCart)
	})
	api, _ := newTestAPI(t, mux)
	cs := NewCartService(api)

	good, err := cs.Fetch(context.Background())
	require.NoError(t, err)

	bad.Store(true)
	_, err = cs.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subtotal mismatch")
	assert.Same(t, good, cs.Snapshot(), "a rejected snapshot must not replace the accepted one")
}

func TestCartUpdateQuantityFloorSkipsNetwork(t *testing.T) {
	var calls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	})
	api, _ := newTestAPI(t, mux)
	cs := NewCartService(api)

	_, err := cs.UpdateQuantity(context.Background(), 10, 0)
	assert.ErrorIs(t, err, ErrQuantityFloor)
	_, err = cs.UpdateQuantity(context.Background(), 10, -3)
	assert.ErrorIs(t, err, ErrQuantityFloor)
	assert.EqualValues(t, 0, atomic.LoadInt32(&calls))
}

func TestCartAddDefaultsQuantityToOne(t *testing.T) {
	var got map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("/orders/cart/add/", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		io.WriteString(w, `{"message":"added","cart":`+riceCart+`}`)
	})
	api, _ := newTestAPI(t, mux)
	cs := NewCartService(api)

	_, err := cs.Add(context.Background(), 100, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got["quantity"])
}

func TestCartRemoveMissingLineConverges(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orders/cart/items/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":"Cart item not found"}`)
	})
	mux.HandleFunc("/orders/cart/", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, emptyCart)
	})
	api, _ := newTestAPI(t, mux)
	cs := NewCartService(api)

	cart, err := cs.Remove(context.Background(), 99)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartClearToleratesMissingCart(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orders/cart/clear/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":"Cart not found"}`)
	})
	mux.HandleFunc("/orders/cart/", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, emptyCart)
	})
	api, _ := newTestAPI(t, mux)
	cs := NewCartService(api)

	cart, err := cs.Clear(context.Background())
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartSecondMutationOnBusyLineIsRejected(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var first atomic.Bool

	mux := http.NewServeMux()
	mux.HandleFunc("/orders/cart/items/", func(w http.ResponseWriter, r *http.Request) {
		if first.CompareAndSwap(false, true) {
			close(entered)
			<-release
		}
		io.WriteString(w, `{"message":"updated","cart":`+riceCart+`}`)
	})
	api, _ := newTestAPI(t, mux)
	cs := NewCartService(api)

	done := make(chan error, 1)
	go func() {
		_, err := cs.UpdateQuantity(context.Background(), 10, 3)
		done <- err
	}()
	<-entered

	assert.True(t, cs.Updating(10))
	_, err := cs.UpdateQuantity(context.Background(), 10, 4)
	assert.ErrorIs(t, err, ErrLineBusy)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, cs.Updating(10))
}

func TestCartCanIncrementAgainstKnownStock(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orders/cart/", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, riceCart)
	})
	api, _ := newTestAPI(t, mux)
	cs := NewCartService(api)

	assert.False(t, cs.CanIncrement(10), "no snapshot yet")

	_, err := cs.Fetch(context.Background())
	require.NoError(t, err)
	assert.True(t, cs.CanIncrement(10), "quantity 2 of stock 8")
	assert.False(t, cs.CanIncrement(404), "unknown line")
}

func TestCartResetDropsSnapshot(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orders/cart/", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, riceCart)
	})
	api, _ := newTestAPI(t, mux)
	cs := NewCartService(api)

	_, err := cs.Fetch(context.Background())
	require.NoError(t, err)
	cs.Reset()
	assert.Nil(t, cs.Snapshot())
}
