package browser_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fangearhq/fangear-api/internal/browser"
	"github.com/fangearhq/fangear-api/internal/domain/entity"
)

// storeStub is a minimal in-memory API server for the browser client.
type storeStub struct {
	products      []entity.Product
	cart          []entity.Product
	nextID        int64
	declineAdd    bool
	declineRemove bool
}

func (s *storeStub) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(s.products)
	})
	mux.HandleFunc("GET /cart", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(s.cart)
	})
	mux.HandleFunc("POST /cart", func(w http.ResponseWriter, r *http.Request) {
		if s.declineAdd {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false})
			return
		}
		var req struct {
			ProductID int64 `json:"productId"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		for _, p := range s.products {
			if p.ID == req.ProductID {
				s.cart = append(s.cart, p)
			}
		}
		id := atomic.AddInt64(&s.nextID, 1)
		_ = json.NewEncoder(w).Encode(map[string]int64{"id": id})
	})
	mux.HandleFunc("DELETE /cart/{productId}", func(w http.ResponseWriter, r *http.Request) {
		if s.declineRemove {
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false})
			return
		}
		id, _ := strconv.ParseInt(r.PathValue("productId"), 10, 64)
		kept := s.cart[:0]
		for _, p := range s.cart {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		s.cart = kept
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	})
	return mux
}

// TestBrowser_LoadAndFilter verifies the catalog is fetched once and
// filtered in memory.
func TestBrowser_LoadAndFilter(t *testing.T) {
	t.Parallel()

	stub := &storeStub{products: catalog()}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	b := browser.New(browser.NewClient(srv.URL), nil)
	require.NoError(t, b.Load(context.Background()))

	assert.Len(t, b.Visible(), len(stub.products))

	b.SetSportFilter("nba")
	assert.Len(t, b.Visible(), 2)

	b.ClearFilters()
	assert.Len(t, b.Visible(), len(stub.products))
}

// TestBrowser_AddToCart_UpdatesCount verifies a successful add sets the
// success message, re-fetches the cart and reports its length upward.
func TestBrowser_AddToCart_UpdatesCount(t *testing.T) {
	t.Parallel()

	stub := &storeStub{products: catalog()}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	b := browser.New(browser.NewClient(srv.URL), nil)
	var count int
	b.OnCartCount = func(n int) { count = n }
	require.NoError(t, b.Load(context.Background()))

	require.NoError(t, b.AddToCart(context.Background(), 1))
	assert.Equal(t, "Product added to cart", b.Message())
	assert.Equal(t, 1, count)

	// Adding the same product again yields another row.
	require.NoError(t, b.AddToCart(context.Background(), 1))
	assert.Equal(t, 2, count)
}

// TestBrowser_AddToCart_Declined verifies an API answer without a row
// id surfaces the failure message and no count update.
func TestBrowser_AddToCart_Declined(t *testing.T) {
	t.Parallel()

	stub := &storeStub{products: catalog(), declineAdd: true}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	b := browser.New(browser.NewClient(srv.URL), nil)
	called := false
	b.OnCartCount = func(int) { called = true }
	require.NoError(t, b.Load(context.Background()))

	err := b.AddToCart(context.Background(), 1)
	require.ErrorIs(t, err, browser.ErrAddDeclined)
	assert.Equal(t, "Failed to add product to cart", b.Message())
	assert.False(t, called)
}

// TestBrowser_AddToCart_TransportError verifies a network failure sets
// the generic error message.
func TestBrowser_AddToCart_TransportError(t *testing.T) {
	t.Parallel()

	stub := &storeStub{products: catalog()}
	srv := httptest.NewServer(stub.handler())

	b := browser.New(browser.NewClient(srv.URL), nil)
	require.NoError(t, b.Load(context.Background()))

	srv.Close()
	err := b.AddToCart(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, "An error occurred. Please try again.", b.Message())
}

// TestClient_RemoveFromCart verifies removal empties every row for the
// product and a declined removal surfaces as an error.
func TestClient_RemoveFromCart(t *testing.T) {
	t.Parallel()

	stub := &storeStub{products: catalog()}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	c := browser.NewClient(srv.URL)
	_, err := c.AddToCart(context.Background(), 1)
	require.NoError(t, err)
	_, err = c.AddToCart(context.Background(), 1)
	require.NoError(t, err)

	require.NoError(t, c.RemoveFromCart(context.Background(), 1))
	items, err := c.CartProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)

	stub.declineRemove = true
	assert.Error(t, c.RemoveFromCart(context.Background(), 1))
}

// TestClient_Products_SportQuery verifies the sport filter reaches the
// server as a query parameter.
func TestClient_Products_SportQuery(t *testing.T) {
	t.Parallel()

	var gotSport string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSport = r.URL.Query().Get("sport")
		_ = json.NewEncoder(w).Encode([]entity.Product{})
	}))
	defer srv.Close()

	c := browser.NewClient(srv.URL)
	_, err := c.Products(context.Background(), "Olympics")
	require.NoError(t, err)
	assert.Equal(t, "Olympics", gotSport)
}
