package browser

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fangearhq/fangear-api/internal/domain/entity"
)

// ErrAddDeclined means the API answered but did not return a new cart
// row id. Distinct from transport errors so the view can show the
// matching message for each.
var ErrAddDeclined = errors.New("add to cart declined")

// Client is a thin HTTP client for the store API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(dest)
}

// Products fetches the catalog. A non-empty sport narrows the result to
// exact matches server-side.
func (c *Client) Products(ctx context.Context, sport string) ([]entity.Product, error) {
	path := "/products"
	if sport != "" {
		path += "?sport=" + url.QueryEscape(sport)
	}
	var products []entity.Product
	if err := c.getJSON(ctx, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CartProducts fetches the current cart contents.
func (c *Client) CartProducts(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := c.getJSON(ctx, "/cart", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// AddToCart posts the product id and returns the new cart row id.
// A 2xx answer without an id yields ErrAddDeclined.
func (c *Client) AddToCart(ctx context.Context, productID int64) (int64, error) {
	body, err := json.Marshal(map[string]int64{"productId": productID})
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/cart", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = res.Body.Close() }()

	var out struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil || out.ID == 0 {
		return 0, ErrAddDeclined
	}
	return out.ID, nil
}

// RemoveFromCart deletes every cart row for the product.
func (c *Client) RemoveFromCart(ctx context.Context, productID int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		c.BaseURL+"/cart/"+strconv.FormatInt(productID, 10), nil)
	if err != nil {
		return err
	}
	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()

	var out struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return err
	}
	if !out.Success {
		return fmt.Errorf("remove from cart failed for product %d", productID)
	}
	return nil
}
