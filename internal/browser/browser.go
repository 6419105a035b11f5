package browser

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/fangearhq/fangear-api/internal/domain/entity"
)

// Status messages surfaced to the user after an add-to-cart attempt.
const (
	msgAdded      = "Product added to cart"
	msgAddFailed  = "Failed to add product to cart"
	msgAddErrored = "An error occurred. Please try again."
)

// Browser is the product view: it fetches the catalog once, keeps four
// independent filter selections, and exposes the subset matching all of
// them. The parent owns the displayed cart count and receives updates
// through OnCartCount.
type Browser struct {
	Client *Client
	Logger *logrus.Logger

	// OnCartCount is invoked with the cart length after every
	// successful add. Optional.
	OnCartCount func(int)

	catalog []entity.Product
	filters Filters
	message string
}

func New(client *Client, logger *logrus.Logger) *Browser {
	return &Browser{Client: client, Logger: logger}
}

// Load fetches the full catalog. Called once per mount; filters are
// applied in memory afterwards.
func (b *Browser) Load(ctx context.Context) error {
	products, err := b.Client.Products(ctx, "")
	if err != nil {
		if b.Logger != nil {
			b.Logger.WithError(err).Error("fetching products failed")
		}
		return err
	}
	b.catalog = products
	return nil
}

func (b *Browser) SetTypeFilter(v string)       { b.filters.Type = v }
func (b *Browser) SetPriceRangeFilter(v string) { b.filters.PriceRange = v }
func (b *Browser) SetTeamFilter(v string)       { b.filters.Team = v }
func (b *Browser) SetSportFilter(v string)      { b.filters.Sport = v }

// ClearFilters resets every selection, restoring the full catalog.
func (b *Browser) ClearFilters() { b.filters = Filters{} }

func (b *Browser) Filters() Filters { return b.filters }

// Visible returns the products matching all active filters.
func (b *Browser) Visible() []entity.Product {
	return Apply(b.catalog, b.filters)
}

// Message returns the outcome of the last add-to-cart attempt.
func (b *Browser) Message() string { return b.message }

// AddToCart adds the product, then re-fetches the cart and reports its
// length through OnCartCount. A declined add and a transport error set
// different user-facing messages.
func (b *Browser) AddToCart(ctx context.Context, productID int64) error {
	_, err := b.Client.AddToCart(ctx, productID)
	if err != nil {
		if errors.Is(err, ErrAddDeclined) {
			b.message = msgAddFailed
		} else {
			if b.Logger != nil {
				b.Logger.WithError(err).Error("adding product to cart failed")
			}
			b.message = msgAddErrored
		}
		return err
	}

	b.message = msgAdded
	items, err := b.Client.CartProducts(ctx)
	if err != nil {
		// The add already succeeded; a stale count is not an error.
		if b.Logger != nil {
			b.Logger.WithError(err).Error("fetching cart items failed")
		}
		return nil
	}
	if b.OnCartCount != nil {
		b.OnCartCount(len(items))
	}
	return nil
}
