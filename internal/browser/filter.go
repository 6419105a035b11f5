package browser

import (
	"strings"

	"github.com/fangearhq/fangear-api/internal/domain/entity"
)

// Price bucket labels. Boundaries are inclusive on the upper edge:
// 50.00 is "0-50", 50.01 is "51-100".
const (
	BucketUpTo50   = "0-50"
	Bucket51To100  = "51-100"
	Bucket101To150 = "101-150"
	Bucket151To200 = "151-200"
	BucketOver200  = "200+"
)

// PriceBucket maps a numeric price onto its fixed range label.
func PriceBucket(price float64) string {
	switch {
	case price <= 50:
		return BucketUpTo50
	case price <= 100:
		return Bucket51To100
	case price <= 150:
		return Bucket101To150
	case price <= 200:
		return Bucket151To200
	default:
		return BucketOver200
	}
}

// Filters holds the four independent selections. The empty string means
// "no filter". Type, Team and Sport match by case-insensitive substring
// containment; PriceRange by exact bucket equality.
type Filters struct {
	Type       string
	PriceRange string
	Team       string
	Sport      string
}

// Active reports whether any filter is set.
func (f Filters) Active() bool {
	return f != Filters{}
}

func containsFold(field, filter string) bool {
	return strings.Contains(strings.ToLower(field), strings.ToLower(filter))
}

// Matches reports whether the product satisfies every active filter.
func (f Filters) Matches(p entity.Product) bool {
	if f.Type != "" && !containsFold(p.ProductType, f.Type) {
		return false
	}
	if f.PriceRange != "" && PriceBucket(p.Price) != f.PriceRange {
		return false
	}
	if f.Team != "" && !containsFold(p.Team, f.Team) {
		return false
	}
	if f.Sport != "" && !containsFold(p.Sport, f.Sport) {
		return false
	}
	return true
}

// Apply returns the products matching ALL active filters, preserving
// catalog order. Pure: no I/O, the input slice is not modified.
func Apply(products []entity.Product, f Filters) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}
