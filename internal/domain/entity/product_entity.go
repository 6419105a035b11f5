package entity

// Product is a catalog item. Price is a decimal column in the store but
// is compared as a float for client-side bucketing, so float64 is the
// working representation throughout.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	ProductType string  `json:"product_type"`
	Team        string  `json:"team"`
	Sport       string  `json:"sport"`
}
