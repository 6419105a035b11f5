package entity

// CartItem is one cart row. There is no quantity column: adding the
// same product twice inserts two rows, and removal deletes every row
// matching the (user, product) pair.
type CartItem struct {
	ID        int64 `json:"id"`
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
}
