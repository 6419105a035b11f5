package repository

import (
	"context"

	"github.com/fangearhq/fangear-api/internal/domain/entity"
)

// CartRepository defines the interface for cart database operations.
// The owning user is explicit on every call; Remove deletes ALL rows
// for the (user, product) pair, not a single unit.
type CartRepository interface {
	Add(ctx context.Context, userID, productID int64) (int64, error)
	ListProducts(ctx context.Context, userID int64) ([]entity.Product, error)
	Remove(ctx context.Context, userID, productID int64) error
}
