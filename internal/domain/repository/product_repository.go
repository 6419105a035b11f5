package repository

import (
	"context"

	"github.com/fangearhq/fangear-api/internal/domain/entity"
)

// ProductRepository defines the interface for catalog database operations.
// List filters by exact sport equality when sport is non-empty.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context, sport string) ([]entity.Product, error)
}
