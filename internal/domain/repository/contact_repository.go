package repository

import (
	"context"

	"github.com/fangearhq/fangear-api/internal/domain/entity"
)

// ContactRepository defines the interface for contact-form persistence.
type ContactRepository interface {
	Create(ctx context.Context, c *entity.Contact) error
}
