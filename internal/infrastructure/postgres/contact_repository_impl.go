package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fangearhq/fangear-api/internal/domain/entity"
	"github.com/fangearhq/fangear-api/internal/domain/repository"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO contacts (name, email, comment)
		VALUES ($1, $2, $3)
		RETURNING id
	`, c.Name, c.Email, c.Comment)

	return row.Scan(&c.ID)
}

var _ repository.ContactRepository = (*ContactRepository)(nil)
