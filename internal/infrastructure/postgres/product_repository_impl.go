package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fangearhq/fangear-api/internal/domain/entity"
	"github.com/fangearhq/fangear-api/internal/domain/repository"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (name, description, price, image_url, product_type, team, sport)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, p.Name, p.Description, p.Price, p.ImageURL, p.ProductType, p.Team, p.Sport)

	return row.Scan(&p.ID)
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p := &entity.Product{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, description, price, image_url, product_type, team, sport
		FROM products
		WHERE id = $1
	`, id)

	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
		&p.ProductType, &p.Team, &p.Sport); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

// List returns the whole catalog, or only rows whose sport column
// exactly equals the given filter when it is non-empty.
func (r *ProductRepository) List(ctx context.Context, sport string) ([]entity.Product, error) {
	query := `
		SELECT id, name, description, price, image_url, product_type, team, sport
		FROM products
	`
	args := []any{}
	if sport != "" {
		query += ` WHERE sport = $1`
		args = append(args, sport)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Non-nil so an empty catalog encodes as [] rather than null.
	products := make([]entity.Product, 0)
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
			&p.ProductType, &p.Team, &p.Sport); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
