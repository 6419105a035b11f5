package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fangearhq/fangear-api/internal/domain/entity"
	"github.com/fangearhq/fangear-api/internal/domain/repository"
)

type CartRepository struct {
	pool *pgxpool.Pool
}

func NewCartRepository(pool *pgxpool.Pool) *CartRepository {
	return &CartRepository{pool: pool}
}

// Add inserts one cart row. There is deliberately no existence check on
// the product id and no quantity column.
func (r *CartRepository) Add(ctx context.Context, userID, productID int64) (int64, error) {
	var id int64
	row := r.pool.QueryRow(ctx, `
		INSERT INTO cart (user_id, product_id)
		VALUES ($1, $2)
		RETURNING id
	`, userID, productID)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// ListProducts joins the cart onto the catalog and returns the full
// product row for every cart entry, duplicates included.
func (r *CartRepository) ListProducts(ctx context.Context, userID int64) ([]entity.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT products.id, products.name, products.description, products.price,
		       products.image_url, products.product_type, products.team, products.sport
		FROM cart
		JOIN products ON cart.product_id = products.id
		WHERE cart.user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

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

// Remove deletes every cart row matching the (user, product) pair.
func (r *CartRepository) Remove(ctx context.Context, userID, productID int64) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM cart
		WHERE user_id = $1 AND product_id = $2
	`, userID, productID)
	return err
}

var _ repository.CartRepository = (*CartRepository)(nil)
