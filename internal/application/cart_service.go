package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/fangearhq/fangear-api/internal/domain/entity"
	repo "github.com/fangearhq/fangear-api/internal/domain/repository"
)

// CartService takes the owning user id explicitly on every call. The
// HTTP layer currently injects a single configured identity; nothing
// below it knows the identity is fixed.
type CartService struct {
	Repo   repo.CartRepository
	Logger *logrus.Logger
}

func NewCartService(r repo.CartRepository, logger *logrus.Logger) *CartService {
	return &CartService{Repo: r, Logger: logger}
}

// AddItem inserts one row per call; adding the same product twice
// yields two rows.
func (s *CartService) AddItem(ctx context.Context, userID, productID int64) (int64, error) {
	id, err := s.Repo.Add(ctx, userID, productID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithFields(logrus.Fields{
				"user_id":    userID,
				"product_id": productID,
			}).Error("cart insert failed")
		}
		return 0, err
	}
	return id, nil
}

// Items returns the full product row for every cart entry.
func (s *CartService) Items(ctx context.Context, userID int64) ([]entity.Product, error) {
	return s.Repo.ListProducts(ctx, userID)
}

// RemoveItem deletes every cart row for the (user, product) pair.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID int64) error {
	if err := s.Repo.Remove(ctx, userID, productID); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithFields(logrus.Fields{
				"user_id":    userID,
				"product_id": productID,
			}).Error("cart delete failed")
		}
		return err
	}
	return nil
}
