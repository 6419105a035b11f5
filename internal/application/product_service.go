package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/fangearhq/fangear-api/internal/domain/entity"
	repo "github.com/fangearhq/fangear-api/internal/domain/repository"
)

type ProductService struct {
	Repo   repo.ProductRepository
	Logger *logrus.Logger
}

func NewProductService(r repo.ProductRepository, logger *logrus.Logger) *ProductService {
	return &ProductService{Repo: r, Logger: logger}
}

func (s *ProductService) Create(ctx context.Context, p *entity.Product) error {
	if err := s.Repo.Create(ctx, p); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("name", p.Name).Error("product insert failed")
		}
		return err
	}
	return nil
}

// Get returns repository.ErrNotFound for an absent id; the HTTP layer
// turns that into an empty 200 body rather than a 404.
func (s *ProductService) Get(ctx context.Context, id int64) (*entity.Product, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns the catalog, optionally narrowed to an exact sport match.
func (s *ProductService) List(ctx context.Context, sport string) ([]entity.Product, error) {
	return s.Repo.List(ctx, sport)
}
