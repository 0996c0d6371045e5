package product

import (
	"context"
	"strings"

	"github.com/hamzzakaya/nano-envanter/internal/domain"
	productrepo "github.com/hamzzakaya/nano-envanter/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Create requires a non-empty name and code and a positive count. Updates
// carry no such check: stock may be edited down to zero, but a product is
// never created empty.
func (s *Service) Create(ctx context.Context, patch domain.ProductPatch) (*domain.Product, error) {
	if strings.TrimSpace(patch.Name) == "" || strings.TrimSpace(patch.Code) == "" || patch.Count <= 0 {
		return nil, domain.ErrMissingFields
	}
	return s.repo.Create(ctx, patch)
}

func (s *Service) Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
