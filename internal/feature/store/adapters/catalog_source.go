package adapters

import (
	"context"
	"errors"

	catalogusecase "globalhub_backend/internal/feature/catalog/usecase"
	"globalhub_backend/internal/feature/store/domain/entity"
	"globalhub_backend/internal/feature/store/usecase"
)

// catalogSource bridges the catalog feature's product repository to the
// store's ProductCatalog interface, converting catalog products into the
// snapshots carried by cart items.
type catalogSource struct {
	products catalogusecase.ProductRepository
}

// Compile-time check to ensure catalogSource implements ProductCatalog.
var _ usecase.ProductCatalog = (*catalogSource)(nil)

// NewCatalogSource creates a new catalogSource over the given repository.
func NewCatalogSource(products catalogusecase.ProductRepository) *catalogSource {
	return &catalogSource{products: products}
}

// FindByID looks up a product and returns its store snapshot.
// Catalog misses are translated to the store's ErrProductNotFound.
func (s *catalogSource) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogusecase.ErrProductNotFound) {
			return nil, usecase.ErrProductNotFound
		}
		return nil, err
	}
	return &entity.Product{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Category: p.Category,
		Image:    p.Image,
	}, nil
}
