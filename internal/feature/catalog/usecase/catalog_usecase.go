// Package usecase implements the business logic for catalog operations.
package usecase

import (
	"context"
	"errors"

	"globalhub_backend/internal/feature/catalog/domain/entity"
)

// ErrProductNotFound is returned when no active product matches the given ID.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository abstracts the persistence layer for store products.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ProductRepository interface {
	ListActive(ctx context.Context) ([]entity.Product, error)
	FindByID(ctx context.Context, id string) (*entity.Product, error)
}

// EventRepository abstracts the persistence layer for event listings.
type EventRepository interface {
	ListActive(ctx context.Context) ([]entity.Event, error)
}

// JobRepository abstracts the persistence layer for job listings.
type JobRepository interface {
	ListActive(ctx context.Context) ([]entity.Job, error)
}

// CatalogUsecase provides read access to the portal's content catalogs.
type CatalogUsecase struct {
	products ProductRepository
	events   EventRepository
	jobs     JobRepository
}

// NewCatalogUsecase creates a new CatalogUsecase with the given repositories.
func NewCatalogUsecase(products ProductRepository, events EventRepository, jobs JobRepository) *CatalogUsecase {
	return &CatalogUsecase{products: products, events: events, jobs: jobs}
}

// ListProducts returns all active store products.
func (u *CatalogUsecase) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return u.products.ListActive(ctx)
}

// FindProduct returns a single active product by ID.
func (u *CatalogUsecase) FindProduct(ctx context.Context, id string) (*entity.Product, error) {
	return u.products.FindByID(ctx, id)
}

// ListEvents returns all active event listings.
func (u *CatalogUsecase) ListEvents(ctx context.Context) ([]entity.Event, error) {
	return u.events.ListActive(ctx)
}

// ListJobs returns all active job listings.
func (u *CatalogUsecase) ListJobs(ctx context.Context) ([]entity.Job, error) {
	return u.jobs.ListActive(ctx)
}
