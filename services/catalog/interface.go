package catalog

import (
	"context"

	catalogRepo "gharseva/database/repository/catalog"
	"gharseva/models"
)

// CatalogService assembles category pages and manages the catalog records
// behind them.
type CatalogService interface {
	CategoryPage(ctx context.Context, token, gender string) (*models.CategoryPage, error)
	Categories() []models.CategoryDefinition
	RefreshCategory(ctx context.Context, token string) error

	CreateService(ctx context.Context, record models.ServiceRecord) (string, error)
	UpdateService(ctx context.Context, record models.ServiceRecord) error
	DeleteService(ctx context.Context, id string) error
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Repo     catalogRepo.ServiceRepository
	Cache    PageCache
	Registry *Registry
}
