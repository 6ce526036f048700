package repositories

import (
	"context"

	"petnourish-service/internal/domain"
)

// In-memory CatalogRepository used in tests.
type MemoryCatalogRepository struct {
	Items     []domain.CatalogItem
	Hospitals []domain.Place
}

func (m *MemoryCatalogRepository) ListItems(ctx context.Context) ([]domain.CatalogItem, error) {
	return m.Items, nil
}

func (m *MemoryCatalogRepository) ListStores(ctx context.Context) ([]domain.Store, error) {
	return GroupStores(m.Items), nil
}

func (m *MemoryCatalogRepository) ListHospitals(ctx context.Context) ([]domain.Place, error) {
	return m.Hospitals, nil
}
