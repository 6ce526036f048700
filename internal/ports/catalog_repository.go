package ports

import (
	"context"

	"petnourish-service/internal/domain"
)

// Port: a boundary for retrieving immutable catalog reference data.
type CatalogRepository interface {
	// Retrieve all catalog items in stable id order.
	ListItems(ctx context.Context) ([]domain.CatalogItem, error)
	// Retrieve stores grouped from the catalog, in first-appearance order.
	ListStores(ctx context.Context) ([]domain.Store, error)
	// Retrieve all veterinary hospitals in stable id order.
	ListHospitals(ctx context.Context) ([]domain.Place, error)
}
