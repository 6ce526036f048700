package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"petnourish-service/internal/domain"
)

// SQLite-backed implementation of the CatalogRepository port.
type SqliteCatalogRepository struct{ DB *sql.DB }

func NewSqliteCatalogRepository(db *sql.DB) *SqliteCatalogRepository {
	return &SqliteCatalogRepository{DB: db}
}

// Return all catalog items in stable id order.
func (s *SqliteCatalogRepository) ListItems(ctx context.Context) ([]domain.CatalogItem, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite catalog repository: DB is nil")
	}

	q := `
	SELECT item_id, name, category, price, description, store, lat, lng
	FROM catalog_items
	ORDER BY item_id;
	`

	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list items: query catalog_items table: %w", err)
	}
	defer rows.Close()

	var items []domain.CatalogItem
	for rows.Next() {
		var it domain.CatalogItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.Price, &it.Description, &it.Store, &it.Coord.Lat, &it.Coord.Lng); err != nil {
			return nil, fmt.Errorf("list items: scan rows: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: row iteration: %w", err)
	}

	return items, nil
}

// Return stores grouped from the catalog, in item-id first-appearance order.
// Mirrors how the catalog is authored: one coordinate per store, carried on
// each of its items.
func (s *SqliteCatalogRepository) ListStores(ctx context.Context) ([]domain.Store, error) {
	items, err := s.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}

	return GroupStores(items), nil
}

// GroupStores builds the store list from the flat item list, keeping
// first-appearance order.
func GroupStores(items []domain.CatalogItem) []domain.Store {
	index := make(map[string]int)
	var stores []domain.Store

	for _, it := range items {
		i, ok := index[it.Store]
		if !ok {
			i = len(stores)
			index[it.Store] = i
			stores = append(stores, domain.Store{Name: it.Store, Coord: it.Coord})
		}
		stores[i].Items = append(stores[i].Items, it)
	}

	return stores
}

// Return all hospitals in stable id order.
func (s *SqliteCatalogRepository) ListHospitals(ctx context.Context) ([]domain.Place, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite catalog repository: DB is nil")
	}

	q := `
	SELECT hospital_id, name, lat, lng
	FROM hospitals
	ORDER BY hospital_id;
	`

	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list hospitals: query hospitals table: %w", err)
	}
	defer rows.Close()

	var hospitals []domain.Place
	for rows.Next() {
		p := domain.Place{Kind: domain.KindHospital}
		if err := rows.Scan(&p.Key, &p.Name, &p.Coord.Lat, &p.Coord.Lng); err != nil {
			return nil, fmt.Errorf("list hospitals: scan rows: %w", err)
		}
		hospitals = append(hospitals, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list hospitals: row iteration: %w", err)
	}

	return hospitals, nil
}
