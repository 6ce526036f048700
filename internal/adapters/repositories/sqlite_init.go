package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"petnourish-service/internal/geo"
)

// Initialize the sqlite database schema: catalog reference data, the
// geocode cache, and the key-value preference store.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createItemsQuery := `
	CREATE TABLE IF NOT EXISTS catalog_items (
		item_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		price TEXT NOT NULL,
		description TEXT NOT NULL,
		store TEXT NOT NULL,
		lat REAL NOT NULL,
		lng REAL NOT NULL
	);
	`

	createHospitalsQuery := `
	CREATE TABLE IF NOT EXISTS hospitals (
		hospital_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		lat REAL NOT NULL,
		lng REAL NOT NULL
	);
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        query TEXT PRIMARY KEY,
        lat REAL NOT NULL,
        lng REAL NOT NULL,
        label TEXT NOT NULL
    );
	`

	createKVQuery := `
	CREATE TABLE IF NOT EXISTS kv_store (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_catalog_items_store
    ON catalog_items(store);
	`

	statements := []string{
		createItemsQuery,
		createHospitalsQuery,
		createGeocodeCacheQuery,
		createKVQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type ItemSeed struct {
	ID          int     `json:"id"`
	Name        string  `json:"item"`
	Category    string  `json:"category"`
	Price       string  `json:"price"`
	Description string  `json:"desc"`
	Store       string  `json:"store"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

type HospitalSeed struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type CatalogSeed struct {
	Items     []ItemSeed     `json:"items"`
	Hospitals []HospitalSeed `json:"hospitals"`
}

// LoadSeed reads and validates the catalog seed file.
func LoadSeed(jsonPath string) (CatalogSeed, error) {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return CatalogSeed{}, fmt.Errorf("seed catalog: read %q: %w", jsonPath, err)
	}

	var seed CatalogSeed
	if err := json.Unmarshal(raw, &seed); err != nil {
		return CatalogSeed{}, fmt.Errorf("seed catalog: parse json: %w", err)
	}

	for i, it := range seed.Items {
		if it.ID <= 0 {
			return CatalogSeed{}, fmt.Errorf("seed catalog: invalid item id at index %d: %d", i, it.ID)
		}
		if strings.TrimSpace(it.Name) == "" || strings.TrimSpace(it.Store) == "" {
			return CatalogSeed{}, fmt.Errorf("seed catalog: item at index %d: name and store are required", i)
		}
		if !geo.ValidLatLng(it.Lat, it.Lng) {
			return CatalogSeed{}, fmt.Errorf("seed catalog: item %d: coordinates out of range", it.ID)
		}
	}

	for i, h := range seed.Hospitals {
		if strings.TrimSpace(h.ID) == "" || strings.TrimSpace(h.Name) == "" {
			return CatalogSeed{}, fmt.Errorf("seed catalog: hospital at index %d: id and name are required", i)
		}
		if !geo.ValidLatLng(h.Lat, h.Lng) {
			return CatalogSeed{}, fmt.Errorf("seed catalog: hospital %q: coordinates out of range", h.ID)
		}
	}

	return seed, nil
}

// Populate the sqlite database with catalog data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	seed, err := LoadSeed(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed catalog: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	itemStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO catalog_items (
		item_id, name, category, price, description, store, lat, lng
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed catalog: prepare item insert: %w", err)
	}
	defer itemStmt.Close()

	for _, it := range seed.Items {
		if _, err := itemStmt.Exec(it.ID, it.Name, it.Category, it.Price, it.Description, it.Store, it.Lat, it.Lng); err != nil {
			return fmt.Errorf("seed catalog: insert item_id=%d: %w", it.ID, err)
		}
	}

	hospStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO hospitals (hospital_id, name, lat, lng)
	VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed catalog: prepare hospital insert: %w", err)
	}
	defer hospStmt.Close()

	for _, h := range seed.Hospitals {
		if _, err := hospStmt.Exec(h.ID, h.Name, h.Lat, h.Lng); err != nil {
			return fmt.Errorf("seed catalog: insert hospital_id=%s: %w", h.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed catalog: commit tx: %w", err)
	}

	return nil
}
