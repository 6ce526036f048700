package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema. Mirrors the sqlite schema; used by the
// dbtool for shared-cache deployments.
func InitSchemaPostgres(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS catalog_items (
			item_id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			price TEXT NOT NULL,
			description TEXT NOT NULL,
			store TEXT NOT NULL,
			lat DOUBLE PRECISION NOT NULL,
			lng DOUBLE PRECISION NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS hospitals (
			hospital_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			lat DOUBLE PRECISION NOT NULL,
			lng DOUBLE PRECISION NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS geocode_cache (
			query TEXT PRIMARY KEY,
			lat DOUBLE PRECISION NOT NULL,
			lng DOUBLE PRECISION NOT NULL,
			label TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS kv_store (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_catalog_items_store
		ON catalog_items(store);`,
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

// Populate the Postgres database with catalog data from a JSON file.
func SeedFromJSONPostgres(db *sql.DB, jsonPath string) error {
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
	INSERT INTO catalog_items (item_id, name, category, price, description, store, lat, lng)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (item_id) DO UPDATE
	SET name = EXCLUDED.name,
		category = EXCLUDED.category,
		price = EXCLUDED.price,
		description = EXCLUDED.description,
		store = EXCLUDED.store,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng;
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
	INSERT INTO hospitals (hospital_id, name, lat, lng)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (hospital_id) DO UPDATE
	SET name = EXCLUDED.name,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng;
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
