package repositories

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"petnourish-service/internal/domain"

	_ "modernc.org/sqlite"
)

const seedJSON = `{
  "items": [
    { "id": 1, "item": "Dry Food A", "category": "Dry Food", "price": "580,000₫", "desc": "Feed.", "store": "Pet Mart", "lat": 10.7845, "lng": 106.698 },
    { "id": 2, "item": "Wet Food B", "category": "Wet Food", "price": "35,000₫", "desc": "Feed.", "store": "Paddy Pet Shop", "lat": 10.8062, "lng": 106.7321 },
    { "id": 3, "item": "Litter C", "category": "Litter", "price": "120,000₫", "desc": "Litter.", "store": "Pet Mart", "lat": 10.7845, "lng": 106.698 }
  ],
  "hospitals": [
    { "id": "h1", "name": "City Pet Hospital", "lat": 10.7782, "lng": 106.7032 }
  ]
}`

func seededDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatal(err)
	}

	seedPath := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(seedPath, []byte(seedJSON), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := SeedFromJSON(db, seedPath); err != nil {
		t.Fatal(err)
	}

	return db
}

func TestSqliteCatalogRepositoryListItems(t *testing.T) {
	repo := NewSqliteCatalogRepository(seededDB(t))

	items, err := repo.ListItems(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	if items[0].ID != 1 || items[0].Name != "Dry Food A" || items[0].Store != "Pet Mart" {
		t.Errorf("item 0 = %+v", items[0])
	}
}

func TestSqliteCatalogRepositoryListStores(t *testing.T) {
	repo := NewSqliteCatalogRepository(seededDB(t))

	stores, err := repo.ListStores(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(stores) != 2 {
		t.Fatalf("got %d stores, want 2", len(stores))
	}

	// Pet Mart carries two items; stores keep first-appearance order.
	if stores[0].Name != "Pet Mart" || len(stores[0].Items) != 2 {
		t.Errorf("store 0 = %s with %d items", stores[0].Name, len(stores[0].Items))
	}
}

func TestSqliteCatalogRepositoryListHospitals(t *testing.T) {
	repo := NewSqliteCatalogRepository(seededDB(t))

	hospitals, err := repo.ListHospitals(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(hospitals) != 1 {
		t.Fatalf("got %d hospitals, want 1", len(hospitals))
	}
	h := hospitals[0]
	if h.Kind != domain.KindHospital || h.Key != "h1" || h.Name != "City Pet Hospital" {
		t.Errorf("hospital = %+v", h)
	}
}

func TestSeedFromJSONIsIdempotent(t *testing.T) {
	db := seededDB(t)

	seedPath := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(seedPath, []byte(seedJSON), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := SeedFromJSON(db, seedPath); err != nil {
		t.Fatal(err)
	}

	repo := NewSqliteCatalogRepository(db)
	items, err := repo.ListItems(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 {
		t.Errorf("got %d items after reseed, want 3", len(items))
	}
}

func TestLoadSeedRejectsBadRows(t *testing.T) {
	bad := `{"items":[{"id":0,"item":"x","category":"c","price":"1₫","desc":"d","store":"s","lat":10,"lng":106}],"hospitals":[]}`

	seedPath := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(seedPath, []byte(bad), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSeed(seedPath); err == nil {
		t.Fatal("expected error for non-positive item id")
	}
}
