package kv

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func newSqliteStore(t *testing.T) *SqliteStore {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(`CREATE TABLE kv_store (key TEXT PRIMARY KEY, value TEXT NOT NULL);`); err != nil {
		t.Fatal(err)
	}

	return NewSqliteStore(db)
}

func TestSqliteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newSqliteStore(t)

	if _, ok, err := store.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}

	if err := store.Set(ctx, "pn_home_location_v1", `{"coord":{"Lat":10.8,"Lng":106.65}}`); err != nil {
		t.Fatal(err)
	}

	v, ok, err := store.Get(ctx, "pn_home_location_v1")
	if err != nil || !ok || v == "" {
		t.Fatalf("get after set: v=%q ok=%v err=%v", v, ok, err)
	}

	// Overwrite replaces, not duplicates.
	if err := store.Set(ctx, "pn_home_location_v1", `{}`); err != nil {
		t.Fatal(err)
	}
	v, _, _ = store.Get(ctx, "pn_home_location_v1")
	if v != `{}` {
		t.Errorf("value after overwrite = %q", v)
	}

	if err := store.Delete(ctx, "pn_home_location_v1"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := store.Get(ctx, "pn_home_location_v1"); ok {
		t.Fatal("key still present after delete")
	}
}
