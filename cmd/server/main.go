package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"petnourish-service/internal/adapters/cache"
	"petnourish-service/internal/adapters/kv"
	"petnourish-service/internal/adapters/repositories"
	"petnourish-service/internal/adapters/routing"
	"petnourish-service/internal/api"
	"petnourish-service/internal/config"
	"petnourish-service/internal/platform/db"
	"petnourish-service/internal/ports"
	"petnourish-service/internal/prefs"
	"petnourish-service/internal/services"
	"petnourish-service/internal/session"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis, OSRM, Nominatim) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/catalog.json")
	port := config.Get("PORT", "8080")
	userAgent := config.Get("HTTP_USER_AGENT", "petnourish-service/1.0")
	osrmBase := config.Get("OSRM_BASE_URL", routing.DefaultOSRMBaseURL)
	nominatimBase := config.Get("NOMINATIM_BASE_URL", routing.DefaultNominatimBaseURL)

	sqliteDB, err := db.OpenSqlite(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqliteDB.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(sqliteDB, seedPath); err != nil {
		log.Fatal(err)
	}

	// Geocode cache lives in Postgres when a shared database is configured,
	// otherwise in the local sqlite file.
	geocodeCache, pgDB, err := openGeocodeCache(sqliteDB)
	if err != nil {
		log.Fatal(err)
	}
	if pgDB != nil {
		defer pgDB.Close()
	}

	kvStore, closeKV, err := openKV(sqliteDB)
	if err != nil {
		log.Fatal(err)
	}
	if closeKV != nil {
		defer closeKV()
	}

	repo := repositories.NewSqliteCatalogRepository(sqliteDB)
	routeProvider := routing.NewOSRMRouteProvider(osrmBase, userAgent)
	geocoder := routing.NewNominatimGeocoder(nominatimBase, userAgent, geocodeCache)
	schedules := services.NewSyntheticSchedules()
	sess := session.New()
	preferences := prefs.New(kvStore)

	router := api.NewRouter(repo, routeProvider, geocoder, schedules, sess, preferences)

	// Timeouts are tuned for cold-cache routing (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func initAndSeed(sqliteDB *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(sqliteDB); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(sqliteDB, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

func openGeocodeCache(sqliteDB *sql.DB) (routing.GeocodeCache, *sql.DB, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		return cache.NewSqliteGeocodeCache(sqliteDB), nil, nil
	}

	pgDB, err := db.OpenPostgres(databaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("open geocode cache: %w", err)
	}
	return cache.NewSQLGeocodeCache(pgDB), pgDB, nil
}

// openKV picks the preference backend: Redis when REDIS_ADDR is set,
// otherwise the sqlite kv_store table.
func openKV(sqliteDB *sql.DB) (ports.KeyValueStore, func() error, error) {
	redisAddr := os.Getenv("REDIS_ADDR")
	if strings.TrimSpace(redisAddr) == "" {
		return kv.NewSqliteStore(sqliteDB), nil, nil
	}

	store := kv.NewRedisStore(redisAddr, 0)
	return store, store.Close, nil
}
