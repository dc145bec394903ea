package main

import (
	"database/sql"
	"fmt"
	"itinerary-planner-service/internal/adapters/cache"
	"itinerary-planner-service/internal/adapters/repositories"
	"itinerary-planner-service/internal/adapters/travel"
	"itinerary-planner-service/internal/api"
	"itinerary-planner-service/internal/config"
	"itinerary-planner-service/internal/platform/db"
	"itinerary-planner-service/internal/ports"
	"itinerary-planner-service/internal/services"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite/Postgres, Redis, ORS) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	orsKey := os.Getenv("ORS_API_KEY")
	if strings.TrimSpace(orsKey) == "" {
		log.Fatal("ORS_API_KEY is required")
	}

	var (
		repo        ports.ActivityRepository
		travelCache ports.TravelCache
		conn        *sql.DB
		err         error
	)

	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		conn, err = db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		repo = repositories.NewPostgresActivityRepository(conn)
		travelCache = cache.NewSQLTravelCache(conn)
	} else {
		dbPath := config.Get("DB_PATH", "data/app.db")
		seedPath := config.Get("SEED_PATH", "data/seeds/activities.json")

		conn, err = openSqlite(dbPath)
		if err != nil {
			log.Fatal(err)
		}

		// Initialize schema and seed demo data on startup for local runs.
		if err := initAndSeed(conn, seedPath); err != nil {
			log.Fatal(err)
		}

		repo = repositories.NewSqliteActivityRepository(conn)
		travelCache = cache.NewSqliteTravelCache(conn)
	}
	defer conn.Close()

	// A shared Redis cache takes precedence over the per-instance SQL one.
	if addr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(addr) != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		travelCache = cache.NewRedisTravelCache(client, 0)
		log.Printf("Travel cache backend=redis addr=%s", addr)
	}

	provider, err := travel.NewORSTravelProvider(orsKey, travelCache)
	if err != nil {
		log.Fatal(err)
	}

	fetcher := services.NewTravelTimeFetcher(provider)
	defer fetcher.Close()

	router := api.NewRouter(repo, fetcher)

	// Timeouts are tuned for cold-cache day analysis (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openSqlite(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("open db: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
