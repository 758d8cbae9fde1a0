package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"drone-dispatch-service/internal/adapters/distance"
	"drone-dispatch-service/internal/adapters/ingest"
	"drone-dispatch-service/internal/adapters/repositories"
	"drone-dispatch-service/internal/api"
	"drone-dispatch-service/internal/config"
	"drone-dispatch-service/internal/platform/db"
	"drone-dispatch-service/internal/platform/events"
	"drone-dispatch-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres, Redis) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	calibrationPath := os.Getenv("CALIBRATION_PATH")

	energy, err := config.LoadCalibration(calibrationPath)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	orderRepo, matrixRepo, closeDB, err := openRepositories(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer closeDB()

	cells, err := matrixRepo.LoadMatrix(ctx)
	if err != nil {
		log.Fatalf("load distance matrix: %v (run cmd/dbtool or set DISTANCES_CSV)", err)
	}
	matrix, err := distance.NewMatrix(cells)
	if err != nil {
		log.Fatal(err)
	}

	broker, err := openBroker()
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(orderRepo, matrix, energy, broker)

	// Write timeout covers long packing runs on large backlogs; the SSE
	// stream needs it generous too.
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

// openRepositories selects the persistence backend: Postgres when
// DATABASE_URL is set, a local SQLite file otherwise. The SQLite path also
// initializes the schema and seeds from the CSV feeds for local runs.
func openRepositories(ctx context.Context) (ports.OrderRepository, ports.MatrixRepository, func(), error) {
	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		repo := repositories.NewPostgresRepository(pg)
		return repo, repo, func() { _ = pg.Close() }, nil
	}

	dbPath := config.Get("DB_PATH", "data/dispatch.db")
	sqlite, err := openSqlite(dbPath)
	if err != nil {
		return nil, nil, nil, err
	}

	if err := initAndSeed(sqlite); err != nil {
		_ = sqlite.Close()
		return nil, nil, nil, err
	}

	orderRepo := repositories.NewSqliteOrderRepository(sqlite)
	matrixRepo := repositories.NewSqliteMatrixRepository(sqlite)
	return orderRepo, matrixRepo, func() { _ = sqlite.Close() }, nil
}

func openSqlite(dbPath string) (*sql.DB, error) {
	sqlite, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := sqlite.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return sqlite, nil
}

func initAndSeed(sqlite *sql.DB) error {
	if err := repositories.InitSchema(sqlite); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	ordersCSV := config.Get("ORDERS_CSV", "data/deliveries.csv")
	distancesCSV := config.Get("DISTANCES_CSV", "data/distances.csv")

	orders, err := ingest.LoadOrdersCSV(ordersCSV)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	if err := repositories.SeedOrders(sqlite, orders); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	cells, err := ingest.LoadMatrixCSV(distancesCSV)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	if err := repositories.SeedDistances(sqlite, cells); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

func openBroker() (events.Broker, error) {
	redisURL := strings.TrimSpace(os.Getenv("REDIS_URL"))
	if redisURL == "" {
		return events.NewMemoryBroker(), nil
	}
	return events.NewRedisBroker(redisURL)
}
