package main

import (
	"context"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"drone-dispatch-service/internal/adapters/ingest"
	"drone-dispatch-service/internal/adapters/repositories"
	"drone-dispatch-service/internal/config"
	"drone-dispatch-service/internal/platform/db"
)

// dbtool initializes the Postgres schema and seeds it from the CSV feeds.
// The server seeds SQLite itself; for Postgres this tool runs once up front.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	ctx := context.Background()
	repo := repositories.NewPostgresRepository(pg)

	log.Println("Initializing database schema...")
	if err := repo.InitSchema(ctx); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	ordersCSV := config.Get("ORDERS_CSV", "data/deliveries.csv")
	distancesCSV := config.Get("DISTANCES_CSV", "data/distances.csv")

	log.Println("Seeding database...")
	orders, err := ingest.LoadOrdersCSV(ordersCSV)
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	if err := repo.SeedOrders(ctx, orders); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	cells, err := ingest.LoadMatrixCSV(distancesCSV)
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	if err := repo.SeedDistances(ctx, cells); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("Seeding complete. orders=%d zones=%d", len(orders), len(cells))
}
