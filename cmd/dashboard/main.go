package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/echoez0401/lol-dashboard/internal/model"
	"github.com/echoez0401/lol-dashboard/internal/server"
	"github.com/echoez0401/lol-dashboard/internal/stats"
	"github.com/echoez0401/lol-dashboard/internal/store"
)

// fallbackAssetVersion is used when DDRAGON_VERSION is not configured.
const fallbackAssetVersion = "14.3.1"

func main() {
	// Load .env file - try multiple locations
	envPaths := []string{".env", "../.env", "../../.env"}
	envLoaded := false
	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			fmt.Printf("Loaded .env from: %s\n", path)
			envLoaded = true
			break
		}
	}
	if !envLoaded {
		log.Println("No .env file found, using environment variables")
	}

	ctx := context.Background()

	dataset, err := loadDataset(ctx)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	if len(dataset.Matches) == 0 {
		log.Println("[Dashboard] Warning: dataset contains no matches")
	}

	assetVersion := getEnv("DDRAGON_VERSION", fallbackAssetVersion)
	log.Printf("[Dashboard] Serving %d matches for %s (assets v%s)",
		len(dataset.Matches), dataset.Summoner.Name, assetVersion)

	srv := server.New(dataset, assetVersion, stats.SystemClock{})

	port := getEnv("PORT", "8080")
	fmt.Printf("Server starting on http://localhost:%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, srv.Router()))
}

// loadDataset picks the store backend from the environment:
// MATCHES_FILE first, then SQLITE_PATH, then DATABASE_URL.
func loadDataset(ctx context.Context) (*model.Dataset, error) {
	if path := os.Getenv("MATCHES_FILE"); path != "" {
		return store.LoadFile(path)
	}

	if path := os.Getenv("SQLITE_PATH"); path != "" {
		s, err := store.NewSQLiteStore(path)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		log.Printf("[Dashboard] Reading snapshot %s", path)
		return s.LoadDataset(ctx)
	}

	s, err := store.NewPostgresStore(ctx)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	log.Println("[Dashboard] Reading matches from Postgres")
	return s.LoadDataset(ctx)
}

// getEnv gets an environment variable with a default fallback
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
