// Command import loads the fetcher's matches.json into a Postgres
// mirror or a local SQLite snapshot so the dashboard can read it
// without the file. It performs no network retrieval of its own.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/echoez0401/lol-dashboard/internal/model"
	"github.com/echoez0401/lol-dashboard/internal/store"
)

// matchWriter is satisfied by both store backends.
type matchWriter interface {
	EnsureSchema(ctx context.Context) error
	InsertMatch(ctx context.Context, m *model.Match) error
	SaveMeta(ctx context.Context, summoner model.Summoner, lastUpdate string) error
}

func main() {
	input := flag.String("input", "data/matches.json", "path to the fetched matches.json")
	sqlitePath := flag.String("sqlite", "", "write to this SQLite snapshot instead of Postgres")
	flag.Parse()

	envPaths := []string{".env", "../.env", "../../.env"}
	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			fmt.Printf("Loaded .env from: %s\n", path)
			break
		}
	}

	ctx := context.Background()

	dataset, err := store.LoadFile(*input)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	var writer matchWriter
	if *sqlitePath != "" {
		s, err := store.NewSQLiteStore(*sqlitePath)
		if err != nil {
			log.Fatalf("Failed to open snapshot: %v", err)
		}
		defer s.Close()
		writer = s
		log.Printf("[Import] Writing to snapshot %s", *sqlitePath)
	} else {
		s, err := store.NewPostgresStore(ctx)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer s.Close()
		writer = s
		log.Println("[Import] Writing to Postgres")
	}

	if err := writer.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	imported := 0
	for i := range dataset.Matches {
		if err := writer.InsertMatch(ctx, &dataset.Matches[i]); err != nil {
			log.Printf("[Import] Failed to insert %s: %v", dataset.Matches[i].MatchID, err)
			continue
		}
		imported++
	}

	if err := writer.SaveMeta(ctx, dataset.Summoner, dataset.LastUpdate); err != nil {
		log.Printf("[Import] Failed to save metadata: %v", err)
	}

	fmt.Printf("Imported %d/%d matches for %s\n", imported, len(dataset.Matches), dataset.Summoner.Name)
	if imported < len(dataset.Matches) {
		os.Exit(1)
	}
}
