package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/echoez0401/lol-dashboard/internal/model"
)

// LoadFile reads a dataset from the fetcher's matches.json.
func LoadFile(path string) (*model.Dataset, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	var ds model.Dataset
	if err := json.Unmarshal(content, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}

	before := len(ds.Matches)
	ds.Matches = dedupeMatches(ds.Matches)
	if dropped := before - len(ds.Matches); dropped > 0 {
		log.Printf("[Store] Dropped %d duplicate matches from %s", dropped, path)
	}

	log.Printf("[Store] Loaded %d matches from %s", len(ds.Matches), path)
	return &ds, nil
}
