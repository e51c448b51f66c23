package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/echoez0401/lol-dashboard/internal/model"
)

// SQLiteStore reads and writes a local snapshot of the match mirror,
// for running the dashboard without a Postgres instance.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the snapshot at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}

	// Test connection with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping snapshot: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the snapshot.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// EnsureSchema creates the snapshot tables.
func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS matches (
			match_id      TEXT PRIMARY KEY,
			game_creation INTEGER NOT NULL,
			game_duration INTEGER NOT NULL,
			queue_id      INTEGER NOT NULL,
			game_version  TEXT NOT NULL,
			my_data       TEXT NOT NULL,
			all_players   TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS dataset_meta (
			id          INTEGER PRIMARY KEY CHECK (id = 1),
			summoner    TEXT NOT NULL,
			last_update TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// InsertMatch inserts a match if it doesn't exist.
func (s *SQLiteStore) InsertMatch(ctx context.Context, m *model.Match) error {
	myData, err := json.Marshal(m.MyData)
	if err != nil {
		return err
	}
	allPlayers, err := json.Marshal(m.AllPlayers)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO matches (match_id, game_creation, game_duration, queue_id, game_version, my_data, all_players)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, m.MatchID, m.GameCreation, m.GameDuration, m.QueueID, m.GameVersion, string(myData), string(allPlayers))
	return err
}

// SaveMeta upserts the summoner and last-update metadata.
func (s *SQLiteStore) SaveMeta(ctx context.Context, summoner model.Summoner, lastUpdate string) error {
	summonerJSON, err := json.Marshal(summoner)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO dataset_meta (id, summoner, last_update)
		VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET summoner = excluded.summoner, last_update = excluded.last_update
	`, string(summonerJSON), lastUpdate)
	return err
}

// LoadDataset reads the full dataset from the snapshot.
func (s *SQLiteStore) LoadDataset(ctx context.Context) (*model.Dataset, error) {
	var ds model.Dataset

	var summonerJSON string
	err := s.db.QueryRowContext(ctx, `
		SELECT summoner, last_update FROM dataset_meta WHERE id = 1
	`).Scan(&summonerJSON, &ds.LastUpdate)
	if err == nil {
		if err := json.Unmarshal([]byte(summonerJSON), &ds.Summoner); err != nil {
			return nil, fmt.Errorf("failed to parse summoner: %w", err)
		}
	} else if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT match_id, game_creation, game_duration, queue_id, game_version, my_data, all_players
		FROM matches
		ORDER BY game_creation
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m model.Match
		var myData, allPlayers string
		if err := rows.Scan(&m.MatchID, &m.GameCreation, &m.GameDuration, &m.QueueID, &m.GameVersion, &myData, &allPlayers); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		if err := json.Unmarshal([]byte(myData), &m.MyData); err != nil {
			return nil, fmt.Errorf("failed to parse my_data for %s: %w", m.MatchID, err)
		}
		if err := json.Unmarshal([]byte(allPlayers), &m.AllPlayers); err != nil {
			return nil, fmt.Errorf("failed to parse all_players for %s: %w", m.MatchID, err)
		}
		ds.Matches = append(ds.Matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read matches: %w", err)
	}

	ds.Matches = dedupeMatches(ds.Matches)
	return &ds, nil
}
