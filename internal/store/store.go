// Package store loads the pre-fetched match dataset the dashboard
// runs on. Three backends read the same shape: the fetcher's
// matches.json, a Postgres mirror and a local SQLite snapshot. The
// stores only ever read; the acquisition side owns all writes except
// the one-shot import command.
package store

import (
	"github.com/bits-and-blooms/bloom/v3"

	"github.com/echoez0401/lol-dashboard/internal/model"
)

// expectedMatches sizes the duplicate screen. A full season is a few
// thousand matches, so this is generous.
const expectedMatches = 100000

// dedupeMatches drops repeated match IDs, keeping first occurrence.
// The fetcher appends incrementally, so overlapping refreshes can
// leave the same match in the file twice. The bloom filter is only the
// fast negative screen; a hit is confirmed against the exact set so a
// false positive can never discard a real match.
func dedupeMatches(matches []model.Match) []model.Match {
	screen := bloom.NewWithEstimates(expectedMatches, 0.001)
	seen := make(map[string]struct{}, len(matches))
	out := make([]model.Match, 0, len(matches))
	for _, m := range matches {
		if screen.TestString(m.MatchID) {
			if _, dup := seen[m.MatchID]; dup {
				continue
			}
		}
		screen.AddString(m.MatchID)
		seen[m.MatchID] = struct{}{}
		out = append(out, m)
	}
	return out
}
