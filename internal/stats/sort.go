package stats

import (
	"sort"
	"strings"
)

// Sortable column identifiers for the champion table.
const (
	ColumnChampion    = "championName"
	ColumnGames       = "games"
	ColumnWins        = "wins"
	ColumnLosses      = "losses"
	ColumnWinRate     = "winRate"
	ColumnKDA         = "avgKDA"
	ColumnDamageDealt = "avgDamageDealt"
	ColumnDamageTaken = "avgDamageTaken"
)

// SortState is the active sort column and direction. It survives
// re-filters unchanged and is only mutated by explicit sort actions.
type SortState struct {
	Column    string `json:"column"`
	Ascending bool   `json:"ascending"`
}

// DefaultSortState has no active column: the table arrives from
// aggregation already ordered by games descending, and the first
// explicit sort on any column (games included) starts descending.
func DefaultSortState() SortState {
	return SortState{}
}

// SortTable sorts a copy of stats by the requested column and returns
// it with the new sort state. Requesting the column that is already
// active flips the direction; any other column resets to descending.
// Ties break deterministically on games descending, then champion name
// ascending, so repeated sorts of equal values cannot reorder rows.
func SortTable(stats []ChampionStat, column string, state SortState) ([]ChampionStat, SortState) {
	if column == state.Column {
		state.Ascending = !state.Ascending
	} else {
		state = SortState{Column: column, Ascending: false}
	}

	sorted := make([]ChampionStat, len(stats))
	copy(sorted, stats)

	sort.Slice(sorted, func(i, j int) bool {
		cmp := compareColumn(sorted[i], sorted[j], state.Column)
		if cmp == 0 {
			if sorted[i].Games != sorted[j].Games {
				return sorted[i].Games > sorted[j].Games
			}
			return sorted[i].ChampionName < sorted[j].ChampionName
		}
		if state.Ascending {
			return cmp < 0
		}
		return cmp > 0
	})

	return sorted, state
}

// compareColumn compares two stats on one column: negative when a
// orders before b ascending. Unknown columns fall back to games.
func compareColumn(a, b ChampionStat, column string) int {
	switch column {
	case ColumnChampion:
		return strings.Compare(strings.ToLower(a.ChampionName), strings.ToLower(b.ChampionName))
	case ColumnWins:
		return a.Wins - b.Wins
	case ColumnLosses:
		return a.Losses - b.Losses
	case ColumnWinRate:
		return compareFloat(a.WinRate, b.WinRate)
	case ColumnKDA:
		return compareFloat(a.AvgKDA, b.AvgKDA)
	case ColumnDamageDealt:
		return a.AvgDamageDealt - b.AvgDamageDealt
	case ColumnDamageTaken:
		return a.AvgDamageTaken - b.AvgDamageTaken
	default:
		return a.Games - b.Games
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
