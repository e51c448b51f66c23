package stats

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/echoez0401/lol-dashboard/internal/format"
	"github.com/echoez0401/lol-dashboard/internal/model"
)

// DefaultRecentCount is how many matches the recent-matches list shows.
const DefaultRecentCount = 20

// maxPatchOptions caps the patch filter dropdown.
const maxPatchOptions = 5

// ChampionStat is the aggregate for one champion over the filtered
// match set. It is recomputed on every filter change, never persisted.
type ChampionStat struct {
	ChampionName   string  `json:"championName"`
	Games          int     `json:"games"`
	Wins           int     `json:"wins"`
	Losses         int     `json:"losses"`
	WinRate        float64 `json:"winRate"` // percent, one decimal
	TotalKills     int     `json:"totalKills"`
	TotalDeaths    int     `json:"totalDeaths"`
	TotalAssists   int     `json:"totalAssists"`
	AvgKDA         float64 `json:"avgKDA"` // two decimals
	AvgDamageDealt int     `json:"avgDamageDealt"`
	AvgDamageTaken int     `json:"avgDamageTaken"`
}

// KDA computes the kill/death/assist ratio rounded to two decimals.
// Zero deaths use a divisor of 1 so the ratio stays finite; 0/0/0 is
// 0.00.
func KDA(kills, deaths, assists int) float64 {
	divisor := deaths
	if divisor == 0 {
		divisor = 1
	}
	return round2(float64(kills+assists) / float64(divisor))
}

// CalculateStats filters matches by period and mode and aggregates one
// ChampionStat per champion the player appeared on. Output is ordered
// by games played descending; champions with equal game counts keep
// their encounter order. Filtering is idempotent, so callers may pass
// an already-filtered collection.
func CalculateStats(matches []model.Match, period, mode string, clock Clock) []ChampionStat {
	filtered := FilterMatches(matches, period, mode, clock)
	if len(filtered) == 0 {
		return nil
	}

	type aggregate struct {
		games       int
		wins        int
		kills       int
		deaths      int
		assists     int
		damageDealt int
		damageTaken int
	}

	aggregates := make(map[string]*aggregate)
	var order []string // champions in encounter order

	for _, m := range filtered {
		my := m.MyData
		agg, ok := aggregates[my.ChampionName]
		if !ok {
			agg = &aggregate{}
			aggregates[my.ChampionName] = agg
			order = append(order, my.ChampionName)
		}

		agg.games++
		if my.Win {
			agg.wins++
		}
		agg.kills += my.Kills
		agg.deaths += my.Deaths
		agg.assists += my.Assists
		agg.damageDealt += my.TotalDamageDealtToChampions
		agg.damageTaken += my.TotalDamageTaken
	}

	out := make([]ChampionStat, 0, len(order))
	for _, name := range order {
		agg := aggregates[name]
		games := agg.games
		out = append(out, ChampionStat{
			ChampionName:   name,
			Games:          games,
			Wins:           agg.wins,
			Losses:         games - agg.wins,
			WinRate:        round1(float64(agg.wins) / float64(games) * 100),
			TotalKills:     agg.kills,
			TotalDeaths:    agg.deaths,
			TotalAssists:   agg.assists,
			AvgKDA:         KDA(agg.kills, agg.deaths, agg.assists),
			AvgDamageDealt: int(math.Round(float64(agg.damageDealt) / float64(games))),
			AvgDamageTaken: int(math.Round(float64(agg.damageTaken) / float64(games))),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Games > out[j].Games
	})

	return out
}

// RecentMatches returns the count most recent matches, newest first.
// The input is not modified.
func RecentMatches(matches []model.Match, count int) []model.Match {
	if count <= 0 {
		count = DefaultRecentCount
	}

	sorted := make([]model.Match, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].GameCreation > sorted[j].GameCreation
	})

	if len(sorted) > count {
		sorted = sorted[:count]
	}
	return sorted
}

// AvailablePatches returns the distinct "major.minor" patch versions
// present in the match data, newest first, capped at five.
func AvailablePatches(matches []model.Match) []string {
	seen := make(map[string]bool)
	for _, m := range matches {
		parts := strings.Split(m.GameVersion, ".")
		if len(parts) < 2 {
			continue
		}
		seen[parts[0]+"."+parts[1]] = true
	}

	patches := make([]string, 0, len(seen))
	for p := range seen {
		patches = append(patches, p)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(patches)))

	if len(patches) > maxPatchOptions {
		patches = patches[:maxPatchOptions]
	}
	return patches
}

// ModeOption is one entry in the mode filter dropdown.
type ModeOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AvailableModes returns the distinct queues present in the match
// data, ascending by queue ID, with display names.
func AvailableModes(matches []model.Match) []ModeOption {
	seen := make(map[int]bool)
	for _, m := range matches {
		seen[m.QueueID] = true
	}

	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	modes := make([]ModeOption, 0, len(ids))
	for _, id := range ids {
		modes = append(modes, ModeOption{
			ID:   strconv.Itoa(id),
			Name: format.QueueName(id),
		})
	}
	return modes
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
