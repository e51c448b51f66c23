// Package view maps matches and champion statistics to renderable view
// models. It owns no rendering and no state beyond the immutable
// dataset it is constructed over; every builder is a pure lookup.
package view

import (
	"errors"
	"fmt"

	"github.com/echoez0401/lol-dashboard/internal/format"
	"github.com/echoez0401/lol-dashboard/internal/model"
	"github.com/echoez0401/lol-dashboard/internal/stats"
)

// ErrMatchNotFound is returned by MatchDetailView for an unknown match
// ID. Callers treat it as a recoverable not-found, not a fault.
var ErrMatchNotFound = errors.New("match not found")

// Win-rate CSS classes with the threshold at exactly 50%.
const (
	RateClassHigh = "high" // >= 50
	RateClassLow  = "low"  // < 50
)

// UnrankedLabel is shown when a player has no tier/division recorded.
const UnrankedLabel = "Unranked"

// Builder creates view models over the full match collection. The
// asset version is the Data Dragon tag used for image URLs only.
type Builder struct {
	matches      []model.Match
	assetVersion string
}

// NewBuilder creates a view builder over matches.
func NewBuilder(matches []model.Match, assetVersion string) *Builder {
	return &Builder{matches: matches, assetVersion: assetVersion}
}

// ChampionRow is one row of the champion statistics table.
type ChampionRow struct {
	ChampionName string  `json:"championName"`
	IconURL      string  `json:"iconUrl"`
	Games        int     `json:"games"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	WinRate      string  `json:"winRate"`
	WinRateValue float64 `json:"winRateValue"`
	RateClass    string  `json:"rateClass"`
	AvgKDA       string  `json:"avgKDA"`
	DamageDealt  string  `json:"damageDealt"`
	DamageTaken  string  `json:"damageTaken"`
}

// ChampionTableView builds one row per champion stat.
func (b *Builder) ChampionTableView(championStats []stats.ChampionStat) []ChampionRow {
	rows := make([]ChampionRow, 0, len(championStats))
	for _, s := range championStats {
		rateClass := RateClassLow
		if s.WinRate >= 50 {
			rateClass = RateClassHigh
		}
		rows = append(rows, ChampionRow{
			ChampionName: s.ChampionName,
			IconURL:      b.championIconURL(s.ChampionName),
			Games:        s.Games,
			Wins:         s.Wins,
			Losses:       s.Losses,
			WinRate:      format.Percent(s.WinRate),
			WinRateValue: s.WinRate,
			RateClass:    rateClass,
			AvgKDA:       format.Ratio(s.AvgKDA),
			DamageDealt:  format.Number(s.AvgDamageDealt),
			DamageTaken:  format.Number(s.AvgDamageTaken),
		})
	}
	return rows
}

// MatchCard is one entry of the recent-matches list.
type MatchCard struct {
	MatchID      string `json:"matchId"`
	Result       string `json:"result"` // "Victory" or "Defeat"
	Win          bool   `json:"win"`
	ChampionName string `json:"championName"`
	IconURL      string `json:"iconUrl"`
	KDAText      string `json:"kdaText"` // "K / D / A"
	KDARatio     string `json:"kdaRatio"`
	Duration     string `json:"duration"`
	Mode         string `json:"mode"`
	PlayedAt     string `json:"playedAt"`
}

// MatchListView builds cards for the most recent matches, newest
// first, capped at 20. The input may already be filtered.
func (b *Builder) MatchListView(matches []model.Match) []MatchCard {
	recent := stats.RecentMatches(matches, stats.DefaultRecentCount)

	cards := make([]MatchCard, 0, len(recent))
	for _, m := range recent {
		my := m.MyData
		result := "Defeat"
		if my.Win {
			result = "Victory"
		}
		cards = append(cards, MatchCard{
			MatchID:      m.MatchID,
			Result:       result,
			Win:          my.Win,
			ChampionName: my.ChampionName,
			IconURL:      b.championIconURL(my.ChampionName),
			KDAText:      fmt.Sprintf("%d / %d / %d", my.Kills, my.Deaths, my.Assists),
			KDARatio:     format.Ratio(stats.KDA(my.Kills, my.Deaths, my.Assists)),
			Duration:     format.Duration(m.GameDuration),
			Mode:         format.QueueName(m.QueueID),
			PlayedAt:     format.Timestamp(m.GameCreation),
		})
	}
	return cards
}

// PlayerRow is one participant line in the match detail view.
type PlayerRow struct {
	SummonerName string `json:"summonerName"`
	ChampionName string `json:"championName"`
	IconURL      string `json:"iconUrl"`
	KDAText      string `json:"kdaText"`
	KDARatio     string `json:"kdaRatio"`
	RankLabel    string `json:"rankLabel"`
	DamageDealt  string `json:"damageDealt"`
	DamageTaken  string `json:"damageTaken"`
	Items        []int  `json:"items"` // fixed slots, 0 = empty
	Keystone     int    `json:"keystone"`
}

// TeamView is one side's half of the detail roster.
type TeamView struct {
	TeamID  int         `json:"teamId"`
	Players []PlayerRow `json:"players"`
}

// MatchDetail is the full single-match view.
type MatchDetail struct {
	MatchID  string   `json:"matchId"`
	Mode     string   `json:"mode"`
	Duration string   `json:"duration"`
	PlayedAt string   `json:"playedAt"`
	Version  string   `json:"gameVersion"`
	BlueTeam TeamView `json:"blueTeam"`
	RedTeam  TeamView `json:"redTeam"`
}

// MatchDetailView looks a match up by ID in the full, unfiltered
// collection and splits its roster by team side. The detail view is
// independent of the current filters.
func (b *Builder) MatchDetailView(matchID string) (*MatchDetail, error) {
	for _, m := range b.matches {
		if m.MatchID == matchID {
			return b.buildDetail(m), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
}

func (b *Builder) buildDetail(m model.Match) *MatchDetail {
	detail := &MatchDetail{
		MatchID:  m.MatchID,
		Mode:     format.QueueName(m.QueueID),
		Duration: format.Duration(m.GameDuration),
		PlayedAt: format.Timestamp(m.GameCreation),
		Version:  m.GameVersion,
		BlueTeam: TeamView{TeamID: model.TeamBlue},
		RedTeam:  TeamView{TeamID: model.TeamRed},
	}

	for _, p := range m.AllPlayers {
		row := b.playerRow(p)
		if p.TeamID == model.TeamRed {
			detail.RedTeam.Players = append(detail.RedTeam.Players, row)
		} else {
			detail.BlueTeam.Players = append(detail.BlueTeam.Players, row)
		}
	}

	return detail
}

// playerRow is the shared row builder for both teams.
func (b *Builder) playerRow(p model.Participant) PlayerRow {
	rank := UnrankedLabel
	if p.Tier != "" {
		rank = p.Tier
		if p.Rank != "" {
			rank = p.Tier + " " + p.Rank
		}
	}

	// Normalize to the fixed slot count so empty slots render as empty.
	items := make([]int, model.ItemSlots)
	copy(items, p.Items)

	return PlayerRow{
		SummonerName: p.SummonerName,
		ChampionName: p.ChampionName,
		IconURL:      b.championIconURL(p.ChampionName),
		KDAText:      fmt.Sprintf("%d / %d / %d", p.Kills, p.Deaths, p.Assists),
		KDARatio:     format.Ratio(stats.KDA(p.Kills, p.Deaths, p.Assists)),
		RankLabel:    rank,
		DamageDealt:  format.Number(p.TotalDamageDealtToChampions),
		DamageTaken:  format.Number(p.TotalDamageTaken),
		Items:        items,
		Keystone:     p.Runes.Keystone(),
	}
}

// championIconURL builds the Data Dragon icon URL for a champion.
func (b *Builder) championIconURL(championName string) string {
	if b.assetVersion == "" {
		return ""
	}
	return fmt.Sprintf("https://ddragon.leagueoflegends.com/cdn/%s/img/champion/%s.png", b.assetVersion, championName)
}
