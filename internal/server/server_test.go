package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/echoez0401/lol-dashboard/internal/model"
	"github.com/echoez0401/lol-dashboard/internal/stats"
)

var serverNow = time.Date(2024, 2, 14, 12, 0, 0, 0, time.UTC)

func testServer() *Server {
	day := func(d int, champion string, queueID int, win bool) model.Match {
		created := serverNow.AddDate(0, 0, -d)
		return model.Match{
			MatchID:      champion + "-" + created.Format("0102"),
			GameCreation: created.UnixMilli(),
			GameDuration: 1800,
			QueueID:      queueID,
			GameVersion:  "14.3.557.3333",
			MyData: model.Participant{
				ChampionName: champion, Kills: 5, Deaths: 2, Assists: 4, Win: win,
				TotalDamageDealtToChampions: 20000, TotalDamageTaken: 15000,
			},
			AllPlayers: []model.Participant{
				{SummonerName: "me", ChampionName: champion, TeamID: model.TeamBlue, Win: win},
				{SummonerName: "them", ChampionName: "Garen", TeamID: model.TeamRed, Win: !win},
			},
		}
	}

	dataset := &model.Dataset{
		Summoner:   model.Summoner{Name: "Hide on bush", SummonerLevel: 500},
		LastUpdate: "2024-02-14T03:00:00Z",
		Matches: []model.Match{
			day(40, "Ahri", 420, true),
			day(3, "Ahri", 420, true),
			day(2, "Ahri", 450, false),
			day(1, "Brand", 420, true),
		},
	}

	return New(dataset, "14.3.1", stats.FixedClock{T: serverNow})
}

func get(t *testing.T, path string) (*http.Response, []byte) {
	t.Helper()
	ts := httptest.NewServer(testServer().Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return resp, body
}

func TestHandleSummary(t *testing.T) {
	resp, body := get(t, "/api/summary")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var payload struct {
		Summoner   model.Summoner `json:"summoner"`
		LastUpdate string         `json:"lastUpdate"`
		Matches    int            `json:"matches"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if payload.Summoner.Name != "Hide on bush" || payload.Matches != 4 {
		t.Errorf("unexpected summary: %+v", payload)
	}
}

func TestHandleChampions(t *testing.T) {
	resp, body := get(t, "/api/champions")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var payload struct {
		Rows []struct {
			ChampionName string `json:"championName"`
			Games        int    `json:"games"`
		} `json:"rows"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(payload.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(payload.Rows))
	}
	if payload.Rows[0].ChampionName != "Ahri" || payload.Rows[0].Games != 3 {
		t.Errorf("expected Ahri with 3 games first, got %+v", payload.Rows[0])
	}
}

// An explicit sort on games without a direction is a first action on
// that column and must come back descending.
func TestHandleChampionsSortGamesDescendingByDefault(t *testing.T) {
	resp, body := get(t, "/api/champions?sort=games")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var payload struct {
		Sort stats.SortState `json:"sort"`
		Rows []struct {
			ChampionName string `json:"championName"`
			Games        int    `json:"games"`
		} `json:"rows"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if payload.Sort.Column != "games" || payload.Sort.Ascending {
		t.Errorf("sort state = %+v, want games descending", payload.Sort)
	}
	if len(payload.Rows) != 2 || payload.Rows[0].ChampionName != "Ahri" || payload.Rows[0].Games != 3 {
		t.Errorf("expected Ahri (3 games) first, got %+v", payload.Rows)
	}
}

func TestHandleChampionsFilteredAndSorted(t *testing.T) {
	resp, body := get(t, "/api/champions?period=last_7_days&mode=420&sort=games&dir=asc")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var payload struct {
		Sort stats.SortState `json:"sort"`
		Rows []struct {
			ChampionName string `json:"championName"`
			Games        int    `json:"games"`
		} `json:"rows"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	// Within the last 7 days on queue 420: one Ahri game, one Brand
	// game. Ascending games with the name tie-break puts Ahri first.
	if !payload.Sort.Ascending || payload.Sort.Column != "games" {
		t.Errorf("sort state = %+v, want games ascending", payload.Sort)
	}
	if len(payload.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(payload.Rows))
	}
	for _, row := range payload.Rows {
		if row.Games != 1 {
			t.Errorf("row %s has %d games, want 1", row.ChampionName, row.Games)
		}
	}
}

func TestHandleMatches(t *testing.T) {
	resp, body := get(t, "/api/matches?period=this_week")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var payload struct {
		Cards []struct {
			MatchID string `json:"matchId"`
			Result  string `json:"result"`
			Mode    string `json:"mode"`
		} `json:"cards"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	// 2024-02-14 is a Wednesday. Only the matches from 2 and 1 days
	// ago fall on or after Monday midnight; the Sunday game does not.
	if len(payload.Cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(payload.Cards))
	}
	if payload.Cards[0].Result != "Victory" || payload.Cards[0].Mode != "Ranked Solo/Duo" {
		t.Errorf("unexpected newest card: %+v", payload.Cards[0])
	}
}

func TestHandleMatchDetail(t *testing.T) {
	// Detail lookups ignore filters and search the full collection.
	ts := httptest.NewServer(testServer().Router())
	defer ts.Close()

	oldID := "Ahri-" + serverNow.AddDate(0, 0, -40).Format("0102")
	resp, err := http.Get(ts.URL + "/api/match/" + oldID)
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var detail struct {
		MatchID  string `json:"matchId"`
		BlueTeam struct {
			Players []struct {
				RankLabel string `json:"rankLabel"`
			} `json:"players"`
		} `json:"blueTeam"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if detail.MatchID != oldID {
		t.Errorf("matchId = %q, want %q", detail.MatchID, oldID)
	}
	if len(detail.BlueTeam.Players) != 1 {
		t.Fatalf("expected 1 blue player, got %d", len(detail.BlueTeam.Players))
	}
	if detail.BlueTeam.Players[0].RankLabel != "Unranked" {
		t.Errorf("rank label = %q, want Unranked", detail.BlueTeam.Players[0].RankLabel)
	}
}

func TestHandleMatchDetailNotFound(t *testing.T) {
	resp, body := get(t, "/api/match/JP1_does_not_exist")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	var payload map[string]string
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if payload["error"] != "match not found" {
		t.Errorf("error = %q, want %q", payload["error"], "match not found")
	}
}

func TestHealthz(t *testing.T) {
	resp, _ := get(t, "/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
