package model

// ItemSlots is the number of inventory slots recorded per player
// (six items plus the trinket). A value of 0 means the slot is empty.
const ItemSlots = 7

// Team side identifiers as reported by the match data.
const (
	TeamBlue = 100
	TeamRed  = 200
)

// RunePage holds a player's rune selections. Primary carries the main
// tree selections with the keystone first; Secondary carries the two
// picks from the secondary tree; Stats carries the three stat shards.
type RunePage struct {
	Primary   []int `json:"primary"`
	Secondary []int `json:"secondary"`
	Stats     []int `json:"stats"`
}

// Keystone returns the keystone rune ID, or 0 when no primary
// selections are present.
func (r RunePage) Keystone() int {
	if len(r.Primary) == 0 {
		return 0
	}
	return r.Primary[0]
}

// Participant is one player's record within a match.
type Participant struct {
	SummonerName                string   `json:"summonerName"`
	ChampionName                string   `json:"championName"`
	TeamID                      int      `json:"teamId"`
	Kills                       int      `json:"kills"`
	Deaths                      int      `json:"deaths"`
	Assists                     int      `json:"assists"`
	TotalDamageDealtToChampions int      `json:"totalDamageDealtToChampions"`
	TotalDamageTaken            int      `json:"totalDamageTaken"`
	Win                         bool     `json:"win"`
	Tier                        string   `json:"tier,omitempty"`
	Rank                        string   `json:"rank,omitempty"`
	Items                       []int    `json:"items"`
	Runes                       RunePage `json:"runes"`
}

// Match is one completed game. Matches are read-only for the whole
// session; every derived collection is built fresh from them.
type Match struct {
	MatchID      string        `json:"matchId"`
	GameCreation int64         `json:"gameCreation"` // epoch milliseconds
	GameDuration int           `json:"gameDuration"` // seconds
	QueueID      int           `json:"queueId"`
	GameVersion  string        `json:"gameVersion"`
	MyData       Participant   `json:"myData"`
	AllPlayers   []Participant `json:"allPlayers"`
}

// Summoner identifies the player the dashboard belongs to.
type Summoner struct {
	Name          string `json:"name"`
	PUUID         string `json:"puuid"`
	ProfileIconID int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
}

// Dataset is the envelope the data-acquisition side hands us: the
// summoner, when the data was last refreshed, and the full match
// collection (newest data appended by the fetcher, order preserved).
type Dataset struct {
	Summoner   Summoner `json:"summoner"`
	LastUpdate string   `json:"last_update"`
	Matches    []Match  `json:"matches"`
}
