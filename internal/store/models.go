package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fortuna/athena/internal/lookup"
)

// ErrNotFound is returned by single-record reads that match nothing.
var ErrNotFound = errors.New("not found")

// Sport is one league the home school plays in. Identity is LeagueCode.
type Sport struct {
	Name          string      `json:"name"`
	Term          lookup.Term `json:"term"`
	LeagueCode    string      `json:"league_code"`
	UsesGamesheet bool        `json:"uses_gamesheet"`
}

// ToMap serializes the sport with the persisted field names.
func (s Sport) ToMap() map[string]any {
	return map[string]any{
		"name":           s.Name,
		"term":           string(s.Term),
		"league_code":    s.LeagueCode,
		"uses_gamesheet": s.UsesGamesheet,
	}
}

// Standing is one team's row in a league table. StandingsCode is unique
// per team per league.
type Standing struct {
	TeamName        string
	GamesPlayed     *int
	Wins            *int
	Losses          *int
	Ties            *int
	Points          *int
	TableNum        int
	SportID         string
	SchoolID        *int
	StandingsCode   string
	GamesheetTeamID string

	// Ext is nil for rows scraped from the legacy site.
	Ext StandingExt
}

// StandingExt is the sport-specific part of a stats-site standing.
// Implemented by SoccerStandingExt and HockeyStandingExt only.
type StandingExt interface {
	Kind() lookup.SportKind
	ToMap() map[string]any
	standingExt()
}

// SoccerStandingExt holds the soccer table columns.
type SoccerStandingExt struct {
	GoalsFor         *int     `json:"goalsFor"`
	GoalsAgainst     *int     `json:"goalsAgainst"`
	GoalDifference   *int     `json:"goalDifference"`
	PointsPercentage *float64 `json:"pointsPercentage"`
	YellowCards      *int     `json:"yellowCards"`
	RedCards         *int     `json:"redCards"`
}

func (SoccerStandingExt) standingExt() {}

// Kind reports lookup.Soccer.
func (SoccerStandingExt) Kind() lookup.SportKind { return lookup.Soccer }

// ToMap serializes the soccer columns.
func (e SoccerStandingExt) ToMap() map[string]any {
	return map[string]any{
		"goalsFor":         e.GoalsFor,
		"goalsAgainst":     e.GoalsAgainst,
		"goalDifference":   e.GoalDifference,
		"pointsPercentage": e.PointsPercentage,
		"yellowCards":      e.YellowCards,
		"redCards":         e.RedCards,
	}
}

// HockeyStandingExt holds the hockey table columns.
type HockeyStandingExt struct {
	OvertimeWins          *int     `json:"overtimeWins"`
	OvertimeLosses        *int     `json:"overtimeLosses"`
	GoalsFor              *int     `json:"goalsFor"`
	GoalsAgainst          *int     `json:"goalsAgainst"`
	GoalDifference        *int     `json:"goalDifference"`
	PointsPercentage      *float64 `json:"pointsPercentage"`
	PenaltyMinutes        *int     `json:"penaltyMinutes"`
	PowerPlayGoals        *int     `json:"powerPlayGoals"`
	PowerPlayGoalsAgainst *int     `json:"powerPlayGoalsAgainst"`
	ShortHandedGoals      *int     `json:"shortHandedGoals"`
}

func (HockeyStandingExt) standingExt() {}

// Kind reports lookup.Hockey.
func (HockeyStandingExt) Kind() lookup.SportKind { return lookup.Hockey }

// ToMap serializes the hockey columns.
func (e HockeyStandingExt) ToMap() map[string]any {
	return map[string]any{
		"overtimeWins":          e.OvertimeWins,
		"overtimeLosses":        e.OvertimeLosses,
		"goalsFor":              e.GoalsFor,
		"goalsAgainst":          e.GoalsAgainst,
		"goalDifference":        e.GoalDifference,
		"pointsPercentage":      e.PointsPercentage,
		"penaltyMinutes":        e.PenaltyMinutes,
		"powerPlayGoals":        e.PowerPlayGoals,
		"powerPlayGoalsAgainst": e.PowerPlayGoalsAgainst,
		"shortHandedGoals":      e.ShortHandedGoals,
	}
}

// ToMap serializes the standing, merging in the extension fields.
func (s Standing) ToMap() map[string]any {
	m := map[string]any{
		"teamName":      s.TeamName,
		"gamesPlayed":   s.GamesPlayed,
		"wins":          s.Wins,
		"losses":        s.Losses,
		"ties":          s.Ties,
		"points":        s.Points,
		"tableNum":      s.TableNum,
		"sportId":       s.SportID,
		"schoolId":      s.SchoolID,
		"standingsCode": s.StandingsCode,
	}
	if s.Ext != nil {
		for k, v := range s.Ext.ToMap() {
			m[k] = v
		}
		m["gamesheetTeamId"] = s.GamesheetTeamID
	}
	return m
}

// MarshalJSON encodes the ToMap form.
func (s Standing) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.ToMap())
}

// Goal is one scoring event. Goals only exist embedded in a Game.
type Goal struct {
	TeamName     string `json:"teamName"`
	MinuteScored string `json:"minuteScored"`
	Period       string `json:"period"`
	Scorer       string `json:"scorer"`
	Assister     string `json:"assister"`
	PreAssister  string `json:"preAssister"`
}

// ToMap serializes the goal.
func (g Goal) ToMap() map[string]any {
	return map[string]any{
		"teamName":     g.TeamName,
		"minuteScored": g.MinuteScored,
		"period":       g.Period,
		"scorer":       g.Scorer,
		"assister":     g.Assister,
		"preAssister":  g.PreAssister,
	}
}

// Game is one fixture involving the home school. GameCode is stable
// across scrapes of the same fixture.
type Game struct {
	HomeTeam     string
	HomeAbbr     string
	HomeLogo     string
	HomeSchoolID *int
	AwayTeam     string
	AwayAbbr     string
	AwayLogo     string
	AwaySchoolID *int
	GameDate     time.Time
	GameTime     string
	HomeScore    string
	AwayScore    string
	SportsName   string
	Term         lookup.Term
	LeagueCode   string
	GameCode     string

	// Gamesheet is set for games scraped from the stats site.
	Gamesheet *GamesheetDetail
}

// GamesheetDetail carries the stats-site only fields of a game.
type GamesheetDetail struct {
	GameID       string `json:"game_id"`
	GameType     string `json:"game_type"`
	Goals        []Goal `json:"goals"`
	Link         string `json:"link"`
	SeasonCode   string `json:"gs_season_code"`
	DivisionCode string `json:"gs_division_code"`
}

// GameDateLayout matches the timestamp format of persisted game dates.
const GameDateLayout = "2006-01-02T15:04:05.000Z"

// ToMap serializes the game with the persisted field names.
func (g Game) ToMap() map[string]any {
	m := map[string]any{
		"home_team":   g.HomeTeam,
		"home_abbr":   g.HomeAbbr,
		"home_logo":   g.HomeLogo,
		"away_team":   g.AwayTeam,
		"away_abbr":   g.AwayAbbr,
		"away_logo":   g.AwayLogo,
		"game_date":   g.GameDate.UTC().Format(GameDateLayout),
		"game_time":   g.GameTime,
		"home_score":  g.HomeScore,
		"away_score":  g.AwayScore,
		"sports_name": g.SportsName,
		"term":        string(g.Term),
		"league_code": g.LeagueCode,
		"game_code":   g.GameCode,
	}
	if d := g.Gamesheet; d != nil {
		goals := make([]map[string]any, 0, len(d.Goals))
		for _, goal := range d.Goals {
			goals = append(goals, goal.ToMap())
		}
		m["game_id"] = d.GameID
		m["game_type"] = d.GameType
		m["goals"] = goals
		m["link"] = d.Link
		m["gs_season_code"] = d.SeasonCode
		m["gs_division_code"] = d.DivisionCode
	}
	return m
}

// MarshalJSON encodes the ToMap form.
func (g Game) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.ToMap())
}

// RosterEntry is one player on the home team's roster.
type RosterEntry struct {
	TeamName       string
	PlayerID       string
	SeasonCode     string
	JerseyNumber   string
	PlayerName     string
	PlayerPosition string
	GamesPlayed    int
	Goals          int
	Assists        int

	Ext RosterExt
}

// RosterExt is the role-specific part of a roster entry. Implemented by
// SoccerSkaterExt, SoccerKeeperExt, HockeySkaterExt and HockeyKeeperExt.
type RosterExt interface {
	Role() Role
	ToMap() map[string]any
	rosterExt()
}

// Role names a RosterExt variant.
type Role string

const (
	RoleSoccerSkater Role = "soccer_skater"
	RoleSoccerKeeper Role = "soccer_keeper"
	RoleHockeySkater Role = "hockey_skater"
	RoleHockeyKeeper Role = "hockey_keeper"
)

// SoccerSkaterExt holds outfield player stats.
type SoccerSkaterExt struct {
	YellowCards int    `json:"yellow_cards"`
	RedCards    int    `json:"red_cards"`
	Link        string `json:"link"`
}

func (SoccerSkaterExt) rosterExt() {}

// Role reports RoleSoccerSkater.
func (SoccerSkaterExt) Role() Role { return RoleSoccerSkater }

// ToMap serializes the extension.
func (e SoccerSkaterExt) ToMap() map[string]any {
	return map[string]any{
		"yellow_cards": e.YellowCards,
		"red_cards":    e.RedCards,
		"link":         e.Link,
	}
}

// KeeperStats is shared by both goalkeeper variants.
type KeeperStats struct {
	ShotsAgainst        int     `json:"shots_against"`
	GoalsAgainst        int     `json:"goals_against"`
	GoalsAgainstAverage float64 `json:"goals_against_average"`
	Shutouts            int     `json:"shutouts"`
	MinutesPlayed       int     `json:"minutes_played"`
}

func (k KeeperStats) toMap() map[string]any {
	return map[string]any{
		"shots_against":         k.ShotsAgainst,
		"goals_against":         k.GoalsAgainst,
		"goals_against_average": k.GoalsAgainstAverage,
		"shutouts":              k.Shutouts,
		"minutes_played":        k.MinutesPlayed,
	}
}

// SoccerKeeperExt holds soccer goalkeeper stats.
type SoccerKeeperExt struct {
	KeeperStats
}

func (SoccerKeeperExt) rosterExt() {}

// Role reports RoleSoccerKeeper.
func (SoccerKeeperExt) Role() Role { return RoleSoccerKeeper }

// ToMap serializes the extension.
func (e SoccerKeeperExt) ToMap() map[string]any { return e.toMap() }

// HockeySkaterExt holds hockey skater stats.
type HockeySkaterExt struct {
	Points         int    `json:"points"`
	PenaltyMinutes int    `json:"penalty_minutes"`
	Link           string `json:"link"`
}

func (HockeySkaterExt) rosterExt() {}

// Role reports RoleHockeySkater.
func (HockeySkaterExt) Role() Role { return RoleHockeySkater }

// ToMap serializes the extension.
func (e HockeySkaterExt) ToMap() map[string]any {
	return map[string]any{
		"points":          e.Points,
		"penalty_minutes": e.PenaltyMinutes,
		"link":            e.Link,
	}
}

// HockeyKeeperExt holds hockey goaltender stats.
type HockeyKeeperExt struct {
	KeeperStats
}

func (HockeyKeeperExt) rosterExt() {}

// Role reports RoleHockeyKeeper.
func (HockeyKeeperExt) Role() Role { return RoleHockeyKeeper }

// ToMap serializes the extension.
func (e HockeyKeeperExt) ToMap() map[string]any { return e.toMap() }

// ToMap serializes the entry, merging in the role extension.
func (r RosterEntry) ToMap() map[string]any {
	m := map[string]any{
		"team_name":       r.TeamName,
		"player_id":       r.PlayerID,
		"season_code":     r.SeasonCode,
		"jersey_number":   r.JerseyNumber,
		"player_name":     r.PlayerName,
		"player_position": r.PlayerPosition,
		"games_played":    r.GamesPlayed,
		"goals":           r.Goals,
		"assists":         r.Assists,
	}
	if r.Ext != nil {
		for k, v := range r.Ext.ToMap() {
			m[k] = v
		}
	}
	return m
}

// MarshalJSON encodes the ToMap form.
func (r RosterEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ToMap())
}

// Roster is the whole home-team roster of one sport, replaced on every
// refresh. DocID is the sanitized sport name.
type Roster struct {
	DocID         string
	SportName     string
	TeamName      string
	LeagueCode    string
	UsesGamesheet bool
	Season        lookup.Term
	LastUpdated   time.Time
	Players       []RosterEntry
}

// ToMap serializes the roster document.
func (r Roster) ToMap() map[string]any {
	players := make([]map[string]any, 0, len(r.Players))
	for _, p := range r.Players {
		players = append(players, p.ToMap())
	}
	return map[string]any{
		"docId":         r.DocID,
		"sportName":     r.SportName,
		"teamName":      r.TeamName,
		"leagueCode":    r.LeagueCode,
		"usesGamesheet": r.UsesGamesheet,
		"season":        string(r.Season),
		"lastUpdated":   r.LastUpdated.UTC().Format(time.RFC3339),
		"players":       players,
	}
}

// MarshalJSON encodes the ToMap form.
func (r Roster) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ToMap())
}

// DecodeStandingExt restores a standing extension persisted as JSON.
// An empty kind means the standing has no extension.
func DecodeStandingExt(kind lookup.SportKind, raw []byte) (StandingExt, error) {
	switch kind {
	case "":
		return nil, nil
	case lookup.Soccer:
		var e SoccerStandingExt
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("decode soccer standing: %w", err)
		}
		return e, nil
	case lookup.Hockey:
		var e HockeyStandingExt
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("decode hockey standing: %w", err)
		}
		return e, nil
	}
	return nil, fmt.Errorf("%w: %q", lookup.ErrUnsupportedSport, kind)
}

// DecodeRosterExt restores a roster extension persisted as JSON.
func DecodeRosterExt(role Role, raw []byte) (RosterExt, error) {
	var (
		ext RosterExt
		err error
	)
	switch role {
	case "":
		return nil, nil
	case RoleSoccerSkater:
		var e SoccerSkaterExt
		err = json.Unmarshal(raw, &e)
		ext = e
	case RoleSoccerKeeper:
		var e SoccerKeeperExt
		err = json.Unmarshal(raw, &e)
		ext = e
	case RoleHockeySkater:
		var e HockeySkaterExt
		err = json.Unmarshal(raw, &e)
		ext = e
	case RoleHockeyKeeper:
		var e HockeyKeeperExt
		err = json.Unmarshal(raw, &e)
		ext = e
	default:
		return nil, fmt.Errorf("unknown roster role %q", role)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", role, err)
	}
	return ext, nil
}
