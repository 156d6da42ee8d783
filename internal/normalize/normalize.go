// Package normalize turns raw rows from both source sites into store
// records with deterministic keys.
package normalize

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fortuna/athena/internal/ingest/gamesheet"
	"github.com/fortuna/athena/internal/lookup"
	"github.com/fortuna/athena/internal/season"
	"github.com/fortuna/athena/internal/store"
)

var (
	// ErrNotHomeGame marks a legacy schedule row the home school is not in.
	ErrNotHomeGame = errors.New("home school not playing")

	// ErrUnresolvedSchool marks a legacy row whose abbreviation is unknown.
	ErrUnresolvedSchool = errors.New("school not found for abbreviation")
)

// keyDateLayout is the date part of game codes.
const keyDateLayout = "2006_01_02"

func idText(id *int) string {
	if id == nil {
		return "null"
	}
	return strconv.Itoa(*id)
}

// StandingsCode is the key of one team's standing in one league.
func StandingsCode(schoolID *int, leagueCode string) string {
	return fmt.Sprintf("S_%s_%s", idText(schoolID), leagueCode)
}

// GameCode is the key of one fixture.
func GameCode(homeID, awayID *int, date time.Time, leagueCode string) string {
	return fmt.Sprintf("G_%s_%s_%s_%s", idText(homeID), idText(awayID), date.Format(keyDateLayout), leagueCode)
}

// SchoolIDFor resolves a stats-site or legacy team name to a school id.
func SchoolIDFor(teamName string) *int {
	if id, ok := lookup.SchoolIDByTeamName(teamName); ok {
		return &id
	}
	return nil
}

// substr slices s by rune offsets, clamping out-of-range bounds.
func substr(s string, start, end int) string {
	r := []rune(s)
	if start > len(r) {
		start = len(r)
	}
	if end > len(r) {
		end = len(r)
	}
	if start < 0 {
		start = 0
	}
	if end < start {
		return ""
	}
	return string(r[start:end])
}

// TrimTeamName cuts a legacy row label at the first "-" and drops the two
// characters before it.
func TrimTeamName(raw string) string {
	name := raw
	if i := strings.Index(raw, "-"); i >= 0 {
		name = raw[:i]
	}
	n := len([]rune(name))
	return substr(name, 0, n-2)
}

var leadingInt = regexp.MustCompile(`^[-+]?\d+`)

// ParseLeadingInt reads the leading integer of text, nil if there is none.
func ParseLeadingInt(text string) *int {
	m := leadingInt.FindString(strings.TrimSpace(text))
	if m == "" {
		return nil
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &v
}

// IntOrZero reads the leading integer of text, 0 if there is none.
func IntOrZero(text string) int {
	if v := ParseLeadingInt(text); v != nil {
		return *v
	}
	return 0
}

// FloatOrZero reads the leading number of text, 0 if there is none.
func FloatOrZero(text string) float64 {
	if v := gamesheet.ParseLenient(text); v != nil {
		return *v
	}
	return 0
}

func toInt(v *float64) *int {
	if v == nil {
		return nil
	}
	i := int(math.Round(*v))
	return &i
}

// LegacyStanding is one row of a legacy standings table.
type LegacyStanding struct {
	RawName     string
	GamesPlayed string
	Wins        string
	Losses      string
	Ties        string
	Points      string
	TableNum    int
}

// ToStanding converts a legacy standings row. Unknown schools keep a nil
// SchoolID.
func ToStanding(row LegacyStanding, leagueCode string) store.Standing {
	teamName := TrimTeamName(row.RawName)
	schoolID := SchoolIDFor(teamName)
	return store.Standing{
		TeamName:      teamName,
		GamesPlayed:   ParseLeadingInt(row.GamesPlayed),
		Wins:          ParseLeadingInt(row.Wins),
		Losses:        ParseLeadingInt(row.Losses),
		Ties:          ParseLeadingInt(row.Ties),
		Points:        ParseLeadingInt(row.Points),
		TableNum:      row.TableNum,
		SportID:       leagueCode,
		SchoolID:      schoolID,
		StandingsCode: StandingsCode(schoolID, leagueCode),
	}
}

// ToGamesheetStanding converts a joined stats-site standings row.
func ToGamesheetStanding(raw gamesheet.RawStanding, kind lookup.SportKind, leagueCode string) store.Standing {
	v := func(col string) *int { return toInt(raw.Values[col]) }
	schoolID := SchoolIDFor(raw.TeamName)

	s := store.Standing{
		TeamName:        raw.TeamName,
		GamesPlayed:     v("gp"),
		Wins:            v("w"),
		Losses:          v("l"),
		Ties:            v("t"),
		Points:          v("pts"),
		SportID:         leagueCode,
		SchoolID:        schoolID,
		StandingsCode:   StandingsCode(schoolID, leagueCode),
		GamesheetTeamID: raw.TeamID,
	}

	switch kind {
	case lookup.Hockey:
		s.TableNum = 4
		s.Ext = store.HockeyStandingExt{
			OvertimeWins:          v("otw"),
			OvertimeLosses:        v("otl"),
			GoalsFor:              v("gf"),
			GoalsAgainst:          v("ga"),
			GoalDifference:        v("diff"),
			PointsPercentage:      raw.Values["ppct"],
			PenaltyMinutes:        v("pim"),
			PowerPlayGoals:        v("ppg"),
			PowerPlayGoalsAgainst: v("ppga"),
			ShortHandedGoals:      v("shg"),
		}
	default:
		s.TableNum = 3
		s.Ext = store.SoccerStandingExt{
			GoalsFor:         v("gf"),
			GoalsAgainst:     v("ga"),
			GoalDifference:   v("diff"),
			PointsPercentage: raw.Values["ppct"],
			YellowCards:      v("yc"),
			RedCards:         v("rc"),
		}
	}
	return s
}

// HomeTeamID finds the stats-site team id of teamName in a league table.
func HomeTeamID(standings []store.Standing, teamName string) (string, bool) {
	for _, s := range standings {
		if s.TeamName == teamName && s.GamesheetTeamID != "" {
			return s.GamesheetTeamID, true
		}
	}
	return "", false
}

// LegacyGame is one row of the legacy schedule table.
type LegacyGame struct {
	DateText  string
	TimeText  string
	HomeText  string
	HomeScore string
	AwayText  string
	AwayScore string
}

// ParseLegacyDate rebuilds a schedule date from text like "Wed Sep 25".
// The year follows the September-to-June school year around today.
func ParseLegacyDate(text string, today time.Time) (time.Time, error) {
	fields := strings.Fields(substr(strings.TrimSpace(text), 4, 10))
	if len(fields) < 2 {
		return time.Time{}, fmt.Errorf("unexpected date %q", text)
	}
	month, err := time.Parse("Jan", fields[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("unexpected month in %q: %w", text, err)
	}
	day, err := strconv.Atoi(fields[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("unexpected day in %q: %w", text, err)
	}
	year := season.GameYear(today, month.Month())
	return time.Date(year, month.Month(), day, 0, 0, 0, 0, time.UTC), nil
}

// ParseLegacyTime turns "03:30 pm" style text into "3:30 PM".
func ParseLegacyTime(text string) string {
	t := strings.TrimSpace(text)
	if substr(t, 6, 7) == "a" {
		t = substr(t, 0, 6) + "AM"
	} else {
		t = substr(t, 0, 6) + "PM"
	}
	if strings.HasPrefix(t, "0") {
		return substr(t, 1, 8)
	}
	return substr(t, 0, 8)
}

var abbrPattern = regexp.MustCompile(`^([A-Z]+)`)

// ParseAbbreviation reads the school abbreviation that starts a legacy
// schedule cell, falling back to the text before "-".
func ParseAbbreviation(text string) string {
	text = strings.TrimSpace(text)
	if m := abbrPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	before, _, _ := strings.Cut(text, "-")
	return strings.TrimSpace(before)
}

// ToGame converts a legacy schedule row. Rows not involving home return
// ErrNotHomeGame; rows naming an unknown school return ErrUnresolvedSchool.
func ToGame(row LegacyGame, sport store.Sport, home lookup.School, today time.Time) (store.Game, error) {
	homeAbbr := ParseAbbreviation(row.HomeText)
	awayAbbr := ParseAbbreviation(row.AwayText)
	if homeAbbr != home.Abbreviation && awayAbbr != home.Abbreviation {
		return store.Game{}, ErrNotHomeGame
	}

	homeSchool, okHome := lookup.SchoolByAbbreviation(homeAbbr)
	awaySchool, okAway := lookup.SchoolByAbbreviation(awayAbbr)
	if !okHome || !okAway {
		return store.Game{}, fmt.Errorf("%w: %s or %s", ErrUnresolvedSchool, homeAbbr, awayAbbr)
	}

	date, err := ParseLegacyDate(row.DateText, today)
	if err != nil {
		return store.Game{}, err
	}

	return store.Game{
		HomeTeam:     homeSchool.Name,
		HomeAbbr:     homeAbbr,
		HomeLogo:     homeSchool.LogoDir,
		HomeSchoolID: &homeSchool.ID,
		AwayTeam:     awaySchool.Name,
		AwayAbbr:     awayAbbr,
		AwayLogo:     awaySchool.LogoDir,
		AwaySchoolID: &awaySchool.ID,
		GameDate:     date,
		GameTime:     ParseLegacyTime(row.TimeText),
		HomeScore:    strings.TrimSpace(row.HomeScore),
		AwayScore:    strings.TrimSpace(row.AwayScore),
		SportsName:   sport.Name,
		Term:         sport.Term,
		LeagueCode:   sport.LeagueCode,
		GameCode:     GameCode(&homeSchool.ID, &awaySchool.ID, date, sport.LeagueCode),
	}, nil
}

// ParseGamesheetDateTime splits "Sep 25, 2024, 4:02 PM" into the game
// date in loc and the time text.
func ParseGamesheetDateTime(text string, loc *time.Location) (time.Time, string, error) {
	parts := strings.Split(strings.TrimSpace(text), ", ")
	if len(parts) < 3 {
		return time.Time{}, "", fmt.Errorf("unexpected game date %q", text)
	}
	timeText := strings.TrimSpace(parts[2])
	when, err := time.ParseInLocation("Jan 2, 2006 3:04 PM", parts[0]+", "+parts[1]+" "+timeText, loc)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("parse game date %q: %w", text, err)
	}
	return when, timeText, nil
}

// ToGamesheetGame converts a stats-site game. School ids resolve by name
// and stay nil when unknown.
func ToGamesheetGame(raw gamesheet.RawGame, sport store.Sport, comp gamesheet.Competition, loc *time.Location) (store.Game, error) {
	when, timeText, err := ParseGamesheetDateTime(raw.DateTime, loc)
	if err != nil {
		return store.Game{}, err
	}

	homeID := SchoolIDFor(raw.HomeTeam)
	awayID := SchoolIDFor(raw.AwayTeam)

	g := store.Game{
		HomeTeam:     raw.HomeTeam,
		HomeSchoolID: homeID,
		AwayTeam:     raw.AwayTeam,
		AwaySchoolID: awayID,
		GameDate:     when,
		GameTime:     timeText,
		HomeScore:    raw.HomeScore,
		AwayScore:    raw.AwayScore,
		SportsName:   sport.Name,
		Term:         sport.Term,
		LeagueCode:   sport.LeagueCode,
		GameCode:     GameCode(homeID, awayID, when, sport.LeagueCode),
		Gamesheet: &store.GamesheetDetail{
			GameID:       raw.GameID,
			GameType:     raw.GameType,
			Goals:        raw.Goals,
			Link:         raw.Link,
			SeasonCode:   comp.SeasonCode,
			DivisionCode: comp.DivisionID,
		},
	}
	if homeID != nil {
		if s, ok := lookup.SchoolByID(*homeID); ok {
			g.HomeAbbr, g.HomeLogo = s.Abbreviation, s.LogoDir
		}
	}
	if awayID != nil {
		if s, ok := lookup.SchoolByID(*awayID); ok {
			g.AwayAbbr, g.AwayLogo = s.Abbreviation, s.LogoDir
		}
	}
	return g, nil
}

// HockeyGAA is goals against per 60 minutes rounded to two decimals, 0
// without minutes played.
func HockeyGAA(goalsAgainst, minutes float64) float64 {
	if minutes <= 0 {
		return 0
	}
	return math.Round(goalsAgainst/minutes*60*100) / 100
}

// ToRosterEntry converts a player with Total stats. Unparsable counts are 0.
func ToRosterEntry(raw gamesheet.RawPlayer, kind lookup.SportKind, teamName, seasonCode string) store.RosterEntry {
	stat := func(col string) string { return raw.Totals[col] }

	entry := store.RosterEntry{
		TeamName:       teamName,
		PlayerID:       gamesheet.PlayerIDFromHref(raw.Link),
		SeasonCode:     seasonCode,
		JerseyNumber:   raw.Number,
		PlayerName:     raw.Name,
		PlayerPosition: raw.Position,
		GamesPlayed:    IntOrZero(stat("gp")),
		Goals:          IntOrZero(stat("g")),
		Assists:        IntOrZero(stat("a")),
	}

	keeper := store.KeeperStats{
		ShotsAgainst:  IntOrZero(stat("sa")),
		GoalsAgainst:  IntOrZero(stat("ga")),
		Shutouts:      IntOrZero(stat("so")),
		MinutesPlayed: IntOrZero(stat("min")),
	}

	switch {
	case kind == lookup.Hockey && raw.Keeper:
		keeper.GoalsAgainstAverage = HockeyGAA(FloatOrZero(stat("ga")), FloatOrZero(stat("min")))
		entry.Ext = store.HockeyKeeperExt{KeeperStats: keeper}
	case kind == lookup.Hockey:
		entry.Ext = store.HockeySkaterExt{
			Points:         IntOrZero(stat("pts")),
			PenaltyMinutes: IntOrZero(stat("pim")),
			Link:           raw.Link,
		}
	case raw.Keeper:
		keeper.GoalsAgainstAverage = FloatOrZero(stat("gaa"))
		entry.Ext = store.SoccerKeeperExt{KeeperStats: keeper}
	default:
		entry.Ext = store.SoccerSkaterExt{
			YellowCards: IntOrZero(stat("yc")),
			RedCards:    IntOrZero(stat("rc")),
			Link:        raw.Link,
		}
	}
	return entry
}

var (
	docIDReserved   = regexp.MustCompile(`[.#$\[\]/]`)
	docIDWhitespace = regexp.MustCompile(`\s+`)
)

// RosterDocID sanitizes a sport name into a roster document id.
func RosterDocID(sportName string) string {
	id := docIDReserved.ReplaceAllString(sportName, "_")
	return docIDWhitespace.ReplaceAllString(id, "_")
}
