package normalize

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/athena/internal/ingest/gamesheet"
	"github.com/fortuna/athena/internal/lookup"
	"github.com/fortuna/athena/internal/store"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

var (
	soccer = store.Sport{Name: "Soccer Sr Boys DI", Term: lookup.Fall, LeagueCode: "2860Y8N5D", UsesGamesheet: true}
	home   = lookup.School{ID: 66, Name: "Appleby College", Abbreviation: "AC", LogoDir: "appleby"}
)

func TestTrimTeamName(t *testing.T) {
	assert.Equal(t, "Appleby College", TrimTeamName("Appleby College 1-"))
	assert.Equal(t, "Ridley College", TrimTeamName("Ridley College  "))
	assert.Equal(t, "", TrimTeamName("A"))
	assert.Equal(t, "", TrimTeamName(""))
	assert.Equal(t, "Collège", TrimTeamName("Collège é-x"))
}

func TestParseLeadingInt(t *testing.T) {
	assert.Equal(t, 12, *ParseLeadingInt(" 12 "))
	assert.Equal(t, -3, *ParseLeadingInt("-3pts"))
	assert.Equal(t, 7, *ParseLeadingInt("7.9"))
	assert.Nil(t, ParseLeadingInt(""))
	assert.Nil(t, ParseLeadingInt("-"))
	assert.Equal(t, 0, IntOrZero("n/a"))
	assert.Equal(t, 2.5, FloatOrZero("2.50"))
	assert.Equal(t, 0.0, FloatOrZero(""))
}

func TestKeys(t *testing.T) {
	date := time.Date(2024, time.September, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "S_66_2860Y8N5D", StandingsCode(intp(66), "2860Y8N5D"))
	assert.Equal(t, "S_null_2860Y8N5D", StandingsCode(nil, "2860Y8N5D"))
	assert.Equal(t, "G_66_67_2024_09_05_X1", GameCode(intp(66), intp(67), date, "X1"))
	assert.Equal(t, "G_null_67_2024_09_05_X1", GameCode(nil, intp(67), date, "X1"))
}

func TestToStanding(t *testing.T) {
	row := LegacyStanding{RawName: "Appleby College 1-", GamesPlayed: "5", Wins: "3", Losses: "1", Ties: "1", Points: "", TableNum: 2}
	got := ToStanding(row, "L1")

	want := store.Standing{
		TeamName:      "Appleby College",
		GamesPlayed:   intp(5),
		Wins:          intp(3),
		Losses:        intp(1),
		Ties:          intp(1),
		TableNum:      2,
		SportID:       "L1",
		SchoolID:      intp(66),
		StandingsCode: "S_66_L1",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("standing mismatch (-want +got):\n%s", diff)
	}
}

func TestToGamesheetStanding(t *testing.T) {
	raw := gamesheet.RawStanding{
		TeamName: "Upper Canada College",
		TeamID:   "275884",
		Values: map[string]*float64{
			"gp": floatp(10), "w": floatp(6), "l": floatp(2), "t": floatp(2), "pts": floatp(20),
			"ppct": floatp(0.667), "gf": floatp(18), "ga": floatp(9), "diff": floatp(9),
			"yc": floatp(4), "rc": nil,
		},
	}

	got := ToGamesheetStanding(raw, lookup.Soccer, "L1")
	assert.Equal(t, 3, got.TableNum)
	assert.Equal(t, "S_67_L1", got.StandingsCode)
	assert.Equal(t, "275884", got.GamesheetTeamID)

	ext, ok := got.Ext.(store.SoccerStandingExt)
	require.True(t, ok)
	assert.Equal(t, 9, *ext.GoalDifference)
	assert.InDelta(t, 0.667, *ext.PointsPercentage, 1e-9)
	assert.Nil(t, ext.RedCards)

	hockey := ToGamesheetStanding(gamesheet.RawStanding{TeamName: "Nowhere", Values: map[string]*float64{"pim": floatp(31)}}, lookup.Hockey, "H1")
	assert.Equal(t, 4, hockey.TableNum)
	assert.Nil(t, hockey.SchoolID)
	assert.Equal(t, "S_null_H1", hockey.StandingsCode)
	hext, ok := hockey.Ext.(store.HockeyStandingExt)
	require.True(t, ok)
	assert.Equal(t, 31, *hext.PenaltyMinutes)
}

func TestHomeTeamID(t *testing.T) {
	standings := []store.Standing{
		{TeamName: "Ridley College", GamesheetTeamID: "1"},
		{TeamName: "Appleby College", GamesheetTeamID: "2"},
	}
	id, ok := HomeTeamID(standings, "Appleby College")
	assert.True(t, ok)
	assert.Equal(t, "2", id)

	_, ok = HomeTeamID(standings, "Crescent School")
	assert.False(t, ok)
}

func TestParseLegacyDate(t *testing.T) {
	nov := time.Date(2024, time.November, 15, 0, 0, 0, 0, time.UTC)

	got, err := ParseLegacyDate("Wed Sep 25 ", nov)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.September, 25, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseLegacyDate("Tue Mar 4", nov)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseLegacyDate("TBD", nov)
	assert.Error(t, err)
}

func TestParseLegacyTime(t *testing.T) {
	assert.Equal(t, "3:30 PM", ParseLegacyTime(" 03:30 pm"))
	assert.Equal(t, "9:15 AM", ParseLegacyTime("09:15 am"))
	assert.Equal(t, "12:00 PM", ParseLegacyTime("12:00 pm"))
}

func TestParseAbbreviation(t *testing.T) {
	assert.Equal(t, "AC", ParseAbbreviation(" AC (b) - 2"))
	assert.Equal(t, "UCC", ParseAbbreviation("UCC-1"))
	assert.Equal(t, "st", ParseAbbreviation("st - x"))
}

func TestToGame(t *testing.T) {
	today := time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)

	t.Run("home game", func(t *testing.T) {
		row := LegacyGame{DateText: "Wed Sep 25", TimeText: "04:00 pm", HomeText: "AC", HomeScore: " 2 ", AwayText: "UCC", AwayScore: "1"}
		got, err := ToGame(row, soccer, home, today)
		require.NoError(t, err)

		assert.Equal(t, "Appleby College", got.HomeTeam)
		assert.Equal(t, "Upper Canada College", got.AwayTeam)
		assert.Equal(t, "4:00 PM", got.GameTime)
		assert.Equal(t, "2", got.HomeScore)
		assert.Equal(t, "G_66_67_2024_09_25_2860Y8N5D", got.GameCode)
		assert.Nil(t, got.Gamesheet)
	})

	t.Run("other schools", func(t *testing.T) {
		row := LegacyGame{DateText: "Wed Sep 25", HomeText: "UCC", AwayText: "UCC"}
		_, err := ToGame(row, soccer, home, today)
		assert.ErrorIs(t, err, ErrNotHomeGame)
	})

	t.Run("unknown opponent", func(t *testing.T) {
		row := LegacyGame{DateText: "Wed Sep 25", HomeText: "AC", AwayText: "ZZZ"}
		_, err := ToGame(row, soccer, home, today)
		assert.True(t, errors.Is(err, ErrUnresolvedSchool))
	})
}

func TestToGamesheetGame(t *testing.T) {
	loc, err := time.LoadLocation("America/Toronto")
	require.NoError(t, err)

	raw := gamesheet.RawGame{
		GameID:    "7",
		Status:    "final",
		HomeTeam:  "Appleby College",
		AwayTeam:  "Visiting Club",
		HomeScore: "2",
		AwayScore: "1",
		DateTime:  "Oct 2, 2024, 9:30 PM",
		Link:      "https://gs.test/games/7",
	}
	comp := gamesheet.Competition{SeasonCode: "7055", DivisionID: "41187"}

	got, err := ToGamesheetGame(raw, soccer, comp, loc)
	require.NoError(t, err)

	assert.Equal(t, "9:30 PM", got.GameTime)
	assert.Equal(t, "AC", got.HomeAbbr)
	assert.Empty(t, got.AwayAbbr)
	assert.Nil(t, got.AwaySchoolID)
	// late evening in Toronto keeps the local calendar date
	assert.Equal(t, "G_66_null_2024_10_02_2860Y8N5D", got.GameCode)
	require.NotNil(t, got.Gamesheet)
	assert.Equal(t, "7055", got.Gamesheet.SeasonCode)
	assert.Equal(t, "41187", got.Gamesheet.DivisionCode)

	_, err = ToGamesheetGame(gamesheet.RawGame{DateTime: "soon"}, soccer, comp, loc)
	assert.Error(t, err)
}

func TestToRosterEntry(t *testing.T) {
	totals := map[string]string{"gp": "8", "g": "3", "a": "x", "yc": "1", "pts": "5", "pim": "4", "sa": "40", "ga": "6", "gaa": "1.25", "so": "2", "min": "360"}

	skater := ToRosterEntry(gamesheet.RawPlayer{Number: "10", Name: "John Doe", Position: "F", Link: "/seasons/1/players/88", Totals: totals}, lookup.Soccer, "Appleby College", "7055")
	assert.Equal(t, "88", skater.PlayerID)
	assert.Equal(t, 0, skater.Assists)
	assert.Equal(t, store.SoccerSkaterExt{YellowCards: 1, Link: "/seasons/1/players/88"}, skater.Ext)

	keeper := ToRosterEntry(gamesheet.RawPlayer{Name: "K", Keeper: true, Totals: totals}, lookup.Soccer, "Appleby College", "7055")
	kext, ok := keeper.Ext.(store.SoccerKeeperExt)
	require.True(t, ok)
	assert.Equal(t, 1.25, kext.GoalsAgainstAverage)

	goalie := ToRosterEntry(gamesheet.RawPlayer{Name: "G", Keeper: true, Totals: totals}, lookup.Hockey, "Appleby College", "7055")
	gext, ok := goalie.Ext.(store.HockeyKeeperExt)
	require.True(t, ok)
	assert.Equal(t, 1.0, gext.GoalsAgainstAverage)
	assert.Equal(t, 360, gext.MinutesPlayed)

	forward := ToRosterEntry(gamesheet.RawPlayer{Name: "F", Totals: totals}, lookup.Hockey, "Appleby College", "7055")
	assert.Equal(t, store.HockeySkaterExt{Points: 5, PenaltyMinutes: 4}, forward.Ext)
}

func TestHockeyGAA(t *testing.T) {
	assert.Equal(t, 0.0, HockeyGAA(3, 0))
	assert.Equal(t, 2.57, HockeyGAA(3, 70))
}

func TestRosterDocID(t *testing.T) {
	assert.Equal(t, "Hockey_Sr_Boys_I", RosterDocID("Hockey Sr Boys I"))
	assert.Equal(t, "U_14_Girls__A_", RosterDocID("U/14 Girls [A]"))
	assert.Equal(t, "Sr_Boys_Div_", RosterDocID("Sr  Boys\tDiv#"))
}
