package gamesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinStandingRowsKeepsPositions(t *testing.T) {
	fixed := []FixedRow{
		{Name: "Appleby College", Href: "https://gamesheetstats.com/seasons/7055/teams/275883?filter%5Bdivision%5D=41187"},
		{Name: "Upper Canada College", Href: "/seasons/7055/teams/275884"},
		{Name: "Ridley College", Href: ""},
	}
	cells := map[string]map[int]string{
		"gp":  {0: "10", 1: "9", 2: "10"},
		"pts": {0: "21", 2: "12"}, // row 1 has no points cell
		"w":   {1: ""},
	}
	columns := []string{"gp", "pts", "w", "ppct"}

	rows := JoinStandingRows(fixed, cells, columns)
	require.Len(t, rows, 3)

	assert.Equal(t, "Appleby College", rows[0].TeamName)
	assert.Equal(t, "275883", rows[0].TeamID)
	assert.Equal(t, 21.0, *rows[0].Values["pts"])

	assert.Nil(t, rows[1].Values["pts"])
	assert.Equal(t, 9.0, *rows[1].Values["gp"])
	assert.Nil(t, rows[1].Values["w"])

	assert.Equal(t, 12.0, *rows[2].Values["pts"])
	assert.Empty(t, rows[2].TeamID)

	for _, r := range rows {
		assert.Contains(t, r.Values, "ppct")
		assert.Nil(t, r.Values["ppct"])
	}
}

func TestJoinStandingRowsEmpty(t *testing.T) {
	assert.Empty(t, JoinStandingRows(nil, map[string]map[int]string{"gp": {0: "1"}}, SoccerColumns))
}

func TestParseLenient(t *testing.T) {
	cases := map[string]*float64{
		"":      nil,
		"  ":    nil,
		"-":     nil,
		"12":    ptr(12),
		"-3":    ptr(-3),
		".500":  ptr(0.5),
		"55.6%": ptr(55.6),
	}
	for in, want := range cases {
		got := ParseLenient(in)
		if want == nil {
			assert.Nil(t, got, in)
			continue
		}
		require.NotNil(t, got, in)
		assert.InDelta(t, *want, *got, 1e-9, in)
	}
}

func ptr(v float64) *float64 { return &v }

func TestIDFromHref(t *testing.T) {
	assert.Equal(t, "305372", TeamIDFromHref("/seasons/7974/teams/305372?filter%5Bdivision%5D=45988"))
	assert.Equal(t, "", TeamIDFromHref("/seasons/7974/standings"))
	assert.Equal(t, "1234567", GameIDFromHref("https://gamesheetstats.com/seasons/7974/games/1234567"))
	assert.Equal(t, "88", PlayerIDFromHref("/seasons/1/players/88"))
	assert.Equal(t, "99", PlayerIDFromHref("/seasons/1/goalies/99"))
	assert.Equal(t, "", PlayerIDFromHref("/seasons/1/coaches/7"))
}

func TestExtractName(t *testing.T) {
	assert.Equal(t, "John Doe", ExtractName("#10 John Doe (1)"))
	assert.Equal(t, "A. Smith", ExtractName("#7 A. Smith"))
	assert.Equal(t, "Plain Name", ExtractName("Plain Name"))
	assert.Equal(t, "", ExtractName(""))
}

func TestSplitAssists(t *testing.T) {
	a, pre := SplitAssists("#7 A. Smith #9 B. Jones")
	assert.Equal(t, "A. Smith", a)
	assert.Equal(t, "B. Jones", pre)

	a, pre = SplitAssists("#12 C. Lee (3)")
	assert.Equal(t, "C. Lee", a)
	assert.Empty(t, pre)

	a, pre = SplitAssists("")
	assert.Empty(t, a)
	assert.Empty(t, pre)
}

func TestShouldExtractGoals(t *testing.T) {
	cases := []struct {
		name   string
		detail GameDetail
		want   bool
	}{
		{"scheduled", GameDetail{Status: "Scheduled", HomeScore: "2", AwayScore: "1"}, false},
		{"goalless", GameDetail{Status: "final", HomeScore: "0", AwayScore: "0"}, false},
		{"goalless with shots", GameDetail{Status: "final", HomeScore: "0SOG: 12", AwayScore: "0 SOG: 9"}, false},
		{"played", GameDetail{Status: "final", HomeScore: "3", AwayScore: "0"}, true},
		{"blank scores", GameDetail{Status: "final"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ShouldExtractGoals(tc.detail))
		})
	}
}

func TestStandingsScriptEmbedsColumns(t *testing.T) {
	script := StandingsScript([]string{"gp", "pim"})
	assert.Contains(t, script, `const columns = ["gp","pim"];`)
}
