package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSportByLeagueCode(t *testing.T) {
	s, ok := SportByLeagueCode("2860Y8N5D")
	require.True(t, ok)
	assert.Equal(t, "Soccer Sr Boys DI", s.Name)
	assert.Equal(t, Fall, s.Term)
	assert.True(t, s.UsesGamesheet)

	_, ok = SportByLeagueCode("NOPE")
	assert.False(t, ok)
}

func TestLeagueCodesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range AllSports() {
		require.False(t, seen[s.LeagueCode], "duplicate league code %s", s.LeagueCode)
		seen[s.LeagueCode] = true
	}
}

func TestSportsByTerm(t *testing.T) {
	total := 0
	for _, term := range []Term{Fall, Winter, Spring} {
		sports := SportsByTerm(term)
		require.NotEmpty(t, sports)
		for _, s := range sports {
			assert.Equal(t, term, s.Term)
		}
		total += len(sports)
	}
	assert.Equal(t, len(AllSports()), total)
}

func TestSchoolLookups(t *testing.T) {
	s, ok := SchoolByAbbreviation("AC")
	require.True(t, ok)
	assert.Equal(t, 66, s.ID)
	assert.Equal(t, "Appleby College", s.Name)

	_, ok = SchoolByAbbreviation("ac")
	assert.False(t, ok)

	s, ok = SchoolByID(67)
	require.True(t, ok)
	assert.Equal(t, "UCC", s.Abbreviation)
}

func TestSchoolIDByTeamName(t *testing.T) {
	cases := []struct {
		team   string
		wantID int
		wantOK bool
	}{
		{team: "Appleby College", wantID: 66, wantOK: true},
		{team: "Upper Canada College Blues", wantID: 67, wantOK: true},
		// earlier table entries win; the (b) team is listed first
		{team: "Appleby College (b)", wantID: 65, wantOK: true},
		{team: "Some Other Academy", wantOK: false},
	}

	for _, tc := range cases {
		id, ok := SchoolIDByTeamName(tc.team)
		assert.Equal(t, tc.wantOK, ok, tc.team)
		if tc.wantOK {
			assert.Equal(t, tc.wantID, id, tc.team)
		}
	}
}

func TestKindOf(t *testing.T) {
	k, err := KindOf("Soccer Sr Boys DI")
	require.NoError(t, err)
	assert.Equal(t, Soccer, k)

	k, err = KindOf("Hockey Sr Girls DI")
	require.NoError(t, err)
	assert.Equal(t, Hockey, k)

	_, err = KindOf("Volleyball Sr Boys DI")
	assert.ErrorIs(t, err, ErrUnsupportedSport)
}

func TestAllSportsReturnsCopy(t *testing.T) {
	sports := AllSports()
	sports[0].Name = "mutated"
	assert.NotEqual(t, "mutated", AllSports()[0].Name)
}
