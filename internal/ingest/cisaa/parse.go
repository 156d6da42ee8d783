package cisaa

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fortuna/athena/internal/ingest/gamesheet"
	"github.com/fortuna/athena/internal/lookup"
	"github.com/fortuna/athena/internal/normalize"
)

// standingsHeader is the concatenated text of the membership table header.
const standingsHeader = "TeamsGamesWinLossTiePoints"

// LeagueOption is one entry of a season dropdown.
type LeagueOption struct {
	Code string
	Name string
	Term lookup.Term
}

var seasonLists = []struct {
	selector string
	term     lookup.Term
}{
	{"#lstFall option", lookup.Fall},
	{"#lstWinter option", lookup.Winter},
	{"#lstSpring option", lookup.Spring},
}

// ParseLeagueOptions reads the three season dropdowns in Fall, Winter,
// Spring order, skipping the season placeholder options.
func ParseLeagueOptions(doc *goquery.Document) []LeagueOption {
	var out []LeagueOption
	for _, list := range seasonLists {
		doc.Find(list.selector).Each(func(_ int, s *goquery.Selection) {
			code, _ := s.Attr("value")
			code = strings.TrimSpace(code)
			name := strings.TrimSpace(s.Text())
			switch strings.ToUpper(name) {
			case "FALL", "WINTER", "SPRING":
				return
			}
			if code == "" {
				return
			}
			out = append(out, LeagueOption{Code: code, Name: name, Term: list.term})
		})
	}
	return out
}

// ParseMembership reports whether teamName has a row in the league's
// membership table.
func ParseMembership(doc *goquery.Document, teamName string) bool {
	found := false
	doc.Find("#standings").Find("div>table>tbody>tr").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if strings.Join(strings.Fields(text), "") == standingsHeader {
			return true
		}
		if normalize.TrimTeamName(text) == teamName {
			found = true
			return false
		}
		return true
	})
	return found
}

// ParseStandings reads both standings tables. Rows without a team cell are
// headers and are skipped.
func ParseStandings(doc *goquery.Document) []normalize.LegacyStanding {
	var out []normalize.LegacyStanding
	for i, sel := range []string{"#standingsTable1", "#standingsTable2"} {
		tableNum := i + 1
		doc.Find(sel).Find("tr").Each(func(_ int, row *goquery.Selection) {
			name := row.Find(".col1")
			if name.Length() == 0 {
				return
			}
			cell := func(class string) string { return strings.TrimSpace(row.Find(class).Text()) }
			out = append(out, normalize.LegacyStanding{
				RawName:     strings.TrimSpace(name.Text()),
				GamesPlayed: cell(".col2"),
				Wins:        cell(".col3"),
				Losses:      cell(".col4"),
				Ties:        cell(".col5"),
				Points:      cell(".col6"),
				TableNum:    tableNum,
			})
		})
	}
	return out
}

// ParseSchedule reads the schedule table rows that have all six cells.
func ParseSchedule(doc *goquery.Document) []normalize.LegacyGame {
	var out []normalize.LegacyGame
	doc.Find("#scheduleTable tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 6 {
			return
		}
		text := func(i int) string { return strings.TrimSpace(cells.Eq(i).Text()) }
		out = append(out, normalize.LegacyGame{
			DateText:  text(0),
			TimeText:  text(1),
			HomeText:  text(2),
			HomeScore: text(3),
			AwayText:  text(4),
			AwayScore: text(5),
		})
	})
	return out
}

var (
	seasonPattern   = regexp.MustCompile(`seasons/(\d+)`)
	divisionPattern = regexp.MustCompile(`filter(?:\[|%5B)division(?:]|%5D)=(\d+)`)
)

// ParseCompetition reads the embedded stats-site iframe of a league page.
func ParseCompetition(doc *goquery.Document) (gamesheet.Competition, bool) {
	src, ok := doc.Find(`iframe[src*="gamesheetstats.com/seasons/"]`).First().Attr("src")
	if !ok {
		return gamesheet.Competition{}, false
	}
	season := seasonPattern.FindStringSubmatch(src)
	division := divisionPattern.FindStringSubmatch(src)
	if season == nil || division == nil {
		return gamesheet.Competition{}, false
	}
	return gamesheet.Competition{SeasonCode: season[1], DivisionID: division[1]}, true
}
