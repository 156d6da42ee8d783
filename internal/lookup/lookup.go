// Package lookup holds the static league and school reference tables.
package lookup

import (
	"errors"
	"strings"
)

// Term is the school term a league is played in.
type Term string

const (
	Fall    Term = "Fall"
	Winter  Term = "Winter"
	Spring  Term = "Spring"
	Unknown Term = "Unknown"
)

// SportKind selects the stats-site column layout.
type SportKind string

const (
	Soccer SportKind = "soccer"
	Hockey SportKind = "hockey"
)

// ErrUnsupportedSport is returned by KindOf for sports the stats site
// parser has no layout for.
var ErrUnsupportedSport = errors.New("unsupported sport for stats site")

// SportInfo describes one league on the results site.
type SportInfo struct {
	Name          string
	Term          Term
	LeagueCode    string
	UsesGamesheet bool
}

// School is a member school.
type School struct {
	ID           int
	Name         string
	Abbreviation string
	LogoDir      string
}

var sportsByCode = func() map[string]SportInfo {
	m := make(map[string]SportInfo, len(sportTable))
	for _, s := range sportTable {
		m[s.LeagueCode] = s
	}
	return m
}()

// SportByLeagueCode returns the sport registered under code.
func SportByLeagueCode(code string) (SportInfo, bool) {
	s, ok := sportsByCode[code]
	return s, ok
}

// SportByName returns the first sport whose name equals name.
func SportByName(name string) (SportInfo, bool) {
	for _, s := range sportTable {
		if s.Name == name {
			return s, true
		}
	}
	return SportInfo{}, false
}

// SportsByTerm returns all sports played in term.
func SportsByTerm(term Term) []SportInfo {
	var out []SportInfo
	for _, s := range sportTable {
		if s.Term == term {
			out = append(out, s)
		}
	}
	return out
}

// AllSports returns a copy of the league table.
func AllSports() []SportInfo {
	out := make([]SportInfo, len(sportTable))
	copy(out, sportTable)
	return out
}

// SchoolByAbbreviation does an exact abbreviation match.
func SchoolByAbbreviation(abbr string) (School, bool) {
	for _, s := range schoolTable {
		if s.Abbreviation == abbr {
			return s, true
		}
	}
	return School{}, false
}

// SchoolByID returns the school with the given id.
func SchoolByID(id int) (School, bool) {
	for _, s := range schoolTable {
		if s.ID == id {
			return s, true
		}
	}
	return School{}, false
}

// SchoolByName does an exact full-name match.
func SchoolByName(name string) (School, bool) {
	for _, s := range schoolTable {
		if s.Name == name {
			return s, true
		}
	}
	return School{}, false
}

// SchoolIDByTeamName returns the id of the first school, in table order,
// whose full name appears inside teamName. When one school name contains
// another the earlier table entry wins.
func SchoolIDByTeamName(teamName string) (int, bool) {
	for _, s := range schoolTable {
		if strings.Contains(teamName, s.Name) {
			return s.ID, true
		}
	}
	return 0, false
}

// AllSchools returns a copy of the school table.
func AllSchools() []School {
	out := make([]School, len(schoolTable))
	copy(out, schoolTable)
	return out
}

// KindOf derives the stats-site layout from a sport's display name.
func KindOf(sportName string) (SportKind, error) {
	name := strings.ToLower(sportName)
	switch {
	case strings.Contains(name, "soccer"):
		return Soccer, nil
	case strings.Contains(name, "hockey"):
		return Hockey, nil
	default:
		return "", ErrUnsupportedSport
	}
}
