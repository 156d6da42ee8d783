package gamesheet

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fortuna/athena/internal/ingest/browser"
)

// Anchor selectors and their wait budgets.
const (
	TeamTitleSelector = ".sc-epGxBs.huPBpa.column.teamTitle"
	TableSelector     = ".sc-VILhF.jDQCGM.gs-table"
	VisitorSelector   = ".sc-epGxBs.huPBpa.column.visitor"
	GameScoreSelector = `[data-testid="boxscore-game-score"]`
	GoalEventSelector = `[data-testid^="goal-event-"]`
	SeasonColSelector = ".column.season"

	shortWait = 20 * time.Second
	longWait  = 30 * time.Second
)

// TeamTitlesScript collects every team title line on a standings page.
const TeamTitlesScript = `(() => {
  const titles = [];
  document.querySelectorAll(".sc-epGxBs.huPBpa.column.teamTitle").forEach((el) => {
    el.innerText.split("\n")
      .map((line) => line.trim())
      .filter((line) => line && line !== "TEAM")
      .forEach((line) => titles.push(line));
  });
  return titles;
})()`

// standingsScript reads the frozen team column and, separately, every
// requested flexible column keyed by row index. %s is a JSON array of
// column classes.
const standingsScript = `(() => {
  const columns = %s;
  const fixedCol = document.querySelector(".sc-ciFqri.iwAFeO.fixed-cols .sc-epGxBs.huPBpa.column.teamTitle");
  if (!fixedCol) return {fixed: [], cells: {}};
  const n = fixedCol.querySelectorAll(".sc-jSJJpv.jEiWSF.row-header").length;
  const fixed = [];
  for (let i = 0; i < n; i++) {
    const cell = document.querySelector(".sc-ciFqri.iwAFeO.fixed-cols .sc-epGxBs.huPBpa.column.teamTitle .sc-jSJJpv.jEiWSF.row-header.row-" + i + " .data");
    const a = cell ? cell.querySelector(".team-title a") : null;
    fixed.push({name: a ? a.innerText.trim() : "", href: a ? a.href : ""});
  }
  const cells = {};
  for (const col of columns) {
    cells[col] = {};
    for (let i = 0; i < n; i++) {
      const c = document.querySelector(".sc-jtazNH.iZOrPG.flexible-cols .sc-epGxBs.huPBpa.column." + col + " .sc-edaYAx.hxntdf.cell.row-" + i + " .data");
      if (c) cells[col][i] = c.innerText.trim();
    }
  }
  return {fixed, cells};
})()`

// GameLinksScript returns the href of every game link on a schedule page.
const GameLinksScript = `Array.from(document.querySelectorAll('a[href*="/games/"]')).map((a) => a.href)`

// GameDetailScript reads the box score header of a game page.
const GameDetailScript = `(() => {
  const root = document.querySelector('[data-testid="boxscore-container"]') || document;
  const text = (id) => { const el = root.querySelector('[data-testid="' + id + '"]'); return el ? el.textContent : ""; };
  return {
    status: text("game-status-text"),
    homeTeam: text("home-title"),
    awayTeam: text("visitor-title"),
    homeScore: text("home-score"),
    awayScore: text("visitor-score"),
    gameType: text("game-type"),
    dateTime: text("game-date-time"),
  };
})()`

// GoalsScript reads the goal events grouped by period.
const GoalsScript = `(() => {
  const periods = [];
  document.querySelectorAll('[data-testid^="goal-by-period-"]').forEach((container) => {
    const header = container.querySelector('[data-testid^="goal-period-header-"]');
    const goals = [];
    container.querySelectorAll('[data-testid^="goal-event-"]').forEach((node) => {
      const span = (prefix) => { const el = node.querySelector('[data-testid^="' + prefix + '"] span'); return el ? el.innerText.trim() : ""; };
      const assists = node.querySelector('[data-testid^="goal-data-assists-"]');
      goals.push({
        time: span("goal-event-time-"),
        team: span("goal-data-team-"),
        scorer: span("goal-data-title-"),
        assists: assists ? assists.innerText.trim() : "",
      });
    });
    periods.push({period: header ? header.innerText.trim() : "", goals});
  });
  return periods;
})()`

// RosterScript reads every roster table with its column classes.
const RosterScript = `(() => {
  const colName = (el) => { const cl = Array.from(el.classList); const i = cl.indexOf("column"); return i >= 0 && i + 1 < cl.length ? cl[i + 1] : ""; };
  return Array.from(document.querySelectorAll(".sc-VILhF.jDQCGM.gs-table")).map((table) => {
    const columns = Array.from(table.querySelectorAll(".column")).map(colName).filter(Boolean);
    const rows = [];
    table.querySelectorAll(".column.number .row-header").forEach((_, idx) => {
      const value = (cls) => { const el = table.querySelector(".column." + cls + " .row-" + idx + " .data"); return el ? el.innerText.trim() : ""; };
      const a = table.querySelector(".column.name .row-" + idx + " .data a");
      rows.push({number: value("number"), position: value("position"), name: a ? a.innerText.trim() : "", link: a ? a.href : ""});
    });
    return {columns, rows};
  });
})()`

// PlayerTotalsScript reads the row labelled "Total" on a player page.
const PlayerTotalsScript = `(() => {
  const seasons = Array.from(document.querySelectorAll(".column.season .row-header .data span"));
  const ti = seasons.findIndex((s) => s.textContent.trim() === "Total");
  if (ti < 0) return {found: false, values: {}};
  const values = {};
  document.querySelectorAll(".column").forEach((el) => {
    const cl = Array.from(el.classList);
    const i = cl.indexOf("column");
    if (i < 0 || i + 1 >= cl.length) return;
    const cell = el.querySelector(".row-" + ti + " .data span");
    if (cell) values[cl[i + 1]] = cell.textContent.trim();
  });
  return {found: true, values};
})()`

// FixedRow is one entry of the frozen team column.
type FixedRow struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// StandingsTable is the raw two-part standings grid.
type StandingsTable struct {
	Fixed []FixedRow                `json:"fixed"`
	Cells map[string]map[int]string `json:"cells"`
}

// GameDetail is the raw box score header.
type GameDetail struct {
	Status    string `json:"status"`
	HomeTeam  string `json:"homeTeam"`
	AwayTeam  string `json:"awayTeam"`
	HomeScore string `json:"homeScore"`
	AwayScore string `json:"awayScore"`
	GameType  string `json:"gameType"`
	DateTime  string `json:"dateTime"`
}

// GoalPeriod groups the raw goal events of one period.
type GoalPeriod struct {
	Period string    `json:"period"`
	Goals  []RawGoal `json:"goals"`
}

// RawGoal is one goal event as rendered.
type RawGoal struct {
	Time    string `json:"time"`
	Team    string `json:"team"`
	Scorer  string `json:"scorer"`
	Assists string `json:"assists"`
}

// RosterTable is one table of the roster page.
type RosterTable struct {
	Columns []string    `json:"columns"`
	Rows    []RosterRow `json:"rows"`
}

// RosterRow is one player line of a roster table.
type RosterRow struct {
	Number   string `json:"number"`
	Position string `json:"position"`
	Name     string `json:"name"`
	Link     string `json:"link"`
}

// PlayerTotals is the Total row of a player page keyed by column class.
type PlayerTotals struct {
	Found  bool              `json:"found"`
	Values map[string]string `json:"values"`
}

func visit(ctx context.Context, page browser.Page, url, anchor string, wait time.Duration) error {
	if err := page.Navigate(ctx, url); err != nil {
		return err
	}
	return page.WaitVisible(ctx, anchor, wait)
}

// ExtractTeamTitles loads a standings page and returns its team names.
func ExtractTeamTitles(ctx context.Context, page browser.Page, url string) ([]string, error) {
	if err := visit(ctx, page, url, TeamTitleSelector, longWait); err != nil {
		return nil, err
	}
	var titles []string
	if err := page.Evaluate(ctx, TeamTitlesScript, &titles); err != nil {
		return nil, err
	}
	return titles, nil
}

// StandingsScript builds the standings extraction script for columns.
func StandingsScript(columns []string) string {
	cols, _ := json.Marshal(columns)
	return fmt.Sprintf(standingsScript, cols)
}

// ExtractStandings loads a standings page and returns its raw grid.
func ExtractStandings(ctx context.Context, page browser.Page, url string, columns []string) (StandingsTable, error) {
	var table StandingsTable
	if err := visit(ctx, page, url, TableSelector, shortWait); err != nil {
		return table, err
	}
	if err := page.Evaluate(ctx, StandingsScript(columns), &table); err != nil {
		return table, err
	}
	return table, nil
}

// ExtractGameIDs loads a team schedule and returns every game link.
func ExtractGameIDs(ctx context.Context, page browser.Page, url string) ([]string, error) {
	if err := visit(ctx, page, url, VisitorSelector, shortWait); err != nil {
		return nil, err
	}
	var hrefs []string
	if err := page.Evaluate(ctx, GameLinksScript, &hrefs); err != nil {
		return nil, err
	}
	return hrefs, nil
}

// ExtractGameDetail loads a game page and returns its box score header.
func ExtractGameDetail(ctx context.Context, page browser.Page, url string) (GameDetail, error) {
	var detail GameDetail
	if err := visit(ctx, page, url, GameScoreSelector, longWait); err != nil {
		return detail, err
	}
	if err := page.Evaluate(ctx, GameDetailScript, &detail); err != nil {
		return detail, err
	}
	return detail, nil
}

// ExtractGoals waits for goal events on the current page and reads them.
func ExtractGoals(ctx context.Context, page browser.Page) ([]GoalPeriod, error) {
	if err := page.WaitVisible(ctx, GoalEventSelector, longWait); err != nil {
		return nil, err
	}
	var periods []GoalPeriod
	if err := page.Evaluate(ctx, GoalsScript, &periods); err != nil {
		return nil, err
	}
	return periods, nil
}

// ExtractRosterRows loads a roster page and returns its tables.
func ExtractRosterRows(ctx context.Context, page browser.Page, url string) ([]RosterTable, error) {
	if err := visit(ctx, page, url, TableSelector, longWait); err != nil {
		return nil, err
	}
	var tables []RosterTable
	if err := page.Evaluate(ctx, RosterScript, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

// ExtractPlayerTotals loads a player page and returns its Total row.
func ExtractPlayerTotals(ctx context.Context, page browser.Page, url string) (PlayerTotals, error) {
	var totals PlayerTotals
	if err := visit(ctx, page, url, SeasonColSelector, shortWait); err != nil {
		return totals, err
	}
	if err := page.Evaluate(ctx, PlayerTotalsScript, &totals); err != nil {
		return totals, err
	}
	return totals, nil
}

// RawStanding is one joined standings row. Values holds every requested
// column, nil where the cell was missing or empty.
type RawStanding struct {
	TeamName string
	TeamID   string
	Values   map[string]*float64
}

// JoinStandingRows pairs each frozen row with its flexible cells by row
// index. It always returns len(fixed) rows.
func JoinStandingRows(fixed []FixedRow, cells map[string]map[int]string, columns []string) []RawStanding {
	rows := make([]RawStanding, len(fixed))
	for i, f := range fixed {
		values := make(map[string]*float64, len(columns))
		for _, col := range columns {
			var text string
			if byRow, ok := cells[col]; ok {
				text = byRow[i]
			}
			values[col] = ParseLenient(text)
		}
		rows[i] = RawStanding{
			TeamName: f.Name,
			TeamID:   TeamIDFromHref(f.Href),
			Values:   values,
		}
	}
	return rows
}

var leadingFloat = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`)

// ParseLenient reads the leading number of text. Empty or non-numeric
// text is nil.
func ParseLenient(text string) *float64 {
	m := leadingFloat.FindString(strings.TrimSpace(text))
	if m == "" {
		return nil
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil
	}
	return &v
}

var (
	teamIDPattern   = regexp.MustCompile(`/teams/(\d+)`)
	gameIDPattern   = regexp.MustCompile(`/games/(\d+)`)
	playerIDPattern = regexp.MustCompile(`/(?:players|goalies)/(\d+)`)
)

func firstGroup(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

// TeamIDFromHref extracts the numeric team id of a team link.
func TeamIDFromHref(href string) string { return firstGroup(teamIDPattern, href) }

// GameIDFromHref extracts the numeric game id of a game link.
func GameIDFromHref(href string) string { return firstGroup(gameIDPattern, href) }

// PlayerIDFromHref extracts the numeric id of a player or goalie link.
func PlayerIDFromHref(href string) string { return firstGroup(playerIDPattern, href) }

var (
	jerseyPrefix = regexp.MustCompile(`^#\d+\s+`)
	countSuffix  = regexp.MustCompile(`\s+\(\d+\)$`)
	assistSplit  = regexp.MustCompile(`#\d+\s+`)
)

// ExtractName reduces "#10 John Doe (1)" to "John Doe".
func ExtractName(text string) string {
	text = jerseyPrefix.ReplaceAllString(text, "")
	text = countSuffix.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// SplitAssists separates the primary and secondary assister. Text with a
// single "#" is a lone assist.
func SplitAssists(text string) (assister, preAssister string) {
	if strings.Count(text, "#") <= 1 {
		return ExtractName(text), ""
	}

	var parts []string
	for _, p := range assistSplit.Split(text, -1) {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "", ""
	}
	assister = ExtractName(parts[0])
	if len(parts) > 1 {
		preAssister = ExtractName(parts[1])
	}
	return assister, preAssister
}

// ShouldExtractGoals reports whether a game page can carry goal events.
// Scheduled and goalless games have no goal section to wait for.
func ShouldExtractGoals(detail GameDetail) bool {
	if strings.Contains(strings.ToLower(detail.Status), "scheduled") {
		return false
	}
	return !(scoreText(detail.HomeScore) == "0" && scoreText(detail.AwayScore) == "0")
}

// scoreText drops the shots-on-goal suffix of a rendered score.
func scoreText(raw string) string {
	score, _, _ := strings.Cut(raw, "SOG:")
	return strings.TrimSpace(score)
}
