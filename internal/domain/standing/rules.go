package standing

import (
	"sort"
	"strings"

	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/team"
)

const (
	PointsWin  = 3
	PointsDraw = 1

	formLength = 5
)

// Compute builds the table of a league from its teams and matches. Only
// completed matches with both scores count. Rows are ordered by points, goal
// difference and goals scored, all descending, then by team name.
// Form lists the last five results oldest first.
func Compute(leagueID string, teams []team.Team, matches []match.Match) []Standing {
	rows := make(map[string]*Standing, len(teams))
	for _, t := range teams {
		rows[t.ID] = &Standing{LeagueID: leagueID, TeamID: t.ID, TeamName: t.Name}
	}

	played := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if !match.IsFinished(m.Status) || m.HomeScore == nil || m.AwayScore == nil {
			continue
		}
		if rows[m.HomeTeamID] == nil || rows[m.AwayTeamID] == nil {
			continue
		}
		played = append(played, m)
	}
	sort.SliceStable(played, func(i, j int) bool {
		return played[i].KickoffAt.Before(played[j].KickoffAt)
	})

	forms := make(map[string][]byte, len(rows))
	for _, m := range played {
		home, away := *m.HomeScore, *m.AwayScore
		homeResult, awayResult := result(home, away), result(away, home)
		record(rows[m.HomeTeamID], home, away, homeResult)
		record(rows[m.AwayTeamID], away, home, awayResult)
		forms[m.HomeTeamID] = append(forms[m.HomeTeamID], homeResult)
		forms[m.AwayTeamID] = append(forms[m.AwayTeamID], awayResult)
	}

	out := make([]Standing, 0, len(rows))
	for id, row := range rows {
		form := forms[id]
		if len(form) > formLength {
			form = form[len(form)-formLength:]
		}
		row.Form = string(form)
		row.GoalDifference = row.GoalsFor - row.GoalsAgainst
		out = append(out, *row)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		if c := strings.Compare(strings.ToLower(a.TeamName), strings.ToLower(b.TeamName)); c != 0 {
			return c < 0
		}
		return a.TeamID < b.TeamID
	})
	for i := range out {
		out[i].Position = i + 1
	}

	return out
}

func result(scored, conceded int) byte {
	switch {
	case scored > conceded:
		return 'W'
	case scored < conceded:
		return 'L'
	default:
		return 'D'
	}
}

func record(row *Standing, scored, conceded int, res byte) {
	row.Played++
	row.GoalsFor += scored
	row.GoalsAgainst += conceded
	switch res {
	case 'W':
		row.Won++
		row.Points += PointsWin
	case 'D':
		row.Draw++
		row.Points += PointsDraw
	default:
		row.Lost++
	}
}
