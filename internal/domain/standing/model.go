package standing

// Standing represents a league table row for one team.
type Standing struct {
	LeagueID       string
	TeamID         string
	TeamName       string
	Position       int
	Played         int
	Won            int
	Draw           int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	Form           string
}
