package shared

import "github.com/google/uuid"

// TeamEnum identifies one of the two partnerships. Players 0 and 2 form
// North/South; players 1 and 3 form East/West.
type TeamEnum int

const (
	TeamNorthSouth TeamEnum = 0
	TeamEastWest   TeamEnum = 1
)

// TeamOf returns the partnership a player index belongs to.
func TeamOf(playerIndex int) TeamEnum {
	return TeamEnum(playerIndex % 2)
}

func (t TeamEnum) String() string {
	if t == TeamNorthSouth {
		return "NS"
	}
	return "EW"
}

// Team tracks a partnership's solved score for one deal, identified by a
// UUID for log correlation.
type Team struct {
	ID    string   `json:"id"`
	Which TeamEnum `json:"which"`
	Score int      `json:"score"`
}

// NewTeam creates a new team for the given partnership.
func NewTeam(which TeamEnum) *Team {
	return &Team{
		ID:    uuid.NewString(),
		Which: which,
		Score: 0,
	}
}

// AddScore adds points to the team's total score.
func (t *Team) AddScore(points int) {
	t.Score += points
}

// ResetScore resets the score to 0.
func (t *Team) ResetScore() {
	t.Score = 0
}
