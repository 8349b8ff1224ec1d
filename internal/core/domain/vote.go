package domain

import "time"

const (
	MinScore = 1
	MaxScore = 10
)

type Vote struct {
	ID           int64     `json:"id"`
	PollID       int64     `json:"poll_id"`
	NominationID int64     `json:"nomination_id"`
	Score        int       `json:"score"`
	VoterID      string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func ValidScore(score int) bool {
	return score >= MinScore && score <= MaxScore
}
