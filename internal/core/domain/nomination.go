package domain

import "time"

type Nomination struct {
	ID        int64     `json:"id"`
	PollID    int64     `json:"poll_id"`
	Name      string    `json:"name"`
	Manager   string    `json:"manager"`
	CreatedAt time.Time `json:"created_at"`
	VoteCount int64     `json:"vote_count"`
}

// Tally is the raw per-nomination rollup read from storage. Both result
// projections are derived from it.
type Tally struct {
	Nomination Nomination
	VoteCount  int64
	TotalScore int64
}

type NominationStats struct {
	TotalScore int64   `json:"total_score"`
	VoteCount  int64   `json:"vote_count"`
	Average    float64 `json:"average"`
}

// NominationResult is a nomination in a ranked listing. Stats is nil in the
// plain projection so scores stay hidden while a poll is open.
type NominationResult struct {
	Nomination
	Stats *NominationStats `json:"stats,omitempty"`
}
