package domain

import "time"

type Poll struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	MaxVotes       *int64     `json:"max_votes,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	ClosedManually bool       `json:"closed_manually"`
	CreatedAt      time.Time  `json:"created_at"`

	Nominations []Nomination `json:"-"`
}

// HasVoteCap reports whether the poll carries a usable total vote cap.
// Zero and negative caps mean "no cap".
func (p *Poll) HasVoteCap() bool {
	return p.MaxVotes != nil && *p.MaxVotes > 0
}

// PollView is a poll as callers see it: the stored record plus its resolved
// status, the fresh vote total and one projection of its nominations.
type PollView struct {
	*Poll
	Status       Status             `json:"status"`
	ClosedReason ClosureReason      `json:"closed_reason,omitempty"`
	TotalVotes   int64              `json:"total_votes"`
	Nominations  []NominationResult `json:"nominations"`
}
