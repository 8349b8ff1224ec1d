package domain

import "time"

type Status string

const (
	StatusOpen   Status = "OPEN"
	StatusClosed Status = "CLOSED"
)

type ClosureReason string

const (
	ClosedManually  ClosureReason = "closed_manually"
	ClosedExpired   ClosureReason = "expired"
	ClosedVoteLimit ClosureReason = "max_votes_reached"
)

// ClosureReason returns why the poll no longer accepts votes, or an empty
// reason when it is open. Manual close wins over expiry, expiry over the cap.
// totalVotes must come from a fresh count.
func (p *Poll) ClosureReason(totalVotes int64, now time.Time) ClosureReason {
	switch {
	case p.ClosedManually:
		return ClosedManually
	case p.ExpiresAt != nil && now.After(*p.ExpiresAt):
		return ClosedExpired
	case p.HasVoteCap() && totalVotes >= *p.MaxVotes:
		return ClosedVoteLimit
	}
	return ""
}

// ResolveStatus never mutates the poll: an expired or full poll is reported
// CLOSED but ClosedManually stays untouched.
func ResolveStatus(p *Poll, totalVotes int64, now time.Time) Status {
	if p.ClosureReason(totalVotes, now) != "" {
		return StatusClosed
	}
	return StatusOpen
}

func (r ClosureReason) String() string {
	switch r {
	case ClosedManually:
		return "closed by owner"
	case ClosedExpired:
		return "expired"
	case ClosedVoteLimit:
		return "max votes reached"
	}
	return "open"
}
