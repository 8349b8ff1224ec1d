package ports

import (
	"context"

	"github.com/vncsmyrnk/nominate/internal/core/domain"
)

// VoteGuard decides whether a vote may be stored given the poll and its
// current vote total, both read inside the inserting transaction.
type VoteGuard func(poll *domain.Poll, totalVotes int64) error

type VoteRepository interface {
	// Cast locks the poll, runs guard and inserts the vote only when guard
	// returns nil. Returns domain.ErrPollNotFound or
	// domain.ErrNominationNotFound when the references do not match.
	Cast(ctx context.Context, vote *domain.Vote, guard VoteGuard) error
	CountForPoll(ctx context.Context, pollID int64) (int64, error)
	// DeleteByVoter removes voterID's votes on a nomination and reports how
	// many were removed. Like Cast, guard runs on the locked poll first.
	DeleteByVoter(ctx context.Context, pollID, nominationID int64, voterID string, guard VoteGuard) (int64, error)
}

type VoteInput struct {
	PollID       int64
	NominationID int64
	Score        int
	VoterID      string
}

type VoteService interface {
	Vote(ctx context.Context, input VoteInput) (*domain.Vote, error)
	Unvote(ctx context.Context, pollID, nominationID int64, voterID string) error
}
