package ports

import (
	"context"

	"github.com/vncsmyrnk/nominate/internal/core/domain"
)

type NominationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Nomination, error)
	// Tallies returns one row per nomination of the poll, including the ones
	// without votes, computed from the votes table on every call.
	Tallies(ctx context.Context, pollID int64) ([]domain.Tally, error)
	CountVotes(ctx context.Context, nominationID int64) (int64, error)
}
