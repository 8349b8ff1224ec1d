package ports

import (
	"context"
	"time"

	"github.com/vncsmyrnk/nominate/internal/core/domain"
)

type PollRepository interface {
	// Save inserts the poll and its nominations atomically and fills in the
	// generated ids and timestamps.
	Save(ctx context.Context, poll *domain.Poll) error
	GetByID(ctx context.Context, id int64) (*domain.Poll, error)
	List(ctx context.Context) ([]*domain.Poll, error)
	Delete(ctx context.Context, id int64) error
	Close(ctx context.Context, id int64) error
}

type NominationInput struct {
	Name    string
	Manager string
}

type CreatePollInput struct {
	Title       string
	Nominations []NominationInput
	MaxVotes    *int64
	ExpiresAt   *time.Time
}

type PollService interface {
	Create(ctx context.Context, input CreatePollInput) (*domain.PollView, error)
	GetPoll(ctx context.Context, id int64) (*domain.PollView, error)
	ListPolls(ctx context.Context) ([]*domain.Poll, error)
	Results(ctx context.Context, id int64) (*domain.PollView, error)
	Close(ctx context.Context, id int64) (*domain.PollView, error)
	Delete(ctx context.Context, id int64) error
	GetNomination(ctx context.Context, id int64) (*domain.Nomination, error)
}
