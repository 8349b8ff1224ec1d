package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vncsmyrnk/nominate/internal/core/domain"
	"github.com/vncsmyrnk/nominate/internal/core/ports"
)

type mockPollRepo struct{ mock.Mock }

func (m *mockPollRepo) Save(ctx context.Context, poll *domain.Poll) error {
	return m.Called(ctx, poll).Error(0)
}

func (m *mockPollRepo) GetByID(ctx context.Context, id int64) (*domain.Poll, error) {
	args := m.Called(ctx, id)
	poll, _ := args.Get(0).(*domain.Poll)
	return poll, args.Error(1)
}

func (m *mockPollRepo) List(ctx context.Context) ([]*domain.Poll, error) {
	args := m.Called(ctx)
	polls, _ := args.Get(0).([]*domain.Poll)
	return polls, args.Error(1)
}

func (m *mockPollRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPollRepo) Close(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockNominationRepo struct{ mock.Mock }

func (m *mockNominationRepo) GetByID(ctx context.Context, id int64) (*domain.Nomination, error) {
	args := m.Called(ctx, id)
	n, _ := args.Get(0).(*domain.Nomination)
	return n, args.Error(1)
}

func (m *mockNominationRepo) Tallies(ctx context.Context, pollID int64) ([]domain.Tally, error) {
	args := m.Called(ctx, pollID)
	tallies, _ := args.Get(0).([]domain.Tally)
	return tallies, args.Error(1)
}

func (m *mockNominationRepo) CountVotes(ctx context.Context, nominationID int64) (int64, error) {
	args := m.Called(ctx, nominationID)
	return args.Get(0).(int64), args.Error(1)
}

// mockVoteRepo runs the guard of Cast and DeleteByVoter against the
// configured poll and total, the way the real repositories do inside their
// transaction.
type mockVoteRepo struct {
	mock.Mock
	poll  *domain.Poll
	total int64
}

func (m *mockVoteRepo) Cast(ctx context.Context, vote *domain.Vote, guard ports.VoteGuard) error {
	args := m.Called(ctx, vote)
	if err := args.Error(0); err != nil {
		return err
	}
	if err := guard(m.poll, m.total); err != nil {
		return err
	}
	vote.ID = m.total + 1
	m.total++
	return nil
}

func (m *mockVoteRepo) CountForPoll(ctx context.Context, pollID int64) (int64, error) {
	args := m.Called(ctx, pollID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockVoteRepo) DeleteByVoter(ctx context.Context, pollID, nominationID int64, voterID string, guard ports.VoteGuard) (int64, error) {
	args := m.Called(ctx, pollID, nominationID, voterID)
	if err := args.Error(1); err != nil {
		return 0, err
	}
	if err := guard(m.poll, m.total); err != nil {
		return 0, err
	}
	deleted := args.Get(0).(int64)
	m.total -= deleted
	return deleted, nil
}
