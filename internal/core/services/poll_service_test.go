package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/nominate/internal/core/domain"
	"github.com/vncsmyrnk/nominate/internal/core/ports"
)

var fixedNow = time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC)

type pollFixture struct {
	polls       *mockPollRepo
	nominations *mockNominationRepo
	votes       *mockVoteRepo
	svc         *pollService
}

func newPollFixture() *pollFixture {
	f := &pollFixture{
		polls:       &mockPollRepo{},
		nominations: &mockNominationRepo{},
		votes:       &mockVoteRepo{},
	}
	svc := NewPollService(f.polls, f.nominations, f.votes).(*pollService)
	svc.now = func() time.Time { return fixedNow }
	f.svc = svc
	return f
}

func int64Ptr(v int64) *int64 { return &v }

func sampleTallies() []domain.Tally {
	return []domain.Tally{
		{Nomination: domain.Nomination{ID: 3, PollID: 1, Name: "C", Manager: "m3"}},
		{Nomination: domain.Nomination{ID: 2, PollID: 1, Name: "B", Manager: "m2"}, VoteCount: 1, TotalScore: 9},
		{Nomination: domain.Nomination{ID: 1, PollID: 1, Name: "A", Manager: "m1"}, VoteCount: 2, TotalScore: 18},
	}
}

func TestPollServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("skips incomplete nominations and normalizes the cap", func(t *testing.T) {
		f := newPollFixture()
		f.polls.On("Save", ctx, mock.AnythingOfType("*domain.Poll")).
			Run(func(args mock.Arguments) {
				p := args.Get(1).(*domain.Poll)
				p.ID = 7
				p.CreatedAt = fixedNow
				for i := range p.Nominations {
					p.Nominations[i].ID = int64(i + 1)
					p.Nominations[i].PollID = 7
				}
			}).
			Return(nil)
		f.votes.On("CountForPoll", ctx, int64(7)).Return(int64(0), nil)
		f.nominations.On("Tallies", ctx, int64(7)).Return([]domain.Tally{
			{Nomination: domain.Nomination{ID: 2, PollID: 7, Name: "Bob", Manager: "Y"}},
			{Nomination: domain.Nomination{ID: 1, PollID: 7, Name: "Alice", Manager: "X"}},
		}, nil)

		view, err := f.svc.Create(ctx, ports.CreatePollInput{
			Title: "  Best player  ",
			Nominations: []ports.NominationInput{
				{Name: "Alice", Manager: "X"},
				{Name: "", Manager: "nobody"},
				{Name: "Bob", Manager: "Y"},
				{Name: "Carol", Manager: "  "},
			},
			MaxVotes: int64Ptr(0),
		})
		require.NoError(t, err)

		saved := f.polls.Calls[0].Arguments.Get(1).(*domain.Poll)
		assert.Equal(t, "Best player", saved.Title)
		assert.Nil(t, saved.MaxVotes)
		require.Len(t, saved.Nominations, 2)
		assert.Equal(t, "Alice", saved.Nominations[0].Name)
		assert.Equal(t, "Bob", saved.Nominations[1].Name)

		assert.Equal(t, int64(7), view.ID)
		assert.Equal(t, domain.StatusOpen, view.Status)
		require.Len(t, view.Nominations, 2)
		assert.Equal(t, "Alice", view.Nominations[0].Name)
		assert.Nil(t, view.Nominations[0].Stats)
	})

	t.Run("rejects an empty title", func(t *testing.T) {
		f := newPollFixture()
		_, err := f.svc.Create(ctx, ports.CreatePollInput{
			Title:       "   ",
			Nominations: []ports.NominationInput{{Name: "A", Manager: "B"}},
		})
		assert.ErrorIs(t, err, domain.ErrTitleRequired)
		assert.ErrorIs(t, err, domain.ErrValidation)
		f.polls.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects polls without a complete nomination", func(t *testing.T) {
		f := newPollFixture()
		_, err := f.svc.Create(ctx, ports.CreatePollInput{
			Title:       "Empty",
			Nominations: []ports.NominationInput{{Name: "only name"}},
		})
		assert.ErrorIs(t, err, domain.ErrNominationsRequired)
		f.polls.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("propagates storage failures", func(t *testing.T) {
		f := newPollFixture()
		boom := errors.New("boom")
		f.polls.On("Save", ctx, mock.Anything).Return(boom)

		_, err := f.svc.Create(ctx, ports.CreatePollInput{
			Title:       "T",
			Nominations: []ports.NominationInput{{Name: "A", Manager: "B"}},
		})
		assert.ErrorIs(t, err, boom)
	})
}

func TestPollServiceGetPoll(t *testing.T) {
	ctx := context.Background()

	t.Run("open poll hides scores", func(t *testing.T) {
		f := newPollFixture()
		f.polls.On("GetByID", ctx, int64(1)).Return(&domain.Poll{ID: 1, Title: "t"}, nil)
		f.votes.On("CountForPoll", ctx, int64(1)).Return(int64(3), nil)
		f.nominations.On("Tallies", ctx, int64(1)).Return(sampleTallies(), nil)

		view, err := f.svc.GetPoll(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, domain.StatusOpen, view.Status)
		assert.Empty(t, view.ClosedReason)
		assert.Equal(t, int64(3), view.TotalVotes)
		require.Len(t, view.Nominations, 3)
		assert.Equal(t, []string{"A", "B", "C"}, []string{view.Nominations[0].Name, view.Nominations[1].Name, view.Nominations[2].Name})
		for _, n := range view.Nominations {
			assert.Nil(t, n.Stats)
		}
	})

	t.Run("cap reached closes the poll without a manual close", func(t *testing.T) {
		f := newPollFixture()
		poll := &domain.Poll{ID: 1, MaxVotes: int64Ptr(2)}
		f.polls.On("GetByID", ctx, int64(1)).Return(poll, nil)
		f.votes.On("CountForPoll", ctx, int64(1)).Return(int64(2), nil)
		f.nominations.On("Tallies", ctx, int64(1)).Return(sampleTallies(), nil)

		view, err := f.svc.GetPoll(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, domain.StatusClosed, view.Status)
		assert.Equal(t, domain.ClosedVoteLimit, view.ClosedReason)
		assert.False(t, poll.ClosedManually)
		f.polls.AssertNotCalled(t, "Close", mock.Anything, mock.Anything)
		require.NotNil(t, view.Nominations[0].Stats)
		assert.Equal(t, 9.0, view.Nominations[0].Stats.Average)
		assert.Equal(t, "A", view.Nominations[0].Name)
	})

	t.Run("expired poll is closed", func(t *testing.T) {
		f := newPollFixture()
		expired := fixedNow.Add(-time.Minute)
		f.polls.On("GetByID", ctx, int64(1)).Return(&domain.Poll{ID: 1, ExpiresAt: &expired}, nil)
		f.votes.On("CountForPoll", ctx, int64(1)).Return(int64(0), nil)
		f.nominations.On("Tallies", ctx, int64(1)).Return([]domain.Tally{}, nil)

		view, err := f.svc.GetPoll(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusClosed, view.Status)
		assert.Equal(t, domain.ClosedExpired, view.ClosedReason)
		assert.Empty(t, view.Nominations)
	})

	t.Run("not found", func(t *testing.T) {
		f := newPollFixture()
		f.polls.On("GetByID", ctx, int64(9)).Return(nil, domain.ErrPollNotFound)

		_, err := f.svc.GetPoll(ctx, 9)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPollServiceResults(t *testing.T) {
	ctx := context.Background()

	t.Run("conflict while open", func(t *testing.T) {
		f := newPollFixture()
		f.polls.On("GetByID", ctx, int64(1)).Return(&domain.Poll{ID: 1}, nil)
		f.votes.On("CountForPoll", ctx, int64(1)).Return(int64(0), nil)
		f.nominations.On("Tallies", ctx, int64(1)).Return(sampleTallies(), nil)

		_, err := f.svc.Results(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("ranked once closed", func(t *testing.T) {
		f := newPollFixture()
		f.polls.On("GetByID", ctx, int64(1)).Return(&domain.Poll{ID: 1, ClosedManually: true}, nil)
		f.votes.On("CountForPoll", ctx, int64(1)).Return(int64(3), nil)
		f.nominations.On("Tallies", ctx, int64(1)).Return(sampleTallies(), nil)

		view, err := f.svc.Results(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.ClosedManually, view.ClosedReason)
		require.Len(t, view.Nominations, 3)
		assert.Equal(t, "A", view.Nominations[0].Name)
		assert.Equal(t, "B", view.Nominations[1].Name)
		assert.Equal(t, domain.NominationStats{}, *view.Nominations[2].Stats)
	})
}

func TestPollServiceClose(t *testing.T) {
	ctx := context.Background()
	f := newPollFixture()
	f.polls.On("Close", ctx, int64(1)).Return(nil)
	f.polls.On("GetByID", ctx, int64(1)).Return(&domain.Poll{ID: 1, ClosedManually: true}, nil)
	f.votes.On("CountForPoll", ctx, int64(1)).Return(int64(0), nil)
	f.nominations.On("Tallies", ctx, int64(1)).Return([]domain.Tally{}, nil)

	view, err := f.svc.Close(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusClosed, view.Status)
	f.polls.AssertExpectations(t)
}

func TestPollServiceGetNomination(t *testing.T) {
	ctx := context.Background()
	f := newPollFixture()
	f.nominations.On("GetByID", ctx, int64(4)).Return(&domain.Nomination{ID: 4, PollID: 1, Name: "N"}, nil)
	f.nominations.On("CountVotes", ctx, int64(4)).Return(int64(12), nil)

	n, err := f.svc.GetNomination(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(12), n.VoteCount)

	f.nominations.On("GetByID", ctx, int64(5)).Return(nil, domain.ErrNominationNotFound)
	_, err = f.svc.GetNomination(ctx, 5)
	assert.ErrorIs(t, err, domain.ErrNominationNotFound)
}
