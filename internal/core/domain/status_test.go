package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestResolveStatus(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		poll       Poll
		totalVotes int64
		want       Status
		reason     ClosureReason
	}{
		{
			name: "no cap, no expiry, no votes",
			poll: Poll{},
			want: StatusOpen,
		},
		{
			name:       "closed manually overrides everything",
			poll:       Poll{ClosedManually: true, MaxVotes: ptr(int64(100)), ExpiresAt: ptr(now.Add(time.Hour))},
			totalVotes: 1,
			want:       StatusClosed,
			reason:     ClosedManually,
		},
		{
			name:   "expired",
			poll:   Poll{ExpiresAt: ptr(now.Add(-time.Second))},
			want:   StatusClosed,
			reason: ClosedExpired,
		},
		{
			name: "expiry equal to now is still open",
			poll: Poll{ExpiresAt: ptr(now)},
			want: StatusOpen,
		},
		{
			name: "expiry in the future",
			poll: Poll{ExpiresAt: ptr(now.Add(time.Minute))},
			want: StatusOpen,
		},
		{
			name:       "cap reached",
			poll:       Poll{MaxVotes: ptr(int64(2))},
			totalVotes: 2,
			want:       StatusClosed,
			reason:     ClosedVoteLimit,
		},
		{
			name:       "cap overshot",
			poll:       Poll{MaxVotes: ptr(int64(2))},
			totalVotes: 3,
			want:       StatusClosed,
			reason:     ClosedVoteLimit,
		},
		{
			name:       "below cap",
			poll:       Poll{MaxVotes: ptr(int64(2))},
			totalVotes: 1,
			want:       StatusOpen,
		},
		{
			name:       "zero cap means no cap",
			poll:       Poll{MaxVotes: ptr(int64(0))},
			totalVotes: 0,
			want:       StatusOpen,
		},
		{
			name:       "zero cap with votes",
			poll:       Poll{MaxVotes: ptr(int64(0))},
			totalVotes: 50,
			want:       StatusOpen,
		},
		{
			name:       "negative cap means no cap",
			poll:       Poll{MaxVotes: ptr(int64(-3))},
			totalVotes: 5,
			want:       StatusOpen,
		},
		{
			name:       "expired and full reports expiry",
			poll:       Poll{ExpiresAt: ptr(now.Add(-time.Hour)), MaxVotes: ptr(int64(1))},
			totalVotes: 1,
			want:       StatusClosed,
			reason:     ClosedExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveStatus(&tt.poll, tt.totalVotes, now))
			assert.Equal(t, tt.reason, tt.poll.ClosureReason(tt.totalVotes, now))
		})
	}
}

func TestResolveStatusDoesNotMutatePoll(t *testing.T) {
	now := time.Now()
	poll := &Poll{ExpiresAt: ptr(now.Add(-time.Hour)), MaxVotes: ptr(int64(1))}

	assert.Equal(t, StatusClosed, ResolveStatus(poll, 5, now))
	assert.False(t, poll.ClosedManually)
}

func TestResolveStatusIsIdempotent(t *testing.T) {
	now := time.Now()
	poll := &Poll{MaxVotes: ptr(int64(2))}

	first := ResolveStatus(poll, 2, now)
	for range 5 {
		assert.Equal(t, first, ResolveStatus(poll, 2, now))
	}
}
