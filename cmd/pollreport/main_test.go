package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/nominate/internal/adapters/repository"
	"github.com/vncsmyrnk/nominate/internal/config"
	"github.com/vncsmyrnk/nominate/internal/core/domain"
)

func TestPrintReport(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	views := []*domain.PollView{
		{
			Poll:         &domain.Poll{ID: 1, Title: "Best mascot", CreatedAt: now.Add(-72 * time.Hour)},
			Status:       domain.StatusClosed,
			ClosedReason: domain.ClosedVoteLimit,
			TotalVotes:   1200,
			Nominations: []domain.NominationResult{
				{Nomination: domain.Nomination{Name: "Otter", Manager: "ana"}, Stats: &domain.NominationStats{VoteCount: 700, TotalScore: 6300, Average: 9}},
				{Nomination: domain.Nomination{Name: "Heron", Manager: "bo"}, Stats: &domain.NominationStats{VoteCount: 500, TotalScore: 2500, Average: 5}},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, printReport(&buf, views, now))

	out := buf.String()
	assert.Contains(t, out, "#1 Best mascot")
	assert.Contains(t, out, "CLOSED (max votes reached)")
	assert.Contains(t, out, "1,200 votes")
	assert.Contains(t, out, "created 3 days ago")
	assert.Contains(t, out, "1st")
	assert.Contains(t, out, "Otter (ana)")
	assert.Contains(t, out, "9.00")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Otter")), bytes.Index(buf.Bytes(), []byte("Heron")))
}

func TestStatusLabel(t *testing.T) {
	open := &domain.PollView{Poll: &domain.Poll{}, Status: domain.StatusOpen}
	assert.Equal(t, "OPEN", statusLabel(open))

	closed := &domain.PollView{Poll: &domain.Poll{}, Status: domain.StatusClosed, ClosedReason: domain.ClosedManually}
	assert.Equal(t, "CLOSED (closed by owner)", statusLabel(closed))
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	cfg := config.Config{Driver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "report.db")}

	store, err := repository.Open(ctx, cfg)
	require.NoError(t, err)
	poll := &domain.Poll{Title: "Quarterly award", Nominations: []domain.Nomination{{Name: "Dana", Manager: "eli"}}}
	require.NoError(t, store.Polls.Save(ctx, poll))
	require.NoError(t, store.Votes.Cast(ctx, &domain.Vote{PollID: poll.ID, NominationID: poll.Nominations[0].ID, Score: 7},
		func(*domain.Poll, int64) error { return nil }))
	require.NoError(t, store.Close())

	var buf bytes.Buffer
	require.NoError(t, run(ctx, cfg, &buf))

	out := buf.String()
	assert.Contains(t, out, "Quarterly award")
	assert.Contains(t, out, "OPEN")
	assert.Contains(t, out, "Dana (eli)")
	assert.Contains(t, out, "7.00")
}

func TestRunReportsConnectionErrors(t *testing.T) {
	cfg := config.Config{Driver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "missing", "report.db")}

	err := run(context.Background(), cfg, &bytes.Buffer{})
	assert.ErrorContains(t, err, "database connection failed")
}
