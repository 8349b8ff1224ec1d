package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vncsmyrnk/nominate/internal/core/domain"
	"github.com/vncsmyrnk/nominate/internal/core/ports"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{db: db}
}

// Cast runs inside a single transaction on the only connection of the pool,
// so the guard and the insert cannot interleave with another vote.
// DeleteByVoter follows the same pattern.
func (r *voteRepository) Cast(ctx context.Context, vote *domain.Vote, guard ports.VoteGuard) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	poll, err := scanPoll(tx.QueryRowContext(ctx, `SELECT `+pollColumns+` FROM polls WHERE id = ?`, vote.PollID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrPollNotFound
		}
		return fmt.Errorf("failed to read poll: %w", err)
	}

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM nominations WHERE id = ? AND poll_id = ?`, vote.NominationID, vote.PollID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNominationNotFound
		}
		return fmt.Errorf("failed to check nomination: %w", err)
	}

	var total int64
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM votes WHERE poll_id = ?`, vote.PollID).Scan(&total); err != nil {
		return fmt.Errorf("failed to count votes: %w", err)
	}

	if err := guard(poll, total); err != nil {
		return err
	}

	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx,
		`INSERT INTO votes (poll_id, nomination_id, score, voter_id, created_at) VALUES (?, ?, ?, ?, ?)`,
		vote.PollID, vote.NominationID, vote.Score, sql.NullString{String: vote.VoterID, Valid: vote.VoterID != ""}, now,
	)
	if err != nil {
		return fmt.Errorf("failed to save vote: %w", err)
	}
	if vote.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("failed to read vote id: %w", err)
	}
	vote.CreatedAt = now

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *voteRepository) CountForPoll(ctx context.Context, pollID int64) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM votes WHERE poll_id = ?`, pollID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count poll votes: %w", err)
	}
	return count, nil
}

func (r *voteRepository) DeleteByVoter(ctx context.Context, pollID, nominationID int64, voterID string, guard ports.VoteGuard) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	poll, err := scanPoll(tx.QueryRowContext(ctx, `SELECT `+pollColumns+` FROM polls WHERE id = ?`, pollID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrPollNotFound
		}
		return 0, fmt.Errorf("failed to read poll: %w", err)
	}

	var total int64
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM votes WHERE poll_id = ?`, pollID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}

	if err := guard(poll, total); err != nil {
		return 0, err
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM votes WHERE poll_id = ? AND nomination_id = ? AND voter_id = ?`,
		pollID, nominationID, voterID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete vote: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return n, nil
}
