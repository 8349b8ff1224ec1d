package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/nominate/internal/core/domain"
	"github.com/vncsmyrnk/nominate/internal/core/ports"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

// Cast serializes votes per poll with a row lock, so the guard sees a vote
// total no concurrent insert can change before commit.
func (r *voteRepository) Cast(ctx context.Context, vote *domain.Vote, guard ports.VoteGuard) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	poll, err := scanPoll(tx.QueryRowContext(ctx, `SELECT `+pollColumns+` FROM polls WHERE id = $1 FOR UPDATE`, vote.PollID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrPollNotFound
		}
		return fmt.Errorf("failed to lock poll: %w", err)
	}

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM nominations WHERE id = $1 AND poll_id = $2`, vote.NominationID, vote.PollID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNominationNotFound
		}
		return fmt.Errorf("failed to check nomination: %w", err)
	}

	var total int64
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM votes WHERE poll_id = $1`, vote.PollID).Scan(&total); err != nil {
		return fmt.Errorf("failed to count votes: %w", err)
	}

	if err := guard(poll, total); err != nil {
		return err
	}

	query := `
		INSERT INTO votes (poll_id, nomination_id, score, voter_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err = tx.QueryRowContext(ctx, query, vote.PollID, vote.NominationID, vote.Score, nullString(vote.VoterID)).
		Scan(&vote.ID, &vote.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save vote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *voteRepository) CountForPoll(ctx context.Context, pollID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM votes WHERE poll_id = $1`, pollID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count poll votes: %w", err)
	}
	return count, nil
}

// DeleteByVoter takes the same poll lock as Cast, so a withdrawal cannot
// slip in after a concurrent close or the vote that fills the cap.
func (r *voteRepository) DeleteByVoter(ctx context.Context, pollID, nominationID int64, voterID string, guard ports.VoteGuard) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	poll, err := scanPoll(tx.QueryRowContext(ctx, `SELECT `+pollColumns+` FROM polls WHERE id = $1 FOR UPDATE`, pollID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrPollNotFound
		}
		return 0, fmt.Errorf("failed to lock poll: %w", err)
	}

	var total int64
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM votes WHERE poll_id = $1`, pollID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}

	if err := guard(poll, total); err != nil {
		return 0, err
	}

	query := `DELETE FROM votes WHERE poll_id = $1 AND nomination_id = $2 AND voter_id = $3`
	res, err := tx.ExecContext(ctx, query, pollID, nominationID, voterID)
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

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
