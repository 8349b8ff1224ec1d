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

const pollColumns = `id, title, max_votes, expires_at, closed_manually, created_at`

type pollRepository struct {
	db *sql.DB
}

func NewPollRepository(db *sql.DB) ports.PollRepository {
	return &pollRepository{db: db}
}

func (r *pollRepository) Save(ctx context.Context, poll *domain.Poll) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx,
		`INSERT INTO polls (title, max_votes, expires_at, created_at) VALUES (?, ?, ?, ?)`,
		poll.Title, poll.MaxVotes, utcPtr(poll.ExpiresAt), now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert poll: %w", err)
	}
	if poll.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("failed to read poll id: %w", err)
	}
	poll.CreatedAt = now
	poll.ClosedManually = false

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO nominations (poll_id, name, manager, created_at) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare nomination statement: %w", err)
	}
	defer stmt.Close()

	for i := range poll.Nominations {
		nom := &poll.Nominations[i]
		nom.PollID = poll.ID
		nom.CreatedAt = now
		res, err := stmt.ExecContext(ctx, nom.PollID, nom.Name, nom.Manager, nom.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert nomination: %w", err)
		}
		if nom.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("failed to read nomination id: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *pollRepository) GetByID(ctx context.Context, id int64) (*domain.Poll, error) {
	poll, err := scanPoll(r.db.QueryRowContext(ctx, `SELECT `+pollColumns+` FROM polls WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to get poll: %w", err)
	}
	return poll, nil
}

func (r *pollRepository) List(ctx context.Context) ([]*domain.Poll, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+pollColumns+` FROM polls ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list polls: %w", err)
	}
	defer rows.Close()

	polls := []*domain.Poll{}
	for rows.Next() {
		poll, err := scanPoll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		polls = append(polls, poll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating polls: %w", err)
	}

	return polls, nil
}

func (r *pollRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM polls WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete poll: %w", err)
	}
	return requireAffected(res, domain.ErrPollNotFound)
}

func (r *pollRepository) Close(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE polls SET closed_manually = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to close poll: %w", err)
	}
	return requireAffected(res, domain.ErrPollNotFound)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPoll(row rowScanner) (*domain.Poll, error) {
	var (
		poll      domain.Poll
		maxVotes  sql.NullInt64
		expiresAt sql.NullTime
	)
	if err := row.Scan(&poll.ID, &poll.Title, &maxVotes, &expiresAt, &poll.ClosedManually, &poll.CreatedAt); err != nil {
		return nil, err
	}
	if maxVotes.Valid {
		poll.MaxVotes = &maxVotes.Int64
	}
	if expiresAt.Valid {
		poll.ExpiresAt = &expiresAt.Time
	}
	return &poll, nil
}

func requireAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}
