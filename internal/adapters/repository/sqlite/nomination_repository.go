package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/nominate/internal/core/domain"
	"github.com/vncsmyrnk/nominate/internal/core/ports"
)

type nominationRepository struct {
	db *sql.DB
}

func NewNominationRepository(db *sql.DB) ports.NominationRepository {
	return &nominationRepository{db: db}
}

func (r *nominationRepository) GetByID(ctx context.Context, id int64) (*domain.Nomination, error) {
	var n domain.Nomination
	err := r.db.QueryRowContext(ctx,
		`SELECT id, poll_id, name, manager, created_at FROM nominations WHERE id = ?`, id,
	).Scan(&n.ID, &n.PollID, &n.Name, &n.Manager, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNominationNotFound
		}
		return nil, fmt.Errorf("failed to get nomination: %w", err)
	}
	return &n, nil
}

func (r *nominationRepository) Tallies(ctx context.Context, pollID int64) ([]domain.Tally, error) {
	query := `
		SELECT n.id, n.poll_id, n.name, n.manager, n.created_at,
		       COUNT(v.id), COALESCE(SUM(v.score), 0)
		FROM nominations n
		LEFT JOIN votes v ON v.nomination_id = n.id
		WHERE n.poll_id = ?
		GROUP BY n.id
	`
	rows, err := r.db.QueryContext(ctx, query, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch nomination tallies: %w", err)
	}
	defer rows.Close()

	tallies := []domain.Tally{}
	for rows.Next() {
		var t domain.Tally
		n := &t.Nomination
		if err := rows.Scan(&n.ID, &n.PollID, &n.Name, &n.Manager, &n.CreatedAt, &t.VoteCount, &t.TotalScore); err != nil {
			return nil, fmt.Errorf("failed to scan tally: %w", err)
		}
		n.VoteCount = t.VoteCount
		tallies = append(tallies, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tallies: %w", err)
	}

	return tallies, nil
}

func (r *nominationRepository) CountVotes(ctx context.Context, nominationID int64) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM votes WHERE nomination_id = ?`, nominationID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count nomination votes: %w", err)
	}
	return count, nil
}
