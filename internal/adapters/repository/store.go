// Package repository opens the configured database driver and hands out the
// matching repositories.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vncsmyrnk/nominate/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/nominate/internal/adapters/repository/sqlite"
	"github.com/vncsmyrnk/nominate/internal/config"
	"github.com/vncsmyrnk/nominate/internal/core/ports"
)

type Store struct {
	DB          *sql.DB
	Polls       ports.PollRepository
	Nominations ports.NominationRepository
	Votes       ports.VoteRepository
}

func Open(ctx context.Context, cfg config.Config) (*Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.Postgres.ConnString())
		if err != nil {
			return nil, err
		}
		return &Store{
			DB:          db,
			Polls:       postgres.NewPollRepository(db),
			Nominations: postgres.NewNominationRepository(db),
			Votes:       postgres.NewVoteRepository(db),
		}, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Store{
			DB:          db,
			Polls:       sqlite.NewPollRepository(db),
			Nominations: sqlite.NewNominationRepository(db),
			Votes:       sqlite.NewVoteRepository(db),
		}, nil
	}
	return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
}

func (s *Store) Close() error {
	return s.DB.Close()
}
