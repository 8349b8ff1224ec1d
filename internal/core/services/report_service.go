package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vncsmyrnk/nominate/internal/core/domain"
	"github.com/vncsmyrnk/nominate/internal/core/ports"
)

const reportConcurrency = 8

type reportService struct {
	pollRepo       ports.PollRepository
	nominationRepo ports.NominationRepository
	voteRepo       ports.VoteRepository
	now            func() time.Time
}

func NewReportService(pollRepo ports.PollRepository, nominationRepo ports.NominationRepository, voteRepo ports.VoteRepository) ports.ReportService {
	return &reportService{
		pollRepo:       pollRepo,
		nominationRepo: nominationRepo,
		voteRepo:       voteRepo,
		now:            time.Now,
	}
}

func (s *reportService) Report(ctx context.Context) ([]*domain.PollView, error) {
	polls, err := s.pollRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch all polls: %w", err)
	}

	now := s.now()
	views := make([]*domain.PollView, len(polls))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(reportConcurrency)
	for i, poll := range polls {
		g.Go(func() error {
			view, err := buildView(ctx, s.nominationRepo, s.voteRepo, poll, now, true)
			if err != nil {
				return fmt.Errorf("failed to report poll %d: %w", poll.ID, err)
			}
			views[i] = view
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return views, nil
}
