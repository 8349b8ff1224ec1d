package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vncsmyrnk/nominate/internal/core/domain"
	"github.com/vncsmyrnk/nominate/internal/core/ports"
)

type voteService struct {
	voteRepo ports.VoteRepository
	now      func() time.Time
}

func NewVoteService(voteRepo ports.VoteRepository) ports.VoteService {
	return &voteService{
		voteRepo: voteRepo,
		now:      time.Now,
	}
}

func (s *voteService) Vote(ctx context.Context, input ports.VoteInput) (*domain.Vote, error) {
	if input.PollID <= 0 {
		return nil, domain.ErrInvalidPollID
	}
	if input.NominationID <= 0 {
		return nil, domain.ErrInvalidNominationID
	}
	if !domain.ValidScore(input.Score) {
		return nil, domain.ErrInvalidScore
	}

	vote := &domain.Vote{
		PollID:       input.PollID,
		NominationID: input.NominationID,
		Score:        input.Score,
		VoterID:      input.VoterID,
	}

	err := s.voteRepo.Cast(ctx, vote, func(poll *domain.Poll, totalVotes int64) error {
		return s.ensureOpen(poll, totalVotes)
	})
	if err != nil {
		return nil, err
	}

	return vote, nil
}

func (s *voteService) Unvote(ctx context.Context, pollID, nominationID int64, voterID string) error {
	if voterID == "" {
		return domain.ErrVoterRequired
	}

	deleted, err := s.voteRepo.DeleteByVoter(ctx, pollID, nominationID, voterID, s.ensureOpen)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrVoteNotFound
	}

	return nil
}

func (s *voteService) ensureOpen(poll *domain.Poll, totalVotes int64) error {
	if reason := poll.ClosureReason(totalVotes, s.now()); reason != "" {
		return fmt.Errorf("%w (%s)", domain.ErrPollClosed, reason)
	}
	return nil
}
