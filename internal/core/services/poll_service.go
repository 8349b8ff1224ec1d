package services

import (
	"context"
	"strings"
	"time"

	"github.com/vncsmyrnk/nominate/internal/core/domain"
	"github.com/vncsmyrnk/nominate/internal/core/ports"
)

type pollService struct {
	pollRepo       ports.PollRepository
	nominationRepo ports.NominationRepository
	voteRepo       ports.VoteRepository
	now            func() time.Time
}

func NewPollService(pollRepo ports.PollRepository, nominationRepo ports.NominationRepository, voteRepo ports.VoteRepository) ports.PollService {
	return &pollService{
		pollRepo:       pollRepo,
		nominationRepo: nominationRepo,
		voteRepo:       voteRepo,
		now:            time.Now,
	}
}

func (s *pollService) Create(ctx context.Context, input ports.CreatePollInput) (*domain.PollView, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrTitleRequired
	}

	poll := &domain.Poll{
		Title:     title,
		ExpiresAt: input.ExpiresAt,
	}
	if input.MaxVotes != nil && *input.MaxVotes > 0 {
		maxVotes := *input.MaxVotes
		poll.MaxVotes = &maxVotes
	}

	for _, nom := range input.Nominations {
		name := strings.TrimSpace(nom.Name)
		manager := strings.TrimSpace(nom.Manager)
		if name == "" || manager == "" {
			continue
		}
		poll.Nominations = append(poll.Nominations, domain.Nomination{
			Name:    name,
			Manager: manager,
		})
	}
	if len(poll.Nominations) == 0 {
		return nil, domain.ErrNominationsRequired
	}

	if err := s.pollRepo.Save(ctx, poll); err != nil {
		return nil, err
	}

	return s.view(ctx, poll, false)
}

func (s *pollService) GetPoll(ctx context.Context, id int64) (*domain.PollView, error) {
	poll, err := s.pollRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, poll, false)
}

func (s *pollService) ListPolls(ctx context.Context) ([]*domain.Poll, error) {
	return s.pollRepo.List(ctx)
}

func (s *pollService) Results(ctx context.Context, id int64) (*domain.PollView, error) {
	view, err := s.GetPoll(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.Status != domain.StatusClosed {
		return nil, domain.ErrResultsSealed
	}
	return view, nil
}

func (s *pollService) Close(ctx context.Context, id int64) (*domain.PollView, error) {
	if err := s.pollRepo.Close(ctx, id); err != nil {
		return nil, err
	}
	return s.GetPoll(ctx, id)
}

func (s *pollService) Delete(ctx context.Context, id int64) error {
	return s.pollRepo.Delete(ctx, id)
}

func (s *pollService) GetNomination(ctx context.Context, id int64) (*domain.Nomination, error) {
	nomination, err := s.nominationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.nominationRepo.CountVotes(ctx, id)
	if err != nil {
		return nil, err
	}
	nomination.VoteCount = count

	return nomination, nil
}

func (s *pollService) view(ctx context.Context, poll *domain.Poll, revealScores bool) (*domain.PollView, error) {
	return buildView(ctx, s.nominationRepo, s.voteRepo, poll, s.now(), revealScores)
}

// buildView resolves the poll status from a fresh vote count and picks the
// nomination projection: ranked stats once closed (or when revealScores is
// set), plain vote-count ordering while open.
func buildView(ctx context.Context, nominationRepo ports.NominationRepository, voteRepo ports.VoteRepository, poll *domain.Poll, now time.Time, revealScores bool) (*domain.PollView, error) {
	total, err := voteRepo.CountForPoll(ctx, poll.ID)
	if err != nil {
		return nil, err
	}

	tallies, err := nominationRepo.Tallies(ctx, poll.ID)
	if err != nil {
		return nil, err
	}

	view := &domain.PollView{
		Poll:         poll,
		Status:       domain.ResolveStatus(poll, total, now),
		ClosedReason: poll.ClosureReason(total, now),
		TotalVotes:   total,
	}
	if view.Status == domain.StatusClosed || revealScores {
		view.Nominations = domain.RankByScore(tallies)
	} else {
		view.Nominations = domain.RankByVotes(tallies)
	}

	return view, nil
}
