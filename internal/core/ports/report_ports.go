package ports

import (
	"context"

	"github.com/vncsmyrnk/nominate/internal/core/domain"
)

type ReportService interface {
	// Report returns every poll with its resolved status and full ranking,
	// newest poll first.
	Report(ctx context.Context) ([]*domain.PollView, error)
}
