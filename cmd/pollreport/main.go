package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	"github.com/vncsmyrnk/nominate/internal/adapters/repository"
	"github.com/vncsmyrnk/nominate/internal/config"
	"github.com/vncsmyrnk/nominate/internal/core/domain"
	"github.com/vncsmyrnk/nominate/internal/core/services"
	"github.com/vncsmyrnk/nominate/internal/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found")
	}

	cfg, err := config.Load("pollreport", os.Args[1:])
	if err != nil {
		fatal("invalid configuration", "error", err)
	}
	slog.SetDefault(logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat))

	// Use a timeout so the report never hangs on a slow database
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		fatal("poll report failed", "driver", cfg.Driver, "error", err)
	}
}

func run(ctx context.Context, cfg config.Config, out io.Writer) error {
	store, err := repository.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer store.Close()

	reportService := services.NewReportService(store.Polls, store.Nominations, store.Votes)

	views, err := reportService.Report(ctx)
	if err != nil {
		return fmt.Errorf("error building poll report: %w", err)
	}
	slog.Debug("poll report built", "polls", len(views))

	return printReport(out, views, time.Now())
}

func fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}

func printReport(out io.Writer, views []*domain.PollView, now time.Time) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	for _, view := range views {
		fmt.Fprintf(w, "#%d %s\t%s\t%s votes\tcreated %s\n",
			view.ID,
			view.Title,
			statusLabel(view),
			humanize.Comma(view.TotalVotes),
			humanize.RelTime(view.CreatedAt, now, "ago", "from now"),
		)
		for i, n := range view.Nominations {
			var votes, average string
			if n.Stats != nil {
				votes = humanize.Comma(n.Stats.VoteCount)
				average = fmt.Sprintf("%.2f", n.Stats.Average)
			}
			fmt.Fprintf(w, "  %s\t%s (%s)\t%s\t%s\n", humanize.Ordinal(i+1), n.Name, n.Manager, votes, average)
		}
		fmt.Fprintln(w)
	}

	return w.Flush()
}

func statusLabel(view *domain.PollView) string {
	if view.Status == domain.StatusClosed {
		return fmt.Sprintf("%s (%s)", view.Status, view.ClosedReason)
	}
	if view.ExpiresAt != nil {
		return fmt.Sprintf("%s, closes %s", view.Status, humanize.Time(*view.ExpiresAt))
	}
	return string(view.Status)
}
