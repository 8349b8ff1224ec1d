package domain

import (
	"cmp"
	"math"
	"slices"
	"strings"
)

// RankByScore builds the stats projection. Order: average desc, total score
// desc, name asc (byte order), id asc. Sorting uses the unrounded average; only the
// returned Average is rounded to two decimals.
func RankByScore(tallies []Tally) []NominationResult {
	type ranked struct {
		tally   Tally
		average float64
	}

	rows := make([]ranked, 0, len(tallies))
	for _, t := range tallies {
		rows = append(rows, ranked{tally: t, average: average(t.TotalScore, t.VoteCount)})
	}

	slices.SortFunc(rows, func(a, b ranked) int {
		if c := cmp.Compare(b.average, a.average); c != 0 {
			return c
		}
		if c := cmp.Compare(b.tally.TotalScore, a.tally.TotalScore); c != 0 {
			return c
		}
		if c := strings.Compare(a.tally.Nomination.Name, b.tally.Nomination.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.tally.Nomination.ID, b.tally.Nomination.ID)
	})

	results := make([]NominationResult, 0, len(rows))
	for _, r := range rows {
		n := r.tally.Nomination
		n.VoteCount = r.tally.VoteCount
		results = append(results, NominationResult{
			Nomination: n,
			Stats: &NominationStats{
				TotalScore: r.tally.TotalScore,
				VoteCount:  r.tally.VoteCount,
				Average:    roundTo2(r.average),
			},
		})
	}
	return results
}

// RankByVotes builds the plain projection used while a poll is open: vote
// count desc, then name asc, with no score information.
func RankByVotes(tallies []Tally) []NominationResult {
	results := make([]NominationResult, 0, len(tallies))
	for _, t := range tallies {
		n := t.Nomination
		n.VoteCount = t.VoteCount
		results = append(results, NominationResult{Nomination: n})
	}

	slices.SortFunc(results, func(a, b NominationResult) int {
		if c := cmp.Compare(b.VoteCount, a.VoteCount); c != 0 {
			return c
		}
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return results
}

func average(total, count int64) float64 {
	if count <= 0 {
		return 0
	}
	return float64(total) / float64(count)
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
