// Package usecase contains the business logic of the application.
package usecase

import (
	"log"

	"github.com/montanaflynn/stats"

	"github.com/M-MorreddygariTharun/Github-Data-Extraction/internal/domain"
)

// Summarizer is the use case that turns a fetched pull request list into
// per-author report rows for a date range.
type Summarizer struct {
	logger *log.Logger
}

// NewSummarizer creates a new Summarizer instance.
func NewSummarizer(logger *log.Logger) *Summarizer {
	return &Summarizer{logger: logger}
}

// selected reports whether the pull request touches the range: any of its
// created, merged or closed instants falls inside it, endpoints included.
func selected(pr *domain.PullRequest, r domain.DateRange) bool {
	if pr.CreatedAt != nil && r.Contains(*pr.CreatedAt) {
		return true
	}
	if pr.MergedAt != nil && r.Contains(*pr.MergedAt) {
		return true
	}
	if pr.ClosedAt != nil && r.Contains(*pr.ClosedAt) {
		return true
	}
	return false
}

// Summarize selects the pull requests touching the range and folds them into
// one DeveloperSummary per author, in first-seen author order.
//
// Classification of a selected pull request:
//   - merged instant in range: Merged. The merged branch takes precedence
//     even when the closed instant is in range too.
//   - else closed instant in range: Declined.
//   - else: Open. A pull request selected only by its creation instant,
//     whose merge or close fell outside the range, lands here.
func (s *Summarizer) Summarize(allPRs []domain.PullRequest, dateRange domain.DateRange, owner, repoName string) []domain.DeveloperSummary {
	s.logger.Printf("Usecase: Summarizing %d pull requests...", len(allPRs))
	repo := owner + "/" + repoName

	var order []string
	byAuthor := make(map[string]*domain.DeveloperSummary)

	selectedCount := 0
	for i := range allPRs {
		pr := &allPRs[i]
		if !selected(pr, dateRange) {
			continue
		}
		selectedCount++

		login := pr.Author()
		row, ok := byAuthor[login]
		if !ok {
			row = &domain.DeveloperSummary{Login: login, Repo: repo}
			byAuthor[login] = row
			order = append(order, login)
		}

		mergedInRange := pr.MergedAt != nil && dateRange.Contains(*pr.MergedAt)
		closedInRange := pr.ClosedAt != nil && dateRange.Contains(*pr.ClosedAt)

		switch {
		case mergedInRange:
			row.Merged++
			// Strict > comparison: first seen wins on exact ties.
			if row.LatestMerged == nil || pr.MergedAt.After(*row.LatestMerged) {
				row.LatestMerged = pr.MergedAt
				row.LastMergeBranch = pr.BaseRef
				row.LatestCommitSHA = pr.HeadSHA
			}
		case closedInRange:
			row.Declined++
		default:
			row.Open++
		}

		// Strict < comparison; pull requests without a creation instant do
		// not participate.
		if pr.CreatedAt != nil && (row.EarliestCreated == nil || pr.CreatedAt.Before(*row.EarliestCreated)) {
			row.EarliestCreated = pr.CreatedAt
		}
	}

	rows := make([]domain.DeveloperSummary, 0, len(order))
	for _, login := range order {
		row := byAuthor[login]
		row.Total = row.Open + row.Merged + row.Declined
		rows = append(rows, *row)
	}
	s.logger.Printf("Usecase: %d pull requests selected, %d authors.", selectedCount, len(rows))
	return rows
}

// MergeLeadTimeStats summarizes how long merged-in-range pull requests took
// from creation to merge. Diagnostics only; never part of the report.
type MergeLeadTimeStats struct {
	Count       int
	MedianHours float64
	MeanHours   float64
}

// MergeLeadTimes computes lead-time diagnostics over the pull requests whose
// merge instant falls in the range and whose creation instant is present.
// The second return value is false when no pull request qualifies.
func (s *Summarizer) MergeLeadTimes(allPRs []domain.PullRequest, dateRange domain.DateRange) (MergeLeadTimeStats, bool) {
	var hours []float64
	for i := range allPRs {
		pr := &allPRs[i]
		if pr.MergedAt == nil || !dateRange.Contains(*pr.MergedAt) || pr.CreatedAt == nil {
			continue
		}
		hours = append(hours, pr.MergedAt.Sub(*pr.CreatedAt).Hours())
	}
	if len(hours) == 0 {
		return MergeLeadTimeStats{}, false
	}
	median, err := stats.Median(hours)
	if err != nil {
		return MergeLeadTimeStats{}, false
	}
	mean, err := stats.Mean(hours)
	if err != nil {
		return MergeLeadTimeStats{}, false
	}
	return MergeLeadTimeStats{Count: len(hours), MedianHours: median, MeanHours: mean}, true
}
