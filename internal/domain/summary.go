package domain

import "time"

// DeveloperSummary is one aggregated report row: the pull-request activity of
// a single author inside the selected date range. It is built once per run
// and never mutated afterwards.
type DeveloperSummary struct {
	Login    string
	Repo     string // "owner/name"
	Open     int
	Merged   int
	Declined int
	Total    int

	// EarliestCreated is the earliest creation instant among the author's
	// selected pull requests; nil when none carried a creation instant.
	EarliestCreated *time.Time

	// The latest-merge triple: instant, base branch and head commit of the
	// author's most recently merged in-range pull request. All nil when the
	// author had no in-range merge.
	LatestMerged    *time.Time
	LastMergeBranch *string
	LatestCommitSHA *string
}
