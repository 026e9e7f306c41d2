package domain

import (
	"fmt"
	"time"
)

// DateParseError reports a user-supplied date string that matched none of
// the accepted layouts and failed the ISO-8601 fallback.
type DateParseError struct {
	Input string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("could not parse date %q: use formats like 2025-09-01 or Sep 1 2025", e.Input)
}

// InvalidRangeError reports a date range whose end precedes its start.
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("end date %s is before start date %s",
		e.End.Format("2006-01-02"), e.Start.Format("2006-01-02"))
}

// CredentialMissingError reports that no API token could be resolved from
// any configured source. Raised before any network activity.
type CredentialMissingError struct {
	EnvVar string
}

func (e *CredentialMissingError) Error() string {
	return fmt.Sprintf("no GitHub token found: set the %s environment variable "+
		"(a fine-grained token with read access to the target repository)", e.EnvVar)
}

// RepositoryAccessError reports a non-200 response to the repository
// metadata probe. The status and body are surfaced verbatim: the usual
// causes are a missing token scope, a repository-name typo, or a secret
// that is unavailable to forks.
type RepositoryAccessError struct {
	Owner      string
	Repo       string
	StatusCode int
	Body       string
}

func (e *RepositoryAccessError) Error() string {
	return fmt.Sprintf("cannot access repository %s/%s (HTTP %d): %s",
		e.Owner, e.Repo, e.StatusCode, e.Body)
}

// PageFetchError reports a failed pull-request list page, after the
// transport's own retries were exhausted.
type PageFetchError struct {
	Page int
	Err  error
}

func (e *PageFetchError) Error() string {
	return fmt.Sprintf("failed to fetch pull request page %d: %v", e.Page, e.Err)
}

func (e *PageFetchError) Unwrap() error { return e.Err }
