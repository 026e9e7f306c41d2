// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// PullRequest is a provider pull-request record reduced to the fields the
// summary pipeline reads. Provider fields that may be absent are pointers;
// nil means the field (or any level of its nesting) was missing.
type PullRequest struct {
	ID          int64
	Number      int
	Title       string
	AuthorLogin *string
	CreatedAt   *time.Time
	MergedAt    *time.Time
	ClosedAt    *time.Time
	BaseRef     *string
	HeadSHA     *string
}

// UnknownUser is the grouping key for pull requests whose author login is absent.
const UnknownUser = "unknown_user"

// Author returns the author login, or UnknownUser when it is absent.
func (pr *PullRequest) Author() string {
	if pr.AuthorLogin == nil || *pr.AuthorLogin == "" {
		return UnknownUser
	}
	return *pr.AuthorLogin
}
