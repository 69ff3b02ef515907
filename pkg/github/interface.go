package github

import "context"

// IGitHub reads public profile data. Implementations cache responses and are
// safe for concurrent use.
type IGitHub interface {
	// GetUser fetches the profile of username.
	GetUser(ctx context.Context, username string) (User, error)

	// ListRecentRepos lists up to limit repositories owned by username,
	// most recently updated first.
	ListRecentRepos(ctx context.Context, username string, limit int) ([]Repository, error)
}
