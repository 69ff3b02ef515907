package github

import (
	"net/http"
	"time"
)

const (
	DefaultCacheTTL  = 30 * time.Minute
	DefaultCacheSize = 64
	DefaultRepoLimit = 8
	maxRepoLimit     = 100
)

// Config configures the GitHub client.
type Config struct {
	Token      string // optional, raises the API rate limit
	BaseURL    string // optional, for tests and GitHub Enterprise
	CacheTTL   time.Duration
	CacheSize  int
	HTTPClient *http.Client
}

// User is the subset of a GitHub user profile the service needs.
type User struct {
	Login       string
	Name        string
	Bio         string
	Location    string
	PublicRepos int
	Followers   int
	Following   int
	HTMLURL     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Repository is the subset of a GitHub repository the service needs.
type Repository struct {
	Name        string
	Description string
	Language    string
	Stars       int
	HTMLURL     string
	Homepage    string
	UpdatedAt   time.Time
}
