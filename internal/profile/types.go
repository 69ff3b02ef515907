package profile

import "time"

// Config fixes whose profile is shown and how the upstream calls are bounded.
type Config struct {
	Username       string
	RepoLimit      int
	RequestTimeout time.Duration
}
