package model

import "time"

// Profile is a read-only snapshot of the site owner's code-hosting profile.
type Profile struct {
	Name      string
	Login     string
	Bio       string
	Location  string
	RepoCount int
	Followers int
	Following int
	JoinDate  time.Time
	UpdatedAt time.Time
	URL       string
}

// Repository is one public repository of the profile owner.
type Repository struct {
	Name        string
	Description string
	Language    string
	Stars       int
	URL         string
	Homepage    string // live demo, optional
	UpdatedAt   time.Time
}

// ProfileSnapshot bundles the profile with its most recently updated repositories.
type ProfileSnapshot struct {
	Profile      Profile
	Repositories []Repository
}

// DisplayName prefers the full name and falls back to the login.
func (p Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Login
}
