package knowledge

import (
	"fmt"
	"sort"
	"strings"

	"portfolio-assistant/internal/model"
)

const (
	// MaxListedRepositories caps the repositories listed in the live narrative.
	MaxListedRepositories = 8

	statsDateLayout = "January 2, 2006"
	joinDateLayout  = "January 2006"
)

func formatStats(p model.Profile) string {
	var sb strings.Builder
	sb.WriteString("\n\nLive GitHub stats:")
	fmt.Fprintf(&sb, "\n- Public repositories: %d", p.RepoCount)
	fmt.Fprintf(&sb, "\n- Followers: %d", p.Followers)
	if !p.UpdatedAt.IsZero() {
		fmt.Fprintf(&sb, "\n- Last updated: %s", p.UpdatedAt.Format(statsDateLayout))
	}
	return sb.String()
}

func formatNarrative(snap model.ProfileSnapshot) string {
	p := snap.Profile

	var sb strings.Builder
	fmt.Fprintf(&sb, "Here's a live look at %s's GitHub", p.DisplayName())
	if p.Login != "" {
		fmt.Fprintf(&sb, " (@%s)", p.Login)
	}
	sb.WriteString(".")

	if p.Bio != "" {
		fmt.Fprintf(&sb, "\n\n%s", p.Bio)
	}
	if p.Location != "" {
		fmt.Fprintf(&sb, "\nLocation: %s", p.Location)
	}
	fmt.Fprintf(&sb, "\n\n%d public repositories, %d followers, %d following.",
		p.RepoCount, p.Followers, p.Following)
	if !p.JoinDate.IsZero() {
		fmt.Fprintf(&sb, "\nOn GitHub since %s.", p.JoinDate.Format(joinDateLayout))
	}

	repos := recentRepositories(snap.Repositories, MaxListedRepositories)
	if len(repos) > 0 {
		sb.WriteString("\n\nRecently updated repositories:")
		for i, r := range repos {
			fmt.Fprintf(&sb, "\n%d. %s", i+1, r.Name)

			var meta []string
			if r.Language != "" {
				meta = append(meta, r.Language)
			}
			meta = append(meta, fmt.Sprintf("★ %d", r.Stars))
			fmt.Fprintf(&sb, " (%s)", strings.Join(meta, ", "))

			if r.Description != "" {
				fmt.Fprintf(&sb, ": %s", r.Description)
			}
			if r.Homepage != "" {
				fmt.Fprintf(&sb, "\n   Live demo: %s", r.Homepage)
			}
			if r.URL != "" {
				fmt.Fprintf(&sb, "\n   %s", r.URL)
			}
		}
	}

	if p.URL != "" {
		fmt.Fprintf(&sb, "\n\nFull profile: %s", p.URL)
	}

	return sb.String()
}

// recentRepositories returns at most limit repositories, newest update first.
func recentRepositories(repos []model.Repository, limit int) []model.Repository {
	sorted := make([]model.Repository, len(repos))
	copy(sorted, repos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
