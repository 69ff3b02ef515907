package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"portfolio-assistant/internal/model"
	"portfolio-assistant/internal/profile"
	"portfolio-assistant/pkg/github"
)

// Snapshot fetches the user and the repository list concurrently and waits
// for both. Each call is bounded by the configured request timeout.
func (uc *implUseCase) Snapshot(ctx context.Context) (model.ProfileSnapshot, error) {
	if uc.username == "" || uc.gh == nil {
		return model.ProfileSnapshot{}, profile.ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	var (
		user  github.User
		repos []github.Repository
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = uc.gh.GetUser(gctx, uc.username)
		return err
	})
	g.Go(func() error {
		var err error
		repos, err = uc.gh.ListRecentRepos(gctx, uc.username, uc.repoLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		uc.l.Warnf(ctx, "internal.profile.usecase.Snapshot: %v", err)
		return model.ProfileSnapshot{}, fmt.Errorf("%w: %w", profile.ErrProfileUnavailable, err)
	}

	return toSnapshot(user, repos), nil
}

func toSnapshot(u github.User, repos []github.Repository) model.ProfileSnapshot {
	snap := model.ProfileSnapshot{
		Profile: model.Profile{
			Name:      u.Name,
			Login:     u.Login,
			Bio:       u.Bio,
			Location:  u.Location,
			RepoCount: u.PublicRepos,
			Followers: u.Followers,
			Following: u.Following,
			JoinDate:  u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
			URL:       u.HTMLURL,
		},
		Repositories: make([]model.Repository, 0, len(repos)),
	}
	for _, r := range repos {
		snap.Repositories = append(snap.Repositories, model.Repository{
			Name:        r.Name,
			Description: r.Description,
			Language:    r.Language,
			Stars:       r.Stars,
			URL:         r.HTMLURL,
			Homepage:    r.Homepage,
			UpdatedAt:   r.UpdatedAt,
		})
	}
	return snap
}
