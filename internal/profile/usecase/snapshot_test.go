package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"portfolio-assistant/internal/profile"
	"portfolio-assistant/pkg/github"
	"portfolio-assistant/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGitHub struct {
	user      github.User
	repos     []github.Repository
	userErr   error
	reposErr  error
	delay     time.Duration
	inFlight  int32
	maxFlight int32
	lastLimit int
}

func (f *fakeGitHub) enter(ctx context.Context) error {
	n := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)
	for {
		m := atomic.LoadInt32(&f.maxFlight)
		if n <= m || atomic.CompareAndSwapInt32(&f.maxFlight, m, n) {
			break
		}
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (f *fakeGitHub) GetUser(ctx context.Context, username string) (github.User, error) {
	if err := f.enter(ctx); err != nil {
		return github.User{}, err
	}
	return f.user, f.userErr
}

func (f *fakeGitHub) ListRecentRepos(ctx context.Context, username string, limit int) ([]github.Repository, error) {
	f.lastLimit = limit
	if err := f.enter(ctx); err != nil {
		return nil, err
	}
	return f.repos, f.reposErr
}

func TestSnapshot(t *testing.T) {
	gh := &fakeGitHub{
		user: github.User{Login: "octocat", Name: "Mona", PublicRepos: 42, Followers: 17, HTMLURL: "https://github.com/octocat"},
		repos: []github.Repository{
			{Name: "alpha", Language: "Go", Stars: 5, HTMLURL: "https://github.com/octocat/alpha", Homepage: "https://alpha.dev"},
		},
		delay: 20 * time.Millisecond,
	}
	uc := New(log.NewNop(), gh, profile.Config{Username: "octocat"})

	snap, err := uc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Mona", snap.Profile.Name)
	assert.Equal(t, 42, snap.Profile.RepoCount)
	assert.Equal(t, "https://github.com/octocat", snap.Profile.URL)
	require.Len(t, snap.Repositories, 1)
	assert.Equal(t, "https://alpha.dev", snap.Repositories[0].Homepage)
	assert.Equal(t, github.DefaultRepoLimit, gh.lastLimit)

	// both calls were in flight together
	assert.Equal(t, int32(2), atomic.LoadInt32(&gh.maxFlight))
}

func TestSnapshot_OneCallFails(t *testing.T) {
	gh := &fakeGitHub{reposErr: errors.New("boom")}
	uc := New(log.NewNop(), gh, profile.Config{Username: "octocat"})

	_, err := uc.Snapshot(context.Background())
	assert.True(t, errors.Is(err, profile.ErrProfileUnavailable))
}

func TestSnapshot_Timeout(t *testing.T) {
	gh := &fakeGitHub{delay: time.Second}
	uc := New(log.NewNop(), gh, profile.Config{Username: "octocat", RequestTimeout: 20 * time.Millisecond})

	start := time.Now()
	_, err := uc.Snapshot(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestSnapshot_NotConfigured(t *testing.T) {
	uc := New(log.NewNop(), &fakeGitHub{}, profile.Config{})

	_, err := uc.Snapshot(context.Background())
	assert.True(t, errors.Is(err, profile.ErrNotConfigured))
}
