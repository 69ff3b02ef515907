package knowledge

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"portfolio-assistant/internal/intent"
	"portfolio-assistant/internal/model"
	"portfolio-assistant/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqRand returns the configured values in order, modulo n.
type seqRand struct {
	values []int
	next   int
}

func (r *seqRand) IntN(n int) int {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

type fakeProfiles struct {
	snap  model.ProfileSnapshot
	err   error
	calls int
}

func (f *fakeProfiles) Snapshot(ctx context.Context) (model.ProfileSnapshot, error) {
	f.calls++
	return f.snap, f.err
}

func testBank(t *testing.T) *Bank {
	t.Helper()
	b, err := NewBank(map[intent.Category][]string{
		intent.CategoryDefault:  {"default-0", "default-1"},
		intent.CategorySkills:   {"skills-0", "skills-1", "skills-2"},
		intent.CategoryGitHub:   {"github-canned"},
		intent.CategoryGreeting: {"hello-0"},
		intent.CategoryContact:  {"contact-0"},
	}, nil)
	require.NoError(t, err)
	return b
}

func testSnapshot() model.ProfileSnapshot {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	repos := make([]model.Repository, 0, 10)
	for i := 0; i < 10; i++ {
		repos = append(repos, model.Repository{
			Name:      "repo-" + string(rune('a'+i)),
			Language:  "Go",
			Stars:     i,
			URL:       "https://github.com/octocat/repo-" + string(rune('a'+i)),
			UpdatedAt: base.AddDate(0, 0, i),
		})
	}
	repos[9].Homepage = "https://demo.example.com"
	return model.ProfileSnapshot{
		Profile: model.Profile{
			Name:      "Mona Octocat",
			Login:     "octocat",
			Bio:       "Builds things.",
			Location:  "Earth",
			RepoCount: 42,
			Followers: 17,
			Following: 3,
			JoinDate:  time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			URL:       "https://github.com/octocat",
		},
		Repositories: repos,
	}
}

func TestSelect_DeterministicWithInjectedRand(t *testing.T) {
	s := NewSelector(testBank(t), nil, &seqRand{values: []int{2, 0, 1}}, log.NewNop())

	for _, want := range []string{"skills-2", "skills-0", "skills-1"} {
		got, err := s.Select(intent.CategorySkills)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestSelect_ContainedInVariants(t *testing.T) {
	b := testBank(t)
	s := NewSelector(b, nil, nil, log.NewNop())
	allowed := b.Variants(intent.CategorySkills)

	for i := 0; i < 200; i++ {
		got, err := s.Select(intent.CategorySkills)
		require.NoError(t, err)
		assert.Contains(t, allowed, got)
	}
}

func TestSelect_MissingCategoryUsesFirstDefault(t *testing.T) {
	s := NewSelector(testBank(t), nil, &seqRand{values: []int{1}}, log.NewNop())

	for _, cat := range []intent.Category{intent.CategoryEducation, intent.CategoryError, "unknown"} {
		got, err := s.Select(cat)
		require.NoError(t, err)
		assert.Equal(t, "default-0", got)
	}
}

func TestSelect_EmptyBank(t *testing.T) {
	s := NewSelector(&Bank{}, nil, nil, log.NewNop())

	_, err := s.Select(intent.CategorySkills)
	assert.True(t, errors.Is(err, ErrNoDefaultResponse))

	_, _, err = s.Respond(context.Background(), "What are your skills?")
	assert.Error(t, err)
}

func TestSelectEnriched_AppendsStats(t *testing.T) {
	profiles := &fakeProfiles{snap: testSnapshot()}
	s := NewSelector(testBank(t), profiles, &seqRand{values: []int{0}}, log.NewNop())

	got, err := s.SelectEnriched(context.Background(), intent.CategorySkills, "skills?")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "skills-0"))
	assert.Contains(t, got, "Public repositories: 42")
	assert.Contains(t, got, "Followers: 17")
	assert.Contains(t, got, "Last updated: March 10, 2026")
	assert.Equal(t, 1, profiles.calls)
}

func TestSelectEnriched_OnlyForProfileCategories(t *testing.T) {
	profiles := &fakeProfiles{snap: testSnapshot()}
	s := NewSelector(testBank(t), profiles, &seqRand{values: []int{0}}, log.NewNop())

	got, err := s.SelectEnriched(context.Background(), intent.CategoryContact, "contact")
	require.NoError(t, err)
	assert.Equal(t, "contact-0", got)
	assert.Zero(t, profiles.calls)
}

func TestSelectEnriched_FetchFailureReturnsPlainText(t *testing.T) {
	profiles := &fakeProfiles{err: errors.New("github down")}
	s := NewSelector(testBank(t), profiles, &seqRand{values: []int{1}}, log.NewNop())

	got, err := s.SelectEnriched(context.Background(), intent.CategorySkills, "skills?")
	require.NoError(t, err)
	assert.Equal(t, "skills-1", got)
}

func TestSelectProfileNetwork_LiveNarrative(t *testing.T) {
	s := NewSelector(testBank(t), &fakeProfiles{snap: testSnapshot()}, nil, log.NewNop())

	got, err := s.SelectProfileNetwork(context.Background(), "github repos")
	require.NoError(t, err)

	assert.Contains(t, got, "Mona Octocat")
	assert.Contains(t, got, "@octocat")
	assert.Contains(t, got, "Builds things.")
	assert.Contains(t, got, "Location: Earth")
	assert.Contains(t, got, "42 public repositories, 17 followers, 3 following.")
	assert.Contains(t, got, "On GitHub since June 2015.")
	assert.Contains(t, got, "Live demo: https://demo.example.com")

	// newest first, capped at eight
	assert.Contains(t, got, "1. repo-j (Go, ★ 9)")
	assert.Contains(t, got, "8. repo-c (Go, ★ 2)")
	assert.NotContains(t, got, "repo-b")
	assert.NotContains(t, got, "repo-a")
}

func TestSelectProfileNetwork_FallsBackToCanned(t *testing.T) {
	s := NewSelector(testBank(t), &fakeProfiles{err: context.DeadlineExceeded}, nil, log.NewNop())

	got, err := s.SelectProfileNetwork(context.Background(), "github")
	require.NoError(t, err)
	assert.Equal(t, "github-canned", got)

	s = NewSelector(testBank(t), nil, nil, log.NewNop())
	got, err = s.SelectProfileNetwork(context.Background(), "github")
	require.NoError(t, err)
	assert.Equal(t, "github-canned", got)
}

func TestRespond_RoutesByCategory(t *testing.T) {
	s := NewSelector(testBank(t), &fakeProfiles{snap: testSnapshot()}, &seqRand{values: []int{0}}, log.NewNop())

	cat, text, err := s.Respond(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, intent.CategoryGreeting, cat)
	assert.Equal(t, "hello-0", text)

	cat, text, err = s.Respond(context.Background(), "Tell me about your GitHub repos")
	require.NoError(t, err)
	assert.Equal(t, intent.CategoryGitHub, cat)
	assert.Contains(t, text, "Recently updated repositories:")
}

func TestRecentRepositories_DoesNotMutateInput(t *testing.T) {
	snap := testSnapshot()
	first := snap.Repositories[0].Name

	out := recentRepositories(snap.Repositories, 3)
	assert.Len(t, out, 3)
	assert.Equal(t, first, snap.Repositories[0].Name)
}
