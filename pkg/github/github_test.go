package github_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"portfolio-assistant/pkg/github"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userJSON = `{"login":"octocat","name":"Mona","bio":"Builds things","location":"Earth",
"public_repos":42,"followers":17,"following":3,"html_url":"https://github.com/octocat",
"created_at":"2015-06-01T00:00:00Z","updated_at":"2026-03-10T12:00:00Z"}`

const reposJSON = `[
{"name":"alpha","description":"first","language":"Go","stargazers_count":5,"html_url":"https://github.com/octocat/alpha","homepage":"https://alpha.dev","updated_at":"2026-03-09T00:00:00Z"},
{"name":"beta","language":"TypeScript","stargazers_count":1,"html_url":"https://github.com/octocat/beta","updated_at":"2026-03-01T00:00:00Z"}
]`

func newServer(t *testing.T, userHits, repoHits *int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(userHits, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(userJSON))
	})
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(repoHits, 1)
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))
		assert.Equal(t, "desc", r.URL.Query().Get("direction"))
		assert.Equal(t, "owner", r.URL.Query().Get("type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(reposJSON))
	})
	mux.HandleFunc("/users/ghost", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestGetUser(t *testing.T) {
	var userHits, repoHits int32
	srv := newServer(t, &userHits, &repoHits)

	client, err := github.New(github.Config{BaseURL: srv.URL, CacheTTL: time.Minute})
	require.NoError(t, err)

	u, err := client.GetUser(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, "Mona", u.Name)
	assert.Equal(t, 42, u.PublicRepos)
	assert.Equal(t, 17, u.Followers)
	assert.Equal(t, 2015, u.CreatedAt.Year())
	assert.Equal(t, time.March, u.UpdatedAt.Month())

	// second call is served from the cache
	_, err = client.GetUser(context.Background(), "OctoCat")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&userHits))
}

func TestListRecentRepos(t *testing.T) {
	var userHits, repoHits int32
	srv := newServer(t, &userHits, &repoHits)

	client, err := github.New(github.Config{BaseURL: srv.URL, Token: "secret"})
	require.NoError(t, err)

	repos, err := client.ListRecentRepos(context.Background(), "octocat", 8)
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "alpha", repos[0].Name)
	assert.Equal(t, "https://alpha.dev", repos[0].Homepage)
	assert.Equal(t, 5, repos[0].Stars)

	repos[0].Name = "mutated"
	again, err := client.ListRecentRepos(context.Background(), "octocat", 8)
	require.NoError(t, err)
	assert.Equal(t, "alpha", again[0].Name)
	assert.Equal(t, int32(1), atomic.LoadInt32(&repoHits))

	limited, err := client.ListRecentRepos(context.Background(), "octocat", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestGetUser_NotFound(t *testing.T) {
	var userHits, repoHits int32
	srv := newServer(t, &userHits, &repoHits)

	client, err := github.New(github.Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.GetUser(context.Background(), "ghost")
	assert.Error(t, err)
}
