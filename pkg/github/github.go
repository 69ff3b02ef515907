package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gogithub "github.com/google/go-github/v57/github"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/oauth2"
)

type githubImpl struct {
	client *gogithub.Client
	users  *expirable.LRU[string, User]
	repos  *expirable.LRU[string, []Repository]
}

// New creates a cached GitHub client.
func New(cfg Config) (IGitHub, error) {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}

	httpClient := cfg.HTTPClient
	if cfg.Token != "" {
		base := context.Background()
		if httpClient != nil {
			base = context.WithValue(base, oauth2.HTTPClient, httpClient)
		}
		httpClient = oauth2.NewClient(base, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token}))
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	client := gogithub.NewClient(httpClient)
	if cfg.BaseURL != "" {
		base := cfg.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("github: invalid base URL: %w", err)
		}
		client.BaseURL = u
	}

	return &githubImpl{
		client: client,
		users:  expirable.NewLRU[string, User](cfg.CacheSize, nil, cfg.CacheTTL),
		repos:  expirable.NewLRU[string, []Repository](cfg.CacheSize, nil, cfg.CacheTTL),
	}, nil
}

func (g *githubImpl) GetUser(ctx context.Context, username string) (User, error) {
	key := "user:" + strings.ToLower(username)
	if u, ok := g.users.Get(key); ok {
		return u, nil
	}

	u, _, err := g.client.Users.Get(ctx, username)
	if err != nil {
		return User{}, fmt.Errorf("github: get user %s: %w", username, err)
	}

	user := User{
		Login:       u.GetLogin(),
		Name:        u.GetName(),
		Bio:         u.GetBio(),
		Location:    u.GetLocation(),
		PublicRepos: u.GetPublicRepos(),
		Followers:   u.GetFollowers(),
		Following:   u.GetFollowing(),
		HTMLURL:     u.GetHTMLURL(),
		CreatedAt:   u.GetCreatedAt().Time,
		UpdatedAt:   u.GetUpdatedAt().Time,
	}
	g.users.Add(key, user)
	return user, nil
}

func (g *githubImpl) ListRecentRepos(ctx context.Context, username string, limit int) ([]Repository, error) {
	if limit <= 0 {
		limit = DefaultRepoLimit
	}
	if limit > maxRepoLimit {
		limit = maxRepoLimit
	}

	key := fmt.Sprintf("repos:%s:%d", strings.ToLower(username), limit)
	if repos, ok := g.repos.Get(key); ok {
		return cloneRepos(repos), nil
	}

	list, _, err := g.client.Repositories.List(ctx, username, &gogithub.RepositoryListOptions{
		Type:        "owner",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: gogithub.ListOptions{PerPage: limit},
	})
	if err != nil {
		return nil, fmt.Errorf("github: list repositories of %s: %w", username, err)
	}

	repos := make([]Repository, 0, len(list))
	for _, r := range list {
		repos = append(repos, Repository{
			Name:        r.GetName(),
			Description: r.GetDescription(),
			Language:    r.GetLanguage(),
			Stars:       r.GetStargazersCount(),
			HTMLURL:     r.GetHTMLURL(),
			Homepage:    r.GetHomepage(),
			UpdatedAt:   r.GetUpdatedAt().Time,
		})
		if len(repos) == limit {
			break
		}
	}

	g.repos.Add(key, repos)
	return cloneRepos(repos), nil
}

func cloneRepos(in []Repository) []Repository {
	out := make([]Repository, len(in))
	copy(out, in)
	return out
}
