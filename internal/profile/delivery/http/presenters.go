package http

import (
	"portfolio-assistant/internal/model"
	"portfolio-assistant/pkg/response"
)

type profileResp struct {
	Name      string            `json:"name"`
	Login     string            `json:"login"`
	Bio       string            `json:"bio,omitempty"`
	Location  string            `json:"location,omitempty"`
	RepoCount int               `json:"repo_count"`
	Followers int               `json:"followers"`
	Following int               `json:"following"`
	JoinDate  response.Date     `json:"join_date"`
	UpdatedAt response.DateTime `json:"updated_at"`
	URL       string            `json:"url"`
}

type repositoryResp struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Language    string            `json:"language,omitempty"`
	Stars       int               `json:"stars"`
	URL         string            `json:"url"`
	Homepage    string            `json:"homepage,omitempty"`
	UpdatedAt   response.DateTime `json:"updated_at"`
}

type githubResp struct {
	Profile      profileResp      `json:"profile"`
	Repositories []repositoryResp `json:"repositories"`
}

func newGitHubResp(snap model.ProfileSnapshot) githubResp {
	p := snap.Profile
	resp := githubResp{
		Profile: profileResp{
			Name:      p.DisplayName(),
			Login:     p.Login,
			Bio:       p.Bio,
			Location:  p.Location,
			RepoCount: p.RepoCount,
			Followers: p.Followers,
			Following: p.Following,
			JoinDate:  response.Date(p.JoinDate),
			UpdatedAt: response.DateTime(p.UpdatedAt),
			URL:       p.URL,
		},
		Repositories: make([]repositoryResp, 0, len(snap.Repositories)),
	}
	for _, r := range snap.Repositories {
		resp.Repositories = append(resp.Repositories, repositoryResp{
			Name:        r.Name,
			Description: r.Description,
			Language:    r.Language,
			Stars:       r.Stars,
			URL:         r.URL,
			Homepage:    r.Homepage,
			UpdatedAt:   response.DateTime(r.UpdatedAt),
		})
	}
	return resp
}
