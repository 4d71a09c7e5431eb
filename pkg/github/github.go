// Package github posts markfind reports to pull requests.
package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v74/github"
	"golang.org/x/oauth2"
)

type (
	Client       = github.Client
	IssueComment = github.IssueComment
	Response     = github.Response
)

// IssuesService is the part of the Issues API markfind uses.
// Pull request comments are issue comments.
type IssuesService interface {
	CreateComment(ctx context.Context, owner, repo string, number int, comment *IssueComment) (*IssueComment, *Response, error)
}

// New returns a GitHub API client. An empty token returns an unauthenticated client.
func New(ctx context.Context, token string) *Client {
	return github.NewClient(getHTTPClientForGitHub(ctx, token))
}

func getHTTPClientForGitHub(ctx context.Context, token string) *http.Client {
	if token == "" {
		return http.DefaultClient
	}
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	))
}

// PullRequest identifies the pull request a report is posted to.
type PullRequest struct {
	RepoOwner string
	RepoName  string
	Number    int
}

func (pr *PullRequest) Valid() bool {
	return pr != nil && pr.RepoOwner != "" && pr.RepoName != "" && pr.Number > 0
}

type Commenter struct {
	issues IssuesService
}

func NewCommenter(issues IssuesService) *Commenter {
	return &Commenter{issues: issues}
}

// Post creates a comment with the body on the pull request.
func (c *Commenter) Post(ctx context.Context, pr *PullRequest, body string) error {
	if _, _, err := c.issues.CreateComment(ctx, pr.RepoOwner, pr.RepoName, pr.Number, &IssueComment{
		Body: github.Ptr(body),
	}); err != nil {
		return fmt.Errorf("create a pull request comment: %w", err)
	}
	return nil
}
