package di

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/markfind/pkg/github"
)

func Test_setupPullRequest(t *testing.T) {
	t.Parallel()
	data := []struct {
		name  string
		flags *Flags
		token string
		exp   *github.PullRequest
	}{
		{
			name: "pr-comment isn't set",
			flags: &Flags{
				IsGitHubActions:  true,
				GitHubRepository: "owner/repo",
				PR:               1,
			},
			token: "xxx",
		},
		{
			name: "not on GitHub Actions",
			flags: &Flags{
				PRComment:        true,
				GitHubRepository: "owner/repo",
				PR:               1,
			},
			token: "xxx",
		},
		{
			name: "no token",
			flags: &Flags{
				PRComment:        true,
				IsGitHubActions:  true,
				GitHubRepository: "owner/repo",
				PR:               1,
			},
		},
		{
			name: "invalid repository",
			flags: &Flags{
				PRComment:        true,
				IsGitHubActions:  true,
				GitHubRepository: "owner",
				PR:               1,
			},
			token: "xxx",
		},
		{
			name: "--pr",
			flags: &Flags{
				PRComment:        true,
				IsGitHubActions:  true,
				GitHubRepository: "owner/repo",
				PR:               1,
				GitHubEventPath:  "event.json",
			},
			token: "xxx",
			exp: &github.PullRequest{
				RepoOwner: "owner",
				RepoName:  "repo",
				Number:    1,
			},
		},
		{
			name: "event",
			flags: &Flags{
				PRComment:        true,
				IsGitHubActions:  true,
				GitHubRepository: "owner/repo",
				GitHubEventPath:  "event.json",
			},
			token: "xxx",
			exp: &github.PullRequest{
				RepoOwner: "owner",
				RepoName:  "repo",
				Number:    7,
			},
		},
		{
			name: "push event",
			flags: &Flags{
				PRComment:        true,
				IsGitHubActions:  true,
				GitHubRepository: "owner/repo",
				GitHubEventPath:  "push.json",
			},
			token: "xxx",
		},
	}
	logE := logrus.NewEntry(logrus.New())
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			if err := afero.WriteFile(fs, "event.json", []byte(`{"pull_request": {"number": 7}}`), 0o644); err != nil {
				t.Fatal(err)
			}
			if err := afero.WriteFile(fs, "push.json", []byte(`{"ref": "refs/heads/main"}`), 0o644); err != nil {
				t.Fatal(err)
			}
			pr := setupPullRequest(fs, logE, d.flags, d.token)
			if diff := cmp.Diff(d.exp, pr); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}
