package di

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/suzuki-shunsuke/markfind/pkg/github"
)

// populatePullRequest fills the pull request from GITHUB_REPOSITORY and the event file.
func populatePullRequest(fs afero.Fs, pr *github.PullRequest, flags *Flags) error {
	owner, repoName, ok := strings.Cut(flags.GitHubRepository, "/")
	if !ok || owner == "" || repoName == "" {
		return fmt.Errorf("GITHUB_REPOSITORY is not set or invalid: %s", flags.GitHubRepository)
	}
	pr.RepoOwner = owner
	pr.RepoName = repoName
	if pr.Number != 0 || flags.GitHubEventPath == "" {
		return nil
	}
	ev := &Event{}
	if err := readEvent(fs, ev, flags.GitHubEventPath); err != nil {
		return err
	}
	pr.Number = ev.PRNumber()
	return nil
}

// setupPullRequest returns the pull request the report is posted to.
// It returns nil if --pr-comment isn't set or the pull request can't be decided.
func setupPullRequest(fs afero.Fs, logE *logrus.Entry, flags *Flags, token string) *github.PullRequest {
	if !flags.PRComment {
		return nil
	}
	if !flags.IsGitHubActions {
		logE.Warn("skip posting the report because --pr-comment works only on GitHub Actions")
		return nil
	}
	if token == "" {
		logE.Warn("skip posting the report because GITHUB_TOKEN isn't set")
		return nil
	}
	pr := &github.PullRequest{Number: flags.PR}
	if err := populatePullRequest(fs, pr, flags); err != nil {
		logerr.WithError(logE, err).Warn("skip posting the report")
		return nil
	}
	if !pr.Valid() {
		logE.Warn("skip posting the report because the pull request number is unknown")
		return nil
	}
	return pr
}
