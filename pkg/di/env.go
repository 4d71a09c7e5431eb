package di

// Secrets holds tokens for the GitHub API.
type Secrets struct {
	GitHubToken string
}

// SetFromEnv sets secrets from environment variables.
func (s *Secrets) SetFromEnv(getEnv func(string) string) {
	s.GitHubToken = getEnv("MARKFIND_GITHUB_TOKEN")
	if s.GitHubToken == "" {
		s.GitHubToken = getEnv("GITHUB_TOKEN")
	}
}

// SetEnv populates flags from environment variables.
// The environment is read once here so the rest of markfind doesn't depend on it.
func SetEnv(flags *Flags, getEnv func(string) string) {
	flags.StepSummary = getEnv("GITHUB_STEP_SUMMARY")
	flags.IsGitHubActions = getEnv("GITHUB_ACTIONS") == "true"
	flags.GitHubRepository = getEnv("GITHUB_REPOSITORY")
	flags.GitHubEventPath = getEnv("GITHUB_EVENT_PATH")
}
