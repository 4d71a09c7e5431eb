package di

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
)

// Event represents a GitHub Actions event payload.
type Event struct {
	PullRequest *PullRequest `json:"pull_request"`
	Issue       *Issue       `json:"issue"`
}

// PRNumber extracts the pull request or issue number from the GitHub event.
func (e *Event) PRNumber() int {
	if e == nil {
		return 0
	}
	if e.PullRequest != nil {
		return e.PullRequest.Number
	}
	if e.Issue != nil {
		return e.Issue.Number
	}
	return 0
}

type Issue struct {
	Number int `json:"number"`
}

type PullRequest struct {
	Number int `json:"number"`
}

func readEvent(fs afero.Fs, ev *Event, eventPath string) error {
	event, err := fs.Open(eventPath)
	if err != nil {
		return fmt.Errorf("read GITHUB_EVENT_PATH: %w", err)
	}
	defer event.Close()
	if err := json.NewDecoder(event).Decode(ev); err != nil {
		return fmt.Errorf("unmarshal GITHUB_EVENT_PATH: %w", err)
	}
	return nil
}
