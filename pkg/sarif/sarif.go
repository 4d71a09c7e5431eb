// Package sarif defines the subset of SARIF 2.1.0 that markfind writes.
// https://docs.oasis-open.org/sarif/sarif/v2.1.0/sarif-v2.1.0.html
package sarif

const (
	Schema  = "https://json.schemastore.org/sarif-2.1.0.json"
	Version = "2.1.0"
)

type Log struct {
	Schema  string `json:"$schema"`
	Version string `json:"version"`
	Runs    []*Run `json:"runs"`
}

type Run struct {
	Tool    *Tool     `json:"tool"`
	Results []*Result `json:"results"`
}

type Tool struct {
	Driver *Driver `json:"driver"`
}

type Driver struct {
	Name           string  `json:"name"`
	InformationURI string  `json:"informationUri,omitempty"`
	Version        string  `json:"version,omitempty"`
	Rules          []*Rule `json:"rules,omitempty"`
}

type Rule struct {
	ID               string   `json:"id"`
	ShortDescription *Message `json:"shortDescription"`
}

// Result is a marker found in a file.
type Result struct {
	RuleID    string      `json:"ruleId"`
	Level     string      `json:"level"`
	Message   *Message    `json:"message"`
	Locations []*Location `json:"locations"`
}

type Message struct {
	Text string `json:"text"`
}

type Location struct {
	PhysicalLocation *PhysicalLocation `json:"physicalLocation"`
}

type PhysicalLocation struct {
	ArtifactLocation *ArtifactLocation `json:"artifactLocation"`
	Region           *Region           `json:"region"`
}

type ArtifactLocation struct {
	URI string `json:"uri"`
}

// Region points to the marker. Columns count characters and start at 1.
type Region struct {
	StartLine   int      `json:"startLine"`
	StartColumn int      `json:"startColumn,omitempty"`
	Snippet     *Message `json:"snippet,omitempty"`
}
