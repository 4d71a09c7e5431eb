// Package config reads the markers file.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-version"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the markers file used when no markers file is found.
const DefaultPath = "markers.yml"

// Paths are the markers files searched in the current directory in order.
var Paths = []string{DefaultPath, "markers.yaml", ".markfind.yml", ".markfind.yaml"} //nolint:gochecknoglobals

type Config struct {
	Markers         []string `json:"markers,omitempty" yaml:"markers" jsonschema:"description=Literal strings searched in each line. When several markers occur in a line, the first one in this list wins"`
	RequiredVersion string   `json:"required_version,omitempty" yaml:"required_version" jsonschema:"description=A version constraint of markfind such as '>= 1.0.0'"`
}

// Init validates the configuration against the running markfind version and
// drops empty markers.
func (c *Config) Init(currentVersion string) error {
	if err := checkRequiredVersion(c.RequiredVersion, currentVersion); err != nil {
		return err
	}
	markers := make([]string, 0, len(c.Markers))
	for _, m := range c.Markers {
		if m == "" {
			continue
		}
		markers = append(markers, m)
	}
	c.Markers = markers
	return nil
}

func checkRequiredVersion(constraint, currentVersion string) error {
	if constraint == "" {
		return nil
	}
	constraints, err := version.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parse required_version: %w", err)
	}
	v, err := version.NewVersion(strings.TrimPrefix(currentVersion, "v"))
	if err != nil {
		// development builds don't have a version
		return nil //nolint:nilerr
	}
	if !constraints.Check(v) {
		return fmt.Errorf("markfind %s doesn't satisfy required_version %s", currentVersion, constraint)
	}
	return nil
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, path := range Paths {
		f, err := afero.Exists(fs, path)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", path, err)
		}
		if f {
			return path, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

// Find returns the explicit path, or the first of Paths which exists.
// If none exists, DefaultPath is returned so that reading it reports the missing file.
func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	p, err := getConfigPath(f.fs)
	if err != nil {
		return "", err
	}
	if p == "" {
		return DefaultPath, nil
	}
	return p, nil
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

// Read decodes the markers file. An empty path leaves cfg unchanged.
// An empty document or a document without the markers key isn't an error.
func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return nil
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a markers file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode a markers file as YAML: %w", err)
	}
	return nil
}
