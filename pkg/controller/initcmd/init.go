package initcmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

const (
	templateHeader = `# yaml-language-server: $schema=https://raw.githubusercontent.com/suzuki-shunsuke/markfind/refs/heads/main/json-schema/markfind.json
# markfind - https://github.com/suzuki-shunsuke/markfind
# Lines of *.rpy files containing one of the markers are reported.
# If a line contains several markers, the first marker in this list wins.
`
	filePermission os.FileMode = 0o644
)

var defaultMarkers = []string{"TODO", "FIXME"} //nolint:gochecknoglobals

// Init creates a markers file if it doesn't exist.
// If the file exists, the given markers are appended to it keeping comments
// and markers which are already listed are skipped.
func (c *Controller) Init(configFilePath string, markers []string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a markers file exists: %w", err)
	}
	if f {
		if len(markers) == 0 {
			return nil
		}
		return c.addMarkers(configFilePath, markers)
	}
	content, err := newTemplate(markers)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(content), filePermission); err != nil {
		return fmt.Errorf("create a markers file: %w", err)
	}
	return nil
}

func newTemplate(markers []string) (string, error) {
	if len(markers) == 0 {
		markers = defaultMarkers
	}
	b, err := yaml.Marshal(map[string][]string{
		"markers": markers,
	})
	if err != nil {
		return "", fmt.Errorf("encode markers as YAML: %w", err)
	}
	return templateHeader + string(b), nil
}

func (c *Controller) addMarkers(configFilePath string, markers []string) error {
	content, err := afero.ReadFile(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("read a markers file: %w", err)
	}
	s, err := mergeMarkers(content, markers)
	if err != nil {
		return fmt.Errorf("add markers: %w", err)
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(s), filePermission); err != nil {
		return fmt.Errorf("write a markers file: %w", err)
	}
	return nil
}
