package initcmd

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// mergeMarkers appends markers to the markers sequence of a YAML document.
func mergeMarkers(content []byte, markers []string) (string, error) {
	file, err := parser.ParseBytes(content, parser.ParseComments)
	if err != nil {
		return "", fmt.Errorf("parse a markers file as YAML: %w", err)
	}
	if len(file.Docs) == 0 {
		return "", errors.New("the markers file has no document")
	}
	body, ok := file.Docs[0].Body.(*ast.MappingNode)
	if !ok {
		return "", errors.New("the markers file must be a mapping")
	}
	markersNode := findNodeByKey(body.Values, "markers")
	if markersNode == nil {
		node, err := yaml.ValueToNode(map[string]any{
			"markers": markers,
		})
		if err != nil {
			return "", fmt.Errorf("convert markers to node: %w", err)
		}
		body.Merge(node.(*ast.MappingNode)) //nolint:forcetypeassert
		return file.String(), nil
	}
	seq, ok := markersNode.Value.(*ast.SequenceNode)
	if !ok {
		return "", errors.New("markers must be a list")
	}
	added := newMarkers(seq, markers)
	if len(added) == 0 {
		return file.String(), nil
	}
	node, err := yaml.ValueToNode(added)
	if err != nil {
		return "", fmt.Errorf("convert markers to node: %w", err)
	}
	seq.Merge(node.(*ast.SequenceNode)) //nolint:forcetypeassert
	return file.String(), nil
}

// newMarkers returns markers which aren't in the sequence yet.
func newMarkers(seq *ast.SequenceNode, markers []string) []string {
	existing := make(map[string]struct{}, len(seq.Values))
	for _, value := range seq.Values {
		if s, ok := value.(*ast.StringNode); ok {
			existing[s.Value] = struct{}{}
		}
	}
	added := []string{}
	for _, m := range markers {
		if m == "" {
			continue
		}
		if _, ok := existing[m]; ok {
			continue
		}
		existing[m] = struct{}{}
		added = append(added, m)
	}
	return added
}

func findNodeByKey(values []*ast.MappingValueNode, key string) *ast.MappingValueNode {
	for _, value := range values {
		k, ok := value.Key.(*ast.StringNode)
		if !ok {
			continue
		}
		if k.Value == key {
			return value
		}
	}
	return nil
}
