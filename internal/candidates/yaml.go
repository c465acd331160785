package candidates

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "taginput/internal/errors"
)

// yamlFile is the document shape with a top-level tags key.
type yamlFile struct {
	Tags []string `yaml:"tags"`
}

// LoadYAML reads candidates from path. The document is either a plain
// sequence of strings or a mapping with a "tags" sequence.
func LoadYAML(path string) (Static, error) {
	//nolint:gosec // G304: Candidate file path is supplied by the user on purpose
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeSourceUnavailable, fmt.Sprintf("read candidates %s", path), err)
	}
	return ParseYAML(data)
}

// ParseYAML decodes a candidate document. Empty input yields no candidates.
func ParseYAML(data []byte) (Static, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Static{}, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, apperrors.New(apperrors.CodeParseFailed, "parse candidates", err)
	}
	root := &node
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	switch root.Kind {
	case yaml.SequenceNode:
		var values []string
		if err := root.Decode(&values); err != nil {
			return nil, apperrors.New(apperrors.CodeParseFailed, "parse candidate list", err)
		}
		return NewStatic(values...), nil
	case yaml.MappingNode:
		var doc yamlFile
		if err := root.Decode(&doc); err != nil {
			return nil, apperrors.New(apperrors.CodeParseFailed, "parse candidate tags", err)
		}
		return NewStatic(doc.Tags...), nil
	default:
		return nil, apperrors.New(apperrors.CodeParseFailed, "candidates must be a list or a mapping with a tags list", nil)
	}
}
