package option

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadYAML sets every option of a YAML document in this scope. Nested
// mappings flatten into dotted names the same way LoadTOML flattens tables:
//
//	indent:
//	  width: 4
//
// sets "indent.width". Nothing is set when the document fails to parse.
func (m *Manager) LoadYAML(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading options: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing options: %w", err)
	}
	return m.setTree(doc)
}
