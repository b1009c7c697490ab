package option

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

// LoadTOML sets every option of a TOML document in this scope. Nested
// tables flatten into dotted names, so
//
//	[indent]
//	width = 4
//
// sets "indent.width". Options are set in name order. Nothing is set when
// the document fails to parse.
func (m *Manager) LoadTOML(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading options: %w", err)
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing options: %w", err)
	}

	return m.setTree(doc)
}

// setTree sets every leaf of doc under its dotted name, in name order.
func (m *Manager) setTree(doc map[string]any) error {
	flat := make(map[string]any)
	flatten("", doc, flat)
	for _, name := range slices.Sorted(maps.Keys(flat)) {
		if err := m.Set(name, flat[name]); err != nil {
			return err
		}
	}
	return nil
}

func flatten(prefix string, tree map[string]any, out map[string]any) {
	for k, v := range tree {
		name := k
		if prefix != "" {
			name = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			flatten(name, sub, out)
			continue
		}
		out[name] = v
	}
}
