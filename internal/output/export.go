package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"offspring.dev/offspring/internal/engine"
)

// Export formats
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// FamilyMember is the nested export form of a node
type FamilyMember struct {
	Name       string          `yaml:"name" json:"name"`
	Generation int             `yaml:"generation" json:"generation"`
	Children   []*FamilyMember `yaml:"children,omitempty" json:"children,omitempty"`
}

// NewFamilyMember copies the subtree rooted at node into its export form
func NewFamilyMember(node *engine.Node) *FamilyMember {
	if node == nil {
		return nil
	}

	members := map[*engine.Node]*FamilyMember{}
	for current := range engine.BreadthFirst(node) {
		member := &FamilyMember{Name: current.Name(), Generation: current.Depth()}
		members[current] = member
	}
	for current, member := range members {
		for _, child := range current.Children() {
			member.Children = append(member.Children, members[child])
		}
	}
	return members[node]
}

// ExportTree writes the subtree rooted at node to w in the given format
func ExportTree(w io.Writer, node *engine.Node, format string) error {
	member := NewFamilyMember(node)

	switch format {
	case FormatYAML, "yml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(member); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(member); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown export format: %s (must be yaml or json)", format)
	}
}
