package repl

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"offspring.dev/offspring/internal/engine"
)

// maxSuggestions bounds the names offered for a mistyped name
const maxSuggestions = 3

// Suggest returns up to three names in the tree that fuzzily match name,
// best match first
func Suggest(root *engine.Node, name string) []string {
	if root == nil || name == "" {
		return nil
	}

	var names []string
	for node := range engine.BreadthFirst(root) {
		names = append(names, node.Name())
	}

	var suggestions []string
	seen := map[string]bool{}
	for _, match := range fuzzy.Find(name, names) {
		if seen[match.Str] {
			continue
		}
		seen[match.Str] = true
		suggestions = append(suggestions, match.Str)
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return suggestions
}

// tipSuggestions offers close names after a failed lookup
func (s *Session) tipSuggestions(name string) {
	if suggestions := Suggest(s.root, name); len(suggestions) > 0 {
		s.splog.Tip("Did you mean %s?", strings.Join(suggestions, " or "))
	}
}
