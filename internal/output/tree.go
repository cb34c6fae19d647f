package output

import (
	"fmt"
	"strings"

	"offspring.dev/offspring/internal/engine"
)

const (
	branchMid  = "├── "
	branchLast = "└── "
	pipeIndent = "│   "
	spaceIdent = "    "
)

// TreeRenderOptions configures rendering behavior
type TreeRenderOptions struct {
	Steps     *int   // levels below the start node to show, nil for all
	ShowDepth bool   // append the cached depth to every name
	ShowSize  bool   // append the descendant count to every name
	Highlight string // name to emphasize
	NoColor   bool
}

// FamilyTreeRenderer renders a subtree with box-drawing connectors
type FamilyTreeRenderer struct {
	opts TreeRenderOptions
}

// NewFamilyTreeRenderer creates a new tree renderer
func NewFamilyTreeRenderer(opts TreeRenderOptions) *FamilyTreeRenderer {
	return &FamilyTreeRenderer{opts: opts}
}

// Render returns one line per node, starting with node itself
func (r *FamilyTreeRenderer) Render(node *engine.Node) []string {
	if node == nil {
		return []string{}
	}

	lines := []string{r.label(node)}
	lines = append(lines, r.renderChildren(node, "", 1)...)
	return lines
}

func (r *FamilyTreeRenderer) renderChildren(node *engine.Node, prefix string, level int) []string {
	if r.opts.Steps != nil && level > *r.opts.Steps {
		return nil
	}

	children := node.Children()
	var result []string
	for i, child := range children {
		connector, nextPrefix := branchMid, prefix+pipeIndent
		if i == len(children)-1 {
			connector, nextPrefix = branchLast, prefix+spaceIdent
		}

		result = append(result, r.connector(prefix+connector, child.Depth())+r.label(child))
		result = append(result, r.renderChildren(child, nextPrefix, level+1)...)
	}
	return result
}

func (r *FamilyTreeRenderer) connector(text string, depth int) string {
	if r.opts.NoColor {
		return text
	}
	return ColorGeneration(text, depth)
}

func (r *FamilyTreeRenderer) label(node *engine.Node) string {
	name := node.Name()
	if !r.opts.NoColor {
		name = ColorName(name, name == r.opts.Highlight)
	} else if node.Name() == r.opts.Highlight && r.opts.Highlight != "" {
		name = "*" + name
	}

	var details []string
	if r.opts.ShowDepth {
		details = append(details, fmt.Sprintf("depth %d", node.Depth()))
	}
	if r.opts.ShowSize {
		size := 0
		for current := range engine.BreadthFirst(node) {
			size += current.ChildCount()
		}
		details = append(details, fmt.Sprintf("%d below", size))
	}
	if len(details) == 0 {
		return name
	}

	suffix := "(" + strings.Join(details, ", ") + ")"
	if !r.opts.NoColor {
		suffix = ColorDim(suffix)
	}
	return name + " " + suffix
}
