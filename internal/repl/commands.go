package repl

import (
	"errors"
	"strings"

	"offspring.dev/offspring/internal/engine"
	offspringerrors "offspring.dev/offspring/internal/errors"
	"offspring.dev/offspring/internal/parser"
)

// Execute runs a single command line and reports whether the session should end
func (s *Session) Execute(line string) bool {
	command, args := splitCommand(line)
	switch command {
	case "":
		return false
	case "add":
		s.Add(args)
	case "find":
		s.Find(args)
	case "print":
		s.Print(args)
	case "size":
		s.Size(args)
	case "height":
		s.Height(args)
	case "init":
		s.Reset()
	case "help":
		s.splog.Info(HelpText)
	case "quit":
		s.shutdown()
		return true
	default:
		s.splog.Warn("Unknown command %q. Type help for a list of commands.", command)
	}
	return false
}

// splitCommand separates the first word from the trimmed remainder
func splitCommand(line string) (string, string) {
	trimmed := strings.TrimSpace(line)
	command, args, _ := strings.Cut(trimmed, " ")
	return command, strings.TrimSpace(args)
}

// Add parses "parent, child[, child...]" and inserts each child
func (s *Session) Add(args string) {
	record, ok, err := parser.ParseRecord(args, s.opts.Delimiter)
	if err != nil || !ok {
		s.splog.Error("Error: usage is add Parent, [child]")
		return
	}

	for _, rel := range record.Relations() {
		root, err := s.engine.AddChild(s.root, rel.Parent, rel.Child)
		s.setRoot(root)
		if err != nil {
			s.reportAddError(rel, err)
		}
	}
}

func (s *Session) reportAddError(rel parser.Relation, err error) {
	switch {
	case errors.Is(err, offspringerrors.ErrDuplicateChild):
		s.splog.Error("Error: %s already has a child named %s", rel.Parent, rel.Child)
	case errors.Is(err, offspringerrors.ErrDanglingReference):
		s.splog.Error("Error: Neither %s or %s is in the tree.", rel.Parent, rel.Child)
	case errors.Is(err, offspringerrors.ErrNodeNotFound):
		s.splog.Error("Error: %s is not a part of the family tree.", rel.Parent)
	default:
		s.splog.Error("Error: %v", err)
	}
}

// Find reports whether name is in the tree and describes its offspring
func (s *Session) Find(name string) {
	node, err := s.engine.Find(s.root, name)
	if err != nil {
		if errors.Is(err, offspringerrors.ErrEmptyTree) && name == "" {
			s.splog.Info("Tree is empty.")
			return
		}
		s.splog.Info("%s is not a part of the family tree.", name)
		s.tipSuggestions(name)
		return
	}

	s.splog.Info("%s is part of the family tree. Here is their children.", node.Name())
	s.printLines(engine.Report(node, ""))
}

// Print writes the breadth-first report for name, the root when empty
func (s *Session) Print(name string) {
	s.printLines(s.engine.Report(s.root, name))
}

func (s *Session) printLines(lines []string, err error) {
	if err != nil {
		s.splog.Debug("report: %v", err)
	}
	for _, line := range lines {
		s.splog.Info(line)
	}
	s.splog.Newline()
}

// resolveName substitutes the root's name for an omitted name
func (s *Session) resolveName(name string) string {
	if name == "" && s.root != nil {
		return s.root.Name()
	}
	return name
}

// Size writes the number of descendants of name
func (s *Session) Size(name string) {
	name = s.resolveName(name)
	size, err := s.engine.Size(s.root, name)
	if err != nil {
		s.splog.Info("Person does not exist, tree size = 0")
		s.splog.Newline()
		return
	}
	s.splog.Info("Tree size for '%s': %d", name, size)
	s.splog.Newline()
}

// Height writes the depth of name below the root
func (s *Session) Height(name string) {
	name = s.resolveName(name)
	height, err := s.engine.Height(s.root, name)
	if err != nil {
		s.splog.Info("Person does not exist, height = -1")
		s.splog.Newline()
		return
	}
	s.splog.Info("The height for '%s' is %d", name, height)
	s.splog.Newline()
}

// Reset destroys the tree, asking first when interactive
func (s *Session) Reset() {
	if s.root != nil && s.opts.Interactive {
		confirmed, err := s.opts.Prompter.Confirm("Discard the current tree?", true)
		if err != nil || !confirmed {
			s.splog.Info("Keeping the current tree.")
			return
		}
	}

	released := s.engine.LiveNodes()
	s.shutdown()
	s.splog.Debug("released %d nodes", released-s.engine.LiveNodes())
}
