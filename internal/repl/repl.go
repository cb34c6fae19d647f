package repl

import (
	"bufio"
	"context"
	"io"
	"strings"

	"offspring.dev/offspring/internal/config"
	"offspring.dev/offspring/internal/engine"
	"offspring.dev/offspring/internal/output"
	"offspring.dev/offspring/internal/parser"
)

// HelpText lists the interactive commands
const HelpText = `Commands:
- add parent, child to search for parent and add child.
- find [name] to search from tree root; print information on name if found.
- print [name] to print the breadth first traversal.
- size [name] to count of all members in the [sub]tree.
- height [name] to return the height of [sub]tree.
- init to free all dynamic memory and start with an empty tree.
- help to provide command help.
- quit to free all dynamic memory and exit.`

// Options configures a Session
type Options struct {
	Prompt      string
	Delimiter   string
	Interactive bool     // show the prompt and confirm destructive commands
	Prompter    Prompter // used only when Interactive
}

// Session holds the tree being edited by one interactive run
type Session struct {
	engine engine.Engine
	splog  *output.Splog
	root   *engine.Node
	opts   Options
}

// NewSession creates a session with an empty tree
func NewSession(eng engine.Engine, splog *output.Splog, opts Options) *Session {
	if opts.Prompt == "" {
		opts.Prompt = config.DefaultPrompt
	}
	if opts.Delimiter == "" {
		opts.Delimiter = config.DefaultDelimiter
	}
	if opts.Prompter == nil {
		opts.Prompter = SurveyPrompter{}
	}
	return &Session{
		engine: eng,
		splog:  splog,
		opts:   opts,
	}
}

// Root returns the current root, nil when the tree is empty
func (s *Session) Root() *engine.Node {
	return s.root
}

// Load reads records from r into the current tree.
// Rejected records are reported and returned; accepted ones are kept.
func (s *Session) Load(r io.Reader) error {
	root, err := parser.Load(s.engine, s.root, r, s.opts.Delimiter)
	s.setRoot(root)
	if err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			s.splog.Error("Error: %s", line)
		}
	}
	return err
}

// Run prints the help text and executes commands from in until quit,
// end of input, or cancellation of ctx.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	s.splog.Info(HelpText)

	sc := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			s.shutdown()
			return err
		}
		if s.opts.Interactive {
			s.splog.Page(s.opts.Prompt)
		}
		if !sc.Scan() {
			s.shutdown()
			return sc.Err()
		}
		if quit := s.Execute(sc.Text()); quit {
			return nil
		}
	}
}

// shutdown releases the tree
func (s *Session) shutdown() {
	s.engine.Destroy(s.root)
	s.root = nil
}

// setRoot replaces the root handle, noting when the tree was re-rooted
func (s *Session) setRoot(root *engine.Node) {
	if s.root != nil && root != nil && root != s.root {
		s.splog.Debug("re-rooted tree under %s", root.Name())
	}
	s.root = root
}
