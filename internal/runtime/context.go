// Package runtime provides a context type that holds the engine and logger
// for use throughout the application. This avoids passing multiple parameters.
package runtime

import (
	"fmt"
	"io"

	"offspring.dev/offspring/internal/config"
	"offspring.dev/offspring/internal/demo"
	"offspring.dev/offspring/internal/engine"
	"offspring.dev/offspring/internal/output"
	"offspring.dev/offspring/internal/repl"
	"offspring.dev/offspring/internal/utils"
)

// Options controls how a Context is built
type Options struct {
	ConfigPath string // empty uses config.GetConfigPath()
	Debug      bool
	MaxNodes   int // negative uses the configured value
	Stdout     io.Writer
	Stderr     io.Writer
}

// Context provides access to engine and output for commands
type Context struct {
	Engine     engine.Engine
	Splog      *output.Splog
	ConfigPath string
	Prompt     string
	Delimiter  string
}

// NewContext resolves configuration and creates the engine and logger
func NewContext(opts Options) (*Context, error) {
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.GetConfigPath()
	}

	maxNodes := opts.MaxNodes
	if maxNodes < 0 {
		configured, err := config.GetMaxNodes(configPath)
		if err != nil {
			return nil, err
		}
		maxNodes = configured
	}

	prompt, err := config.GetPrompt(configPath)
	if err != nil {
		return nil, err
	}
	delimiter, err := config.GetDelimiter(configPath)
	if err != nil {
		return nil, err
	}
	logFile, err := config.GetLogFile(configPath)
	if err != nil {
		return nil, err
	}

	splog, err := output.NewSplogWithOptions(output.SplogOptions{
		Writer:      opts.Stdout,
		ErrWriter:   opts.Stderr,
		LogFilePath: logFile,
		Debug:       opts.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	return &Context{
		Engine:     engine.NewEngine(engine.Options{MaxNodes: maxNodes}),
		Splog:      splog,
		ConfigPath: configPath,
		Prompt:     prompt,
		Delimiter:  delimiter,
	}, nil
}

// NewSession creates a REPL session bound to this context's engine and logger
func (c *Context) NewSession(interactive bool) *repl.Session {
	return repl.NewSession(c.Engine, c.Splog, repl.Options{
		Prompt:      c.Prompt,
		Delimiter:   c.Delimiter,
		Interactive: interactive,
	})
}

// LoadSession creates a session and loads the records in path into it.
// "-" reads standard input. Without a path the session starts empty, or with
// the demo family in demo mode. Rejected records are reported through Splog
// and do not fail the load.
func (c *Context) LoadSession(path string, interactive bool) (*repl.Session, error) {
	session := c.NewSession(interactive)
	if path == "" {
		if demo.IsDemoMode() {
			_ = session.Load(demo.NewReader())
		}
		return session, nil
	}

	r, err := utils.OpenInput(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if err := session.Load(r); err != nil {
		c.Splog.Debug("loaded %s with rejected records", path)
	}
	return session, nil
}

// Close flushes and closes the log file
func (c *Context) Close() error {
	return c.Splog.Close()
}
