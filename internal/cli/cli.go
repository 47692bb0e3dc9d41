// Package cli implements the fsmviz command-line interface.
//
// Every command takes a pattern (or a JSON automaton via --file), compiles
// it, lays it out with pkg/diagram and hands the draw instructions to one
// of the pkg/render backends. The watch command does the same on every
// keystroke inside a terminal UI.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// travels through context.Context so helpers can report progress.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "fsmviz"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	logOut     io.Writer // where Logger writes
	configPath string
	config     FileConfig
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		logOut: w,
		config: DefaultFileConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The persistent pre-run loads --config and attaches the logger to the
// command context.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "fsmviz draws finite automata compiled from patterns",
		Long:         `fsmviz compiles a pattern (literals, grouping, '*' and '|') into an NFA and its DFA, lays the states out on a grid and renders the diagram as SVG, PNG, DOT or JSON.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.config = cfg
			if c.configPath != "" {
				c.Logger.Debug("loaded config", "path", c.configPath)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML config file with [layout] and [render] tables")

	root.AddCommand(c.svgCommand())
	root.AddCommand(c.pngCommand())
	root.AddCommand(c.jsonCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.matchCommand())
	root.AddCommand(c.genCommand())
	root.AddCommand(c.watchCommand())

	return root
}
