package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/ha1tch/fsmviz/pkg/diagram"
	"github.com/ha1tch/fsmviz/pkg/fsm"
)

func (c *CLI) watchCommand() *cobra.Command {
	var dfa bool

	cmd := &cobra.Command{
		Use:   "watch [pattern]",
		Short: "Edit a pattern and watch its automaton re-layout as you type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("create screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("init screen: %w", err)
			}

			w := newWatcher(screen, c.config.Layout, loggerFromContext(cmd.Context()).GetLevel())
			if dfa {
				w.kind = fsm.KindDFA
			}
			if len(args) > 0 {
				w.pattern = []rune(args[0])
			}
			w.update()
			err = w.run(cmd.Context())
			screen.Fini()

			if ferr := w.flushLogs(c.logOut); ferr != nil && err == nil {
				err = ferr
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&dfa, "dfa", false, "start with the DFA instead of the NFA")
	return cmd
}

// watcher is the interactive pattern editor. Every edit recompiles the
// pattern and rebuilds the diagram from scratch.
type watcher struct {
	screen tcell.Screen
	cfg    diagram.Config
	logger *log.Logger
	logs   bytes.Buffer // logger output while the screen owns the terminal

	pattern  []rune
	kind     fsm.Kind
	machines *fsm.Machines
	diagram  *diagram.Diagram
	err      error
}

// newWatcher creates a watcher whose log output is held back until
// flushLogs, so it never lands on the tcell screen.
func newWatcher(screen tcell.Screen, cfg diagram.Config, level log.Level) *watcher {
	w := &watcher{
		screen: screen,
		cfg:    cfg,
		kind:   fsm.KindNFA,
	}
	w.logger = newLogger(&w.logs, level)
	return w
}

// flushLogs writes the held-back log output to out. Call it after the
// screen has been finalized.
func (w *watcher) flushLogs(out io.Writer) error {
	_, err := w.logs.WriteTo(out)
	return err
}

// update recompiles the pattern. On a parse error the last good diagram
// stays on screen and the error is shown in the status line.
func (w *watcher) update() {
	if len(w.pattern) == 0 {
		w.machines, w.diagram, w.err = nil, nil, nil
		return
	}

	m, err := fsm.Compile(string(w.pattern))
	if err != nil {
		w.err = err
		return
	}
	w.machines, w.err = m, nil
	w.relayout()
}

// relayout rebuilds the diagram of the selected automaton.
func (w *watcher) relayout() {
	if w.machines == nil {
		return
	}
	w.diagram = diagram.Build(w.machines.Get(w.kind), w.cfg)
	w.logger.Debug("relayout", "pattern", string(w.pattern), "kind", w.kind,
		"markers", len(w.diagram.Markers), "edges", len(w.diagram.Edges))
}

func (w *watcher) toggleKind() {
	if w.kind == fsm.KindNFA {
		w.kind = fsm.KindDFA
	} else {
		w.kind = fsm.KindNFA
	}
	w.relayout()
}

// handleKey applies one key press and reports whether to quit.
func (w *watcher) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyTab:
		w.toggleKind()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(w.pattern) > 0 {
			w.pattern = w.pattern[:len(w.pattern)-1]
			w.update()
		}
	case tcell.KeyCtrlU:
		w.pattern = nil
		w.update()
	case tcell.KeyRune:
		w.pattern = append(w.pattern, ev.Rune())
		w.update()
	}
	return false
}

func (w *watcher) run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			w.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	for {
		w.draw()
		w.screen.Show()

		switch ev := w.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			w.screen.Sync()
		case *tcell.EventKey:
			if w.handleKey(ev) {
				return nil
			}
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}
}
