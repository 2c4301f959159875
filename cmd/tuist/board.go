package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/tuist"
	"github.com/grindlemire/tuist/internal/board"
	"github.com/grindlemire/tuist/internal/config"
	"github.com/grindlemire/tuist/tcellterm"
)

var (
	boardConfigPath string
	boardBackend    string
	boardNoMouse    bool
)

var boardCmd = &cobra.Command{
	Use:   "board [file]",
	Short: "Open a Kanban board",
	Long: `Open a Kanban board stored in a YAML file. The file is created on the
first save and reloaded when it changes on disk.

Keys: arrows select a card, [ and ] move it between columns, a adds a card,
e or Enter edits it, x deletes it and q quits.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBoard,
}

func init() {
	boardCmd.Flags().StringVar(&boardConfigPath, "config", "", "Config file (default: XDG config merged with .tuist.yaml)")
	boardCmd.Flags().StringVar(&boardBackend, "backend", "", "Terminal backend: ansi or tcell")
	boardCmd.Flags().BoolVar(&boardNoMouse, "no-mouse", false, "Disable mouse reporting")
}

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Board.File = args[0]
	}
	if cmd.Flags().Changed("backend") {
		cfg.Backend = boardBackend
	}
	if boardNoMouse {
		cfg.Mouse = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	theme, err := cfg.Theme.Resolve()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Board.File), 0o755); err != nil {
		return fmt.Errorf("creating board directory: %w", err)
	}
	store := board.NewStore(cfg.Board.File)
	b, err := store.Load()
	if err != nil {
		return err
	}

	term, input, closeBackend, err := openBackend(cfg.Backend)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeBackend(); cerr != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", color.YellowString("Warning:"), cerr)
		}
	}()

	host, err := tuist.NewHost(term, input,
		tuist.WithFrameInterval(cfg.FrameInterval),
		tuist.WithMouse(cfg.Mouse),
	)
	if err != nil {
		return err
	}
	screen := board.NewScreen(host, store, b, theme)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return host.Run()
	})
	g.Go(func() error {
		return screen.Watch(ctx)
	})
	g.Go(func() error {
		// Run has no context; a signal or watcher failure ends it here.
		<-ctx.Done()
		host.RequestExit()
		return nil
	})
	return g.Wait()
}

func loadConfig() (*config.Config, error) {
	if boardConfigPath != "" {
		return config.LoadFromPath(boardConfigPath)
	}
	return config.Load()
}

// openBackend opens the named terminal backend. The returned func releases
// it and must run after the host has stopped.
func openBackend(name string) (tuist.Terminal, tuist.InputReader, func() error, error) {
	switch name {
	case config.BackendTcell:
		s, err := tcellterm.Open()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("opening tcell screen: %w", err)
		}
		return s, s, s.Close, nil
	default:
		term, input, err := tuist.OpenTerminal()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("opening terminal: %w", err)
		}
		return term, input, func() error {
			return errors.Join(input.Close(), term.Close())
		}, nil
	}
}
