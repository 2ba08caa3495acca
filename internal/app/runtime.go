package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"hangulpad/internal/cli"
	"hangulpad/internal/config"
	"hangulpad/internal/engine"
	"hangulpad/internal/layout"
	"hangulpad/internal/types"
)

type Runtime struct {
	opts   cli.Options
	cfg    config.Config
	layout *layout.Layout
	mode   types.InputMode
	logger *slog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func NewRuntime(opts cli.Options) *Runtime {
	return &Runtime{opts: opts, stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
}

func (rt *Runtime) Run(ctx context.Context) error {
	if err := rt.prepareConfig(); err != nil {
		return err
	}
	rt.prepareLogger()
	if err := rt.prepareLayout(); err != nil {
		return err
	}

	opts := engine.Options{Logger: rt.logger, Strict: rt.cfg.Strict}
	rt.logger.Debug("starting",
		"layout", rt.layout.Name(),
		"kind", rt.layout.Kind().String(),
		"mode", rt.mode.String(),
		"batch", rt.batch(),
	)
	if rt.batch() {
		return TranslateStream(ctx, rt.stdin, rt.stdout, rt.layout, opts)
	}
	return NewPad(NewSession(rt.layout, rt.mode, opts), rt.stdout).Run()
}

// prepareConfig merges hangulpad.ini with command line overrides.
func (rt *Runtime) prepareConfig() error {
	cfg, err := config.Resolve(rt.opts.ConfigPath)
	if err != nil {
		return err
	}
	if rt.opts.LayoutName != "" {
		cfg.Layout = rt.opts.LayoutName
	}
	if rt.opts.KeypairPath != "" {
		cfg.KeypairsPath = rt.opts.KeypairPath
	}
	if rt.opts.Debug {
		cfg.Verbose = true
	}
	if rt.opts.Strict {
		cfg.Strict = true
	}
	rt.mode = cfg.DefaultMode
	if rt.opts.Mode != "" {
		mode, err := types.ParseInputMode(rt.opts.Mode)
		if err != nil {
			return err
		}
		rt.mode = mode
	}
	rt.cfg = cfg
	return nil
}

func (rt *Runtime) prepareLogger() {
	level := slog.LevelInfo
	if rt.cfg.Verbose {
		level = slog.LevelDebug
	}
	rt.logger = slog.New(slog.NewTextHandler(rt.stderr, &slog.HandlerOptions{Level: level}))
}

func (rt *Runtime) prepareLayout() error {
	lay, err := ResolveLayout(rt.cfg.Layout, rt.cfg.KeypairsPath)
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	rt.layout = lay
	return nil
}

// batch reports whether input is translated line by line. Piped stdin always
// uses batch mode since raw key reading needs a terminal.
func (rt *Runtime) batch() bool {
	if rt.opts.Batch {
		return true
	}
	f, ok := rt.stdin.(*os.File)
	if !ok {
		return true
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}
