package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

var version = "0.1.0"

var errNoTerminal = errors.New("stdout is not a terminal")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "pixterm: %v\n", err)
		}
		os.Exit(exitCodeForError(err))
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	if opts.command == cmdVersion {
		fmt.Fprintf(stdout, "pixterm %s\n", version)
		return nil
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.logPath != "" {
		cfg.LogFile = expandPath(opts.logPath)
	}
	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	canvas, path, err := openSession(opts, cfg, stdin, stdout)
	if err != nil {
		logger.Error("startup failed", "err", err)
		return err
	}
	logger.Info("session started", "file", path, "width", canvas.Width(), "height", canvas.Height())

	if err := runEditor(canvas, path, cfg, logger); err != nil {
		logger.Error("editor stopped", "err", err)
		return err
	}
	return nil
}

// runEditor owns the terminal until the user leaves through the quit menu.
func runEditor(canvas *Canvas, path string, cfg *Config, logger *slog.Logger) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errNoTerminal
	}

	m := newModel(canvas, path, cfg, logger)
	size := terminalSize(fd)
	if cols, rows, err := size(); err == nil {
		m.layout = computeLayout(cols, rows, canvas.Width(), cfg.ResponsivePadding)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watcher := newResizeWatcher(size, m.mode, cfg.ResizeInterval, p.Send, logger)
	go watcher.Run(ctx)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("editor: %w", err)
	}
	return nil
}
