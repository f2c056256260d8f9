package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type command int

const (
	cmdStart command = iota
	cmdOpen
	cmdCreate
	cmdAuto
	cmdVersion
)

type launchOptions struct {
	command       command
	path          string
	width, height int
	configPath    string
	logPath       string
}

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color(hexOf(highlightColor)))

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `Usage:
  pixterm [flags]                      prompt for a file, then edit it
  pixterm [flags] start                same as no command
  pixterm [flags] open FILE            edit an existing image
  pixterm [flags] create FILE W H      edit a new blank W x H image
  pixterm [flags] version              print the version
  pixterm [flags] -f FILE [-res W,H]   open FILE, creating it if needed

-config and -log are also accepted after the command.

Flags:
`)
	fs.PrintDefaults()
}

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

func parseArgs(args []string, stderr io.Writer) (launchOptions, error) {
	var opts launchOptions
	var res string

	fs := flag.NewFlagSet("pixterm", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "config file (default ~/.pixtermrc)")
	fs.StringVar(&opts.logPath, "log", "", "write a debug log to this file")
	fs.StringVar(&opts.path, "f", "", "image to edit, created if it does not exist")
	fs.StringVar(&res, "res", "", "size of a new image as WIDTH,HEIGHT, e.g. 20,10")
	fs.Usage = func() { printUsage(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return opts, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if res != "" {
		if opts.path == "" {
			return opts, usageError("-res requires -f")
		}
		w, h, err := parseResolution(res)
		if err != nil {
			return opts, err
		}
		opts.width, opts.height = w, h
	}

	rest := fs.Args()
	if opts.path != "" {
		if len(rest) > 0 {
			return opts, usageError("unexpected arguments after -f: %s", strings.Join(rest, " "))
		}
		opts.command = cmdAuto
		return opts, nil
	}
	if len(rest) == 0 {
		opts.command = cmdStart
		return opts, nil
	}

	name := rest[0]
	sub := commandFlags(name, &opts, stderr)
	sub.Usage = fs.Usage
	rest, err := parseInterspersed(sub, rest[1:])
	if err != nil {
		return opts, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	switch name {
	case "start":
		opts.command = cmdStart
		if len(rest) != 0 {
			return opts, usageError("start takes no arguments")
		}
	case "version":
		opts.command = cmdVersion
		if len(rest) != 0 {
			return opts, usageError("version takes no arguments")
		}
	case "open":
		opts.command = cmdOpen
		if len(rest) != 1 {
			return opts, usageError("open needs exactly one FILE")
		}
		opts.path = rest[0]
	case "create":
		opts.command = cmdCreate
		if len(rest) != 3 {
			return opts, usageError("create needs FILE WIDTH HEIGHT")
		}
		opts.path = rest[0]
		w, err := parseDimension("width", rest[1])
		if err != nil {
			return opts, err
		}
		h, err := parseDimension("height", rest[2])
		if err != nil {
			return opts, err
		}
		opts.width, opts.height = w, h
	default:
		return opts, usageError("unknown command %q", name)
	}
	return opts, nil
}

// commandFlags holds the flags accepted after a command name. Values given
// before the command stay as defaults.
func commandFlags(name string, opts *launchOptions, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("pixterm "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", opts.configPath, "config file (default ~/.pixtermrc)")
	fs.StringVar(&opts.logPath, "log", opts.logPath, "write a debug log to this file")
	return fs
}

// parseInterspersed parses fs over args, allowing flags between positional
// arguments. Numbers such as "-1" are positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for len(args) > 0 {
		arg := args[0]
		if arg == "--" {
			return append(positional, args[1:]...), nil
		}
		if _, err := strconv.Atoi(arg); err == nil || !strings.HasPrefix(arg, "-") || arg == "-" {
			positional = append(positional, arg)
			args = args[1:]
			continue
		}
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
	}
	return positional, nil
}

// parseResolution reads "W,H".
func parseResolution(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, usageError("resolution must be WIDTH,HEIGHT, got %q", s)
	}
	w, err := parseDimension("width", parts[0])
	if err != nil {
		return 0, 0, err
	}
	h, err := parseDimension("height", parts[1])
	if err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

func parseDimension(name, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, usageError("%s must be a whole number, got %q", name, s)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalidDimensions, name, n)
	}
	return n, nil
}

// prompter asks questions on the plain terminal before the editor starts.
// The banner goes out once, ahead of the first question.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	greeted bool
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{scanner: bufio.NewScanner(in), out: out}
}

func (p *prompter) ask(question string) (string, error) {
	if !p.greeted {
		fmt.Fprintln(p.out, bannerStyle.Render(banner))
		p.greeted = true
	}
	fmt.Fprint(p.out, question)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", usageError("no input")
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

func (p *prompter) askDimension(question, name string) (int, error) {
	answer, err := p.ask(question)
	if err != nil {
		return 0, err
	}
	return parseDimension(name, answer)
}

// openSession resolves the launch options into a canvas and the path it
// will be saved to, prompting for whatever is missing.
func openSession(opts launchOptions, cfg *Config, in io.Reader, out io.Writer) (*Canvas, string, error) {
	p := newPrompter(in, out)

	switch opts.command {
	case cmdOpen:
		return openExisting(opts.path)
	case cmdCreate:
		return createNew(cfg, opts.path, opts.width, opts.height)
	case cmdStart:
		path, err := p.ask("File path: ")
		if err != nil {
			return nil, "", err
		}
		if path == "" {
			return nil, "", usageError("no file path given")
		}
		opts.path = path
	}

	if fileExists(opts.path) {
		return openExisting(opts.path)
	}
	// A bare name may already exist in the save directory.
	if saved := cfg.newImagePath(opts.path); saved != opts.path && fileExists(saved) {
		return openExisting(saved)
	}
	if err := checkSavable(opts.path); err != nil {
		return nil, "", withExitCode(err, exitUsage)
	}
	if opts.width == 0 || opts.height == 0 {
		w, err := p.askDimension("New image width: ", "width")
		if err != nil {
			return nil, "", err
		}
		h, err := p.askDimension("New image height: ", "height")
		if err != nil {
			return nil, "", err
		}
		opts.width, opts.height = w, h
	}
	return createNew(cfg, opts.path, opts.width, opts.height)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func openExisting(path string) (*Canvas, string, error) {
	savePath := savePathFor(path)
	if err := checkSavable(savePath); err != nil {
		return nil, "", withExitCode(err, exitUsage)
	}
	c, err := loadCanvas(path)
	if err != nil {
		return nil, "", err
	}
	return c, savePath, nil
}

func createNew(cfg *Config, path string, width, height int) (*Canvas, string, error) {
	if err := checkSavable(path); err != nil {
		return nil, "", withExitCode(err, exitUsage)
	}
	c, err := NewCanvas(width, height, blankPixel)
	if err != nil {
		return nil, "", err
	}
	path, err = cfg.GetSavePath(path)
	if err != nil {
		return nil, "", err
	}
	if fileExists(path) {
		return nil, "", withExitCode(fmt.Errorf("%w: %s", ErrImageExists, path), exitUsage)
	}
	return c, path, nil
}
