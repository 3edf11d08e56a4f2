package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/specmark/amath/amath"
	"github.com/specmark/amath/internal/config"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "convert":
		return convertCommand(args[2:])
	case "run":
		return runCommand(args[2:])
	case "repl":
		return replCommand(args[2:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  %s convert [flags] [expr...]      convert arguments, or stdin lines\n", prog)
	fmt.Fprintf(os.Stderr, "  %s run [flags] <script> [args...]  run a Lua script with amath preloaded\n", prog)
	fmt.Fprintf(os.Stderr, "  %s repl [flags]                    start an interactive Lua session\n", prog)
	fmt.Fprintln(os.Stderr, "Common flags:")
	fmt.Fprintln(os.Stderr, "  -backend go|native")
	fmt.Fprintln(os.Stderr, "    converter implementation (default from config, else \"go\")")
	fmt.Fprintln(os.Stderr, "  -display inline|block")
	fmt.Fprintln(os.Stderr, "    MathML display mode for the go backend")
	fmt.Fprintln(os.Stderr, "  -config <file>")
	fmt.Fprintln(os.Stderr, "    configuration file (default ~/.config/amath/config.json)")
	fmt.Fprintln(os.Stderr, "  -v")
	fmt.Fprintln(os.Stderr, "    enable debug logging")
	fmt.Fprintln(os.Stderr, "convert flags:")
	fmt.Fprintln(os.Stderr, "  -color")
	fmt.Fprintln(os.Stderr, "    highlight MathML output")
	fmt.Fprintln(os.Stderr, "run flags:")
	fmt.Fprintln(os.Stderr, "  -check")
	fmt.Fprintln(os.Stderr, "    only compile the script without executing")
	fmt.Fprintln(os.Stderr, "  -watch")
	fmt.Fprintln(os.Stderr, "    re-run the script whenever it changes")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}

// commonFlags are shared by every subcommand. Empty values defer to the
// configuration file.
type commonFlags struct {
	configPath string
	backend    string
	display    string
	verbose    bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "configuration file")
	fs.StringVar(&c.backend, "backend", "", "converter backend (go or native)")
	fs.StringVar(&c.display, "display", "", "display mode (inline or block)")
	fs.BoolVar(&c.verbose, "v", false, "enable debug logging")
}

func (c *commonFlags) resolve() (*config.Config, amath.Converter, error) {
	setupLogging(c.verbose)

	cfg, err := config.LoadFrom(c.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if c.backend != "" {
		cfg.Backend = c.backend
	}
	if c.display != "" {
		cfg.Display = c.display
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	conv, err := newConverter(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, conv, nil
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
