package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gofmod/fmod/internal/config"
	"github.com/gofmod/fmod/internal/core"
	"github.com/gofmod/fmod/internal/fileinput"
	"github.com/gofmod/fmod/internal/flushio"
	"github.com/gofmod/fmod/internal/logio"
)

var log = logio.NewLogger(os.Stderr)

func main() {
	ctx := context.Background()
	if err := rootCommand().ExecuteContext(ctx); err != nil {
		log.ErrorIf(err)
	}
	os.Exit(log.ExitCode())
}

type flags struct {
	configPath string
	vars       []string
	trace      bool
	transcript string
	columns    uint
	decimal    bool
	color      string
	memLimit   uint
	timeout    time.Duration
}

func rootCommand() *cobra.Command {
	var fl flags
	root := &cobra.Command{
		Use:   "fmod",
		Short: "Edit buffers and files byte by byte",
		Long: `fmod reads commands one line at a time, creating named buffers of bytes,
copying them to and from files, and showing their contents as tables.

Type "help" at the prompt for the list of commands.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			stdin := fileinput.NamedReader("<stdin>", os.Stdin)
			return runShell(cmd, &fl, flushio.IsTerminal(os.Stdin), stdin)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&fl.configPath, "config", "", "configuration file (default fmod.toml, fmod.yaml, or fmod.yml if present)")
	pf.StringArrayVarP(&fl.vars, "var", "v", nil, "preset a variable as name=value; may be repeated")
	pf.BoolVar(&fl.trace, "trace", false, "enable trace logging")
	pf.StringVar(&fl.transcript, "transcript", "", "also write all output to this file")
	pf.UintVar(&fl.columns, "columns", 0, "bytes per table row")
	pf.BoolVar(&fl.decimal, "decimal", false, "show table cells in decimal rather than hex")
	pf.StringVar(&fl.color, "color", "", "style output: auto, always, or never")
	pf.UintVar(&fl.memLimit, "mem-limit", 0, "largest buffer or file size allowed, in bytes (0 for no limit)")
	pf.DurationVar(&fl.timeout, "timeout", 0, "specify a time limit")

	root.AddCommand(&cobra.Command{
		Use:   "execfile <file>...",
		Short: "Execute commands from files, in order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scripts := make([]io.Reader, 0, len(args))
			for _, name := range args {
				f, err := os.Open(name)
				if err != nil {
					for _, script := range scripts {
						script.(io.Closer).Close()
					}
					return fmt.Errorf("failed to open script: %w", err)
				}
				scripts = append(scripts, f)
			}
			return runShell(cmd, &fl, false, scripts...)
		},
	})

	return root
}

func runShell(cmd *cobra.Command, fl *flags, interactive bool, inputs ...io.Reader) error {
	opts, err := shellOptions(cmd, fl)
	if err != nil {
		return err
	}
	opts = append(opts, WithInteractive(interactive))
	for _, in := range inputs {
		opts = append(opts, WithInput(in))
	}
	sh := New(opts...)

	ctx := cmd.Context()
	if fl.timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, fl.timeout)
		defer cancel()
	}

	err = sh.Run(ctx)
	if cerr := sh.Close(); err == nil {
		err = cerr
	}
	return err
}

// shellOptions builds shell options from the configuration file, overridden
// by any flags given.
func shellOptions(cmd *cobra.Command, fl *flags) ([]ShellOption, error) {
	cfg, err := loadConfig(fl.configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("columns") {
		cfg.Columns = fl.columns
	}
	if fl.decimal {
		cfg.CellFormat = "dec"
	}
	if fl.color != "" {
		cfg.Color = fl.color
	}
	if cmd.Flags().Changed("mem-limit") {
		cfg.MemLimit = fl.memLimit
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	format, err := core.ParseCellFormat(cfg.CellFormat)
	if err != nil {
		return nil, err
	}

	presets := cfg.Assignments()
	for _, s := range fl.vars {
		a, err := config.ParseAssignment(s)
		if err == nil {
			if _, ok := presetCommand(a); !ok {
				err = fmt.Errorf("could not parse variable assignment %q", s)
			}
		}
		if err != nil {
			log.Printf("WARNING", "%v, skipping", err)
			continue
		}
		presets = append(presets, a)
	}

	opts := []ShellOption{
		WithOutput(os.Stdout),
		WithPrompt(cfg.Prompt),
		WithStyle(styleEnabled(cfg.Color)),
		WithVariables(presets...),
		WithCoreOptions(
			core.WithFS(core.OSFS{Dir: cfg.Dir}),
			core.WithColumns(cfg.Columns),
			core.WithCellFormat(format),
			core.WithMemLimit(cfg.MemLimit),
		),
	}
	if fl.trace {
		opts = append(opts, traceOptions(log.Leveledf("TRACE"))...)
	}
	if fl.transcript != "" {
		f, err := os.Create(fl.transcript)
		if err != nil {
			return nil, fmt.Errorf("failed to create transcript: %w", err)
		}
		opts = append(opts, WithTee(f), WithCloser(f))
	}
	return opts, nil
}

// traceOptions logs every line read, every error, and every line written.
func traceOptions(logf func(mess string, args ...interface{})) []ShellOption {
	return []ShellOption{
		WithLogf(logf),
		WithTee(&logio.Writer{Logf: logf, Mark: "<"}),
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.Find(".")
	}
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func styleEnabled(color string) bool {
	switch color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return flushio.IsTerminal(os.Stdout)
}
