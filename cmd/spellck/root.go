package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpyw/spellck/internal"
	"github.com/mpyw/spellck/internal/checker"
	"github.com/mpyw/spellck/internal/config"
	"github.com/mpyw/spellck/internal/dictionary"
	"github.com/mpyw/spellck/internal/report"
	"github.com/mpyw/spellck/internal/source"
	"github.com/mpyw/spellck/internal/words"
)

// Exit codes.
const (
	exitOK          = 0
	exitDiagnostics = 1
	exitUsage       = 2
	exitFatal       = 10
)

var errDiagnostics = errors.New("misspelled words found")

type options struct {
	dicts      []string
	noDefDict  bool
	configPath string
	format     string
	color      string
	severity   string
	verbose    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "spellck [flags] <file.go|dir>...",
		Short: "Spell check exported identifiers and doc comments",
		Long: `spellck checks the exported surface of Go packages (exported names and
the doc comments attached to them) against a set of dictionaries and reports
every unknown word. Directories stand for their non-test .go files.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return check(cmd, opts, args, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringArrayVarP(&opts.dicts, "dict", "d", nil, "dictionary file with one word per line (repeatable)")
	flags.BoolVarP(&opts.noDefDict, "no-def-dict", "n", false, "do not include the built-in word list")
	flags.StringVar(&opts.configPath, "config", "", "configuration file (default: nearest "+config.FileName+")")
	flags.StringVar(&opts.format, "format", "text", "output format (text|json)")
	flags.StringVar(&opts.color, "color", "auto", "colorize text output (auto|always|never)")
	flags.StringVar(&opts.severity, "severity", "warning", "severity of reported words (warning|error)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log what is loaded and checked")

	return cmd
}

// run executes the command and maps its outcome to an exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errDiagnostics):
		return exitDiagnostics
	case dictionary.IsFatal(err):
		fmt.Fprintf(stderr, "spellck: %v\n", err)
		return exitFatal
	default:
		fmt.Fprintf(stderr, "spellck: %v\nRun 'spellck --help' for usage.\n", err)
		return exitUsage
	}
}

func check(cmd *cobra.Command, opts options, args []string, stdout, stderr io.Writer) error {
	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	colorMode, err := report.ParseColorMode(opts.color)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	settings, err := loadSettings(opts.configPath, logger)
	if err != nil {
		return err
	}

	settings = settings.Merge(opts.dicts, nil, opts.noDefDict)

	if cmd.Flags().Changed("severity") {
		if settings.Severity, err = checker.ParseSeverity(opts.severity); err != nil {
			return err
		}
	}

	dict, err := settings.Dictionary()
	if err != nil {
		return err
	}
	logger.Debug("dictionary loaded",
		slog.Int("words", dict.Len()),
		slog.Any("files", settings.Dicts),
		slog.Bool("default", !settings.NoDefault),
	)

	cache, err := words.NewCache(words.DefaultCacheSize)
	if err != nil {
		return fmt.Errorf("failed to create split cache: %w", err)
	}

	set, err := source.Load(args)
	if err != nil {
		return err
	}

	runner := internal.NewRunner(dict, cache, settings.Severity, logger)

	var diags []checker.Diagnostic
	for _, pkg := range set.Packages {
		logger.Debug("checking package",
			slog.String("dir", pkg.Dir),
			slog.String("name", pkg.Name),
			slog.Int("files", len(pkg.Files)),
		)

		result := runner.Run(set.Fset, pkg.Files, nil)
		diags = append(diags, result.Diagnostics...)

		for _, u := range result.UnusedIgnores {
			logger.Warn("unused spellck:ignore directive",
				slog.String("pos", set.Fset.Position(u.Pos).String()),
			)
		}
	}

	items := report.Items(set.Fset, diags, set)

	if err := report.NewEmitter(stdout, format, colorMode).Emit(items); err != nil {
		return &dictionary.IOError{Path: "<stdout>", Err: err}
	}

	if format == report.FormatText {
		if len(items) == 0 {
			fmt.Fprintln(stderr, "spellck: no misspelled words")
		} else {
			fmt.Fprintf(stderr, "spellck: %s\n", report.Summarize(items))
		}
	}

	if len(items) > 0 {
		return errDiagnostics
	}

	return nil
}

// loadSettings reads the explicit configuration file, or the nearest one
// above the working directory when none is given.
func loadSettings(path string, logger *slog.Logger) (config.Settings, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return config.Settings{}, &dictionary.IOError{Path: ".", Err: err}
		}

		found, ok, err := config.Find(wd)
		if err != nil {
			return config.Settings{}, err
		}
		if !ok {
			return config.Settings{}, nil
		}
		path = found
	}

	logger.Debug("using configuration", slog.String("path", path))

	return config.Load(path)
}
