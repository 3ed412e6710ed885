// Package internal wires the spelling pipeline for one package:
// directives, record collection and checking.
package internal

import (
	"go/ast"
	"go/token"
	"log/slog"
	"strings"

	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/spellck/internal/checker"
	"github.com/mpyw/spellck/internal/collect"
	"github.com/mpyw/spellck/internal/dictionary"
	"github.com/mpyw/spellck/internal/directives/ignore"
	wordsdirective "github.com/mpyw/spellck/internal/directives/words"
	"github.com/mpyw/spellck/internal/words"
)

// Runner checks packages against a shared dictionary.
type Runner struct {
	dict     *dictionary.Dictionary
	cache    *words.Cache
	severity checker.Severity
	logger   *slog.Logger
}

// NewRunner creates a runner. cache may be nil.
func NewRunner(
	dict *dictionary.Dictionary,
	cache *words.Cache,
	severity checker.Severity,
	logger *slog.Logger,
) *Runner {
	if logger == nil {
		logger = slog.Default()
	}

	return &Runner{
		dict:     dict,
		cache:    cache,
		severity: severity,
		logger:   logger,
	}
}

// Result is the outcome of checking one package.
type Result struct {
	Diagnostics   []checker.Diagnostic
	UnusedIgnores []ignore.Unused
}

// Run checks the files of a single package. insp may be nil, in which
// case one is built from files.
func (r *Runner) Run(fset *token.FileSet, files []*ast.File, insp *inspector.Inspector) Result {
	if insp == nil {
		insp = inspector.New(files)
	}

	// Build set of files to skip
	skipFiles := buildSkipFiles(fset, files)

	// Build ignore maps for each file (excluding skipped files)
	ignoreMaps := buildIgnoreMaps(fset, files, skipFiles)

	// Words from //spellck:words extend the dictionary for this package only
	dict := r.dict.With(wordsdirective.Collect(files)...)

	c := checker.New(dict,
		checker.WithCache(r.cache),
		checker.WithSeverity(r.severity),
		checker.WithLogger(r.logger),
	)

	result := Result{
		Diagnostics: c.Check(collect.New(fset, insp, ignoreMaps, skipFiles)),
	}

	for _, file := range files {
		filename := fset.Position(file.Pos()).Filename
		if m, ok := ignoreMaps[filename]; ok {
			result.UnusedIgnores = append(result.UnusedIgnores, m.Unused()...)
		}
	}

	return result
}

// buildSkipFiles creates a set of filenames to skip.
// Generated files and test files are never part of the exported surface.
func buildSkipFiles(fset *token.FileSet, files []*ast.File) map[string]bool {
	skipFiles := make(map[string]bool)

	for _, file := range files {
		filename := fset.Position(file.Pos()).Filename

		if ast.IsGenerated(file) || strings.HasSuffix(filename, "_test.go") {
			skipFiles[filename] = true
		}
	}

	return skipFiles
}

// buildIgnoreMaps creates ignore maps for each file.
func buildIgnoreMaps(fset *token.FileSet, files []*ast.File, skipFiles map[string]bool) map[string]ignore.Map {
	ignoreMaps := make(map[string]ignore.Map)

	for _, file := range files {
		filename := fset.Position(file.Pos()).Filename
		if skipFiles[filename] {
			continue
		}
		ignoreMaps[filename] = ignore.Build(fset, file)
	}

	return ignoreMaps
}
