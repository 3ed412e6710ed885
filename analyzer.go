// Package spellck provides a go/analysis based analyzer that spell checks
// the exported surface of Go packages: exported identifiers and the doc
// comments attached to them.
package spellck

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/spellck/internal"
	"github.com/mpyw/spellck/internal/checker"
	"github.com/mpyw/spellck/internal/config"
	"github.com/mpyw/spellck/internal/dictionary"
	"github.com/mpyw/spellck/internal/directives/ignore"
	"github.com/mpyw/spellck/internal/words"
)

// Flags for the analyzer.
var (
	noDefDict bool
	dictEnv   string
)

func init() {
	Analyzer.Flags.BoolVar(&noDefDict, "no-def-dict", false,
		"do not include the built-in word list")
	Analyzer.Flags.StringVar(&dictEnv, "dict-env", config.DictEnv,
		"environment variable listing dictionary files (path list separated)")
}

// Analyzer is the main analyzer for spellck.
var Analyzer = &analysis.Analyzer{
	Name:     "spellck",
	Doc:      "checks exported identifiers and their doc comments for unknown words",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
	Flags:    flag.FlagSet{},
}

var ErrNoInspector = errors.New("inspector analyzer result not found")

// category is attached to every spelling diagnostic.
const category = "spelling"

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	dict, err := sharedDictionary()
	if err != nil {
		return nil, err
	}

	runner := internal.NewRunner(dict, splitCache(), checker.SeverityWarning, nil)
	result := runner.Run(pass.Fset, pass.Files, insp)

	for _, d := range result.Diagnostics {
		pass.Report(analysis.Diagnostic{
			Pos:      d.Record.Pos,
			End:      d.Record.End,
			Category: category,
			Message:  d.Message(),
		})
	}

	// Report unused ignore directives
	reportUnusedIgnores(pass, result.UnusedIgnores)

	return nil, nil
}

// loadedDict is the dictionary shared by every package of one driver run.
// It is rebuilt when the flags or the environment change.
var loadedDict struct {
	sync.Mutex

	key  string
	dict *dictionary.Dictionary
	err  error
}

func sharedDictionary() (*dictionary.Dictionary, error) {
	paths, err := config.HostDictPaths(dictEnv)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%t\x00%s", noDefDict, strings.Join(paths, "\x00"))

	loadedDict.Lock()
	defer loadedDict.Unlock()

	if loadedDict.dict != nil || loadedDict.err != nil {
		if loadedDict.key == key {
			return loadedDict.dict, loadedDict.err
		}
	}

	sources := make([]dictionary.Source, 0, len(paths))
	for _, p := range paths {
		sources = append(sources, dictionary.File(p))
	}

	loadedDict.key = key
	loadedDict.dict, loadedDict.err = dictionary.Build(sources, !noDefDict)

	return loadedDict.dict, loadedDict.err
}

var splitCache = sync.OnceValue(func() *words.Cache {
	cache, err := words.NewCache(words.DefaultCacheSize)
	if err != nil {
		return nil
	}
	return cache
})

// reportUnusedIgnores reports any ignore directives that were not used.
func reportUnusedIgnores(pass *analysis.Pass, unused []ignore.Unused) {
	for _, u := range unused {
		if len(u.Targets) == 0 {
			pass.Reportf(u.Pos, "unused spellck:ignore directive")
			continue
		}

		targets := make([]string, len(u.Targets))
		for i, t := range u.Targets {
			targets[i] = string(t)
		}
		pass.Reportf(u.Pos, "unused spellck:ignore directive for target(s): %s", strings.Join(targets, ", "))
	}
}
