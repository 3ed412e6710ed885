// Package config resolves where dictionaries come from: the .spellck.toml
// project file, command line flags, and the environment of a vet run.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mpyw/spellck/internal/checker"
	"github.com/mpyw/spellck/internal/dictionary"
)

// FileName is the project configuration file looked up by Find.
const FileName = ".spellck.toml"

// File mirrors .spellck.toml.
//
//	dicts = ["docs/words.txt"]
//	words = ["gRPC", "protobuf"]
//	no_default = false
//	severity = "warning"
type File struct {
	Dicts     []string `toml:"dicts"`
	Words     []string `toml:"words"`
	NoDefault bool     `toml:"no_default"`
	Severity  string   `toml:"severity"`
}

// Settings is the merged configuration of one run.
type Settings struct {
	Dicts     []string // dictionary files, in load order
	Words     []string // extra accepted words
	NoDefault bool
	Severity  checker.Severity
}

// Find looks for FileName in startDir and its parents.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, &dictionary.IOError{Path: candidate, Err: err}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load reads a configuration file. Relative dictionary paths are resolved
// against the directory holding the file.
func Load(path string) (Settings, error) {
	var f File

	if _, err := toml.DecodeFile(path, &f); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return Settings{}, &dictionary.IOError{Path: path, Err: err}
		}

		return Settings{}, &dictionary.ConfigError{Err: fmt.Errorf("%s: failed to parse TOML: %w", path, err)}
	}

	severity, err := checker.ParseSeverity(f.Severity)
	if err != nil {
		return Settings{}, &dictionary.ConfigError{Err: fmt.Errorf("%s: %w", path, err)}
	}

	base := filepath.Dir(path)
	dicts := make([]string, 0, len(f.Dicts))

	for _, d := range f.Dicts {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if !filepath.IsAbs(d) {
			d = filepath.Join(base, d)
		}
		dicts = append(dicts, d)
	}

	return Settings{
		Dicts:     dicts,
		Words:     f.Words,
		NoDefault: f.NoDefault,
		Severity:  severity,
	}, nil
}

// Merge layers command line values over s. Dictionaries and words are
// appended; noDefault can only switch the default list off.
func (s Settings) Merge(dicts, extraWords []string, noDefault bool) Settings {
	merged := Settings{
		Dicts:     append(append([]string(nil), s.Dicts...), dicts...),
		Words:     append(append([]string(nil), s.Words...), extraWords...),
		NoDefault: s.NoDefault || noDefault,
		Severity:  s.Severity,
	}

	return merged
}

// Sources lists the dictionary sources of s, excluding the default list.
func (s Settings) Sources() []dictionary.Source {
	sources := make([]dictionary.Source, 0, len(s.Dicts)+1)

	for _, d := range s.Dicts {
		sources = append(sources, dictionary.File(d))
	}

	if len(s.Words) > 0 {
		sources = append(sources, dictionary.Words("config", s.Words...))
	}

	return sources
}

// Dictionary builds the dictionary described by s.
func (s Settings) Dictionary() (*dictionary.Dictionary, error) {
	return dictionary.Build(s.Sources(), !s.NoDefault)
}
