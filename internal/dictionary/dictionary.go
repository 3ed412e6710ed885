// Package dictionary provides the immutable set of accepted words.
package dictionary

import (
	"bufio"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// maxLine bounds a single dictionary line.
const maxLine = 1 << 20

// Dictionary is a case-insensitive set of words. It is never modified
// after Build returns, so it may be shared freely.
type Dictionary struct {
	words map[string]struct{}
}

// Build merges sources, plus the built-in list when includeDefault is set.
//
// Sources are read one at a time; each is closed before the next one is
// opened. Building with no sources at all is a ConfigError, and a source
// that cannot be read is an IOError.
func Build(sources []Source, includeDefault bool) (*Dictionary, error) {
	if includeDefault {
		sources = append([]Source{Default()}, sources...)
	}

	if len(sources) == 0 {
		return nil, &ConfigError{Err: ErrNoSources}
	}

	d := &Dictionary{words: make(map[string]struct{})}

	for _, src := range sources {
		if err := d.load(src); err != nil {
			return nil, err
		}
	}

	return d, nil
}

func (d *Dictionary) load(src Source) (err error) {
	rc, err := src.Open()
	if err != nil {
		return &IOError{Path: src.Name(), Err: err}
	}

	defer func() {
		if cerr := rc.Close(); cerr != nil && err == nil {
			err = &IOError{Path: src.Name(), Err: cerr}
		}
	}()

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	for sc.Scan() {
		d.add(sc.Text())
	}

	if err := sc.Err(); err != nil {
		return &IOError{Path: src.Name(), Err: fmt.Errorf("scan: %w", err)}
	}

	return nil
}

func (d *Dictionary) add(word string) {
	word = strings.TrimSpace(word)
	if word == "" {
		return
	}

	d.words[normalize(word)] = struct{}{}
}

// With returns a new dictionary holding the words of d and extra.
// d itself is left unchanged.
func (d *Dictionary) With(extra ...string) *Dictionary {
	if len(extra) == 0 {
		return d
	}

	merged := &Dictionary{words: make(map[string]struct{}, d.Len()+len(extra))}
	if d != nil {
		for w := range d.words {
			merged.words[w] = struct{}{}
		}
	}

	for _, w := range extra {
		merged.add(w)
	}

	return merged
}

// Contains reports whether word is in the dictionary, ignoring case.
func (d *Dictionary) Contains(word string) bool {
	if d == nil {
		return false
	}

	_, ok := d.words[normalize(word)]

	return ok
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}

	return len(d.words)
}

// normalize lower-cases ASCII words directly and case-folds anything else,
// so that e.g. "ÅNGSTRÖM" and "ångström" compare equal.
func normalize(word string) string {
	for i := 0; i < len(word); i++ {
		if word[i] >= utf8.RuneSelf {
			return cases.Fold().String(word)
		}
	}

	return strings.ToLower(word)
}
