// Package report renders diagnostics for the standalone command.
package report

import (
	"fmt"
	"go/token"
	"slices"
	"strings"

	"github.com/mpyw/spellck/internal/checker"
)

// Format selects the output encoding.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// ParseFormat parses "text" or "json".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}

	return FormatText, fmt.Errorf("unknown format %q (want text or json)", s)
}

// ColorMode controls ANSI colors in text output.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode parses "auto", "always" or "never".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}

	return ColorAuto, fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
}

// LineSource returns the source line containing a position.
type LineSource interface {
	Line(pos token.Pos) string
}

// Item is a diagnostic resolved against its file set.
type Item struct {
	Pos      token.Position
	End      token.Position
	Severity checker.Severity
	Kind     checker.Kind
	Name     string
	Words    []string
	Message  string
	Line     string // source line at Pos, empty when unknown
}

// Items resolves diags and sorts them by file and offset. lines may be nil.
func Items(fset *token.FileSet, diags []checker.Diagnostic, lines LineSource) []Item {
	items := make([]Item, 0, len(diags))

	for _, d := range diags {
		item := Item{
			Pos:      fset.Position(d.Record.Pos),
			End:      fset.Position(d.Record.End),
			Severity: d.Severity,
			Kind:     d.Record.Kind,
			Name:     d.Record.Name,
			Words:    d.Words,
			Message:  d.Message(),
		}
		if lines != nil {
			item.Line = lines.Line(d.Record.Pos)
		}
		items = append(items, item)
	}

	slices.SortStableFunc(items, func(a, b Item) int {
		if c := strings.Compare(a.Pos.Filename, b.Pos.Filename); c != 0 {
			return c
		}
		return a.Pos.Offset - b.Pos.Offset
	})

	return items
}

// Summary counts items per severity.
type Summary struct {
	Warnings int
	Errors   int
}

// Summarize counts items.
func Summarize(items []Item) Summary {
	var s Summary
	for _, it := range items {
		if it.Severity == checker.SeverityError {
			s.Errors++
		} else {
			s.Warnings++
		}
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d %s, %d %s",
		s.Errors, plural(s.Errors, "error"),
		s.Warnings, plural(s.Warnings, "warning"))
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
