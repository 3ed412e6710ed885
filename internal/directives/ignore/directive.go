// Package ignore handles //spellck:ignore directives.
package ignore

import (
	"go/ast"
	"go/token"
	"slices"
	"strings"
)

const directive = "spellck:ignore"

// Target is the part of a declaration an ignore applies to.
type Target string

// Valid targets.
const (
	Ident Target = "ident"
	Doc   Target = "doc"
)

// AllTargets returns all valid target names.
func AllTargets() []Target {
	return []Target{Ident, Doc}
}

func (t Target) valid() bool {
	return slices.Contains(AllTargets(), t)
}

// Entry tracks an ignore directive and its usage.
type Entry struct {
	pos        token.Pos       // Position of the ignore comment
	targets    []Target        // List of targets (empty = all)
	used       map[Target]bool // Track usage per target
	standalone bool            // No code precedes the comment on its line
}

// Map tracks ignore entries by line number.
type Map map[int]*Entry

// Build scans a file for ignore comments and returns a map.
func Build(fset *token.FileSet, file *ast.File) Map {
	m := make(Map)

	var codeEnds map[int]token.Pos

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			if targets, ok := parseIgnoreComment(c.Text); ok {
				if codeEnds == nil {
					codeEnds = firstCodeEnds(fset, file)
				}

				line := fset.Position(c.Pos()).Line
				end, ok := codeEnds[line]
				m[line] = &Entry{
					pos:        c.Pos(),
					targets:    targets,
					used:       make(map[Target]bool),
					standalone: !ok || end > c.Pos(),
				}
			}
		}
	}

	return m
}

// firstCodeEnds returns, per line, the earliest end position of a
// syntax node ending on that line. Comments are not code.
func firstCodeEnds(fset *token.FileSet, file *ast.File) map[int]token.Pos {
	ends := make(map[int]token.Pos)

	ast.Inspect(file, func(n ast.Node) bool {
		switch n.(type) {
		case nil, *ast.File:
			return true
		case *ast.CommentGroup, *ast.Comment:
			return false
		}

		end := n.End()
		if !end.IsValid() {
			return true
		}

		line := fset.Position(end).Line
		if cur, ok := ends[line]; !ok || end < cur {
			ends[line] = end
		}

		return true
	})

	return ends
}

// parseIgnoreComment parses an ignore directive and returns its targets.
// Returns nil slice if no specific targets are given (ignore all).
// Returns false if not an ignore comment.
//
// Supported formats:
//   - //spellck:ignore                  -> ignore name and doc
//   - //spellck:ignore ident            -> ignore the name only
//   - //spellck:ignore doc,ident        -> ignore several targets
//   - //spellck:ignore - reason         -> ignore all with comment
//   - //spellck:ignore doc - reason     -> ignore specific with comment
func parseIgnoreComment(text string) ([]Target, bool) {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimSpace(text)

	rest, ok := strings.CutPrefix(text, directive)
	if !ok {
		return nil, false
	}

	// "spellck:ignored" is some other word, not the directive
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return nil, false
	}

	// Stop at comment markers: "//" or " - "
	if idx := strings.Index(rest, "//"); idx >= 0 {
		rest = rest[:idx]
	}

	rest = strings.TrimSpace(rest)

	if idx := strings.Index(rest, " - "); idx >= 0 {
		rest = rest[:idx]
	}
	if strings.HasPrefix(rest, "- ") || rest == "-" {
		return nil, true
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return nil, true
	}

	parts := strings.Split(rest, ",")
	targets := make([]Target, 0, len(parts))

	for _, part := range parts {
		target := Target(strings.TrimSpace(part))
		if target != "" {
			targets = append(targets, target)
		}
	}

	return targets, true
}

// ShouldIgnore reports whether a declaration starting on line is ignored
// for target. The directive may trail the declaration on the same line, or
// sit alone on the line before. A trailing directive never reaches the
// next line. A matching entry is marked as used.
func (m Map) ShouldIgnore(line int, target Target) bool {
	if m.shouldIgnoreEntry(m[line], target) {
		return true
	}

	if prev := m[line-1]; prev != nil && prev.standalone {
		return m.shouldIgnoreEntry(prev, target)
	}

	return false
}

func (m Map) shouldIgnoreEntry(entry *Entry, target Target) bool {
	if entry == nil {
		return false
	}

	if len(entry.targets) == 0 || slices.Contains(entry.targets, target) {
		entry.used[target] = true
		return true
	}

	return false
}

// Unused represents an ignore directive that suppressed nothing.
type Unused struct {
	Pos     token.Pos
	Targets []Target // unused or unknown targets (empty if the whole directive is unused)
}

// Unused returns the directives that were never matched, ordered by position.
func (m Map) Unused() []Unused {
	var unused []Unused

	for _, entry := range m {
		if len(entry.targets) == 0 {
			if len(entry.used) == 0 {
				unused = append(unused, Unused{Pos: entry.pos})
			}

			continue
		}

		var targets []Target
		for _, target := range entry.targets {
			if !target.valid() || !entry.used[target] {
				targets = append(targets, target)
			}
		}

		if len(targets) > 0 {
			unused = append(unused, Unused{Pos: entry.pos, Targets: targets})
		}
	}

	slices.SortFunc(unused, func(a, b Unused) int { return int(a.Pos) - int(b.Pos) })

	return unused
}
