package checker

import (
	"fmt"
	"go/token"
	"strings"
)

// Kind tells how the text of a Record is broken into words.
type Kind int

const (
	// Identifier records hold a declaration name.
	Identifier Kind = iota
	// DocComment records hold raw comment text, markers included.
	DocComment
)

func (k Kind) String() string {
	switch k {
	case Identifier:
		return "identifier"
	case DocComment:
		return "doc comment"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Record is one checkable unit produced by a RecordSource.
type Record struct {
	Kind Kind
	Name string // declaration the record belongs to
	Text string
	Pos  token.Pos
	End  token.Pos

	// Suppressed records are skipped without being tokenized.
	Suppressed bool
}

// RecordSource yields records in the order they should be reported.
type RecordSource interface {
	Records() []Record
}

// Records is a RecordSource over a fixed slice.
type Records []Record

// Records implements RecordSource.
func (r Records) Records() []Record { return r }

// Severity is attached to every Diagnostic.
type Severity uint8

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}

	return "unknown"
}

// ParseSeverity parses "warning" or "error".
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "warning", "warn":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	}

	return SeverityWarning, fmt.Errorf("unknown severity %q (want warning or error)", s)
}

// Diagnostic lists the unknown words of one Record.
type Diagnostic struct {
	Record   Record
	Words    []string // first-seen order, no duplicates
	Severity Severity
}

// Message renders the words as "misspelled word(s): a, b".
func (d Diagnostic) Message() string {
	return WordsMessage(d.Words, nil)
}

// WordsMessage renders ws as "misspelled word(s): a, b", passing each word
// through format when it is non-nil.
func WordsMessage(ws []string, format func(string) string) string {
	noun := "word"
	if len(ws) != 1 {
		noun = "words"
	}

	parts := ws
	if format != nil {
		parts = make([]string, len(ws))
		for i, w := range ws {
			parts[i] = format(w)
		}
	}

	return fmt.Sprintf("misspelled %s: %s", noun, strings.Join(parts, ", "))
}
