package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"

	"github.com/mpyw/spellck/internal/checker"
)

// Emitter writes items to an output stream.
type Emitter struct {
	w      io.Writer
	format Format

	location *color.Color
	warning  *color.Color
	errorC   *color.Color
	word     *color.Color
	caret    *color.Color
}

// NewEmitter returns an Emitter writing format to w.
func NewEmitter(w io.Writer, format Format, mode ColorMode) *Emitter {
	e := &Emitter{
		w:        w,
		format:   format,
		location: color.New(color.Bold),
		warning:  color.New(color.FgYellow, color.Bold),
		errorC:   color.New(color.FgRed, color.Bold),
		word:     color.New(color.FgCyan),
		caret:    color.New(color.FgGreen, color.Bold),
	}

	enabled := useColor(w, mode)
	for _, c := range []*color.Color{e.location, e.warning, e.errorC, e.word, e.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return e
}

func useColor(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Emit writes every item.
func (e *Emitter) Emit(items []Item) error {
	if e.format == FormatJSON {
		return e.emitJSON(items)
	}

	for _, it := range items {
		if err := e.emitText(it); err != nil {
			return err
		}
	}

	return nil
}

func (e *Emitter) emitText(it Item) error {
	sev := e.warning
	if it.Severity == checker.SeverityError {
		sev = e.errorC
	}

	msg := checker.WordsMessage(it.Words, func(w string) string { return e.word.Sprint(w) })

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s %s\n",
		e.location.Sprint(it.Pos.String()),
		sev.Sprint(it.Severity.String()+":"),
		msg)

	if it.Line != "" && it.Pos.Column > 0 {
		indent, width := caretSpan(it)
		fmt.Fprintf(&b, "    %s\n", it.Line)
		fmt.Fprintf(&b, "    %s%s\n", indent, e.caret.Sprint(strings.Repeat("^", width)))
	}

	_, err := io.WriteString(e.w, b.String())
	return err
}

// caretSpan returns the padding before the underline and its display width.
// Tabs in the prefix are kept as tabs.
func caretSpan(it Item) (string, int) {
	line := it.Line

	col := min(it.Pos.Column-1, len(line))

	var indent strings.Builder
	for _, r := range line[:col] {
		if r == '\t' {
			indent.WriteByte('\t')
			continue
		}
		indent.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	end := len(line)
	if it.End.Line == it.Pos.Line && it.End.Column > it.Pos.Column {
		end = min(it.End.Column-1, len(line))
	}

	width := runewidth.StringWidth(line[col:end])
	if width < 1 {
		width = 1
	}

	return indent.String(), width
}

type locationJSON struct {
	File      string `json:"file"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"end_line,omitempty"`
	EndColumn int    `json:"end_column,omitempty"`
}

type diagnosticJSON struct {
	Severity string       `json:"severity"`
	Kind     string       `json:"kind"`
	Name     string       `json:"name"`
	Words    []string     `json:"words"`
	Message  string       `json:"message"`
	Location locationJSON `json:"location"`
	Preview  string       `json:"preview,omitempty"`
}

type outputJSON struct {
	Diagnostics []diagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

func (e *Emitter) emitJSON(items []Item) error {
	out := outputJSON{
		Diagnostics: make([]diagnosticJSON, 0, len(items)),
		Count:       len(items),
	}

	for _, it := range items {
		out.Diagnostics = append(out.Diagnostics, diagnosticJSON{
			Severity: it.Severity.String(),
			Kind:     it.Kind.String(),
			Name:     it.Name,
			Words:    it.Words,
			Message:  it.Message,
			Location: locationJSON{
				File:      it.Pos.Filename,
				Line:      it.Pos.Line,
				Column:    it.Pos.Column,
				EndLine:   it.End.Line,
				EndColumn: it.End.Column,
			},
			Preview: it.Line,
		})
	}

	enc := json.NewEncoder(e.w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
