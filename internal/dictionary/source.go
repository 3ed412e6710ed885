package dictionary

import (
	"bytes"
	_ "embed"
	"io"
	"os"
	"strings"
)

//go:embed default.txt
var defaultWords []byte

// Source is one word list, one word per line.
type Source interface {
	// Name identifies the source in error messages.
	Name() string
	// Open returns the word list. Build closes it before opening the next source.
	Open() (io.ReadCloser, error)
}

type fileSource string

// File returns a Source backed by the file at path.
func File(path string) Source { return fileSource(path) }

func (f fileSource) Name() string { return string(f) }

func (f fileSource) Open() (io.ReadCloser, error) { return os.Open(string(f)) }

type readerSource struct {
	name string
	r    io.Reader
}

// Reader returns a Source reading from r. It can be built only once.
func Reader(name string, r io.Reader) Source { return readerSource{name: name, r: r} }

func (s readerSource) Name() string { return s.name }

func (s readerSource) Open() (io.ReadCloser, error) { return io.NopCloser(s.r), nil }

// Words returns an in-memory Source holding words.
func Words(name string, words ...string) Source {
	return readerSource{name: name, r: strings.NewReader(strings.Join(words, "\n"))}
}

type defaultSource struct{}

// Default returns the built-in word list: common English plus the
// vocabulary of Go APIs and their documentation.
func Default() Source { return defaultSource{} }

func (defaultSource) Name() string { return "<default>" }

func (defaultSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(defaultWords)), nil
}
