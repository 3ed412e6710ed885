// Package source loads Go files named on the command line and groups them
// into packages.
package source

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mpyw/spellck/internal/dictionary"
)

// Package is the set of loaded files sharing a directory and package name.
type Package struct {
	Dir   string
	Name  string
	Files []*ast.File
}

// Set holds every loaded file.
type Set struct {
	Fset     *token.FileSet
	Packages []*Package

	contents map[string][]byte
}

// Load parses the given files. A directory stands for its non-test .go
// files. Any file that cannot be read or parsed is an IOError.
func Load(paths []string) (*Set, error) {
	s := &Set{
		Fset:     token.NewFileSet(),
		contents: make(map[string][]byte),
	}

	byKey := make(map[string]*Package)

	for _, p := range paths {
		files, err := expand(p)
		if err != nil {
			return nil, err
		}

		for _, filename := range files {
			if _, dup := s.contents[filename]; dup {
				continue
			}

			file, err := s.parse(filename)
			if err != nil {
				return nil, err
			}

			dir := filepath.Dir(filename)
			key := dir + "\x00" + file.Name.Name

			pkg, ok := byKey[key]
			if !ok {
				pkg = &Package{Dir: dir, Name: file.Name.Name}
				byKey[key] = pkg
				s.Packages = append(s.Packages, pkg)
			}
			pkg.Files = append(pkg.Files, file)
		}
	}

	return s, nil
}

func expand(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &dictionary.IOError{Path: path, Err: err}
	}

	if !info.IsDir() {
		return []string{filepath.Clean(path)}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, &dictionary.IOError{Path: path, Err: err}
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		files = append(files, filepath.Join(path, name))
	}

	slices.Sort(files)

	return files, nil
}

func (s *Set) parse(filename string) (*ast.File, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, &dictionary.IOError{Path: filename, Err: err}
	}

	file, err := parser.ParseFile(s.Fset, filename, content, parser.ParseComments)
	if err != nil {
		return nil, &dictionary.IOError{Path: filename, Err: fmt.Errorf("parse: %w", err)}
	}

	s.contents[filename] = content

	return file, nil
}

// Line returns the source line containing pos, without its newline.
func (s *Set) Line(pos token.Pos) string {
	if s == nil || !pos.IsValid() {
		return ""
	}

	p := s.Fset.Position(pos)

	content, ok := s.contents[p.Filename]
	if !ok {
		return ""
	}

	return LineAt(content, p.Offset)
}

// LineAt returns the line of content containing byte offset.
func LineAt(content []byte, offset int) string {
	if offset < 0 || offset > len(content) {
		return ""
	}

	start := bytes.LastIndexByte(content[:offset], '\n') + 1

	end := bytes.IndexByte(content[offset:], '\n')
	if end < 0 {
		end = len(content)
	} else {
		end += offset
	}

	return strings.TrimRight(string(content[start:end]), "\r")
}
