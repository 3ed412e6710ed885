// Package collect finds the exported surface of a package and turns it
// into checker records.
package collect

import (
	"go/ast"
	"go/token"
	"strings"

	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/spellck/internal/checker"
	"github.com/mpyw/spellck/internal/directives/ignore"
)

// Collector implements checker.RecordSource over the files of one package.
type Collector struct {
	fset       *token.FileSet
	insp       *inspector.Inspector
	ignoreMaps map[string]ignore.Map
	skipFiles  map[string]bool

	records []checker.Record
}

// New creates a collector. Files listed in skipFiles are not visited.
func New(
	fset *token.FileSet,
	insp *inspector.Inspector,
	ignoreMaps map[string]ignore.Map,
	skipFiles map[string]bool,
) *Collector {
	return &Collector{
		fset:       fset,
		insp:       insp,
		ignoreMaps: ignoreMaps,
		skipFiles:  skipFiles,
	}
}

// Records returns one identifier record per exported name and one doc
// record per doc comment attached to exported declarations, in source order.
func (c *Collector) Records() []checker.Record {
	c.records = nil

	nodeFilter := []ast.Node{
		(*ast.File)(nil),
		(*ast.FuncDecl)(nil),
		(*ast.GenDecl)(nil),
	}

	var ignoreMap ignore.Map

	c.insp.WithStack(nodeFilter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}

		switch n := n.(type) {
		case *ast.File:
			filename := c.fset.Position(n.Pos()).Filename
			if c.skipFiles[filename] {
				return false
			}
			ignoreMap = c.ignoreMaps[filename]
			c.doc(n.Doc, n.Name.Name, ignoreMap, n.Package)

			return true

		case *ast.FuncDecl:
			// Only top-level declarations; nothing inside a body is exported.
			if len(stack) == 2 {
				c.funcDecl(n, ignoreMap)
			}

		case *ast.GenDecl:
			if len(stack) == 2 {
				c.genDecl(n, ignoreMap)
			}
		}

		return false
	})

	return c.records
}

func (c *Collector) suppressed(m ignore.Map, pos token.Pos, target ignore.Target) bool {
	return m.ShouldIgnore(c.fset.Position(pos).Line, target)
}

func (c *Collector) ident(id *ast.Ident, suppressed bool) {
	c.records = append(c.records, checker.Record{
		Kind:       checker.Identifier,
		Name:       id.Name,
		Text:       id.Name,
		Pos:        id.Pos(),
		End:        id.End(),
		Suppressed: suppressed,
	})
}

// doc records cg, suppressed by an ignore directive at the line of at.
func (c *Collector) doc(cg *ast.CommentGroup, name string, m ignore.Map, at token.Pos) {
	text, pos := docText(cg)
	if text == "" {
		return
	}

	c.records = append(c.records, checker.Record{
		Kind:       checker.DocComment,
		Name:       name,
		Text:       text,
		Pos:        pos,
		End:        cg.End(),
		Suppressed: c.suppressed(m, at, ignore.Doc),
	})
}

// declare records the name and the doc of one exported declaration.
func (c *Collector) declare(m ignore.Map, at token.Pos, id *ast.Ident, doc *ast.CommentGroup) {
	c.ident(id, c.suppressed(m, at, ignore.Ident))
	c.doc(doc, id.Name, m, at)
}

func (c *Collector) funcDecl(fn *ast.FuncDecl, m ignore.Map) {
	if !fn.Name.IsExported() {
		return
	}

	if fn.Recv != nil && !exportedReceiver(fn.Recv) {
		return
	}

	c.declare(m, fn.Pos(), fn.Name, fn.Doc)
}

// exportedReceiver reports whether a method's receiver base type is exported.
func exportedReceiver(recv *ast.FieldList) bool {
	if len(recv.List) == 0 {
		return false
	}

	t := recv.List[0].Type
	for {
		switch x := t.(type) {
		case *ast.StarExpr:
			t = x.X
		case *ast.ParenExpr:
			t = x.X
		case *ast.IndexExpr:
			t = x.X
		case *ast.IndexListExpr:
			t = x.X
		case *ast.Ident:
			return x.IsExported()
		default:
			return false
		}
	}
}

func (c *Collector) genDecl(gd *ast.GenDecl, m ignore.Map) {
	if gd.Tok == token.IMPORT || !hasExported(gd) {
		return
	}

	grouped := gd.Lparen.IsValid()

	// The comment above "const (" documents the whole group.
	if grouped {
		c.doc(gd.Doc, gd.Tok.String(), m, gd.Pos())
	}

	for _, spec := range gd.Specs {
		switch s := spec.(type) {
		case *ast.TypeSpec:
			if !s.Name.IsExported() {
				continue
			}

			doc := s.Doc
			if !grouped {
				doc = gd.Doc
			}
			c.declare(m, s.Pos(), s.Name, doc)
			c.members(s.Type, m)

		case *ast.ValueSpec:
			specExported := false
			for _, name := range s.Names {
				if name.IsExported() {
					specExported = true
					c.ident(name, c.suppressed(m, s.Pos(), ignore.Ident))
				}
			}

			if !specExported {
				continue
			}

			doc := s.Doc
			if !grouped {
				doc = gd.Doc
			}
			c.doc(doc, s.Names[0].Name, m, s.Pos())
		}
	}
}

func hasExported(gd *ast.GenDecl) bool {
	for _, spec := range gd.Specs {
		switch s := spec.(type) {
		case *ast.TypeSpec:
			if s.Name.IsExported() {
				return true
			}
		case *ast.ValueSpec:
			for _, name := range s.Names {
				if name.IsExported() {
					return true
				}
			}
		}
	}

	return false
}

// members records the exported fields of a struct and the exported methods
// of an interface. Embedded fields are skipped: their names are declared
// elsewhere.
func (c *Collector) members(expr ast.Expr, m ignore.Map) {
	var fields *ast.FieldList

	switch t := expr.(type) {
	case *ast.StructType:
		fields = t.Fields
	case *ast.InterfaceType:
		fields = t.Methods
	default:
		return
	}

	if fields == nil {
		return
	}

	for _, field := range fields.List {
		fieldExported := false
		for _, name := range field.Names {
			if name.IsExported() {
				fieldExported = true
				c.ident(name, c.suppressed(m, field.Pos(), ignore.Ident))
			}
		}

		if !fieldExported {
			continue
		}

		c.doc(field.Doc, field.Names[0].Name, m, field.Pos())

		if st, ok := field.Type.(*ast.StructType); ok {
			c.members(st, m)
		}
	}
}

// docText joins the comments of cg that are not directives, keeping their
// markers, and returns the position of the first one.
func docText(cg *ast.CommentGroup) (string, token.Pos) {
	if cg == nil {
		return "", token.NoPos
	}

	var (
		lines []string
		pos   token.Pos
	)

	for _, c := range cg.List {
		if IsDirective(c.Text) {
			continue
		}

		if !pos.IsValid() {
			pos = c.Pos()
		}
		lines = append(lines, c.Text)
	}

	return strings.Join(lines, "\n"), pos
}

// IsDirective reports whether a comment is a tool directive such as
// "//go:generate", "//nolint:errcheck" or "//spellck:ignore". Directives
// are not prose and are never spell-checked.
func IsDirective(text string) bool {
	for _, prefix := range []string{"//line ", "//extern ", "//export "} {
		if strings.HasPrefix(text, prefix) {
			return true
		}
	}

	rest, ok := strings.CutPrefix(text, "//")
	if !ok {
		return false
	}

	// our own directives are also honored as "// spellck:..."
	if strings.HasPrefix(strings.TrimSpace(rest), "spellck:") {
		return true
	}

	colon := strings.IndexByte(rest, ':')
	if colon <= 0 || colon+1 >= len(rest) {
		return false
	}

	for i := 0; i <= colon+1; i++ {
		if i == colon {
			continue
		}

		b := rest[i]
		if !('a' <= b && b <= 'z' || '0' <= b && b <= '9') {
			return false
		}
	}

	return true
}
