package words

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "words", text: "//spellck:words gRPC protobuf", want: []string{"gRPC", "protobuf"}},
		{name: "extra whitespace", text: "// spellck:words  a\tb   c ", want: []string{"a", "b", "c"}},
		{name: "no words", text: "//spellck:words", want: nil},
		{name: "other directive", text: "//spellck:ignore", want: nil},
		{name: "longer word", text: "//spellck:wordsmith x", want: nil},
		{name: "plain comment", text: "// words here", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parse(tt.text))
		})
	}
}

func TestCollect(t *testing.T) {
	fset := token.NewFileSet()

	a, err := parser.ParseFile(fset, "a.go", "// Package p is here.\n//\n//spellck:words foo bar\npackage p\n", parser.ParseComments)
	require.NoError(t, err)

	b, err := parser.ParseFile(fset, "b.go", "package p\n\n//spellck:words baz\nvar X int\n", parser.ParseComments)
	require.NoError(t, err)

	assert.Equal(t, []string{"foo", "bar", "baz"}, Collect([]*ast.File{a, b}))
}
