// Package words handles //spellck:words directives, which add accepted
// words for a single package:
//
//	//spellck:words gRPC protobuf unmarshaler
package words

import (
	"go/ast"
	"strings"
)

const directive = "spellck:words"

// Collect returns the words listed by every directive in files, in order.
func Collect(files []*ast.File) []string {
	var words []string

	for _, file := range files {
		for _, cg := range file.Comments {
			for _, c := range cg.List {
				words = append(words, parse(c.Text)...)
			}
		}
	}

	return words
}

// parse returns the words of a single directive comment.
func parse(text string) []string {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimSpace(text)

	rest, ok := strings.CutPrefix(text, directive)
	if !ok || (rest != "" && rest[0] != ' ' && rest[0] != '\t') {
		return nil
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return nil
	}

	return fields
}
