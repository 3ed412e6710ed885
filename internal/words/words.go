// Package words breaks identifiers and doc comment text into candidate words.
package words

import "strings"

// Token is a single candidate word.
type Token struct {
	Text   string // as written in the source
	Word   string // lower-cased form used for lookups
	Offset int    // byte offset of Text within the input
}

func newToken(s string, start, end int) Token {
	text := s[start:end]

	return Token{
		Text:   text,
		Word:   strings.ToLower(text),
		Offset: start,
	}
}

func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }

func isLower(c byte) bool { return 'a' <= c && c <= 'z' }

func isLetter(c byte) bool { return isUpper(c) || isLower(c) }

// Split breaks a program identifier into its words.
//
//	foo_bar    -> foo, bar
//	FooBar     -> Foo, Bar
//	HTTPServer -> HTTP, Server
//	IOError    -> IO, Error
//	v2Config   -> v, Config
//
// Underscores, digits and non-ASCII bytes separate words and are never
// part of one. A run of capitals is a single word unless it is followed
// by a lowercase letter, in which case its last capital starts the next
// word.
func Split(ident string) []Token {
	var (
		tokens []Token
		start  = -1
		upper  int // consecutive capitals ending at the previous byte
	)

	for i := 0; i < len(ident); i++ {
		c := ident[i]

		switch {
		case !isLetter(c):
			if start >= 0 {
				tokens = append(tokens, newToken(ident, start, i))
			}
			start, upper = -1, 0

		case isUpper(c):
			if start < 0 {
				start = i
			} else if upper == 0 {
				// fooBar: lower to upper opens a word
				tokens = append(tokens, newToken(ident, start, i))
				start = i
			}
			upper++

		default:
			if start < 0 {
				start = i
			} else if upper > 1 {
				// HTTPServer: the S belongs to the next word
				tokens = append(tokens, newToken(ident, start, i-1))
				start = i - 1
			}
			upper = 0
		}
	}

	if start >= 0 {
		tokens = append(tokens, newToken(ident, start, len(ident)))
	}

	return tokens
}

// Extract returns the words of a raw doc comment, markers included.
//
// Comment markers and indentation are stripped line by line, then every
// maximal run of ASCII letters becomes a token. Everything else is a
// separator, so inline code and URLs are split like ordinary prose.
func Extract(raw string) []Token {
	var tokens []Token

	for lineStart := 0; lineStart < len(raw); {
		lineEnd := strings.IndexByte(raw[lineStart:], '\n')
		if lineEnd < 0 {
			lineEnd = len(raw)
		} else {
			lineEnd += lineStart
		}

		from, to := commentBody(raw, lineStart, lineEnd)
		tokens = appendLetterRuns(tokens, raw, from, to)

		lineStart = lineEnd + 1
	}

	return tokens
}

// commentBody narrows raw[start:end] to the text after comment markers
// and indentation.
func commentBody(raw string, start, end int) (int, int) {
	start = skipSpace(raw, start, end)

	switch {
	case strings.HasPrefix(raw[start:end], "//"):
		start += 2
	case strings.HasPrefix(raw[start:end], "/*"):
		start += 2
	case strings.HasPrefix(raw[start:end], "*") && !strings.HasPrefix(raw[start:end], "*/"):
		start++
	}

	if strings.HasSuffix(raw[start:end], "*/") {
		end -= 2
	}

	return skipSpace(raw, start, end), end
}

func skipSpace(s string, start, end int) int {
	for start < end && (s[start] == ' ' || s[start] == '\t' || s[start] == '\r') {
		start++
	}

	return start
}

func appendLetterRuns(tokens []Token, s string, from, to int) []Token {
	start := -1

	for i := from; i < to; i++ {
		if isLetter(s[i]) {
			if start < 0 {
				start = i
			}

			continue
		}

		if start >= 0 {
			tokens = append(tokens, newToken(s, start, i))
			start = -1
		}
	}

	if start >= 0 {
		tokens = append(tokens, newToken(s, start, to))
	}

	return tokens
}
