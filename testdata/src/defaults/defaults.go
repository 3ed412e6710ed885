// Package defaults uses the built in word list.
package defaults

// Server returns the first value from the list.
type Server struct{}

// Wrold is not a wrod. // want "misspelled word: wrod"
func Wrold() {} // want "misspelled word: wrold"
