// Package clean has no misspelled words.
package clean

// Server serves the client.
type Server struct{}
