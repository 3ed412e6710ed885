// Package misspelled has misspelled words.
package misspelled

// Server serves the clinet.
type Server struct{}

// Sevrer reads the data.
func Sevrer() {}
