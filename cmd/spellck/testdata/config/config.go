// Package config has no misspelled words.
package config

// Frobnicate reads the data.
func Frobnicate() {}

// Wrold reads the data.
func Wrold() {}
