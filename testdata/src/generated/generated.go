// Code generated by hand for the spelling check. DO NOT EDIT.

// Package generated is never checked.
package generated

// Wrold is skipped.
func Wrold() {}
