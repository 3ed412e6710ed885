// Command spellck spell checks the exported identifiers and doc comments
// of Go source files.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
