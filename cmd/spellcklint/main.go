// Command spellcklint runs the spellck analyzer as a vet tool:
//
//	SPELLCK_LINT_DICT=words.txt go vet -vettool=$(which spellcklint) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/mpyw/spellck"
)

func main() {
	singlechecker.Main(spellck.Analyzer)
}
