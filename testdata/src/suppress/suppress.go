// Package suppress holds ignored names.
package suppress

// Srever is the servr.
//
//spellck:ignore
type Srever struct{}

// Clinet is the clent. // want "misspelled word: clent"
//
//spellck:ignore ident
type Clinet struct{}

// Conection is the conection of the servr.
//
//spellck:ignore doc
type Conection struct{} // want "misspelled word: conection"

// Readr reads the dat.
//
//spellck:ignore doc - the doc is fine
type Readr struct{} // want "misspelled word: readr"

// Strat strats.
//
//spellck:ignore ident,doc
func Strat() {}

type Server struct {
	//spellck:ignore
	Adress string
}

type Options struct {
	Retyr int //spellck:ignore
	Kindd int // want "misspelled word: kindd"
}

//spellck:ignore // want "unused spellck:ignore directive"

func Start() {}

//spellck:ignore doc // want "unused spellck:ignore directive for target\\(s\\): doc"
func Stop() {}

//spellck:ignore name // want "unused spellck:ignore directive for target\\(s\\): name"
func Run() {}

func run() {
	//spellck:ignore // want "unused spellck:ignore directive"
	_ = 1
}
