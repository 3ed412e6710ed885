package inlinewords

//spellck:words quuz

// Quuz is in the list of the other file, unlike qux. // want "misspelled word: qux"
func Quuz() {}
