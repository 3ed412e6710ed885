package generated

// Helo is not a wrod. // want "misspelled word: wrod"
func Helo() {} // want "misspelled word: helo"
