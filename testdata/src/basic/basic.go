// Package basic holds exported names for the spelling check.
package basic

// Server serves the client.
type Server struct {
	// Name is the name of the server.
	Name string

	// Adress is where it lisens. // want "misspelled word: lisens"
	Adress string // want "misspelled word: adress"

	// Options set on the server.
	Options struct {
		// Retrys is the retry count.
		Retrys int // want "misspelled word: retrys"
	}

	reciever string
}

// Serve runs the server.
func (s *Server) Serve() error { return nil }

// Strat strats the server. // want "misspelled word: strats"
func (s *Server) Strat() {} // want "misspelled word: strat"

type conection struct{}

// Clse would be checked if the type were exported.
func (c *conection) Clse() {}

// NewHTTPServer returns a server.
func NewHTTPServer() *Server { return &Server{} }

// NewHTTPSevrer returns a server.
func NewHTTPSevrer() *Server { return &Server{} } // want "misspelled word: sevrer"

// ReadIOError returns an error.
func ReadIOError() error { return nil }

func helperFnuction() {}

// Reader reads the data.
type Reader interface {
	// Read reads the data.
	Read(p []byte) (int, error)

	// Raed reads the dat again. // want "misspelled word: dat"
	Raed() // want "misspelled word: raed"

	hidden()
}

// Kinds of servr. // want "misspelled word: servr"
const (
	// KindHTTP is the HTTP kind.
	KindHTTP = iota

	// KindGRCP is the kind for the client.
	KindGRCP // want "misspelled word: grcp"

	kindIntrnal
)

// Version is the version of the server, teh latest one. // want "misspelled word: teh"
var Version = "v1"

// DefaultSrever is the default value.
var DefaultSrever, DefaultClient = 1, 2 // want "misspelled word: srever"

// ID names the server.
type ID string

// WroldHelo is wrold and helo. // want "misspelled words: wrold, helo"
func WroldHelo() {} // want "misspelled words: wrold, helo"
