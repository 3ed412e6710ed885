// Package inlinewords holds names from the words list.
package inlinewords

//spellck:words frobnicate Grpc

// Frobnicate runs the server.
func Frobnicate() {}

// GrpcServer is the grpc server.
type GrpcServer struct{}

// Quux is not in any list.
func Quux() {} // want "misspelled word: quux"
