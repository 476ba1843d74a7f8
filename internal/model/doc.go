// Package model defines the domain types and value objects for the
// zoopage CLI.
//
// All entities (Animal, Error) are transient: they are built fresh from the
// input data file on every run and discarded once the page or report has
// been written. There is no persistent state.
//
// The package also defines an error kind (ErrorKind) and a custom error
// type (Error) so that callers can tell a missing resource apart from
// malformed data or a generic I/O failure.
package model
