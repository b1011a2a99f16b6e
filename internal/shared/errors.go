package shared

import "errors"

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// cli errors
const (
	ErrorCreateFile = Error("could not create the file")
	ErrorEncodeFile = Error("could not encode to file")
)

// repository errors. A repository reports exactly one of these two;
// callers classify with errors.Is.
const (
	ErrMissing     = Error("no element")
	ErrServerError = Error("data store disconnected")
)

// Kind reduces a repository error to its taxonomy member.
// Anything that is not ErrMissing counts as ErrServerError; nil stays nil.
func Kind(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrMissing):
		return ErrMissing
	default:
		return ErrServerError
	}
}
