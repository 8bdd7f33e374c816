package mapper

import "errors"

// Error classification for mapping failures.
//
// Contract violations (bad input shapes, malformed URIs) and dependency
// failures (minting unreachable) both abort the whole mapping call; there
// is no partial-success mode. Missing optional attributes are not errors,
// they simply emit no triples.

// ErrInvalidURI marks a contract violation: the caller supplied a string
// that is not an absolute URI where one is required.
var ErrInvalidURI = errors.New("invalid URI")

// ErrMintFailed marks a dependency failure: the identifier-minting
// capability was unreachable or returned an error. No retry is attempted
// here; retries are the caller's responsibility.
var ErrMintFailed = errors.New("identifier minting failed")

// ErrNilEntity marks a contract violation: a nil entity was passed to a
// mapping operation.
var ErrNilEntity = errors.New("nil entity")

// IsContractViolation reports whether err stems from malformed caller
// input rather than a failed dependency.
func IsContractViolation(err error) bool {
	return errors.Is(err, ErrInvalidURI) || errors.Is(err, ErrNilEntity)
}

// IsDependencyFailure reports whether err stems from the minting
// capability.
func IsDependencyFailure(err error) bool {
	return errors.Is(err, ErrMintFailed)
}
