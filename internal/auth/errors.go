package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for every login failure. Unknown user
	// and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated is returned for every token failure: malformed, bad
	// signature, expired, or unknown subject.
	ErrUnauthenticated = errors.New("could not validate credentials")
)
