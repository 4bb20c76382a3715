package crypto

import "errors"

var (
	// ErrInvalidHash is returned when a stored hash is not a well-formed
	// Argon2 PHC string.
	ErrInvalidHash = errors.New("invalid password hash")

	// ErrIncompatibleVersion is returned when a stored hash was produced by
	// a different Argon2 version.
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)
