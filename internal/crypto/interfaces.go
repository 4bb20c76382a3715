// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto hashes and verifies user passwords.
//
// Hashes are Argon2 digests encoded as self-describing PHC strings:
//
//	$argon2id$v=19$m=19456,t=2,p=1$<salt>$<hash>
//
// Salt and hash are unpadded standard base64. Verification reads the
// variant and cost parameters from the stored string, so records created
// with older parameters keep verifying after the defaults change.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher produces and checks password hashes.
// Implementations must be safe for concurrent use.
type PasswordHasher interface {
	// Hash derives a new PHC-encoded hash of password with a fresh random salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches the PHC-encoded hash.
	// A mismatch is (false, nil); an error means the hash could not be read.
	Verify(encodedHash, password string) (bool, error)
}
