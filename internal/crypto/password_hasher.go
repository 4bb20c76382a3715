// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	variantArgon2id = "argon2id"
	variantArgon2i  = "argon2i"

	saltLength = 16

	// upper bounds for parameters read from a stored hash
	maxMemory  = 1024 * 1024 // 1 GiB in KiB
	maxTime    = 16
	maxThreads = 64
	maxKeyLen  = 128
)

// DecoyHash is a well-formed hash that no password matches. Verifying
// against it costs as much as verifying against a real record, which keeps
// the unknown-user path as slow as the wrong-password path.
const DecoyHash = "$argon2id$v=19$m=19456,t=2,p=1$Z2F0ZXdheWRlY295c2FsdA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// argon2Params are the cost parameters of a single hash.
type argon2Params struct {
	memory  uint32
	time    uint32
	threads uint8
	keyLen  uint32
}

// argon2Hasher is the private implementation of [PasswordHasher].
type argon2Hasher struct {
	// parameters used for new hashes
	params argon2Params
}

// NewPasswordHasher constructs a [PasswordHasher] producing Argon2id hashes
// with the OWASP minimum configuration:
//   - memory cost: 19 MiB
//   - time cost:   2 iterations
//   - parallelism: 1 lane
//   - key length:  32 bytes
func NewPasswordHasher() PasswordHasher {
	return &argon2Hasher{
		params: argon2Params{
			memory:  19 * 1024,
			time:    2,
			threads: 1,
			keyLen:  32,
		},
	}
}

// Hash implements [PasswordHasher].
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	p := h.params
	key := argon2.IDKey([]byte(password), salt, p.time, p.memory, p.threads, p.keyLen)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		variantArgon2id,
		argon2.Version,
		p.memory, p.time, p.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify implements [PasswordHasher]. The comparison is constant-time.
func (h *argon2Hasher) Verify(encodedHash, password string) (bool, error) {
	variant, params, salt, key, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}

	var candidate []byte
	switch variant {
	case variantArgon2id:
		candidate = argon2.IDKey([]byte(password), salt, params.time, params.memory, params.threads, params.keyLen)
	case variantArgon2i:
		candidate = argon2.Key([]byte(password), salt, params.time, params.memory, params.threads, params.keyLen)
	}

	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

// decodeHash splits a PHC string into its parts:
// "", variant, "v=19", "m=..,t=..,p=..", salt, hash.
func decodeHash(encodedHash string) (string, argon2Params, []byte, []byte, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" {
		return "", argon2Params{}, nil, nil, ErrInvalidHash
	}

	variant := parts[1]
	if variant != variantArgon2id && variant != variantArgon2i {
		return "", argon2Params{}, nil, nil, fmt.Errorf("%w: unsupported variant %q", ErrInvalidHash, variant)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return "", argon2Params{}, nil, nil, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	if version != argon2.Version {
		return "", argon2Params{}, nil, nil, fmt.Errorf("%w: got %d", ErrIncompatibleVersion, version)
	}

	var params argon2Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads); err != nil {
		return "", argon2Params{}, nil, nil, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}

	salt, err := decodeBase64(parts[4])
	if err != nil || len(salt) == 0 {
		return "", argon2Params{}, nil, nil, fmt.Errorf("%w: bad salt", ErrInvalidHash)
	}

	key, err := decodeBase64(parts[5])
	if err != nil || len(key) == 0 {
		return "", argon2Params{}, nil, nil, fmt.Errorf("%w: bad hash", ErrInvalidHash)
	}
	params.keyLen = uint32(len(key))

	if !params.plausible() {
		return "", argon2Params{}, nil, nil, fmt.Errorf("%w: parameters out of range", ErrInvalidHash)
	}

	return variant, params, salt, key, nil
}

// decodeBase64 accepts both padded and unpadded standard base64.
func decodeBase64(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
}

func (p argon2Params) plausible() bool {
	return p.memory >= 8*uint32(p.threads) && p.memory <= maxMemory &&
		p.time >= 1 && p.time <= maxTime &&
		p.threads >= 1 && p.threads <= maxThreads &&
		p.keyLen >= 4 && p.keyLen <= maxKeyLen
}
