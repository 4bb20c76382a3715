// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators turns untrusted registration and login payloads into
// canonical, sanitized values or a typed validation failure.
//
// Core concepts:
//   - InputSanitizer: trims, normalizes and checks every field of a payload
//     in a fixed order and stops at the first failure.
//   - ValidationError: the failure value. It names the offending field,
//     carries a client-safe message and wraps one of the kind sentinels
//     (ErrMissingField, ErrInvalidEmail, ErrInvalidPhone, ErrWeakPassword,
//     ErrSuspiciousInput) so callers can branch with [errors.Is].
//
// The sanitizer is stateless after construction and safe for concurrent use.
package validators

import (
	"context"

	"github.com/MKhiriev/auth-gateway/models"
)

// InputSanitizer validates and canonicalizes untrusted auth payloads.
type InputSanitizer interface {
	// SanitizeRegistration checks a registration payload and returns its
	// canonical form. The returned error is always a *ValidationError.
	SanitizeRegistration(ctx context.Context, input models.RegistrationInput) (models.SanitizedRegistration, error)

	// SanitizeLogin checks a login payload and returns its canonical form.
	// The returned error is always a *ValidationError.
	SanitizeLogin(ctx context.Context, input models.LoginInput) (models.SanitizedLogin, error)
}
