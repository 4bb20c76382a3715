// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegistrationInput is the raw, untrusted registration payload decoded from
// the request body. It lives only for the duration of a single request.
type RegistrationInput struct {
	FullName     string `json:"fullName" validate:"required"`
	UserName     string `json:"userName" validate:"required"`
	EmailAddress string `json:"emailAddress" validate:"required"`
	PhoneNumber  string `json:"phoneNumber" validate:"required"`
	Password     string `json:"password" validate:"required"`
}

// LoginInput is the raw, untrusted login payload decoded from the request body.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SanitizedRegistration is the output of the input sanitizer for a
// registration request.
//
// Text fields are trimmed, free of markup and denylisted SQL tokens.
// EmailAddress is normalized and PhoneNumber is in canonical 254XXXXXXXXX
// form. Password is trimmed only; it is never passed through text
// transforms because it is hashed, not displayed.
type SanitizedRegistration struct {
	FullName     string
	UserName     string
	EmailAddress string
	PhoneNumber  string
	Password     string
}

// SanitizedLogin is the output of the input sanitizer for a login request.
type SanitizedLogin struct {
	Email    string
	Password string
}

// BackendUser is the read-only view of a user record returned by the user
// service lookup. HashedPassword is a self-describing PHC string.
type BackendUser struct {
	UserID         string
	Email          string
	UserName       string
	HashedPassword string
}

// NewUser is the payload sent to the user service when creating an account.
type NewUser struct {
	FullName       string
	UserName       string
	EmailAddress   string
	PhoneNumber    string
	HashedPassword string
}

// Session is the result of a successful login: the identity echoed back to
// the client and the token that goes into the session cookie.
type Session struct {
	Email    string
	UserName string
	Token    Token
}
