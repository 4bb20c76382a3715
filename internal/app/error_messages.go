// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// auth gateway handlers, services and validators.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place ensures consistent wording throughout the API. None of them
// reveal internal details such as backend error chains or whether an account
// exists.
package app

// Success messages.
const (
	MsgLoginSuccessful        = "Login successful"
	MsgRegistrationSuccessful = "Registration successful"
)

// Validation messages returned with HTTP 400.
const (
	// MsgAllFieldsRequired is returned when any registration field is
	// missing or blank after trimming.
	MsgAllFieldsRequired = "All fields must be filled"

	// MsgEmailAndPasswordRequired is returned when a login request lacks an
	// email or a password.
	MsgEmailAndPasswordRequired = "Email and password are required"

	// MsgInvalidEmailAddress is returned when a registration email does not
	// match the email grammar.
	MsgInvalidEmailAddress = "Invalid email address format"

	// MsgInvalidEmail is returned when a login email does not match the
	// email grammar.
	MsgInvalidEmail = "Invalid email format"

	// MsgInvalidPhone is returned when a phone number matches none of the
	// accepted local or international forms.
	MsgInvalidPhone = "Phone number must be in format 254XXXXXXXXX, 07XXXXXXXX, or 7XXXXXXXX"

	// MsgWeakPassword is returned when a registration password is shorter
	// than the minimum length.
	MsgWeakPassword = "Password must be at least 12 characters long"

	// MsgSuspiciousInput is returned when a registration text field
	// contains markup or SQL meta-syntax.
	MsgSuspiciousInput = "Invalid characters detected in input"

	// MsgSuspiciousEmail is returned when a login email contains markup or
	// SQL meta-syntax.
	MsgSuspiciousEmail = "Invalid characters detected in email"

	// MsgInvalidRequestBody is returned when the request body is not valid
	// JSON or exceeds the size limit.
	MsgInvalidRequestBody = "Invalid request body"
)

// Failure messages.
const (
	// MsgInvalidCredentials is returned for both an unknown email and a
	// wrong password so the two cases are indistinguishable to the caller.
	MsgInvalidCredentials = "Invalid credentials"

	MsgLoginFailed        = "Login failed"
	MsgRegistrationFailed = "Registration failed"
	MsgCategoriesFailed   = "Internal server error while fetching categories"

	MsgNotFound            = "Not found"
	MsgMethodNotAllowed    = "Method not allowed"
	MsgInternalServerError = "Internal server error"
)
