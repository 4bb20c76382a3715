// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/auth-gateway/internal/app"
	"github.com/MKhiriev/auth-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func validRegistration() models.RegistrationInput {
	return models.RegistrationInput{
		FullName:     "Jane Doe",
		UserName:     "jane",
		EmailAddress: "JANE@X.COM",
		PhoneNumber:  "0712345678",
		Password:     "correcthorse1",
	}
}

func requireValidationError(t *testing.T, err error, kind error, field string) *ValidationError {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, kind), "expected %v, got %v", kind, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, field, vErr.Field)
	assert.NotEmpty(t, vErr.Message)
	return vErr
}

// ─────────────────────────────────────────────
// SanitizeRegistration
// ─────────────────────────────────────────────

func TestSanitizeRegistration_Success_Canonicalizes(t *testing.T) {
	s := NewInputSanitizer()

	got, err := s.SanitizeRegistration(context.Background(), validRegistration())
	require.NoError(t, err)

	assert.Equal(t, models.SanitizedRegistration{
		FullName:     "Jane Doe",
		UserName:     "jane",
		EmailAddress: "jane@x.com",
		PhoneNumber:  "254712345678",
		Password:     "correcthorse1",
	}, got)
}

func TestSanitizeRegistration_TrimsEveryField(t *testing.T) {
	s := NewInputSanitizer()
	in := models.RegistrationInput{
		FullName:     "  Jane Doe ",
		UserName:     "\tjane\n",
		EmailAddress: " jane@x.com ",
		PhoneNumber:  " +254 712 345 678 ",
		Password:     "  correcthorse1  ",
	}

	got, err := s.SanitizeRegistration(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", got.FullName)
	assert.Equal(t, "jane", got.UserName)
	assert.Equal(t, "jane@x.com", got.EmailAddress)
	assert.Equal(t, "254712345678", got.PhoneNumber)
	assert.Equal(t, "correcthorse1", got.Password)
}

func TestSanitizeRegistration_PasswordNotTransformed(t *testing.T) {
	s := NewInputSanitizer()
	in := validRegistration()
	in.Password = "<b>'; DROP --x"

	got, err := s.SanitizeRegistration(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "<b>'; DROP --x", got.Password)
}

func TestSanitizeRegistration_MissingField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.RegistrationInput)
		field  string
	}{
		{"full name", func(in *models.RegistrationInput) { in.FullName = "" }, "fullName"},
		{"user name blank", func(in *models.RegistrationInput) { in.UserName = "   " }, "userName"},
		{"email", func(in *models.RegistrationInput) { in.EmailAddress = "" }, "emailAddress"},
		{"phone", func(in *models.RegistrationInput) { in.PhoneNumber = "" }, "phoneNumber"},
		{"password", func(in *models.RegistrationInput) { in.Password = " " }, "password"},
	}

	s := NewInputSanitizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRegistration()
			tt.mutate(&in)

			_, err := s.SanitizeRegistration(context.Background(), in)
			vErr := requireValidationError(t, err, ErrMissingField, tt.field)
			assert.Equal(t, app.MsgAllFieldsRequired, vErr.Message)
		})
	}
}

func TestSanitizeRegistration_WeakPassword_RegardlessOfOtherFields(t *testing.T) {
	s := NewInputSanitizer()
	in := models.RegistrationInput{
		FullName:     "<script>alert(1)</script>",
		EmailAddress: "not-an-email",
		PhoneNumber:  "12",
		Password:     "short1",
	}

	_, err := s.SanitizeRegistration(context.Background(), in)
	vErr := requireValidationError(t, err, ErrWeakPassword, "password")
	assert.Equal(t, app.MsgWeakPassword, vErr.Message)
}

func TestSanitizeRegistration_PasswordLengthCountsCharacters(t *testing.T) {
	s := NewInputSanitizer()

	in := validRegistration()
	in.Password = strings.Repeat("п", MinPasswordLength-1) // two bytes per character
	_, err := s.SanitizeRegistration(context.Background(), in)
	requireValidationError(t, err, ErrWeakPassword, "password")

	in.Password = strings.Repeat("п", MinPasswordLength)
	_, err = s.SanitizeRegistration(context.Background(), in)
	require.NoError(t, err)
}

func TestSanitizeRegistration_InvalidEmail(t *testing.T) {
	s := NewInputSanitizer()
	in := validRegistration()
	in.EmailAddress = "jane.x.com"

	_, err := s.SanitizeRegistration(context.Background(), in)
	vErr := requireValidationError(t, err, ErrInvalidEmail, "emailAddress")
	assert.Equal(t, app.MsgInvalidEmailAddress, vErr.Message)
}

func TestSanitizeRegistration_InvalidPhone(t *testing.T) {
	s := NewInputSanitizer()
	in := validRegistration()
	in.PhoneNumber = "12345"

	_, err := s.SanitizeRegistration(context.Background(), in)
	vErr := requireValidationError(t, err, ErrInvalidPhone, "phoneNumber")
	assert.Equal(t, app.MsgInvalidPhone, vErr.Message)
}

func TestSanitizeRegistration_SuspiciousInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.RegistrationInput)
		field  string
	}{
		{"script tag in full name", func(in *models.RegistrationInput) { in.FullName = "<script>alert(1)</script>" }, "fullName"},
		{"inline tag in user name", func(in *models.RegistrationInput) { in.UserName = `<img src=x onerror=alert(1)>` }, "userName"},
		{"sql keyword in full name", func(in *models.RegistrationInput) { in.FullName = "Jane UNION select" }, "fullName"},
		{"sql comment in user name", func(in *models.RegistrationInput) { in.UserName = "jane--" }, "userName"},
		{"quote in email", func(in *models.RegistrationInput) { in.EmailAddress = "o'neil@x.com" }, "emailAddress"},
		{"statement terminator", func(in *models.RegistrationInput) { in.FullName = "Jane; Doe" }, "fullName"},
		{"block comment", func(in *models.RegistrationInput) { in.UserName = "ja/*ne*/" }, "userName"},
		{"full-width keyword", func(in *models.RegistrationInput) { in.FullName = "ＤＲＯＰ table" }, "fullName"},
	}

	s := NewInputSanitizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRegistration()
			tt.mutate(&in)

			_, err := s.SanitizeRegistration(context.Background(), in)
			vErr := requireValidationError(t, err, ErrSuspiciousInput, tt.field)
			assert.Equal(t, app.MsgSuspiciousInput, vErr.Message)
		})
	}
}

func TestSanitizeRegistration_KeywordInsideWordIsAllowed(t *testing.T) {
	s := NewInputSanitizer()
	in := validRegistration()
	in.FullName = "Selectra Dropwell"

	got, err := s.SanitizeRegistration(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "Selectra Dropwell", got.FullName)
}

func TestSanitizeRegistration_PlainAmpersandAllowed(t *testing.T) {
	s := NewInputSanitizer()
	in := validRegistration()
	in.FullName = "Jane & John"

	got, err := s.SanitizeRegistration(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "Jane & John", got.FullName)
}

// ─────────────────────────────────────────────
// SanitizeLogin
// ─────────────────────────────────────────────

func TestSanitizeLogin_Success(t *testing.T) {
	s := NewInputSanitizer()

	got, err := s.SanitizeLogin(context.Background(), models.LoginInput{
		Email:    "  Jane+Shop@X.com ",
		Password: " pw ",
	})
	require.NoError(t, err)
	assert.Equal(t, models.SanitizedLogin{Email: "jane@x.com", Password: "pw"}, got)
}

func TestSanitizeLogin_Missing(t *testing.T) {
	s := NewInputSanitizer()

	_, err := s.SanitizeLogin(context.Background(), models.LoginInput{Email: "jane@x.com"})
	vErr := requireValidationError(t, err, ErrMissingField, "password")
	assert.Equal(t, app.MsgEmailAndPasswordRequired, vErr.Message)

	_, err = s.SanitizeLogin(context.Background(), models.LoginInput{Password: "secret"})
	requireValidationError(t, err, ErrMissingField, "email")
}

func TestSanitizeLogin_InvalidEmail(t *testing.T) {
	s := NewInputSanitizer()

	_, err := s.SanitizeLogin(context.Background(), models.LoginInput{Email: "jane", Password: "secret"})
	vErr := requireValidationError(t, err, ErrInvalidEmail, "email")
	assert.Equal(t, app.MsgInvalidEmail, vErr.Message)
}

func TestSanitizeLogin_Injection(t *testing.T) {
	s := NewInputSanitizer()

	for _, email := range []string{"' OR 1=1 --", "<script>x</script>@x.com", "a@x.com; DROP TABLE users"} {
		_, err := s.SanitizeLogin(context.Background(), models.LoginInput{Email: email, Password: "secret"})
		vErr := requireValidationError(t, err, ErrSuspiciousInput, "email")
		assert.Equal(t, app.MsgSuspiciousEmail, vErr.Message)
	}
}

func TestSanitizeLogin_NoPasswordLengthRule(t *testing.T) {
	s := NewInputSanitizer()

	_, err := s.SanitizeLogin(context.Background(), models.LoginInput{Email: "jane@x.com", Password: "x"})
	require.NoError(t, err)
}
