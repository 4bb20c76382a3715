// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/auth-gateway/internal/app"
	"github.com/MKhiriev/auth-gateway/internal/logger"
	"github.com/MKhiriev/auth-gateway/models"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

// MinPasswordLength is the minimum number of characters in a registration
// password.
const MinPasswordLength = 12

// JSON names of the validated fields, used in ValidationError.Field.
const (
	fieldFullName     = "fullName"
	fieldUserName     = "userName"
	fieldEmailAddress = "emailAddress"
	fieldPhoneNumber  = "phoneNumber"
	fieldPassword     = "password"
	fieldEmail        = "email"
)

type inputSanitizer struct {
	validate *validator.Validate
	markup   *markupFilter
}

// NewInputSanitizer builds an [InputSanitizer]. The returned value holds no
// per-request state.
func NewInputSanitizer() InputSanitizer {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	return &inputSanitizer{
		validate: validate,
		markup:   newMarkupFilter(),
	}
}

// SanitizeRegistration runs the registration checks in order:
// password length, required fields, markup, SQL meta-syntax, email grammar
// and phone shape. The first failing check wins.
func (s *inputSanitizer) SanitizeRegistration(ctx context.Context, input models.RegistrationInput) (models.SanitizedRegistration, error) {
	log := logger.FromContext(ctx)

	trimmed := models.RegistrationInput{
		FullName:     normalizeText(input.FullName),
		UserName:     normalizeText(input.UserName),
		EmailAddress: normalizeText(input.EmailAddress),
		PhoneNumber:  normalizeText(input.PhoneNumber),
		Password:     strings.TrimSpace(input.Password),
	}

	// the length rule applies whenever a password is present, whatever the
	// state of the other fields
	if trimmed.Password != "" && utf8.RuneCountInString(trimmed.Password) < MinPasswordLength {
		return models.SanitizedRegistration{}, s.reject(log, ErrWeakPassword, fieldPassword, app.MsgWeakPassword)
	}

	if field, err := s.missingField(trimmed); err != nil {
		return models.SanitizedRegistration{}, err
	} else if field != "" {
		return models.SanitizedRegistration{}, s.reject(log, ErrMissingField, field, app.MsgAllFieldsRequired)
	}

	textFields := []struct{ name, value string }{
		{fieldFullName, trimmed.FullName},
		{fieldUserName, trimmed.UserName},
		{fieldEmailAddress, trimmed.EmailAddress},
	}
	for _, f := range textFields {
		if s.markup.containsMarkup(f.value) || containsSQLMeta(f.value) {
			return models.SanitizedRegistration{}, s.reject(log, ErrSuspiciousInput, f.name, app.MsgSuspiciousInput)
		}
	}

	if !s.isEmail(trimmed.EmailAddress) {
		return models.SanitizedRegistration{}, s.reject(log, ErrInvalidEmail, fieldEmailAddress, app.MsgInvalidEmailAddress)
	}

	phone, ok := NormalizePhone(trimmed.PhoneNumber)
	if !ok {
		return models.SanitizedRegistration{}, s.reject(log, ErrInvalidPhone, fieldPhoneNumber, app.MsgInvalidPhone)
	}

	return models.SanitizedRegistration{
		FullName:     trimmed.FullName,
		UserName:     trimmed.UserName,
		EmailAddress: NormalizeEmail(trimmed.EmailAddress),
		PhoneNumber:  phone,
		Password:     trimmed.Password,
	}, nil
}

// SanitizeLogin runs the login checks in order: required fields, markup and
// SQL meta-syntax in the email, and email grammar. There is no password
// length rule at login.
func (s *inputSanitizer) SanitizeLogin(ctx context.Context, input models.LoginInput) (models.SanitizedLogin, error) {
	log := logger.FromContext(ctx)

	trimmed := models.LoginInput{
		Email:    normalizeText(input.Email),
		Password: strings.TrimSpace(input.Password),
	}

	if field, err := s.missingField(trimmed); err != nil {
		return models.SanitizedLogin{}, err
	} else if field != "" {
		return models.SanitizedLogin{}, s.reject(log, ErrMissingField, field, app.MsgEmailAndPasswordRequired)
	}

	if s.markup.containsMarkup(trimmed.Email) || containsSQLMeta(trimmed.Email) {
		return models.SanitizedLogin{}, s.reject(log, ErrSuspiciousInput, fieldEmail, app.MsgSuspiciousEmail)
	}

	if !s.isEmail(trimmed.Email) {
		return models.SanitizedLogin{}, s.reject(log, ErrInvalidEmail, fieldEmail, app.MsgInvalidEmail)
	}

	return models.SanitizedLogin{
		Email:    NormalizeEmail(trimmed.Email),
		Password: trimmed.Password,
	}, nil
}

// missingField returns the JSON name of the first field failing its
// `required` tag, or "" when every field is present.
func (s *inputSanitizer) missingField(payload any) (string, error) {
	err := s.validate.Struct(payload)
	if err == nil {
		return "", nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fieldErrs[0].Field(), nil
	}

	return "", fmt.Errorf("error validating required fields: %w", err)
}

func (s *inputSanitizer) isEmail(address string) bool {
	return s.validate.Var(address, "email") == nil
}

func (s *inputSanitizer) reject(log *logger.Logger, kind error, field, message string) *ValidationError {
	log.Debug().Str("field", field).Str("reason", kind.Error()).Msg("input rejected")
	return newValidationError(kind, field, message)
}

// normalizeText trims the value and folds Unicode compatibility forms
// (full-width letters, ligatures) into their canonical equivalents so the
// markup and SQL checks see what a downstream consumer would see.
func normalizeText(value string) string {
	return strings.TrimSpace(norm.NFKC.String(value))
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}
