package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrBackendFailure        = errors.New("backend call failed")
	ErrHashingFailed         = errors.New("password hashing failed")
	ErrCredentialCheckFailed = errors.New("stored credentials could not be checked")
	ErrTokenCreationFailed   = errors.New("token creation failed")

	ErrMissingSignKey        = errors.New("token sign key is not specified")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
