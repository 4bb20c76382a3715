package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/auth-gateway/internal/adapter"
	"github.com/MKhiriev/auth-gateway/internal/crypto"
	"github.com/MKhiriev/auth-gateway/internal/logger"
	"github.com/MKhiriev/auth-gateway/internal/metrics"
	"github.com/MKhiriev/auth-gateway/internal/validators"
	"github.com/MKhiriev/auth-gateway/models"
)

const (
	operationLogin    = "login"
	operationRegister = "register"
)

// authService is the concrete implementation of AuthService.
//
// Every field is read-only after construction, so one instance serves all
// requests concurrently.
type authService struct {
	sanitizer validators.InputSanitizer
	hasher    crypto.PasswordHasher
	tokens    TokenIssuer

	// users is the user service client. The gateway stores no credentials
	// of its own.
	users adapter.UserClient

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewAuthService constructs an AuthService from its collaborators.
func NewAuthService(
	sanitizer validators.InputSanitizer,
	hasher crypto.PasswordHasher,
	tokens TokenIssuer,
	users adapter.UserClient,
	m *metrics.Metrics,
	logger *logger.Logger,
) AuthService {
	return &authService{
		sanitizer: sanitizer,
		hasher:    hasher,
		tokens:    tokens,
		users:     users,
		metrics:   m,
		logger:    logger,
	}
}

// Login sanitizes the credentials, looks the account up by email, verifies
// the password against the stored hash and issues a session token.
//
// A missing account still costs one hash verification (against
// crypto.DecoyHash), so response timing does not reveal whether the email
// is registered.
//
// Returns:
//   - *validators.ValidationError if the input is rejected.
//   - ErrInvalidCredentials for an unknown email or a wrong password.
//   - ErrBackendFailure, ErrCredentialCheckFailed or ErrTokenCreationFailed
//     (wrapped with the cause) for everything else.
func (a *authService) Login(ctx context.Context, input models.LoginInput) (models.Session, error) {
	log := logger.FromContext(ctx)

	creds, err := a.sanitizer.SanitizeLogin(ctx, input)
	if err != nil {
		a.metrics.IncAuthAttempt(operationLogin, metrics.OutcomeInvalidInput)
		return models.Session{}, err
	}

	user, err := a.users.LookupUserByEmail(ctx, creds.Email)
	if err != nil {
		if adapter.IsNotFound(err) {
			log.Info().Msg("login attempt for unknown email")
			return models.Session{}, a.rejectCredentials(creds.Password)
		}

		log.Err(err).Msg("user lookup failed")
		a.metrics.IncAuthAttempt(operationLogin, metrics.OutcomeError)
		return models.Session{}, fmt.Errorf("%w: %w", ErrBackendFailure, err)
	}

	if user.Email == "" || user.HashedPassword == "" {
		log.Warn().Str("user_id", user.UserID).Msg("user service returned an incomplete record")
		return models.Session{}, a.rejectCredentials(creds.Password)
	}

	ok, err := a.hasher.Verify(user.HashedPassword, creds.Password)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("stored password hash is unreadable")
		a.metrics.IncAuthAttempt(operationLogin, metrics.OutcomeError)
		return models.Session{}, fmt.Errorf("%w: %w", ErrCredentialCheckFailed, err)
	}
	if !ok {
		log.Info().Str("user_id", user.UserID).Msg("wrong password")
		a.metrics.IncAuthAttempt(operationLogin, metrics.OutcomeInvalidCredentials)
		return models.Session{}, ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(ctx, user)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("error issuing session token")
		a.metrics.IncAuthAttempt(operationLogin, metrics.OutcomeError)
		return models.Session{}, err
	}

	log.Info().Str("user_id", user.UserID).Msg("user logged in")
	a.metrics.IncAuthAttempt(operationLogin, metrics.OutcomeSuccess)

	return models.Session{
		Email:    user.Email,
		UserName: user.UserName,
		Token:    token,
	}, nil
}

// Register sanitizes the registration form, hashes the password and creates
// the account in the user service.
//
// Returns the user name echoed by the user service, or the sanitized one
// when the service echoes nothing.
func (a *authService) Register(ctx context.Context, input models.RegistrationInput) (string, error) {
	log := logger.FromContext(ctx)

	form, err := a.sanitizer.SanitizeRegistration(ctx, input)
	if err != nil {
		a.metrics.IncAuthAttempt(operationRegister, metrics.OutcomeInvalidInput)
		return "", err
	}

	hashedPassword, err := a.hasher.Hash(form.Password)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		a.metrics.IncAuthAttempt(operationRegister, metrics.OutcomeError)
		return "", fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}

	userName, err := a.users.CreateUser(ctx, models.NewUser{
		FullName:       form.FullName,
		UserName:       form.UserName,
		EmailAddress:   form.EmailAddress,
		PhoneNumber:    form.PhoneNumber,
		HashedPassword: hashedPassword,
	})
	if err != nil {
		log.Err(err).Str("user_name", form.UserName).Msg("user creation ended with error")
		a.metrics.IncAuthAttempt(operationRegister, metrics.OutcomeError)
		return "", fmt.Errorf("%w: %w", ErrBackendFailure, err)
	}

	if userName == "" {
		userName = form.UserName
	}

	log.Info().Str("user_name", userName).Msg("user registered")
	a.metrics.IncAuthAttempt(operationRegister, metrics.OutcomeSuccess)

	return userName, nil
}

// rejectCredentials burns one verification against the decoy hash and
// returns ErrInvalidCredentials.
func (a *authService) rejectCredentials(password string) error {
	_, _ = a.hasher.Verify(crypto.DecoyHash, password)
	a.metrics.IncAuthAttempt(operationLogin, metrics.OutcomeInvalidCredentials)
	return ErrInvalidCredentials
}
