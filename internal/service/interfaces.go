package service

import (
	"context"

	"github.com/MKhiriev/auth-gateway/models"
)

// AuthService orchestrates login and registration on top of the sanitizer,
// the password hasher, the token issuer and the user service client.
type AuthService interface {
	// Login authenticates the caller and issues a session token.
	//
	// Unknown users and wrong passwords both yield ErrInvalidCredentials.
	// Rejected input yields a *validators.ValidationError.
	Login(ctx context.Context, input models.LoginInput) (models.Session, error)

	// Register creates a new account and returns the stored user name.
	Register(ctx context.Context, input models.RegistrationInput) (string, error)
}

// CatalogService exposes read-only product catalog data.
type CatalogService interface {
	// ListCategories returns all product categories, never nil on success.
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// TokenIssuer signs session tokens for authenticated users.
type TokenIssuer interface {
	Issue(ctx context.Context, user models.BackendUser) (models.Token, error)
}
