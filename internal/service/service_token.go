package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/auth-gateway/internal/config"
	"github.com/MKhiriev/auth-gateway/internal/utils"
	"github.com/MKhiriev/auth-gateway/models"
)

// tokenIssuer signs HS256 session tokens valid for ttl.
type tokenIssuer struct {
	// signKey is the HMAC secret. It is never logged.
	signKey string

	// issuer is the "iss" claim of every token.
	issuer string

	ttl time.Duration
	now func() time.Time
}

// NewTokenIssuer builds a TokenIssuer from cfg. The sign key is required.
func NewTokenIssuer(cfg config.Auth) (TokenIssuer, error) {
	if cfg.TokenSignKey == "" {
		return nil, ErrMissingSignKey
	}

	return &tokenIssuer{
		signKey: cfg.TokenSignKey,
		issuer:  cfg.TokenIssuer,
		ttl:     models.SessionTTL,
		now:     time.Now,
	}, nil
}

// Issue signs a token whose claims mirror user.
func (t *tokenIssuer) Issue(ctx context.Context, user models.BackendUser) (models.Token, error) {
	claims := models.SessionClaims{
		UserID:   user.UserID,
		Email:    user.Email,
		UserName: user.UserName,
	}

	token, err := utils.GenerateSessionToken(claims, t.issuer, t.ttl, t.signKey, t.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
