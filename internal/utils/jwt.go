package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/auth-gateway/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken signs claims into an HMAC-SHA256 session token.
//
// The registered claims are filled in from the parameters:
//   - Issuer    (iss): issuer
//   - Subject   (sub): claims.UserID
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus ttl
//
// All of issuer, ttl and signKey are required. Any registered claims already
// present in claims are overwritten.
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken(claims, "auth-gateway", models.SessionTTL, key, time.Now())
func GenerateSessionToken(claims models.SessionClaims, issuer string, ttl time.Duration, signKey string, now time.Time) (models.Token, error) {
	if issuer == "" || ttl == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating session token")
	}

	expiresAt := now.Add(ttl)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   claims.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: signed, ExpiresAt: expiresAt}, nil
}

// ParseSessionToken verifies the signature, algorithm, issuer and expiry of
// tokenString and returns its claims.
//
// The gateway only issues session tokens and never verifies them itself.
// This is the verifying side of GenerateSessionToken, for services that share
// the signing key and accept the session cookie.
//
// Only HS256 is accepted; a token signed with any other algorithm is rejected
// before the key is consulted.
func ParseSessionToken(tokenString, signKey, issuer string) (models.SessionClaims, error) {
	claims := models.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.SessionClaims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.SessionClaims{}, errors.New("empty subject error")
	}

	return claims, nil
}
