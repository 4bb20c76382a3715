package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL is the lifetime of an issued session token and of the cookie
// carrying it.
const SessionTTL = 7 * 24 * time.Hour

// SessionClaims is the claim set embedded into every session token.
//
// The custom claims mirror the authenticated identity; the registered
// claims carry sub (the user ID), iss, iat and exp.
type SessionClaims struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	UserName string `json:"userName"`

	jwt.RegisteredClaims
}

// Token wraps a signed session token together with the claims it was
// signed with.
type Token struct {
	// Claims holds the identity and registered claims of the token.
	Claims SessionClaims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// ExpiresAt is the moment the token stops being valid.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
