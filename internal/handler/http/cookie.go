package http

import (
	"net/http"

	"github.com/MKhiriev/auth-gateway/internal/config"
	"github.com/MKhiriev/auth-gateway/models"
)

// sessionCookieName is the name of the cookie carrying the session token.
const sessionCookieName = "jwt"

// cookieSettings holds the deployment-dependent attributes of the session
// cookie.
type cookieSettings struct {
	domain   string
	secure   bool
	sameSite http.SameSite
}

// newCookieSettings forces Secure and SameSite=Strict in production; other
// modes relax them to Lax over plain HTTP so local front ends keep working.
func newCookieSettings(cfg config.StructuredConfig) cookieSettings {
	if cfg.App.IsProduction() {
		return cookieSettings{
			domain:   cfg.Server.CookieDomain,
			secure:   true,
			sameSite: http.SameSiteStrictMode,
		}
	}

	return cookieSettings{
		domain:   cfg.Server.CookieDomain,
		secure:   false,
		sameSite: http.SameSiteLaxMode,
	}
}

// sessionCookie builds the HTTP-only cookie delivering token. Its lifetime
// matches the token's.
func (s cookieSettings) sessionCookie(token models.Token) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.String(),
		Path:     "/",
		Domain:   s.domain,
		Expires:  token.ExpiresAt,
		MaxAge:   int(models.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: s.sameSite,
	}
}
