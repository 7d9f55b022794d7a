package tokenstore

import (
	"net/http"
	"time"
)

// CookiePolicy describe como se persiste el token en el navegador.
type CookiePolicy struct {
	Name     string
	Path     string
	MaxAge   time.Duration
	SameSite http.SameSite
	Secure   bool
	HTTPOnly bool
}

// DefaultCookiePolicy: cookie auth_token, 7 dias, SameSite=Lax, Secure solo en produccion.
func DefaultCookiePolicy(production bool) CookiePolicy {
	return CookiePolicy{
		Name:     "auth_token",
		Path:     "/",
		MaxAge:   DefaultMaxAge,
		SameSite: http.SameSiteLaxMode,
		Secure:   production,
		HTTPOnly: true,
	}
}

// Cookie construye la cookie que guarda token.
func (p CookiePolicy) Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     p.name(),
		Value:    token,
		Path:     p.path(),
		MaxAge:   int(p.maxAge().Seconds()),
		SameSite: p.SameSite,
		Secure:   p.Secure,
		HttpOnly: p.HTTPOnly,
	}
}

// Expired construye la cookie que borra el token en el navegador.
func (p CookiePolicy) Expired() *http.Cookie {
	return &http.Cookie{
		Name:     p.name(),
		Value:    "",
		Path:     p.path(),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		SameSite: p.SameSite,
		Secure:   p.Secure,
		HttpOnly: p.HTTPOnly,
	}
}

func (p CookiePolicy) name() string {
	if p.Name == "" {
		return "auth_token"
	}
	return p.Name
}

func (p CookiePolicy) path() string {
	if p.Path == "" {
		return "/"
	}
	return p.Path
}

func (p CookiePolicy) maxAge() time.Duration {
	if p.MaxAge <= 0 {
		return DefaultMaxAge
	}
	return p.MaxAge
}
