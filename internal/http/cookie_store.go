package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/tokenstore"
)

// cookieTokenStore guarda el token en la cookie del navegador durante un request.
// Lo escrito en el request se ve en lecturas posteriores del mismo request.
type cookieTokenStore struct {
	c          *gin.Context
	policy     tokenstore.CookiePolicy
	value      string
	overridden bool
}

func newCookieTokenStore(c *gin.Context, policy tokenstore.CookiePolicy) *cookieTokenStore {
	return &cookieTokenStore{c: c, policy: policy}
}

func (s *cookieTokenStore) Token(_ context.Context) (string, error) {
	if s.overridden {
		return s.value, nil
	}
	v, err := s.c.Cookie(s.policy.Cookie("").Name)
	if err != nil {
		return "", nil
	}
	return strings.TrimSpace(v), nil
}

func (s *cookieTokenStore) SetToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return s.ClearToken(ctx)
	}
	http.SetCookie(s.c.Writer, s.policy.Cookie(token))
	s.value = token
	s.overridden = true
	return nil
}

func (s *cookieTokenStore) ClearToken(_ context.Context) error {
	http.SetCookie(s.c.Writer, s.policy.Expired())
	s.value = ""
	s.overridden = true
	return nil
}
