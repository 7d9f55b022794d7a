package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront/internal/api"
	"storefront/internal/domain"
	"storefront/internal/service"
	"storefront/internal/tokenstore"
	"storefront/internal/validation"
)

// SessionHandler expone las operaciones de sesion al navegador; el token vive en la cookie.
type SessionHandler struct {
	logger    *zap.Logger
	client    *api.Client
	validator *validation.Validator
	cookie    tokenstore.CookiePolicy
	loginPath string
	resend    service.ResendLimiter
}

// NewSessionHandler crea una instancia de SessionHandler con dependencias necesarias.
func NewSessionHandler(
	logger *zap.Logger,
	client *api.Client,
	validator *validation.Validator,
	cookie tokenstore.CookiePolicy,
	loginPath string,
) *SessionHandler {
	if loginPath == "" {
		loginPath = "/login"
	}
	return &SessionHandler{
		logger:    logger,
		client:    client,
		validator: validator,
		cookie:    cookie,
		loginPath: loginPath,
	}
}

// WithResendLimiter limita los reenvios de verificacion; nil desactiva el limite.
func (h *SessionHandler) WithResendLimiter(l service.ResendLimiter) *SessionHandler {
	h.resend = l
	return h
}

// requestSession arma un AuthService ligado a la cookie del request. expired pasa a true si el
// backend respondio 401 en algun momento del request.
func (h *SessionHandler) requestSession(c *gin.Context) (*service.AuthService, *atomic.Bool) {
	var expired atomic.Bool
	client := h.client.WithTokenStore(newCookieTokenStore(c, h.cookie))
	client.OnUnauthorized(func(context.Context) {
		expired.Store(true)
	})
	return service.NewAuthService(h.logger, client), &expired
}

// Status maneja GET /session.
func (h *SessionHandler) Status(c *gin.Context) {
	ctx := c.Request.Context()
	svc, _ := h.requestSession(c)
	svc.Restore(ctx)

	resp := gin.H{
		"authenticated": svc.IsAuthenticated(ctx),
		"user":          svc.User(),
		"is_admin":      svc.IsAdmin(),
	}
	if tok, _ := svc.Token(ctx); tok != "" {
		if info, err := tokenstore.Inspect(tok); err == nil && info.ExpiresAt != nil {
			resp["expires_at"] = info.ExpiresAt.UTC().Format(time.RFC3339)
		}
	}
	c.JSON(http.StatusOK, resp)
}

// Login maneja POST /session/login.
func (h *SessionHandler) Login(c *gin.Context) {
	var form validation.LoginForm
	if !h.bindAndValidate(c, &form) {
		return
	}
	ctx := c.Request.Context()
	svc, _ := h.requestSession(c)

	res := svc.Login(ctx, form.Email, form.Password)
	if !res.Success {
		c.JSON(failureStatus(res.Err, http.StatusUnauthorized), res)
		return
	}
	c.JSON(http.StatusOK, domain.Ok(*svc.User()))
}

// RegisterPersonal maneja POST /session/register/personal.
func (h *SessionHandler) RegisterPersonal(c *gin.Context) {
	var form validation.PersonalSignUpForm
	if !h.bindAndValidate(c, &form) {
		return
	}
	h.register(c, form.RegisterInput())
}

// RegisterBusiness maneja POST /session/register/business.
func (h *SessionHandler) RegisterBusiness(c *gin.Context) {
	var form validation.BusinessSignUpForm
	if !h.bindAndValidate(c, &form) {
		return
	}
	h.register(c, form.RegisterInput())
}

func (h *SessionHandler) register(c *gin.Context, in domain.RegisterInput) {
	svc, _ := h.requestSession(c)
	res := svc.Register(c.Request.Context(), in)
	if !res.Success {
		c.JSON(failureStatus(res.Err, http.StatusBadRequest), res)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// Logout maneja POST /session/logout.
func (h *SessionHandler) Logout(c *gin.Context) {
	svc, _ := h.requestSession(c)
	svc.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me maneja GET /session/me.
func (h *SessionHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()
	svc, _ := h.requestSession(c)
	if err := svc.FetchUser(ctx); err != nil && !api.IsUnauthorized(err) {
		h.logger.Warn("fetch user failed", zap.Error(err))
	}
	user := svc.User()
	if user == nil {
		h.unauthorized(c)
		return
	}
	c.JSON(http.StatusOK, domain.Ok(*user))
}

// UpdateMe maneja PUT /session/me.
func (h *SessionHandler) UpdateMe(c *gin.Context) {
	var upd domain.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		h.logger.Warn("invalid update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, domain.Fail[domain.User]("invalid request"))
		return
	}
	svc, expired := h.requestSession(c)
	res := svc.UpdateMe(c.Request.Context(), upd)
	if expired.Load() {
		h.unauthorized(c)
		return
	}
	if !res.Success {
		c.JSON(failureStatus(res.Err, http.StatusBadRequest), res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Refresh maneja POST /session/refresh.
func (h *SessionHandler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()
	svc, _ := h.requestSession(c)
	if tok, _ := svc.Token(ctx); tok == "" {
		h.unauthorized(c)
		return
	}
	if err := svc.RefreshToken(ctx); err != nil {
		h.logger.Info("refresh rejected", zap.Error(err))
		h.unauthorized(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// VerifyEmail maneja POST /session/verify-email.
func (h *SessionHandler) VerifyEmail(c *gin.Context) {
	var req struct {
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Token) == "" {
		c.JSON(http.StatusBadRequest, domain.Fail[domain.Message]("invalid request"))
		return
	}
	svc, _ := h.requestSession(c)
	res := svc.VerifyEmail(c.Request.Context(), req.Token)
	if !res.Success {
		c.JSON(failureStatus(res.Err, http.StatusBadRequest), res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ResendVerification maneja POST /session/resend-verification.
func (h *SessionHandler) ResendVerification(c *gin.Context) {
	var form validation.ForgotPasswordForm
	if !h.bindAndValidate(c, &form) {
		return
	}
	if h.resend != nil && !h.resend.Allow(c.Request.Context(), form.Email) {
		c.JSON(http.StatusTooManyRequests, domain.Fail[domain.Message]("too many verification requests, try again later"))
		return
	}
	svc, _ := h.requestSession(c)
	res := svc.ResendVerification(c.Request.Context(), form.Email)
	if !res.Success {
		c.JSON(failureStatus(res.Err, http.StatusBadRequest), res)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *SessionHandler) bindAndValidate(c *gin.Context, form any) bool {
	if err := c.ShouldBind(form); err != nil {
		h.logger.Warn("invalid session request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return false
	}
	if err := h.validator.Validate(form); err != nil {
		var fields validation.FieldErrors
		if errors.As(err, &fields) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "validation failed", "fields": fields})
			return false
		}
		h.logger.Error("validate form", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not validate request"})
		return false
	}
	return true
}

// failureStatus traduce la causa de un fallo a status HTTP: los 4xx del backend se reenvian,
// sus 5xx y los errores de transporte son 502. Sin causa (rechazo local) se usa fallback.
func failureStatus(err error, fallback int) int {
	if err == nil {
		return fallback
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return apiErr.StatusCode
		}
		return http.StatusBadGateway
	}
	if errors.Is(err, service.ErrAccountKindConflict) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}

// unauthorized redirige al login a los navegadores y responde 401 al resto.
func (h *SessionHandler) unauthorized(c *gin.Context) {
	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.Redirect(http.StatusFound, h.loginPath)
		return
	}
	c.JSON(http.StatusUnauthorized, domain.Fail[domain.User]("not authenticated"))
}
