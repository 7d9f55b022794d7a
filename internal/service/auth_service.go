package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"storefront/internal/api"
	"storefront/internal/domain"
	"storefront/internal/tokenstore"
)

const (
	msgRegisterFailed     = "Registration failed. Please try again."
	msgLoginFailed        = "Login failed. Please check your credentials."
	msgUpdateFailed       = "Profile update failed. Please try again."
	msgVerifyFailed       = "Email verification failed."
	msgResendFailed       = "Failed to resend verification email."
	msgAccountKindInvalid = "An account has either a shipping address or company data, not both."
)

var (
	ErrAccountKindConflict = errors.New("shipping and company data are mutually exclusive")
	ErrEmptyAccessToken    = errors.New("empty access token")
)

// AuthService implementa el ciclo de vida de la sesion: Anonimo -> Autenticado -> Anonimo.
// Ninguna operacion propaga errores al llamador como fallo fatal; los 401 y los refresh
// fallidos limpian la sesion como efecto secundario.
type AuthService struct {
	logger *zap.Logger
	client *api.Client
	tokens tokenstore.TokenStore
	state  *SessionState
}

// NewAuthService liga el servicio al cliente: cualquier 401 del cliente borra tambien el perfil.
func NewAuthService(logger *zap.Logger, client *api.Client) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &AuthService{
		logger: logger,
		client: client,
		tokens: client.Tokens(),
		state:  NewSessionState(),
	}
	client.OnUnauthorized(func(context.Context) {
		s.state.Clear()
	})
	return s
}

// User devuelve una copia del perfil actual o nil.
func (s *AuthService) User() *domain.User {
	return s.state.User()
}

// Token devuelve el bearer token persistido ("" sin sesion).
func (s *AuthService) Token(ctx context.Context) (string, error) {
	return s.tokens.Token(ctx)
}

// IsAuthenticated requiere token y perfil.
func (s *AuthService) IsAuthenticated(ctx context.Context) bool {
	return s.token(ctx) != "" && s.state.User() != nil
}

// FullName devuelve "" sin sesion.
func (s *AuthService) FullName() string {
	u := s.state.User()
	if u == nil {
		return ""
	}
	return u.FullName()
}

func (s *AuthService) IsAdmin() bool {
	u := s.state.User()
	return u != nil && u.IsAdmin()
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	*shippingFields
	*companyFields
}

type shippingFields struct {
	ShippingStreet     string  `json:"shipping_street"`
	ShippingCity       string  `json:"shipping_city,omitempty"`
	ShippingPostalCode string  `json:"shipping_postal_code,omitempty"`
	ShippingCountry    string  `json:"shipping_country,omitempty"`
	ShippingState      *string `json:"shipping_state"`
}

type companyFields struct {
	CompanyName              string  `json:"company_name"`
	CompanyTaxID             string  `json:"company_tax_id,omitempty"`
	CompanyAddressStreet     string  `json:"company_address_street,omitempty"`
	CompanyAddressCity       string  `json:"company_address_city,omitempty"`
	CompanyAddressPostalCode string  `json:"company_address_postal_code,omitempty"`
	CompanyAddressCountry    string  `json:"company_address_country,omitempty"`
	CompanyAddressState      *string `json:"company_address_state"`
}

// buildRegisterRequest arma el cuerpo de alta: claves shipping_* para cuentas personales,
// company_* para empresas.
func buildRegisterRequest(in domain.RegisterInput) (registerRequest, error) {
	if in.HasShipping() && in.HasCompany() {
		return registerRequest{}, ErrAccountKindConflict
	}
	req := registerRequest{
		Email:     strings.TrimSpace(in.Email),
		Password:  in.Password,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Phone:     strings.TrimSpace(in.Phone),
	}
	if in.HasShipping() {
		sh := in.Shipping
		req.shippingFields = &shippingFields{
			ShippingStreet:     sh.Street,
			ShippingCity:       sh.City,
			ShippingPostalCode: sh.PostalCode,
			ShippingCountry:    sh.Country,
			ShippingState:      nullIfEmpty(sh.State),
		}
	}
	if in.HasCompany() {
		co := in.Company
		req.companyFields = &companyFields{
			CompanyName:              co.Name,
			CompanyTaxID:             co.TaxID,
			CompanyAddressStreet:     co.AddressStreet,
			CompanyAddressCity:       co.AddressCity,
			CompanyAddressPostalCode: co.AddressPostalCode,
			CompanyAddressCountry:    co.AddressCountry,
			CompanyAddressState:      nullIfEmpty(co.AddressState),
		}
	}
	return req, nil
}

// Register crea la cuenta. El perfil devuelto solo se guarda en la sesion si ya hay token.
func (s *AuthService) Register(ctx context.Context, in domain.RegisterInput) domain.Result[domain.User] {
	body, err := buildRegisterRequest(in)
	if err != nil {
		s.logger.Warn("register rejected", zap.Error(err))
		return domain.FailErr[domain.User](msgAccountKindInvalid, err)
	}

	var user domain.User
	if err := s.client.PostJSON(ctx, api.AuthRegister, body, &user); err != nil {
		s.logger.Warn("register failed", zap.Error(err))
		return domain.FailErr[domain.User](api.DetailOr(err, msgRegisterFailed), err)
	}

	if s.token(ctx) != "" {
		s.state.SetUser(user)
	}
	s.logger.Info("user registered", zap.String("email", user.Email))
	return domain.Ok(user)
}

// Login usa el password grant de OAuth2 (campo username = email) y luego trae el perfil.
func (s *AuthService) Login(ctx context.Context, email, password string) domain.Result[domain.TokenResponse] {
	form := url.Values{}
	form.Set("username", strings.TrimSpace(email))
	form.Set("password", password)

	var tok domain.TokenResponse
	if err := s.client.PostForm(ctx, api.AuthLogin, form, &tok); err != nil {
		s.logger.Warn("login failed", zap.Error(err))
		return domain.FailErr[domain.TokenResponse](api.DetailOr(err, msgLoginFailed), err)
	}
	if strings.TrimSpace(tok.AccessToken) == "" {
		s.logger.Warn("login failed", zap.Error(ErrEmptyAccessToken))
		return domain.FailErr[domain.TokenResponse](msgLoginFailed, ErrEmptyAccessToken)
	}
	if err := s.tokens.SetToken(ctx, tok.AccessToken); err != nil {
		s.logger.Error("store auth token", zap.Error(err))
		return domain.FailErr[domain.TokenResponse](msgLoginFailed, fmt.Errorf("store auth token: %w", err))
	}

	if err := s.FetchUser(ctx); err != nil {
		return domain.FailErr[domain.TokenResponse](api.DetailOr(err, msgLoginFailed), err)
	}
	s.logger.Info("user logged in", zap.String("email", strings.TrimSpace(email)))
	return domain.Ok(tok)
}

// Logout borra token y perfil sin llamar al backend.
func (s *AuthService) Logout(ctx context.Context) {
	s.clearSession(ctx)
}

// FetchUser refresca el perfil. Sin token no hace nada; ante cualquier fallo limpia la sesion.
func (s *AuthService) FetchUser(ctx context.Context) error {
	if s.token(ctx) == "" {
		return nil
	}

	var user domain.User
	if err := s.client.GetJSON(ctx, api.AuthMe, &user); err != nil {
		s.logger.Warn("fetch user failed, clearing session", zap.Error(err))
		s.clearSession(ctx)
		return fmt.Errorf("fetch user: %w", err)
	}

	// La sesion pudo cerrarse mientras la respuesta estaba en vuelo.
	if s.token(ctx) == "" {
		return nil
	}
	s.state.SetUser(user)
	return nil
}

// RefreshToken renueva el token. Sin token no hace nada; si falla, el usuario debe volver a entrar.
func (s *AuthService) RefreshToken(ctx context.Context) error {
	if s.token(ctx) == "" {
		return nil
	}

	var tok domain.TokenResponse
	err := s.client.Post(ctx, api.AuthRefresh, &tok)
	if err == nil && strings.TrimSpace(tok.AccessToken) == "" {
		err = ErrEmptyAccessToken
	}
	if err == nil {
		err = s.tokens.SetToken(ctx, tok.AccessToken)
	}
	if err != nil {
		s.logger.Warn("refresh token failed, clearing session", zap.Error(err))
		s.clearSession(ctx)
		return fmt.Errorf("refresh token: %w", err)
	}
	return nil
}

// UpdateUser mezcla localmente una actualizacion parcial del perfil.
func (s *AuthService) UpdateUser(upd domain.UserUpdate) {
	s.state.Merge(upd)
}

// UpdateMe envia la actualizacion al backend (PUT /auth/me) y reemplaza el perfil con la respuesta.
func (s *AuthService) UpdateMe(ctx context.Context, upd domain.UserUpdate) domain.Result[domain.User] {
	var user domain.User
	if err := s.client.PutJSON(ctx, api.AuthMe, upd, &user); err != nil {
		s.logger.Warn("update profile failed", zap.Error(err))
		return domain.FailErr[domain.User](api.DetailOr(err, msgUpdateFailed), err)
	}
	if s.token(ctx) != "" {
		s.state.SetUser(user)
	}
	return domain.Ok(user)
}

func (s *AuthService) VerifyEmail(ctx context.Context, token string) domain.Result[domain.Message] {
	var msg domain.Message
	body := map[string]string{"token": token}
	if err := s.client.PostJSON(ctx, api.AuthVerifyEmail, body, &msg); err != nil {
		s.logger.Warn("verify email failed", zap.Error(err))
		return domain.FailErr[domain.Message](api.DetailOr(err, msgVerifyFailed), err)
	}
	res := domain.Ok(msg)
	res.Message = msg.Message
	return res
}

func (s *AuthService) ResendVerification(ctx context.Context, email string) domain.Result[domain.Message] {
	var msg domain.Message
	body := map[string]string{"email": strings.TrimSpace(email)}
	if err := s.client.PostJSON(ctx, api.AuthResendVerification, body, &msg); err != nil {
		s.logger.Warn("resend verification failed", zap.Error(err))
		return domain.FailErr[domain.Message](api.DetailOr(err, msgResendFailed), err)
	}
	res := domain.Ok(msg)
	res.Message = msg.Message
	return res
}

// Restore recupera la sesion al arrancar si hay un token persistido. Los errores solo se registran.
func (s *AuthService) Restore(ctx context.Context) {
	if s.token(ctx) == "" {
		return
	}
	if err := s.FetchUser(ctx); err != nil {
		s.logger.Info("failed to restore user session", zap.Error(err))
	}
}

func (s *AuthService) token(ctx context.Context) string {
	tok, err := s.tokens.Token(ctx)
	if err != nil {
		s.logger.Warn("read auth token", zap.Error(err))
		return ""
	}
	return tok
}

func (s *AuthService) clearSession(ctx context.Context) {
	if err := s.tokens.ClearToken(ctx); err != nil {
		s.logger.Warn("clear auth token", zap.Error(err))
	}
	s.state.Clear()
}

func nullIfEmpty(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
