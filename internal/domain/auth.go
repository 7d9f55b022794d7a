package domain

import "strings"

// TokenResponse es la respuesta de login y refresh (OAuth2 password grant).
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Message es la respuesta de verify-email y resend-verification.
type Message struct {
	Message string `json:"message"`
}

// ShippingAddress son los datos de envio de una cuenta personal.
type ShippingAddress struct {
	Street     string
	City       string
	PostalCode string
	Country    string
	State      string
}

// Company son los datos de facturacion de una cuenta de empresa.
type Company struct {
	Name              string
	TaxID             string
	AddressStreet     string
	AddressCity       string
	AddressPostalCode string
	AddressCountry    string
	AddressState      string
}

// RegisterInput agrupa los datos de alta. Shipping y Company son excluyentes.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Shipping  *ShippingAddress
	Company   *Company
}

// HasShipping indica si hay direccion de envio utilizable (calle no vacia).
func (in RegisterInput) HasShipping() bool {
	return in.Shipping != nil && strings.TrimSpace(in.Shipping.Street) != ""
}

// HasCompany indica si hay datos de empresa utilizables (nombre no vacio).
func (in RegisterInput) HasCompany() bool {
	return in.Company != nil && strings.TrimSpace(in.Company.Name) != ""
}
