package validation

import (
	"strings"

	"storefront/internal/domain"
)

// LoginForm corresponde al formulario de acceso.
type LoginForm struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=8,max=100"`
	Remember bool   `json:"remember" form:"remember"`
}

// PersonalSignUpForm es el alta de una cuenta personal con direccion de envio opcional.
type PersonalSignUpForm struct {
	FirstName       string `json:"firstName" form:"firstName" validate:"required"`
	LastName        string `json:"lastName" form:"lastName" validate:"required"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	Phone           string `json:"phone" form:"phone"`
	Password        string `json:"password" form:"password" validate:"required,min=8,max=100"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"required,eqfield=Password"`

	ShippingStreet     *string `json:"shipping_street" form:"shipping_street"`
	ShippingCity       *string `json:"shipping_city" form:"shipping_city"`
	ShippingPostalCode *string `json:"shipping_postal_code" form:"shipping_postal_code"`
	ShippingCountry    *string `json:"shipping_country" form:"shipping_country"`
	ShippingState      *string `json:"shipping_state" form:"shipping_state"`
}

// BusinessSignUpForm es el alta de una cuenta de empresa; company_name es obligatorio.
type BusinessSignUpForm struct {
	FirstName       string `json:"firstName" form:"firstName" validate:"required"`
	LastName        string `json:"lastName" form:"lastName" validate:"required"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	Phone           string `json:"phone" form:"phone"`
	Password        string `json:"password" form:"password" validate:"required,min=8,max=100"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"required,eqfield=Password"`

	CompanyName              string  `json:"company_name" form:"company_name" validate:"required"`
	CompanyTaxID             *string `json:"company_tax_id" form:"company_tax_id"`
	CompanyAddressStreet     *string `json:"company_address_street" form:"company_address_street"`
	CompanyAddressCity       *string `json:"company_address_city" form:"company_address_city"`
	CompanyAddressPostalCode *string `json:"company_address_postal_code" form:"company_address_postal_code"`
	CompanyAddressCountry    *string `json:"company_address_country" form:"company_address_country"`
	CompanyAddressState      *string `json:"company_address_state" form:"company_address_state"`
}

// SignUpForm es el formulario combinado antiguo; se mantiene por compatibilidad.
type SignUpForm struct {
	FirstName       string `json:"firstName" form:"firstName" validate:"required"`
	LastName        string `json:"lastName" form:"lastName" validate:"required"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	Phone           string `json:"phone" form:"phone"`
	Password        string `json:"password" form:"password" validate:"required,min=8,max=100"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"required,eqfield=Password"`

	ShippingStreet     *string `json:"shipping_street" form:"shipping_street"`
	ShippingCity       *string `json:"shipping_city" form:"shipping_city"`
	ShippingPostalCode *string `json:"shipping_postal_code" form:"shipping_postal_code"`
	ShippingCountry    *string `json:"shipping_country" form:"shipping_country"`
	ShippingState      *string `json:"shipping_state" form:"shipping_state"`

	CompanyName              *string `json:"company_name" form:"company_name"`
	CompanyTaxID             *string `json:"company_tax_id" form:"company_tax_id"`
	CompanyAddressStreet     *string `json:"company_address_street" form:"company_address_street"`
	CompanyAddressCity       *string `json:"company_address_city" form:"company_address_city"`
	CompanyAddressPostalCode *string `json:"company_address_postal_code" form:"company_address_postal_code"`
	CompanyAddressCountry    *string `json:"company_address_country" form:"company_address_country"`
	CompanyAddressState      *string `json:"company_address_state" form:"company_address_state"`
}

type ForgotPasswordForm struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

type ResetPasswordForm struct {
	Token           string `json:"token" form:"token" validate:"required"`
	Password        string `json:"password" form:"password" validate:"required,min=8,max=100"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"eqfield=Password"`
}

func (f PersonalSignUpForm) RegisterInput() domain.RegisterInput {
	in := baseInput(f.Email, f.Password, f.FirstName, f.LastName, f.Phone)
	in.Shipping = shipping(f.ShippingStreet, f.ShippingCity, f.ShippingPostalCode, f.ShippingCountry, f.ShippingState)
	return in
}

func (f BusinessSignUpForm) RegisterInput() domain.RegisterInput {
	in := baseInput(f.Email, f.Password, f.FirstName, f.LastName, f.Phone)
	name := f.CompanyName
	in.Company = company(&name, f.CompanyTaxID, f.CompanyAddressStreet, f.CompanyAddressCity,
		f.CompanyAddressPostalCode, f.CompanyAddressCountry, f.CompanyAddressState)
	return in
}

// RegisterInput del formulario antiguo: si trae nombre de empresa se trata como cuenta de empresa.
func (f SignUpForm) RegisterInput() domain.RegisterInput {
	in := baseInput(f.Email, f.Password, f.FirstName, f.LastName, f.Phone)
	if co := company(f.CompanyName, f.CompanyTaxID, f.CompanyAddressStreet, f.CompanyAddressCity,
		f.CompanyAddressPostalCode, f.CompanyAddressCountry, f.CompanyAddressState); co != nil {
		in.Company = co
		return in
	}
	in.Shipping = shipping(f.ShippingStreet, f.ShippingCity, f.ShippingPostalCode, f.ShippingCountry, f.ShippingState)
	return in
}

func baseInput(email, password, firstName, lastName, phone string) domain.RegisterInput {
	return domain.RegisterInput{
		Email:     strings.TrimSpace(email),
		Password:  password,
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Phone:     strings.TrimSpace(phone),
	}
}

func shipping(street, city, postal, country, state *string) *domain.ShippingAddress {
	if deref(street) == "" {
		return nil
	}
	return &domain.ShippingAddress{
		Street:     deref(street),
		City:       deref(city),
		PostalCode: deref(postal),
		Country:    deref(country),
		State:      deref(state),
	}
}

func company(name, taxID, street, city, postal, country, state *string) *domain.Company {
	if deref(name) == "" {
		return nil
	}
	return &domain.Company{
		Name:              deref(name),
		TaxID:             deref(taxID),
		AddressStreet:     deref(street),
		AddressCity:       deref(city),
		AddressPostalCode: deref(postal),
		AddressCountry:    deref(country),
		AddressState:      deref(state),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
