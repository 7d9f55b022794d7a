package domain

import "strings"

// Role identifica el tipo de cuenta devuelto por el backend.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// User es el perfil que devuelve GET /api/v1/auth/me.
// Una cuenta es personal (campos shipping_*) o de empresa (campos company_*), nunca ambas.
type User struct {
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	IsActive   bool   `json:"is_active"`
	IsVerified bool   `json:"is_verified"`
	Role       Role   `json:"role"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`

	ShippingStreet     *string `json:"shipping_street,omitempty"`
	ShippingCity       *string `json:"shipping_city,omitempty"`
	ShippingPostalCode *string `json:"shipping_postal_code,omitempty"`
	ShippingCountry    *string `json:"shipping_country,omitempty"`
	ShippingState      *string `json:"shipping_state,omitempty"`

	CompanyName              *string `json:"company_name,omitempty"`
	CompanyTaxID             *string `json:"company_tax_id,omitempty"`
	CompanyAddressStreet     *string `json:"company_address_street,omitempty"`
	CompanyAddressCity       *string `json:"company_address_city,omitempty"`
	CompanyAddressPostalCode *string `json:"company_address_postal_code,omitempty"`
	CompanyAddressCountry    *string `json:"company_address_country,omitempty"`
	CompanyAddressState      *string `json:"company_address_state,omitempty"`
}

// FullName concatena nombre y apellido.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsBusiness indica si el perfil tiene datos de empresa.
func (u User) IsBusiness() bool {
	return u.CompanyName != nil && strings.TrimSpace(*u.CompanyName) != ""
}

// UserUpdate representa una actualizacion parcial del perfil; los campos nil no se tocan.
type UserUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`

	ShippingStreet     *string `json:"shipping_street,omitempty"`
	ShippingCity       *string `json:"shipping_city,omitempty"`
	ShippingPostalCode *string `json:"shipping_postal_code,omitempty"`
	ShippingCountry    *string `json:"shipping_country,omitempty"`
	ShippingState      *string `json:"shipping_state,omitempty"`

	CompanyName              *string `json:"company_name,omitempty"`
	CompanyTaxID             *string `json:"company_tax_id,omitempty"`
	CompanyAddressStreet     *string `json:"company_address_street,omitempty"`
	CompanyAddressCity       *string `json:"company_address_city,omitempty"`
	CompanyAddressPostalCode *string `json:"company_address_postal_code,omitempty"`
	CompanyAddressCountry    *string `json:"company_address_country,omitempty"`
	CompanyAddressState      *string `json:"company_address_state,omitempty"`
}

// Apply devuelve una copia de u con los campos presentes en upd.
func (u User) Apply(upd UserUpdate) User {
	setString(&u.FirstName, upd.FirstName)
	setString(&u.LastName, upd.LastName)
	setString(&u.Phone, upd.Phone)

	setPtr(&u.ShippingStreet, upd.ShippingStreet)
	setPtr(&u.ShippingCity, upd.ShippingCity)
	setPtr(&u.ShippingPostalCode, upd.ShippingPostalCode)
	setPtr(&u.ShippingCountry, upd.ShippingCountry)
	setPtr(&u.ShippingState, upd.ShippingState)

	setPtr(&u.CompanyName, upd.CompanyName)
	setPtr(&u.CompanyTaxID, upd.CompanyTaxID)
	setPtr(&u.CompanyAddressStreet, upd.CompanyAddressStreet)
	setPtr(&u.CompanyAddressCity, upd.CompanyAddressCity)
	setPtr(&u.CompanyAddressPostalCode, upd.CompanyAddressPostalCode)
	setPtr(&u.CompanyAddressCountry, upd.CompanyAddressCountry)
	setPtr(&u.CompanyAddressState, upd.CompanyAddressState)
	return u
}

// Clone devuelve una copia que no comparte los campos opcionales con u.
func (u User) Clone() User {
	out := u
	ptrs := []**string{
		&out.ShippingStreet, &out.ShippingCity, &out.ShippingPostalCode, &out.ShippingCountry, &out.ShippingState,
		&out.CompanyName, &out.CompanyTaxID, &out.CompanyAddressStreet, &out.CompanyAddressCity,
		&out.CompanyAddressPostalCode, &out.CompanyAddressCountry, &out.CompanyAddressState,
	}
	for _, p := range ptrs {
		src := *p
		*p = nil
		setPtr(p, src)
	}
	return out
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setPtr(dst **string, src *string) {
	if src != nil {
		v := *src
		*dst = &v
	}
}
