package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) FieldErrors {
	t.Helper()
	var fe FieldErrors
	require.True(t, errors.As(err, &fe), "expected FieldErrors, got %v", err)
	return fe
}

func TestLoginForm(t *testing.T) {
	v := New(nil)

	assert.NoError(t, v.Validate(LoginForm{Email: "user@example.com", Password: "secret123"}))

	fe := fieldErrors(t, v.Validate(LoginForm{Email: "nope", Password: "short"}))
	assert.Equal(t, "Invalid email", fe["email"])
	assert.Equal(t, "Must be at least 8 characters", fe["password"])

	fe = fieldErrors(t, v.Validate(LoginForm{}))
	assert.Equal(t, "Invalid email", fe["email"])
	assert.Equal(t, "Password is required", fe["password"])
}

func TestPersonalSignUpForm(t *testing.T) {
	v := New(nil)
	form := PersonalSignUpForm{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
	assert.NoError(t, v.Validate(form))

	form.ConfirmPassword = "different1"
	fe := fieldErrors(t, v.Validate(form))
	assert.Equal(t, "Passwords do not match", fe["confirmPassword"])

	form.ConfirmPassword = ""
	fe = fieldErrors(t, v.Validate(form))
	assert.Equal(t, "Confirm password is required", fe["confirmPassword"])

	fe = fieldErrors(t, v.Validate(PersonalSignUpForm{Email: "ada@example.com", Password: "secret123", ConfirmPassword: "secret123"}))
	assert.Equal(t, "First name is required", fe["firstName"])
	assert.Equal(t, "Last name is required", fe["lastName"])
}

func TestBusinessSignUpFormRequiresCompanyName(t *testing.T) {
	v := New(nil)
	form := BusinessSignUpForm{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
	fe := fieldErrors(t, v.Validate(form))
	assert.Equal(t, "Company name is required", fe["company_name"])

	form.CompanyName = "ACME"
	assert.NoError(t, v.Validate(form))
}

func TestPasswordMaxLength(t *testing.T) {
	v := New(nil)
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	fe := fieldErrors(t, v.Validate(LoginForm{Email: "a@b.co", Password: string(long)}))
	assert.Equal(t, "Must be at most 100 characters", fe["password"])
}

func TestForgotAndResetPassword(t *testing.T) {
	v := New(nil)
	assert.NoError(t, v.Validate(ForgotPasswordForm{Email: "ada@example.com"}))
	fe := fieldErrors(t, v.Validate(ForgotPasswordForm{Email: "ada"}))
	assert.Equal(t, "Invalid email", fe["email"])

	fe = fieldErrors(t, v.Validate(ResetPasswordForm{Password: "secret123", ConfirmPassword: "secret124"}))
	assert.Equal(t, "Reset token is required", fe["token"])
	assert.Equal(t, "Passwords don't match", fe["confirmPassword"])

	assert.NoError(t, v.Validate(ResetPasswordForm{Token: "t", Password: "secret123", ConfirmPassword: "secret123"}))
}

func TestTranslatorReceivesKeys(t *testing.T) {
	var keys []string
	v := New(func(key, fallback string, params map[string]any) string {
		keys = append(keys, key)
		if key == "auth.errors.passwordMin" {
			assert.Equal(t, "8", params["count"])
			return "Minimum 8 znaków"
		}
		return fallback
	})
	fe := fieldErrors(t, v.Validate(LoginForm{Email: "user@example.com", Password: "short"}))
	assert.Equal(t, "Minimum 8 znaków", fe["password"])
	assert.Contains(t, keys, "auth.errors.passwordMin")
}

func TestFieldErrorsErrorIsSorted(t *testing.T) {
	err := FieldErrors{"password": "b", "email": "a"}
	assert.Equal(t, "email: a; password: b", err.Error())
}

func TestSignUpFormsToRegisterInput(t *testing.T) {
	street, city, state := "Main 1", "Warsaw", " "
	personal := PersonalSignUpForm{
		FirstName: " Ada ", LastName: "Lovelace", Email: "ada@example.com", Password: "secret123",
		ShippingStreet: &street, ShippingCity: &city, ShippingState: &state,
	}.RegisterInput()
	require.NotNil(t, personal.Shipping)
	assert.Nil(t, personal.Company)
	assert.Equal(t, "Ada", personal.FirstName)
	assert.Equal(t, "Warsaw", personal.Shipping.City)
	assert.Equal(t, "", personal.Shipping.State)

	noStreet := PersonalSignUpForm{ShippingCity: &city}.RegisterInput()
	assert.Nil(t, noStreet.Shipping)

	tax := "PL123"
	business := BusinessSignUpForm{CompanyName: "ACME", CompanyTaxID: &tax}.RegisterInput()
	require.NotNil(t, business.Company)
	assert.Nil(t, business.Shipping)
	assert.Equal(t, "PL123", business.Company.TaxID)

	name := "ACME"
	legacy := SignUpForm{CompanyName: &name, ShippingStreet: &street}.RegisterInput()
	assert.NotNil(t, legacy.Company)
	assert.Nil(t, legacy.Shipping)

	legacyPersonal := SignUpForm{ShippingStreet: &street}.RegisterInput()
	assert.NotNil(t, legacyPersonal.Shipping)
	assert.Nil(t, legacyPersonal.Company)
}
