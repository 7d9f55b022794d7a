package validation

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Translator resuelve una clave i18n; fallback es el texto por defecto en ingles.
type Translator func(key, fallback string, params map[string]any) string

// DefaultTranslator devuelve siempre el texto por defecto.
func DefaultTranslator(_ string, fallback string, _ map[string]any) string {
	return fallback
}

// FieldErrors mapea el nombre del campo (como viaja en JSON) a un mensaje legible.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}

// Validator aplica los esquemas de los formularios de autenticacion.
type Validator struct {
	validate *validator.Validate
	t        Translator
}

func New(t Translator) *Validator {
	if t == nil {
		t = DefaultTranslator
	}
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v, t: t}
}

// Validate devuelve nil, FieldErrors, o el error interno del validador.
func (v *Validator) Validate(form any) error {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = v.message(fe)
	}
	return out
}

func (v *Validator) message(fe validator.FieldError) string {
	switch fe.Field() {
	case "email":
		return v.t("auth.errors.invalidEmail", "Invalid email", nil)
	case "password":
		switch fe.Tag() {
		case "required":
			return v.t("auth.errors.passwordRequired", "Password is required", nil)
		case "min":
			return v.t("auth.errors.passwordMin", "Must be at least "+fe.Param()+" characters", map[string]any{"count": fe.Param()})
		case "max":
			return v.t("auth.errors.passwordMax", "Must be at most "+fe.Param()+" characters", map[string]any{"count": fe.Param()})
		}
	case "firstName":
		return v.t("auth.errors.firstNameRequired", "First name is required", nil)
	case "lastName":
		return v.t("auth.errors.lastNameRequired", "Last name is required", nil)
	case "company_name":
		return v.t("auth.errors.companyNameRequired", "Company name is required", nil)
	case "token":
		return v.t("auth.errors.resetTokenRequired", "Reset token is required", nil)
	case "confirmPassword":
		if fe.Tag() == "required" {
			return v.t("auth.errors.confirmPasswordRequired", "Confirm password is required", nil)
		}
		if strings.HasPrefix(fe.StructNamespace(), "ResetPasswordForm.") {
			return v.t("auth.errors.passwordsDontMatch", "Passwords don't match", nil)
		}
		return v.t("auth.errors.passwordsDontMatch", "Passwords do not match", nil)
	}
	return v.t("auth.errors.invalidInput", "Invalid input", nil)
}
