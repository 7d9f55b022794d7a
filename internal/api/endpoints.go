package api

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	BasePath   = "/api/v1"
	HealthPath = "/health"

	AuthBase               = "/api/v1/auth"
	AuthLogin              = "/api/v1/auth/login"
	AuthRegister           = "/api/v1/auth/register"
	AuthMe                 = "/api/v1/auth/me"
	AuthRefresh            = "/api/v1/auth/refresh"
	AuthVerifyEmail        = "/api/v1/auth/verify-email"
	AuthResendVerification = "/api/v1/auth/resend-verification"

	ProductsBase     = "/api/v1/products"
	ProductsList     = "/api/v1/products/"
	ProductsFeatured = "/api/v1/products/featured"
	productByID      = "/api/v1/products/{id}"
	productBySlug    = "/api/v1/products/slug/{slug}"

	CategoriesBase = "/api/v1/categories"
	CategoriesList = "/api/v1/categories/"
	categoryByID   = "/api/v1/categories/{id}"
	categoryBySlug = "/api/v1/categories/slug/{slug}"
)

func ProductByID(id any) string {
	return strings.Replace(productByID, "{id}", url.PathEscape(fmt.Sprint(id)), 1)
}

func ProductBySlug(slug string) string {
	return strings.Replace(productBySlug, "{slug}", url.PathEscape(slug), 1)
}

func CategoryByID(id any) string {
	return strings.Replace(categoryByID, "{id}", url.PathEscape(fmt.Sprint(id)), 1)
}

func CategoryBySlug(slug string) string {
	return strings.Replace(categoryBySlug, "{slug}", url.PathEscape(slug), 1)
}

// Las rutas de escritura (admin) comparten path con la lectura por ID.

func UpdateProduct(id any) string { return ProductByID(id) }
func DeleteProduct(id any) string { return ProductByID(id) }
func UpdateCategory(id any) string { return CategoryByID(id) }
func DeleteCategory(id any) string { return CategoryByID(id) }
