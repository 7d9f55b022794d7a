package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/currency"
)

// CurrencyHandler expone la moneda del idioma y el formateo de precios.
type CurrencyHandler struct {
	defaultLocale string
}

func NewCurrencyHandler(defaultLocale string) *CurrencyHandler {
	if defaultLocale == "" {
		defaultLocale = "en"
	}
	return &CurrencyHandler{defaultLocale: defaultLocale}
}

func (h *CurrencyHandler) formatter(c *gin.Context) *currency.Formatter {
	locale := currency.LocaleFromRequest(c.Query("locale"), c.GetHeader("Accept-Language"), h.defaultLocale)
	return currency.NewFormatter(locale)
}

// List maneja GET /currencies.
func (h *CurrencyHandler) List(c *gin.Context) {
	f := h.formatter(c)
	c.JSON(http.StatusOK, gin.H{
		"locale":    f.Locale(),
		"current":   f.Current(),
		"available": currency.Available,
	})
}

// Format maneja GET /currencies/format?amount=19.99&currency=EUR.
func (h *CurrencyHandler) Format(c *gin.Context) {
	f := h.formatter(c)
	formatted, err := f.FormatDecimal(c.Query("amount"), c.Query("currency"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"formatted": formatted, "locale": f.Locale()})
}
