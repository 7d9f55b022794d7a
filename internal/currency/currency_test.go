package currency

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter_LocaleCurrency(t *testing.T) {
	assert.Equal(t, "USD", NewFormatter("en").CurrencyCode())
	assert.Equal(t, "USD", NewFormatter("en-US").CurrencyCode())
	assert.Equal(t, "PLN", NewFormatter("pl").CurrencyCode())
	assert.Equal(t, "PLN", NewFormatter("pl-PL").CurrencyCode())

	// Idiomas sin moneda configurada y etiquetas invalidas caen a "en".
	assert.Equal(t, "en", NewFormatter("de").Locale())
	assert.Equal(t, "USD", NewFormatter("!!").CurrencyCode())
	assert.Equal(t, USD, NewFormatter("").Current())
}

func TestFormatter_FormatPriceEnglish(t *testing.T) {
	f := NewFormatter("en")
	assert.Equal(t, "$12.50", f.FormatPrice(12.5, ""))
	assert.Equal(t, "$12.50", f.FormatPrice(12.5, "usd"))
	assert.Equal(t, "€12.50", f.FormatPrice(12.5, "EUR"))
	assert.Equal(t, "$12.50", f.FormatPrice(12.5, "not-a-code"))
}

func TestFormatter_FormatPricePolish(t *testing.T) {
	f := NewFormatter("pl")
	got := f.FormatPrice(12.5, "")
	assert.True(t, strings.HasSuffix(got, " zł"), "got %q", got)
	assert.Contains(t, got, "12,50")

	got = f.FormatPrice(12.5, "EUR")
	assert.True(t, strings.HasSuffix(got, " €"), "got %q", got)
}

func TestFormatter_FormatPriceNegativeAndScale(t *testing.T) {
	en := NewFormatter("en")
	assert.Equal(t, "-€3.46", en.FormatPrice(-3.456, "EUR"))
	assert.Equal(t, "-$12.50", en.FormatPrice(-12.5, ""))
	assert.Equal(t, "$0.00", en.FormatPrice(-0.001, ""))

	jpy := en.FormatPrice(10, "JPY")
	assert.True(t, strings.HasSuffix(jpy, "10"), "got %q", jpy)
	assert.NotContains(t, jpy, ".")
	assert.NotContains(t, jpy, "JPY")

	pl := NewFormatter("pl").FormatPrice(-3.46, "")
	assert.True(t, strings.HasPrefix(pl, "-3,46"), "got %q", pl)
	assert.True(t, strings.HasSuffix(pl, " zł"), "got %q", pl)
}

func TestFormatter_FormatDecimal(t *testing.T) {
	f := NewFormatter("en")
	got, err := f.FormatDecimal("19.999", "")
	require.NoError(t, err)
	assert.Equal(t, "$20.00", got)

	_, err = f.FormatDecimal("abc", "")
	assert.Error(t, err)
}

func TestLookup(t *testing.T) {
	c, ok := Lookup("pln")
	assert.True(t, ok)
	assert.Equal(t, "zł", c.Symbol)

	_, ok = Lookup("JPY")
	assert.False(t, ok)
	assert.Len(t, Available, 3)
}

func TestLocaleFromRequest(t *testing.T) {
	assert.Equal(t, "pl", LocaleFromRequest("pl", "en-US", "en"))
	assert.Equal(t, "pl-PL", LocaleFromRequest("", "pl-PL,pl;q=0.9,en;q=0.8", "en"))
	assert.Equal(t, "en", LocaleFromRequest("", "", "en"))
}
