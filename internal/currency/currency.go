package currency

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency describe una moneda que la tienda sabe mostrar.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

var (
	USD = Currency{Code: "USD", Symbol: "$", Name: "US Dollar"}
	PLN = Currency{Code: "PLN", Symbol: "zł", Name: "Polish Złoty"}
	EUR = Currency{Code: "EUR", Symbol: "€", Name: "Euro"}
)

// Available lista todas las monedas seleccionables.
var Available = []Currency{USD, PLN, EUR}

// Moneda por idioma; los idiomas sin entrada usan la de "en".
var localeCurrencies = map[string]Currency{
	"en": USD,
	"pl": PLN,
}

// Idiomas que escriben el simbolo detras del importe.
var symbolAfter = map[string]bool{
	"pl": true,
}

const fallbackLocale = "en"

// Formatter formatea precios segun el idioma activo.
type Formatter struct {
	locale  string
	printer *message.Printer
}

// NewFormatter acepta etiquetas BCP 47 ("pl", "pl-PL", "en-US"); las invalidas caen a "en".
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		tag = language.English
	}
	base, _ := tag.Base()
	code := base.String()
	if _, ok := localeCurrencies[code]; !ok {
		code = fallbackLocale
		tag = language.English
	}
	return &Formatter{
		locale:  code,
		printer: message.NewPrinter(tag),
	}
}

// Locale devuelve el idioma efectivo.
func (f *Formatter) Locale() string {
	return f.locale
}

// Current devuelve la moneda del idioma activo.
func (f *Formatter) Current() Currency {
	return localeCurrencies[f.locale]
}

// CurrencyCode es el codigo que se envia a la API.
func (f *Formatter) CurrencyCode() string {
	return f.Current().Code
}

// FormatPrice formatea price con las convenciones numericas del idioma. Si code esta vacio,
// es invalido o coincide con la moneda del idioma se usa la del idioma. Los decimales salen
// de la moneda (JPY no lleva) y el signo va antes del simbolo: "-€3.46".
func (f *Formatter) FormatPrice(price float64, code string) string {
	cur, scale := f.resolve(code)
	sign := ""
	if price < 0 && math.Round(-price*math.Pow10(scale)) > 0 {
		sign = "-"
	}
	price = math.Abs(price)
	amount := f.printer.Sprintf("%v", number.Decimal(price, number.Scale(scale)))
	if symbolAfter[f.locale] {
		return sign + amount + " " + cur.Symbol
	}
	return sign + cur.Symbol + amount
}

// FormatDecimal formatea importes que el backend envia como string decimal ("19.99").
func (f *Formatter) FormatDecimal(raw string, code string) (string, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("parse price %q: %w", raw, err)
	}
	return f.FormatPrice(d.Round(2).InexactFloat64(), code), nil
}

// resolve devuelve la moneda a mostrar y sus decimales estandar.
func (f *Formatter) resolve(code string) (Currency, int) {
	code = strings.ToUpper(strings.TrimSpace(code))
	cur := f.Current()
	if code != "" && code != cur.Code {
		if c, ok := Lookup(code); ok {
			cur = c
		} else if unit, err := currency.ParseISO(code); err == nil {
			symbol := f.printer.Sprint(currency.Symbol(unit))
			cur = Currency{Code: unit.String(), Symbol: symbol, Name: unit.String()}
		}
	}
	unit, err := currency.ParseISO(cur.Code)
	if err != nil {
		return cur, 2
	}
	scale, _ := currency.Standard.Rounding(unit)
	return cur, scale
}

// Lookup busca una moneda disponible por codigo ISO.
func Lookup(code string) (Currency, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range Available {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// LocaleFromRequest elige el idioma: parametro explicito, luego Accept-Language, luego def.
func LocaleFromRequest(explicit, acceptLanguage, def string) string {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return explicit
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err == nil && len(tags) > 0 {
		return tags[0].String()
	}
	return def
}
