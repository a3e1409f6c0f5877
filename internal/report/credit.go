package report

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Valuation errors.
var (
	// ErrNegativePrice indicates a carbon price below zero.
	ErrNegativePrice = constError("carbon price must not be negative")

	// ErrNonPositiveRate indicates an exchange rate of zero or less.
	ErrNonPositiveRate = constError("exchange rate must be positive")
)

// CreditValue is the monetary worth of avoided emissions. Prices and rates
// are always caller-supplied plain numbers: obtaining live quotes is outside
// the core, which degrades to whatever default the caller passes in.
type CreditValue struct {
	// AvoidedTCO2eq is the credited emission reduction.
	AvoidedTCO2eq float64

	// PricePerTonne is the carbon price in the quote currency.
	PricePerTonne float64

	// ExchangeRate converts the quote currency to the display currency
	// (1 for same-currency reporting).
	ExchangeRate float64

	// QuoteCurrency and DisplayCurrency are currency symbols or codes
	// used only for rendering.
	QuoteCurrency   string
	DisplayCurrency string
}

// QuoteValue returns the credit value in the quote currency.
func (c CreditValue) QuoteValue() float64 {
	return c.AvoidedTCO2eq * c.PricePerTonne
}

// DisplayValue returns the credit value converted to the display currency.
func (c CreditValue) DisplayValue() float64 {
	return c.QuoteValue() * c.ExchangeRate
}

// NewCreditValue validates the market inputs and builds a valuation.
func NewCreditValue(avoidedTCO2eq, pricePerTonne, exchangeRate float64, quoteCurrency, displayCurrency string) (CreditValue, error) {
	if pricePerTonne < 0 {
		return CreditValue{}, fmt.Errorf("%w: got %v", ErrNegativePrice, pricePerTonne)
	}
	if exchangeRate <= 0 {
		return CreditValue{}, fmt.Errorf("%w: got %v", ErrNonPositiveRate, exchangeRate)
	}
	return CreditValue{
		AvoidedTCO2eq:   avoidedTCO2eq,
		PricePerTonne:   pricePerTonne,
		ExchangeRate:    exchangeRate,
		QuoteCurrency:   quoteCurrency,
		DisplayCurrency: displayCurrency,
	}, nil
}

// Formatter renders numbers with locale-aware separators for CLI output.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter builds a Formatter for a BCP 47 locale tag ("pt-BR",
// "en-US"). Unparseable tags fall back to en-US.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Decimal formats v with the locale's grouping and decimal separators at the
// given precision.
func (f *Formatter) Decimal(v float64, precision int) string {
	return f.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(precision),
		number.MaxFractionDigits(precision)))
}

// Money renders a currency symbol and amount at two decimal places.
func (f *Formatter) Money(symbol string, v float64) string {
	return fmt.Sprintf("%s %s", symbol, f.Decimal(v, 2))
}
