package brdoc

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL muestra un monto en reales con separadores pt-BR (R$ 1.234,56).
func FormatBRL(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return brPrinter.Sprintf("R$ %v", number.Decimal(f, number.Scale(2)))
}

// ParseAmount acepta "1500.50", "1500,50", "1.500,50" y "R$ 1.500,50". Con coma, los puntos
// se toman como separador de miles.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "R$"))
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	return decimal.NewFromString(s)
}
