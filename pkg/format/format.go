// Package format formata valores para exibição no padrão brasileiro.
package format

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	currencySymbol = "R$"
	emptyDate      = "---"
	negativeClass  = "negative"
)

func printer() *message.Printer {
	return message.NewPrinter(language.BrazilianPortuguese)
}

// Currency formata em reais com duas casas (ex: "R$ 1.234,56", "-R$ 10,00")
func Currency(v float64) string {
	abs := math.Abs(v)
	formatted := printer().Sprintf("%.2f", abs)
	if v < 0 && math.Round(abs*100) != 0 {
		return "-" + currencySymbol + " " + formatted
	}
	return currencySymbol + " " + formatted
}

// Integer formata um inteiro com separador de milhar (ex: "1.234")
func Integer(v float64) string {
	return printer().Sprintf("%d", int64(math.Round(v)))
}

// Percent formata uma variação com uma casa e sinal explícito (ex: "+25.0%").
// Variação ausente vira string vazia.
func Percent(v *float64) string {
	if v == nil {
		return ""
	}
	prefix := ""
	if *v >= 0 {
		prefix = "+"
	}
	return fmt.Sprintf("%s%.1f%%", prefix, *v)
}

// Share formata a participação de uma fatia do gráfico de pizza (ex: "12.5%")
func Share(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// IsNegative indica se a variação deve ser exibida como negativa
func IsNegative(v *float64) bool {
	return v != nil && *v < 0
}

// VariationClass acrescenta a classe "negative" à classe base quando a
// variação é negativa
func VariationClass(v *float64, base string) string {
	if IsNegative(v) {
		return base + " " + negativeClass
	}
	return base
}

// Date formata a data como dd/mm/aaaa, ou "---" quando ausente
func Date(t *time.Time) string {
	if t == nil {
		return emptyDate
	}
	return t.Format("02/01/2006")
}
