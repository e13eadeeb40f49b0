package console

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// numberSymbols separadores del locale; los dígitos se toman del decimal exacto, no de un float.
type numberSymbols struct {
	group   string
	decimal string
}

// symbolsFor deduce los separadores formateando una muestra conocida (1234567.5) con x/text.
// Si el locale no usa dígitos latinos se cae al formato sin agrupar con punto decimal.
func symbolsFor(p *message.Printer) numberSymbols {
	sample := p.Sprint(number.Decimal(1234567.5, number.Scale(1)))
	g := strings.Index(sample, "234")
	d := strings.Index(sample, "567")
	if !strings.HasPrefix(sample, "1") || g < 1 || d < g || !strings.HasSuffix(sample, "5") || d+3 > len(sample)-1 {
		return numberSymbols{decimal: "."}
	}
	return numberSymbols{
		group:   sample[1:g],
		decimal: sample[d+3 : len(sample)-1],
	}
}

// format localiza la representación en punto fijo de shopspring/decimal ("-1234.50").
func (s numberSymbols) format(fixed string) string {
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, frac, hasFrac := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(s.group)
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteString(s.decimal)
		b.WriteString(frac)
	}
	return b.String()
}

func (s numberSymbols) money(d decimal.Decimal) string {
	return s.format(d.StringFixed(2))
}

// quantity hasta tres decimales, sin ceros a la derecha.
func (s numberSymbols) quantity(d decimal.Decimal) string {
	return s.format(d.Round(3).String())
}
