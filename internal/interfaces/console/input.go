package console

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// quantityPattern hasta seis enteros y tres decimales, sin notación exponencial.
// El signo se acepta aquí para que el dominio rechace la cantidad negativa con su propio error.
var quantityPattern = regexp.MustCompile(`^-?\d{1,6}([.,]\d{1,3})?$`)

// parseChoice interpreta el número de artículo digitado.
func parseChoice(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// parseQuantity interpreta una cantidad; acepta coma como separador decimal ("1,5").
func parseQuantity(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !quantityPattern.MatchString(s) {
		return decimal.Decimal{}, fmt.Errorf("cantidad %q fuera de formato", s)
	}
	return decimal.NewFromString(strings.Replace(s, ",", ".", 1))
}
