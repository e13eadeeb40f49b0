// Package console implementa la caja en modo texto: menú, renglones y ticket.
package console

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/fruteria-pos/internal/application/dto"
	"github.com/jhoicas/fruteria-pos/internal/application/usecase"
	"github.com/jhoicas/fruteria-pos/internal/domain/entity"
)

// PrinterConfig opciones de presentación.
type PrinterConfig struct {
	Title     string
	Currency  string // prefijo de los montos, ej. "$"
	Locale    string // etiqueta BCP 47; inválida o vacía -> español
	NameWidth int    // columnas para el nombre; 0 o mayor a entity.NameDisplayWidth -> entity.NameDisplayWidth
}

// Printer escribe el menú, los renglones y el ticket en un io.Writer.
type Printer struct {
	out      io.Writer
	menu     *usecase.MenuUseCase
	sym      numberSymbols
	title    string
	currency string
	width    int
}

// NewPrinter construye el impresor.
func NewPrinter(out io.Writer, menu *usecase.MenuUseCase, cfg PrinterConfig) *Printer {
	tag, err := language.Parse(cfg.Locale)
	if err != nil || cfg.Locale == "" {
		tag = language.Spanish
	}
	width := cfg.NameWidth
	if width <= 0 || width > entity.NameDisplayWidth {
		width = entity.NameDisplayWidth
	}
	return &Printer{
		out:      out,
		menu:     menu,
		sym:      symbolsFor(message.NewPrinter(tag)),
		title:    cfg.Title,
		currency: cfg.Currency,
		width:    width,
	}
}

// DisplayMenu muestra los artículos disponibles con su número y precio unitario.
func (pr *Printer) DisplayMenu(ctx context.Context) error {
	menu, err := pr.menu.Menu(ctx)
	if err != nil {
		return fmt.Errorf("mostrar menú: %w", err)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "===== %s =====\n", pr.title)
	for _, it := range menu.Items {
		fmt.Fprintf(&b, "%2d. %-*s %s\n", it.Number, pr.width, fitName(it.Name, pr.width), pr.Money(it.UnitPrice))
	}
	fmt.Fprintf(&b, "%2d. %s\n", 0, "Terminar compra")
	_, err = io.WriteString(pr.out, b.String())
	return err
}

// PrintLine muestra un renglón recién registrado.
func (pr *Printer) PrintLine(line dto.PurchaseLineResponse) error {
	_, err := fmt.Fprintf(pr.out, "  %s x %s @ %s = %s\n",
		pr.Quantity(line.Quantity), line.Name, pr.Money(line.UnitPrice), pr.Money(line.Subtotal))
	return err
}

// PrintReceipt muestra el ticket con todos los renglones y el total.
func (pr *Printer) PrintReceipt(sum *dto.PurchaseResponse) error {
	var b strings.Builder
	b.WriteString("----- Ticket -----\n")
	for _, l := range sum.Lines {
		fmt.Fprintf(&b, "%-*s %8s %s\n", pr.width, fitName(l.Name, pr.width), pr.Quantity(l.Quantity), pr.Money(l.Subtotal))
	}
	fmt.Fprintf(&b, "%-*s %8s %s\n", pr.width, "TOTAL", "", pr.Money(sum.Total))
	_, err := io.WriteString(pr.out, b.String())
	return err
}

// Message escribe una línea libre (avisos, prompts).
func (pr *Printer) Message(format string, args ...any) {
	fmt.Fprintf(pr.out, format, args...)
}

// Money formatea un monto con dos decimales según el locale, redondeando el valor exacto.
func (pr *Printer) Money(d decimal.Decimal) string {
	return pr.currency + " " + pr.sym.money(d)
}

// Quantity formatea una cantidad con hasta tres decimales.
func (pr *Printer) Quantity(d decimal.Decimal) string {
	return pr.sym.quantity(d)
}

// fitName acota el nombre a width runas; el recorte termina en "…".
func fitName(name string, width int) string {
	r := []rune(name)
	if len(r) <= width {
		return name
	}
	return string(r[:width-1]) + "…"
}
