package console

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/jhoicas/fruteria-pos/internal/application/dto"
	"github.com/jhoicas/fruteria-pos/internal/application/usecase"
	"github.com/jhoicas/fruteria-pos/internal/domain"
	"github.com/jhoicas/fruteria-pos/internal/domain/entity"
	"github.com/jhoicas/fruteria-pos/pkg/logger"
)

// Session ciclo interactivo de la caja: menú, artículo, cantidad; "0" cierra la compra.
type Session struct {
	in       io.Reader
	printer  *Printer
	purchase *usecase.PurchaseUseCase
	log      *logger.Logger
}

// NewSession construye la sesión sobre la entrada dada (normalmente os.Stdin).
func NewSession(in io.Reader, printer *Printer, purchase *usecase.PurchaseUseCase, log *logger.Logger) *Session {
	return &Session{
		in:       in,
		printer:  printer,
		purchase: purchase,
		log:      log.Named("console"),
	}
}

// Run atiende una compra hasta que el cliente elige 0, se acaba la entrada o se cancela ctx.
// Si hay renglones, imprime el ticket antes de salir. Devuelve ctx.Err() si fue cancelada.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := s.readLines(ctx)
	p := s.purchase.Start()

	for {
		if err := s.printer.DisplayMenu(ctx); err != nil {
			if ctx.Err() != nil {
				return s.finish(ctx, p)
			}
			return err
		}
		s.printer.Message("Elija un artículo (0 para terminar): ")
		raw, ok := next(ctx, lines)
		if !ok {
			return s.finish(ctx, p)
		}
		choice, err := parseChoice(raw)
		if err != nil {
			s.printer.Message("Opción inválida: %q\n", raw)
			continue
		}
		if choice == 0 {
			return s.finish(ctx, p)
		}

		s.printer.Message("Cantidad: ")
		raw, ok = next(ctx, lines)
		if !ok {
			return s.finish(ctx, p)
		}
		qty, err := parseQuantity(raw)
		if err != nil {
			s.printer.Message("Cantidad inválida: %q\n", raw)
			continue
		}

		line, err := s.purchase.AddLine(ctx, p, dto.AddLineRequest{ItemNumber: choice, Quantity: qty})
		switch {
		case errors.Is(err, domain.ErrNotFound):
			s.printer.Message("El artículo %d no está en el menú\n", choice)
			continue
		case errors.Is(err, domain.ErrInvalidQuantity):
			s.printer.Message("La cantidad no puede ser negativa\n")
			continue
		case err != nil && ctx.Err() != nil:
			return s.finish(ctx, p)
		case err != nil:
			return err
		}
		if err := s.printer.PrintLine(*line); err != nil {
			return err
		}
	}
}

func (s *Session) finish(ctx context.Context, p *entity.Purchase) error {
	if p.Len() == 0 {
		s.printer.Message("\nCompra vacía\n")
	} else {
		s.printer.Message("\n")
		if err := s.printer.PrintReceipt(s.purchase.Summary(p)); err != nil {
			return err
		}
	}
	s.log.Info().
		Str("purchase_id", p.ID).
		Int("lines", p.Len()).
		Str("total", p.Total().String()).
		Msg("compra cerrada")
	return ctx.Err()
}

// readLines lee la entrada en una goroutine para que Run pueda atender la cancelación
// aunque la lectura esté bloqueada. El canal se cierra al fin de la entrada, ante un error
// de lectura (que queda en el log) o al cancelar ctx.
func (s *Session) readLines(ctx context.Context) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(s.in)
		for sc.Scan() {
			select {
			case ch <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			s.log.Warn().Err(err).Msg("lectura de entrada interrumpida")
		}
	}()
	return ch
}

func next(ctx context.Context, lines <-chan string) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case l, ok := <-lines:
		return l, ok
	}
}
