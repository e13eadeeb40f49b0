package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/fruteria-pos/internal/application/usecase"
	"github.com/jhoicas/fruteria-pos/internal/infrastructure/memory"
	"github.com/jhoicas/fruteria-pos/internal/interfaces/console"
	"github.com/jhoicas/fruteria-pos/pkg/config"
	"github.com/jhoicas/fruteria-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando caja")

	items, err := cfg.Items()
	if err != nil {
		log.Fatal().Err(err).Msg("catálogo inválido")
	}
	catalog := memory.NewCatalogRepository(items)

	menuUC := usecase.NewMenuUseCase(catalog)
	purchaseUC := usecase.NewPurchaseUseCase(catalog, log)

	printer := console.NewPrinter(os.Stdout, menuUC, console.PrinterConfig{
		Title:     cfg.App.Name,
		Currency:  cfg.Shop.Currency,
		Locale:    cfg.Shop.Locale,
		NameWidth: cfg.Shop.NameWidth,
	})
	session := console.NewSession(os.Stdin, printer, purchaseUC, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("sesión de caja")
		stop()
		os.Exit(1)
	}

	log.Info().Msg("caja cerrada")
}
