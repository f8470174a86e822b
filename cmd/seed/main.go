// seed importa clientes desde una planilla CSV separada por ';' (UTF-8 o Windows-1252).
//
// Uso: go run ./cmd/seed -file clientes.csv -user 1 [-encoding auto|utf-8|windows-1252] [-dry-run]
// Cabecera con las claves JSON (code;name;taxId;...) o las etiquetas en portugués (Código;Nome;CPF/CNPJ;...).
package main

import (
	"context"
	"flag"
	"os"

	"github.com/jhoicas/clientes-api/internal/application/usecase"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/infrastructure/csvimport"
	"github.com/jhoicas/clientes-api/internal/infrastructure/postgres"
	"github.com/jhoicas/clientes-api/internal/infrastructure/postgres/migrations"
	"github.com/jhoicas/clientes-api/pkg/config"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

func main() {
	file := flag.String("file", "clientes.csv", "planilla CSV a importar")
	user := flag.String("user", "", "userId propietario de las filas sin userId")
	encoding := flag.String("encoding", "auto", "auto, utf-8 o windows-1252")
	dryRun := flag.Bool("dry-run", false, "valida sin persistir")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})

	userID, err := entity.ParseID(*user)
	if err != nil {
		log.Fatal().Err(err).Msg("-user es obligatorio")
	}
	enc, err := csvimport.ParseEncoding(*encoding)
	if err != nil {
		log.Fatal().Err(err).Msg("codificación")
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("abrir CSV")
	}
	defer f.Close()

	rows, err := csvimport.Read(f, enc)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("leer CSV")
	}

	ctx := context.Background()
	if cfg.DB.AutoMigrate {
		if err := migrations.Up(ctx, cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	importUC := usecase.NewImportUseCase(
		postgres.NewTxRunner(pool),
		usecase.WithTaxIDCheckDigits(cfg.App.ValidateTaxIDCheckDigits),
	)
	report, err := importUC.Import(ctx, userID, rows, *dryRun)
	if err != nil {
		log.Error().Err(err).Msg("importación revertida")
		pool.Close()
		os.Exit(1)
	}

	for _, s := range report.Skipped {
		log.Warn().Int("line", s.Line).Str("code", s.Code).Str("reason", s.Reason).Msg("fila descartada")
	}
	log.Info().
		Int("read", len(rows)).
		Int("imported", report.Imported).
		Int("skipped", len(report.Skipped)).
		Bool("dry_run", report.DryRun).
		Msg("importación terminada")
}
