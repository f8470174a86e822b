// migrate aplica o revierte el esquema embebido.
//
// Uso: go run ./cmd/migrate [up|down|version]
package main

import (
	"context"
	"os"

	"github.com/jhoicas/clientes-api/internal/infrastructure/postgres/migrations"
	"github.com/jhoicas/clientes-api/pkg/config"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

func main() {
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "migrate"})

	ctx := context.Background()
	dsn := cfg.DB.ConnectionString()

	switch cmd {
	case "up":
		err = migrations.Up(ctx, dsn)
	case "down":
		err = migrations.Down(ctx, dsn)
	case "version":
		version, dirty, verr := migrations.Version(ctx, dsn)
		if verr != nil {
			log.Fatal().Err(verr).Msg("leer versión")
		}
		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("esquema")
		return
	default:
		log.Fatal().Str("cmd", cmd).Msg("comando desconocido: use up, down o version")
	}
	if err != nil {
		log.Fatal().Err(err).Str("cmd", cmd).Msg("migración")
	}
	log.Info().Str("cmd", cmd).Msg("migración aplicada")
}
