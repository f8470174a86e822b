// token emite un Bearer token para probar la API cuando JWT_SECRET está definido.
//
// Uso: go run ./cmd/token -user 1 [-minutes 60]
package main

import (
	"flag"
	"fmt"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/pkg/config"
	"github.com/jhoicas/clientes-api/pkg/jwt"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

func main() {
	user := flag.String("user", "", "userId del token")
	minutes := flag.Int("minutes", 0, "vigencia en minutos (0 = JWT_EXPIRATION_MINUTES)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "token"})

	if !cfg.JWT.Enabled() {
		log.Fatal().Msg("JWT_SECRET no definido: la API no exige token")
	}
	userID, err := entity.ParseID(*user)
	if err != nil {
		log.Fatal().Err(err).Msg("-user es obligatorio")
	}
	exp := *minutes
	if exp <= 0 {
		exp = cfg.JWT.ExpMinutes
	}

	token, err := jwt.Generate(cfg.JWT.Secret, userID.String(), cfg.JWT.Issuer, exp)
	if err != nil {
		log.Fatal().Err(err).Msg("generar token")
	}
	fmt.Println(token)
}
