// Comando adminctl activa o desactiva la cuenta de un administrador.
//
//	adminctl -email a@x.com -status inactive
//
// Los tokens ya emitidos para una cuenta inactiva dejan de ser aceptados.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/manager-api/internal/application/auth"
	"github.com/jhoicas/manager-api/internal/infrastructure/storage"
	"github.com/jhoicas/manager-api/pkg/config"
	"github.com/jhoicas/manager-api/pkg/logger"
)

func main() {
	email := flag.String("email", "", "email del administrador")
	status := flag.String("status", "", "active | inactive")
	flag.Parse()

	active, err := parseStatus(*status)
	if err != nil || *email == "" {
		fmt.Fprintln(os.Stderr, "uso: adminctl -email <email> -status active|inactive")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, App: "adminctl"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repos, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Store.Driver).Msg("conexión al store")
	}

	out, err := auth.NewAuthUseCase(repos.Admins, auth.JWTConfig{Secret: cfg.JWT.Secret}).SetStatus(ctx, *email, active)
	_ = repos.Close(context.Background())
	if err != nil {
		log.Fatal().Err(err).Str("email", *email).Msg("cambiar estado del administrador")
	}
	log.Info().
		Str("id", out.ID).
		Str("email", out.Email).
		Bool("status", out.Status).
		Msg("estado actualizado")
}

var errBadStatus = errors.New("status debe ser active o inactive")

func parseStatus(s string) (bool, error) {
	switch s {
	case "active":
		return true, nil
	case "inactive":
		return false, nil
	}
	return false, errBadStatus
}
