// Command seed creates the initial admin account.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/dtroode/wedwisely-server/internal/config"
	"github.com/dtroode/wedwisely-server/internal/logger"
	"github.com/dtroode/wedwisely-server/internal/model"
	"github.com/dtroode/wedwisely-server/internal/password"
	"github.com/dtroode/wedwisely-server/internal/repository"
	"github.com/dtroode/wedwisely-server/internal/service"
	"github.com/dtroode/wedwisely-server/internal/token"
)

var errNoPassword = errors.New("ADMIN_PASSWORD is empty and stdin is not a terminal")

// readPassword prompts on the controlling terminal.
var readPassword = func() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errNoPassword
	}
	fmt.Fprint(os.Stderr, "Admin password: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(b), nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	users, closeStore, err := repository.Open(ctx, cfg.StoreDriver, cfg.Mongo, cfg.Postgres)
	if err != nil {
		logger.Fatal("failed to initialize user store", "error", err)
	}
	defer func() { _ = closeStore(context.Background()) }()

	if err := run(ctx, cfg, users, logger); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, users model.UserStore, logger *logger.Logger) error {
	if strings.TrimSpace(cfg.Admin.Email) == "" {
		return errors.New("ADMIN_EMAIL is required")
	}

	pass := cfg.Admin.Password
	if pass == "" {
		var err error
		if pass, err = readPassword(); err != nil {
			return err
		}
	}

	hasher, err := password.NewBcrypt(cfg.BcryptCost)
	if err != nil {
		return err
	}
	tokens := token.NewJWT(token.Options{
		AccessSecret: cfg.JWT.Secret,
		AccessTTL:    cfg.JWT.ExpiresIn.Duration,
		RefreshTTL:   cfg.JWT.RefreshExpiresIn.Duration,
	})
	auth := service.NewAuth(users, hasher, tokens, logger)

	admin, created, err := auth.SeedAdmin(ctx, model.RegisterParams{
		Email:     cfg.Admin.Email,
		Password:  pass,
		FirstName: cfg.Admin.FirstName,
		LastName:  cfg.Admin.LastName,
	})
	if err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	if created {
		logger.Info("admin user created", "email", admin.Email, "id", admin.ID)
	} else {
		logger.Info("admin user already exists", "email", admin.Email, "role", admin.Role)
	}
	return nil
}
