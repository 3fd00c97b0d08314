package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/renlow/LinkForge_Go/internal/bootstrap"
	"github.com/renlow/LinkForge_Go/internal/config"
	"github.com/renlow/LinkForge_Go/internal/database"
	"github.com/renlow/LinkForge_Go/internal/database/postgres"
	"github.com/renlow/LinkForge_Go/internal/handler"
	"github.com/renlow/LinkForge_Go/internal/identity"
	"github.com/renlow/LinkForge_Go/internal/product"
	"github.com/renlow/LinkForge_Go/internal/provider"
	"github.com/renlow/LinkForge_Go/internal/provider/discord"
	providerroblox "github.com/renlow/LinkForge_Go/internal/provider/roblox"
	"github.com/renlow/LinkForge_Go/internal/roblox"
	"github.com/renlow/LinkForge_Go/internal/server"
	"github.com/renlow/LinkForge_Go/internal/session"
)

// Database pool sizing. Conservative defaults for a small identity service.
const (
	dbMaxConnections    = 25
	dbMaxConnIdleTime   = 5 * time.Minute
	dbMaxConnLifetime   = 30 * time.Minute
	shutdownGracePeriod = 10 * time.Second
)

// @title LinkForge API
// @version 1.0
// @description Identity service that authenticates users against Roblox and Discord OAuth and issues session tokens.
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Logger setup failed: %v", err)
	}
	defer logFile.Close()

	handler.InitValidator()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConnections, dbMaxConnIdleTime, dbMaxConnLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}

	userRepo := postgres.NewUserRepository(dbPool)
	productRepo := postgres.NewProductRepository(dbPool)

	identityService := identity.NewService(userRepo)
	productService := product.NewService(productRepo)

	providers := provider.NewRegistry(
		providerroblox.New(cfg.RobloxClientID, cfg.RobloxClientSecret, cfg.RobloxRedirectURL),
		discord.New(cfg.DiscordClientID, cfg.DiscordClientSecret, cfg.DiscordRedirectURL),
	)

	issuer := session.NewIssuer(cfg.JWTSecret)
	robloxLookup := roblox.NewClient()

	srv := server.NewServer(cfg.Port, cfg.TrustedProxies, dbPool, providers, identityService, productService, issuer, robloxLookup)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: dbPool,
	})
}
