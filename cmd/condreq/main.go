// @title           condreq API
// @version         1.0
// @description     A single entity served with ETag based conditional requests.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	apiserver "condreq/internal/api"
	configapp "condreq/internal/config/application"
	entityinfra "condreq/internal/entity/infrastructure"
	"condreq/internal/infrastructure/logger"
)

// version is set at build time
var version = "dev"

func newApp() *cli.App {
	return &cli.App{
		Name:    "condreq",
		Usage:   "serve a single entity with ETag conditional requests",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "port", Aliases: []string{"p"}, Usage: "port to listen on (default 3000)"},
			&cli.BoolFlag{Name: "dev", Usage: "enable development mode (Swagger UI)"},
			&cli.StringFlag{Name: "log-level", Usage: "DEBUG, INFO, WARN or ERROR"},
			&cli.StringFlag{Name: "log-format", Usage: "text or json"},
			&cli.StringFlag{Name: "log-output", Usage: "stdout, stderr or a file path"},
			&cli.StringFlag{Name: "store", Usage: "memory, sqlite or postgres"},
			&cli.StringFlag{Name: "dsn", Usage: "database DSN for the sqlite or postgres store"},
			&cli.StringFlag{Name: "seed-id", Usage: "UUID of the entity, or \"random\""},
			&cli.StringFlag{Name: "seed-name", Usage: "initial name of the entity"},
			&cli.BoolFlag{Name: "strict-body", Usage: "reject request bodies with properties other than name"},
			&cli.StringFlag{Name: "env-file", Usage: "path to a .env file", Value: ".env"},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to a YAML config file"},
		},
		Action: run,
	}
}

func flagsFrom(c *cli.Context) configapp.Flags {
	return configapp.Flags{
		Port:       c.String("port"),
		LogLevel:   c.String("log-level"),
		LogFormat:  c.String("log-format"),
		LogOutput:  c.String("log-output"),
		Store:      c.String("store"),
		DSN:        c.String("dsn"),
		SeedID:     c.String("seed-id"),
		SeedName:   c.String("seed-name"),
		ConfigPath: c.String("config"),
		DevMode:    c.Bool("dev"),
		StrictBody: c.Bool("strict-body"),
	}
}

func run(c *cli.Context) error {
	bootLogger := logger.DefaultLogger()

	configapp.LoadEnvFile(bootLogger, c.String("env-file"))

	loader := configapp.NewLoader(bootLogger)
	fileCfg, err := loader.LoadConfigFile(c.Context, configapp.ConfigPathFrom(c.String("config")))
	if err != nil {
		return fmt.Errorf("failed to load config file: %w", err)
	}

	runtimeCfg := configapp.LoadRuntimeConfig(flagsFrom(c), fileCfg)
	if err := runtimeCfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	appLogger, logCloser := logger.NewLogger(logger.Options{
		Level:  runtimeCfg.LogLevel,
		Format: runtimeCfg.LogFormat,
		Output: runtimeCfg.LogOutput,
	})
	defer logCloser.Close()
	logger.SetDefaultLogger(appLogger)

	appLogger.Info("Starting condreq", "version", version)

	sigCtx, cancel := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	appLogger.Debug("Opening entity store", "store", runtimeCfg.Store)
	repo, storeCloser, err := entityinfra.OpenRepository(sigCtx, runtimeCfg.Store, runtimeCfg.DSN, runtimeCfg.SeedEntity())
	if err != nil {
		appLogger.Error("Failed to open entity store", "store", runtimeCfg.Store, "err", err)
		return fmt.Errorf("failed to open entity store: %w", err)
	}
	defer storeCloser.Close()
	appLogger.Info("Entity store ready", "store", runtimeCfg.Store, "id", runtimeCfg.SeedID)

	apiServer, err := apiserver.NewServer(appLogger, runtimeCfg, repo)
	if err != nil {
		appLogger.Error("Failed to create API server", "err", err)
		return fmt.Errorf("failed to create API server: %w", err)
	}

	g, gctx := errgroup.WithContext(sigCtx)

	g.Go(func() error {
		if err := apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("API server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return apiServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	appLogger.Info("Graceful shutdown completed")
	return nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		// Use default logger for final error message if run() failed early
		logger.DefaultLogger().Error("Application error", "err", err)
		os.Exit(1)
	}
}
