package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/propertyops/property-alerts/internal/pkg/application/alerts"
	"github.com/propertyops/property-alerts/internal/pkg/application/watchdog"
	"github.com/propertyops/property-alerts/internal/pkg/infrastructure/router"
	"github.com/propertyops/property-alerts/internal/pkg/infrastructure/storage"
	"github.com/propertyops/property-alerts/internal/pkg/presentation/api"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
)

const serviceName string = "property-alerts"

type flagType int

const (
	listenAddress flagType = iota
	servicePort

	policiesFile
	configurationFile

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode

	generateInterval
	cleanupInterval
)

type flagMap map[flagType]string

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",

		policiesFile:      "/opt/propertyops/config/authz.rego",
		configurationFile: "/opt/propertyops/config/config.yaml",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "propertyops",
		dbSSLMode:  "disable",

		generateInterval: "15m",
		cleanupInterval:  "24h",
	}
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadAlertsConfig(flags[configurationFile], logger)
	exitIf(err, logger, "could not load alert engine configuration")

	policies, err := os.Open(flags[policiesFile])
	exitIf(err, logger, "unable to open opa policy file")
	defer policies.Close()

	s, err := storage.New(ctx, storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword],
		flags[dbPort], flags[dbName], flags[dbSSLMode],
	))
	exitIf(err, logger, "could not connect to database")
	defer s.Close()

	err = s.Initialize(ctx)
	exitIf(err, logger, "failed to initialize database")

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")
	defer messenger.Close()

	svc := alerts.New(s, s, messenger, cfg)

	messenger.Start()

	genInterval, err := time.ParseDuration(flags[generateInterval])
	exitIf(err, logger, "invalid generation interval")

	cleanInterval, err := time.ParseDuration(flags[cleanupInterval])
	exitIf(err, logger, "invalid cleanup interval")

	wd := watchdog.New(svc, genInterval, cleanInterval)
	wd.Start(ctx)
	defer wd.Stop(ctx)

	r := router.New(serviceName)
	_, err = api.RegisterHandlers(ctx, r, policies, svc)
	exitIf(err, logger, "failed to register handlers")

	apiPort := fmt.Sprintf("%s:%s", flags[listenAddress], flags[servicePort])
	webServer := &http.Server{Addr: apiPort, Handler: r}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("starting to listen for incoming connections", "address", apiPort)
		if err := webServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		exitIf(err, logger, "web server failed")
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = webServer.Shutdown(shutdownCtx)
	if err != nil {
		logger.Error("failed to shut down web server gracefully", "err", err.Error())
	}
}

func loadAlertsConfig(path string, logger *slog.Logger) (*alerts.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("no configuration file found, using defaults", "path", path)
			return alerts.DefaultConfig(), nil
		}
		return nil, err
	}
	defer f.Close()

	return alerts.LoadConfiguration(f)
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])

	flags[policiesFile] = envOrDef(ctx, "POLICIES_FILE", flags[policiesFile])

	flags[dbHost] = envOrDef(ctx, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(ctx, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(ctx, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(ctx, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(ctx, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(ctx, "POSTGRES_SSLMODE", flags[dbSSLMode])

	flags[generateInterval] = envOrDef(ctx, "GENERATE_INTERVAL", flags[generateInterval])
	flags[cleanupInterval] = envOrDef(ctx, "CLEANUP_INTERVAL", flags[cleanupInterval])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("policies", "an authorization policy file", apply(policiesFile))
	flag.Func("config", "alert engine configuration file", apply(configurationFile))
	flag.Parse()

	return ctx, flags
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
