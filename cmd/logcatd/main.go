package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"

	"github.com/amirhossein-jamali/logcat"
	coreport "github.com/amirhossein-jamali/logcat/internal/domain/port/core"
	"github.com/amirhossein-jamali/logcat/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/logcat/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/logcat/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/logcat/internal/infrastructure/adapter/introspection"
	"github.com/amirhossein-jamali/logcat/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/logcat/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/logcat/internal/infrastructure/adapter/override"
	"github.com/amirhossein-jamali/logcat/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/logcat/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/logcat/internal/infrastructure/config"
)

const mainTag = "Main"

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	tp := timeProvider.NewRealTimeProvider()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Host line logger, optionally counted
	sink, closeSink, err := newSink(cfg.Logger, tp)
	if err != nil {
		log.Fatalf("Failed to create line logger: %v", err)
	}
	defer closeSink()

	var lineLogger coreport.LineLogger = sink
	if cfg.Metrics.Enabled {
		provider, err := newMeterProvider(cfg)
		if err != nil {
			log.Fatalf("Failed to create meter provider: %v", err)
		}
		defer func() {
			_ = provider.Shutdown(context.Background())
		}()
		lineLogger = metrics.Instrument(sink, metrics.Config{
			MeterProvider:    provider,
			CustomAttributes: []attribute.KeyValue{attribute.String("environment", cfg.Environment)},
		})
	}

	memory, err := introspection.NewMemoryReporter(cfg.Diagnostics.MemorySource)
	if err != nil {
		log.Fatalf("Failed to create memory reporter: %v", err)
	}
	newFacade := func(overrides coreport.OverrideSource) *logcat.Facade {
		f := logcat.New(logcat.Options{
			LineLogger:    lineLogger,
			Overrides:     overrides,
			Stacks:        introspection.NewStackCapturer(),
			Threads:       introspection.NewGoroutineEnumerator(),
			Memory:        memory,
			FramePrefixes: logcat.FramePrefixes(),
		})
		if err := f.InitVerbose(cfg.App.Tag, cfg.App.ForceVerbose); err != nil {
			log.Fatalf("Failed to initialize logging: %v", err)
		}
		return f
	}

	// Static override sources
	fileSource, err := override.NewPropertyFileSource(cfg.Overrides.File, func(err error) {
		_, _ = logcat.WarnTagErr(mainTag, "Level override file reload failed", err)
	})
	if err != nil {
		log.Fatalf("Failed to load level overrides: %v", err)
	}
	defer fileSource.Close()
	static := override.NewChainSource(fileSource, override.NewViperSource(cfg.Viper()))

	// The store behind the admin API. The database one logs through a
	// bootstrap facade, which only sees the static sources.
	var store coreport.OverrideStore = override.NewMapSource(nil)
	if cfg.Overrides.Database.Enabled {
		boot := newFacade(static)
		dbSource, closeDB, err := newDatabaseSource(ctx, cfg.Overrides.Database, boot, tp)
		if err != nil {
			_, _ = boot.ErrorTagErr(mainTag, "Failed to open the override database", err)
			os.Exit(1)
		}
		defer closeDB()
		store = dbSource
	}

	lc := newFacade(override.NewChainSource(store, static))
	logcat.SetDefault(lc)

	if cfg.Logger.Obfuscator == "numbers" {
		lc.SetObfuscator(logcat.SimpleNumberObfuscator{})
	}
	lc.SetObfuscateByDefault(cfg.Logger.ObfuscateByDefault)

	for _, warning := range cfg.Warnings {
		_, _ = lc.WarnTag(mainTag, warning)
	}

	if cfg.Overrides.Watch {
		if err := fileSource.Watch(); err != nil {
			_, _ = lc.WarnTagErr(mainTag, "Cannot watch "+fileSource.Path(), err)
		}
	}

	runDemo(lc, tp)

	if !cfg.Server.Enabled {
		return
	}
	if err := serve(ctx, cfg.Server, lc, store, override.NewChainSource(store, static), tp); err != nil {
		_, _ = lc.ErrorTagErr(mainTag, "Server failed", err)
		os.Exit(1)
	}
}

// newSink creates the zap line logger described by cfg, or a discarding one
// for output "none"
func newSink(cfg config.LoggerConfig, tp coreport.TimeProvider) (coreport.LineLogger, func(), error) {
	if cfg.Output == "none" {
		return logger.NewNoopLineLogger(), func() {}, nil
	}

	var outputs []string
	for _, out := range strings.Split(cfg.Output, ",") {
		if out = strings.TrimSpace(out); out != "" {
			outputs = append(outputs, out)
		}
	}

	zl, err := logger.NewZapLineLogger(logger.Options{
		Format:   logger.Format(cfg.Format),
		Outputs:  outputs,
		WithTime: cfg.TimeKey,
		Colorize: logger.Colorize(cfg.Colorize),
		Clock:    tp,
	})
	if err != nil {
		return nil, nil, err
	}
	return zl, func() {
		_ = zl.Sync()
		_ = zl.Close()
	}, nil
}

func newMeterProvider(cfg *config.Config) (*sdkmetric.MeterProvider, error) {
	exporter, err := stdoutmetric.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout exporter: %w", err)
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(cfg.Metrics.ExportInterval))
	return sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(resource.NewSchemaless(
			attribute.String("service.name", "logcatd"),
			attribute.String("logcat.app_tag", cfg.App.Tag),
		)),
	), nil
}

// newDatabaseSource connects, migrates and starts the refresh loop of the
// database backed override store
func newDatabaseSource(
	ctx context.Context,
	cfg config.DatabaseConfig,
	dbLog coreport.Logger,
	tp coreport.TimeProvider,
) (*override.DatabaseSource, func(), error) {
	dbConfig := database.DefaultConfig()
	dbConfig.Host = cfg.Host
	dbConfig.Port = cfg.Port
	dbConfig.Username = cfg.Username
	dbConfig.Password = cfg.Password
	dbConfig.Database = cfg.Name
	dbConfig.SSLMode = cfg.SSLMode
	dbConfig.LogLevel = cfg.LogLevel
	dbConfig.QueryTimeout = cfg.QueryTimeout
	dbConfig.RetryAttempts = cfg.RetryAttempts
	dbConfig.RetryDelay = cfg.RetryDelay

	dbManager := database.NewManager(dbConfig, dbLog, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return nil, nil, err
	}
	if err := dbManager.Migrate(ctx); err != nil {
		_ = dbManager.Close()
		return nil, nil, err
	}

	repo := repository.NewTagOverrideRepository(dbManager.DB(), dbLog, tp)
	source := override.NewDatabaseSource(repo, tp, override.DatabaseSourceOptions{
		RefreshInterval: coreport.Duration(cfg.RefreshInterval),
		QueryTimeout:    coreport.Duration(cfg.QueryTimeout),
		OnError: func(err error) {
			_, _ = dbLog.Warnf(database.LogTag, "Override refresh failed: %v", err)
		},
	})
	if err := source.Start(ctx); err != nil {
		_ = dbManager.Close()
		return nil, nil, err
	}

	return source, func() {
		source.Stop()
		_ = dbManager.Close()
	}, nil
}

// serve runs the admin API until ctx is done, then shuts it down gracefully
func serve(
	ctx context.Context,
	cfg config.ServerConfig,
	lc *logcat.Facade,
	store coreport.OverrideStore,
	effective coreport.OverrideSource,
	tp coreport.TimeProvider,
) error {
	router := gin.New()
	routes.SetupMiddlewares(router, lc, tp, lc)
	routes.SetupRoutes(router, handler.NewLevelHandler(store, effective, lc), handler.NewDiagnosticsHandler(lc))

	server := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		_, _ = lc.Infof(mainTag, "Starting server on %s", cfg.Address())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	_, _ = lc.InfoTag(mainTag, "Shutting down server...")
	shutdownCtx, cancel := tp.WithTimeout(context.Background(), coreport.Duration(cfg.ShutdownTimeout))
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	_, _ = lc.InfoTag(mainTag, "Server exited gracefully")
	return nil
}
