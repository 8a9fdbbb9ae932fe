package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/aurumimpex/procurement/internal/config"
	"github.com/aurumimpex/procurement/internal/domain/navigation"
	"github.com/aurumimpex/procurement/internal/domain/procurement"
	"github.com/aurumimpex/procurement/internal/fixtures"
	"github.com/aurumimpex/procurement/internal/mcp"
	"github.com/aurumimpex/procurement/internal/metrics"
	"github.com/aurumimpex/procurement/internal/sqlite"
	"github.com/aurumimpex/procurement/internal/transport"
	"github.com/go-chi/chi/v5"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.Transport.Mode == "stdio" {
		logWriter = os.Stderr
	}
	if logPath := os.Getenv("PROCUREMENT_LOG_PATH"); logPath != "" {
		fileWriter, file, err := newLogFileWriter(logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			defer file.Close()
			logWriter = fileWriter
		}
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	seed, err := loadSeed(cfg.Fixtures.Path)
	if err != nil {
		logger.Error("failed to load fixtures", "path", cfg.Fixtures.Path, "error", err)
		os.Exit(1)
	}
	data, err := procurement.Bootstrap(context.Background(), sqlite.NewProcurementRepository(db), seed, logger)
	if err != nil {
		logger.Error("failed to load procurement records", "error", err)
		os.Exit(1)
	}
	logger.Info("procurement records loaded", "records", data.Len())

	var recorder *metrics.Recorder
	if cfg.Metrics.Enabled {
		recorder = metrics.New(true)
	}

	services := mcp.Services{
		Navigation:  navigation.NewService(sqlite.NewNavigationRepository(db), logger),
		Procurement: procurement.NewService(data, logger),
	}
	apiKeys := sqlite.NewAPIKeyRepository(db)

	mcpServer := mcp.NewServer(mcp.Config{
		Services:      services,
		Resolver:      apiKeys,
		AuthEnabled:   cfg.Auth.Enabled,
		TransportMode: cfg.Transport.Mode,
		Metrics:       metricsOrNil(recorder),
		Logger:        logger,
	})

	if cfg.Transport.Mode == "stdio" {
		runStdioMode(logger, mcpServer)
		return
	}

	auth := transport.StaticTenantMiddleware(mcp.DefaultTenant)
	if cfg.Auth.Enabled {
		auth = transport.AuthMiddleware(apiKeys)
	}
	rpc := transport.NewServer(mcp.NewHandler(services, metricsOrNil(recorder), logger), auth, logger)
	runHTTPMode(logger, mcpServer, rpc, recorder, cfg.Server.Host, cfg.Server.Port)
}

func loadSeed(path string) (*procurement.Dataset, error) {
	if path == "" {
		return fixtures.Default(), nil
	}
	return fixtures.Load(path)
}

// metricsOrNil keeps a nil *Recorder from becoming a non-nil interface.
func metricsOrNil(recorder *metrics.Recorder) mcp.MetricsRecorder {
	if recorder == nil {
		return nil
	}
	return recorder
}

func runStdioMode(logger *slog.Logger, mcpServer *sdkmcp.Server) {
	logger.Info("starting stdio transport", "auth", "disabled")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	// Run blocks until stdin closes or context is canceled
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}

func runHTTPMode(logger *slog.Logger, mcpServer *sdkmcp.Server, rpc http.Handler, recorder *metrics.Recorder, host string, port int) {
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{
			Stateless:      false,
			SessionTimeout: 30 * time.Minute,
		},
	)

	router := chi.NewRouter()
	router.Handle("/mcp", mcpHandler)
	router.Handle("/mcp/*", mcpHandler)
	if recorder != nil {
		router.Handle("/metrics", recorder.Handler())
	}
	// /rpc and /health
	router.Mount("/", rpc)

	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", addr, "metrics", recorder != nil)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
