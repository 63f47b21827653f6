package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/popvote/auth"
	"github.com/danielhkuo/popvote/cliparse"
	"github.com/danielhkuo/popvote/db"
	"github.com/danielhkuo/popvote/middleware"
	"github.com/danielhkuo/popvote/prefs"
	"github.com/danielhkuo/popvote/router"
)

func main() {
	var err error

	// Load .env before flags so env fallbacks see it
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := cliparse.LoadEnvFile(envFile); err != nil {
		slog.Error("Error loading env file", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.PrintAdminKey != "" {
		if cfg.AdminKeySalt == "" {
			slog.Error("admin key salt required to print a key")
			os.Exit(1)
		}
		fmt.Println(auth.GenerateAdminKey(cfg.PrintAdminKey, cfg.AdminKeySalt))
		return
	}

	if cfg.AdminKeySalt == "" {
		slog.Warn("ADMIN_KEY_SALT not set; vote and population writes are disabled")
	}

	// Connect to the database
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	dbConn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		cancel()
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	err = db.CreateSchema(ctx, dbConn)
	cancel()
	if err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Create router
	mux := router.NewRouter(dbConn, prefs.NewSQLStore(dbConn), cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux, cfg.AllowedOrigins...),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "default_population", cfg.DefaultPopulation, "allowed_origins", cfg.AllowedOrigins)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
