package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/points-tracker/cliparse"
	"github.com/danielhkuo/points-tracker/dispatch"
	"github.com/danielhkuo/points-tracker/middleware"
	"github.com/danielhkuo/points-tracker/router"
	"github.com/danielhkuo/points-tracker/store"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to MongoDB; a dead backend at startup is fatal
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	st, err := store.Connect(ctx, cfg.MongoURI)
	cancel()
	if err != nil {
		slog.Error("state store connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		st.Close(ctx)
	}()
	slog.Info("State store ready")

	if !cfg.HasMailCredentials() {
		slog.Warn("mail credentials not set; alert dispatch will be skipped")
	}

	// Alert dispatcher (worker pool in async mode)
	dispatcher := dispatch.New(cfg, dispatch.NewSMTPSender(cfg))

	// Create router
	mux := router.NewRouter(st, dispatcher, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
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
	slog.Info("Listening", "port", cfg.Port, "dispatch_mode", cfg.DispatchMode)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}

	// Drain any in-flight alert sends before exiting
	dispatcher.Close()
}
