// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/points-tracker/cliparse"
	"github.com/danielhkuo/points-tracker/dispatch"
	"github.com/danielhkuo/points-tracker/handlers"
	"github.com/danielhkuo/points-tracker/middleware"
	"github.com/danielhkuo/points-tracker/models"
	"github.com/danielhkuo/points-tracker/store"
)

func NewRouter(st store.Store, dispatcher *dispatch.Dispatcher, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	stateHandler := handlers.NewStateHandler(st, cfg)
	alertHandler := handlers.NewAlertHandler(dispatcher, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// State document (read and wholesale replace)
	mux.HandleFunc("GET /api/state", middleware.WithLogging(stateHandler.Get))
	mux.HandleFunc("POST /api/state", middleware.WithLogging(stateHandler.Update))

	// Alert dispatch
	mux.HandleFunc("POST /api/state/send-alert", middleware.WithLogging(alertHandler.SendAlert))

	// Root endpoint (diagnostic, matches what the client probes on load)
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.ServiceInfoResponse{
			Status:  "Server running",
			Service: "Points Tracker API",
		})
	})

	return mux
}
