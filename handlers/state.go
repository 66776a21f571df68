// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/points-tracker/cliparse"
	"github.com/danielhkuo/points-tracker/middleware"
	"github.com/danielhkuo/points-tracker/models"
	"github.com/danielhkuo/points-tracker/store"
)

type StateHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewStateHandler(st store.Store, cfg cliparse.Config) *StateHandler {
	return &StateHandler{store: st, cfg: cfg}
}

// Get handles GET /api/state
// Returns the full state document, materializing the default on first read
func (h *StateHandler) Get(w http.ResponseWriter, r *http.Request) {
	state, err := h.store.FetchState(r.Context())
	if err != nil {
		slog.Error("failed to fetch state", "error", err)
		middleware.ErrorResponse(w, storeStatus(err), "Failed to fetch state")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, state)
}

// Update handles POST /api/state
// Replaces the state document wholesale; any client _id is ignored
func (h *StateHandler) Update(w http.ResponseWriter, r *http.Request) {
	var doc models.AppState
	if err := middleware.ParseJSONBody(r, &doc); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.store.ReplaceState(r.Context(), doc); err != nil {
		slog.Error("failed to replace state", "error", err)
		middleware.ErrorResponse(w, storeStatus(err), "Failed to update state")
		return
	}

	slog.Info("state replaced", "participants", len(doc.Scores))

	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{
		Status:  "success",
		Message: "State updated.",
	})
}

func storeStatus(err error) int {
	if errors.Is(err, store.ErrUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
