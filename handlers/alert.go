// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/points-tracker/cliparse"
	"github.com/danielhkuo/points-tracker/dispatch"
	"github.com/danielhkuo/points-tracker/middleware"
	"github.com/danielhkuo/points-tracker/models"
)

type AlertHandler struct {
	dispatcher *dispatch.Dispatcher
	cfg        cliparse.Config
}

func NewAlertHandler(d *dispatch.Dispatcher, cfg cliparse.Config) *AlertHandler {
	return &AlertHandler{dispatcher: d, cfg: cfg}
}

// SendAlert handles POST /api/state/send-alert
// In async mode success means "accepted for dispatch", not "delivered"
func (h *AlertHandler) SendAlert(w http.ResponseWriter, r *http.Request) {
	var req models.SendAlertRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.NotificationMessage == "" || len(req.Notifications) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "notificationMessage and notifications are required")
		return
	}

	outcome, err := h.dispatcher.Dispatch(r.Context(), req.NotificationMessage, req.Notifications)
	if err != nil {
		if errors.Is(err, dispatch.ErrQueueFull) || errors.Is(err, dispatch.ErrClosed) {
			middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Alert dispatch is not accepting jobs")
			return
		}
		// Sync-mode transport failure
		slog.Error("alert dispatch failed", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to send notification")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{
		Status:  "success",
		Message: outcomeMessage(outcome),
	})
}

func outcomeMessage(outcome dispatch.Outcome) string {
	switch outcome {
	case dispatch.OutcomeQueued:
		return "Notification queued"
	case dispatch.OutcomeSent:
		return "Notification sent"
	case dispatch.OutcomeSkippedNoRecipients:
		return "Notification skipped: no valid recipients"
	case dispatch.OutcomeSkippedNoCredentials:
		return "Notification skipped: credentials missing"
	}
	return string(outcome)
}
