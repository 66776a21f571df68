// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/points-tracker/models"
	"github.com/danielhkuo/points-tracker/store"
	"github.com/danielhkuo/points-tracker/testutil"
)

func TestGetState_MaterializesDefault(t *testing.T) {
	st := testutil.NewFakeStore()
	handler := NewStateHandler(st, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/api/state", nil, nil)
	w := httptest.NewRecorder()
	handler.Get(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var state models.AppState
	testutil.AssertJSON(t, w, &state)

	if state.CurrentPin != models.DefaultPin {
		t.Errorf("expected default PIN, got %q", state.CurrentPin)
	}
	if state.Scores["Lila"] != 0 || state.Scores["Maryn"] != 0 {
		t.Errorf("expected zeroed default scores, got %v", state.Scores)
	}
	if len(state.Notifications) != models.NotificationSlots {
		t.Errorf("expected %d notification slots, got %d", models.NotificationSlots, len(state.Notifications))
	}
	if state.ID.IsZero() {
		t.Error("expected the materialized document to carry an _id")
	}
	if state.LastUpdated == "" {
		t.Error("expected lastUpdated to be stamped")
	}
}

func TestGetState_StoreUnavailable(t *testing.T) {
	st := testutil.NewFakeStore()
	st.FetchErr = fmt.Errorf("%w: connection reset", store.ErrUnavailable)

	handler := NewStateHandler(st, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/api/state", nil, nil)
	w := httptest.NewRecorder()
	handler.Get(w, req)

	testutil.AssertStatus(t, w, http.StatusServiceUnavailable)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Failed to fetch state" {
		t.Errorf("unexpected error message %q", resp.Message)
	}
}

func TestUpdateState_ReplacesWholesale(t *testing.T) {
	st := testutil.NewFakeStore()
	handler := NewStateHandler(st, testutil.GetTestConfig())

	body := map[string]any{
		"_id":           "64f000000000000000000001",
		"scores":        map[string]int{"Lila": 12, "Maryn": 8},
		"currentPin":    "4321",
		"adminPassHash": "deadbeef",
		"notifications": []models.NotificationTarget{
			{Phone: "5551234567", Carrier: "Verizon"},
			{}, {}, {}, {},
		},
		"changeHistory": map[string][]any{
			"Lila":  {map[string]any{"delta": 12}},
			"Maryn": {},
		},
		"pinThreshold": 20,
		"lastUpdated":  "2001-01-01T00:00:00Z",
	}

	req := testutil.MakeRequest("POST", "/api/state", body, nil)
	w := httptest.NewRecorder()
	handler.Update(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.StatusResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Status != "success" {
		t.Errorf("expected success status, got %q", resp.Status)
	}
	if resp.Message != "State updated." {
		t.Errorf("unexpected message %q", resp.Message)
	}

	stored, exists := st.Stored()
	if !exists {
		t.Fatal("expected a stored document")
	}
	if stored.Scores["Lila"] != 12 || stored.CurrentPin != "4321" {
		t.Errorf("document not replaced: %+v", stored)
	}
	if stored.LastUpdated == "2001-01-01T00:00:00Z" {
		t.Error("caller-supplied lastUpdated must be overwritten")
	}

	if len(st.Replaced) != 1 {
		t.Fatalf("expected 1 replace call, got %d", len(st.Replaced))
	}
	if !st.Replaced[0].ID.IsZero() {
		t.Error("caller-supplied _id must be stripped before the write")
	}
}

func TestUpdateState_InvalidJSON(t *testing.T) {
	st := testutil.NewFakeStore()
	handler := NewStateHandler(st, testutil.GetTestConfig())

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"malformed JSON", "{scores:"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/state", strings.NewReader(tc.body))
			w := httptest.NewRecorder()
			handler.Update(w, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)

			if _, exists := st.Stored(); exists {
				t.Error("nothing should be stored on a bad request")
			}
		})
	}
}

func TestUpdateState_StoreUnavailable(t *testing.T) {
	st := testutil.NewFakeStore()
	st.ReplaceErr = fmt.Errorf("%w: auth failed", store.ErrUnavailable)

	handler := NewStateHandler(st, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/api/state", models.DefaultState(), nil)
	w := httptest.NewRecorder()
	handler.Update(w, req)

	testutil.AssertStatus(t, w, http.StatusServiceUnavailable)
}
