// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/points-tracker/dispatch"
	"github.com/danielhkuo/points-tracker/models"
	"github.com/danielhkuo/points-tracker/testutil"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()

	cfg := testutil.GetTestConfig()
	d := dispatch.New(cfg, testutil.NewFakeSender())
	t.Cleanup(d.Close)

	return NewRouter(testutil.NewFakeStore(), d, cfg)
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var info models.ServiceInfoResponse
	testutil.AssertJSON(t, w, &info)

	if info.Status != "Server running" {
		t.Errorf("Expected status 'Server running', got '%s'", info.Status)
	}
	if info.Service != "Points Tracker API" {
		t.Errorf("Expected service 'Points Tracker API', got '%s'", info.Service)
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestRouter(t)

	// Test that routes respond (handler is invoked)
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/api/state"},
		{"POST", "/api/state"},
		{"POST", "/api/state/send-alert"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			// 405 means the route pattern didn't match the method;
			// anything else means a handler ran
			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("route %s %s not registered", tc.method, tc.path)
			}
		})
	}
}

func TestStateRoundTripThroughRouter(t *testing.T) {
	mux := newTestRouter(t)

	// First read materializes the default
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/state", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var state models.AppState
	testutil.AssertJSON(t, w, &state)
	if state.CurrentPin != models.DefaultPin {
		t.Fatalf("expected default document, got PIN %q", state.CurrentPin)
	}

	// Replace and read back
	state.Scores["Lila"] = 5
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/api/state", state, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/state", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var updated models.AppState
	testutil.AssertJSON(t, w, &updated)
	if updated.Scores["Lila"] != 5 {
		t.Errorf("expected replaced score, got %v", updated.Scores)
	}
}
