// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/danielhkuo/points-tracker/cliparse"
	"github.com/danielhkuo/points-tracker/models"
)

// GetTestConfig returns a standard test configuration with mail
// credentials present and sync dispatch (tests opt into async).
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            5000,
		MongoURI:        "mongodb://localhost:27017",
		SMTPSender:      "alerts@example.com",
		SMTPPassword:    "test-app-password",
		SMTPHost:        "smtp.example.com",
		SMTPPort:        587,
		SMTPTLSMode:     models.TLSModeSTARTTLS,
		DispatchMode:    models.DispatchSync,
		DispatchWorkers: 2,
		DispatchQueue:   32,
	}
}

// FakeStore is an in-memory store.Store with the same self-healing and
// server-owned-field semantics as the Mongo adapter.
type FakeStore struct {
	mu     sync.Mutex
	exists bool
	state  models.AppState

	FetchErr   error
	ReplaceErr error
	Replaced   []models.AppState
}

func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

func (f *FakeStore) FetchState(ctx context.Context) (models.AppState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.FetchErr != nil {
		return models.AppState{}, f.FetchErr
	}

	if !f.exists {
		f.state = models.DefaultState()
		f.state.ID = primitive.NewObjectID()
		f.state.LastUpdated = time.Now().UTC().Format(time.RFC3339)
		f.exists = true
	}

	return f.state, nil
}

func (f *FakeStore) ReplaceState(ctx context.Context, doc models.AppState) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ReplaceErr != nil {
		return f.ReplaceErr
	}

	doc.ID = primitive.NilObjectID
	doc.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	f.Replaced = append(f.Replaced, doc)

	// The backing document keeps its identity across replaces
	if f.exists {
		doc.ID = f.state.ID
	} else {
		doc.ID = primitive.NewObjectID()
	}
	f.state = doc
	f.exists = true

	return nil
}

// Stored returns the current document and whether one exists.
func (f *FakeStore) Stored() (models.AppState, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state, f.exists
}

// SentMail records one FakeSender submission.
type SentMail struct {
	Subject    string
	Body       string
	Recipients []string
}

// FakeSender is an in-memory dispatch.Sender. Set Err to fail sends, or
// Block to make Send hang until the channel is closed (for async tests).
type FakeSender struct {
	mu      sync.Mutex
	sent    []SentMail
	started chan struct{}

	Err   error
	Block chan struct{}
}

func NewFakeSender() *FakeSender {
	return &FakeSender{started: make(chan struct{}, 16)}
}

func (f *FakeSender) Send(ctx context.Context, subject, body string, recipients []string) error {
	select {
	case f.started <- struct{}{}:
	default:
	}

	if f.Block != nil {
		<-f.Block
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return f.Err
	}
	f.sent = append(f.sent, SentMail{Subject: subject, Body: body, Recipients: recipients})
	return nil
}

// Sent returns a copy of all recorded submissions.
func (f *FakeSender) Sent() []SentMail {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]SentMail, len(f.sent))
	copy(out, f.sent)
	return out
}

// WaitStarted blocks until a Send call has begun or the timeout elapses.
func (f *FakeSender) WaitStarted(t *testing.T, timeout time.Duration) {
	t.Helper()
	select {
	case <-f.started:
	case <-time.After(timeout):
		t.Fatal("timed out waiting for a send to start")
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
