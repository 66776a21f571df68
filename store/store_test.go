// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/danielhkuo/points-tracker/models"
)

// setupTestStore connects to a live Mongo instance and drops the state
// collection. Skipped unless MONGO_TEST_URI is set.
func setupTestStore(t *testing.T) *MongoStore {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set; skipping live store tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	st, err := Connect(ctx, uri)
	if err != nil {
		t.Fatalf("Failed to connect to test Mongo: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		st.Close(ctx)
	})

	if err := st.coll.Drop(ctx); err != nil {
		t.Fatalf("Failed to drop test collection: %v", err)
	}

	return st
}

func TestFetchState_MaterializesDefault(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	first, err := st.FetchState(ctx)
	if err != nil {
		t.Fatalf("FetchState failed: %v", err)
	}

	if first.ID.IsZero() {
		t.Error("expected materialized document to carry an identity")
	}
	if first.CurrentPin != models.DefaultPin {
		t.Errorf("expected default PIN %q, got %q", models.DefaultPin, first.CurrentPin)
	}
	if len(first.Notifications) != models.NotificationSlots {
		t.Errorf("expected %d notification slots, got %d", models.NotificationSlots, len(first.Notifications))
	}
	if first.LastUpdated == "" {
		t.Error("expected lastUpdated to be stamped")
	}

	// A second read returns the same document, not a second copy
	second, err := st.FetchState(ctx)
	if err != nil {
		t.Fatalf("second FetchState failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected same document on second read, got %s vs %s", second.ID.Hex(), first.ID.Hex())
	}

	count, err := st.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 document, got %d", count)
	}
}

func TestReplaceState_RoundTrip(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	before, err := st.FetchState(ctx)
	if err != nil {
		t.Fatalf("FetchState failed: %v", err)
	}

	doc := before
	doc.Scores = map[string]int{"Lila": 7, "Maryn": 3}
	doc.CurrentPin = "9876"
	doc.ChangeHistory = map[string][]any{
		"Lila":  {map[string]any{"delta": 7, "reason": "chores"}},
		"Maryn": {},
	}
	doc.LastUpdated = "caller junk, must be discarded"

	if err := st.ReplaceState(ctx, doc); err != nil {
		t.Fatalf("ReplaceState failed: %v", err)
	}

	after, err := st.FetchState(ctx)
	if err != nil {
		t.Fatalf("FetchState after replace failed: %v", err)
	}

	if after.Scores["Lila"] != 7 || after.Scores["Maryn"] != 3 {
		t.Errorf("scores not replaced: %v", after.Scores)
	}
	if after.CurrentPin != "9876" {
		t.Errorf("expected replaced PIN, got %q", after.CurrentPin)
	}
	if len(after.ChangeHistory["Lila"]) != 1 {
		t.Errorf("change history not passed through: %v", after.ChangeHistory)
	}
	if after.LastUpdated == "caller junk, must be discarded" {
		t.Error("caller-supplied lastUpdated must be overwritten")
	}
	if after.LastUpdated < before.LastUpdated {
		t.Errorf("lastUpdated went backwards: %q < %q", after.LastUpdated, before.LastUpdated)
	}

	// Replace must not mint a second document
	count, err := st.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 document after replace, got %d", count)
	}
}

func TestReplaceState_UpsertsOnEmptyStore(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	doc := models.DefaultState()
	doc.Scores["Lila"] = 42

	if err := st.ReplaceState(ctx, doc); err != nil {
		t.Fatalf("ReplaceState on empty store failed: %v", err)
	}

	got, err := st.FetchState(ctx)
	if err != nil {
		t.Fatalf("FetchState failed: %v", err)
	}
	if got.Scores["Lila"] != 42 {
		t.Errorf("expected upserted document, got scores %v", got.Scores)
	}
}
