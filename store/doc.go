// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists the singleton application state document.

# Store Interface

Two operations over one well-known record:

	state, err := st.FetchState(ctx)
	err = st.ReplaceState(ctx, state)

FetchState is self-healing: an empty collection is populated with the
default document in a single insert and that document is returned, so
"not found" never reaches a caller. ReplaceState is a wholesale upsert
with no field merging and no conflict detection; two concurrent replaces
interleave with last-writer-wins semantics, which is accepted behavior.

# Server-Owned Fields

ReplaceState never trusts two fields from the caller:

  - _id is stripped before the write (the replacement document carries no
    identity; Mongo keeps the existing one)
  - lastUpdated is stamped to the current UTC time, unconditionally

# Mongo Implementation

Connect opens a client with a 5 second server-selection timeout and pings
before returning; a failed ping aborts startup:

	st, err := store.Connect(ctx, cfg.MongoURI)

Database points_tracker_db, collection app_state. Backend failures wrap
store.ErrUnavailable so handlers can map them to 503 uniformly.

# Testing

The Store interface is the seam for fake backends; handler tests use
testutil.FakeStore. The Mongo round-trip tests only run when
MONGO_TEST_URI points at a live instance.
*/
package store
