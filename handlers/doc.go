// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Points Tracker API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - StateHandler: state document retrieval and wholesale replacement
  - AlertHandler: email-to-text alert dispatch

	stateHandler := handlers.NewStateHandler(st, cfg)
	alertHandler := handlers.NewAlertHandler(dispatcher, cfg)

# State Endpoints

	GET  /api/state → Get (self-healing: default document on first read)
	POST /api/state → Update (full replacement, _id ignored, lastUpdated stamped)

The client always holds and re-submits the complete document, so there is
no field-level merging and no per-field validation server-side. Store
failures map to 503 via store.ErrUnavailable.

# Alert Endpoint

	POST /api/state/send-alert → SendAlert

Request body: notificationMessage plus a list of phone/carrier targets.
Both are required (400 otherwise). The response depends on the configured
dispatch mode:

  - async: 200 "Notification queued" once the job is accepted; delivery
    failures surface only in the log. A full queue is 503.
  - sync: 200 "Notification sent" or 502 on transport failure.

Benign skips (no valid recipients, missing credentials) are 200 with the
skip reason in the message, never an error.
*/
package handlers
