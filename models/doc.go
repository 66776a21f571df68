// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the state document, request, and response types.

# State Document

AppState is the singleton application document stored in Mongo:

  - Scores: participant name → point total
  - CurrentPin: 4-digit PIN (enforced client-side)
  - AdminPassHash: precomputed admin secret hash (opaque here)
  - Notifications: five phone/carrier slots for alerts
  - ChangeHistory: per-participant change records (passed through verbatim)
  - PinThreshold: point threshold for PIN prompts (opaque here)
  - LastUpdated: RFC 3339 UTC timestamp, owned by the store

The struct carries paired bson/json tags so the same type round-trips
both the Mongo collection and the HTTP API. The _id field is never
accepted from clients; the store strips it before every write.

# First-Run Default

DefaultState builds the document materialized on first read:

	doc := models.DefaultState()

Two zeroed participants, default PIN and admin hash, five empty
notification slots, empty change histories, default threshold.

# Request Types

  - SendAlertRequest: notificationMessage, notifications

# Response Types

  - StatusResponse: status, message
  - ServiceInfoResponse: status, service (root endpoint)
  - ErrorResponse: error, message

# Constants

Dispatch modes:

	DispatchAsync = "async"
	DispatchSync  = "sync"

SMTP TLS modes:

	TLSModeSTARTTLS = "starttls"
	TLSModeImplicit = "implicit"
*/
package models
