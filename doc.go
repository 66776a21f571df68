// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Points Tracker API server.

Points Tracker is a small stateful backend for a shared scorekeeping
client: it stores one application document (scores, PIN, admin hash,
notification slots, change history) in MongoDB and dispatches
email-to-text alerts through carrier SMS gateways.

# Starting the Server

The server requires a Mongo connection string, via environment variable
or CLI flag (a .env file is honored):

	MONGO_URI=mongodb+srv://... go run main.go

Or with flags:

	go run main.go -p 5000 -m "mongodb://localhost:27017"

# Configuration

Required settings:

  - MONGO_URI (-m): MongoDB connection string

Optional settings:

  - PORT (-p): server port (default: 5000)
  - SMTP_SENDER / SMTP_PASSWORD: mail credentials; absent means alerts
    are skipped, not a startup failure
  - SMTP_HOST, SMTP_PORT, SMTP_TLS, SMTP_FORCE_IPV4: transport tuning
  - DISPATCH_MODE, DISPATCH_WORKERS, DISPATCH_QUEUE: alert delivery mode

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (state, alerts)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: State document and request/response types
  - store: Singleton-document Mongo adapter
  - dispatch: Recipient derivation and SMTP worker pool
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
