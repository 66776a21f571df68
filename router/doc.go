// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Points Tracker API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, dispatcher, cfg)

# Endpoints

Health and diagnostics:

	GET /health - plain OK
	GET /       - service identity JSON

State document:

	GET  /api/state - full document (default materialized on first read)
	POST /api/state - wholesale replacement

Alerts:

	POST /api/state/send-alert - queue or send an email-to-text alert

# Handler Initialization

The router creates handler instances with dependency injection:

	stateHandler := handlers.NewStateHandler(st, cfg)
	alertHandler := handlers.NewAlertHandler(dispatcher, cfg)

CORS is applied around the whole mux in main, since every route serves
the same single-page client.
*/
package router
