// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags reads CLI flags first, then environment variables. A .env file
in the working directory is loaded before either.

Required settings:

  - MONGO_URI (-m): MongoDB connection string

Optional settings:

  - PORT (-p): server port (default 5000)
  - SMTP_SENDER / SMTP_PASSWORD: mail credentials; when absent, alert
    dispatch becomes a logged no-op instead of a startup failure
  - SMTP_HOST (-smtp-host): mail host (default smtp.gmail.com)
  - SMTP_PORT (-smtp-port): 587 or 465 (default 587)
  - SMTP_TLS: "starttls" or "implicit" (default starttls)
  - SMTP_FORCE_IPV4: dial the mail host over tcp4 only
  - DISPATCH_MODE (-dispatch-mode): "async" or "sync" (default async)
  - DISPATCH_WORKERS / DISPATCH_QUEUE: async pool sizing (default 2 / 32)

# Recognized Options

TLS and dispatch modes are validated against the recognized values at
startup; an unknown value is a configuration error, not a silent default.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
*/
package cliparse
