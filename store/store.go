// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/danielhkuo/points-tracker/models"
)

// ErrUnavailable wraps backend connection and auth failures. Handlers map
// it to 503; it is never retried here.
var ErrUnavailable = errors.New("state store unavailable")

// Store is the singleton-document adapter. FetchState never reports
// "not found": an absent document is materialized from the default.
// ReplaceState overwrites wholesale; last writer wins.
type Store interface {
	FetchState(ctx context.Context) (models.AppState, error)
	ReplaceState(ctx context.Context, doc models.AppState) error
}
