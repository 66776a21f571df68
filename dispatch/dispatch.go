// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/points-tracker/cliparse"
	"github.com/danielhkuo/points-tracker/models"
)

// AlertSubject is the fixed subject line for every alert message.
const AlertSubject = "Points Tracker Alert"

var (
	// ErrQueueFull means the async queue is at capacity; the alert was not
	// accepted. Handlers map it to 503.
	ErrQueueFull = errors.New("dispatch queue full")

	// ErrClosed means Dispatch was called after Close.
	ErrClosed = errors.New("dispatcher closed")
)

// Outcome describes what Dispatch did with a request. The skip outcomes
// are benign no-ops, not errors.
type Outcome string

const (
	OutcomeSent                 Outcome = "sent"
	OutcomeQueued               Outcome = "queued"
	OutcomeFailed               Outcome = "failed"
	OutcomeSkippedNoRecipients  Outcome = "skipped_no_recipients"
	OutcomeSkippedNoCredentials Outcome = "skipped_no_credentials"
)

// Skipped reports whether the outcome is a benign no-op.
func (o Outcome) Skipped() bool {
	return o == OutcomeSkippedNoRecipients || o == OutcomeSkippedNoCredentials
}

// Sender submits one composed message to the mail transport. Exactly one
// attempt; the dispatcher never retries.
type Sender interface {
	Send(ctx context.Context, subject, body string, recipients []string) error
}

type job struct {
	id         string
	body       string
	recipients []string
}

// Dispatcher turns notification targets into gateway addresses and submits
// alert messages either inline (sync mode) or through a bounded worker
// pool (async mode). The mode is fixed at construction, never mixed.
type Dispatcher struct {
	cfg    cliparse.Config
	sender Sender

	mu     sync.Mutex
	closed bool
	queue  chan job
	wg     sync.WaitGroup
}

// New creates a dispatcher. In async mode the worker pool starts
// immediately and runs until Close.
func New(cfg cliparse.Config, sender Sender) *Dispatcher {
	d := &Dispatcher{cfg: cfg, sender: sender}

	if cfg.DispatchMode == models.DispatchAsync {
		d.queue = make(chan job, cfg.DispatchQueue)
		for i := 0; i < cfg.DispatchWorkers; i++ {
			d.wg.Add(1)
			go d.worker()
		}
	}

	return d
}

// Dispatch builds the recipient list and sends one plain-text message to
// all of it. Invalid targets are dropped silently; an empty result or
// missing credentials skip the send entirely and report a benign outcome.
// In async mode the call returns as soon as the job is queued; transport
// failures then surface only in the log. In sync mode the transport error
// is returned to the caller.
func (d *Dispatcher) Dispatch(ctx context.Context, message string, targets []models.NotificationTarget) (Outcome, error) {
	recipients := BuildRecipients(targets)
	if len(recipients) == 0 {
		slog.Info("alert skipped", "reason", "no valid recipients", "targets", len(targets))
		return OutcomeSkippedNoRecipients, nil
	}

	if !d.cfg.HasMailCredentials() {
		slog.Info("alert skipped", "reason", "credentials missing", "recipients", len(recipients))
		return OutcomeSkippedNoCredentials, nil
	}

	if d.cfg.DispatchMode == models.DispatchSync {
		if err := d.send(ctx, job{id: uuid.NewString(), body: message, recipients: recipients}); err != nil {
			return OutcomeFailed, err
		}
		return OutcomeSent, nil
	}

	j := job{id: uuid.NewString(), body: message, recipients: recipients}
	if err := d.enqueue(j); err != nil {
		slog.Warn("alert rejected", "job_id", j.id, "error", err)
		return OutcomeFailed, err
	}

	slog.Info("alert queued", "job_id", j.id, "recipients", len(recipients))
	return OutcomeQueued, nil
}

func (d *Dispatcher) enqueue(j job) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}

	// Non-blocking: a full queue rejects the job instead of stalling the
	// request or spawning unbounded sends.
	select {
	case d.queue <- j:
		return nil
	default:
		return ErrQueueFull
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for j := range d.queue {
		// Detached from any request lifetime; the sender enforces its
		// own transport timeout.
		if err := d.send(context.Background(), j); err != nil {
			slog.Error("alert send failed", "job_id", j.id, "error", err)
		}
	}
}

func (d *Dispatcher) send(ctx context.Context, j job) error {
	start := time.Now()
	if err := d.sender.Send(ctx, AlertSubject, j.body, j.recipients); err != nil {
		return err
	}
	slog.Info("alert sent", "job_id", j.id, "recipients", len(j.recipients), "duration_ms", time.Since(start).Milliseconds())
	return nil
}

// Close stops accepting jobs and waits for in-flight sends to finish.
// Safe to call in sync mode and more than once.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	if d.queue != nil {
		close(d.queue)
	}
	d.mu.Unlock()

	d.wg.Wait()
}
