// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package dispatch sends email-to-text alerts through carrier SMS gateways.

# Recipient Derivation

BuildRecipients turns phone/carrier pairs into gateway addresses:

	addrs := dispatch.BuildRecipients(targets)
	// {phone:"555-123-4567", carrier:"Verizon"} → "5551234567@vtext.com"

Rules:

  - eight named carriers map to fixed gateway domains; any other carrier
    string is used verbatim as the domain (direct-domain override)
  - non-digits are stripped from the phone; only exactly-10-digit numbers
    survive
  - empty phone or carrier, or a wrong digit count, drops the target
    silently — alerting is best-effort

# Dispatch Modes

One Dispatcher supports both modes behind the same call, selected by
configuration at construction:

	d := dispatch.New(cfg, dispatch.NewSMTPSender(cfg))
	outcome, err := d.Dispatch(ctx, message, targets)

Async (default): the job is placed on a bounded queue and a small fixed
worker pool makes the send; Dispatch returns before the transport
round-trip, and a transport failure is only a log line. A full queue
returns ErrQueueFull rather than spawning unbounded sends.

Sync: the send runs inline and its error is returned to the caller.

# Skip Outcomes

Two benign no-ops, reported as outcomes rather than errors:

  - OutcomeSkippedNoRecipients: every target was invalid or the list was
    empty; the transport is never touched
  - OutcomeSkippedNoCredentials: no sender/password configured

# Transport

SMTPSender uses go-mail with exactly one delivery attempt, no retry.
Transport variants are client options: port 587 with mandatory STARTTLS
or port 465 with implicit TLS (SMTP_TLS), a 15 second timeout, and
optional tcp4-only dialing (SMTP_FORCE_IPV4) for hosts with broken IPv6
egress. One message goes to all recipients on a shared To line.

# Shutdown

Close stops intake and waits for in-flight sends:

	d.Close()
*/
package dispatch
