// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dispatch

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/danielhkuo/points-tracker/cliparse"
	"github.com/danielhkuo/points-tracker/models"
)

const transportTimeout = 15 * time.Second

// SMTPSender submits messages over SMTP using go-mail. The TLS mode
// (587+STARTTLS vs 465+implicit) and optional IPv4-only dialing are
// client options, not separate code paths.
type SMTPSender struct {
	cfg cliparse.Config
}

func NewSMTPSender(cfg cliparse.Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Send composes one plain-text message to all recipients and makes a
// single delivery attempt. Every recipient appears on the To line; the
// client treats alert recipients as a shared list.
func (s *SMTPSender) Send(ctx context.Context, subject, body string, recipients []string) error {
	msg := mail.NewMsg()
	if err := msg.From(s.cfg.SMTPSender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(recipients...); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := s.newClient()
	if err != nil {
		return fmt.Errorf("mail client setup: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mail send: %w", err)
	}

	return nil
}

func (s *SMTPSender) newClient() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(s.cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.SMTPSender),
		mail.WithPassword(s.cfg.SMTPPassword),
		mail.WithTimeout(transportTimeout),
	}

	if s.cfg.SMTPTLSMode == models.TLSModeImplicit {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	if s.cfg.SMTPForceIPv4 {
		// Some mail hosts publish AAAA records on networks with broken
		// IPv6 egress; restrict the dial to tcp4 for this client only.
		dialer := &net.Dialer{Timeout: transportTimeout}
		opts = append(opts, mail.WithDialContextFunc(func(ctx context.Context, _, address string) (net.Conn, error) {
			return dialer.DialContext(ctx, "tcp4", address)
		}))
	}

	return mail.NewClient(s.cfg.SMTPHost, opts...)
}
