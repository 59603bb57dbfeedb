// Package mail sends transactional email through a plain SMTP relay.
package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/edificio/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Sender delivers a single HTML message.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// SMTPSender implements Sender over an authenticated SMTP relay.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
	logger   *zap.Logger
}

// NewSMTPSender creates a sender from mail configuration
func NewSMTPSender(cfg config.MailConfig, logger *zap.Logger) *SMTPSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SMTPSender{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
		logger:   logger,
	}
}

// Send delivers one HTML message to a single recipient
func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	if to == "" {
		return fmt.Errorf("mail recipient is required")
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	if err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}

	s.logger.Info("Mail sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

// NopSender discards all messages. Used in development when no relay is
// configured.
type NopSender struct {
	logger *zap.Logger
}

// NewNopSender creates a sender that only logs
func NewNopSender(logger *zap.Logger) *NopSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NopSender{logger: logger}
}

// Send logs the message instead of delivering it
func (s *NopSender) Send(to, subject, htmlBody string) error {
	s.logger.Info("Mail suppressed (no relay configured)",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}
