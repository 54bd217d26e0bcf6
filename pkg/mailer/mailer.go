// Package mailer delivers transactional email (verification codes and
// notification copies). Delivery failures are logged and never fail the
// request that triggered them.
package mailer

import (
	"fmt"

	"freeco/config"
	"freeco/internal/logger"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type Mailer struct {
	dialer *gomail.Dialer
	from   string
	sender string
}

// New returns a Mailer, or nil when SMTP credentials are not configured
// (callers treat a nil Mailer as "email disabled").
func New(cfg *config.SMTPConfig) *Mailer {
	if cfg.Email == "" || cfg.Password == "" {
		return nil
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Email, cfg.Password),
		from:   cfg.Email,
		sender: cfg.Sender,
	}
}

func (m *Mailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}

// SendOTP emails a verification code. Best effort.
func (m *Mailer) SendOTP(to, name, code string) {
	if m == nil {
		return
	}
	body := fmt.Sprintf("Hello %s,\n\nYour verification code is: %s\nIt will expire in 10 minutes.\n\nIf you did not request this, please ignore this email.", name, code)
	if err := m.send(to, "Verify Your Account", body); err != nil {
		logger.L().Warn("otp email failed", zap.String("to", to), zap.Error(err))
	}
}

// SendNotification emails a copy of an in-app notification. Best effort.
func (m *Mailer) SendNotification(to, subject, content string) {
	if m == nil {
		return
	}
	if err := m.send(to, subject, content); err != nil {
		logger.L().Warn("notification email failed", zap.String("to", to), zap.Error(err))
	}
}
