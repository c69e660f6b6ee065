// Package mailer delivers transactional HTML mail over an authenticated
// relay. Delivery is fire-and-forget: failures are logged and swallowed, so
// no caller may treat a sent mail as a precondition for progress.
package mailer

import (
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/chems34/IA-webgen/internal/config"
)

type Mailer struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

// New returns a Mailer. Without credentials the mailer runs in simulated
// mode: every send is logged instead of dispatched.
func New(cfg config.SMTPConfig, logger *zap.Logger) *Mailer {
	m := &Mailer{from: cfg.Email, logger: logger}
	if cfg.Email != "" && cfg.Password != "" {
		m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Email, cfg.Password)
	}
	return m
}

// Simulated reports whether mail is being logged instead of sent.
func (m *Mailer) Simulated() bool {
	return m.dialer == nil
}

func (m *Mailer) Send(to string, subject string, htmlBody string) {
	if m.dialer == nil {
		m.logger.Info("simulated email send",
			zap.String("to", to), zap.String("subject", subject))
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("email delivery failed",
			zap.String("to", to), zap.String("subject", subject), zap.Error(err))
		return
	}

	m.logger.Info("email sent", zap.String("to", to), zap.String("subject", subject))
}
