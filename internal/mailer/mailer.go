package mailer

import (
	"fmt"

	"pixi/internal/config"
	appErrors "pixi/pkg/errors"

	"gopkg.in/gomail.v2"
)

// Mailer is the outbound transactional-email collaborator.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer delivers mail through a configured SMTP relay.
type SMTPMailer struct {
	cfg *config.SMTPConfig
}

func NewSMTPMailer(cfg *config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.From, m.cfg.FromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrEmailDelivery, err)
	}

	return nil
}
