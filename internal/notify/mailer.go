package notify

import (
	"gopkg.in/gomail.v2"

	"github.com/atlanticleather/storefront/internal/config"
)

type MailSender interface {
	Send(to, subject, body string) error
}

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer returns nil when no SMTP host is configured; the dispatcher
// treats a nil mailer as email disabled.
func NewMailer(cfg *config.Config) MailSender {
	if cfg.SMTPHost == "" {
		return nil
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}
