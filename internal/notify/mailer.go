package notify

import (
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer delivers a single HTML message.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// NewMailer returns an SMTP mailer, or a logging-only mailer when no host is
// configured so that notification triggers keep working in unconfigured
// environments.
func NewMailer(host string, port int, user, pass, from string, log *zap.Logger) Mailer {
	if host == "" {
		log.Warn("smtp not configured, outbound mail will only be logged")
		return &logMailer{log: log}
	}
	return &smtpMailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

func (m *smtpMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}

type logMailer struct{ log *zap.Logger }

func (m *logMailer) Send(to, subject, _ string) error {
	m.log.Info("mail (not sent, smtp disabled)",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}
