package notify

import (
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog/log"
)

// Mailer sends best-effort email notifications. Failures are for the caller
// to log, never to propagate into the operation that triggered the mail.
type Mailer interface {
	Send(to, subject, body string) error
}

// NewMailer returns an SMTP mailer when addr is configured and a log-only
// mailer otherwise.
func NewMailer(addr, from string) Mailer {
	if addr == "" {
		return &LogMailer{}
	}
	return &SMTPMailer{Addr: addr, From: from}
}

// SMTPMailer delivers through a plain SMTP relay.
type SMTPMailer struct {
	Addr string
	From string
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.From, to, subject, body)
	return smtp.SendMail(m.Addr, nil, m.From, []string{to}, []byte(msg))
}

// LogMailer records outgoing notifications instead of delivering them. Used
// in development and wherever no relay is configured.
type LogMailer struct{}

func (m *LogMailer) Send(to, subject, body string) error {
	log.Info().Str("to", to).Str("subject", subject).Msg("email notification (no SMTP relay configured)")
	return nil
}
