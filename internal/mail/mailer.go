package mail

import (
	"fmt"
	"time"

	"github.com/go-mail/mail/v2"
)

// Mailer sends contact messages to the site owner over SMTP.
type Mailer struct {
	dialer    *mail.Dialer
	sender    string
	recipient string
}

// New builds a Mailer. The dialer upgrades to TLS opportunistically and the
// timeout bounds the whole dial-auth-send exchange so a dead SMTP host can
// never hang a request.
func New(host string, port int, username, password, sender, recipient string, timeout time.Duration) *Mailer {
	dialer := mail.NewDialer(host, port, username, password)
	dialer.StartTLSPolicy = mail.OpportunisticStartTLS
	dialer.Timeout = timeout
	return &Mailer{
		dialer:    dialer,
		sender:    sender,
		recipient: recipient,
	}
}

// SendContact delivers one message: subject is the sender's address, body is
// the message content. Transport failures are returned, never swallowed.
func (m *Mailer) SendContact(fromEmail, message string) error {
	msg := mail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", m.recipient)
	msg.SetHeader("Reply-To", fromEmail)
	msg.SetHeader("Subject", fromEmail)
	msg.SetBody("text/html", message)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}
	return nil
}
