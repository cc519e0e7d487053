package notifier

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"

	"bakery-api/config"
	"bakery-api/models"
)

// ErrNotConfigured is returned when the SMTP settings are incomplete. The
// handler maps it to a 500 so a broken deployment is visible to the caller
// without leaking which setting is missing.
var ErrNotConfigured = errors.New("email configuration is missing")

// Mailer sends order emails over SMTP, one message per accepted order, to
// the fixed destination address.
type Mailer struct {
	cfg  *config.Config
	send func(m *gomail.Message) error
}

func NewMailer(cfg *config.Config) *Mailer {
	dialer := gomail.NewDialer(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPass)
	// Port 465 expects implicit TLS rather than STARTTLS.
	dialer.SSL = cfg.EmailPort == 465

	return &Mailer{
		cfg:  cfg,
		send: func(m *gomail.Message) error { return dialer.DialAndSend(m) },
	}
}

func (m *Mailer) Send(ctx context.Context, order models.Order) error {
	if !m.cfg.EmailReady() {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.EmailUser, "Sabor de Emociones")
	msg.SetHeader("To", m.cfg.EmailTo)
	if order.Email != "" {
		msg.SetHeader("Reply-To", order.Email)
	} else {
		msg.SetHeader("Reply-To", m.cfg.EmailUser)
	}
	msg.SetHeader("Subject", fmt.Sprintf("Nuevo Pedido de %s - $%.2f", order.Name, order.Total))
	msg.SetBody("text/plain", FormatOrderText(order))
	msg.AddAlternative("text/html", FormatOrderHTML(order))

	return m.send(msg)
}
