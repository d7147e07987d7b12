package mailer

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

// Client клиент для отправки писем сотрудникам через SMTP
type Client struct {
	from   string
	dialer Dialer
	log    Logger
}

// NewClient создает клиент поверх gomail.Dialer
func NewClient(settings Settings, log Logger) *Client {
	return NewClientWithDialer(
		settings.From,
		gomail.NewDialer(settings.Host, settings.Port, settings.User, settings.Password),
		log,
	)
}

// NewClientWithDialer создает клиент с произвольной реализацией отправки
func NewClientWithDialer(from string, dialer Dialer, log Logger) *Client {
	return &Client{
		from:   from,
		dialer: dialer,
		log:    log,
	}
}

// Send отправляет письмо
// gomail не поддерживает context, поэтому отмена проверяется только до отправки.
func (c *Client) Send(ctx context.Context, msg Message) error {
	to := strings.TrimSpace(msg.To)
	if to == "" {
		return ErrInvalidRecipient
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if err := c.dialer.DialAndSend(m); err != nil {
		c.log.Error("Mailer: failed to send message to %s: %v", to, err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	c.log.Info("Mailer: message sent to %s", to)
	return nil
}
