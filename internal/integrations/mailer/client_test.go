package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, m...)
	return nil
}

func TestClient_Send(t *testing.T) {
	dialer := &fakeDialer{}
	c := NewClientWithDialer("turnos@salon.local", dialer, nopLogger{})

	err := c.Send(context.Background(), Message{
		To:      " ana@salon.local ",
		Subject: "Nuevo turno asignado",
		Body:    "Nuevo turno asignado: Juan - Corte el 2025-03-03 a las 10:00.",
	})
	require.NoError(t, err)

	require.Len(t, dialer.sent, 1)
	m := dialer.sent[0]
	assert.Equal(t, []string{"turnos@salon.local"}, m.GetHeader("From"))
	assert.Equal(t, []string{"ana@salon.local"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Nuevo turno asignado"}, m.GetHeader("Subject"))
}

func TestClient_Send_Errors(t *testing.T) {
	t.Run("empty recipient", func(t *testing.T) {
		dialer := &fakeDialer{}
		c := NewClientWithDialer("from@x", dialer, nopLogger{})

		err := c.Send(context.Background(), Message{To: "  "})
		assert.ErrorIs(t, err, ErrInvalidRecipient)
		assert.Empty(t, dialer.sent)
	})

	t.Run("smtp failure", func(t *testing.T) {
		c := NewClientWithDialer("from@x", &fakeDialer{err: errors.New("connection refused")}, nopLogger{})

		err := c.Send(context.Background(), Message{To: "a@x"})
		assert.ErrorIs(t, err, ErrSendFailed)
	})

	t.Run("cancelled context", func(t *testing.T) {
		dialer := &fakeDialer{}
		c := NewClientWithDialer("from@x", dialer, nopLogger{})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := c.Send(ctx, Message{To: "a@x"})
		assert.ErrorIs(t, err, ErrSendFailed)
		assert.Empty(t, dialer.sent)
	})
}
