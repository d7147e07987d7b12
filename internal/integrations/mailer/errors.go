package mailer

import "errors"

var (
	// ErrInvalidRecipient возвращается при пустом адресе получателя
	ErrInvalidRecipient = errors.New("mailer client: invalid recipient")

	// ErrSendFailed возвращается при ошибке отправки письма через SMTP
	ErrSendFailed = errors.New("mailer client: failed to send message")
)
