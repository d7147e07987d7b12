package reports

import "errors"

var (
	// ErrInvalidDateRange возвращается при некорректном или слишком длинном периоде
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
