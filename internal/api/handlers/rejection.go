package handlers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/availability"
)

// RejectionStatus HTTP статус для причины отказа валидатора
func RejectionStatus(reason availability.Reason) int {
	switch reason {
	case availability.ReasonOverlapsExisting:
		return http.StatusConflict
	case availability.ReasonServiceNotFound:
		return http.StatusNotFound
	default:
		return http.StatusUnprocessableEntity
	}
}

// RespondIfRejected пишет отказ валидатора и возвращает true, если err - отказ
func RespondIfRejected(w http.ResponseWriter, err error) bool {
	var rejection *availability.Rejection
	if !errors.As(err, &rejection) {
		return false
	}
	RespondRejection(w, RejectionStatus(rejection.Reason), rejection.Message, string(rejection.Reason))
	return true
}
