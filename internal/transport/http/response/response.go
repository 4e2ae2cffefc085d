package response

import (
	"errors"
	"net/http"

	"intern-tracker/internal/domain"
)

type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func Err(status int, code, message string) (int, ErrorBody) {
	return status, ErrorBody{Error: ErrorDetail{Message: message, Code: code}}
}

// FromError maps a domain error to exactly one status and error code.
// Anything unmapped becomes 500 / SERVER_ERROR.
func FromError(err error) (int, ErrorBody) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return Err(http.StatusBadRequest, CodeValidation, ve.Error())
	}
	var iie *domain.InvalidIDError
	if errors.As(err, &iie) {
		return Err(http.StatusNotFound, CodeNotFound, iie.Error())
	}
	if errors.Is(err, domain.ErrNotFound) {
		return Err(http.StatusNotFound, CodeNotFound, "Intern not found")
	}
	if errors.Is(err, domain.ErrDuplicateEmail) {
		return Err(http.StatusConflict, CodeDuplicate, "Duplicate field value entered")
	}
	msg := "Server Error"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return Err(http.StatusInternalServerError, CodeServer, msg)
}
