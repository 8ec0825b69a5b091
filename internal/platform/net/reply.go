package net

import (
	"net/http"

	perr "issuehound/internal/platform/errors"
)

// Wire is the envelope used when responding outside the normal handler
// path, such as the panic recoverer writing straight to the connection
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Error builds an error envelope, deriving the status from the error code
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		return http.StatusOK, Wire{
			StatusCode: http.StatusOK,
			Status:     http.StatusText(http.StatusOK),
			RequestID:  reqID,
		}
	}
	status := perr.HTTPStatus(err)
	w := perr.WireFrom(err)
	return status, Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       w.Code,
		Error:      w.Message,
		RequestID:  reqID,
	}
}
