package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/mindanalyzer/internal/client/models"
)

var (
	ErrUnavailable     = errors.New("server unavailable")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidResponse = errors.New("invalid server response")
	ErrInvalidBaseURL  = errors.New("invalid server url")
)

// ServerError is a non-2xx response. Message and Details come from the
// response body when it is JSON; Code is the optional error kind.
type ServerError struct {
	StatusCode int
	Code       string
	Message    string
	Details    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Text())
}

// Text is the user-facing text: the server message, with details appended
// when they add something. Falls back to the HTTP status text.
func (e *ServerError) Text() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Details != "" && e.Details != msg {
		msg += ": " + e.Details
	}
	return msg
}

// HasMessage reports whether the server supplied any text of its own.
func (e *ServerError) HasMessage() bool {
	return e.Message != "" || e.Details != ""
}

// Is makes a 401 response match ErrUnauthorized.
func (e *ServerError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

func newServerError(status int, body []byte) *ServerError {
	se := &ServerError{StatusCode: status}

	var er models.ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return se
	}

	se.Code = strings.TrimSpace(er.Code)
	se.Message = firstNonEmpty(er.Error, er.Message)
	se.Details = strings.TrimSpace(er.Details)
	if se.Message == "" {
		se.Message, se.Details = se.Details, ""
	}
	return se
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
