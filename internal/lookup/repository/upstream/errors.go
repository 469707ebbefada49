package upstream

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// ResponseError is a non-2xx (or success:false) answer from the upstream.
type ResponseError struct {
	Status  int
	Message string
	Body    []byte

	cause error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("upstream responded %d: %s", e.Status, e.Message)
}

func (e *ResponseError) Unwrap() error { return e.cause }

// PayloadMessage implements apperror.PayloadError.
func (e *ResponseError) PayloadMessage() string { return e.Message }

// StatusCode implements apperror.PayloadError.
func (e *ResponseError) StatusCode() int { return e.Status }

type errorEnvelope struct {
	Message  string `json:"message"`
	Error    string `json:"error"`
	Status   int    `json:"status"`
	Response *struct {
		Status int `json:"status"`
		Data   *struct {
			Message string `json:"message"`
		} `json:"data"`
	} `json:"response"`
}

// newResponseError extracts the message from one of the known error
// envelopes, falling back to the status text.
func newResponseError(status int, body []byte) *ResponseError {
	e := &ResponseError{Status: status, Body: body}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil {
		switch {
		case env.Response != nil && env.Response.Data != nil && env.Response.Data.Message != "":
			e.Message = env.Response.Data.Message
		case env.Message != "":
			e.Message = env.Message
		case env.Error != "":
			e.Message = env.Error
		}
	}

	if e.Message == "" {
		e.Message = strings.TrimSpace(http.StatusText(status))
	}
	if e.Message == "" {
		e.Message = "unexpected upstream response"
	}
	return e
}
