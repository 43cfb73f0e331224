package respond

import (
	"fmt"
	"net/http"
)

// ProblemDetails represents an RFC 9457 Problem Details response.
type ProblemDetails struct {
	Type     string        `json:"type"               cbor:"type"               example:"about:blank"`
	Title    string        `json:"title"              cbor:"title"              example:"Not Found"`
	Status   int           `json:"status"             cbor:"status"             example:"404"`
	Detail   string        `json:"detail,omitempty"   cbor:"detail,omitempty"   example:"greetee not found"`
	Instance string        `json:"instance,omitempty" cbor:"instance,omitempty" example:"/v1/greetee"`
	Errors   []ErrorDetail `json:"errors,omitempty"   cbor:"errors,omitempty"`
}

// ErrorDetail is a single field-level error within a Problem Details response.
type ErrorDetail struct {
	Message  string `json:"message"            cbor:"message"            example:"name is required"`
	Location string `json:"location,omitempty" cbor:"location,omitempty" example:"name"`
	Value    string `json:"value,omitempty"    cbor:"value,omitempty"    example:""`
}

func (p *ProblemDetails) Error() string {
	if p.Detail != "" {
		return fmt.Sprintf("%d %s: %s", p.Status, p.Title, p.Detail)
	}
	return fmt.Sprintf("%d %s", p.Status, p.Title)
}

// StatusCode implements echo.HTTPStatusCoder.
func (p *ProblemDetails) StatusCode() int {
	return p.Status
}

// NewError creates a ProblemDetails error with the given status code and detail message.
func NewError(status int, detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:   "about:blank",
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}
}

func Error401(detail string) *ProblemDetails { return NewError(http.StatusUnauthorized, detail) }
func Error404(detail string) *ProblemDetails { return NewError(http.StatusNotFound, detail) }
func Error409(detail string) *ProblemDetails { return NewError(http.StatusConflict, detail) }
func Error500(detail string) *ProblemDetails { return NewError(http.StatusInternalServerError, detail) }
func Error503(detail string) *ProblemDetails { return NewError(http.StatusServiceUnavailable, detail) }

// Error422 returns a 422 Unprocessable Entity problem with field-level errors.
func Error422(detail string, fields ...ErrorDetail) *ProblemDetails {
	p := NewError(http.StatusUnprocessableEntity, detail)
	p.Errors = fields
	return p
}
