package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/fxamacker/cbor/v2"
	"github.com/labstack/echo/v5"

	"github.com/janisto/greeting-playground/internal/platform/validate"
)

// Negotiate writes data as JSON, or as CBOR when the Accept header prefers it.
func Negotiate(c *echo.Context, status int, data any) error {
	if selectFormat(c.Request().Header.Get("Accept"), formatJSON, formatCBOR) == formatCBOR {
		b, err := cbor.Marshal(data)
		if err != nil {
			return err
		}
		return c.Blob(status, "application/cbor", b)
	}
	return c.JSON(status, data)
}

// writeProblem writes problem as application/problem+json by default,
// application/problem+cbor when CBOR is preferred, or an HTML page when a
// browser asks for text/html.
func writeProblem(w http.ResponseWriter, r *http.Request, problem ProblemDetails) {
	ensureVary(w.Header(), "Origin", "Accept")

	switch selectFormat(r.Header.Get("Accept"), formatJSON, formatCBOR, formatHTML) {
	case formatCBOR:
		w.Header().Set("Content-Type", "application/problem+cbor")
		w.WriteHeader(problem.Status)
		_ = cbor.NewEncoder(w).Encode(problem)
	case formatHTML:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(problem.Status)
		_ = problemPage(problem).Render(r.Context(), w)
	default:
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(problem.Status)
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		_ = enc.Encode(problem)
	}
}

// toProblem maps any handler error onto a Problem Details value.
func toProblem(err error, method string) ProblemDetails {
	var (
		pd *ProblemDetails
		ve *validate.ValidationError
		he *echo.HTTPError
	)

	switch {
	case errors.As(err, &pd):
		return *pd

	case errors.As(err, &ve):
		p := NewError(http.StatusUnprocessableEntity, ve.Message)
		for _, f := range ve.Fields {
			p.Errors = append(p.Errors, ErrorDetail{
				Message:  f.Message,
				Location: f.Field,
				Value:    f.Value,
			})
		}
		return *p

	case errors.Is(err, echo.ErrNotFound):
		return *NewError(http.StatusNotFound, "resource not found")

	case errors.Is(err, echo.ErrMethodNotAllowed):
		return *NewError(http.StatusMethodNotAllowed, fmt.Sprintf("method %s not allowed", method))

	case errors.As(err, &he):
		return *NewError(he.Code, he.Message)

	default:
		return *NewError(http.StatusInternalServerError, "internal server error")
	}
}

func committed(c *echo.Context) bool {
	resp, err := echo.UnwrapResponse(c.Response())
	return err == nil && resp.Committed
}

// Recoverer returns Echo middleware that turns panics into a 500 problem.
// http.ErrAbortHandler is re-panicked to keep net/http abort semantics.
func Recoverer() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				slog.ErrorContext(c.Request().Context(), "panic recovered",
					slog.Any("error", rec),
					slog.String("stack", string(debug.Stack())),
				)

				if committed(c) {
					return
				}
				writeProblem(c.Response(), c.Request(), *Error500("internal server error"))
			}()
			return next(c)
		}
	}
}

// NewHTTPErrorHandler returns an Echo HTTPErrorHandler that produces RFC 9457 Problem Details.
func NewHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(c *echo.Context, err error) {
		if committed(c) {
			return
		}
		writeProblem(c.Response(), c.Request(), toProblem(err, c.Request().Method))
	}
}
