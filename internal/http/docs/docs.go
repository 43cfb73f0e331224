// Package docs serves the OpenAPI document and a Swagger UI page for it.
package docs

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v5"
)

//go:embed swagger-ui.html
var swaggerUI []byte

// ErrInvalidSpec is returned by ReadSpec when the file is not valid JSON.
var ErrInvalidSpec = errors.New("openapi document is not valid JSON")

// ReadSpec loads the OpenAPI document at path.
func ReadSpec(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read openapi document: %w", err)
	}
	if !json.Valid(b) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidSpec)
	}
	return b, nil
}

// Register serves spec at GET /api-docs/openapi.json and the Swagger UI at
// GET /api-docs.
func Register(e *echo.Echo, spec []byte) {
	e.GET("/api-docs/openapi.json", func(c *echo.Context) error {
		return c.Blob(http.StatusOK, "application/json", spec)
	})
	e.GET("/api-docs", func(c *echo.Context) error {
		return c.HTMLBlob(http.StatusOK, swaggerUI)
	})
}
