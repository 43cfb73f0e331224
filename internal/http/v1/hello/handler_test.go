package hello

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/labstack/echo/v5"

	"github.com/janisto/greeting-playground/internal/platform/respond"
	"github.com/janisto/greeting-playground/internal/platform/validate"
)

const worldMarkup = "<h1>Hello World, React + Webpack + TypeScript 🚀</h1>"

func setupEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validate.New()
	e.HTTPErrorHandler = respond.NewHTTPErrorHandler()
	Register(e.Group(""))
	return e
}

func getWithName(name string) *http.Request {
	return httptest.NewRequest(http.MethodGet, "/hello?name="+url.QueryEscape(name), nil)
}

func TestGetHello(t *testing.T) {
	e := setupEcho()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, getWithName("World"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var data Data
	if err := json.Unmarshal(rec.Body.Bytes(), &data); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if data.Message != "Hello World, React + Webpack + TypeScript 🚀" {
		t.Fatalf("unexpected message %q", data.Message)
	}
	if data.Markup != worldMarkup {
		t.Fatalf("expected %q, got %q", worldMarkup, data.Markup)
	}
}

func TestGetHello_EmptyName(t *testing.T) {
	e := setupEcho()

	req := httptest.NewRequest(http.MethodGet, "/hello?name=", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var data Data
	if err := json.Unmarshal(rec.Body.Bytes(), &data); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if data.Message != "Hello , React + Webpack + TypeScript 🚀" {
		t.Fatalf("unexpected message %q", data.Message)
	}
}

func TestGetHello_MissingName(t *testing.T) {
	e := setupEcho()

	req := httptest.NewRequest(http.MethodGet, "/hello", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	var problem respond.ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if len(problem.Errors) == 0 || problem.Errors[0].Location != "name" {
		t.Fatalf("expected error at 'name', got %+v", problem.Errors)
	}
}

func TestGetHello_EscapesMarkup(t *testing.T) {
	e := setupEcho()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, getWithName("<b>"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var data Data
	if err := json.Unmarshal(rec.Body.Bytes(), &data); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if data.Message != "Hello <b>, React + Webpack + TypeScript 🚀" {
		t.Fatalf("expected raw text in message, got %q", data.Message)
	}
	if strings.Contains(data.Markup, "<b>") {
		t.Fatalf("expected escaped markup, got %q", data.Markup)
	}
	if !strings.Contains(data.Markup, "&lt;b&gt;") {
		t.Fatalf("expected &lt;b&gt; in markup, got %q", data.Markup)
	}
}

func TestGetHello_CBOR(t *testing.T) {
	e := setupEcho()

	req := getWithName("World")
	req.Header.Set("Accept", "application/cbor")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/cbor" {
		t.Fatalf("expected application/cbor, got %q", ct)
	}

	var data Data
	if err := cbor.Unmarshal(rec.Body.Bytes(), &data); err != nil {
		t.Fatalf("failed to unmarshal CBOR: %v", err)
	}
	if data.Markup != worldMarkup {
		t.Fatalf("expected %q, got %q", worldMarkup, data.Markup)
	}
}

func TestGetHelloMarkup(t *testing.T) {
	e := setupEcho()

	req := httptest.NewRequest(http.MethodGet, "/hello/markup?name=World", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected text/html, got %q", ct)
	}
	if rec.Body.String() != worldMarkup {
		t.Fatalf("expected %q, got %q", worldMarkup, rec.Body.String())
	}
}

func TestGetHelloMarkup_MissingName(t *testing.T) {
	e := setupEcho()

	req := httptest.NewRequest(http.MethodGet, "/hello/markup", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestCreateHello_Success(t *testing.T) {
	e := setupEcho()

	req := httptest.NewRequest(http.MethodPost, "/hello", strings.NewReader(`{"name":"Alice"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var data Data
	if err := json.Unmarshal(rec.Body.Bytes(), &data); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	want := "<h1>Hello Alice, React + Webpack + TypeScript 🚀</h1>"
	if data.Markup != want {
		t.Fatalf("expected %q, got %q", want, data.Markup)
	}
}

func TestCreateHello_EmptyName(t *testing.T) {
	e := setupEcho()

	req := httptest.NewRequest(http.MethodPost, "/hello", strings.NewReader(`{"name":""}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var data Data
	if err := json.Unmarshal(rec.Body.Bytes(), &data); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if data.Message != "Hello , React + Webpack + TypeScript 🚀" {
		t.Fatalf("unexpected message %q", data.Message)
	}
}

func TestCreateHello_MissingName(t *testing.T) {
	e := setupEcho()

	req := httptest.NewRequest(http.MethodPost, "/hello", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	var problem respond.ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if len(problem.Errors) == 0 {
		t.Fatal("expected validation errors")
	}
	if problem.Errors[0].Location != "name" {
		t.Fatalf("expected location 'name', got %q", problem.Errors[0].Location)
	}
	if problem.Errors[0].Message != "name is required" {
		t.Fatalf("expected 'name is required', got %q", problem.Errors[0].Message)
	}
}

func TestCreateHello_InvalidJSON(t *testing.T) {
	e := setupEcho()

	req := httptest.NewRequest(http.MethodPost, "/hello", strings.NewReader(`{invalid`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateHello_CBOR(t *testing.T) {
	e := setupEcho()

	req := httptest.NewRequest(http.MethodPost, "/hello", strings.NewReader(`{"name":"Bob"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/cbor")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/cbor" {
		t.Fatalf("expected application/cbor, got %q", ct)
	}

	var data Data
	if err := cbor.Unmarshal(rec.Body.Bytes(), &data); err != nil {
		t.Fatalf("failed to unmarshal CBOR: %v", err)
	}
	if data.Message != "Hello Bob, React + Webpack + TypeScript 🚀" {
		t.Fatalf("unexpected message %q", data.Message)
	}
}

func TestNewData_Idempotent(t *testing.T) {
	first, err := NewData(context.Background(), "World")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := NewData(context.Background(), "World")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical data, got %+v and %+v", first, second)
	}
}
