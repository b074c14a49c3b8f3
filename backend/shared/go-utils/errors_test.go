package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFactoriesClassify(t *testing.T) {
	cases := []struct {
		name   string
		err    *AppError
		status int
		kind   ErrorKind
		msg    string
	}{
		{"not found default", NewNotFoundError(""), 404, KindNotFound, "Resource not found"},
		{"not found custom", NewNotFoundError("Property not found"), 404, KindNotFound, "Property not found"},
		{"validation", NewValidationError("bad input", map[string]string{"f": "x"}), 400, KindValidation, "bad input"},
		{"authentication", NewAuthenticationError(""), 401, KindAuthentication, "Authentication required"},
		{"authorization", NewAuthorizationError(""), 403, KindAuthorization, "Permission denied"},
		{"generic zero status", NewAppError("boom", 0, nil), 500, KindInternal, "boom"},
		{"wrapped", WrapInternal("Failed to search properties", errors.New("conn reset")), 500, KindInternal, "Failed to search properties"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.StatusCode != tc.status {
				t.Fatalf("status: expected %d, got %d", tc.status, tc.err.StatusCode)
			}
			if tc.err.Kind != tc.kind {
				t.Fatalf("kind: expected %s, got %s", tc.kind, tc.err.Kind)
			}
			if tc.err.Error() != tc.msg {
				t.Fatalf("message: expected %q, got %q", tc.msg, tc.err.Error())
			}
		})
	}
}

func TestIsAppErrorThroughWrapping(t *testing.T) {
	typed := NewNotFoundError("gone")
	if !IsAppError(typed) {
		t.Fatal("expected typed error to be classified")
	}
	if !IsAppError(fmt.Errorf("ctx: %w", typed)) {
		t.Fatal("expected wrapped typed error to be classified")
	}
	if IsAppError(errors.New("raw")) {
		t.Fatal("expected raw error not to be classified")
	}
	if IsAppError(nil) {
		t.Fatal("expected nil not to be classified")
	}
	if KindOf(fmt.Errorf("ctx: %w", typed)) != KindNotFound {
		t.Fatal("expected KindOf to see through wrapping")
	}
}

func TestWrapInternalKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := WrapInternal("Failed to fetch featured properties", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be reachable with errors.Is")
	}
	if err.Details != cause.Error() {
		t.Fatalf("expected details to carry the cause message, got %v", err.Details)
	}
}

type panickyErr struct{}

func (*panickyErr) Error() string { panic("boom") }

func TestNormalizeErrorNeverPanics(t *testing.T) {
	var typedNil *AppError
	inputs := []any{nil, typedNil, error(nil), &panickyErr{}}
	for i, in := range inputs {
		r := NormalizeError(in, true)
		if r.StatusCode != http.StatusInternalServerError {
			t.Fatalf("input %d: expected 500, got %d", i, r.StatusCode)
		}
		if r.Message != unknownErrorMessage {
			t.Fatalf("input %d: expected generic message, got %q", i, r.Message)
		}
	}
}

func TestNormalizeErrorShapes(t *testing.T) {
	details := []string{"title is required"}
	typed := NewValidationError("Invalid inquiry", details)

	prod := NormalizeError(typed, false)
	if prod.StatusCode != 400 || prod.Message != "Invalid inquiry" {
		t.Fatalf("unexpected prod report: %+v", prod)
	}
	if prod.Details != nil || prod.Stack != "" {
		t.Fatalf("production report must not leak internals: %+v", prod)
	}

	dev := NormalizeError(typed, true)
	if dev.Details == nil {
		t.Fatal("development report should include details")
	}
	if dev.Stack == "" {
		t.Fatal("development report should include a stack trace")
	}

	raw := NormalizeError(errors.New("socket closed"), false)
	if raw.StatusCode != 500 || raw.Message != "socket closed" {
		t.Fatalf("unexpected raw report: %+v", raw)
	}

	str := NormalizeError("plain string failure", false)
	if str.StatusCode != 500 || str.Message != "plain string failure" {
		t.Fatalf("unexpected string report: %+v", str)
	}

	num := NormalizeError(42, false)
	if num.StatusCode != 500 || num.Message != "42" {
		t.Fatalf("unexpected value report: %+v", num)
	}
}

func TestHandleAppError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleAppError(rec, NewNotFoundError("Property not found"), false)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"code":"not_found"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	HandleAppError(rec, WrapInternal("Failed to search properties", errors.New("secret dsn")), false)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "secret dsn") {
		t.Fatalf("production body leaked the cause: %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	HandleAppError(rec, errors.New("untyped"), true)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for untyped errors, got %d", rec.Code)
	}
}
