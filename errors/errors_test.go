package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeNotFound, "not found", http.StatusNotFound)
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "not found" {
		t.Errorf("expected message 'not found', got %q", err.Message)
	}
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, err.HTTPStatus)
	}
	if err.Retryable {
		t.Error("NOT_FOUND should not be retryable")
	}
}

func TestAppError_New_Retryable(t *testing.T) {
	err := New(ErrCodeSourceFailed, "read failed", http.StatusBadGateway)
	if !err.Retryable {
		t.Error("SOURCE_FAILED should be retryable")
	}
}

func TestAppError_BufferLimitExceeded(t *testing.T) {
	err := BufferLimitExceeded("sort_by", 10)
	if err.Code != ErrCodeBufferLimitExceeded {
		t.Errorf("expected BUFFER_LIMIT_EXCEEDED, got %s", err.Code)
	}
	if err.Details["stage"] != "sort_by" {
		t.Errorf("expected stage=sort_by, got %v", err.Details["stage"])
	}
	if err.Details["limit"] != 10 {
		t.Errorf("expected limit=10, got %v", err.Details["limit"])
	}
	if err.Retryable {
		t.Error("buffer limit errors should not be retryable")
	}
}

func TestAppError_Canceled_KeepsContextCause(t *testing.T) {
	err := Canceled("group_by", context.DeadlineExceeded)
	if !stderrors.Is(err, context.DeadlineExceeded) {
		t.Error("expected Canceled to unwrap to the context error")
	}
	if err.Code != ErrCodeCanceled {
		t.Errorf("expected CANCELED, got %s", err.Code)
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := SourceFailed("lines", nil).WithCause(cause)
	if err.Cause != cause {
		t.Error("expected cause to be set via WithCause")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
}

func TestAppError_WithDetails_Merge(t *testing.T) {
	err := NotFound("pipeline", "fib").WithDetails(map[string]any{
		"extra": "info",
	})
	if err.Details["extra"] != "info" {
		t.Errorf("expected extra=info in details")
	}
	if err.Details["resource"] != "pipeline" {
		t.Error("expected original details to be preserved")
	}

	err.WithDetails(map[string]any{
		"another": "detail",
	})
	if err.Details["another"] != "detail" {
		t.Error("expected another=detail to be merged")
	}
	if err.Details["extra"] != "info" {
		t.Error("expected extra=info to be preserved after second merge")
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := &AppError{}
	err.WithDetail("key", "value")
	if err.Details == nil {
		t.Fatal("expected Details map to be initialized")
	}
	if err.Details["key"] != "value" {
		t.Errorf("expected key=value, got %v", err.Details["key"])
	}
}

func TestAppError_Constructors_Table(t *testing.T) {
	tests := []struct {
		name      string
		err       *AppError
		code      ErrorCode
		status    int
		retryable bool
	}{
		{"BufferLimitExceeded", BufferLimitExceeded("sort_by", 1), ErrCodeBufferLimitExceeded, http.StatusUnprocessableEntity, false},
		{"Canceled", Canceled("sort_by", context.Canceled), ErrCodeCanceled, http.StatusRequestTimeout, false},
		{"SourceFailed", SourceFailed("lines", nil), ErrCodeSourceFailed, http.StatusBadGateway, true},
		{"NotFound", NotFound("pipeline", ""), ErrCodeNotFound, http.StatusNotFound, false},
		{"InvalidInput", InvalidInput("take", "must be positive"), ErrCodeInvalidInput, http.StatusBadRequest, false},
		{"MissingField", MissingField("name"), ErrCodeMissingField, http.StatusBadRequest, false},
		{"InvalidConfig", InvalidConfig("server", nil), ErrCodeInvalidConfig, http.StatusInternalServerError, false},
		{"Validation", Validation("bad input"), ErrCodeInvalidInput, http.StatusBadRequest, false},
		{"Internal", Internal(nil), ErrCodeInternal, http.StatusInternalServerError, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, tc.err.Code)
			}
			if tc.err.HTTPStatus != tc.status {
				t.Errorf("expected status %d, got %d", tc.status, tc.err.HTTPStatus)
			}
			if tc.err.Retryable != tc.retryable {
				t.Errorf("expected retryable=%v, got %v", tc.retryable, tc.err.Retryable)
			}
		})
	}
}

func TestHasCode(t *testing.T) {
	wrapped := fmt.Errorf("collect: %w", BufferLimitExceeded("group_by", 3))
	if !HasCode(wrapped, ErrCodeBufferLimitExceeded) {
		t.Error("expected HasCode to see through fmt wrapping")
	}
	if HasCode(wrapped, ErrCodeCanceled) {
		t.Error("expected HasCode to reject a different code")
	}
	if HasCode(fmt.Errorf("plain"), ErrCodeInternal) {
		t.Error("expected HasCode to reject plain errors")
	}
}

func TestAppError_ToResponse_Success(t *testing.T) {
	err := NotFound("pipeline", "nope")
	resp := err.ToResponse()
	if resp.Error.Code != ErrCodeNotFound {
		t.Errorf("expected code NOT_FOUND in response, got %s", resp.Error.Code)
	}
	if resp.Error.Details["id"] != "nope" {
		t.Error("expected id=nope in response details")
	}
}

func TestAppError_AsAppError_Success(t *testing.T) {
	wrapped := fmt.Errorf("wrap: %w", Internal(nil))

	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed for wrapped AppError")
	}
	if got.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", got.Code)
	}

	if _, ok := AsAppError(fmt.Errorf("not an app error")); ok {
		t.Error("expected AsAppError to return false for non-AppError")
	}
	if IsAppError(fmt.Errorf("plain")) {
		t.Error("expected IsAppError to return false for plain error")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil) != nil {
		t.Error("Wrap(nil) should return nil")
	}

	orig := NotFound("item", "1")
	if Wrap(fmt.Errorf("outer: %w", orig)) != orig {
		t.Error("Wrap should return the wrapped AppError unchanged")
	}

	plain := fmt.Errorf("something broke")
	got := Wrap(plain)
	if got.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", got.Code)
	}
	if got.Cause != plain {
		t.Error("expected cause to be the original error")
	}
}
