// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/DmarshalTU/safecracker/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "too_short_error",
			code:    errors.ErrTooShort,
			message: "line too short",
			wantStr: "[TOO_SHORT] line too short",
		},
		{
			name:    "file_not_found_error",
			code:    errors.ErrFileNotFound,
			message: "input missing",
			wantStr: "[FILE_NOT_FOUND] input missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := errors.Wrap(cause, errors.ErrFilePermission, "reading input")

	if got := err.Error(); got != "[FILE_PERMISSION] reading input: permission denied" {
		t.Errorf("Error() = %q", got)
	}

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause should be reachable via errors.Is")
	}

	if errors.Wrap(nil, errors.ErrFileRead, "noop") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestIs_MatchesByCode(t *testing.T) {
	a := errors.New(errors.ErrInvalidDirection, "bad direction in line 3")
	b := errors.New(errors.ErrInvalidDirection, "different message")
	c := errors.New(errors.ErrInvalidMagnitude, "bad number")

	if !stderrors.Is(a, b) {
		t.Error("errors with the same code should match")
	}
	if stderrors.Is(a, c) {
		t.Error("errors with different codes should not match")
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrTooShort, "too short").WithDetail("line", "R")

	v, ok := errors.GetDetail(err, "line")
	if !ok {
		t.Fatal("detail should be present")
	}
	if v != "R" {
		t.Errorf("detail = %v, want R", v)
	}

	if _, ok := errors.GetDetail(err, "missing"); ok {
		t.Error("absent detail should report ok=false")
	}
}

func TestGetErrorCode(t *testing.T) {
	coded := errors.Newf(errors.ErrConfigParse, "bad toml at line %d", 7)
	if got := errors.GetErrorCode(coded); got != errors.ErrConfigParse {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrConfigParse)
	}

	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Wrapf(stderrors.New("strconv"), errors.ErrInvalidMagnitude, "invalid number")

	if !errors.IsErrorCode(err, errors.ErrInvalidMagnitude) {
		t.Error("IsErrorCode should match the error's code")
	}
	if errors.IsErrorCode(err, errors.ErrTooShort) {
		t.Error("IsErrorCode should reject other codes")
	}
	if errors.IsErrorCode(nil, errors.ErrTooShort) {
		t.Error("IsErrorCode(nil) should be false")
	}
}
