// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/arthur-debert/manifestdestiny/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "parse_error",
			code:    errors.ErrParse,
			message: "malformed line",
			wantStr: "[PARSE] malformed line",
		},
		{
			name:    "argument_error",
			code:    errors.ErrArgument,
			message: "key foo still open",
			wantStr: "[ARGUMENT] key foo still open",
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
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrFileAccess, "cannot read manifest")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[FILE_ACCESS] cannot read manifest: permission denied"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestMissingFiles(t *testing.T) {
	err := errors.MissingFiles("a.ini", "b.ini")

	if err.Code != errors.ErrMissingFile {
		t.Errorf("MissingFiles() code = %v, want %v", err.Code, errors.ErrMissingFile)
	}
	if got, want := err.Error(), "[MISSING_FILE] missing files: a.ini, b.ini"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !reflect.DeepEqual(err.Details["paths"], []string{"a.ini", "b.ini"}) {
		t.Errorf("Details[paths] = %v", err.Details["paths"])
	}
}

func TestParse(t *testing.T) {
	err := errors.Parse("suite.ini", 7, "duplicate section %q", "test_a.py")

	if got, want := err.Error(), `[PARSE] suite.ini:7: duplicate section "test_a.py"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if err.Details["line"] != 7 {
		t.Errorf("Details[line] = %v, want 7", err.Details["line"])
	}
	if got := errors.DetailKeys(err); !reflect.DeepEqual(got, []string{"line", "source"}) {
		t.Errorf("DetailKeys() = %v", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrMissingFile, "error 1")
	err2 := errors.New(errors.ErrMissingFile, "error 2")
	err3 := errors.New(errors.ErrParse, "error 3")

	if !err1.Is(err2) {
		t.Error("Is() should return true for same code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should work with ManifestError")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrIncludeCycle, "cycle"),
			code:     errors.ErrIncludeCycle,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrIncludeCycle, "cycle"),
			code:     errors.ErrParse,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"),
			code:     errors.ErrFileAccess,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrParse,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrParse,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrArgument, "bad")); got != errors.ErrArgument {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrArgument)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
	if got := errors.GetErrorDetails(stderrors.New("plain")); got != nil {
		t.Errorf("GetErrorDetails() = %v, want nil", got)
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")

	if !errors.IsErrorCode(configErr, errors.ErrConfigLoad) {
		t.Error("Top level should have ErrConfigLoad code")
	}

	var manifestErr *errors.ManifestError
	if stderrors.As(configErr.Unwrap(), &manifestErr) {
		if !errors.IsErrorCode(manifestErr, errors.ErrFileAccess) {
			t.Error("Middle error should have ErrFileAccess code")
		}
	}

	if !stderrors.Is(configErr, rootCause) {
		t.Error("Should find root cause with errors.Is")
	}
}
