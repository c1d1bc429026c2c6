package oaserrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ParseError{
			Path:    "/path/to/swagger.yaml",
			Line:    42,
			Column:  10,
			Message: "invalid syntax",
			Cause:   errors.New("underlying error"),
		}
		want := "parse error in /path/to/swagger.yaml at line 42, column 10: invalid syntax: underlying error"
		if msg := err.Error(); msg != want {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with line only", func(t *testing.T) {
		err := &ParseError{Line: 10}
		if err.Error() != "parse error at line 10" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrParse only", func(t *testing.T) {
		err := &ParseError{Message: "test"}
		if !errors.Is(err, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
		if errors.Is(err, ErrValidation) || errors.Is(err, ErrConversion) || errors.Is(err, ErrConfig) {
			t.Error("ParseError should not match other sentinels")
		}
	})

	t.Run("As extracts ParseError through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading: %w", &ParseError{Path: "api.yaml"})
		var parseErr *ParseError
		if !errors.As(wrapped, &parseErr) {
			t.Fatal("errors.As should extract ParseError")
		}
		if parseErr.Path != "api.yaml" {
			t.Errorf("unexpected path: %s", parseErr.Path)
		}
	})
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{"path and field", &ValidationError{Path: "info", Field: "title", Message: "required field is missing"}, "validation error at info.title: required field is missing"},
		{"root field", &ValidationError{Field: "paths", Message: "required field is missing"}, "validation error at paths: required field is missing"},
		{"path only", &ValidationError{Path: "paths./pets"}, "validation error at paths./pets"},
		{"empty", &ValidationError{}, "validation error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, ErrValidation) {
				t.Error("ValidationError should match ErrValidation")
			}
		})
	}
}

func TestConversionError(t *testing.T) {
	err := &ConversionError{
		SourceVersion: "2.0",
		TargetVersion: "3.0.1",
		Path:          "paths./pets.post",
		IssueCount:    2,
		Message:       "2 blocking issues",
	}
	want := "conversion error (2.0 -> 3.0.1) at paths./pets.post: 2 blocking issues"
	if err.Error() != want {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrConversion) {
		t.Error("ConversionError should match ErrConversion")
	}
	if err.Unwrap() != nil {
		t.Error("Unwrap should return nil when no cause")
	}
}

func TestConfigError(t *testing.T) {
	cause := errors.New("no such version")
	err := &ConfigError{Option: "target-version", Value: "4.0", Message: "unsupported", Cause: cause}
	want := "configuration error for target-version (value: 4.0): unsupported: no such version"
	if err.Error() != want {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigError should match ErrConfig")
	}
	if !errors.Is(err, cause) {
		t.Error("ConfigError should unwrap to its cause")
	}
}
