package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/kthmin/errors"
)

func TestValidatorRequired(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"data.xlsx", false},
		{"", true},
		{"   ", true},
	}
	for _, tc := range tests {
		v := New().Required("path", tc.value)
		if v.HasErrors() != tc.wantErr {
			t.Errorf("Required(%q): HasErrors=%v, want %v", tc.value, v.HasErrors(), tc.wantErr)
		}
	}
}

func TestValidatorRangeAndMin(t *testing.T) {
	v := New().Range("server.port", 8080, 1, 65535).Min("n", 1, 1)
	if v.HasErrors() {
		t.Errorf("expected no errors, got %v", v.Errors())
	}

	v2 := New().Range("server.port", 0, 1, 65535).Min("n", 0, 1)
	if len(v2.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %v", v2.Errors())
	}
	if v2.Errors()[0].Message != "must be between 1 and 65535" {
		t.Errorf("unexpected range message %q", v2.Errors()[0].Message)
	}
}

func TestValidatorOneOf(t *testing.T) {
	allowed := []string{"last", "random", "median3"}
	if New().OneOf("selection.pivot", "random", allowed).HasErrors() {
		t.Error("expected no error for allowed value")
	}
	if New().OneOf("selection.pivot", "", allowed).HasErrors() {
		t.Error("expected empty value to pass")
	}
	v := New().OneOf("selection.pivot", "first", allowed)
	if !v.HasErrors() || !strings.Contains(v.Errors()[0].Message, "last, random, median3") {
		t.Errorf("expected oneof error listing values, got %v", v.Errors())
	}
}

func TestValidatorCustom(t *testing.T) {
	if New().Custom(true, "x", "bad").HasErrors() {
		t.Error("expected no error when condition holds")
	}
	if !New().Custom(false, "x", "bad").HasErrors() {
		t.Error("expected error when condition fails")
	}
}

func TestValidatorValidateBuildsAppError(t *testing.T) {
	if New().Validate() != nil {
		t.Fatal("expected nil AppError for clean validator")
	}
	if err := New().Error(); err != nil {
		t.Fatalf("expected untyped nil error, got %v", err)
	}

	appErr := New().Required("path", "").Min("n", 0, 1).Validate()
	if appErr == nil {
		t.Fatal("expected AppError")
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}
	if appErr.Message != "path: is required; n: must be at least 1" {
		t.Errorf("unexpected message %q", appErr.Message)
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 2 {
		t.Errorf("expected 2 field errors in details, got %v", appErr.Details["fields"])
	}
}

type findRequest struct {
	Path  string `json:"path" validate:"required"`
	N     int    `json:"n" validate:"min=1"`
	Sheet string `json:"sheet,omitempty" validate:"omitempty,max=31"`
	Pivot string `validate:"omitempty,oneof=last random median3"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		req     findRequest
		wantMsg string
	}{
		{"valid", findRequest{Path: "a.xlsx", N: 3}, ""},
		{"missing path", findRequest{N: 1}, "path: is required"},
		{"rank below one", findRequest{Path: "a.xlsx", N: 0}, "n: must be at least 1"},
		{"sheet too long", findRequest{Path: "a.xlsx", N: 1, Sheet: strings.Repeat("s", 32)}, "sheet: must be at most 31 characters"},
		{"field without json tag", findRequest{Path: "a.xlsx", N: 1, Pivot: "first"}, "pivot: must be one of: last random median3"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.req)
			if tc.wantMsg == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			appErr, ok := errors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != errors.ErrCodeInvalidInput {
				t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
			}
			if !strings.Contains(appErr.Message, tc.wantMsg) {
				t.Errorf("expected message containing %q, got %q", tc.wantMsg, appErr.Message)
			}
		})
	}
}

func TestValidateNonStruct(t *testing.T) {
	err := Validate("not a struct")
	if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT for non-struct input, got %v", err)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Path":       "path",
		"TotalCount": "total_count",
		"N":          "n",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
