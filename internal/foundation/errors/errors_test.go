package errors

import (
	"errors"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			WithSeverity(SeverityFatal).
			WithContext("file", ".configs/ppt.yaml").
			Build()

		if err.Category() != CategoryConfig {
			t.Errorf("expected category %s, got %s", CategoryConfig, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if err.Message() != "invalid configuration" {
			t.Errorf("expected message 'invalid configuration', got %s", err.Message())
		}

		file, exists := err.Context().GetString("file")
		if !exists || file != ".configs/ppt.yaml" {
			t.Errorf("expected context file=.configs/ppt.yaml, got %v", file)
		}
	})

	t.Run("Error detection through wrapping", func(t *testing.T) {
		inner := ConfigError("bad step").Build()
		wrapped := errors.Join(errors.New("loading"), inner)

		if !IsClassified(wrapped) {
			t.Error("expected wrapped error to be classified")
		}
		if !HasCategory(wrapped, CategoryConfig) {
			t.Error("expected error to have config category")
		}
		if !inner.IsFatal() {
			t.Error("expected config error to be fatal")
		}
	})

	t.Run("Unclassified defaults", func(t *testing.T) {
		if GetCategory(errors.New("plain")) != CategoryInternal {
			t.Error("expected plain errors to report internal category")
		}
	})
}

func TestErrorBuilder(t *testing.T) {
	t.Run("Wrap keeps cause", func(t *testing.T) {
		originalErr := errors.New("permission denied")
		err := WrapError(originalErr, CategoryFileSystem, "replace line").
			Warning().
			WithContext("path", "src/ppt/__init__.py").
			WithContext("index", 3).
			Build()

		if err.Severity() != SeverityWarning {
			t.Errorf("expected severity %s, got %s", SeverityWarning, err.Severity())
		}
		if !errors.Is(err, originalErr) {
			t.Error("expected error to wrap original error")
		}

		idx, _ := err.Context().Get("index")
		if idx != 3 {
			t.Errorf("expected index context 3, got %v", idx)
		}
	})

	t.Run("Convenience constructors", func(t *testing.T) {
		tests := []struct {
			name     string
			builder  *ErrorBuilder
			category ErrorCategory
			severity ErrorSeverity
		}{
			{"ConfigError", ConfigError("test"), CategoryConfig, SeverityFatal},
			{"ValidationError", ValidationError("test"), CategoryValidation, SeverityError},
			{"NotFoundError", NotFoundError("test"), CategoryNotFound, SeverityError},
			{"ProcessError", ProcessError("test"), CategoryProcess, SeverityError},
			{"FileSystemError", FileSystemError("test"), CategoryFileSystem, SeverityError},
			{"VersionError", VersionError("test"), CategoryVersion, SeverityError},
			{"InternalError", InternalError("test"), CategoryInternal, SeverityFatal},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.builder.Build()
				if err.Category() != tt.category {
					t.Errorf("expected category %s, got %s", tt.category, err.Category())
				}
				if err.Severity() != tt.severity {
					t.Errorf("expected severity %s, got %s", tt.severity, err.Severity())
				}
			})
		}
	})
}

func TestErrorContextMerge(t *testing.T) {
	base := ErrorContext{"a": 1, "b": 2}
	merged := base.Merge(ErrorContext{"b": 3, "c": 4})

	if merged["a"] != 1 || merged["b"] != 3 || merged["c"] != 4 {
		t.Errorf("unexpected merge result: %v", merged)
	}
	if base["b"] != 2 {
		t.Error("merge must not mutate the receiver")
	}
}

func TestLogAttrsSorted(t *testing.T) {
	err := VersionError("bad line").
		WithContext("zeta", 1).
		WithContext("alpha", 2).
		Build()

	attrs := err.LogAttrs()
	if len(attrs) != 3 {
		t.Fatalf("expected 3 attrs, got %d", len(attrs))
	}
	if attrs[0].Key != "category" || attrs[1].Key != "alpha" || attrs[2].Key != "zeta" {
		t.Errorf("unexpected attr order: %v", attrs)
	}
}
