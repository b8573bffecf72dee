// Package errors provides the classified error primitives used across ppt.
//
// Errors carry a category (what kind of failure), a severity (how bad it is) and a
// free-form context map. Low-level helpers return classified errors; entry points decide
// whether to log them, convert them to sentinel values, or map them to a process exit
// code through CLIErrorAdapter.
//
// Example usage:
//
//	err := errors.NewError(errors.CategoryVersion, "version line not found").
//		WithContext("file", path).
//		Build()
//
//	err = errors.WrapError(cause, errors.CategoryFileSystem, "replace line").
//		WithContext("index", idx).
//		Build()
package errors
