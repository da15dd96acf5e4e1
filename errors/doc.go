// Package errors provides structured error types for the variant library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the requested and live Go type names, a field path
// and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseAccess, errors.KindTypeMismatch).
//		Want("main.Circle").
//		Have("main.Square").
//		Detail("Get on a container holding another alternative").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseAccess, "main.Circle", "main.Square")
//	err := errors.OutOfBounds(errors.PhaseLower, 65530, 16, 65536)
//
// Checked container accessors panic with an *Error; the guest and schema
// packages return one. All errors implement the standard error interface and
// support errors.Is/As.
package errors
