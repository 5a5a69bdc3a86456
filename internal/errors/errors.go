// Package errors is the single import for error handling in azan.
// Matching goes through the standard library; constructors and wrappers come
// from pkg/errors so every error leaving a layer boundary carries a stack.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Matching.
var (
	Is     = stderrors.Is
	As     = stderrors.As
	Join   = stderrors.Join
	Unwrap = stderrors.Unwrap
)

// Construction and annotation, all recording the caller's stack.
var (
	New       = pkgerrors.New
	Errorf    = pkgerrors.Errorf
	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
)

// StackTracer is implemented by errors carrying a pkg/errors stack.
type StackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// HasStack reports whether err or anything it wraps records a stack trace.
func HasStack(err error) bool {
	var st StackTracer

	return As(err, &st)
}
