package scheme

import "fmt"

// Kind classifies why evaluation failed. These mirror the error kinds a
// Scheme evaluator distinguishes between an unbound variable and a wrong
// number of arguments, rather than carrying only a formatted string.
type Kind int

const (
	// ParseError marks malformed token streams: unmatched ), a dotted
	// pair with no closing paren, and the like.
	ParseError Kind = iota
	// UnboundSymbol marks a failed environment lookup.
	UnboundSymbol
	// ArityMismatch marks an intrinsic or closure called with the wrong
	// number of arguments.
	ArityMismatch
	// TypeMismatch marks an operation applied to an incompatible value.
	TypeMismatch
	// NotAProcedure marks an application of a non-callable value.
	NotAProcedure
	// ImproperListError marks list-walking that hit a non-nil, non-pair
	// tail where a proper list was required.
	ImproperListError
	// UserError marks a failure raised explicitly by (error reason arg).
	UserError
	// FatalError marks a host-level failure: I/O, out-of-memory, or an
	// evaluator defect surfacing as an unexpected Go panic.
	FatalError
)

func (k Kind) String() string {
	switch k {
	case ParseError:
		return "parse-error"
	case UnboundSymbol:
		return "unbound-symbol"
	case ArityMismatch:
		return "arity-mismatch"
	case TypeMismatch:
		return "type-mismatch"
	case NotAProcedure:
		return "not-a-procedure"
	case ImproperListError:
		return "improper-list"
	case UserError:
		return "user-error"
	case FatalError:
		return "fatal"
	default:
		return "error"
	}
}

// Error is the evaluator's single error type. It is propagated by panic
// and recovered at the top level (the interactive loop or the file
// loader); the evaluator itself never recovers from one.
type Error struct {
	Kind    Kind
	Message string
	Cause   error // non-nil only for a FatalError built from a Go error value
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Cause }

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// UnboundSymbolError reports that sym has no binding in the environment.
func UnboundSymbolError(sym *Symbol) *Error {
	return newError(UnboundSymbol, "unbound symbol: %s", string(*sym))
}

// ArityMismatchError reports a call with the wrong number of arguments.
func ArityMismatchError(name string, want, got int) *Error {
	if want < 0 {
		return newError(ArityMismatch, "%s: expected at least 1 argument, got %d", name, got)
	}
	return newError(ArityMismatch, "%s: expected %d argument(s), got %d", name, want, got)
}

// TypeMismatchError reports an operation applied to an incompatible value.
func TypeMismatchError(op string, v Value) *Error {
	return newError(TypeMismatch, "%s: type mismatch: %s", op, Stringify(v, true))
}

// NotAProcedureError reports an attempt to apply a non-callable value.
func NotAProcedureError(v Value) *Error {
	return newError(NotAProcedure, "not a procedure: %s", Stringify(v, true))
}

// ImproperList reports list-walking reaching a non-nil, non-pair tail.
func ImproperList(v Value) *Error {
	return newError(ImproperListError, "improper list: %s", Stringify(v, true))
}

// UserRaised builds the message (error reason arg) produces:
// "Error: <reason unquoted>: <arg quoted>".
func UserRaised(reason, arg Value) *Error {
	return &Error{
		Kind:    UserError,
		Message: fmt.Sprintf("Error: %s: %s", Stringify(reason, false), Stringify(arg, true)),
	}
}

// ParseFailure reports a malformed token stream.
func ParseFailure(format string, args ...any) *Error {
	return newError(ParseError, format, args...)
}

// Fatal wraps a host-level failure (an I/O error, an evaluator defect, or
// an unexpected Go-level panic value) as a FatalError *Error, so that
// callers always receive a *scheme.Error. An error cause is kept as Cause.
func Fatal(cause any) *Error {
	if err, ok := cause.(error); ok {
		return &Error{Kind: FatalError, Message: "fatal: " + err.Error(), Cause: err}
	}
	return &Error{Kind: FatalError, Message: fmt.Sprintf("fatal: %v", cause)}
}
