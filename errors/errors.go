package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConstruct Phase = "construct" // building a container
	PhaseAccess    Phase = "access"    // get, take, replace, set
	PhaseDispatch  Phase = "dispatch"  // capability forwarding
	PhaseLayout    Phase = "layout"    // storage size computation
	PhaseLower     Phase = "lower"     // Go to guest memory
	PhaseLift      Phase = "lift"      // guest memory to Go
	PhaseSchema    Phase = "schema"    // WIT description
	PhaseGenerate  Phase = "generate"  // code generation
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch   Kind = "type_mismatch"
	KindEmpty          Kind = "empty"
	KindNotMember      Kind = "not_member"
	KindInvalidVariant Kind = "invalid_variant"
	KindOutOfBounds    Kind = "out_of_bounds"
	KindMisaligned     Kind = "misaligned"
	KindUnsupported    Kind = "unsupported"
	KindInvalidInput   Kind = "invalid_input"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Want   string // requested Go type
	Have   string // live Go type
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Want != "" || e.Have != "" {
		b.WriteString(": ")
		switch {
		case e.Want != "" && e.Have != "":
			b.WriteString("want ")
			b.WriteString(e.Want)
			b.WriteString(", have ")
			b.WriteString(e.Have)
		case e.Want != "":
			b.WriteString("want ")
			b.WriteString(e.Want)
		default:
			b.WriteString("have ")
			b.WriteString(e.Have)
		}
	}

	if e.Detail != "" {
		if e.Want != "" || e.Have != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Want sets the requested Go type name
func (b *Builder) Want(t string) *Builder {
	b.err.Want = t
	return b
}

// Have sets the live Go type name
func (b *Builder) Have(t string) *Builder {
	b.err.Have = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch reports access to an alternative that is not live
func TypeMismatch(phase Phase, want, have string) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindTypeMismatch,
		Want:  want,
		Have:  have,
	}
}

// Empty reports access to a container that holds no value
func Empty(phase Phase, want string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindEmpty,
		Want:   want,
		Detail: "container holds no value",
	}
}

// NotMember reports a type that is not one of the container's alternatives
func NotMember(phase Phase, want string, alternatives []string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotMember,
		Want:   want,
		Detail: "alternatives are " + strings.Join(alternatives, ", "),
	}
}

// InvalidDiscriminant creates an invalid discriminant error
func InvalidDiscriminant(phase Phase, path []string, disc uint32, maxValid uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidVariant,
		Path:   path,
		Detail: fmt.Sprintf("discriminant %d out of range (max %d)", disc, maxValid),
		Value:  disc,
	}
}

// OutOfBounds reports a memory region that does not fit
func OutOfBounds(phase Phase, offset, length, size uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("region [%d, %d) exceeds memory size %d", offset, uint64(offset)+uint64(length), size),
		Value:  offset,
	}
}

// Misaligned reports an offset that violates the storage alignment
func Misaligned(phase Phase, offset, align uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindMisaligned,
		Detail: fmt.Sprintf("offset %d is not aligned to %d", offset, align),
		Value:  offset,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, goType, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Want:   goType,
		Detail: what,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
