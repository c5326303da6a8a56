package bridge

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/wxxedu/flusty/syntax"
)

// ErrorKind categorizes conversion failures for programmatic handling.
// Only leaf errors carry a kind; wrapping layers leave it empty.
type ErrorKind string

const (
	// KindUnknownPrimitive is a named type outside the primitive table.
	KindUnknownPrimitive ErrorKind = "unknown_primitive"
	// KindGenericType is a generic type other than Option<T>.
	KindGenericType ErrorKind = "generic_type"
	// KindUnknownArrayLength is an array whose length is not a literal.
	KindUnknownArrayLength ErrorKind = "unknown_array_length"
	// KindUnknownType is a syntactic type form the bridge does not model.
	KindUnknownType ErrorKind = "unknown_type"
	// KindUnsupportedType is a modeled type with no ffi representation.
	KindUnsupportedType ErrorKind = "unsupported_type"
	// KindUnsupportedPrimitive is a primitive with no lossless Dart mapping.
	KindUnsupportedPrimitive ErrorKind = "unsupported_primitive"
	// KindReceiverField is a method receiver in a function signature.
	KindReceiverField ErrorKind = "receiver_field"
	// KindUnnamedField is a field or argument that requires a name.
	KindUnnamedField ErrorKind = "unnamed_field"
)

// ErrorContext indicates the environment where conversion errors will be
// displayed.
type ErrorContext string

const (
	// ErrorContextTerminal renders with ANSI colors.
	ErrorContextTerminal ErrorContext = "terminal"
	// ErrorContextPlain renders without ANSI codes (logs, editors).
	ErrorContextPlain ErrorContext = "plain"
)

// ConversionError is a structured, chainable conversion failure. Each layer
// that rewraps a lower failure records its own destination type, the rendered
// offending item and the originating span without discarding the inner cause.
// The chain displays outermost first, innermost last.
type ConversionError struct {
	Kind    ErrorKind
	Src     string // source type description
	Dst     string // destination type description
	Message string
	Item    string // rendered offending source item
	Span    *syntax.Span
	Cause   *ConversionError
}

// NewConversionError creates a leaf conversion error.
func NewConversionError(kind ErrorKind, message string) *ConversionError {
	return &ConversionError{Kind: kind, Message: message}
}

// WithSource sets the source type description.
func (e *ConversionError) WithSource(src string) *ConversionError {
	e.Src = src
	return e
}

// WithDestination sets the destination type description.
func (e *ConversionError) WithDestination(dst string) *ConversionError {
	e.Dst = dst
	return e
}

// WithMessage sets the human-readable message.
func (e *ConversionError) WithMessage(msg string) *ConversionError {
	e.Message = msg
	return e
}

// WithItem attaches the rendered description of the offending source item.
func (e *ConversionError) WithItem(item string) *ConversionError {
	e.Item = item
	return e
}

// WithSpan attaches the originating source span.
func (e *ConversionError) WithSpan(span syntax.Span) *ConversionError {
	e.Span = &span
	return e
}

// WithCause links the next-inner failure. The source description propagates
// upward when the outer layer has none of its own.
func (e *ConversionError) WithCause(cause *ConversionError) *ConversionError {
	e.Cause = cause
	if e.Src == "" {
		e.Src = cause.Src
	}
	return e
}

// Root returns the innermost error of the cause chain.
func (e *ConversionError) Root() *ConversionError {
	root := e
	for root.Cause != nil {
		root = root.Cause
	}
	return root
}

// RootKind returns the kind of the innermost error.
func (e *ConversionError) RootKind() ErrorKind {
	return e.Root().Kind
}

// Unwrap supports errors.Is/As over the cause chain.
func (e *ConversionError) Unwrap() error {
	if e.Cause == nil {
		return nil
	}
	return e.Cause
}

func (e *ConversionError) header() string {
	var sb strings.Builder
	sb.WriteString("failed to convert")
	if e.Src != "" {
		fmt.Fprintf(&sb, " from %s", e.Src)
	}
	if e.Dst != "" {
		fmt.Fprintf(&sb, " to %s", e.Dst)
	}
	if e.Message != "" {
		fmt.Fprintf(&sb, ": %s", e.Message)
	}
	if e.Item != "" {
		fmt.Fprintf(&sb, " (%s)", e.Item)
	}
	if e.Span != nil {
		fmt.Fprintf(&sb, " %s", e.Span)
	}
	return sb.String()
}

// Error implements the error interface: the whole chain, outermost first,
// innermost last.
func (e *ConversionError) Error() string {
	return e.FormatError(ErrorContextPlain)
}

// FormatError renders the cause chain for the given display context.
func (e *ConversionError) FormatError(ctx ErrorContext) string {
	var lines []string
	for err := e; err != nil; err = err.Cause {
		line := err.header()
		if err != e {
			line = "because: " + line
		}
		if ctx == ErrorContextTerminal {
			if err.Cause == nil {
				line = pterm.Red(line)
			} else {
				line = pterm.Gray(line)
			}
		}
		lines = append(lines, strings.Repeat("  ", indexOfChain(e, err))+line)
	}
	return strings.Join(lines, "\n")
}

func indexOfChain(head, target *ConversionError) int {
	i := 0
	for err := head; err != nil && err != target; err = err.Cause {
		i++
	}
	return i
}
