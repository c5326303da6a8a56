package bridge

import (
	"fmt"

	"github.com/wxxedu/flusty/syntax"
)

// primitives maps Rust primitive spellings to model primitives.
var primitives = map[string]Primitive{
	"i8":     I8,
	"i16":    I16,
	"i32":    I32,
	"i64":    I64,
	"i128":   I128,
	"u8":     U8,
	"u16":    U16,
	"u32":    U32,
	"u64":    U64,
	"u128":   U128,
	"f32":    F32,
	"f64":    F64,
	"bool":   Bool,
	"char":   Char,
	"str":    Str,
	"String": OwnedString,
}

// optionWrapper is the one generic wrapper the bridge recognizes. An optional
// value is modeled as a nullable mutable pointer at the foreign boundary.
const optionWrapper = "Option"

// ConvertType converts a syntax-level type expression into a model Type.
// Every unhandled syntactic form is a deliberate not-yet-supported error,
// never a silent fallback.
func ConvertType(t syntax.Type) (Type, *ConversionError) {
	switch t := t.(type) {
	case *syntax.PathType:
		return convertPath(t)

	case *syntax.TupleType:
		if len(t.Elems) == 0 {
			return Unit, nil
		}
		elems := make([]Type, len(t.Elems))
		for i, e := range t.Elems {
			elem, err := ConvertType(e)
			if err != nil {
				return nil, wrap(err, "Tuple", t.String(), t.Span())
			}
			elems[i] = elem
		}
		return &Tuple{Elems: elems}, nil

	case *syntax.ArrayType:
		if !t.Len.Lit {
			return nil, NewConversionError(KindUnknownArrayLength,
				fmt.Sprintf("array length %q is not a literal integer", t.Len.Raw)).
				WithSource(t.String()).
				WithDestination("Array").
				WithSpan(t.Span())
		}
		elem, err := ConvertType(t.Elem)
		if err != nil {
			return nil, wrap(err, "Array", t.String(), t.Span())
		}
		return &Array{Elem: elem, Len: t.Len.Value}, nil

	case *syntax.SliceType:
		elem, err := ConvertType(t.Elem)
		if err != nil {
			return nil, wrap(err, "Slice", t.String(), t.Span())
		}
		return &Slice{Elem: elem}, nil

	case *syntax.PtrType:
		elem, err := ConvertType(t.Elem)
		if err != nil {
			return nil, wrap(err, "Pointer", t.String(), t.Span())
		}
		return &Pointer{Elem: elem, Mutable: t.Mut}, nil

	default:
		return nil, NewConversionError(KindUnknownType,
			fmt.Sprintf("type form %q is not supported", t.String())).
			WithSource(t.String()).
			WithSpan(t.Span())
	}
}

func convertPath(t *syntax.PathType) (Type, *ConversionError) {
	seg := t.Last()

	if len(seg.Args) > 0 {
		if seg.Name == optionWrapper && len(seg.Args) == 1 {
			inner, err := ConvertType(seg.Args[0])
			if err != nil {
				return nil, wrap(err, "Pointer", t.String(), t.Span())
			}
			return &Pointer{Elem: inner, Mutable: true}, nil
		}
		return nil, NewConversionError(KindGenericType,
			fmt.Sprintf("generic type %q is not supported; only %s<T> is", t.String(), optionWrapper)).
			WithSource(t.String()).
			WithSpan(t.Span())
	}

	prim, ok := primitives[seg.Name]
	if !ok {
		return nil, NewConversionError(KindUnknownPrimitive,
			fmt.Sprintf("unknown primitive type %q", seg.Name)).
			WithSource(t.String()).
			WithSpan(t.Span())
	}
	return prim, nil
}

// wrap rewraps a lower failure with the enclosing destination, the rendered
// offending item and its span, preserving the full cause chain.
func wrap(cause *ConversionError, dst, item string, span syntax.Span) *ConversionError {
	return (&ConversionError{Dst: dst, Item: item}).
		WithSpan(span).
		WithCause(cause)
}
