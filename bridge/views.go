package bridge

import (
	"fmt"
	"strings"
)

// Views holds the three renderings of a type at the foreign boundary.
type Views struct {
	Native string // the type's Rust spelling
	FFI    string // the dart:ffi spelling
	Host   string // the Dart spelling
}

// primitiveViews is the fixed triple table. i128, u128 and u64 are absent:
// they have no lossless Dart mapping and fail as UnsupportedPrimitive.
var primitiveViews = map[Primitive]Views{
	I8:          {"i8", "ffi.Int8", "int"},
	I16:         {"i16", "ffi.Int16", "int"},
	I32:         {"i32", "ffi.Int32", "int"},
	I64:         {"i64", "ffi.Int64", "int"},
	U8:          {"u8", "ffi.Uint8", "int"},
	U16:         {"u16", "ffi.Uint16", "int"},
	U32:         {"u32", "ffi.Uint32", "int"},
	F32:         {"f32", "ffi.Float", "double"},
	F64:         {"f64", "ffi.Double", "double"},
	Bool:        {"bool", "ffi.Bool", "bool"},
	Char:        {"char", "ffi.Char", "String"},
	Str:         {"str", "ffi.Pointer<ffi.Utf8>", "String"},
	OwnedString: {"String", "ffi.Pointer<ffi.Utf8>", "String"},
	Unit:        {"()", "ffi.Void", "void"},
}

// TypeViews produces the native, ffi and host renderings of a type.
// Compound types recurse; any nested failure is chained with the enclosing
// type's name attached as the destination.
func TypeViews(t Type) (Views, *ConversionError) {
	switch t := t.(type) {
	case Primitive:
		views, ok := primitiveViews[t]
		if !ok {
			return Views{}, NewConversionError(KindUnsupportedPrimitive,
				fmt.Sprintf("primitive %q has no lossless ffi mapping", t)).
				WithSource(t.String())
		}
		return views, nil

	case *Struct:
		for _, f := range t.Fields {
			if _, err := TypeViews(f.Ty); err != nil {
				return Views{}, (&ConversionError{Dst: t.Name, Item: f.String()}).WithCause(err)
			}
		}
		return Views{Native: t.Name, FFI: t.Name, Host: t.Name}, nil

	case *Enum:
		for _, v := range t.Variants {
			for _, f := range v.Fields {
				if _, err := TypeViews(f.Ty); err != nil {
					return Views{}, (&ConversionError{Dst: t.Name, Item: v.String()}).WithCause(err)
				}
			}
		}
		return Views{Native: t.Name, FFI: t.Name, Host: t.Name}, nil

	case *Tuple:
		natives := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			views, err := TypeViews(e)
			if err != nil {
				return Views{}, (&ConversionError{Dst: "Tuple", Item: t.String()}).WithCause(err)
			}
			natives[i] = views.Native
		}
		// The boundary ABI has no anonymous aggregate type.
		return Views{}, NewConversionError(KindUnsupportedType,
			fmt.Sprintf("tuple %q has no ffi representation", t)).
			WithSource(t.String())

	case *Array:
		elem, err := TypeViews(t.Elem)
		if err != nil {
			return Views{}, (&ConversionError{Dst: "Array", Item: t.String()}).WithCause(err)
		}
		return Views{
			Native: fmt.Sprintf("[%s; %d]", elem.Native, t.Len),
			FFI:    fmt.Sprintf("ffi.Array<%s>", elem.FFI),
			Host:   fmt.Sprintf("List<%s>", elem.Host),
		}, nil

	case *Slice:
		elem, err := TypeViews(t.Elem)
		if err != nil {
			return Views{}, (&ConversionError{Dst: "Slice", Item: t.String()}).WithCause(err)
		}
		return Views{
			Native: fmt.Sprintf("[%s]", elem.Native),
			FFI:    fmt.Sprintf("ffi.Pointer<%s>", elem.FFI),
			Host:   fmt.Sprintf("List<%s>", elem.Host),
		}, nil

	case *Pointer:
		elem, err := TypeViews(t.Elem)
		if err != nil {
			return Views{}, (&ConversionError{Dst: "Pointer", Item: t.String()}).WithCause(err)
		}
		native := "*const " + elem.Native
		if t.Mutable {
			native = "*mut " + elem.Native
		}
		return Views{
			Native: native,
			FFI:    fmt.Sprintf("ffi.Pointer<%s>", elem.FFI),
			// A nullable handle surfaces as its pointee on the Dart side.
			Host: elem.Host,
		}, nil

	case *Func:
		ffiArgs := make([]string, len(t.Args))
		hostArgs := make([]string, len(t.Args))
		for i, a := range t.Args {
			views, err := TypeViews(a.Ty)
			if err != nil {
				return Views{}, (&ConversionError{Dst: t.Name, Item: a.String()}).WithCause(err)
			}
			ffiArgs[i] = fmt.Sprintf("%s %s", views.FFI, CamelCase(a.Name))
			hostArgs[i] = fmt.Sprintf("%s %s", views.Host, CamelCase(a.Name))
		}
		ret, err := TypeViews(t.Ret)
		if err != nil {
			return Views{}, (&ConversionError{Dst: t.Name, Item: t.String()}).WithCause(err)
		}
		return Views{
			Native: t.String(),
			FFI:    fmt.Sprintf("%s Function(%s)", ret.FFI, strings.Join(ffiArgs, ", ")),
			Host:   fmt.Sprintf("%s Function(%s)", ret.Host, strings.Join(hostArgs, ", ")),
		}, nil
	}
	return Views{}, NewConversionError(KindUnknownType, "unreachable type form")
}

// ffiAnnotations is the Dart struct-field annotation per primitive, where one
// exists. Pointer-shaped fields carry their type directly and need none.
var ffiAnnotations = map[Primitive]string{
	I8:   "@ffi.Int8()",
	I16:  "@ffi.Int16()",
	I32:  "@ffi.Int32()",
	I64:  "@ffi.Int64()",
	U8:   "@ffi.Uint8()",
	U16:  "@ffi.Uint16()",
	U32:  "@ffi.Uint32()",
	F32:  "@ffi.Float()",
	F64:  "@ffi.Double()",
	Bool: "@ffi.Bool()",
	Char: "@ffi.Char()",
}

// FFIAnnotation returns the Dart field annotation for t where one exists.
func FFIAnnotation(t Type) (string, bool) {
	switch t := t.(type) {
	case Primitive:
		a, ok := ffiAnnotations[t]
		return a, ok
	case *Array:
		return fmt.Sprintf("@ffi.Array(%d)", t.Len), true
	default:
		return "", false
	}
}
