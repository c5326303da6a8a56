// Package bridge models the types that can cross the Rust/Dart ffi boundary
// and converts syntax-level declarations into that model.
package bridge

import (
	"fmt"
	"strings"
)

// Type is the closed, recursive model of representable types. Values are
// constructed once during a resolution pass and are immutable thereafter.
type Type interface {
	typeNode()
	// String renders the type's Rust spelling, used in diagnostics.
	String() string
}

// Primitive enumerates the fixed set of representable scalar types.
type Primitive int

const (
	I8 Primitive = iota
	I16
	I32
	I64
	I128
	U8
	U16
	U32
	U64
	U128
	F32
	F64
	Bool
	Char
	Str         // borrowed string slice
	OwnedString // heap-allocated String
	Unit
)

func (Primitive) typeNode() {}

func (p Primitive) String() string {
	switch p {
	case I8:
		return "i8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case I128:
		return "i128"
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	case U128:
		return "u128"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case Bool:
		return "bool"
	case Char:
		return "char"
	case Str:
		return "str"
	case OwnedString:
		return "String"
	case Unit:
		return "()"
	}
	return "unknown"
}

// Field is a named, typed member of a struct, variant or argument list.
// The name is never empty: positional fields are assigned synthesized names.
type Field struct {
	Name string
	Ty   Type
}

func (f Field) String() string {
	return fmt.Sprintf("%s: %s", f.Name, f.Ty)
}

// Struct is a named product type.
type Struct struct {
	Name   string
	Fields []Field
}

func (*Struct) typeNode() {}

func (s *Struct) String() string {
	fields := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		fields[i] = f.String()
	}
	return fmt.Sprintf("struct %s (%s)", s.Name, strings.Join(fields, ", "))
}

// Variant is one alternative of an Enum.
type Variant struct {
	Name   string
	Fields []Field
}

func (v Variant) String() string {
	fields := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		fields[i] = f.String()
	}
	return fmt.Sprintf("%s (%s)", v.Name, strings.Join(fields, ", "))
}

// Enum is a named sum type.
type Enum struct {
	Name     string
	Variants []Variant
}

func (*Enum) typeNode() {}

func (e *Enum) String() string {
	variants := make([]string, len(e.Variants))
	for i, v := range e.Variants {
		variants[i] = v.String()
	}
	return fmt.Sprintf("enum %s (%s)", e.Name, strings.Join(variants, ", "))
}

// IsUnit reports whether every variant is field-less, i.e. the enum is a
// plain discriminant.
func (e *Enum) IsUnit() bool {
	for _, v := range e.Variants {
		if len(v.Fields) > 0 {
			return false
		}
	}
	return true
}

// Tuple is an anonymous product type.
type Tuple struct {
	Elems []Type
}

func (*Tuple) typeNode() {}

func (t *Tuple) String() string {
	elems := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		elems[i] = e.String()
	}
	return fmt.Sprintf("(%s)", strings.Join(elems, ", "))
}

// Array is a fixed-size array with a length known at parse time.
type Array struct {
	Elem Type
	Len  uint64
}

func (*Array) typeNode() {}

func (a *Array) String() string {
	return fmt.Sprintf("[%s; %d]", a.Elem, a.Len)
}

// Slice is an unsized view over contiguous elements.
type Slice struct {
	Elem Type
}

func (*Slice) typeNode() {}

func (s *Slice) String() string {
	return fmt.Sprintf("[%s]", s.Elem)
}

// Func is a function signature.
type Func struct {
	Name string
	Args []Field
	Ret  Type
}

func (*Func) typeNode() {}

func (f *Func) String() string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("fn %s(%s) -> %s", f.Name, strings.Join(args, ", "), f.Ret)
}

// Pointer is a nullable handle at the foreign boundary. Option<T> lowers to
// a mutable pointer; raw pointers keep their declared mutability.
type Pointer struct {
	Elem    Type
	Mutable bool
}

func (*Pointer) typeNode() {}

func (p *Pointer) String() string {
	if p.Mutable {
		return fmt.Sprintf("*mut %s", p.Elem)
	}
	return fmt.Sprintf("*const %s", p.Elem)
}
