package syntax

import (
	"fmt"
	"strings"
)

// File is a parsed source file: an ordered list of module-level items.
type File struct {
	Name  string // file path, for diagnostics only
	Items []Item
}

// Item is one module-level declaration the scanner cares about.
type Item interface {
	itemNode()
	// Describe renders a one-line human description of the item, used in
	// error diagnostics ("struct Foo", "fn add(a: i8, b: i8) -> i8").
	Describe() string
	Span() Span
}

// AttrKind classifies attribute metas.
type AttrKind int

const (
	// AttrPath is a bare attribute: #[flusty]
	AttrPath AttrKind = iota
	// AttrList is a parenthesized attribute: #[flusty(skip)]
	AttrList
	// AttrNameValue is a key/value attribute: #[doc = "..."]
	AttrNameValue
)

// Attr is one outer attribute on an item.
type Attr struct {
	Path []string // path segments, e.g. ["serde"] or ["serde", "rename"]
	Kind AttrKind
}

// IsIdent reports whether the attribute path is exactly the single
// identifier name, mirroring syn's Path::is_ident.
func (a Attr) IsIdent(name string) bool {
	return len(a.Path) == 1 && a.Path[0] == name
}

// Field is a struct, tuple-struct or enum-variant field. Positional fields
// have an empty Name.
type Field struct {
	Name string
	Ty   Type
	span Span
}

func (f Field) Span() Span { return f.span }

func (f Field) Describe() string {
	if f.Name == "" {
		return fmt.Sprintf("field %s", f.Ty)
	}
	return fmt.Sprintf("field %s: %s", f.Name, f.Ty)
}

// ModItem is a module declaration. Inline bodies are not retained: module
// content is always resolved from disk by the caller.
type ModItem struct {
	Name   string
	Public bool
	Attrs  []Attr
	span   Span
}

func (*ModItem) itemNode()          {}
func (m *ModItem) Span() Span       { return m.span }
func (m *ModItem) Describe() string { return "mod " + m.Name }

// FnArg is one function parameter. Receiver arguments (self and friends)
// carry no name or type.
type FnArg struct {
	Name     string // empty for receivers and non-identifier patterns
	Ty       Type   // nil for receivers
	Receiver bool
	span     Span
}

func (a FnArg) Span() Span { return a.span }

func (a FnArg) Describe() string {
	if a.Receiver {
		return "self"
	}
	if a.Name == "" {
		return fmt.Sprintf("_: %s", a.Ty)
	}
	return fmt.Sprintf("%s: %s", a.Name, a.Ty)
}

// FnItem is a function signature; the body is discarded during parsing.
type FnItem struct {
	Name   string
	Public bool
	Attrs  []Attr
	Args   []FnArg
	Ret    Type // nil when the source omits a return type
	span   Span
}

func (*FnItem) itemNode()    {}
func (f *FnItem) Span() Span { return f.span }

func (f *FnItem) Describe() string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.Describe()
	}
	ret := ""
	if f.Ret != nil {
		ret = " -> " + f.Ret.String()
	}
	return fmt.Sprintf("fn %s(%s)%s", f.Name, strings.Join(args, ", "), ret)
}

// StructItem is a struct declaration. Tuple is true for tuple structs, whose
// fields are positional.
type StructItem struct {
	Name   string
	Public bool
	Attrs  []Attr
	Fields []Field
	Tuple  bool
	span   Span
}

func (*StructItem) itemNode()          {}
func (s *StructItem) Span() Span       { return s.span }
func (s *StructItem) Describe() string { return "struct " + s.Name }

// VariantNode is one enum variant, with named or positional fields.
type VariantNode struct {
	Name   string
	Fields []Field
	Tuple  bool
	span   Span
}

func (v VariantNode) Span() Span { return v.span }

func (v VariantNode) Describe() string {
	if len(v.Fields) == 0 {
		return v.Name
	}
	fields := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		fields[i] = f.Describe()
	}
	return fmt.Sprintf("%s(%s)", v.Name, strings.Join(fields, ", "))
}

// EnumItem is an enum declaration.
type EnumItem struct {
	Name     string
	Public   bool
	Attrs    []Attr
	Variants []VariantNode
	span     Span
}

func (*EnumItem) itemNode()    {}
func (e *EnumItem) Span() Span { return e.span }

func (e *EnumItem) Describe() string {
	variants := make([]string, len(e.Variants))
	for i, v := range e.Variants {
		variants[i] = v.Describe()
	}
	return fmt.Sprintf("enum %s { %s }", e.Name, strings.Join(variants, ", "))
}

// Type is a syntax-level type expression. String renders the Rust spelling.
type Type interface {
	typeNode()
	String() string
	Span() Span
}

// PathSegment is one segment of a path type, with optional generic arguments.
type PathSegment struct {
	Name string
	Args []Type // nil when the segment has no generic arguments
}

func (s PathSegment) String() string {
	if len(s.Args) == 0 {
		return s.Name
	}
	args := make([]string, len(s.Args))
	for i, a := range s.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s<%s>", s.Name, strings.Join(args, ", "))
}

// PathType is a (possibly qualified) named type such as i32, String or
// std::option::Option<i32>.
type PathType struct {
	Segments []PathSegment
	span     Span
}

func (*PathType) typeNode()    {}
func (t *PathType) Span() Span { return t.span }

// Last returns the final path segment, the one that names the type.
func (t *PathType) Last() PathSegment {
	return t.Segments[len(t.Segments)-1]
}

func (t *PathType) String() string {
	segs := make([]string, len(t.Segments))
	for i, s := range t.Segments {
		segs[i] = s.String()
	}
	return strings.Join(segs, "::")
}

// TupleType is a tuple type; the empty tuple is the unit type ().
type TupleType struct {
	Elems []Type
	span  Span
}

func (*TupleType) typeNode()    {}
func (t *TupleType) Span() Span { return t.span }

func (t *TupleType) String() string {
	elems := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		elems[i] = e.String()
	}
	return fmt.Sprintf("(%s)", strings.Join(elems, ", "))
}

// ArrayLen is a fixed array's length expression. Lit is true when the length
// is a literal integer constant; otherwise Raw preserves the source text.
type ArrayLen struct {
	Lit   bool
	Value uint64
	Raw   string
}

func (l ArrayLen) String() string {
	if l.Lit {
		return fmt.Sprintf("%d", l.Value)
	}
	return l.Raw
}

// ArrayType is a fixed-size array type [T; len].
type ArrayType struct {
	Elem Type
	Len  ArrayLen
	span Span
}

func (*ArrayType) typeNode()        {}
func (t *ArrayType) Span() Span     { return t.span }
func (t *ArrayType) String() string { return fmt.Sprintf("[%s; %s]", t.Elem, t.Len) }

// SliceType is an unsized slice type [T].
type SliceType struct {
	Elem Type
	span Span
}

func (*SliceType) typeNode()        {}
func (t *SliceType) Span() Span     { return t.span }
func (t *SliceType) String() string { return fmt.Sprintf("[%s]", t.Elem) }

// RefType is a reference type &T or &mut T.
type RefType struct {
	Elem Type
	Mut  bool
	span Span
}

func (*RefType) typeNode()    {}
func (t *RefType) Span() Span { return t.span }

func (t *RefType) String() string {
	if t.Mut {
		return fmt.Sprintf("&mut %s", t.Elem)
	}
	return fmt.Sprintf("&%s", t.Elem)
}

// PtrType is a raw pointer type *const T or *mut T.
type PtrType struct {
	Elem Type
	Mut  bool
	span Span
}

func (*PtrType) typeNode()    {}
func (t *PtrType) Span() Span { return t.span }

func (t *PtrType) String() string {
	if t.Mut {
		return fmt.Sprintf("*mut %s", t.Elem)
	}
	return fmt.Sprintf("*const %s", t.Elem)
}

// FnType is a bare function pointer type fn(T, U) -> R.
type FnType struct {
	Params []Type
	Ret    Type // nil when omitted
	span   Span
}

func (*FnType) typeNode()    {}
func (t *FnType) Span() Span { return t.span }

func (t *FnType) String() string {
	params := make([]string, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.String()
	}
	ret := ""
	if t.Ret != nil {
		ret = " -> " + t.Ret.String()
	}
	return fmt.Sprintf("fn(%s)%s", strings.Join(params, ", "), ret)
}

// OtherType is any type form the bridge does not model: impl Trait,
// dyn Trait, the inferred type _, qualified paths. The raw source spelling
// is preserved for diagnostics.
type OtherType struct {
	Raw  string
	span Span
}

func (*OtherType) typeNode()        {}
func (t *OtherType) Span() Span     { return t.span }
func (t *OtherType) String() string { return t.Raw }
