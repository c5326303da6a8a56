package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *File {
	t.Helper()
	file, err := ParseFile("test.rs", src)
	require.NoError(t, err)
	return file
}

func TestParseFunction(t *testing.T) {
	file := parse(t, `
#[flusty]
pub fn add(a: i8, b: i8) -> i8 {
    a + b
}
`)
	require.Len(t, file.Items, 1)
	fn, ok := file.Items[0].(*FnItem)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.True(t, fn.Public)
	require.Len(t, fn.Attrs, 1)
	assert.True(t, fn.Attrs[0].IsIdent("flusty"))
	require.Len(t, fn.Args, 2)
	assert.Equal(t, "a", fn.Args[0].Name)
	assert.Equal(t, "i8", fn.Args[0].Ty.String())
	require.NotNil(t, fn.Ret)
	assert.Equal(t, "i8", fn.Ret.String())
	assert.Equal(t, "fn add(a: i8, b: i8) -> i8", fn.Describe())
}

func TestParseFunctionDefaults(t *testing.T) {
	file := parse(t, `pub fn noop() {}`)
	fn := file.Items[0].(*FnItem)
	assert.Nil(t, fn.Ret)
	assert.Empty(t, fn.Args)
}

func TestParseReceiver(t *testing.T) {
	file := parse(t, `
impl Foo {}
pub fn method(&mut self, x: i32) {}
`)
	require.Len(t, file.Items, 1)
	fn := file.Items[0].(*FnItem)
	require.Len(t, fn.Args, 2)
	assert.True(t, fn.Args[0].Receiver)
	assert.Equal(t, "self", fn.Args[0].Describe())
	assert.Equal(t, "x", fn.Args[1].Name)
}

func TestParseStructNamed(t *testing.T) {
	file := parse(t, `
#[flusty]
pub struct Point {
    pub x: f64,
    y: f64,
}
`)
	st := file.Items[0].(*StructItem)
	assert.Equal(t, "Point", st.Name)
	assert.False(t, st.Tuple)
	require.Len(t, st.Fields, 2)
	assert.Equal(t, "x", st.Fields[0].Name)
	assert.Equal(t, "f64", st.Fields[0].Ty.String())
	assert.Equal(t, "struct Point", st.Describe())
}

func TestParseStructTuple(t *testing.T) {
	file := parse(t, `pub struct Pair(i32, bool);`)
	st := file.Items[0].(*StructItem)
	assert.True(t, st.Tuple)
	require.Len(t, st.Fields, 2)
	assert.Empty(t, st.Fields[0].Name)
	assert.Equal(t, "bool", st.Fields[1].Ty.String())
}

func TestParseEnum(t *testing.T) {
	file := parse(t, `
pub enum Shape {
    Empty,
    Circle(f64),
    Rect { w: f64, h: f64 },
}
`)
	en := file.Items[0].(*EnumItem)
	require.Len(t, en.Variants, 3)
	assert.Empty(t, en.Variants[0].Fields)
	require.Len(t, en.Variants[1].Fields, 1)
	assert.True(t, en.Variants[1].Tuple)
	require.Len(t, en.Variants[2].Fields, 2)
	assert.Equal(t, "w", en.Variants[2].Fields[0].Name)
}

func TestParseModDeclarations(t *testing.T) {
	file := parse(t, `
pub mod exported;
mod private;
pub mod inline { fn hidden() {} }
`)
	require.Len(t, file.Items, 3)
	assert.True(t, file.Items[0].(*ModItem).Public)
	assert.Equal(t, "exported", file.Items[0].(*ModItem).Name)
	assert.False(t, file.Items[1].(*ModItem).Public)
	assert.Equal(t, "inline", file.Items[2].(*ModItem).Name)
}

func TestParseSkipsUnscannedItems(t *testing.T) {
	file := parse(t, `
use std::fmt;
const MAX: usize = 16;
static NAME: &str = "x";
type Alias = i32;
impl Foo { fn method(&self) {} }
trait Bar { fn f(); }
extern "C" { fn c_fn(); }
extern crate serde;
macro_rules! m { () => {}; }
println!("hi");
pub fn kept() {}
`)
	require.Len(t, file.Items, 1)
	assert.Equal(t, "kept", file.Items[0].(*FnItem).Name)
}

func TestParseVisibility(t *testing.T) {
	file := parse(t, `
pub(crate) fn restricted() {}
fn private() {}
pub fn open() {}
`)
	require.Len(t, file.Items, 3)
	assert.False(t, file.Items[0].(*FnItem).Public)
	assert.False(t, file.Items[1].(*FnItem).Public)
	assert.True(t, file.Items[2].(*FnItem).Public)
}

func TestParseAttributeKinds(t *testing.T) {
	file := parse(t, `
#[flusty]
#[derive(Debug, Clone)]
#[doc = "hello"]
pub struct S { x: i32 }
`)
	st := file.Items[0].(*StructItem)
	require.Len(t, st.Attrs, 3)
	assert.Equal(t, AttrPath, st.Attrs[0].Kind)
	assert.Equal(t, AttrList, st.Attrs[1].Kind)
	assert.Equal(t, AttrNameValue, st.Attrs[2].Kind)
}

// Name-value attribute payloads are skipped whole, including values that
// contain bracket groups, leaving the item they annotate intact.
func TestParseNameValueAttributeValues(t *testing.T) {
	file := parse(t, `
#[doc = "plain"]
#[path = concat!("a", ["b"], "c")]
#[flusty]
pub fn kept() {}
`)
	require.Len(t, file.Items, 1)
	fn := file.Items[0].(*FnItem)
	assert.Equal(t, "kept", fn.Name)
	require.Len(t, fn.Attrs, 3)
	assert.Equal(t, AttrNameValue, fn.Attrs[0].Kind)
	assert.Equal(t, AttrNameValue, fn.Attrs[1].Kind)
	assert.True(t, fn.Attrs[2].IsIdent("flusty"))
}

func TestParseTypeForms(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		rendered string
	}{
		{name: "path", src: "i32", rendered: "i32"},
		{name: "qualified path", src: "std::option::Option<i32>", rendered: "std::option::Option<i32>"},
		{name: "generic", src: "Vec<u8>", rendered: "Vec<u8>"},
		{name: "nested generic", src: "Option<Option<i32>>", rendered: "Option<Option<i32>>"},
		{name: "unit", src: "()", rendered: "()"},
		{name: "tuple", src: "(i8, bool)", rendered: "(i8, bool)"},
		{name: "array", src: "[bool; 4]", rendered: "[bool; 4]"},
		{name: "slice", src: "[u8]", rendered: "[u8]"},
		{name: "reference", src: "&'a mut str", rendered: "&mut str"},
		{name: "raw pointer", src: "*mut i32", rendered: "*mut i32"},
		{name: "fn pointer", src: "fn(i32) -> bool", rendered: "fn(i32) -> bool"},
		{name: "impl trait", src: "impl Iterator<Item = u8>", rendered: "impl Iterator < Item = u8 >"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := parse(t, "pub fn probe(x: "+tt.src+") {}")
			fn := file.Items[0].(*FnItem)
			require.Len(t, fn.Args, 1)
			assert.Equal(t, tt.rendered, fn.Args[0].Ty.String())
		})
	}
}

func TestParseArrayLengths(t *testing.T) {
	file := parse(t, `pub fn probe(a: [bool; 4], b: [u8; LEN]) {}`)
	fn := file.Items[0].(*FnItem)
	a := fn.Args[0].Ty.(*ArrayType)
	assert.True(t, a.Len.Lit)
	assert.Equal(t, uint64(4), a.Len.Value)
	b := fn.Args[1].Ty.(*ArrayType)
	assert.False(t, b.Len.Lit)
	assert.Equal(t, "LEN", b.Len.Raw)
}

func TestParseSpansTrackLines(t *testing.T) {
	file := parse(t, "\n\npub struct S { x: i32 }")
	st := file.Items[0].(*StructItem)
	assert.Equal(t, 3, st.Span().Start.Line)
	require.Len(t, st.Fields, 1)
	assert.Equal(t, 3, st.Fields[0].Span().Start.Line)
}

func TestParseErrorOnGarbage(t *testing.T) {
	_, err := ParseFile("bad.rs", "this is not rust ???")
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "bad.rs", perr.File)
}

func TestParseMutArgKeepsName(t *testing.T) {
	file := parse(t, `pub fn f(mut count: u32) {}`)
	fn := file.Items[0].(*FnItem)
	require.Len(t, fn.Args, 1)
	assert.Equal(t, "count", fn.Args[0].Name)
}
