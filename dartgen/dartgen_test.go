package dartgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wxxedu/flusty/bridge"
	"github.com/wxxedu/flusty/resolver"
)

func TestBuildRequiresNames(t *testing.T) {
	_, err := NewFileBuilder().Build()
	require.Error(t, err)

	_, err = NewFileBuilder().SetModuleName("lib").Build()
	require.Error(t, err)

	out, err := NewFileBuilder().SetModuleName("lib").SetLibName("native").Build()
	require.NoError(t, err)
	assert.Contains(t, out, "class Lib {")
}

func TestBuildLoader(t *testing.T) {
	out, err := NewFileBuilder().
		SetModuleName("my_lib").
		SetLibName("native").
		AddLibPath("target").
		AddLibPath("release").
		Build()
	require.NoError(t, err)

	assert.Contains(t, out, "class MyLib {")
	assert.Contains(t, out, "ffi.DynamicLibrary.open")
	assert.Contains(t, out, "'libnative.$ext'")
	assert.Contains(t, out, "'target',")
	assert.Contains(t, out, "'release',")
	assert.Contains(t, out, "ext = 'dylib'")
	assert.Contains(t, out, "ext = 'dll'")
	assert.Contains(t, out, "import 'dart:ffi' as ffi;")
}

func TestAddFunc(t *testing.T) {
	b := NewFileBuilder().SetModuleName("lib").SetLibName("native")
	require.NoError(t, b.AddFunc(&bridge.Func{
		Name: "add_one",
		Args: []bridge.Field{{Name: "base", Ty: bridge.I32}},
		Ret:  bridge.I32,
	}))
	out, err := b.Build()
	require.NoError(t, err)

	assert.Contains(t, out, "typedef AddOneNative = ffi.Int32 Function(ffi.Int32 base);")
	assert.Contains(t, out, "typedef AddOneDart = int Function(int base);")
	assert.Contains(t, out, "static final AddOneDart addOne = lib")
	assert.Contains(t, out, ".lookup<ffi.NativeFunction<AddOneNative>>('add_one')")
	assert.Contains(t, out, ".asFunction();")
}

func TestAddFuncRejectsUnsupported(t *testing.T) {
	b := NewFileBuilder()
	err := b.AddFunc(&bridge.Func{Name: "bad", Ret: bridge.U64})
	require.Error(t, err)
	var cerr *bridge.ConversionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, bridge.KindUnsupportedPrimitive, cerr.RootKind())
}

func TestAddStruct(t *testing.T) {
	b := NewFileBuilder().SetModuleName("lib").SetLibName("native")
	require.NoError(t, b.AddStruct(&bridge.Struct{
		Name: "point",
		Fields: []bridge.Field{
			{Name: "x", Ty: bridge.F64},
			{Name: "label", Ty: bridge.Str},
		},
	}))
	out, err := b.Build()
	require.NoError(t, err)

	assert.Contains(t, out, "final class Point extends ffi.Struct {")
	// Annotated scalar fields use the host type.
	assert.Contains(t, out, "@ffi.Double()\n  external double x;")
	// Pointer-shaped fields carry the ffi type with no annotation.
	assert.Contains(t, out, "external ffi.Pointer<ffi.Utf8> label;")
	assert.NotContains(t, out, "@ffi.Pointer")
}

// An @ffi.Char() field must be declared int: char's String host view is only
// valid in function signatures.
func TestAddStructCharField(t *testing.T) {
	b := NewFileBuilder().SetModuleName("lib").SetLibName("native")
	require.NoError(t, b.AddStruct(&bridge.Struct{
		Name: "letter",
		Fields: []bridge.Field{
			{Name: "c", Ty: bridge.Char},
		},
	}))
	out, err := b.Build()
	require.NoError(t, err)
	assert.Contains(t, out, "@ffi.Char()\n  external int c;")
	assert.NotContains(t, out, "external String c;")
}

func TestAddTupleStructFieldNames(t *testing.T) {
	b := NewFileBuilder().SetModuleName("lib").SetLibName("native")
	require.NoError(t, b.AddStruct(&bridge.Struct{
		Name: "pair",
		Fields: []bridge.Field{
			{Name: "0", Ty: bridge.I32},
			{Name: "1", Ty: bridge.Bool},
		},
	}))
	out, err := b.Build()
	require.NoError(t, err)
	assert.Contains(t, out, "external int $0;")
	assert.Contains(t, out, "external bool $1;")
}

func TestAddUnitEnum(t *testing.T) {
	b := NewFileBuilder().SetModuleName("lib").SetLibName("native")
	require.NoError(t, b.AddEnum(&bridge.Enum{
		Name: "flag",
		Variants: []bridge.Variant{
			{Name: "On"},
			{Name: "Off"},
		},
	}))
	out, err := b.Build()
	require.NoError(t, err)
	assert.Contains(t, out, "enum Flag {\n  on,\n  off,\n}")
}

func TestAddDataEnum(t *testing.T) {
	b := NewFileBuilder().SetModuleName("lib").SetLibName("native")
	require.NoError(t, b.AddEnum(&bridge.Enum{
		Name: "shape",
		Variants: []bridge.Variant{
			{Name: "Empty"},
			{Name: "Circle", Fields: []bridge.Field{{Name: "0", Ty: bridge.F64}}},
		},
	}))
	out, err := b.Build()
	require.NoError(t, err)

	assert.Contains(t, out, "final class ShapeCircle extends ffi.Struct {")
	assert.Contains(t, out, "final class ShapeValue extends ffi.Union {")
	assert.Contains(t, out, "external ShapeCircle circle;")
	assert.Contains(t, out, "final class Shape extends ffi.Struct {")
	assert.Contains(t, out, "external int tag;")
	assert.Contains(t, out, "external ShapeValue value;")
	// Field-less variants contribute no union member.
	assert.NotContains(t, out, "ShapeEmpty")
}

func TestAddModuleWalksTree(t *testing.T) {
	tree := &resolver.Module{
		Name:  "lib",
		Funcs: []*bridge.Func{{Name: "root_fn", Ret: bridge.Unit}},
		Children: []*resolver.Module{{
			Name:   "math",
			Parent: "lib",
			Funcs:  []*bridge.Func{{Name: "add", Ret: bridge.I32}},
		}},
	}
	b := NewFileBuilder().SetModuleName("lib").SetLibName("native")
	require.NoError(t, b.AddModule(tree))
	out, err := b.Build()
	require.NoError(t, err)

	rootAt := strings.Index(out, "rootFn")
	childAt := strings.Index(out, "static final AddDart add")
	require.Positive(t, rootAt)
	require.Positive(t, childAt)
	assert.Less(t, rootAt, childAt, "parent declarations come before children")
}

func TestGeneratedFileHeader(t *testing.T) {
	out, err := NewFileBuilder().SetModuleName("lib").SetLibName("native").Build()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "// GENERATED BY flusty. DO NOT EDIT."))
}
