// Package dartgen renders a resolved module tree into Dart binding source.
package dartgen

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/wxxedu/flusty/bridge"
	"github.com/wxxedu/flusty/errors"
	"github.com/wxxedu/flusty/resolver"
)

// fileTemplate is the skeleton of a generated binding file: typedefs, the
// library loader class with its lookup members, then type definitions.
var fileTemplate = template.Must(template.New("dart").Parse(`// GENERATED BY flusty. DO NOT EDIT.

import 'dart:ffi' as ffi;
import 'dart:io' show Platform, Directory;
import 'package:ffi/ffi.dart';
import 'package:path/path.dart' as path;
{{range .TypeDefs}}
{{.}}{{end}}

class {{.ModuleName}} {
  static ffi.DynamicLibrary? _lib;

  static ffi.DynamicLibrary get lib {
    if (_lib != null) {
      return _lib!;
    }
    var ext = 'so';
    if (Platform.isMacOS) {
      ext = 'dylib';
    } else if (Platform.isWindows) {
      ext = 'dll';
    }
    final libPath = path.join(
      Directory.current.path,
      {{.LibPath}}
      'lib{{.LibName}}.$ext',
    );
    _lib = ffi.DynamicLibrary.open(libPath);
    return _lib!;
  }
{{range .Functions}}
{{.}}{{end}}}
{{range .Types}}
{{.}}{{end}}`))

// FileBuilder accumulates rendered declarations and produces one Dart file.
type FileBuilder struct {
	moduleName string
	libName    string
	libPath    []string
	typeDefs   []string
	functions  []string
	types      []string
}

// NewFileBuilder creates an empty builder.
func NewFileBuilder() *FileBuilder {
	return &FileBuilder{}
}

// SetModuleName sets the Dart class name wrapping the library.
func (b *FileBuilder) SetModuleName(name string) *FileBuilder {
	b.moduleName = bridge.PascalCase(name)
	return b
}

// SetLibName sets the dynamic library base name.
func (b *FileBuilder) SetLibName(name string) *FileBuilder {
	b.libName = name
	return b
}

// AddLibPath appends one directory segment to the library search path.
func (b *FileBuilder) AddLibPath(segment string) *FileBuilder {
	b.libPath = append(b.libPath, segment)
	return b
}

// AddModule renders every declaration of a resolved module tree, depth-first,
// in source order.
func (b *FileBuilder) AddModule(m *resolver.Module) error {
	for _, st := range m.Structs {
		if err := b.AddStruct(st); err != nil {
			return err
		}
	}
	for _, en := range m.Enums {
		if err := b.AddEnum(en); err != nil {
			return err
		}
	}
	for _, fn := range m.Funcs {
		if err := b.AddFunc(fn); err != nil {
			return err
		}
	}
	for _, child := range m.Children {
		if err := b.AddModule(child); err != nil {
			return err
		}
	}
	return nil
}

// AddFunc renders the typedef pair and lookup member for one function.
func (b *FileBuilder) AddFunc(f *bridge.Func) error {
	views, cerr := bridge.TypeViews(f)
	if cerr != nil {
		return cerr
	}
	pascal := bridge.PascalCase(f.Name)
	nativeDef := fmt.Sprintf("typedef %sNative = %s;", pascal, views.FFI)
	dartDef := fmt.Sprintf("typedef %sDart = %s;", pascal, views.Host)
	b.typeDefs = append(b.typeDefs, nativeDef, dartDef)

	var sb strings.Builder
	fmt.Fprintf(&sb, "  static final %sDart %s = lib\n", pascal, bridge.CamelCase(f.Name))
	fmt.Fprintf(&sb, "      .lookup<ffi.NativeFunction<%sNative>>('%s')\n", pascal, f.Name)
	sb.WriteString("      .asFunction();\n")
	b.functions = append(b.functions, sb.String())
	return nil
}

// AddStruct renders one struct as a final ffi.Struct class.
func (b *FileBuilder) AddStruct(s *bridge.Struct) error {
	if _, cerr := bridge.TypeViews(s); cerr != nil {
		return cerr
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "final class %s extends ffi.Struct {\n", bridge.PascalCase(s.Name))
	for _, f := range s.Fields {
		if err := writeField(&sb, f); err != nil {
			return err
		}
	}
	sb.WriteString("}\n")
	b.types = append(b.types, sb.String())
	return nil
}

// AddEnum renders a field-less enum as a plain Dart enum, and a data-carrying
// enum as a tag struct over a variant union.
func (b *FileBuilder) AddEnum(e *bridge.Enum) error {
	if _, cerr := bridge.TypeViews(e); cerr != nil {
		return cerr
	}
	pascal := bridge.PascalCase(e.Name)
	if e.IsUnit() {
		names := make([]string, len(e.Variants))
		for i, v := range e.Variants {
			names[i] = "  " + bridge.CamelCase(v.Name) + ","
		}
		b.types = append(b.types, fmt.Sprintf("enum %s {\n%s\n}\n", pascal, strings.Join(names, "\n")))
		return nil
	}

	var union strings.Builder
	fmt.Fprintf(&union, "final class %sValue extends ffi.Union {\n", pascal)
	for _, v := range e.Variants {
		variantClass := pascal + bridge.PascalCase(v.Name)
		if len(v.Fields) > 0 {
			var vs strings.Builder
			fmt.Fprintf(&vs, "final class %s extends ffi.Struct {\n", variantClass)
			for _, f := range v.Fields {
				if err := writeField(&vs, f); err != nil {
					return err
				}
			}
			vs.WriteString("}\n")
			b.types = append(b.types, vs.String())
			fmt.Fprintf(&union, "  external %s %s;\n", variantClass, bridge.CamelCase(v.Name))
		}
	}
	union.WriteString("}\n")
	b.types = append(b.types, union.String())

	var sb strings.Builder
	fmt.Fprintf(&sb, "final class %s extends ffi.Struct {\n", pascal)
	sb.WriteString("  @ffi.Int32()\n  external int tag;\n\n")
	fmt.Fprintf(&sb, "  external %sValue value;\n", pascal)
	sb.WriteString("}\n")
	b.types = append(b.types, sb.String())
	return nil
}

// writeField renders one struct field: annotation (when the ffi type needs
// one) plus the Dart-side declaration.
func writeField(sb *strings.Builder, f bridge.Field) error {
	views, cerr := bridge.TypeViews(f.Ty)
	if cerr != nil {
		return cerr
	}
	fieldType := views.FFI
	if annotation, ok := bridge.FFIAnnotation(f.Ty); ok {
		fmt.Fprintf(sb, "  %s\n", annotation)
		fieldType = views.Host
		if f.Ty == bridge.Char {
			// A char field holds an integer code unit; its host view
			// (String) only applies to function signatures.
			fieldType = "int"
		}
	}
	fmt.Fprintf(sb, "  external %s %s;\n", fieldType, fieldName(f.Name))
	return nil
}

// fieldName makes a synthesized positional name ("0", "1", ...) a legal Dart
// identifier.
func fieldName(name string) string {
	if name != "" && name[0] >= '0' && name[0] <= '9' {
		return "$" + name
	}
	return bridge.CamelCase(name)
}

// Build renders the accumulated file.
func (b *FileBuilder) Build() (string, error) {
	if b.moduleName == "" {
		return "", errors.New("dartgen: module name is required")
	}
	if b.libName == "" {
		return "", errors.New("dartgen: lib name is required")
	}
	var libPath strings.Builder
	for _, segment := range b.libPath {
		fmt.Fprintf(&libPath, "'%s',\n      ", segment)
	}
	var out strings.Builder
	err := fileTemplate.Execute(&out, struct {
		ModuleName string
		LibName    string
		LibPath    string
		TypeDefs   []string
		Functions  []string
		Types      []string
	}{
		ModuleName: b.moduleName,
		LibName:    b.libName,
		LibPath:    strings.TrimRight(libPath.String(), " \n"),
		TypeDefs:   b.typeDefs,
		Functions:  b.functions,
		Types:      b.types,
	})
	if err != nil {
		return "", errors.Wrap(err, "dartgen: render template")
	}
	return out.String(), nil
}
