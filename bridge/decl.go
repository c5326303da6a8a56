package bridge

import (
	"strconv"

	"github.com/wxxedu/flusty/syntax"
)

// extractField converts one syntax field. Positional fields receive their
// index as a synthesized name.
func extractField(f syntax.Field, index int) (Field, *ConversionError) {
	name := f.Name
	if name == "" {
		name = strconv.Itoa(index)
	}
	ty, err := ConvertType(f.Ty)
	if err != nil {
		return Field{}, wrap(err, "Field", f.Describe(), f.Span())
	}
	return Field{Name: name, Ty: ty}, nil
}

// ExtractStruct converts a parsed struct item into a model Struct. One bad
// field invalidates the whole declaration.
func ExtractStruct(item *syntax.StructItem) (*Struct, *ConversionError) {
	fields := make([]Field, 0, len(item.Fields))
	for i, f := range item.Fields {
		field, err := extractField(f, i)
		if err != nil {
			return nil, wrap(err, "Struct", item.Describe(), item.Span())
		}
		fields = append(fields, field)
	}
	return &Struct{Name: item.Name, Fields: fields}, nil
}

// ExtractEnum converts a parsed enum item into a model Enum.
func ExtractEnum(item *syntax.EnumItem) (*Enum, *ConversionError) {
	variants := make([]Variant, 0, len(item.Variants))
	for _, v := range item.Variants {
		variant, err := extractVariant(v)
		if err != nil {
			return nil, wrap(err, "Enum", item.Describe(), item.Span())
		}
		variants = append(variants, variant)
	}
	return &Enum{Name: item.Name, Variants: variants}, nil
}

func extractVariant(v syntax.VariantNode) (Variant, *ConversionError) {
	fields := make([]Field, 0, len(v.Fields))
	for i, f := range v.Fields {
		field, err := extractField(f, i)
		if err != nil {
			return Variant{}, wrap(err, "Variant", v.Describe(), v.Span())
		}
		fields = append(fields, field)
	}
	return Variant{Name: v.Name, Fields: fields}, nil
}

// ExtractFunc converts a parsed function item into a model Func. Method
// receivers are rejected: they cannot cross the ffi boundary. A missing
// return type defaults to unit.
func ExtractFunc(item *syntax.FnItem) (*Func, *ConversionError) {
	args := make([]Field, 0, len(item.Args))
	for _, a := range item.Args {
		arg, err := extractArg(a)
		if err != nil {
			return nil, wrap(err, "Func", item.Describe(), item.Span())
		}
		args = append(args, arg)
	}

	var ret Type = Unit
	if item.Ret != nil {
		converted, err := ConvertType(item.Ret)
		if err != nil {
			return nil, wrap(err, "Func", item.Describe(), item.Span())
		}
		ret = converted
	}
	return &Func{Name: item.Name, Args: args, Ret: ret}, nil
}

func extractArg(a syntax.FnArg) (Field, *ConversionError) {
	if a.Receiver {
		return Field{}, NewConversionError(KindReceiverField,
			"method receivers are not supported").
			WithSource("FnArg").
			WithDestination("Field").
			WithItem(a.Describe()).
			WithSpan(a.Span())
	}
	if a.Name == "" {
		return Field{}, NewConversionError(KindUnnamedField,
			"function arguments must be named").
			WithSource("FnArg").
			WithDestination("Field").
			WithItem(a.Describe()).
			WithSpan(a.Span())
	}
	ty, err := ConvertType(a.Ty)
	if err != nil {
		return Field{}, wrap(err, "Field", a.Describe(), a.Span())
	}
	return Field{Name: a.Name, Ty: ty}, nil
}
