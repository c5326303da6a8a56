package syntax

import (
	"fmt"
	"strings"
)

// ParseError reports input that could not be parsed as Rust source.
type ParseError struct {
	Message string
	Pos     Position
	File    string
}

func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%s: %s", e.File, e.Pos, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// ParseFile parses src into a File. name is used in diagnostics only.
//
// The parser recognizes the item forms the resolver scans (mod, fn, struct,
// enum) and skips every other well-formed item. Function bodies are skipped
// by brace matching; no expression parsing is attempted.
func ParseFile(name, src string) (*File, error) {
	toks, err := lex(src)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.File = name
		}
		return nil, err
	}
	p := &parser{toks: toks, file: name}
	items, err := p.parseItems()
	if err != nil {
		return nil, err
	}
	return &File{Name: name, Items: items}, nil
}

type parser struct {
	toks []Token
	pos  int
	file string
}

func (p *parser) cur() Token {
	return p.toks[p.pos]
}

func (p *parser) advance() Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) eat(punct string) bool {
	if p.cur().Is(punct) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) eatIdent(name string) bool {
	if p.cur().IsIdent(name) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &ParseError{Message: fmt.Sprintf(format, args...), Pos: p.cur().Span.Start, File: p.file}
}

func (p *parser) expect(punct string) error {
	if !p.eat(punct) {
		return p.errorf("expected %q, found %s", punct, p.cur())
	}
	return nil
}

func (p *parser) expectIdent() (Token, error) {
	if p.cur().Kind != TokenIdent {
		return Token{}, p.errorf("expected identifier, found %s", p.cur())
	}
	return p.advance(), nil
}

// parseItems parses items until EOF.
func (p *parser) parseItems() ([]Item, error) {
	var items []Item
	for {
		if p.cur().Kind == TokenEOF {
			return items, nil
		}
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		if item != nil {
			items = append(items, item)
		}
	}
}

// parseItem parses one item. It returns (nil, nil) for items the scanner
// ignores (use, impl, const, macros, ...), which are skipped structurally.
func (p *parser) parseItem() (Item, error) {
	attrs, err := p.parseAttrs()
	if err != nil {
		return nil, err
	}

	start := p.cur().Span.Start
	if p.eat(";") {
		return nil, nil
	}
	public := false
	if p.eatIdent("pub") {
		// pub(crate), pub(super), pub(in path): restricted, not public.
		if p.cur().Is("(") {
			if err := p.skipGroup(); err != nil {
				return nil, err
			}
		} else {
			public = true
		}
	}

	// fn qualifiers.
	for {
		switch {
		case p.cur().IsIdent("const"):
			// `const fn` vs a const item: peek past the keyword.
			if next := p.toks[p.pos+1]; next.IsIdent("fn") || next.IsIdent("unsafe") ||
				next.IsIdent("extern") || next.IsIdent("async") {
				p.advance()
				continue
			}
			return nil, p.skipToSemi()
		case p.cur().IsIdent("async"):
			p.advance()
			continue
		case p.cur().IsIdent("unsafe"):
			if next := p.toks[p.pos+1]; next.IsIdent("impl") || next.IsIdent("trait") {
				p.advance()
				continue
			}
			p.advance()
			continue
		case p.cur().IsIdent("extern"):
			if next := p.toks[p.pos+1]; next.IsIdent("crate") {
				return nil, p.skipToSemi()
			}
			p.advance()
			if p.cur().Kind == TokenString {
				p.advance()
			}
			if p.cur().Is("{") {
				// Foreign module: skipped entirely.
				return nil, p.skipGroup()
			}
			continue
		}
		break
	}

	switch {
	case p.cur().IsIdent("mod"):
		p.advance()
		return p.parseMod(attrs, public, start)
	case p.cur().IsIdent("fn"):
		p.advance()
		return p.parseFn(attrs, public, start)
	case p.cur().IsIdent("struct"):
		p.advance()
		return p.parseStruct(attrs, public, start)
	case p.cur().IsIdent("enum"):
		p.advance()
		return p.parseEnum(attrs, public, start)
	case p.cur().IsIdent("use"), p.cur().IsIdent("type"), p.cur().IsIdent("static"):
		return nil, p.skipToSemi()
	case p.cur().IsIdent("impl"), p.cur().IsIdent("trait"), p.cur().IsIdent("union"):
		return nil, p.skipBlockItem()
	case p.cur().IsIdent("macro_rules"), p.cur().Kind == TokenIdent && p.toks[p.pos+1].Is("!"):
		return nil, p.skipMacroItem()
	default:
		return nil, p.errorf("expected item, found %s", p.cur())
	}
}

// parseAttrs consumes leading attributes. Inner attributes (#![...]) are
// skipped; outer attributes are classified by meta kind.
func (p *parser) parseAttrs() ([]Attr, error) {
	var attrs []Attr
	for p.cur().Is("#") {
		p.advance()
		inner := p.eat("!")
		if err := p.expect("["); err != nil {
			return nil, err
		}
		var path []string
		for {
			tok, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			path = append(path, tok.Text)
			if !p.eat("::") {
				break
			}
		}
		kind := AttrPath
		switch {
		case p.cur().Is("("):
			kind = AttrList
			if err := p.skipGroup(); err != nil {
				return nil, err
			}
		case p.cur().Is("="):
			kind = AttrNameValue
			if err := p.skipUntilCloseBracket(); err != nil {
				return nil, err
			}
		}
		if err := p.expect("]"); err != nil {
			return nil, err
		}
		if !inner {
			attrs = append(attrs, Attr{Path: path, Kind: kind})
		}
	}
	return attrs, nil
}

func (p *parser) parseMod(attrs []Attr, public bool, start Position) (Item, error) {
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	item := &ModItem{
		Name:   name.Text,
		Public: public,
		Attrs:  attrs,
		span:   Span{Start: start, End: name.Span.End},
	}
	if p.eat(";") {
		return item, nil
	}
	// Inline body: module content is resolved from disk, not from the block.
	if err := p.skipGroup(); err != nil {
		return nil, err
	}
	return item, nil
}

func (p *parser) parseFn(attrs []Attr, public bool, start Position) (Item, error) {
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if p.cur().Is("<") {
		if err := p.skipAngles(); err != nil {
			return nil, err
		}
	}
	if err := p.expect("("); err != nil {
		return nil, err
	}
	var args []FnArg
	for !p.cur().Is(")") {
		arg, err := p.parseFnArg()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.eat(",") {
			break
		}
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	var ret Type
	end := p.cur().Span.End
	if p.eat("->") {
		ret, err = p.parseType()
		if err != nil {
			return nil, err
		}
		end = ret.Span().End
	}
	if p.cur().IsIdent("where") {
		p.skipWhereClause()
	}
	if !p.eat(";") {
		if err := p.skipGroup(); err != nil {
			return nil, err
		}
	}
	return &FnItem{
		Name:   name.Text,
		Public: public,
		Attrs:  attrs,
		Args:   args,
		Ret:    ret,
		span:   Span{Start: start, End: end},
	}, nil
}

func (p *parser) parseFnArg() (FnArg, error) {
	if _, err := p.parseAttrs(); err != nil {
		return FnArg{}, err
	}
	start := p.cur().Span.Start

	// Receiver forms: self, mut self, &self, &'a self, &mut self.
	save := p.pos
	if p.eat("&") {
		if p.cur().Kind == TokenLifetime {
			p.advance()
		}
		p.eatIdent("mut")
		if p.eatIdent("self") {
			return FnArg{Receiver: true, span: Span{Start: start, End: p.toks[p.pos-1].Span.End}}, nil
		}
		p.pos = save
	}
	if p.cur().IsIdent("self") || p.cur().IsIdent("mut") && p.toks[p.pos+1].IsIdent("self") {
		p.eatIdent("mut")
		p.advance()
		return FnArg{Receiver: true, span: Span{Start: start, End: p.toks[p.pos-1].Span.End}}, nil
	}

	// Typed argument: pattern ':' type. Only identifier patterns keep their
	// name; anything else (tuples, _, refs) is recorded nameless and rejected
	// later by the extractor.
	name := ""
	if p.cur().IsIdent("mut") && p.toks[p.pos+1].Kind == TokenIdent && p.toks[p.pos+2].Is(":") {
		p.advance()
	}
	if p.cur().Kind == TokenIdent && p.toks[p.pos+1].Is(":") {
		if tok := p.advance(); tok.Text != "_" {
			name = tok.Text
		}
	} else {
		for !p.cur().Is(":") && p.cur().Kind != TokenEOF {
			if p.cur().Is("(") || p.cur().Is("[") {
				if err := p.skipGroup(); err != nil {
					return FnArg{}, err
				}
				continue
			}
			p.advance()
		}
	}
	if err := p.expect(":"); err != nil {
		return FnArg{}, err
	}
	ty, err := p.parseType()
	if err != nil {
		return FnArg{}, err
	}
	return FnArg{Name: name, Ty: ty, span: Span{Start: start, End: ty.Span().End}}, nil
}

func (p *parser) parseStruct(attrs []Attr, public bool, start Position) (Item, error) {
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if p.cur().Is("<") {
		if err := p.skipAngles(); err != nil {
			return nil, err
		}
	}
	if p.cur().IsIdent("where") {
		p.skipWhereClause()
	}
	item := &StructItem{
		Name:   name.Text,
		Public: public,
		Attrs:  attrs,
		span:   Span{Start: start, End: name.Span.End},
	}
	switch {
	case p.eat(";"):
		return item, nil
	case p.eat("{"):
		for !p.cur().Is("}") {
			field, err := p.parseNamedField()
			if err != nil {
				return nil, err
			}
			item.Fields = append(item.Fields, field)
			if !p.eat(",") {
				break
			}
		}
		if err := p.expect("}"); err != nil {
			return nil, err
		}
		return item, nil
	case p.eat("("):
		item.Tuple = true
		for !p.cur().Is(")") {
			field, err := p.parseTupleField()
			if err != nil {
				return nil, err
			}
			item.Fields = append(item.Fields, field)
			if !p.eat(",") {
				break
			}
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		if p.cur().IsIdent("where") {
			p.skipWhereClause()
		}
		if err := p.expect(";"); err != nil {
			return nil, err
		}
		return item, nil
	default:
		return nil, p.errorf("expected struct body, found %s", p.cur())
	}
}

func (p *parser) parseNamedField() (Field, error) {
	if _, err := p.parseAttrs(); err != nil {
		return Field{}, err
	}
	start := p.cur().Span.Start
	if p.eatIdent("pub") && p.cur().Is("(") {
		if err := p.skipGroup(); err != nil {
			return Field{}, err
		}
	}
	name, err := p.expectIdent()
	if err != nil {
		return Field{}, err
	}
	if err := p.expect(":"); err != nil {
		return Field{}, err
	}
	ty, err := p.parseType()
	if err != nil {
		return Field{}, err
	}
	return Field{Name: name.Text, Ty: ty, span: Span{Start: start, End: ty.Span().End}}, nil
}

func (p *parser) parseTupleField() (Field, error) {
	if _, err := p.parseAttrs(); err != nil {
		return Field{}, err
	}
	start := p.cur().Span.Start
	if p.eatIdent("pub") && p.cur().Is("(") {
		if err := p.skipGroup(); err != nil {
			return Field{}, err
		}
	}
	ty, err := p.parseType()
	if err != nil {
		return Field{}, err
	}
	return Field{Ty: ty, span: Span{Start: start, End: ty.Span().End}}, nil
}

func (p *parser) parseEnum(attrs []Attr, public bool, start Position) (Item, error) {
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if p.cur().Is("<") {
		if err := p.skipAngles(); err != nil {
			return nil, err
		}
	}
	if p.cur().IsIdent("where") {
		p.skipWhereClause()
	}
	if err := p.expect("{"); err != nil {
		return nil, err
	}
	item := &EnumItem{
		Name:   name.Text,
		Public: public,
		Attrs:  attrs,
		span:   Span{Start: start, End: name.Span.End},
	}
	for !p.cur().Is("}") {
		variant, err := p.parseVariant()
		if err != nil {
			return nil, err
		}
		item.Variants = append(item.Variants, variant)
		if !p.eat(",") {
			break
		}
	}
	if err := p.expect("}"); err != nil {
		return nil, err
	}
	return item, nil
}

func (p *parser) parseVariant() (VariantNode, error) {
	if _, err := p.parseAttrs(); err != nil {
		return VariantNode{}, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return VariantNode{}, err
	}
	variant := VariantNode{Name: name.Text, span: name.Span}
	switch {
	case p.eat("("):
		variant.Tuple = true
		for !p.cur().Is(")") {
			field, err := p.parseTupleField()
			if err != nil {
				return VariantNode{}, err
			}
			variant.Fields = append(variant.Fields, field)
			if !p.eat(",") {
				break
			}
		}
		if err := p.expect(")"); err != nil {
			return VariantNode{}, err
		}
	case p.eat("{"):
		for !p.cur().Is("}") {
			field, err := p.parseNamedField()
			if err != nil {
				return VariantNode{}, err
			}
			variant.Fields = append(variant.Fields, field)
			if !p.eat(",") {
				break
			}
		}
		if err := p.expect("}"); err != nil {
			return VariantNode{}, err
		}
	}
	// Explicit discriminant: consume until the variant separator.
	if p.eat("=") {
		for !p.cur().Is(",") && !p.cur().Is("}") && p.cur().Kind != TokenEOF {
			if p.cur().Is("(") || p.cur().Is("[") || p.cur().Is("{") {
				if err := p.skipGroup(); err != nil {
					return VariantNode{}, err
				}
				continue
			}
			p.advance()
		}
	}
	return variant, nil
}

// parseType parses one type expression.
func (p *parser) parseType() (Type, error) {
	start := p.cur().Span.Start
	switch {
	case p.cur().Is("("):
		p.advance()
		if p.cur().Is(")") {
			end := p.advance().Span.End
			return &TupleType{span: Span{Start: start, End: end}}, nil
		}
		var elems []Type
		sawComma := false
		for {
			elem, err := p.parseType()
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
			if p.eat(",") {
				sawComma = true
				if p.cur().Is(")") {
					break
				}
				continue
			}
			break
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		end := p.toks[p.pos-1].Span.End
		if len(elems) == 1 && !sawComma {
			// Parenthesized type, not a 1-tuple.
			return elems[0], nil
		}
		return &TupleType{Elems: elems, span: Span{Start: start, End: end}}, nil

	case p.cur().Is("["):
		p.advance()
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if p.eat(";") {
			length, err := p.parseArrayLen()
			if err != nil {
				return nil, err
			}
			if err := p.expect("]"); err != nil {
				return nil, err
			}
			end := p.toks[p.pos-1].Span.End
			return &ArrayType{Elem: elem, Len: length, span: Span{Start: start, End: end}}, nil
		}
		if err := p.expect("]"); err != nil {
			return nil, err
		}
		end := p.toks[p.pos-1].Span.End
		return &SliceType{Elem: elem, span: Span{Start: start, End: end}}, nil

	case p.cur().Is("&"):
		p.advance()
		if p.cur().Kind == TokenLifetime {
			p.advance()
		}
		mut := p.eatIdent("mut")
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &RefType{Elem: elem, Mut: mut, span: Span{Start: start, End: elem.Span().End}}, nil

	case p.cur().Is("*"):
		p.advance()
		mut := false
		switch {
		case p.eatIdent("mut"):
			mut = true
		case p.eatIdent("const"):
		default:
			return nil, p.errorf("expected `const` or `mut` after `*`, found %s", p.cur())
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &PtrType{Elem: elem, Mut: mut, span: Span{Start: start, End: elem.Span().End}}, nil

	case p.cur().IsIdent("fn"), p.cur().IsIdent("unsafe"), p.cur().IsIdent("extern"):
		return p.parseFnType(start)

	case p.cur().IsIdent("impl"), p.cur().IsIdent("dyn"), p.cur().IsIdent("_"), p.cur().Is("<"):
		return p.parseOtherType(start)

	case p.cur().Kind == TokenIdent, p.cur().Is("::"):
		return p.parsePathType(start)

	default:
		return nil, p.errorf("expected type, found %s", p.cur())
	}
}

func (p *parser) parseArrayLen() (ArrayLen, error) {
	var toks []Token
	depth := 0
	for {
		t := p.cur()
		if t.Kind == TokenEOF {
			return ArrayLen{}, p.errorf("unexpected end of file in array length")
		}
		if depth == 0 && t.Is("]") {
			break
		}
		if t.Is("(") || t.Is("[") || t.Is("{") {
			depth++
		}
		if t.Is(")") || t.Is("]") || t.Is("}") {
			depth--
		}
		toks = append(toks, p.advance())
	}
	if len(toks) == 1 && toks[0].Kind == TokenInt && toks[0].IntOK {
		return ArrayLen{Lit: true, Value: toks[0].IntValue}, nil
	}
	parts := make([]string, len(toks))
	for i, t := range toks {
		parts[i] = t.Text
	}
	return ArrayLen{Raw: strings.Join(parts, " ")}, nil
}

func (p *parser) parseFnType(start Position) (Type, error) {
	p.eatIdent("unsafe")
	if p.eatIdent("extern") && p.cur().Kind == TokenString {
		p.advance()
	}
	if !p.eatIdent("fn") {
		return nil, p.errorf("expected `fn`, found %s", p.cur())
	}
	if err := p.expect("("); err != nil {
		return nil, err
	}
	var params []Type
	for !p.cur().Is(")") {
		// Optional parameter name.
		if p.cur().Kind == TokenIdent && p.toks[p.pos+1].Is(":") {
			p.advance()
			p.advance()
		}
		param, err := p.parseType()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !p.eat(",") {
			break
		}
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	var ret Type
	end := p.toks[p.pos-1].Span.End
	if p.eat("->") {
		var err error
		ret, err = p.parseType()
		if err != nil {
			return nil, err
		}
		end = ret.Span().End
	}
	return &FnType{Params: params, Ret: ret, span: Span{Start: start, End: end}}, nil
}

// parseOtherType consumes an unmodeled type form (impl Trait, dyn Trait, _,
// qualified paths), preserving its spelling for diagnostics.
func (p *parser) parseOtherType(start Position) (Type, error) {
	var parts []string
	angles := 0
	for {
		t := p.cur()
		if t.Kind == TokenEOF {
			break
		}
		if angles == 0 && (t.Is(",") || t.Is(")") || t.Is("]") || t.Is("}") || t.Is(";") || t.Is("{") || t.Is("=")) {
			break
		}
		if t.Is("<") {
			angles++
		}
		if t.Is(">") {
			if angles == 0 {
				break
			}
			angles--
		}
		parts = append(parts, p.advance().Text)
	}
	if len(parts) == 0 {
		return nil, p.errorf("expected type, found %s", p.cur())
	}
	end := p.toks[p.pos-1].Span.End
	return &OtherType{Raw: strings.Join(parts, " "), span: Span{Start: start, End: end}}, nil
}

func (p *parser) parsePathType(start Position) (Type, error) {
	p.eat("::") // leading global path qualifier
	var segments []PathSegment
	for {
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		seg := PathSegment{Name: name.Text}
		if p.cur().Is("<") {
			args, err := p.parseGenericArgs()
			if err != nil {
				return nil, err
			}
			seg.Args = args
		}
		segments = append(segments, seg)
		if !p.eat("::") {
			break
		}
	}
	end := p.toks[p.pos-1].Span.End
	return &PathType{Segments: segments, span: Span{Start: start, End: end}}, nil
}

func (p *parser) parseGenericArgs() ([]Type, error) {
	if err := p.expect("<"); err != nil {
		return nil, err
	}
	var args []Type
	for !p.cur().Is(">") {
		switch {
		case p.cur().Kind == TokenLifetime:
			p.advance()
		case p.cur().Kind == TokenIdent && p.toks[p.pos+1].Is("="):
			// Associated type binding (Item = T); not a type argument.
			p.advance()
			p.advance()
			if _, err := p.parseType(); err != nil {
				return nil, err
			}
		case p.cur().Kind == TokenInt:
			// Const generic argument; not a type, kept for the spelling.
			t := p.advance()
			args = append(args, &OtherType{Raw: t.Text, span: t.Span})
		default:
			arg, err := p.parseType()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		if !p.eat(",") {
			break
		}
	}
	if err := p.expect(">"); err != nil {
		return nil, err
	}
	return args, nil
}

// skipGroup consumes a balanced bracket group starting at the current token,
// which must be one of ( [ {.
func (p *parser) skipGroup() error {
	open := p.cur()
	var closer string
	switch open.Text {
	case "(":
		closer = ")"
	case "[":
		closer = "]"
	case "{":
		closer = "}"
	default:
		return p.errorf("expected a bracket group, found %s", open)
	}
	p.advance()
	depth := 1
	for depth > 0 {
		t := p.cur()
		if t.Kind == TokenEOF {
			return p.errorf("unexpected end of file, unclosed %q", open.Text)
		}
		if t.Is(open.Text) {
			depth++
		} else if t.Is(closer) {
			depth--
		} else if t.Is("(") || t.Is("[") || t.Is("{") {
			if err := p.skipGroup(); err != nil {
				return err
			}
			continue
		}
		p.advance()
	}
	return nil
}

// skipAngles consumes a balanced <...> group, tolerating nested brackets.
func (p *parser) skipAngles() error {
	if err := p.expect("<"); err != nil {
		return err
	}
	depth := 1
	for depth > 0 {
		t := p.cur()
		if t.Kind == TokenEOF {
			return p.errorf("unexpected end of file, unclosed %q", "<")
		}
		if t.Is("<") {
			depth++
		} else if t.Is(">") {
			depth--
		} else if t.Is("(") || t.Is("[") || t.Is("{") {
			if err := p.skipGroup(); err != nil {
				return err
			}
			continue
		}
		p.advance()
	}
	return nil
}

// skipUntilCloseBracket consumes tokens up to, not including, the `]` that
// closes the current attribute, skipping balanced groups along the way.
func (p *parser) skipUntilCloseBracket() error {
	for {
		t := p.cur()
		switch {
		case t.Kind == TokenEOF:
			return p.errorf("unexpected end of file, expected %q", "]")
		case t.Is("]"):
			return nil
		case t.Is("(") || t.Is("[") || t.Is("{"):
			if err := p.skipGroup(); err != nil {
				return err
			}
		default:
			p.advance()
		}
	}
}

// skipToSemi consumes tokens up to and including the next top-level semicolon.
func (p *parser) skipToSemi() error {
	for {
		t := p.cur()
		switch {
		case t.Kind == TokenEOF:
			return p.errorf("unexpected end of file, expected %q", ";")
		case t.Is(";"):
			p.advance()
			return nil
		case t.Is("(") || t.Is("[") || t.Is("{"):
			if err := p.skipGroup(); err != nil {
				return err
			}
		default:
			p.advance()
		}
	}
}

// skipBlockItem consumes an item that ends with a brace-delimited body
// (impl, trait, union), or with a semicolon if one comes first.
func (p *parser) skipBlockItem() error {
	for {
		t := p.cur()
		switch {
		case t.Kind == TokenEOF:
			return p.errorf("unexpected end of file in item")
		case t.Is(";"):
			p.advance()
			return nil
		case t.Is("{"):
			return p.skipGroup()
		case t.Is("(") || t.Is("["):
			if err := p.skipGroup(); err != nil {
				return err
			}
		default:
			p.advance()
		}
	}
}

// skipMacroItem consumes macro_rules! definitions and item-position macro
// invocations. Brace-delimited macros need no trailing semicolon.
func (p *parser) skipMacroItem() error {
	for {
		t := p.cur()
		switch {
		case t.Kind == TokenEOF:
			return p.errorf("unexpected end of file in macro")
		case t.Is(";"):
			p.advance()
			return nil
		case t.Is("{"):
			return p.skipGroup()
		case t.Is("(") || t.Is("["):
			if err := p.skipGroup(); err != nil {
				return err
			}
			p.eat(";")
			return nil
		default:
			p.advance()
		}
	}
}

// skipWhereClause consumes a where clause up to the body or terminator.
func (p *parser) skipWhereClause() {
	for {
		t := p.cur()
		if t.Kind == TokenEOF || t.Is("{") || t.Is(";") {
			return
		}
		p.advance()
	}
}
