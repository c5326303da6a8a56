package syntax

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// lexer tokenizes Rust source text. It understands just enough of the
// language to keep item boundaries honest: comments, string/char literals
// and lifetimes are consumed as units so that brace matching over the token
// stream cannot be fooled by their contents.
type lexer struct {
	src []rune
	pos int
	pt  *PositionTracker
}

func newLexer(src string) *lexer {
	return &lexer{src: []rune(src), pt: NewPositionTracker()}
}

// lex tokenizes the whole input. It returns a ParseError for input that is
// not lexically valid Rust (an unterminated literal, a stray byte).
func lex(src string) ([]Token, error) {
	l := newLexer(src)
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			return toks, nil
		}
	}
}

func (l *lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) peekAt(n int) rune {
	if l.pos+n >= len(l.src) {
		return 0
	}
	return l.src[l.pos+n]
}

func (l *lexer) advance() rune {
	r := l.src[l.pos]
	l.pos++
	l.pt.Advance(r)
	return r
}

func (l *lexer) errorf(pos Position, format string, args ...interface{}) error {
	return &ParseError{Message: fmt.Sprintf(format, args...), Pos: pos}
}

func (l *lexer) next() (Token, error) {
	if err := l.skipTrivia(); err != nil {
		return Token{}, err
	}
	start := l.pt.Current()
	if l.pos >= len(l.src) {
		return Token{Kind: TokenEOF, Span: Span{Start: start, End: start}}, nil
	}

	r := l.peek()
	switch {
	case isIdentStart(r):
		return l.lexIdentOrLiteral(start), nil
	case unicode.IsDigit(r):
		return l.lexNumber(start), nil
	case r == '"':
		return l.lexString(start)
	case r == '\'':
		return l.lexQuote(start)
	default:
		return l.lexPunct(start)
	}
}

// skipTrivia consumes whitespace and comments, including nested block comments.
func (l *lexer) skipTrivia() error {
	for l.pos < len(l.src) {
		r := l.peek()
		switch {
		case unicode.IsSpace(r):
			l.advance()
		case r == '/' && l.peekAt(1) == '/':
			for l.pos < len(l.src) && l.peek() != '\n' {
				l.advance()
			}
		case r == '/' && l.peekAt(1) == '*':
			start := l.pt.Current()
			l.advance()
			l.advance()
			depth := 1
			for depth > 0 {
				if l.pos >= len(l.src) {
					return l.errorf(start, "unterminated block comment")
				}
				if l.peek() == '/' && l.peekAt(1) == '*' {
					l.advance()
					l.advance()
					depth++
				} else if l.peek() == '*' && l.peekAt(1) == '/' {
					l.advance()
					l.advance()
					depth--
				} else {
					l.advance()
				}
			}
		default:
			return nil
		}
	}
	return nil
}

func (l *lexer) lexIdentOrLiteral(start Position) Token {
	var sb strings.Builder
	for l.pos < len(l.src) && isIdentContinue(l.peek()) {
		sb.WriteRune(l.advance())
	}
	text := sb.String()

	// Raw string literals: r"...", r#"..."#, b"...", br#"..."#.
	if (text == "r" || text == "b" || text == "br") && (l.peek() == '"' || l.peek() == '#') {
		if tok, ok := l.lexRawString(start); ok {
			return tok
		}
	}
	// Raw identifiers: r#ident.
	if text == "r" && l.peek() == '#' && isIdentStart(l.peekAt(1)) {
		l.advance() // '#'
		var raw strings.Builder
		for l.pos < len(l.src) && isIdentContinue(l.peek()) {
			raw.WriteRune(l.advance())
		}
		return Token{Kind: TokenIdent, Text: raw.String(), Span: Span{Start: start, End: l.pt.Current()}}
	}
	return Token{Kind: TokenIdent, Text: text, Span: Span{Start: start, End: l.pt.Current()}}
}

// lexRawString consumes r#*"..."#* after the leading prefix identifier was
// already consumed. Returns ok=false when the input is not actually a raw
// string (e.g. `r #[...]`), in which case nothing further is consumed.
func (l *lexer) lexRawString(start Position) (Token, bool) {
	hashes := 0
	for l.peekAt(hashes) == '#' {
		hashes++
	}
	if l.peekAt(hashes) != '"' {
		return Token{}, false
	}
	for i := 0; i < hashes+1; i++ {
		l.advance()
	}
	var sb strings.Builder
	closer := `"` + strings.Repeat("#", hashes)
	for l.pos < len(l.src) {
		if l.peek() == '"' {
			match := true
			for i := 1; i <= hashes; i++ {
				if l.peekAt(i) != '#' {
					match = false
					break
				}
			}
			if match {
				for i := 0; i < len(closer); i++ {
					l.advance()
				}
				return Token{Kind: TokenString, Text: sb.String(), Span: Span{Start: start, End: l.pt.Current()}}, true
			}
		}
		sb.WriteRune(l.advance())
	}
	// Unterminated; surface what we have rather than scanning forever.
	return Token{Kind: TokenString, Text: sb.String(), Span: Span{Start: start, End: l.pt.Current()}}, true
}

func (l *lexer) lexNumber(start Position) Token {
	var sb strings.Builder
	// Base prefix.
	if l.peek() == '0' && (l.peekAt(1) == 'x' || l.peekAt(1) == 'o' || l.peekAt(1) == 'b' || l.peekAt(1) == 'X') {
		sb.WriteRune(l.advance())
		sb.WriteRune(l.advance())
	}
	for l.pos < len(l.src) && (isIdentContinue(l.peek()) || l.peek() == '.') {
		// A second '.' or '..' range operator terminates the literal.
		if l.peek() == '.' {
			if strings.ContainsRune(sb.String(), '.') || l.peekAt(1) == '.' || !unicode.IsDigit(l.peekAt(1)) {
				break
			}
		}
		sb.WriteRune(l.advance())
	}
	text := sb.String()
	tok := Token{Kind: TokenInt, Text: text, Span: Span{Start: start, End: l.pt.Current()}}
	if v, ok := parseIntLiteral(text); ok {
		tok.IntValue = v
		tok.IntOK = true
	}
	return tok
}

// parseIntLiteral parses a Rust integer literal (underscores, base prefixes,
// type suffixes) into a uint64.
func parseIntLiteral(text string) (uint64, bool) {
	s := strings.ReplaceAll(text, "_", "")
	base := 10
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		base, s = 16, s[2:]
	case strings.HasPrefix(s, "0o"):
		base, s = 8, s[2:]
	case strings.HasPrefix(s, "0b"):
		base, s = 2, s[2:]
	}
	// Strip a trailing type suffix such as usize or u32.
	for i, r := range s {
		if base == 10 && (r == 'u' || r == 'i') || base != 10 && (r == 'u' || r == 'i') && i > 0 {
			s = s[:i]
			break
		}
	}
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(s, base, 64)
	return v, err == nil
}

func (l *lexer) lexString(start Position) (Token, error) {
	l.advance() // opening quote
	var sb strings.Builder
	for {
		if l.pos >= len(l.src) {
			return Token{}, l.errorf(start, "unterminated string literal")
		}
		r := l.advance()
		if r == '"' {
			break
		}
		if r == '\\' && l.pos < len(l.src) {
			sb.WriteRune(r)
			r = l.advance()
		}
		sb.WriteRune(r)
	}
	return Token{Kind: TokenString, Text: sb.String(), Span: Span{Start: start, End: l.pt.Current()}}, nil
}

// lexQuote disambiguates lifetimes ('a) from char literals ('a').
func (l *lexer) lexQuote(start Position) (Token, error) {
	l.advance() // opening quote
	if isIdentStart(l.peek()) && l.peekAt(1) != '\'' {
		// Lifetime: 'ident not followed by a closing quote.
		var sb strings.Builder
		for l.pos < len(l.src) && isIdentContinue(l.peek()) {
			sb.WriteRune(l.advance())
		}
		return Token{Kind: TokenLifetime, Text: "'" + sb.String(), Span: Span{Start: start, End: l.pt.Current()}}, nil
	}
	var sb strings.Builder
	for {
		if l.pos >= len(l.src) {
			return Token{}, l.errorf(start, "unterminated char literal")
		}
		r := l.advance()
		if r == '\'' {
			break
		}
		if r == '\\' && l.pos < len(l.src) {
			sb.WriteRune(r)
			r = l.advance()
		}
		sb.WriteRune(r)
	}
	return Token{Kind: TokenChar, Text: sb.String(), Span: Span{Start: start, End: l.pt.Current()}}, nil
}

func (l *lexer) lexPunct(start Position) (Token, error) {
	r := l.advance()
	text := string(r)
	// The only multi-rune punctuation the parser relies on. '>' is always a
	// single token so nested generic arguments close one level at a time.
	switch r {
	case ':':
		if l.peek() == ':' {
			l.advance()
			text = "::"
		}
	case '-':
		if l.peek() == '>' {
			l.advance()
			text = "->"
		}
	case '=':
		if l.peek() == '>' {
			l.advance()
			text = "=>"
		}
	}
	if !isKnownPunct(rune(text[0])) {
		return Token{}, l.errorf(start, "unexpected character %q", string(r))
	}
	return Token{Kind: TokenPunct, Text: text, Span: Span{Start: start, End: l.pt.Current()}}, nil
}

func isKnownPunct(r rune) bool {
	return strings.ContainsRune("#![](){}<>,;:=-+*&|^%/.?@~$", r)
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
