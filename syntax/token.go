package syntax

import "fmt"

// TokenKind classifies lexical tokens.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenIdent
	TokenInt
	TokenString
	TokenChar
	TokenLifetime
	TokenPunct
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "eof"
	case TokenIdent:
		return "identifier"
	case TokenInt:
		return "number"
	case TokenString:
		return "string"
	case TokenChar:
		return "char"
	case TokenLifetime:
		return "lifetime"
	case TokenPunct:
		return "punctuation"
	}
	return "unknown"
}

// Token is one lexical token with its source span.
type Token struct {
	Kind TokenKind
	Text string
	Span Span

	// IntValue is the parsed value of a TokenInt whose literal fits in a
	// uint64. IntOK reports whether the parse succeeded.
	IntValue uint64
	IntOK    bool
}

func (t Token) String() string {
	if t.Kind == TokenEOF {
		return "end of file"
	}
	return fmt.Sprintf("%q", t.Text)
}

// Is reports whether the token is the given punctuation.
func (t Token) Is(punct string) bool {
	return t.Kind == TokenPunct && t.Text == punct
}

// IsIdent reports whether the token is the given identifier or keyword.
func (t Token) IsIdent(name string) bool {
	return t.Kind == TokenIdent && t.Text == name
}
