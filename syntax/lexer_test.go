package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(toks []Token) []string {
	out := make([]string, 0, len(toks))
	for _, t := range toks {
		if t.Kind == TokenEOF {
			break
		}
		out = append(out, t.Text)
	}
	return out
}

func TestLexBasicTokens(t *testing.T) {
	toks, err := lex("pub fn add(a: i8) -> i8")
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"pub", "fn", "add", "(", "a", ":", "i8", ")", "->", "i8"},
		texts(toks))
}

func TestLexComments(t *testing.T) {
	src := `
// line comment
/* block /* nested */ comment */
fn f() {}
`
	toks, err := lex(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"fn", "f", "(", ")", "{", "}"}, texts(toks))
}

func TestLexCharVersusLifetime(t *testing.T) {
	toks, err := lex("'a 'x' '\\n'")
	require.NoError(t, err)
	require.Len(t, toks, 4) // three tokens + EOF
	assert.Equal(t, TokenLifetime, toks[0].Kind)
	assert.Equal(t, "'a", toks[0].Text)
	assert.Equal(t, TokenChar, toks[1].Kind)
	assert.Equal(t, TokenChar, toks[2].Kind)
}

func TestLexIntegerLiterals(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		value uint64
		ok    bool
	}{
		{name: "plain", src: "42", value: 42, ok: true},
		{name: "underscores", src: "1_000", value: 1000, ok: true},
		{name: "hex", src: "0xFF", value: 255, ok: true},
		{name: "suffixed", src: "4usize", value: 4, ok: true},
		{name: "binary", src: "0b101", value: 5, ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := lex(tt.src)
			require.NoError(t, err)
			require.Equal(t, TokenInt, toks[0].Kind)
			assert.Equal(t, tt.ok, toks[0].IntOK)
			assert.Equal(t, tt.value, toks[0].IntValue)
		})
	}
}

func TestLexStringsDoNotConfuseBraces(t *testing.T) {
	toks, err := lex(`fn f() { let s = "}}{{"; }`)
	require.NoError(t, err)
	open, closed := 0, 0
	for _, tok := range toks {
		if tok.Is("{") {
			open++
		}
		if tok.Is("}") {
			closed++
		}
	}
	assert.Equal(t, 1, open)
	assert.Equal(t, 1, closed)
}

func TestLexSpans(t *testing.T) {
	toks, err := lex("fn\nadd")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(toks), 2)
	assert.Equal(t, Position{Line: 1, Column: 0}, toks[0].Span.Start)
	assert.Equal(t, Position{Line: 2, Column: 0}, toks[1].Span.Start)
	assert.Equal(t, Position{Line: 2, Column: 3}, toks[1].Span.End)
}

func TestLexUnterminatedString(t *testing.T) {
	_, err := lex(`"never closed`)
	require.Error(t, err)
}
