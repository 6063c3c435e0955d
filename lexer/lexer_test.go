package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-ebnfc/ebnfc/lexer"
)

func kinds(toks []lexer.Token) []lexer.Kind {
	out := make([]lexer.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func values(toks []lexer.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Value
	}
	return out
}

func TestLexSimpleRule(t *testing.T) {
	toks, err := lexer.Lex([]byte(`r = "a" ;`))
	require.NoError(t, err)
	assert.Equal(t, []lexer.Kind{
		lexer.Ident, lexer.Space, lexer.Symbol, lexer.Space, lexer.String, lexer.Space, lexer.Symbol, lexer.EOF,
	}, kinds(toks))
	assert.Equal(t, "\"a", toks[4].Value, "string token keeps the opening quote but drops the closing one")
}

func TestLexIdentifierContinuesWithHyphen(t *testing.T) {
	toks, err := lexer.Lex([]byte(`foo-bar;`))
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, "foo-bar", toks[0].Value)
}

func TestLexTabStops(t *testing.T) {
	toks, err := lexer.Lex([]byte("a\tb;"))
	require.NoError(t, err)
	require.Len(t, toks, 5) // a, space(tab), b, ;, EOF
	assert.Equal(t, 0, toks[0].Pos.Column)
	assert.Equal(t, 8, toks[2].Pos.Column)
	assert.Equal(t, 2, toks[2].Pos.Character)
}

func TestLexNewlineResetsPosition(t *testing.T) {
	toks, err := lexer.Lex([]byte("a\nb;"))
	require.NoError(t, err)
	require.Len(t, toks, 5)
	assert.Equal(t, 2, toks[2].Pos.Line)
	assert.Equal(t, 0, toks[2].Pos.Column)
}

func TestLexStripsComments(t *testing.T) {
	toks, err := lexer.Lex([]byte(`a (* comment ( nested symbols *) b;`))
	require.NoError(t, err)
	// The comment is discarded whole; the whitespace runs flanking it on
	// either side survive as their own separate Space tokens.
	assert.Equal(t, []string{"a", " ", " ", "b", ";"}, values(toks[:len(toks)-1]))
}

func TestLexCommentContentNotLexed(t *testing.T) {
	// A stray quote, tab, and control-adjacent symbols inside a comment must
	// not be run through the string/identifier sub-state-machines: none of
	// this would lex cleanly as grammar source outside a comment.
	toks, err := lexer.Lex([]byte("a (* odd \" content \t here *) b;"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", " ", " ", "b", ";"}, values(toks[:len(toks)-1]))
}

func TestLexUnterminatedComment(t *testing.T) {
	_, err := lexer.Lex([]byte(`a (* never closes`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated block comment")
}

func TestLexEmptyStringIsFatal(t *testing.T) {
	_, err := lexer.Lex([]byte(`""`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty string")
}

func TestLexUnterminatedString(t *testing.T) {
	_, err := lexer.Lex([]byte(`"abc`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated string")
}

func TestLexIllegalControlByte(t *testing.T) {
	_, err := lexer.Lex([]byte("a\x01b"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "illegal control byte")
}

func TestLexIllegalCR(t *testing.T) {
	_, err := lexer.Lex([]byte("a\rb"))
	require.Error(t, err)
}

func TestLexIllegalDEL(t *testing.T) {
	_, err := lexer.Lex([]byte("a\x7Fb"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEL")
}

func TestLexIllegalUTF8Surrogate(t *testing.T) {
	// U+D800 encoded as if it were a valid 3-byte sequence: 0xED 0xA0 0x80.
	_, err := lexer.Lex([]byte{0xED, 0xA0, 0x80})
	require.Error(t, err)
}

func TestLexOverlongUTF8(t *testing.T) {
	// Overlong 2-byte encoding of NUL (0xC0 0x80).
	_, err := lexer.Lex([]byte{0xC0, 0x80})
	require.Error(t, err)
}

func TestLexValidMultiByteUTF8Identifier(t *testing.T) {
	toks, err := lexer.Lex([]byte("café;"))
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, "café", toks[0].Value)
	assert.Equal(t, 4, toks[1].Pos.Character, "the accented rune advances position by one character, not two bytes")
}

func TestLexEscapeSequencePreservedRaw(t *testing.T) {
	toks, err := lexer.Lex([]byte(`"a\nb"`))
	require.NoError(t, err)
	assert.Equal(t, `"a\nb`, toks[0].Value)
}

func TestLexSymbols(t *testing.T) {
	toks, err := lexer.Lex([]byte(`=()[]{}<>|,;-!*`))
	require.NoError(t, err)
	require.Len(t, toks, 16)
	for _, tok := range toks[:15] {
		assert.Equal(t, lexer.Symbol, tok.Kind)
	}
}

func TestLexPrematureEOFMidToken(t *testing.T) {
	_, err := lexer.Lex([]byte(`ident`))
	require.Error(t, err) // an identifier still open at EOF is premature too

	_, err = lexer.Lex([]byte(`"unterminated`))
	require.Error(t, err)
}
