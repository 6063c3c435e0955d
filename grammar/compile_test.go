package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-ebnfc/ebnfc/grammar"
	"github.com/go-ebnfc/ebnfc/lexer"
)

func compileSrc(t *testing.T, src, mainRule string) *grammar.Model {
	t.Helper()
	toks, err := lexer.Lex([]byte(src))
	require.NoError(t, err)
	raws, err := grammar.Parse(toks)
	require.NoError(t, err)
	model, err := grammar.Compile(raws, mainRule)
	require.NoError(t, err)
	return model
}

func TestCompileSimpleConcatenation(t *testing.T) {
	model := compileSrc(t, `r = "a", "b" ;`, "r")
	def, ok := grammar.Lookup(model.Rules, "r")
	require.True(t, ok)
	require.Equal(t, grammar.Concatenation, def.Body.Kind)
	assert.Equal(t, "a", def.Body.Left.Bytes)
	assert.Equal(t, "b", def.Body.Right.Bytes)
}

func TestCompileAlternationPrecedence(t *testing.T) {
	// ',' binds tighter than '|': a,b | c must parse as (a,b) | c.
	model := compileSrc(t, `r = "a", "b" | "c" ;`, "r")
	def, _ := grammar.Lookup(model.Rules, "r")
	require.Equal(t, grammar.Alternation, def.Body.Kind)
	require.Equal(t, grammar.Concatenation, def.Body.Left.Kind)
	assert.Equal(t, "c", def.Body.Right.Bytes)
}

func TestCompileGroupingOverridesPrecedence(t *testing.T) {
	model := compileSrc(t, `r = "a", ( "b" | "c" ) ;`, "r")
	def, _ := grammar.Lookup(model.Rules, "r")
	require.Equal(t, grammar.Concatenation, def.Body.Kind)
	require.Equal(t, grammar.Alternation, def.Body.Right.Kind)
}

func TestCompileOptionalAndRepeated(t *testing.T) {
	model := compileSrc(t, `r = [ "a" ], { "b" } ;`, "r")
	def, _ := grammar.Lookup(model.Rules, "r")
	require.Equal(t, grammar.Concatenation, def.Body.Kind)
	assert.Equal(t, grammar.Optional, def.Body.Left.Kind)
	assert.Equal(t, grammar.Repeated, def.Body.Right.Kind)
}

func TestCompileRejection(t *testing.T) {
	model := compileSrc(t, `r = !"a" ;`, "r")
	def, _ := grammar.Lookup(model.Rules, "r")
	require.Equal(t, grammar.Rejection, def.Body.Kind)
	assert.Equal(t, grammar.String, def.Body.Inner.Kind)
}

func TestCompileNestedRejectionAutoPops(t *testing.T) {
	model := compileSrc(t, `r = !!"a" ;`, "r")
	def, _ := grammar.Lookup(model.Rules, "r")
	require.Equal(t, grammar.Rejection, def.Body.Kind)
	require.Equal(t, grammar.Rejection, def.Body.Inner.Kind)
	assert.Equal(t, grammar.String, def.Body.Inner.Inner.Kind)
}

func TestCompileCharRange(t *testing.T) {
	model := compileSrc(t, `r = <"0", "9"> ;`, "r")
	def, _ := grammar.Lookup(model.Rules, "r")
	require.Equal(t, grammar.CharRange, def.Body.Kind)
	assert.Equal(t, byte('0'), def.Body.Low)
	assert.Equal(t, byte('9'), def.Body.High)
}

func TestCompileCharRangeNumericBounds(t *testing.T) {
	model := compileSrc(t, `r = <0, 255> ;`, "r")
	def, _ := grammar.Lookup(model.Rules, "r")
	require.Equal(t, grammar.CharRange, def.Body.Kind)
	assert.Equal(t, byte(0), def.Body.Low)
	assert.Equal(t, byte(255), def.Body.High)
}

func TestCompileInvertedRangeIsFatal(t *testing.T) {
	toks, err := lexer.Lex([]byte(`r = <"9", "0"> ;`))
	require.NoError(t, err)
	_, err = grammar.Parse(toks)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inverted")
}

func TestCompileExceptionPrimitive(t *testing.T) {
	model := compileSrc(t, `r = "a" | - ;`, "r")
	def, _ := grammar.Lookup(model.Rules, "r")
	require.Equal(t, grammar.Alternation, def.Body.Kind)
	assert.Equal(t, grammar.Exception, def.Body.Right.Kind)
}

func TestCompileRuleReference(t *testing.T) {
	model := compileSrc(t, "a = b ;\nb = \"x\" ;", "a")
	def, _ := grammar.Lookup(model.Rules, "a")
	require.Equal(t, grammar.Rule, def.Body.Kind)
	assert.Equal(t, "b", def.Body.RuleName)
}

func TestCompileUnresolvedReferenceIsFatal(t *testing.T) {
	toks, err := lexer.Lex([]byte(`a = missing ;`))
	require.NoError(t, err)
	raws, err := grammar.Parse(toks)
	require.NoError(t, err)
	_, err = grammar.Compile(raws, "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestCompileMissingMainRuleIsFatal(t *testing.T) {
	toks, err := lexer.Lex([]byte(`a = "x" ;`))
	require.NoError(t, err)
	raws, err := grammar.Parse(toks)
	require.NoError(t, err)
	_, err = grammar.Compile(raws, "start")
	require.Error(t, err)
}

func TestCompileDuplicateRuleIsFatal(t *testing.T) {
	toks, err := lexer.Lex([]byte("a = \"x\" ;\na = \"y\" ;"))
	require.NoError(t, err)
	_, err = grammar.Parse(toks)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestCompileMismatchedBracketIsFatal(t *testing.T) {
	toks, err := lexer.Lex([]byte(`a = ( "x" ] ;`))
	require.NoError(t, err)
	_, err = grammar.Parse(toks)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mismatched")
}

func TestCompileUnclosedGroupIsFatal(t *testing.T) {
	toks, err := lexer.Lex([]byte(`a = ( "x" ;`))
	require.NoError(t, err)
	_, err = grammar.Parse(toks)
	require.Error(t, err)
}

func TestCompileReservedNameRejected(t *testing.T) {
	// '@' is neither an identifier byte nor a symbol, so the lexer already
	// refuses a rule name that starts with it.
	_, err := lexer.Lex([]byte(`@start = "x" ;`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "illegal byte '@'")
}

func TestCompileSyntheticRulesPresent(t *testing.T) {
	model := compileSrc(t, `a = "x" ;`, "a")
	for _, name := range []string{grammar.RuleEOF, grammar.RuleNoEOF, grammar.RuleStart} {
		_, ok := grammar.Lookup(model.Rules, name)
		assert.True(t, ok, "expected synthetic rule %s", name)
	}
}

func TestCompileUnusedRuleIsFatal(t *testing.T) {
	toks, err := lexer.Lex([]byte("a = \"x\" ;\nb = \"y\" ;"))
	require.NoError(t, err)
	raws, err := grammar.Parse(toks)
	require.NoError(t, err)
	_, err = grammar.Compile(raws, "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "\"b\" is defined but never referenced")
}

func TestCompileDefinedAndReferencedSorted(t *testing.T) {
	model := compileSrc(t, "b = c ;\na = b ;\nc = \"z\" ;", "a")
	assert.Equal(t, []string{"a", "b", "c"}, model.Defined)
	assert.Equal(t, []string{"b", "c"}, model.Referenced)
}

func TestCompileEscapedStringLiteral(t *testing.T) {
	model := compileSrc(t, `r = "a\nb" ;`, "r")
	def, _ := grammar.Lookup(model.Rules, "r")
	assert.Equal(t, "a\nb", def.Body.Bytes)
}

func TestCompileEmptyStringOperandIsFatal(t *testing.T) {
	_, err := lexer.Lex([]byte(`r = "" ;`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty string")
}
