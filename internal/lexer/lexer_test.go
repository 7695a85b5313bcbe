package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcana-lang/arcana/internal/diag"
	"github.com/arcana-lang/arcana/internal/token"
)

// kindsOf lexes src fully and returns just the Kind sequence, for tests
// that don't care about literal text or position.
func kindsOf(t *testing.T, src string) []token.Kind {
	t.Helper()
	l := New(src)
	var kinds []token.Kind
	for {
		tok, err := l.NextToken()
		require.NoError(t, err)
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EOF {
			break
		}
	}
	return kinds
}

func TestLexer_OperatorsLongestMatch(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []token.Kind
	}{
		{"not-equal", "a >< b", []token.Kind{token.IDENT, token.NEQ, token.IDENT, token.EOF}},
		{"greater-then-less-not-confused", "a > b", []token.Kind{token.IDENT, token.GT, token.IDENT, token.EOF}},
		{"move-arrow", "x <- y", []token.Kind{token.IDENT, token.ARROW_L, token.IDENT, token.EOF}},
		{"body-arrow", "f() -> x", []token.Kind{token.IDENT, token.LPAREN, token.RPAREN, token.ARROW_R, token.IDENT, token.EOF}},
		{"power", "a ** b", []token.Kind{token.IDENT, token.POW, token.IDENT, token.EOF}},
		{"ge-le-eq", "a >= b <= c == d", []token.Kind{
			token.IDENT, token.GE, token.IDENT, token.LE, token.IDENT, token.EQ, token.IDENT, token.EOF,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kindsOf(t, tt.src))
		})
	}
}

func TestLexer_KeywordsVsIdentifiers(t *testing.T) {
	assert.Equal(t, []token.Kind{token.EFFIGIUM, token.SEMI, token.EOF}, kindsOf(t, "effigium;"))
	// The deliberate non-match: "effgium" is NOT the break keyword.
	assert.Equal(t, []token.Kind{token.IDENT, token.SEMI, token.EOF}, kindsOf(t, "effgium;"))
	assert.Equal(t, []token.Kind{token.SUBJECTO, token.EOF}, kindsOf(t, "subjecto"))
}

func TestLexer_SectionTags(t *testing.T) {
	assert.Equal(t, []token.Kind{
		token.FONS_OPEN, token.FONS_CLOSE,
		token.INTRODUCTIO_OPEN, token.INTRODUCTIO_CLOSE,
		token.DOCTRINA_OPEN, token.DOCTRINA_CLOSE,
		token.EOF,
	}, kindsOf(t, "<FONS></FONS><INTRODUCTIO></INTRODUCTIO><DOCTRINA></DOCTRINA>"))
}

func TestLexer_NumberLiterals(t *testing.T) {
	l := New("42 3.14 7")
	tok, err := l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, token.INT, tok.Kind)
	assert.Equal(t, "42", tok.Literal)

	tok, err = l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, token.REAL, tok.Kind)
	assert.Equal(t, "3.14", tok.Literal)
}

func TestLexer_MalformedReal(t *testing.T) {
	l := New("3.")
	_, err := l.NextToken()
	require.Error(t, err)
}

func TestLexer_StringEscapes(t *testing.T) {
	l := New(`'a\nb\'c'`)
	tok, err := l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, token.STRING, tok.Kind)
	assert.Equal(t, "a\nb'c", tok.Literal)
}

func TestLexer_UnterminatedString(t *testing.T) {
	l := New(`'abc`)
	_, err := l.NextToken()
	require.Error(t, err)
}

func TestLexer_FString(t *testing.T) {
	l := New(`cantus'x=${a+b}!'`)
	tok, err := l.NextToken()
	require.NoError(t, err)
	require.Equal(t, token.FSTRING, tok.Kind)
	require.Len(t, tok.FParts, 3)
	assert.Equal(t, "x=", tok.FParts[0].Text)
	assert.False(t, tok.FParts[0].Expr)
	assert.Equal(t, "a+b", tok.FParts[1].Text)
	assert.True(t, tok.FParts[1].Expr)
	assert.Equal(t, "!", tok.FParts[2].Text)
}

func TestLexer_DollarOutsideInterpolationIsLiteral(t *testing.T) {
	l := New(`cantus'cost: $5'`)
	tok, err := l.NextToken()
	require.NoError(t, err)
	require.Len(t, tok.FParts, 1)
	assert.Equal(t, "cost: $5", tok.FParts[0].Text)
}

func TestLexer_LineComment(t *testing.T) {
	assert.Equal(t, []token.Kind{token.INT, token.EOF}, kindsOf(t, "1 /// this is a comment\n"))
}

func TestLexer_BlockComment(t *testing.T) {
	assert.Equal(t, []token.Kind{token.INT, token.INT, token.EOF}, kindsOf(t, "1 <cmt> skip this whole block </cmt> 2"))
}

func TestLexer_CompoundAssignRejected(t *testing.T) {
	l := New("x += 1")
	l.NextToken() // x
	_, err := l.NextToken()
	require.Error(t, err)
	lexErr, ok := err.(*LexError)
	require.True(t, ok)
	assert.Equal(t, diag.PUnsupportedSyntax, lexErr.Code)
}

func TestLexer_UnrecognizedCharacter(t *testing.T) {
	l := New("@")
	_, err := l.NextToken()
	require.Error(t, err)
}

func TestLexer_PositionTracking(t *testing.T) {
	l := New("a\nb")
	tok, err := l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, 1, tok.Pos.Line)

	tok, err = l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, 2, tok.Pos.Line)
}
