package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcana-lang/arcana/internal/ast"
	"github.com/arcana-lang/arcana/internal/diag"
)

// exprOf parses src as a standalone expression and fails the test if
// parsing didn't complete cleanly.
func exprOf(t *testing.T, src string) ast.Expr {
	t.Helper()
	p := New(src)
	e := p.parseExpr()
	require.False(t, p.failed(), "unexpected parse error: %v", p.Err())
	return e
}

func TestParser_PrecedenceAdditiveBeforeMultiplicative(t *testing.T) {
	e := exprOf(t, "a + b * c")
	bin, ok := e.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpAdd, bin.Op)
	_, lhsIsIdent := bin.LHS.(*ast.Ident)
	assert.True(t, lhsIsIdent)
	rhs, ok := bin.RHS.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpMul, rhs.Op)
}

func TestParser_PowerIsRightAssociative(t *testing.T) {
	e := exprOf(t, "a ** b ** c")
	bin, ok := e.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpPow, bin.Op)
	_, lhsIsIdent := bin.LHS.(*ast.Ident)
	assert.True(t, lhsIsIdent)
	rhs, ok := bin.RHS.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpPow, rhs.Op)
}

func TestParser_InequalityToken(t *testing.T) {
	e := exprOf(t, "a >< b")
	bin, ok := e.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpNotEq, bin.Op)
}

func TestParser_ComparisonDoesNotChain(t *testing.T) {
	p := New("a < b == c")
	p.parseExpr()
	require.True(t, p.failed())
	assert.Equal(t, diag.PUnexpectedToken, p.Err().Code)
}

func TestParser_LogicalShortCircuitOperatorsAndNot(t *testing.T) {
	e := exprOf(t, "non a et b aut c")
	bin, ok := e.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpOr, bin.Op)
	lhs, ok := bin.LHS.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpAnd, lhs.Op)
	_, lhsIsUnary := lhs.LHS.(*ast.Unary)
	assert.True(t, lhsIsUnary)
}

func TestParser_UnaryMinusBindsAroundPower(t *testing.T) {
	e := exprOf(t, "-a ** b")
	unary, ok := e.(*ast.Unary)
	require.True(t, ok)
	assert.Equal(t, ast.OpNeg, unary.Op)
	_, ok = unary.Operand.(*ast.BinOp)
	assert.True(t, ok)
}

func TestParser_CallExpressionForm(t *testing.T) {
	e := exprOf(t, "f() <- (1, a)")
	call, ok := e.(*ast.CallExpr)
	require.True(t, ok)
	assert.Equal(t, "f", call.Name)
	require.Len(t, call.Args, 2)
}

func TestParser_DictLiteral(t *testing.T) {
	e := exprOf(t, `{ "a": 1, "b": 2 }`)
	dict, ok := e.(*ast.DictLit)
	require.True(t, ok)
	require.Len(t, dict.Pairs, 2)
}

const fizzBuzzSrc = `<FONS>
"std/io";
</FONS>
<INTRODUCTIO>
</INTRODUCTIO>
<DOCTRINA>
FCON subjecto: nihil () -> {
	VCON i: inte = 1;
	RECURSIO(propositio:(i <= 50), quota: 60, acceleratio: 1) {
		SI propositio:(i % 15 == 0) VERUM {
			indicant() <- (cantus'FizzBuzz');
		} FALSUM {
			SI propositio:(i % 3 == 0) VERUM {
				indicant() <- (cantus'Fizz');
			} FALSUM {
				indicant() <- (i);
			};
		};
		i = i + 1;
	};
};
</DOCTRINA>
`

func TestParser_FizzBuzzShape(t *testing.T) {
	p := New(fizzBuzzSrc)
	prog, errDiag := p.Parse()
	require.Nil(t, errDiag)
	require.NotNil(t, prog)
	require.NotNil(t, prog.Main)
	assert.Equal(t, "subjecto", prog.Main.Name)
	require.Len(t, prog.Main.Body, 2)

	loop, ok := prog.Main.Body[1].(*ast.LoopStmt)
	require.True(t, ok)
	assert.True(t, loop.HasQuota)
	require.NotNil(t, loop.QuotaBudget)
	require.NotNil(t, loop.Step)
	require.Len(t, loop.Body, 2)

	ifStmt, ok := loop.Body[0].(*ast.IfStmt)
	require.True(t, ok)
	require.Len(t, ifStmt.Falsum, 1)
}

func TestParser_MissingMainFails(t *testing.T) {
	src := "<FONS>\n</FONS>\n<INTRODUCTIO>\n</INTRODUCTIO>\n<DOCTRINA>\n</DOCTRINA>\n"
	p := New(src)
	_, errDiag := p.Parse()
	require.NotNil(t, errDiag)
	assert.Equal(t, diag.PMainSubjectoRequired, errDiag.Code)
}

func TestParser_MainWrongReturnFails(t *testing.T) {
	src := "<FONS>\n</FONS>\n<INTRODUCTIO>\n</INTRODUCTIO>\n<DOCTRINA>\nFCON subjecto: inte () -> { REDITUS 1; };\n</DOCTRINA>\n"
	p := New(src)
	_, errDiag := p.Parse()
	require.NotNil(t, errDiag)
	assert.Equal(t, diag.PMainNihilRequired, errDiag.Code)
}

func TestParser_InvalidMoveSourceFails(t *testing.T) {
	src := "<FONS>\n</FONS>\n<INTRODUCTIO>\n</INTRODUCTIO>\n<DOCTRINA>\nFCON subjecto: nihil () -> { x <- 1; };\n</DOCTRINA>\n"
	p := New(src)
	_, errDiag := p.Parse()
	require.NotNil(t, errDiag)
	assert.Equal(t, diag.PInvalidMove, errDiag.Code)
}

func TestParser_MoveWithCallSourceFails(t *testing.T) {
	src := "<FONS>\n</FONS>\n<INTRODUCTIO>\n</INTRODUCTIO>\n<DOCTRINA>\nFCON subjecto: nihil () -> { x <- y() <- (1); };\n</DOCTRINA>\n"
	p := New(src)
	_, errDiag := p.Parse()
	require.NotNil(t, errDiag)
	assert.Equal(t, diag.PInvalidMove, errDiag.Code)
}

func TestParser_NihilOutsideStatementFails(t *testing.T) {
	src := "<FONS>\n</FONS>\n<INTRODUCTIO>\n</INTRODUCTIO>\n<DOCTRINA>\nFCON subjecto: nihil () -> { VCON x: inte = nihil; };\n</DOCTRINA>\n"
	p := New(src)
	_, errDiag := p.Parse()
	require.NotNil(t, errDiag)
	assert.Equal(t, diag.PNihilNotExpr, errDiag.Code)
}

func TestParser_UnknownLoopHeaderLabelFails(t *testing.T) {
	src := "<FONS>\n</FONS>\n<INTRODUCTIO>\n</INTRODUCTIO>\n<DOCTRINA>\nFCON subjecto: nihil () -> { RECURSIO(propositio:(1 < 2), fugit: 1) { }; };\n</DOCTRINA>\n"
	p := New(src)
	_, errDiag := p.Parse()
	require.NotNil(t, errDiag)
	assert.Equal(t, diag.PUnknownLoopHeader, errDiag.Code)
}

func TestParser_LoopMissingPropositioFails(t *testing.T) {
	src := "<FONS>\n</FONS>\n<INTRODUCTIO>\n</INTRODUCTIO>\n<DOCTRINA>\nFCON subjecto: nihil () -> { RECURSIO(quota: 10) { }; };\n</DOCTRINA>\n"
	p := New(src)
	_, errDiag := p.Parse()
	require.NotNil(t, errDiag)
	assert.Equal(t, diag.PLoopPropositioRequired, errDiag.Code)
}

func TestParser_CompoundAssignmentRejected(t *testing.T) {
	src := "<FONS>\n</FONS>\n<INTRODUCTIO>\n</INTRODUCTIO>\n<DOCTRINA>\nFCON subjecto: nihil () -> { x += 1; };\n</DOCTRINA>\n"
	p := New(src)
	_, errDiag := p.Parse()
	require.NotNil(t, errDiag)
	assert.Equal(t, diag.PUnsupportedSyntax, errDiag.Code)
}

func TestParser_FStringInterpolationParts(t *testing.T) {
	e := exprOf(t, `cantus'x=${a+b}'`)
	lit, ok := e.(*ast.FStrLit)
	require.True(t, ok)
	require.Len(t, lit.Parts, 2)
	assert.Equal(t, "x=", lit.Parts[0].Text)
	require.NotNil(t, lit.Parts[1].Expr)
	bin, ok := lit.Parts[1].Expr.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpAdd, bin.Op)
}

func TestParser_QuotaAssignmentFormBindsCounter(t *testing.T) {
	src := "<FONS>\n</FONS>\n<INTRODUCTIO>\n</INTRODUCTIO>\n<DOCTRINA>\nFCON subjecto: nihil () -> { RECURSIO(propositio:(i < 10), quota: i = 0) { }; };\n</DOCTRINA>\n"
	p := New(src)
	prog, errDiag := p.Parse()
	require.Nil(t, errDiag)
	loop := prog.Main.Body[0].(*ast.LoopStmt)
	assert.Equal(t, "i", loop.QuotaVar)
	require.NotNil(t, loop.QuotaInit)
}
