package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arcana-lang/arcana/internal/ast"
)

var binOpSymbol = map[ast.BinOpKind]string{
	ast.OpAdd:   "+",
	ast.OpSub:   "-",
	ast.OpMul:   "*",
	ast.OpDiv:   "/",
	ast.OpMod:   "%",
	ast.OpPow:   "**",
	ast.OpEq:    "==",
	ast.OpNotEq: "!=",
	ast.OpLt:    "<",
	ast.OpGt:    ">",
	ast.OpLe:    "<=",
	ast.OpGe:    ">=",
	ast.OpAnd:   "and",
	ast.OpOr:    "or",
}

// emitExpr lowers an expression to a single Python sub-expression,
// exhaustively over ast.Expr's concrete types. Unary, binary, and f-string
// results are parenthesized; literals, identifiers, calls, and dict
// literals are emitted without surrounding parentheses.
func (e *Emitter) emitExpr(x ast.Expr) (string, error) {
	switch n := x.(type) {
	case *ast.IntLit:
		return strconv.FormatInt(n.Value, 10), nil
	case *ast.RealLit:
		return formatPyFloat(n.Value), nil
	case *ast.StrLit:
		return strconv.Quote(n.Value), nil
	case *ast.FStrLit:
		return e.emitFStrLit(n)
	case *ast.Ident:
		return n.Name, nil
	case *ast.Unary:
		return e.emitUnary(n)
	case *ast.BinOp:
		return e.emitBinOp(n)
	case *ast.CallExpr:
		return e.emitCallExpr(n)
	case *ast.DictLit:
		return e.emitDictLit(n)
	default:
		return "", fmt.Errorf("emitter: unhandled expression kind %T", x)
	}
}

func (e *Emitter) emitUnary(n *ast.Unary) (string, error) {
	operand, err := e.emitExpr(n.Operand)
	if err != nil {
		return "", err
	}
	switch n.Op {
	case ast.OpNot:
		return fmt.Sprintf("(not %s)", operand), nil
	case ast.OpNeg:
		return fmt.Sprintf("(-%s)", operand), nil
	default:
		return "", fmt.Errorf("emitter: unhandled unary operator %q", n.Op)
	}
}

func (e *Emitter) emitBinOp(n *ast.BinOp) (string, error) {
	lhs, err := e.emitExpr(n.LHS)
	if err != nil {
		return "", err
	}
	rhs, err := e.emitExpr(n.RHS)
	if err != nil {
		return "", err
	}
	sym, ok := binOpSymbol[n.Op]
	if !ok {
		return "", fmt.Errorf("emitter: unhandled binary operator %q", n.Op)
	}
	return fmt.Sprintf("(%s %s %s)", lhs, sym, rhs), nil
}

func (e *Emitter) emitCallExpr(n *ast.CallExpr) (string, error) {
	name := n.Name
	if hostName, ok := e.host.BuiltinName(n.Name); ok {
		name = hostName
	}
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		text, err := e.emitExpr(a)
		if err != nil {
			return "", err
		}
		args[i] = text
	}
	return fmt.Sprintf("%s(%s)", name, joinComma(args)), nil
}

func (e *Emitter) emitDictLit(n *ast.DictLit) (string, error) {
	entries := make([]string, len(n.Pairs))
	for i, pair := range n.Pairs {
		key, err := e.emitExpr(pair.Key)
		if err != nil {
			return "", err
		}
		value, err := e.emitExpr(pair.Value)
		if err != nil {
			return "", err
		}
		entries[i] = fmt.Sprintf("%s: %s", key, value)
	}
	return "{" + joinComma(entries) + "}", nil
}

// emitFStrLit lowers an interpolated string to a concatenation of its
// parts, each coerced to str(), matching "concatenating string-coerced
// text parts with string-coerced expression parts in order".
func (e *Emitter) emitFStrLit(n *ast.FStrLit) (string, error) {
	if len(n.Parts) == 0 {
		return `""`, nil
	}
	pieces := make([]string, len(n.Parts))
	for i, part := range n.Parts {
		if part.Expr == nil {
			pieces[i] = strconv.Quote(part.Text)
			continue
		}
		text, err := e.emitExpr(part.Expr)
		if err != nil {
			return "", err
		}
		pieces[i] = fmt.Sprintf("str(%s)", text)
	}
	return "(" + strings.Join(pieces, " + ") + ")", nil
}

// formatPyFloat renders a float64 so the result always parses back as a
// Python float literal (never bare digits that Python would read as int).
func formatPyFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
