package validator

import (
	"github.com/arcana-lang/arcana/internal/ast"
	"github.com/arcana-lang/arcana/internal/builtins"
	"github.com/arcana-lang/arcana/internal/diag"
)

// inferType statically infers an expression's type where that is
// possible: literals are direct, identifiers and calls resolve through
// the symbol/builtin tables, arithmetic keeps the broader of inte/real
// (or falls through to filum for string concatenation), comparison and
// logical operators yield verum, and f-strings/string literals yield
// filum. ok is false when the type can't be determined statically (an
// unresolved name, or a builtin's unspecified result type); callers must
// skip the mismatch check in that case.
func (v *Validator) inferType(e ast.Expr) (ast.Type, bool) {
	switch n := e.(type) {
	case *ast.IntLit:
		return ast.Inte, true
	case *ast.RealLit:
		return ast.Real, true
	case *ast.StrLit:
		return ast.Filum, true
	case *ast.FStrLit:
		return ast.Filum, true
	case *ast.DictLit:
		return ast.Catalogus, true
	case *ast.Ident:
		sym, ok := v.scope.Lookup(n.Name)
		if !ok || sym.IsFunc {
			return "", false
		}
		return sym.Type, true
	case *ast.CallExpr:
		return v.inferCallType(n)
	case *ast.Unary:
		if n.Op == ast.OpNot {
			return ast.Verum, true
		}
		return v.inferType(n.Operand)
	case *ast.BinOp:
		return v.inferBinOpType(n)
	default:
		return "", false
	}
}

func (v *Validator) inferCallType(n *ast.CallExpr) (ast.Type, bool) {
	v.checkCallArity(n)
	if sym, ok := v.scope.Lookup(n.Name); ok && sym.IsFunc {
		return sym.Type, true
	}
	// Built-ins carry a declared arity but no declared return type;
	// their results are left opaque to the type checker.
	return "", false
}

func (v *Validator) inferBinOpType(n *ast.BinOp) (ast.Type, bool) {
	switch n.Op {
	case ast.OpEq, ast.OpNotEq, ast.OpLt, ast.OpGt, ast.OpLe, ast.OpGe, ast.OpAnd, ast.OpOr:
		return ast.Verum, true
	}
	lt, lok := v.inferType(n.LHS)
	rt, rok := v.inferType(n.RHS)
	if !lok || !rok {
		return "", false
	}
	if lt == ast.Filum || rt == ast.Filum {
		return ast.Filum, true
	}
	if lt == ast.Real || rt == ast.Real {
		return ast.Real, true
	}
	return ast.Inte, true
}

// checkAssignCompatible enforces E0202 (nihil as a value) and E0204 (a
// value's inferred type disagreeing with a declared type).
func (v *Validator) checkAssignCompatible(declared ast.Type, value ast.Expr) {
	v.checkExpr(value)
	v.checkNotNihilValue(value)
	if v.failed() {
		return
	}
	if t, ok := v.inferType(value); ok && t != declared {
		v.errorAt(diag.ETypeMismatch, value, "cannot use a value of type %s where %s is declared", t, declared)
	}
}

// checkExpr walks an expression tree in full, enforcing call arity
// (E0203) at every CallExpr regardless of position — initializers,
// conditions, return values, dict entries, interpolations, and calls
// nested inside another call's arguments all pass through here. Type
// inference alone can't carry this check: inferType never descends into
// dict pairs or f-string parts.
func (v *Validator) checkExpr(e ast.Expr) {
	if v.failed() || e == nil {
		return
	}
	switch n := e.(type) {
	case *ast.CallExpr:
		v.checkCallArity(n)
	case *ast.BinOp:
		v.checkExpr(n.LHS)
		v.checkExpr(n.RHS)
	case *ast.Unary:
		v.checkExpr(n.Operand)
	case *ast.FStrLit:
		for _, part := range n.Parts {
			v.checkExpr(part.Expr)
		}
	case *ast.DictLit:
		for _, pair := range n.Pairs {
			v.checkExpr(pair.Key)
			v.checkExpr(pair.Value)
		}
	}
}

// checkNotNihilValue enforces E0202: nihil is never a value expression.
// A call to a nihil-returning user function used here is exactly the case
// the parser itself can't catch, since nihil never appears as a literal
// token in that position.
func (v *Validator) checkNotNihilValue(e ast.Expr) {
	if v.failed() || e == nil {
		return
	}
	if t, ok := v.inferType(e); ok && t == ast.Nihil {
		v.errorAt(diag.ENihilNotExpr, e, "nihil is not a value expression")
	}
}

// checkCallArity enforces E0203 against either a user-defined function's
// declared arity or a builtin's, and recurses so calls nested inside the
// arguments are held to their own arities too.
func (v *Validator) checkCallArity(call *ast.CallExpr) {
	if v.failed() || call == nil {
		return
	}
	for _, arg := range call.Args {
		v.checkNotNihilValue(arg)
		v.checkExpr(arg)
		if v.failed() {
			return
		}
	}

	n := len(call.Args)
	if sym, ok := v.scope.Lookup(call.Name); ok && sym.IsFunc {
		if n != sym.Arity {
			v.errorAt(diag.EArgCountMismatch, call, "%s expects %d argument(s), got %d", call.Name, sym.Arity, n)
		}
		return
	}
	if arity, ok := builtins.Lookup(call.Name); ok {
		if !arity.Accepts(n) {
			v.errorAt(diag.EArgCountMismatch, call, "%s does not accept %d argument(s)", call.Name, n)
		}
		return
	}
	// An unresolved callee has no dedicated diagnostic; the emitter
	// still lowers the call by name, leaving name resolution to the
	// host at runtime.
}
