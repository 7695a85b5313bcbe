package validator

import (
	"github.com/arcana-lang/arcana/internal/ast"
	"github.com/arcana-lang/arcana/internal/diag"
	"github.com/arcana-lang/arcana/internal/symtab"
)

// validateStmt dispatches by concrete type, exhaustively, per the
// sum-typed-AST design: a default arm panics rather than silently skipping
// an unhandled statement kind.
func (v *Validator) validateStmt(stmt ast.Stmt) {
	if v.failed() {
		return
	}
	switch n := stmt.(type) {
	case *ast.VarDecl:
		v.validateVarDecl(n)
	case *ast.ConstDecl:
		v.validateConstDecl(n)
	case *ast.AssignStmt:
		v.validateAssignStmt(n)
	case *ast.MoveStmt:
		v.validateMoveStmt(n)
	case *ast.CallStmt:
		v.checkCallArity(n.Call)
	case *ast.IfStmt:
		v.validateIfStmt(n)
	case *ast.LoopStmt:
		v.validateLoopStmt(n)
	case *ast.ExprStmt:
		v.checkNotNihilValue(n.X)
		v.checkExpr(n.X)
	case *ast.NihilStmt:
		// no-op statement; nothing to check.
	case *ast.BreakStmt:
		if v.loopDepth == 0 {
			v.errorAt(diag.EBreakOutsideLoop, n, "effigium outside any loop")
		}
	case *ast.ContinueStmt:
		if v.loopDepth == 0 {
			v.errorAt(diag.EContinueOutsideLoop, n, "proximum outside any loop")
		}
	case *ast.ReturnStmt:
		v.validateReturnStmt(n)
	default:
		panic("validator: unhandled statement kind")
	}
}

func (v *Validator) validateAssignStmt(n *ast.AssignStmt) {
	sym, ok := v.scope.Lookup(n.Target)
	if !ok {
		// Assignment to an undeclared name has no dedicated diagnostic;
		// the emitter still lowers it to a host-level assignment. The
		// value expression is still walked for nihil and call arity.
		v.checkNotNihilValue(n.Value)
		v.checkExpr(n.Value)
		return
	}
	v.checkAssignCompatible(sym.Type, n.Value)
}

func (v *Validator) validateMoveStmt(n *ast.MoveStmt) {
	// Move's right-hand side is syntactically restricted to an identifier
	// by the parser (P0021); nothing further is enforced semantically.
}

func (v *Validator) validateIfStmt(n *ast.IfStmt) {
	v.checkNotNihilValue(n.Cond)
	v.checkExpr(n.Cond)
	v.validateBlock(n.Verum)
	if v.failed() {
		return
	}
	v.validateBlock(n.Falsum)
}

func (v *Validator) validateBlock(stmts []ast.Stmt) {
	// A block gets its own scope so a loop's quota-bound counter (or any
	// local VCON) doesn't leak into sibling blocks.
	outer := v.scope
	v.scope = symtab.New(outer)
	for _, s := range stmts {
		if v.failed() {
			break
		}
		v.validateStmt(s)
	}
	v.scope = outer
}

// validateLoopStmt enforces E0103 (nesting depth), E0110 (non-positive
// literal step), and E0111 (invalid literal quota), then walks the body
// with the loop-membership flag implicitly set (loopDepth > 0).
func (v *Validator) validateLoopStmt(n *ast.LoopStmt) {
	v.loopDepth++
	if v.loopDepth > maxLoopDepth {
		v.errorAt(diag.ELoopNestTooDeep, n, "loop nesting exceeds the maximum depth of %d", maxLoopDepth)
		v.loopDepth--
		return
	}

	v.checkExpr(n.Cond)
	v.checkExpr(n.QuotaInit)
	v.checkExpr(n.QuotaBudget)
	v.checkExpr(n.Step)

	if !v.failed() && n.Step != nil {
		if iv, ok := foldInt(n.Step); ok && iv <= 0 {
			v.errorAt(diag.ELoopStepNotPositive, n.Step, "loop step must be strictly positive, found %d", iv)
		}
	}
	if !v.failed() && n.HasQuota && n.QuotaBudget != nil {
		if iv, ok := foldInt(n.QuotaBudget); ok {
			if iv <= 0 {
				v.errorAt(diag.ELoopQuotaInvalid, n.QuotaBudget, "loop quota must be a positive integer, found %d", iv)
			}
		} else if _, isReal := n.QuotaBudget.(*ast.RealLit); isReal {
			v.errorAt(diag.ELoopQuotaInvalid, n.QuotaBudget, "loop quota must be an integer, found a real literal")
		}
	}

	if !v.failed() {
		outer := v.scope
		v.scope = symtab.New(outer)
		if n.QuotaVar != "" {
			v.scope.Bind(n.QuotaVar, symtab.Symbol{Type: ast.Inte})
		}
		for _, s := range n.Body {
			if v.failed() {
				break
			}
			v.validateStmt(s)
		}
		v.scope = outer
	}

	v.loopDepth--
}

func (v *Validator) validateReturnStmt(n *ast.ReturnStmt) {
	if n.Value == nil {
		return
	}
	v.checkNotNihilValue(n.Value)
	v.checkExpr(n.Value)
	if v.failed() || v.currentFunc == nil {
		return
	}
	if t, ok := v.inferType(n.Value); ok && t != v.currentFunc.ReturnType {
		v.errorAt(diag.ETypeMismatch, n.Value, "return value of type %s does not match declared return type %s", t, v.currentFunc.ReturnType)
	}
}

// foldInt constant-folds a subset of integer-valued expressions: literals
// and unary negation of a literal. Non-constant expressions return ok=false
// and are accepted statically; the emitted runtime guard catches
// non-positive values dynamically.
func foldInt(e ast.Expr) (int64, bool) {
	switch n := e.(type) {
	case *ast.IntLit:
		return n.Value, true
	case *ast.Unary:
		if n.Op != ast.OpNeg {
			return 0, false
		}
		v, ok := foldInt(n.Operand)
		if !ok {
			return 0, false
		}
		return -v, true
	default:
		return 0, false
	}
}
