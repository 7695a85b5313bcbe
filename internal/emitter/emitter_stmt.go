package emitter

import (
	"fmt"

	"github.com/arcana-lang/arcana/internal/ast"
)

// emitStmt lowers one statement, exhaustively, per the sum-typed-AST
// convention the rest of this repo follows: an unhandled kind is a bug
// in this package, not a malformed program (the validator already
// accepted it), so it panics rather than silently dropping output.
func (e *Emitter) emitStmt(stmt ast.Stmt) error {
	switch n := stmt.(type) {
	case *ast.VarDecl:
		return e.emitLocalVarDecl(n.Name, n.Type, n.Init)
	case *ast.ConstDecl:
		return e.emitLocalVarDecl(n.Name, n.Type, n.Init)
	case *ast.AssignStmt:
		return e.emitAssign(n.Target, n.Value)
	case *ast.MoveStmt:
		e.writeLine("%s = %s", n.Target, n.Source)
		return nil
	case *ast.CallStmt:
		text, err := e.emitExpr(n.Call)
		if err != nil {
			return err
		}
		e.writeLine("%s", text)
		return nil
	case *ast.IfStmt:
		return e.emitIfStmt(n)
	case *ast.LoopStmt:
		return e.emitLoopStmt(n)
	case *ast.ExprStmt:
		text, err := e.emitExpr(n.X)
		if err != nil {
			return err
		}
		e.writeLine("%s", text)
		return nil
	case *ast.NihilStmt:
		e.writeLine("pass")
		return nil
	case *ast.BreakStmt:
		e.writeLine("break")
		return nil
	case *ast.ContinueStmt:
		e.writeLine("continue")
		return nil
	case *ast.ReturnStmt:
		return e.emitReturn(n)
	default:
		panic(fmt.Sprintf("emitter: unhandled statement kind %T", stmt))
	}
}

func (e *Emitter) emitLocalVarDecl(name string, typ ast.Type, init ast.Expr) error {
	value, err := e.valueOrZero(typ, init)
	if err != nil {
		return err
	}
	e.writeLine("%s = %s", name, value)
	return nil
}

func (e *Emitter) emitAssign(target string, value ast.Expr) error {
	text, err := e.emitExpr(value)
	if err != nil {
		return err
	}
	e.writeLine("%s = %s", target, text)
	return nil
}

func (e *Emitter) emitReturn(n *ast.ReturnStmt) error {
	if n.Value == nil {
		e.writeLine("return")
		return nil
	}
	text, err := e.emitExpr(n.Value)
	if err != nil {
		return err
	}
	e.writeLine("return %s", text)
	return nil
}

func (e *Emitter) emitIfStmt(n *ast.IfStmt) error {
	cond, err := e.emitExpr(n.Cond)
	if err != nil {
		return err
	}
	e.writeLine("if %s:", cond)
	e.indent++
	if len(n.Verum) == 0 {
		e.writeLine("pass")
	}
	for _, s := range n.Verum {
		if err := e.emitStmt(s); err != nil {
			return err
		}
	}
	e.indent--

	e.writeLine("else:")
	e.indent++
	if len(n.Falsum) == 0 {
		e.writeLine("pass")
	}
	for _, s := range n.Falsum {
		if err := e.emitStmt(s); err != nil {
			return err
		}
	}
	e.indent--
	return nil
}
