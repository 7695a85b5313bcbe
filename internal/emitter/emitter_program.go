package emitter

import (
	"fmt"

	"github.com/arcana-lang/arcana/internal/ast"
)

// EmitProgram lowers an entire validated Program to a self-contained
// Python 3 module: a runtime preamble, any <INTRODUCTIO> declarations
// (functions first in declaration order, then top-level vars/consts as
// module globals), the DOCTRINA main function, and a trailing call to it.
//
// Import entries from <FONS> aren't lowered: ast.ImportEntry is an
// opaque descriptor per its own doc comment, and resolving an Arcana
// module path to a Python import is an external collaborator's job, not
// this emitter's.
func (e *Emitter) EmitProgram(prog *ast.Program) (string, error) {
	e.scanUsesTime(prog)

	e.buf.WriteString(runtimePreamble)
	if e.usesTime {
		e.writeLine("import time")
	}
	e.blank()

	for _, item := range prog.Defines {
		if err := e.emitTopLevel(item); err != nil {
			return "", err
		}
	}
	if prog.Main == nil {
		return "", errNoMain
	}
	if err := e.emitFuncDecl(prog.Main); err != nil {
		return "", err
	}

	e.blank()
	e.writeLine("%s()", prog.Main.Name)
	return e.buf.String(), nil
}

func (e *Emitter) emitTopLevel(item ast.Node) error {
	switch n := item.(type) {
	case *ast.FuncDecl:
		if err := e.emitFuncDecl(n); err != nil {
			return err
		}
		e.blank()
		return nil
	case *ast.VarDecl:
		return e.emitModuleVarDecl(n.Name, n.Type, n.Init)
	case *ast.ConstDecl:
		return e.emitModuleVarDecl(n.Name, n.Type, n.Init)
	case *ast.ClassDecl:
		// Reserved syntax; carried through as a structural placeholder
		// since CCON has no runtime semantics.
		e.writeLine("class %s:", n.Name)
		e.indent++
		e.writeLine("pass")
		e.indent--
		e.blank()
		return nil
	case ast.Stmt:
		return e.emitStmt(n)
	default:
		return fmt.Errorf("emitter: unhandled top-level node %T", item)
	}
}

func (e *Emitter) emitModuleVarDecl(name string, typ ast.Type, init ast.Expr) error {
	value, err := e.valueOrZero(typ, init)
	if err != nil {
		return err
	}
	e.writeLine("%s = %s", name, value)
	return nil
}

func (e *Emitter) emitFuncDecl(fn *ast.FuncDecl) error {
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = p.Name
	}
	e.writeLine("def %s(%s):", fn.Name, joinComma(params))
	e.indent++
	if len(fn.Body) == 0 {
		e.writeLine("pass")
	}
	for _, stmt := range fn.Body {
		if err := e.emitStmt(stmt); err != nil {
			return err
		}
	}
	e.indent--
	return nil
}

// valueOrZero renders init's expression, or typ's zero value if init is nil.
func (e *Emitter) valueOrZero(typ ast.Type, init ast.Expr) (string, error) {
	if init != nil {
		return e.emitExpr(init)
	}
	switch typ {
	case ast.Inte:
		return "0", nil
	case ast.Real:
		return "0.0", nil
	case ast.Filum:
		return `""`, nil
	case ast.Verum:
		return e.host.BoolLiteral(false), nil
	case ast.Ordinata:
		return "[]", nil
	case ast.Catalogus:
		return "{}", nil
	default:
		return "None", nil
	}
}

func (e *Emitter) scanUsesTime(prog *ast.Program) {
	var walkExpr func(ast.Expr)
	var walkStmt func(ast.Stmt)

	checkCall := func(name string) {
		if name == "tempus" || name == "chronos" {
			e.usesTime = true
		}
	}

	walkExpr = func(x ast.Expr) {
		switch n := x.(type) {
		case *ast.CallExpr:
			checkCall(n.Name)
			for _, a := range n.Args {
				walkExpr(a)
			}
		case *ast.BinOp:
			walkExpr(n.LHS)
			walkExpr(n.RHS)
		case *ast.Unary:
			walkExpr(n.Operand)
		case *ast.FStrLit:
			for _, p := range n.Parts {
				if p.Expr != nil {
					walkExpr(p.Expr)
				}
			}
		case *ast.DictLit:
			for _, p := range n.Pairs {
				walkExpr(p.Key)
				walkExpr(p.Value)
			}
		}
	}
	walkStmt = func(s ast.Stmt) {
		switch n := s.(type) {
		case *ast.VarDecl:
			walkExpr(n.Init)
		case *ast.ConstDecl:
			walkExpr(n.Init)
		case *ast.AssignStmt:
			walkExpr(n.Value)
		case *ast.CallStmt:
			walkExpr(n.Call)
		case *ast.ExprStmt:
			walkExpr(n.X)
		case *ast.IfStmt:
			walkExpr(n.Cond)
			for _, s := range n.Verum {
				walkStmt(s)
			}
			for _, s := range n.Falsum {
				walkStmt(s)
			}
		case *ast.LoopStmt:
			walkExpr(n.Cond)
			walkExpr(n.QuotaInit)
			walkExpr(n.QuotaBudget)
			walkExpr(n.Step)
			for _, s := range n.Body {
				walkStmt(s)
			}
		case *ast.ReturnStmt:
			walkExpr(n.Value)
		}
	}

	for _, item := range prog.Defines {
		switch n := item.(type) {
		case *ast.FuncDecl:
			for _, s := range n.Body {
				walkStmt(s)
			}
		case *ast.VarDecl:
			walkExpr(n.Init)
		case *ast.ConstDecl:
			walkExpr(n.Init)
		case ast.Stmt:
			walkStmt(n)
		}
	}
	if prog.Main != nil {
		for _, s := range prog.Main.Body {
			walkStmt(s)
		}
	}
}
