// Package validator implements Arcana's semantic validator: a single
// pre-order walk over the parsed AST that enforces the language's static
// rules (loop nesting depth, break/continue placement, loop guard sanity,
// call arity, and declared-type compatibility).
//
// Like the lexer and parser, the validator stops at the first diagnostic;
// there is no recovery within a phase.
package validator

import (
	"fmt"

	"github.com/arcana-lang/arcana/internal/ast"
	"github.com/arcana-lang/arcana/internal/diag"
	"github.com/arcana-lang/arcana/internal/symtab"
)

const maxLoopDepth = 3

// Validator walks a parsed ast.Program, threading a symbol table, the
// enclosing function (for return-type checks), and loop nesting/membership
// state needed to place Break/Continue and cap RECURSIO depth.
type Validator struct {
	scope       *symtab.Scope
	err         *diag.Diagnostic
	currentFunc *ast.FuncDecl
	loopDepth   int
}

// Validate runs the full semantic pass over prog and returns the first
// diagnostic raised, or nil if the program is well-formed.
func Validate(prog *ast.Program) *diag.Diagnostic {
	v := &Validator{scope: symtab.New(nil)}
	v.validateProgram(prog)
	return v.err
}

// ValidateStatement runs the same checks Validate applies to a function
// body, but over a single free-standing statement (an empty scope, loop
// depth 0, no enclosing function). It exists for internal/replshell's
// line-at-a-time front-end tester; Break/Continue placement and loop
// nesting are still enforced, but a bare Return is accepted even though
// no FuncDecl encloses it, since the REPL has no "current function" to
// check a return type against.
func ValidateStatement(stmt ast.Stmt) *diag.Diagnostic {
	v := &Validator{scope: symtab.New(nil)}
	v.validateStmt(stmt)
	return v.err
}

func (v *Validator) failed() bool { return v.err != nil }

// errorAt records the first diagnostic only, mirroring the parser's
// first-error-wins discipline.
func (v *Validator) errorAt(code string, pos ast.Node, format string, args ...interface{}) {
	if v.failed() {
		return
	}
	v.err = diag.New(diag.Semantic, code, fmt.Sprintf(format, args...), pos.Pos())
}

// validateProgram pre-registers every top-level function/var/const so
// forward references resolve (a function may call another defined later
// in <INTRODUCTIO>), then walks each define and finally the main function.
func (v *Validator) validateProgram(prog *ast.Program) {
	for _, item := range prog.Defines {
		v.preRegister(item)
	}
	for _, item := range prog.Defines {
		if v.failed() {
			return
		}
		v.validateDefine(item)
	}
	if v.failed() || prog.Main == nil {
		return
	}
	v.validateFuncDecl(prog.Main)
}

func (v *Validator) preRegister(item ast.Node) {
	switch n := item.(type) {
	case *ast.FuncDecl:
		v.scope.Bind(n.Name, symtab.Symbol{Type: n.ReturnType, IsFunc: true, Arity: len(n.Params)})
	case *ast.VarDecl:
		v.scope.Bind(n.Name, symtab.Symbol{Type: n.Type})
	case *ast.ConstDecl:
		v.scope.Bind(n.Name, symtab.Symbol{Type: n.Type})
	}
}

// validateDefine validates one <INTRODUCTIO> entry. ClassDecl is parsed,
// stored, and never semantically analyzed.
func (v *Validator) validateDefine(item ast.Node) {
	switch n := item.(type) {
	case *ast.FuncDecl:
		v.validateFuncDecl(n)
	case *ast.VarDecl:
		v.validateVarDecl(n)
	case *ast.ConstDecl:
		v.validateConstDecl(n)
	case *ast.ClassDecl:
		// Reserved syntax; no further analysis.
	case ast.Stmt:
		v.validateStmt(n)
	default:
		panic(fmt.Sprintf("validator: unhandled define node %T", item))
	}
}

// validateFuncDecl pushes a fresh scope for the function's parameters,
// resets the loop-depth counter (loop nesting is measured lexically within
// one function body), and walks the body.
func (v *Validator) validateFuncDecl(fn *ast.FuncDecl) {
	outerScope, outerFunc, outerDepth := v.scope, v.currentFunc, v.loopDepth
	v.scope = symtab.New(outerScope)
	v.currentFunc = fn
	v.loopDepth = 0

	for _, p := range fn.Params {
		v.scope.Bind(p.Name, symtab.Symbol{Type: p.Type})
	}
	for _, stmt := range fn.Body {
		if v.failed() {
			break
		}
		v.validateStmt(stmt)
	}

	v.scope, v.currentFunc, v.loopDepth = outerScope, outerFunc, outerDepth
}

func (v *Validator) validateVarDecl(n *ast.VarDecl) {
	v.scope.Bind(n.Name, symtab.Symbol{Type: n.Type})
	if n.Init == nil {
		return
	}
	v.checkAssignCompatible(n.Type, n.Init)
}

func (v *Validator) validateConstDecl(n *ast.ConstDecl) {
	v.scope.Bind(n.Name, symtab.Symbol{Type: n.Type})
	v.checkAssignCompatible(n.Type, n.Init)
}
