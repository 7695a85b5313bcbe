// Package emitter lowers a validated Arcana ast.Program to Python 3
// source text. It assumes the program already passed internal/validator;
// it does not re-check arity, types, or loop-nesting depth, it only
// translates. The lowering is split one file per construct kind
// (emitter_program.go, emitter_stmt.go, emitter_loop.go, emitter_expr.go).
package emitter

import (
	"fmt"
	"strings"

	"github.com/arcana-lang/arcana/internal/ast"
)

const indentUnit = "    "

// Emitter accumulates emitted Python source text for one Program. host
// is a pluggable naming strategy; PythonHost is the only implementation
// shipped.
type Emitter struct {
	host       Host
	buf        strings.Builder
	indent     int
	loopSerial int // bumped per loop, to name synthetic counters uniquely
	usesTime   bool
}

// Host abstracts the handful of host-specific names and literals the
// emitter needs, so a second target language could be plugged in later
// without touching the AST-walking logic.
type Host interface {
	// BuiltinName returns the host identifier a given Arcana builtin
	// lowers to, and whether the name is known.
	BuiltinName(arcanaName string) (string, bool)
	// BoolLiteral renders a boolean constant.
	BoolLiteral(v bool) string
}

// New creates an Emitter targeting host.
func New(host Host) *Emitter {
	return &Emitter{host: host}
}

// Emit lowers prog to a complete, self-contained Python 3 source file
// using the default PythonHost.
func Emit(prog *ast.Program) (string, error) {
	return New(PythonHost{}).EmitProgram(prog)
}

// EmitStatement lowers a single validated statement to a Python fragment
// using the default PythonHost, without the Program-level preamble or
// wrapping function. Used by internal/replshell.
func EmitStatement(stmt ast.Stmt) (string, error) {
	e := New(PythonHost{})
	if err := e.emitStmt(stmt); err != nil {
		return "", err
	}
	return e.buf.String(), nil
}

func (e *Emitter) writeLine(format string, args ...interface{}) {
	e.buf.WriteString(strings.Repeat(indentUnit, e.indent))
	if len(args) == 0 {
		e.buf.WriteString(format)
	} else {
		e.buf.WriteString(fmt.Sprintf(format, args...))
	}
	e.buf.WriteByte('\n')
}

func (e *Emitter) blank() { e.buf.WriteByte('\n') }
