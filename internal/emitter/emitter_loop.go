package emitter

import (
	"strconv"

	"github.com/arcana-lang/arcana/internal/ast"
)

const defaultQuotaBudget = "100"
const defaultStep = "1"

// emitLoopStmt lowers RECURSIO to a bounded host `while True` loop:
// a counter (named from the quota-assignment clause,
// or synthesized if the clause is absent or a plain budget expression)
// stepped after the body of each iteration (an iteration left through
// `continue` skips the step), and a separate iteration-count guard that
// raises R0100 once the quota budget is exceeded. loopSerial keeps
// synthetic names unique and deterministic across nested/sibling loops,
// since it only ever increases with AST traversal order.
func (e *Emitter) emitLoopStmt(n *ast.LoopStmt) error {
	e.loopSerial++
	serial := e.loopSerial

	counterName := n.QuotaVar
	if counterName == "" {
		counterName = e.syntheticName("ctr", serial)
	}
	initValue := "0"
	if n.QuotaInit != nil {
		v, err := e.emitExpr(n.QuotaInit)
		if err != nil {
			return err
		}
		initValue = v
	}
	e.writeLine("%s = %s", counterName, initValue)

	iterName := e.syntheticName("iter", serial)
	e.writeLine("%s = 0", iterName)

	budget := defaultQuotaBudget
	if n.HasQuota && n.QuotaBudget != nil {
		v, err := e.emitExpr(n.QuotaBudget)
		if err != nil {
			return err
		}
		budget = v
	}

	stepExpr := defaultStep
	if n.Step != nil {
		v, err := e.emitExpr(n.Step)
		if err != nil {
			return err
		}
		stepExpr = v
	}
	stepName := e.syntheticName("step", serial)

	cond, err := e.emitExpr(n.Cond)
	if err != nil {
		return err
	}

	e.writeLine("while True:")
	e.indent++

	e.writeLine("if not (%s):", cond)
	e.indent++
	e.writeLine("break")
	e.indent--

	e.writeLine("%s += 1", iterName)
	e.writeLine("if %s > %s:", iterName, budget)
	e.indent++
	e.writeLine(`raise ArcanaRuntimeError("R0100", "loop exceeded quota of " + str(%s) + " iterations")`, budget)
	e.indent--

	if len(n.Body) == 0 {
		e.writeLine("pass")
	}
	for _, s := range n.Body {
		if err := e.emitStmt(s); err != nil {
			return err
		}
	}

	e.writeLine("%s = %s", stepName, stepExpr)
	e.writeLine("if %s <= 0:", stepName)
	e.indent++
	e.writeLine(`raise ArcanaRuntimeError("E0110", "loop step must be strictly positive")`)
	e.indent--
	e.writeLine("%s += %s", counterName, stepName)

	e.indent--
	return nil
}

func (e *Emitter) syntheticName(role string, serial int) string {
	return "__arc_" + role + "_" + strconv.Itoa(serial)
}
