// Package diag defines Arcana's diagnostics as data: a phase, a stable
// code, a message, and a source position. Nothing in this package panics
// or wraps a Go error chain; the driver renders these values.
package diag

import (
	"fmt"

	"github.com/arcana-lang/arcana/internal/token"
)

// Phase identifies which pipeline stage raised a Diagnostic.
type Phase string

const (
	Lex      Phase = "lex"
	Parse    Phase = "parse"
	Semantic Phase = "semantic"
	Runtime  Phase = "runtime"
	Reserved Phase = "reserved"
)

// Diagnostic is one reported error. Code is one of the stable identifiers
// below (e.g. "P0010", "E0103", "R0100").
type Diagnostic struct {
	Phase   Phase
	Code    string
	Message string
	Pos     token.Position
}

// Error renders a Diagnostic as a bracketed tag carrying the code, the
// message, and a position suffix when one is known.
func (d *Diagnostic) Error() string {
	s := fmt.Sprintf("[arcana %s]", d.Code)
	if d.Pos.Line > 0 {
		return fmt.Sprintf("%s %s (%s)", s, d.Message, d.Pos)
	}
	return fmt.Sprintf("%s %s", s, d.Message)
}

// Parse-phase codes.
const (
	PExpectedToken          = "P0001"
	PUnexpectedToken        = "P0002"
	PMainSubjectoRequired   = "P0010"
	PMainNihilRequired      = "P0011"
	PUnsupportedSyntax      = "P0020"
	PInvalidMove            = "P0021"
	PUnknownLoopHeader      = "P0030"
	PLoopPropositioRequired = "P0031"
	PNihilNotExpr           = "P0040"
	PInternal               = "P0099"
)

// Semantic-phase codes.
const (
	EBreakOutsideLoop    = "E0101"
	EContinueOutsideLoop = "E0102"
	ELoopNestTooDeep     = "E0103"
	ELoopStepNotPositive = "E0110"
	ELoopQuotaInvalid    = "E0111"
	ENihilNotExpr        = "E0202"
	EArgCountMismatch    = "E0203"
	ETypeMismatch        = "E0204"
)

// Runtime-phase code, raised inside emitted host code; recorded here only
// so the constant and its documentation live next to the rest.
const RQuotaExceeded = "R0100"

// Reserved-mode code for CLI modes the driver records but does not run.
const XReserved = "X0001"

// New builds a Diagnostic for the given phase/code/message at pos.
func New(phase Phase, code, message string, pos token.Position) *Diagnostic {
	return &Diagnostic{Phase: phase, Code: code, Message: message, Pos: pos}
}
