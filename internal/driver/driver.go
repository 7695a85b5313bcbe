// Package driver orchestrates Arcana's pipeline phases in order: lex
// (folded into parsing), parse, validate, emit. It exposes the CLI-facing
// modes (exsecutio, inspectio, aedificatio) and stops at the first phase
// that reports a diagnostic. Diagnostics are values, not panics; there is
// no recovery wrapper because nothing in lex/parse/validate/emit panics
// on malformed input.
package driver

import (
	"errors"
	"fmt"

	"github.com/arcana-lang/arcana/internal/diag"
	"github.com/arcana-lang/arcana/internal/emitter"
	"github.com/arcana-lang/arcana/internal/parser"
	"github.com/arcana-lang/arcana/internal/token"
	"github.com/arcana-lang/arcana/internal/validator"
)

// Mode selects which CLI command invoked the driver.
type Mode string

const (
	// Exsecutio compiles and, unless Perscribere is set, hands the
	// emitted host source to a HostRunner to execute.
	Exsecutio Mode = "exsecutio"
	// Inspectio runs lex/parse/validate only and reports diagnostics;
	// no host source is produced.
	Inspectio Mode = "inspectio"
	// Aedificatio is reserved: a recognized mode with no defined
	// behavior yet.
	Aedificatio Mode = "aedificatio"
)

// Options configures one Compile call.
type Options struct {
	Mode Mode
	// Perscribere, when true, prints the transpiled host source instead
	// of running it. Only meaningful with Mode == Exsecutio.
	Perscribere bool
}

// Result is what a successful Compile call produces.
type Result struct {
	// Host is the emitted Python 3 source. Empty when Mode == Inspectio;
	// Aedificatio returns no Result at all.
	Host string
	// Ran reports whether a HostRunner actually executed Host.
	Ran bool
}

// ErrReserved is returned for Aedificatio, a recognized mode without
// defined behavior.
var ErrReserved = errors.New("arcana: aedificatio is reserved and not implemented")

// HostRunner executes emitted host source. Actually running Python is
// the host interpreter's job, outside this toolchain; NoHostRunner is
// the default implementation and always reports the seam honestly.
type HostRunner interface {
	Run(hostSource string) error
}

// NoHostRunner is the default HostRunner: it never executes anything, so
// `exsecutio` without a wired runtime fails clearly instead of silently
// pretending the program ran.
type NoHostRunner struct{}

func (NoHostRunner) Run(string) error {
	return errors.New("arcana: no host runtime wired; pass --perscribere to see the transpiled source instead")
}

// Compile runs the pipeline over src according to opts. It returns either
// a Result or the first diagnostic raised by whichever phase failed —
// never both.
func Compile(src string, opts Options, runner HostRunner) (*Result, *diag.Diagnostic) {
	if opts.Mode == Aedificatio {
		return nil, diag.New(diag.Reserved, diag.XReserved, ErrReserved.Error(), zeroPos())
	}

	p := parser.New(src)
	prog, errDiag := p.Parse()
	if errDiag != nil {
		return nil, errDiag
	}

	if errDiag := validator.Validate(prog); errDiag != nil {
		return nil, errDiag
	}

	if opts.Mode == Inspectio {
		return &Result{}, nil
	}

	host, err := emitter.Emit(prog)
	if err != nil {
		return nil, diag.New(diag.Reserved, diag.PInternal, fmt.Sprintf("emitter: %v", err), zeroPos())
	}

	result := &Result{Host: host}
	if opts.Perscribere {
		return result, nil
	}

	if runner == nil {
		runner = NoHostRunner{}
	}
	if err := runner.Run(host); err != nil {
		return nil, diag.New(diag.Runtime, diag.PInternal, err.Error(), zeroPos())
	}
	result.Ran = true
	return result, nil
}

// zeroPos marks diagnostics that have no meaningful source location
// (reserved modes, emitter internals, host runtime failures).
func zeroPos() token.Position { return token.Position{} }
