package emitter

import "github.com/arcana-lang/arcana/internal/builtins"

// PythonHost is the concrete Host used by cmd/arcana: Python 3's dict
// literals, short-circuit and/or, **, and structured print() cover every
// lowering rule without any translation layer.
type PythonHost struct{}

func (PythonHost) BuiltinName(arcanaName string) (string, bool) {
	name, ok := builtins.HostName[arcanaName]
	return name, ok
}

func (PythonHost) BoolLiteral(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

// runtimePreamble is prepended to every emitted program: a single
// exception type carries both the quota-exceeded (R0100) and the
// runtime non-positive-step (E0110) diagnostics, since the host program
// never sees any other Arcana diagnostic — everything else is caught
// before emission.
const runtimePreamble = `class ArcanaRuntimeError(Exception):
    def __init__(self, code, message):
        super().__init__("[arcana " + code + "] " + message)
`
