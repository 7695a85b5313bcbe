package emitter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcana-lang/arcana/internal/ast"
	"github.com/arcana-lang/arcana/internal/parser"
	"github.com/arcana-lang/arcana/internal/validator"
)

func compile(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := parser.New(src)
	prog, errDiag := p.Parse()
	require.Nil(t, errDiag)
	require.Nil(t, validator.Validate(prog))
	return prog
}

const fizzBuzzSrc = `<FONS>
</FONS>
<INTRODUCTIO>
</INTRODUCTIO>
<DOCTRINA>
FCON subjecto: nihil () -> {
	VCON i: inte = 1;
	RECURSIO(propositio:(i <= 50), quota: 60, acceleratio: 1) {
		SI propositio:(i % 15 == 0) VERUM {
			indicant() <- (cantus'FizzBuzz');
		} FALSUM {
			indicant() <- (i);
		};
		i = i + 1;
	};
};
</DOCTRINA>
`

func TestEmitter_FizzBuzzShape(t *testing.T) {
	prog := compile(t, fizzBuzzSrc)
	out, err := Emit(prog)
	require.NoError(t, err)

	assert.Contains(t, out, "def subjecto():")
	assert.Contains(t, out, "i = 1")
	assert.Contains(t, out, "(i <= 50)")
	assert.Contains(t, out, "(i % 15)")
	assert.Contains(t, out, "> 60")
	assert.Contains(t, out, "ArcanaRuntimeError(\"R0100\"")
	assert.Contains(t, out, "print(")
	assert.Contains(t, out, "subjecto()")
	assert.True(t, strings.HasSuffix(strings.TrimRight(out, "\n"), "subjecto()"))
}

func TestEmitter_DeterministicAcrossRepeatedEmission(t *testing.T) {
	prog := compile(t, fizzBuzzSrc)
	first, err := Emit(prog)
	require.NoError(t, err)
	second, err := Emit(prog)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEmitter_VarDeclZeroValues(t *testing.T) {
	src := `<FONS>
</FONS>
<INTRODUCTIO>
</INTRODUCTIO>
<DOCTRINA>
FCON subjecto: nihil () -> {
	VCON a: inte;
	VCON b: real;
	VCON c: filum;
	VCON d: verum;
	VCON e: catalogus;
};
</DOCTRINA>
`
	prog := compile(t, src)
	out, err := Emit(prog)
	require.NoError(t, err)
	assert.Contains(t, out, "a = 0\n")
	assert.Contains(t, out, "b = 0.0\n")
	assert.Contains(t, out, `c = ""`)
	assert.Contains(t, out, "d = False")
	assert.Contains(t, out, "e = {}")
}

func TestEmitter_MoveLowersToAssignment(t *testing.T) {
	src := `<FONS>
</FONS>
<INTRODUCTIO>
</INTRODUCTIO>
<DOCTRINA>
FCON subjecto: nihil () -> {
	VCON x: inte = 1;
	VCON y: inte = 2;
	x <- y;
};
</DOCTRINA>
`
	prog := compile(t, src)
	out, err := Emit(prog)
	require.NoError(t, err)
	assert.Contains(t, out, "x = y")
}

func TestEmitter_IfWithoutElseEmitsPass(t *testing.T) {
	src := `<FONS>
</FONS>
<INTRODUCTIO>
</INTRODUCTIO>
<DOCTRINA>
FCON subjecto: nihil () -> {
	SI propositio:(1 < 2) VERUM {
		nihil;
	};
};
</DOCTRINA>
`
	prog := compile(t, src)
	out, err := Emit(prog)
	require.NoError(t, err)
	assert.Contains(t, out, "else:\n        pass")
}

func TestEmitter_DictLiteral(t *testing.T) {
	src := `<FONS>
</FONS>
<INTRODUCTIO>
</INTRODUCTIO>
<DOCTRINA>
FCON subjecto: nihil () -> {
	VCON m: catalogus = { "a": 1, "b": 2 };
};
</DOCTRINA>
`
	prog := compile(t, src)
	out, err := Emit(prog)
	require.NoError(t, err)
	assert.Contains(t, out, `{"a": 1, "b": 2}`)
}

func TestEmitter_TimeBuiltinAddsImport(t *testing.T) {
	src := `<FONS>
</FONS>
<INTRODUCTIO>
</INTRODUCTIO>
<DOCTRINA>
FCON subjecto: nihil () -> {
	VCON t: real = tempus() <- ();
};
</DOCTRINA>
`
	prog := compile(t, src)
	out, err := Emit(prog)
	require.NoError(t, err)
	assert.Contains(t, out, "import time")
	assert.Contains(t, out, "time.time()")
}

func TestEmitter_QuotaAssignmentFormUsesNamedCounter(t *testing.T) {
	src := `<FONS>
</FONS>
<INTRODUCTIO>
</INTRODUCTIO>
<DOCTRINA>
FCON subjecto: nihil () -> {
	RECURSIO(propositio:(i < 3), quota: i = 0) {
		nihil;
	};
};
</DOCTRINA>
`
	prog := compile(t, src)
	out, err := Emit(prog)
	require.NoError(t, err)
	assert.Contains(t, out, "i = 0\n")
	assert.Contains(t, out, "(i < 3)")
	assert.Contains(t, out, "i += ")
}
