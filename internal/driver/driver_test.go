package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcana-lang/arcana/internal/diag"
)

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

func TestCompile_PerscribereReturnsHostSourceWithoutRunning(t *testing.T) {
	result, d := Compile(fizzBuzzSrc, Options{Mode: Exsecutio, Perscribere: true}, nil)
	require.Nil(t, d)
	require.NotNil(t, result)
	assert.False(t, result.Ran)
	assert.Contains(t, result.Host, "def subjecto():")
}

func TestCompile_ExsecutioWithoutHostRunnerReportsRuntimeDiagnostic(t *testing.T) {
	result, d := Compile(fizzBuzzSrc, Options{Mode: Exsecutio}, nil)
	assert.Nil(t, result)
	require.NotNil(t, d)
	assert.Equal(t, diag.Runtime, d.Phase)
}

type stubRunner struct {
	ran    bool
	source string
}

func (s *stubRunner) Run(hostSource string) error {
	s.ran = true
	s.source = hostSource
	return nil
}

func TestCompile_ExsecutioWithHostRunnerRuns(t *testing.T) {
	runner := &stubRunner{}
	result, d := Compile(fizzBuzzSrc, Options{Mode: Exsecutio}, runner)
	require.Nil(t, d)
	require.NotNil(t, result)
	assert.True(t, result.Ran)
	assert.True(t, runner.ran)
	assert.Contains(t, runner.source, "subjecto()")
}

func TestCompile_InspectioReportsNoHostSource(t *testing.T) {
	result, d := Compile(fizzBuzzSrc, Options{Mode: Inspectio}, nil)
	require.Nil(t, d)
	require.NotNil(t, result)
	assert.Empty(t, result.Host)
	assert.False(t, result.Ran)
}

func TestCompile_InspectioSurfacesSemanticDiagnostics(t *testing.T) {
	src := `<FONS>
</FONS>
<INTRODUCTIO>
</INTRODUCTIO>
<DOCTRINA>
FCON subjecto: nihil () -> {
	effigium;
};
</DOCTRINA>
`
	result, d := Compile(src, Options{Mode: Inspectio}, nil)
	assert.Nil(t, result)
	require.NotNil(t, d)
	assert.Equal(t, diag.EBreakOutsideLoop, d.Code)
}

func TestCompile_AedificatioIsReserved(t *testing.T) {
	result, d := Compile(fizzBuzzSrc, Options{Mode: Aedificatio}, nil)
	assert.Nil(t, result)
	require.NotNil(t, d)
	assert.Equal(t, diag.Reserved, d.Phase)
	assert.Equal(t, diag.XReserved, d.Code)
}

func TestCompile_MissingMainFails(t *testing.T) {
	src := "<FONS>\n</FONS>\n<INTRODUCTIO>\n</INTRODUCTIO>\n<DOCTRINA>\n</DOCTRINA>\n"
	result, d := Compile(src, Options{Mode: Inspectio}, nil)
	assert.Nil(t, result)
	require.NotNil(t, d)
	assert.Equal(t, diag.PMainSubjectoRequired, d.Code)
}

func TestCompile_MainWrongReturnFails(t *testing.T) {
	src := "<FONS>\n</FONS>\n<INTRODUCTIO>\n</INTRODUCTIO>\n<DOCTRINA>\n" +
		"FCON subjecto: inte () -> { REDITUS 0; };\n</DOCTRINA>\n"
	result, d := Compile(src, Options{Mode: Inspectio}, nil)
	assert.Nil(t, result)
	require.NotNil(t, d)
	assert.Equal(t, diag.PMainNihilRequired, d.Code)
}

// TestCompile_QuotaExceededIsARuntimeContract covers the quota guard: a
// loop whose propositio never becomes false raises R0100 after exceeding
// its budget. That check runs inside the emitted Python at execution
// time, so this test only asserts that the emitted guard references the
// budget and the runtime error code, not that it actually fires — no
// Python host is available in this test binary.
func TestCompile_QuotaExceededIsARuntimeContract(t *testing.T) {
	src := `<FONS>
</FONS>
<INTRODUCTIO>
</INTRODUCTIO>
<DOCTRINA>
FCON subjecto: nihil () -> {
	VCON i: inte = 0;
	RECURSIO(propositio:(i < 10), quota: 3) {
		nihil;
	};
};
</DOCTRINA>
`
	result, d := Compile(src, Options{Mode: Exsecutio, Perscribere: true}, nil)
	require.Nil(t, d)
	require.NotNil(t, result)
	assert.Contains(t, result.Host, "> 3")
	assert.Contains(t, result.Host, diag.RQuotaExceeded)
}
