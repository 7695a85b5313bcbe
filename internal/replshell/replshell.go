// Package replshell implements an interactive, line-at-a-time front-end
// tester for Arcana: each line typed is lexed, parsed as a single
// statement, validated, and emitted as a Python fragment, which is
// printed back. It is a developer convenience for exercising the
// lexer/parser/validator/emitter without writing a full .arkhe file with
// its three mandatory section tags; it does not change the single-pass,
// non-incremental semantics of the file pipeline in internal/driver —
// every line is independently re-lexed/parsed/validated/emitted from
// scratch.
package replshell

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/arcana-lang/arcana/internal/emitter"
	"github.com/arcana-lang/arcana/internal/parser"
	"github.com/arcana-lang/arcana/internal/validator"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `    _
   / \   _ __ ___ __ _ _ __   __ _
  / _ \ | '__/ __/ _' | '_ \ / _' |
 / ___ \| | | (_| (_| | | | | (_| |
/_/   \_\_|  \___\__,_|_| |_|\__,_|`

const line = "----------------------------------------------------------------"

// Shell is one interactive front-end-tester session.
type Shell struct {
	Banner  string
	Version string
	Prompt  string
	Line    string
}

// New creates a Shell with Arcana's default banner, version, and prompt.
func New() *Shell {
	return &Shell{Banner: banner, Version: "v0.3.8", Prompt: "arcana> ", Line: line}
}

// printBanner shows the welcome banner and basic usage instructions.
func (s *Shell) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", s.Line)
	greenColor.Fprintf(w, "%s\n", s.Banner)
	blueColor.Fprintf(w, "%s\n", s.Line)
	yellowColor.Fprintln(w, "Arcana front-end tester | Version: "+s.Version)
	blueColor.Fprintf(w, "%s\n", s.Line)
	cyanColor.Fprintln(w, "Type one statement per line (e.g. VCON x: inte = 1;)")
	cyanColor.Fprintln(w, "Type '.exit' to quit")
	blueColor.Fprintf(w, "%s\n", s.Line)
}

// Start runs the read-compile-print loop until the user types ".exit",
// sends EOF, or readline itself errors.
func (s *Shell) Start(reader io.Reader, writer io.Writer) error {
	s.printBanner(writer)

	rl, err := readline.New(s.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		text, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return nil
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if text == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return nil
		}
		rl.SaveHistory(text)

		s.compileAndPrint(writer, text)
	}
}

// compileAndPrint lexes/parses/validates/emits one line, recovering from
// any panic raised deep in the pipeline — an interactive tester gets fed
// malformed fragments constantly — and printing either the emitted
// fragment or the diagnostic.
func (s *Shell) compileAndPrint(w io.Writer, text string) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(w, "[arcana] internal error: %v\n", r)
		}
	}()

	if !strings.HasSuffix(text, ";") {
		text += ";"
	}

	p := parser.New(text)
	stmt, d := p.ParseStatement()
	if d != nil {
		redColor.Fprintf(w, "%s\n", d.Error())
		return
	}

	if d := validator.ValidateStatement(stmt); d != nil {
		redColor.Fprintf(w, "%s\n", d.Error())
		return
	}

	out, err := emitter.EmitStatement(stmt)
	if err != nil {
		redColor.Fprintf(w, "[arcana] emit error: %v\n", err)
		return
	}
	yellowColor.Fprintf(w, "%s", out)
	if !strings.HasSuffix(out, "\n") {
		fmt.Fprintln(w)
	}
}
