// Command arcana is the Arcana toolchain's CLI front-end: exsecutio
// (compile + run/print), inspectio (validate only), aedificatio
// (reserved), and repl (interactive front-end tester).
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/arcana-lang/arcana/internal/diag"
	"github.com/arcana-lang/arcana/internal/driver"
	"github.com/arcana-lang/arcana/internal/replshell"
)

// redColor renders diagnostics, yellowColor the --perscribere banners,
// cyanColor informational output.
var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

const (
	perscribereBannerOpen  = "=== [arcana perscribere] transpiled %s ==="
	perscribereBannerClose = "=== [arcana perscribere] end ==="
)

func main() {
	app := &cli.App{
		Name:    "arcana",
		Usage:   "the Arcana language toolchain",
		Version: "v0.3.8",
		Commands: []*cli.Command{
			exsecutioCommand(),
			inspectioCommand(),
			aedificatioCommand(),
			replCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func exsecutioCommand() *cli.Command {
	return &cli.Command{
		Name:      "exsecutio",
		Usage:     "compile a .arkhe program and run it, or print the transpiled host source",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "perscribere", Usage: "print the transpiled host source instead of running it"},
		},
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return cli.Exit("arcana exsecutio: missing <file>", 1)
			}
			src, err := os.ReadFile(path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("arcana: %v", err), 1)
			}

			opts := driver.Options{Mode: driver.Exsecutio, Perscribere: c.Bool("perscribere")}
			result, d := driver.Compile(string(src), opts, nil)
			if d != nil {
				return reportDiagnostic(d)
			}

			if opts.Perscribere {
				yellowColor.Printf(perscribereBannerOpen+"\n", "python")
				fmt.Println(result.Host)
				yellowColor.Println(perscribereBannerClose)
			}
			return nil
		},
	}
}

func inspectioCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspectio",
		Usage:     "validate a .arkhe program without emitting or running it (reserved)",
		ArgsUsage: "<file>",
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return cli.Exit("arcana inspectio: missing <file>", 1)
			}
			src, err := os.ReadFile(path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("arcana: %v", err), 1)
			}
			_, d := driver.Compile(string(src), driver.Options{Mode: driver.Inspectio}, nil)
			if d != nil {
				return reportDiagnostic(d)
			}
			cyanColor.Println("arcana: no diagnostics")
			return nil
		},
	}
}

func aedificatioCommand() *cli.Command {
	return &cli.Command{
		Name:      "aedificatio",
		Usage:     "build a project (reserved, not implemented)",
		ArgsUsage: "<file>",
		Action: func(c *cli.Context) error {
			_, d := driver.Compile("", driver.Options{Mode: driver.Aedificatio}, nil)
			return reportDiagnostic(d)
		},
	}
}

func replCommand() *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "start an interactive line-at-a-time front-end tester",
		Action: func(c *cli.Context) error {
			return replshell.New().Start(os.Stdin, os.Stdout)
		},
	}
}

// reportDiagnostic prints d to stderr and returns a cli.ExitCoder so
// app.Run exits non-zero on any diagnostic.
func reportDiagnostic(d *diag.Diagnostic) error {
	redColor.Fprintf(os.Stderr, "%s\n", d.Error())
	return cli.Exit("", 1)
}
