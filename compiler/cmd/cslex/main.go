// Command cslex tokenizes C#-family source files.
package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/posener/complete"
	"github.com/willabides/kongplete"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/desilang/cslex/compiler/internal/load"
	"github.com/desilang/cslex/compiler/internal/term"
	"github.com/desilang/cslex/compiler/internal/version"
)

// defaultConfig is read from the working directory when present.
const defaultConfig = ".cslex.yaml"

type CLI struct {
	Config  kong.ConfigFlag  `placeholder:"FILE" env:"CSLEX_CONFIG" help:"YAML file with flag defaults (default ${config})"`
	Verbose bool             `short:"v" env:"CSLEX_VERBOSE" help:"Print progress to stderr"`
	Version kong.VersionFlag `help:"Print version and exit"`

	Lex                lexCmd                        `cmd:"" help:"Tokenize files and print the tokens"`
	Check              checkCmd                      `cmd:"" help:"Report lexical errors with source context"`
	Diff               diffCmd                       `cmd:"" help:"Compare the token streams of two files"`
	Stats              statsCmd                      `cmd:"" help:"Count tokens by kind and keyword"`
	Keywords           keywordsCmd                   `cmd:"" help:"Print the keyword or operator table"`
	Ver                versionCmd                    `cmd:"" name:"version" help:"Print version"`
	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
}

// app is bound into every command's Run.
type app struct {
	Ctx context.Context
	Out io.Writer
	Err io.Writer
	Log *term.Logger
}

// errLexical marks a run that completed but found Error tokens. It maps to
// exit code 1 without an extra message.
var errLexical = errors.New("lexical errors found")

// exitCode carries kong's exit requests (help, --version) out of Parse.
type exitCode int

/* ---------- main ---------- */

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args and executes the selected command. Exit codes: 0 ok,
// 1 lexical or I/O errors, 2 usage.
func run(args []string, stdout, stderr io.Writer) (code int) {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("cslex"),
		kong.Description("cslex: tokenizer for C#-family source"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(c int) { panic(exitCode(c)) }),
		kong.Configuration(loadYAML, defaultConfig),
		kong.Vars{
			"version": version.String(),
			"config":  defaultConfig,
			"include": load.DefaultInclude,
		},
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	if err != nil {
		term.Wprintf(stderr, "cslex: %v\n", err)
		return 2
	}
	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	kongplete.Complete(parser, kongplete.WithPredictor("cs", complete.PredictFiles("*.cs")))

	kctx, err := parser.Parse(args)
	if err != nil {
		term.Wprintf(stderr, "cslex: %v\n", err)
		var perr *kong.ParseError
		if errors.As(err, &perr) && perr.Context != nil {
			_ = perr.Context.PrintUsage(true)
		}
		return 2
	}

	a := &app{
		Ctx: context.Background(),
		Out: stdout,
		Err: stderr,
		Log: term.NewLogger(stderr, cli.Verbose),
	}
	// --jobs defaults to GOMAXPROCS; match it to the container CPU quota.
	undo, err := maxprocs.Set(maxprocs.Logger(a.Log.Verbosef))
	defer undo()
	if err != nil {
		a.Log.Warnf("maxprocs: %v", err)
	}
	if err := kctx.Run(a); err != nil {
		if !errors.Is(err, errLexical) {
			term.Wprintf(stderr, "cslex: %v\n", err)
		}
		return 1
	}
	return 0
}
