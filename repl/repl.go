// Package repl implements the interactive Read-Eval-Print Loop for the
// monkey interpreter. It supports three modes: "l" prints the raw token
// stream, "p" prints the parsed syntax tree, and "e" evaluates and prints
// the resulting value. The loop uses readline for line editing and history
// and fatih/color for colorized diagnostics, mirroring the REPL of the
// interpreter this one was adapted from.
package repl

import (
	"fmt"
	"io"

	"github.com/akashmaji946/monkey/ast"
	"github.com/akashmaji946/monkey/astprint"
	"github.com/akashmaji946/monkey/evaluator"
	"github.com/akashmaji946/monkey/lexer"
	"github.com/akashmaji946/monkey/object"
	"github.com/akashmaji946/monkey/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

const MonkeyFace = `            __,__
   .--.  .-"     "-.  .--.
  / .. \/  .-. .-.  \/ .. \
 | |  '|  /   Y   \  |'  | |
 | \   \  \ 0 | 0 /  /   / |
  \ '- ,\.-"""""""-./, -' /
   ''-' /_   ^ ^   _\ '-''
       |  \._   _./  |
       \   \ '~' /   /
        '._ '-=-' _.'
           '-----'
`

const Prompt = ">> "

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Mode selects what a REPL line or a source file is turned into.
type Mode string

const (
	ModeLex   Mode = "l"
	ModeParse Mode = "p"
	ModeEval  Mode = "e"
)

// Repl is a configured interactive session. Env persists across lines in
// mode ModeEval so that "let" bindings and function definitions made at one
// prompt are visible at the next.
type Repl struct {
	Mode Mode
	Env  *object.Environment
}

// New constructs a Repl in the given mode with a fresh top-level
// environment.
func New(mode Mode) *Repl {
	return &Repl{Mode: mode, Env: object.NewEnvironment()}
}

// PrintBanner writes the monkey-face startup banner, the welcome line,
// and the active mode to w.
func (r *Repl) PrintBanner(w io.Writer) {
	greenColor.Fprint(w, MonkeyFace)
	cyanColor.Fprintln(w, "Welcome to the monkey REPL!")
	cyanColor.Fprintf(w, "mode: %s | type '.exit' to quit, up/down arrows for history\n", r.Mode)
}

// Start runs the loop until the user quits or input ends.
func (r *Repl) Start(w io.Writer) {
	r.PrintBanner(w)

	rl, err := readline.NewEx(&readline.Config{Prompt: Prompt, Stdout: w})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(w, "Good Bye!")
			return
		}

		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(w, "Good Bye!")
			return
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(w, line)
	}
}

// executeWithRecovery runs one line of input, catching any panic raised
// while lexing, parsing, or evaluating so a single bad line cannot crash
// the session.
func (r *Repl) executeWithRecovery(w io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(w, "[runtime error] %v\n", recovered)
		}
	}()

	Render(w, line, r.Mode, r.Env)
}

// Render lexes, and as needed parses/evaluates, source according to mode,
// writing output or diagnostics to w. It is shared by the REPL loop and
// file execution so both surfaces behave identically.
func Render(w io.Writer, source string, mode Mode, env *object.Environment) {
	switch mode {
	case ModeLex:
		renderTokens(w, source)
	case ModeParse:
		renderParseTree(w, source)
	case ModeEval:
		renderEval(w, source, env)
	default:
		redColor.Fprintf(w, "unknown mode: %s\n", mode)
	}
}

func renderTokens(w io.Writer, source string) {
	l := lexer.New(source)
	for tok := l.NextToken(); tok.Type != lexer.EOF; tok = l.NextToken() {
		yellowColor.Fprintf(w, "%s\n", tok)
	}
}

func renderParseTree(w io.Writer, source string) {
	program, ok := parseOrReportErrors(w, source)
	if !ok {
		return
	}
	astprint.Tree(w, program)
}

func renderEval(w io.Writer, source string, env *object.Environment) {
	program, ok := parseOrReportErrors(w, source)
	if !ok {
		return
	}

	result := evaluator.Eval(program, env)
	if result == nil {
		return
	}
	if result.Type() == object.ERROR_OBJ {
		redColor.Fprintf(w, "%s\n", result.Inspect())
		return
	}
	blueColor.Fprintf(w, "%s\n", result.Inspect())
}

func parseOrReportErrors(w io.Writer, source string) (*ast.Program, bool) {
	l := lexer.New(source)
	p := parser.New(l)
	prog := p.ParseProgram()

	if len(p.Errors()) != 0 {
		printParserErrors(w, p.Errors())
		return nil, false
	}
	return prog, true
}

func printParserErrors(w io.Writer, errors []string) {
	redColor.Fprint(w, MonkeyFace)
	redColor.Fprintln(w, "Woops! We ran into some monkey business here!")
	redColor.Fprintln(w, "Parser errors:")
	for _, msg := range errors {
		redColor.Fprintf(w, "\t%s\n", msg)
	}
}
