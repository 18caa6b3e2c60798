package repl

import (
	"strings"
	"testing"

	"github.com/akashmaji946/monkey/object"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestRenderLexMode(t *testing.T) {
	color.NoColor = true
	var sb strings.Builder
	Render(&sb, "let x = 5;", ModeLex, object.NewEnvironment())

	out := sb.String()
	require.Contains(t, out, "Token(Type='LET', Literal='let')")
	require.Contains(t, out, "Token(Type='IDENT', Literal='x')")
	require.Contains(t, out, "Token(Type='INT', Literal='5')")
}

func TestRenderParseMode(t *testing.T) {
	color.NoColor = true
	var sb strings.Builder
	Render(&sb, "let x = 5;", ModeParse, object.NewEnvironment())

	out := sb.String()
	require.Contains(t, out, "LetStatement")
}

func TestRenderEvalModePersistsEnvironment(t *testing.T) {
	color.NoColor = true
	env := object.NewEnvironment()

	var first strings.Builder
	Render(&first, "let x = 5;", ModeEval, env)

	var second strings.Builder
	Render(&second, "x + 1;", ModeEval, env)
	require.Contains(t, second.String(), "6")
}

func TestRenderEvalModeParserError(t *testing.T) {
	color.NoColor = true
	var sb strings.Builder
	Render(&sb, "let = 5;", ModeEval, object.NewEnvironment())

	out := sb.String()
	require.Contains(t, out, "Parser errors:")
	require.Contains(t, out, "expected next token to be IDENT")
}

func TestRenderEvalModeRuntimeError(t *testing.T) {
	color.NoColor = true
	var sb strings.Builder
	Render(&sb, "5 + true;", ModeEval, object.NewEnvironment())

	out := sb.String()
	require.Contains(t, out, "type mismatch")
}
