package astprint

import (
	"strings"
	"testing"

	"github.com/akashmaji946/monkey/lexer"
	"github.com/akashmaji946/monkey/parser"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestTreeContainsEveryStatement(t *testing.T) {
	color.NoColor = true

	input := "let x = 5; return x;"
	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	require.Empty(t, p.Errors())

	var sb strings.Builder
	Tree(&sb, program)

	out := sb.String()
	require.Contains(t, out, "Program")
	require.Contains(t, out, "LetStatement")
	require.Contains(t, out, "ReturnStatement")
	require.Contains(t, out, "Identifier")
	require.Contains(t, out, "IntegerLiteral")
}

func TestTreeNestedExpression(t *testing.T) {
	color.NoColor = true

	input := "1 + 2 * 3;"
	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	require.Empty(t, p.Errors())

	var sb strings.Builder
	Tree(&sb, program)

	out := sb.String()
	require.Contains(t, out, "InfixExpression")
	require.Contains(t, out, "Left")
	require.Contains(t, out, "Right")
}
