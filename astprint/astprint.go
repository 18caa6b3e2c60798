// Package astprint renders an *ast.Program as a colorized tree, one node
// per line with box-drawing connectors. It backs the "--mode p" output of
// the monkey CLI and REPL.
package astprint

import (
	"fmt"
	"io"

	"github.com/akashmaji946/monkey/ast"
	"github.com/fatih/color"
)

var (
	programColor    = color.New(color.FgHiRed)
	literalColor    = color.New(color.FgHiGreen)
	literalValue    = color.New(color.FgYellow)
	identifierColor = color.New(color.FgHiBlue)
	operatorColor   = color.New(color.FgHiMagenta)
	statementColor  = color.New(color.FgHiCyan)
	otherColor      = color.New(color.FgYellow)
	fieldColor      = color.New(color.FgHiBlack)
)

const indentWidth = 4

// Tree writes a connector tree of node to w, rooted at node with no label.
func Tree(w io.Writer, node ast.Node) {
	writeLine(w, node, "", "")
	printChildren(w, node, "")
}

func label(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Program:
		return programColor.Sprint("Program")
	case *ast.IntegerLiteral:
		return fmt.Sprintf("%s (%s)", literalColor.Sprint("IntegerLiteral"), literalValue.Sprint(n.Value))
	case *ast.Boolean:
		return fmt.Sprintf("%s (%s)", literalColor.Sprint("Boolean"), literalValue.Sprint(n.Value))
	case *ast.Identifier:
		return fmt.Sprintf("%s ('%s')", identifierColor.Sprint("Identifier"), literalValue.Sprint(n.Value))
	case *ast.PrefixExpression:
		return fmt.Sprintf("%s ('%s')", operatorColor.Sprint("PrefixExpression"), literalValue.Sprint(n.Operator))
	case *ast.InfixExpression:
		return fmt.Sprintf("%s ('%s')", operatorColor.Sprint("InfixExpression"), literalValue.Sprint(n.Operator))
	case *ast.LetStatement:
		return statementColor.Sprint("LetStatement")
	case *ast.ReturnStatement:
		return statementColor.Sprint("ReturnStatement")
	case *ast.ExpressionStatement:
		return statementColor.Sprint("ExpressionStatement")
	case *ast.BlockStatement:
		return statementColor.Sprint("BlockStatement")
	case *ast.IfExpression:
		return otherColor.Sprint("IfExpression")
	case *ast.FunctionLiteral:
		return otherColor.Sprint("FunctionLiteral")
	case *ast.CallExpression:
		return otherColor.Sprint("CallExpression")
	default:
		return otherColor.Sprintf("%T", node)
	}
}

func writeLine(w io.Writer, node ast.Node, indent, name string) {
	prefix := ""
	if name != "" {
		prefix = fieldColor.Sprintf("%s: ", name)
	}
	fmt.Fprintf(w, "%s%s%s\n", indent, prefix, label(node))
}

// children returns, in rendering order, the (fieldName, child) pairs that
// carry nested nodes. Slices of children appear as repeated entries with
// an index suffix, e.g. "Arguments[0]".
func children(node ast.Node) []struct {
	name  string
	child ast.Node
} {
	type entry = struct {
		name  string
		child ast.Node
	}

	switch n := node.(type) {
	case *ast.Program:
		entries := make([]entry, 0, len(n.Statements))
		for i, s := range n.Statements {
			entries = append(entries, entry{name: fmt.Sprintf("Statements[%d]", i), child: s})
		}
		return entries
	case *ast.LetStatement:
		entries := []entry{{name: "Name", child: n.Name}}
		if n.Value != nil {
			entries = append(entries, entry{name: "Value", child: n.Value})
		}
		return entries
	case *ast.ReturnStatement:
		if n.ReturnValue == nil {
			return nil
		}
		return []entry{{name: "ReturnValue", child: n.ReturnValue}}
	case *ast.ExpressionStatement:
		if n.Expression == nil {
			return nil
		}
		return []entry{{name: "Expression", child: n.Expression}}
	case *ast.BlockStatement:
		entries := make([]entry, 0, len(n.Statements))
		for i, s := range n.Statements {
			entries = append(entries, entry{name: fmt.Sprintf("Statements[%d]", i), child: s})
		}
		return entries
	case *ast.PrefixExpression:
		return []entry{{name: "Right", child: n.Right}}
	case *ast.InfixExpression:
		return []entry{{name: "Left", child: n.Left}, {name: "Right", child: n.Right}}
	case *ast.IfExpression:
		entries := []entry{{name: "Condition", child: n.Condition}, {name: "Consequence", child: n.Consequence}}
		if n.Alternative != nil {
			entries = append(entries, entry{name: "Alternative", child: n.Alternative})
		}
		return entries
	case *ast.FunctionLiteral:
		entries := make([]entry, 0, len(n.Parameters)+1)
		for i, p := range n.Parameters {
			entries = append(entries, entry{name: fmt.Sprintf("Parameters[%d]", i), child: p})
		}
		entries = append(entries, entry{name: "Body", child: n.Body})
		return entries
	case *ast.CallExpression:
		entries := []entry{{name: "Function", child: n.Function}}
		for i, a := range n.Arguments {
			entries = append(entries, entry{name: fmt.Sprintf("Arguments[%d]", i), child: a})
		}
		return entries
	default:
		return nil
	}
}

func printChildren(w io.Writer, node ast.Node, indent string) {
	kids := children(node)
	for i, k := range kids {
		last := i == len(kids)-1
		symbol := "├"
		childIndent := "│" + spaces(indentWidth)
		if last {
			symbol = "└"
			childIndent = spaces(indentWidth + 1)
		}

		writeLine(w, k.child, indent+symbol+dashes(indentWidth), k.name)
		printChildren(w, k.child, indent+childIndent)
	}
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func dashes(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '-'
	}
	return string(b)
}
