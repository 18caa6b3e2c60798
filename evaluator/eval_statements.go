package evaluator

import (
	"github.com/akashmaji946/monkey/ast"
	"github.com/akashmaji946/monkey/object"
)

// evalProgram evaluates the top-level statement list. A ReturnValue here is
// the end of the whole program, so it is unwrapped to its payload; an Error
// stops evaluation immediately and is returned as-is.
func evalProgram(program *ast.Program, env *object.Environment) object.Object {
	var result object.Object

	for _, statement := range program.Statements {
		result = Eval(statement, env)

		switch result := result.(type) {
		case *object.ReturnValue:
			return result.Value
		case *object.Error:
			return result
		}
	}

	return result
}

// evalBlockStatement evaluates the statements of a block without unwrapping
// a ReturnValue: the wrapper must survive intact so an enclosing block (or
// the function call site) can keep propagating it upward until it reaches
// evalProgram or a function boundary.
func evalBlockStatement(block *ast.BlockStatement, env *object.Environment) object.Object {
	var result object.Object

	for _, statement := range block.Statements {
		result = Eval(statement, env)

		if result != nil {
			rt := result.Type()
			if rt == object.RETURN_VALUE_OBJ || rt == object.ERROR_OBJ {
				return result
			}
		}
	}

	return result
}
