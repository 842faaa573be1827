package query

import (
	"github.com/expr-lang/expr"

	"github.com/tomlcore/tomlcore/debug"
	"github.com/tomlcore/tomlcore/encode"
	"github.com/tomlcore/tomlcore/ir"
)

// Eval compiles and runs an expr-lang expression against t, exposing the
// document as the native map the expression's field accesses walk and
// every registered Symbol as a callable function in scope.
func Eval(t *ir.Table, expression string) (any, error) {
	env := buildEnv(t)
	program, err := expr.Compile(expression, expr.Env(env))
	if err != nil {
		return nil, err
	}
	result, err := expr.Run(program, env)
	if err != nil {
		return nil, err
	}
	if debug.Query() {
		debug.LogAny(result)
	}
	return result, nil
}

func buildEnv(t *ir.Table) map[string]any {
	env := encode.TableToNative(t)
	for _, sym := range Symbols() {
		env[sym.Name] = sym.Fn
	}
	return env
}
