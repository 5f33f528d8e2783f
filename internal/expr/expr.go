// Package expr compiles a textual formula over the variables t and y into an
// ode.Func. Parsing happens once; the compiled function can then be invoked
// any number of times with concrete bindings.
package expr

import (
	"fmt"
	"math"
	"strings"

	"github.com/Knetic/govaluate"

	"github.com/akline/eulergrid/internal/ode"
)

// ParseError reports an expression that could not be compiled, either
// because of invalid syntax or because it references a variable other
// than t and y.
type ParseError struct {
	Expr string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expr: cannot compile %q: %v", e.Expr, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var functions = map[string]govaluate.ExpressionFunction{
	"sin":  unary(math.Sin),
	"cos":  unary(math.Cos),
	"tan":  unary(math.Tan),
	"exp":  unary(math.Exp),
	"log":  unary(math.Log),
	"sqrt": unary(math.Sqrt),
	"abs":  unary(math.Abs),
	"pow": func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("pow expects 2 arguments, got %d", len(args))
		}
		return math.Pow(toFloat(args[0]), toFloat(args[1])), nil
	},
}

// Named constants usable alongside t and y.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// Compile parses an arithmetic expression over t and y into a callable
// function. Supported syntax is govaluate's: the binary operators
// + - * / % and ** (exponentiation, with ^ accepted as an alias), numeric
// literals, parentheses, the constants pi and e, and the functions
// sin, cos, tan, exp, log, sqrt, abs and pow.
func Compile(exprStr string) (ode.Func, error) {
	// govaluate reserves ^ for bitwise xor; the usual math notation maps
	// onto its ** operator.
	normalized := strings.ReplaceAll(exprStr, "^", "**")

	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(normalized, functions)
	if err != nil {
		return nil, &ParseError{Expr: exprStr, Err: err}
	}

	for _, name := range parsed.Vars() {
		if name == "t" || name == "y" {
			continue
		}
		if _, ok := constants[name]; ok {
			continue
		}
		return nil, &ParseError{Expr: exprStr, Err: fmt.Errorf("unknown variable %q", name)}
	}

	f := func(t, y float64) float64 {
		params := map[string]interface{}{"t": t, "y": y}
		for name, val := range constants {
			params[name] = val
		}
		result, err := parsed.Evaluate(params)
		if err != nil {
			// Cannot happen for an expression that passed Compile;
			// treated as a defect rather than a recoverable error.
			panic(fmt.Sprintf("expr: evaluating %q: %v", exprStr, err))
		}
		v, ok := result.(float64)
		if !ok {
			panic(fmt.Sprintf("expr: %q evaluated to %T, want float64", exprStr, result))
		}
		return v
	}
	return f, nil
}

func unary(fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("expected 1 argument, got %d", len(args))
		}
		return fn(toFloat(args[0])), nil
	}
}

func toFloat(v interface{}) float64 {
	f, ok := v.(float64)
	if !ok {
		return math.NaN()
	}
	return f
}
