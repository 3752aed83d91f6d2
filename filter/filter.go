// Package filter compiles expr-lang expressions into client-side
// filters over Nookipedia resources. Filtering always happens after the
// fetch; the API itself only supports its own query parameters.
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled filter expression. A Filter is safe for
// concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
}

// CompilationError describes a filter expression that failed to compile.
type CompilationError struct {
	Expression string
	Reason     string
	Err        error
}

// Error implements the error interface.
func (e *CompilationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid filter %q: %s: %v", e.Expression, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid filter %q: %s", e.Expression, e.Reason)
}

// Unwrap returns the underlying compile error.
func (e *CompilationError) Unwrap() error {
	return e.Err
}

// Compile compiles an expression into an executable filter.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // resource fields differ per env
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{
		expression: expression,
		program:    program,
	}, nil
}

// Expression returns the original expression.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a resource environment. Entries
// that fail to evaluate are excluded rather than aborting the run.
func (f *Filter) Match(env map[string]any) bool {
	full := make(map[string]any, len(env)+8)
	addHelperFunctions(full)
	for k, v := range env {
		full[k] = v
	}

	result, err := expr.Run(f.program, full)
	if err != nil {
		return false
	}

	// AsBool() during compilation guarantees a bool result.
	return result.(bool)
}

func helperFunctions() map[string]any {
	funcs := make(map[string]any, 8)
	addHelperFunctions(funcs)
	return funcs
}

func addHelperFunctions(env map[string]any) {
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	env["oneOf"] = func(str string, options []any) bool {
		for _, o := range options {
			if s, ok := o.(string); ok && strings.EqualFold(str, s) {
				return true
			}
		}
		return false
	}
}
