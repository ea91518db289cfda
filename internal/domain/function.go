package domain

import (
	"fmt"
	"strings"
)

// Function names one of the numeric functions exposed by numutil.
type Function string

const (
	FuncFib  Function = "fib"
	FuncFib2 Function = "fib2"
	FuncFact Function = "fact"
)

// Functions lists every known function in display order.
func Functions() []Function {
	return []Function{FuncFib, FuncFib2, FuncFact}
}

// ParseFunction maps user input (case-insensitive) to a Function.
func ParseFunction(s string) (Function, error) {
	in := Function(strings.ToLower(strings.TrimSpace(s)))
	for _, f := range Functions() {
		if f == in {
			return f, nil
		}
	}
	return "", &OpError{
		Op:   "domain.parse_function",
		Kind: KindUnknownFunction,
		Err:  fmt.Errorf("%q (expected fib|fib2|fact): %w", s, ErrUnknownFunction),
	}
}
