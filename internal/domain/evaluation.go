package domain

import (
	"math/big"
	"time"
)

// Evaluation is the result of applying one function to one input.
type Evaluation struct {
	ID       string
	Function Function
	N        int
	Value    *big.Int

	StartedAt time.Time
	Duration  time.Duration
}

// Digits returns the number of decimal digits in Value, ignoring the sign.
func (e Evaluation) Digits() int {
	if e.Value == nil {
		return 0
	}
	s := e.Value.String()
	if len(s) > 0 && s[0] == '-' {
		return len(s) - 1
	}
	return len(s)
}

// TableRow is a single (n, value) pair inside a Table.
type TableRow struct {
	N     int
	Value *big.Int
}

// Table holds a function evaluated over an inclusive range, ordered by N.
type Table struct {
	Function Function
	From     int
	To       int
	Rows     []TableRow

	StartedAt time.Time
	EndedAt   time.Time
}

// CheckResult is the outcome of a single verification check.
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// Verification aggregates every check run by the verify use case.
type Verification struct {
	Checks []CheckResult
}

// Failed returns the checks that did not pass.
func (v Verification) Failed() []CheckResult {
	var out []CheckResult
	for _, c := range v.Checks {
		if !c.Passed {
			out = append(out, c)
		}
	}
	return out
}
