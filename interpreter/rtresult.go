// Package interpreter - rtresult.go
// RTResult is the five-way tagged outcome every Eval call returns (spec.md
// §4.3 / §9): value, error, function-return, loop-continue, loop-break.
// ShouldReturn is the short-circuit predicate every composite visit checks
// after each sub-visit before continuing. Grounded in the teacher's own
// "check IsError / *ReturnValue / Break-Continue after each sub-eval"
// discipline in eval/eval_statements.go, generalized here into one
// explicit tagged type rather than teacher's separate sentinel values, per
// spec.md §9's "five-way result monad" guidance.
/*
File    : libra/interpreter/rtresult.go
*/
package interpreter

import (
	"github.com/akashmaji946/libra/errors"
	"github.com/akashmaji946/libra/value"
)

// Outcome tags which of the five RTResult variants a result is.
type Outcome int

const (
	OutcomeValue Outcome = iota
	OutcomeError
	OutcomeReturn
	OutcomeContinue
	OutcomeBreak
)

// RTResult carries exactly one of: a value, an error, a ret value, or a
// bare cont/brk signal, selected by Outcome.
type RTResult struct {
	Outcome Outcome
	Value   value.Value
	Err     *errors.LibraError
}

func ValueResult(v value.Value) RTResult { return RTResult{Outcome: OutcomeValue, Value: v} }
func ErrorResult(e *errors.LibraError) RTResult { return RTResult{Outcome: OutcomeError, Err: e} }
func ReturnResult(v value.Value) RTResult { return RTResult{Outcome: OutcomeReturn, Value: v} }
func ContinueResult() RTResult { return RTResult{Outcome: OutcomeContinue} }
func BreakResult() RTResult { return RTResult{Outcome: OutcomeBreak} }

// ShouldReturn is true for any outcome other than a plain value; callers
// composing sub-results must check this after every sub-visit and, if
// true, propagate the result upward unchanged instead of continuing.
func (r RTResult) ShouldReturn() bool { return r.Outcome != OutcomeValue }

// ShouldReturnThroughLoop is true for error and ret outcomes: the two
// outcomes a loop boundary does NOT consume (it consumes cont/brk only).
func (r RTResult) ShouldReturnThroughLoop() bool {
	return r.Outcome == OutcomeError || r.Outcome == OutcomeReturn
}
