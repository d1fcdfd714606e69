package testgen

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/teranos/expandgen/errors"
	"github.com/teranos/expandgen/logger"
	"github.com/teranos/expandgen/render"
)

// Outcome of verifying one case.
type Outcome string

const (
	Passed  Outcome = "pass"
	Failed  Outcome = "fail"
	Skipped Outcome = "skip"
)

// Result is the verification result of one case.
type Result struct {
	Case    Case    `json:"case" yaml:"case"`
	Outcome Outcome `json:"outcome" yaml:"outcome"`
	Got     string  `json:"got,omitempty" yaml:"got,omitempty"`
	// Reason explains a skip or a render error
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Report collects the results of a verification run.
type Report struct {
	Results []Result `json:"results" yaml:"results"`
}

// Count returns the number of results with outcome o.
func (r Report) Count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// Failures returns the failed results.
func (r Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Outcome == Failed {
			out = append(out, res)
		}
	}
	return out
}

// Err summarizes failures as an error, or returns nil when none failed.
func (r Report) Err() error {
	failures := r.Failures()
	if len(failures) == 0 {
		return nil
	}
	err := errors.Newf("%d of %d examples failed", len(failures), len(r.Results))
	for _, f := range failures {
		err = errors.WithDetailf(err, "%s (%s): %s", f.Case.Name, f.Case.Pos, f.Message())
	}
	return err
}

// Message describes the result for display.
func (r Result) Message() string {
	switch r.Outcome {
	case Passed:
		return r.Got
	case Skipped:
		return "skipped: " + r.Reason
	}
	if r.Reason != "" {
		return r.Reason
	}
	return fmt.Sprintf("expected %q, got %q", r.Case.Expected, r.Got)
}

// VerifyOption configures Verify.
type VerifyOption func(*verifier)

type verifier struct {
	eval   Evaluator
	logger *zap.SugaredLogger
}

// WithEvaluator sets how example arguments are evaluated.
func WithEvaluator(ev Evaluator) VerifyOption {
	return func(v *verifier) {
		v.eval = ev
	}
}

// Verify renders every literal case through table and compares the result
// with the expected string. Cases whose arguments are not literals, or whose
// custom function is not registered, are skipped.
func Verify(table *render.Table, cases []Case, opts ...VerifyOption) Report {
	v := verifier{logger: logger.ComponentLogger("testgen")}
	for _, opt := range opts {
		opt(&v)
	}

	var report Report
	for _, c := range cases {
		res := v.run(table, c)
		if res.Outcome == Skipped {
			v.logger.Debugw("Skipped example", logger.FieldCase, c.Name, "reason", res.Reason)
		}
		report.Results = append(report.Results, res)
	}
	return report
}

func (v verifier) run(table *render.Table, c Case) (res Result) {
	res = Result{Case: c}
	defer func() {
		if p := recover(); p != nil {
			res.Outcome = Failed
			res.Reason = fmt.Sprintf("panic: %v", p)
		}
	}()

	in, err := v.eval.Instance(c)
	if err != nil {
		res.Outcome = Skipped
		res.Reason = err.Error()
		return res
	}

	got, err := table.RenderJoined(in)
	switch {
	case errors.Is(err, errors.ErrCustomFunc):
		res.Outcome = Skipped
		res.Reason = err.Error()
	case err != nil:
		res.Outcome = Failed
		res.Reason = err.Error()
	case got != c.Expected:
		res.Outcome = Failed
		res.Got = got
	default:
		res.Outcome = Passed
		res.Got = got
	}
	return res
}
