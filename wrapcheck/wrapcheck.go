package wrapcheck

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/sarif"

	"fibseq/sequence"
)

const (
	ToolName = "fibseq"
	ToolURI  = "https://en.wikipedia.org/wiki/Fibonacci_sequence"
	// RuleID is attached to every term whose value wrapped past the uint64 range
	RuleID = "FIBSEQ_RULE_001"
)

// Check looks through the terms and reports every wrapped one as a result in a SARIF run.
// uri names the artifact the terms were written to, one term per line, so term i sits on line i+1.
func Check(terms []sequence.Term, uri string) *sarif.Run {
	run := sarif.NewRun(ToolName, ToolURI)
	for _, t := range terms {
		if !sequence.Wrapped(t) {
			continue
		}
		run.AddResult(RuleID).
			WithLocation(sarif.NewLocationWithPhysicalLocation(sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().
					WithUri(uri)).
				WithRegion(sarif.NewRegion().
					WithStartLine(int(t.Index) + 1).
					WithStartColumn(1)))).
			WithMessage(sarif.NewMessage().WithText(message(t)))
	}
	return run
}

func message(t sequence.Term) string {
	return fmt.Sprintf("F(%d) exceeds the 64-bit range, %d is the value modulo 2^64", t.Index, t.Value)
}

// WriteReport wraps the run in a SARIF 2.1.0 report and writes it to w.
func WriteReport(w io.Writer, run *sarif.Run) error {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("error creating SARIF report: %w", err)
	}
	report.AddRun(run)
	if err := report.Write(w); err != nil {
		return fmt.Errorf("error writing SARIF report: %w", err)
	}
	return nil
}
