package guardlint

import (
	"go/token"
	"sync"
	"testing"

	"github.com/sirkon/clamp/rules"
)

func TestReporter_ReportPhases(t *testing.T) {
	tests := []struct {
		name    string
		phase   ReportPhase
		rule    rules.Rule
		message string
		pos     token.Pos
	}{
		{
			name:    "usage-phase unresolved",
			phase:   ReportUsage,
			rule:    rules.UnresolvedGuard(),
			message: "guard opened by clamp.Int.Modify is neither committed nor discarded",
			pos:     30,
		},
		{
			name:    "open-phase discarded",
			phase:   ReportOpen,
			rule:    rules.UnresolvedGuard(),
			message: "result of clamp.NewGuard is discarded",
			pos:     10,
		},
		{
			name:    "description fallback",
			phase:   ReportOpen,
			rule:    rules.GuardReuse(),
			message: "",
			pos:     20,
		},
	}

	var r Reporter
	for _, tt := range tests {
		r.Phase(tt.phase).Report(tt.rule, tt.message, tt.pos)
	}

	reps := r.Reports()
	if len(reps) != len(tests) {
		t.Fatalf("expected %d reports, got %d", len(tests), len(reps))
	}

	// Reports come ordered by position.
	order := []int{1, 2, 0}
	for i, rep := range reps {
		want := tests[order[i]]
		if rep.Phase != want.phase {
			t.Errorf("[%s] phase mismatch: got %v, want %v", want.name, rep.Phase, want.phase)
		}
		if rep.Rule != want.rule {
			t.Errorf("[%s] rule mismatch: got %v, want %v", want.name, rep.Rule, want.rule)
		}
		if rep.Pos != want.pos {
			t.Errorf("[%s] position mismatch: got %d, want %d", want.name, rep.Pos, want.pos)
		}

		message := want.message
		if message == "" {
			message = want.rule.Description()
		}
		if rep.Message != message {
			t.Errorf("[%s] message mismatch: got %q, want %q", want.name, rep.Message, message)
		}
	}

	if got := ReportPhase(7).String(); got != "unknown-phase(7)" {
		t.Errorf("unexpected phase text %q", got)
	}
}

func TestReporter_ConcurrencySafety(t *testing.T) {
	const n = 500
	var (
		r  Reporter
		wg sync.WaitGroup
	)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Report(Report{
				Phase:   ReportUsage,
				Rule:    rules.UnresolvedGuard(),
				Message: "parallel add",
				Pos:     token.Pos(i),
			})
		}()
	}
	wg.Wait()

	reps := r.Reports()
	if len(reps) != n {
		t.Fatalf("expected %d reports, got %d", n, len(reps))
	}
	reps[0].Message = "changed"
	if r.Reports()[0].Message == "changed" {
		t.Fatalf("Reports() returned shared slice, expected copy")
	}
}
