package guardlint

import (
	"cmp"
	"fmt"
	"go/token"
	"slices"
	"sync"

	"golang.org/x/tools/go/analysis"

	"github.com/sirkon/clamp/rules"
)

// Reporter collects guard misuses found in a package.
type Reporter struct {
	mu      sync.Mutex
	reports []Report
}

// Report represents a single diagnostic entry.
type Report struct {
	Phase   ReportPhase
	Rule    rules.Rule
	Pos     token.Pos
	Message string
}

// ReportPhase marks the scan where a report was generated.
type ReportPhase int

const (
	_           ReportPhase = iota
	ReportOpen              // opener calls scan
	ReportUsage             // guard variables usage scan
)

func (p ReportPhase) String() string {
	switch p {
	case ReportOpen:
		return "open"
	case ReportUsage:
		return "usage"
	default:
		return fmt.Sprintf("unknown-phase(%d)", p)
	}
}

// ReporterPhase binds a Reporter to a fixed phase.
type ReporterPhase struct {
	parent *Reporter
	phase  ReportPhase
}

// Phase returns a reporter setting the given phase for all reports
// produced through it.
func (r *Reporter) Phase(p ReportPhase) *ReporterPhase {
	return &ReporterPhase{parent: r, phase: p}
}

// Report adds a new record to the reporter.
func (r *Reporter) Report(rep Report) {
	r.mu.Lock()
	r.reports = append(r.reports, rep)
	r.mu.Unlock()
}

// Report records a rule violation under the bound phase. An empty message
// is replaced with the rule description.
func (rp *ReporterPhase) Report(rule rules.Rule, message string, pos token.Pos) {
	if message == "" {
		message = rule.Description()
	}
	rp.parent.Report(Report{
		Phase:   rp.phase,
		Rule:    rule,
		Message: message,
		Pos:     pos,
	})
}

// Reports returns a snapshot of all collected records ordered by position.
func (r *Reporter) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := slices.Clone(r.reports)
	slices.SortStableFunc(out, func(a, b Report) int {
		return cmp.Compare(a.Pos, b.Pos)
	})

	return out
}

// Flush passes collected records to the analysis driver.
func (r *Reporter) Flush(pass *analysis.Pass) {
	for _, rep := range r.Reports() {
		pass.Report(analysis.Diagnostic{
			Pos:      rep.Pos,
			Category: rep.Rule.String(),
			Message:  fmt.Sprintf("%s: %s", rep.Rule, rep.Message),
		})
	}
}
