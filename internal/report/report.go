// Package report assembles the full audit run into a single document
// and renders it as a table, JSON, YAML, or markdown.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/boshu2/agentaudit/internal/formatter"
	"github.com/boshu2/agentaudit/internal/types"
)

// Profile sources.
const (
	SourceCorpus  = "corpus"
	SourceDefault = "default"
)

// Delta summarizes the baseline-to-optimized change as percentages.
// Negative token, API, and cognitive deltas are improvements; a
// positive resolution delta is an improvement.
type Delta struct {
	TokensPct     float64 `json:"tokens_pct" yaml:"tokens_pct"`
	APICallsPct   float64 `json:"api_calls_pct" yaml:"api_calls_pct"`
	CognitivePct  float64 `json:"cognitive_pct" yaml:"cognitive_pct"`
	ResolutionPct float64 `json:"resolution_pct" yaml:"resolution_pct"`
}

// Report is the complete output of one audit run.
type Report struct {
	RunID         string                  `json:"run_id" yaml:"run_id"`
	GeneratedAt   time.Time               `json:"generated_at" yaml:"generated_at"`
	ProfileSource string                  `json:"profile_source" yaml:"profile_source"`
	Profile       *types.PatternProfile   `json:"profile" yaml:"profile"`
	Audits        []types.AuditResult     `json:"audits" yaml:"audits"`
	Baseline      *types.SimulationResult `json:"baseline" yaml:"baseline"`
	Proposals     []types.Proposal        `json:"proposals,omitempty" yaml:"proposals,omitempty"`
	Optimized     *types.SimulationResult `json:"optimized,omitempty" yaml:"optimized,omitempty"`
	Delta         *Delta                  `json:"delta,omitempty" yaml:"delta,omitempty"`
}

// Build assembles a report. Optimized may be nil when the run stopped
// after the baseline simulation; the delta is computed only when both
// results are present.
func Build(source string, profile *types.PatternProfile, audits []types.AuditResult,
	baseline *types.SimulationResult, proposals []types.Proposal,
	optimized *types.SimulationResult) *Report {

	r := &Report{
		RunID:         uuid.New().String(),
		GeneratedAt:   time.Now().UTC(),
		ProfileSource: source,
		Profile:       profile,
		Audits:        audits,
		Baseline:      baseline,
		Proposals:     proposals,
		Optimized:     optimized,
	}
	if baseline != nil && optimized != nil {
		r.Delta = computeDelta(baseline, optimized)
	}
	return r
}

func computeDelta(baseline, optimized *types.SimulationResult) *Delta {
	return &Delta{
		TokensPct:     pctChange(baseline.AvgTokens, optimized.AvgTokens),
		APICallsPct:   pctChange(baseline.AvgAPICalls, optimized.AvgAPICalls),
		CognitivePct:  pctChange(baseline.AvgCognitiveLoad, optimized.AvgCognitiveLoad),
		ResolutionPct: pctChange(baseline.AvgResolution, optimized.AvgResolution),
	}
}

// pctChange is the relative change in percent; a zero base yields zero
// rather than an infinity.
func pctChange(base, value float64) float64 {
	if base == 0 {
		return 0
	}
	return (value - base) / base * 100
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteYAML writes the report as YAML.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(r)
}

// WriteTable renders the human-readable report.
func (r *Report) WriteTable(w io.Writer) error {
	bold := color.New(color.Bold).FprintlnFunc()

	bold(w, "Governance Audit")
	fmt.Fprintf(w, "run %s, profile from %s (%d source documents)\n\n",
		r.RunID, r.ProfileSource, r.Profile.TotalSourceDocuments)

	if err := r.writeAuditTable(w); err != nil {
		return err
	}

	bold(w, "\nBaseline Simulation")
	writeSimulation(w, r.Baseline)

	if len(r.Proposals) > 0 {
		bold(w, "\nProposals")
		if err := r.writeProposalTable(w); err != nil {
			return err
		}
	}

	if r.Optimized != nil {
		bold(w, "\nOptimized Simulation")
		writeSimulation(w, r.Optimized)
	}

	if r.Delta != nil {
		bold(w, "\nDelta")
		fmt.Fprintf(w, "  tokens     %s\n", formatter.Delta(r.Delta.TokensPct))
		fmt.Fprintf(w, "  api calls  %s\n", formatter.Delta(r.Delta.APICallsPct))
		fmt.Fprintf(w, "  cognitive  %s\n", formatter.Delta(r.Delta.CognitivePct))
		fmt.Fprintf(w, "  resolution %s\n", formatter.Gain(r.Delta.ResolutionPct))
	}
	return nil
}

func (r *Report) writeAuditTable(w io.Writer) error {
	tbl := formatter.NewTable(w, "ARTIFACT", "KIND", "TOKENS", "COGNITIVE", "DISCIPLINE", "RESOLUTION", "TRACE", "ISSUES")
	tbl.SetMaxWidth(0, 32)
	for _, a := range r.Audits {
		tbl.AddRow(
			a.Name,
			string(a.Kind),
			fmt.Sprintf("%d", a.TokenCount),
			formatter.Load(a.CognitiveLoad),
			formatter.Score(a.DisciplineScore),
			formatter.Score(a.ResolutionPotential),
			formatter.Score(a.TraceabilityScore),
			fmt.Sprintf("%d", len(a.Issues)),
		)
	}
	return tbl.Render()
}

func (r *Report) writeProposalTable(w io.Writer) error {
	tbl := formatter.NewTable(w, "TYPE", "TARGET", "TOKENS", "RATIONALE")
	tbl.SetMaxWidth(1, 32)
	tbl.SetMaxWidth(3, 60)
	for _, p := range r.Proposals {
		tbl.AddRow(
			string(p.Type),
			p.Target,
			fmt.Sprintf("-%d", p.TokenReduction),
			p.Rationale,
		)
	}
	return tbl.Render()
}

func writeSimulation(w io.Writer, s *types.SimulationResult) {
	if s == nil {
		return
	}
	fmt.Fprintf(w, "  sessions    %d\n", s.Sessions)
	fmt.Fprintf(w, "  duration    avg %.1fm  p50 %.1fm  p95 %.1fm\n", s.AvgDuration, s.P50Duration, s.P95Duration)
	fmt.Fprintf(w, "  tokens      %.0f\n", s.AvgTokens)
	fmt.Fprintf(w, "  api calls   %.1f\n", s.AvgAPICalls)
	fmt.Fprintf(w, "  completion  %.1f%%  (failure %.1f%%)\n", s.CompletionRate*100, s.FailureRate*100)
	fmt.Fprintf(w, "  cognitive   %s  discipline %s  resolution %s  trace %s\n",
		formatter.Load(s.AvgCognitiveLoad),
		formatter.Score(s.AvgDiscipline),
		formatter.Score(s.AvgResolution),
		formatter.Score(s.AvgTraceability),
	)
}
