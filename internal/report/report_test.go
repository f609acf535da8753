package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boshu2/agentaudit/internal/types"
)

func testReport() *Report {
	baseline := &types.SimulationResult{
		Sessions: 100, AvgDuration: 22.5, P50Duration: 20, P95Duration: 48,
		AvgTokens: 4200, AvgAPICalls: 18, CompletionRate: 0.84, FailureRate: 0.06,
		AvgCognitiveLoad: 0.7, AvgDiscipline: 0.6, AvgResolution: 0.5, AvgTraceability: 0.55,
	}
	optimized := &types.SimulationResult{
		Sessions: 100, AvgDuration: 22.5, P50Duration: 20, P95Duration: 48,
		AvgTokens: 3780, AvgAPICalls: 17.1, CompletionRate: 0.86, FailureRate: 0.05,
		AvgCognitiveLoad: 0.55, AvgDiscipline: 0.65, AvgResolution: 0.55, AvgTraceability: 0.6,
	}
	audits := []types.AuditResult{
		{Kind: types.KindAgent, Name: "AGENTS.md", TokenCount: 3200,
			CognitiveLoad: 0.9, DisciplineScore: 0.5, ResolutionPotential: 0.4, TraceabilityScore: 0.4,
			Issues: []string{"missing recovery section"}},
	}
	proposals := []types.Proposal{
		{Type: types.ProposalOffload, Target: "AGENTS.md", TokenReduction: 400,
			CognitiveReduction: 0.1, Rationale: "move stable detail into the knowledge base"},
	}
	return Build(SourceCorpus, types.DefaultProfile(), audits, baseline, proposals, optimized)
}

func TestBuild_DeltaComputed(t *testing.T) {
	r := testReport()

	require.NotNil(t, r.Delta)
	assert.InDelta(t, -10.0, r.Delta.TokensPct, 1e-9)
	assert.InDelta(t, -5.0, r.Delta.APICallsPct, 1e-9)
	assert.InDelta(t, 10.0, r.Delta.ResolutionPct, 1e-9)
	assert.NotEmpty(t, r.RunID)
}

func TestBuild_NoOptimizedNoDelta(t *testing.T) {
	r := Build(SourceDefault, types.DefaultProfile(), nil,
		&types.SimulationResult{Sessions: 10}, nil, nil)
	assert.Nil(t, r.Delta)
	assert.Nil(t, r.Optimized)
}

func TestPctChange_ZeroBase(t *testing.T) {
	assert.Zero(t, pctChange(0, 100))
	assert.InDelta(t, -50.0, pctChange(200, 100), 1e-9)
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	r := testReport()

	var buf bytes.Buffer
	require.NoError(t, r.WriteJSON(&buf))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, r.RunID, decoded.RunID)
	assert.Equal(t, SourceCorpus, decoded.ProfileSource)
	assert.Len(t, decoded.Audits, 1)
}

func TestWriteYAML(t *testing.T) {
	r := testReport()

	var buf bytes.Buffer
	require.NoError(t, r.WriteYAML(&buf))
	assert.Contains(t, buf.String(), "run_id: "+r.RunID)
	assert.Contains(t, buf.String(), "profile_source: corpus")
}

func TestWriteTable(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	r := testReport()

	var buf bytes.Buffer
	require.NoError(t, r.WriteTable(&buf))
	out := buf.String()

	assert.Contains(t, out, "Governance Audit")
	assert.Contains(t, out, "AGENTS.md")
	assert.Contains(t, out, "Baseline Simulation")
	assert.Contains(t, out, "Optimized Simulation")
	assert.Contains(t, out, "offload")
	assert.Contains(t, out, "-10.0%")
}

func TestWriteMarkdown(t *testing.T) {
	r := testReport()

	var buf bytes.Buffer
	require.NoError(t, r.WriteMarkdown(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Governance Audit"))
	assert.Contains(t, out, "| AGENTS.md | agent | 3200 |")
	assert.Contains(t, out, "missing recovery section")
	assert.Contains(t, out, "## Proposals")
	assert.Contains(t, out, "Tokens: -10.0%")
}
