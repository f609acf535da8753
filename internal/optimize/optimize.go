// Package optimize derives structural edit Proposals from audit results,
// synthesizes an adjusted component set, and re-simulates it with the
// same seeding scheme so the baseline/optimized delta is attributable
// solely to the adjusted parameters.
package optimize

import (
	"fmt"

	"github.com/boshu2/agentaudit/internal/simulate"
	"github.com/boshu2/agentaudit/internal/types"
)

// Fixed proposal effect estimates.
const (
	offloadTokenReduction     = 400
	offloadCognitiveReduction = 0.10

	consolidateTokenReduction     = 200
	consolidateCognitiveReduction = 0.15

	compressTargetWords  = 150
	referenceTargetWords = 250

	smallCognitiveReduction = 0.05
)

// Rule thresholds.
const (
	agentOffloadThreshold     = 2500
	agentConsolidateThreshold = 0.6
	instructionCompressLimit  = 200
	skillReferenceLimit       = 350
	weakScoreThreshold        = 0.5
	kbPopulateThreshold       = 0.4
)

// Score nudges applied to the synthesized component set, each clamped
// to its ceiling.
const (
	disciplineDelta     = 0.05
	disciplineCeiling   = 0.95
	resolutionDelta     = 0.03
	resolutionCeiling   = 0.95
	traceabilityDelta   = 0.05
	traceabilityCeiling = 0.90
)

// Outcome bundles the proposals with the re-simulated result.
type Outcome struct {
	Proposals []types.Proposal        `json:"proposals" yaml:"proposals"`
	Optimized *types.SimulationResult `json:"optimized" yaml:"optimized"`
}

// Propose walks every audit result and applies a fixed, ordered rule
// table per kind. It is pure: the input set is never mutated and rule
// order never varies.
func Propose(audits []types.AuditResult) []types.Proposal {
	var proposals []types.Proposal
	for _, a := range audits {
		switch a.Kind {
		case types.KindAgent:
			proposals = append(proposals, agentRules(a)...)
		case types.KindInstruction:
			proposals = append(proposals, instructionRules(a)...)
		case types.KindSkill:
			proposals = append(proposals, skillRules(a)...)
		case types.KindKnowledgeBase:
			proposals = append(proposals, knowledgeBaseRules(a)...)
		}
	}
	return proposals
}

func agentRules(a types.AuditResult) []types.Proposal {
	var out []types.Proposal
	if a.TokenCount > agentOffloadThreshold {
		out = append(out, types.Proposal{
			Type:               types.ProposalOffload,
			Target:             a.Name,
			TokenReduction:     offloadTokenReduction,
			CognitiveReduction: offloadCognitiveReduction,
			Rationale: fmt.Sprintf("%d words exceeds the %d-word offload threshold; move stable detail into the knowledge base",
				a.TokenCount, agentOffloadThreshold),
		})
	}
	if a.CognitiveLoad > agentConsolidateThreshold {
		out = append(out, types.Proposal{
			Type:               types.ProposalConsolidate,
			Target:             a.Name,
			TokenReduction:     consolidateTokenReduction,
			CognitiveReduction: consolidateCognitiveReduction,
			Rationale: fmt.Sprintf("cognitive load %.2f exceeds %.1f; merge overlapping sections",
				a.CognitiveLoad, agentConsolidateThreshold),
		})
	}
	if a.DisciplineScore < weakScoreThreshold {
		out = append(out, types.Proposal{
			Type:      types.ProposalImproveDescription,
			Target:    a.Name,
			Rationale: "discipline markers are sparse; add explicit RULES/PROTOCOL sections",
		})
	}
	return out
}

func instructionRules(a types.AuditResult) []types.Proposal {
	if a.TokenCount <= instructionCompressLimit {
		return nil
	}
	return []types.Proposal{{
		Type:               types.ProposalCompress,
		Target:             a.Name,
		TokenReduction:     a.TokenCount - compressTargetWords,
		CognitiveReduction: smallCognitiveReduction,
		Rationale: fmt.Sprintf("%d words exceeds the %d-word ceiling; compress toward %d",
			a.TokenCount, instructionCompressLimit, compressTargetWords),
	}}
}

func skillRules(a types.AuditResult) []types.Proposal {
	var out []types.Proposal
	if a.TokenCount > skillReferenceLimit {
		out = append(out, types.Proposal{
			Type:               types.ProposalReference,
			Target:             a.Name,
			TokenReduction:     a.TokenCount - referenceTargetWords,
			CognitiveReduction: smallCognitiveReduction,
			Rationale: fmt.Sprintf("%d words exceeds the %d-word limit; replace inline detail with references",
				a.TokenCount, skillReferenceLimit),
		})
	}
	if a.ResolutionPotential < weakScoreThreshold {
		out = append(out, types.Proposal{
			Type:      types.ProposalImproveDescription,
			Target:    a.Name,
			Rationale: "validation and gotcha guidance is thin; describe failure handling",
		})
	}
	return out
}

func knowledgeBaseRules(a types.AuditResult) []types.Proposal {
	// A parse failure is recognizable by its forced worst-case shape.
	if a.CognitiveLoad == 1.0 && a.DisciplineScore == 0 && a.ResolutionPotential == 0 {
		return []types.Proposal{{
			Type:      types.ProposalGenerate,
			Target:    a.Name,
			Rationale: "knowledge base is unparseable; regenerate it from the record schema",
		}}
	}
	if a.ResolutionPotential < kbPopulateThreshold {
		return []types.Proposal{{
			Type:      types.ProposalPopulate,
			Target:    a.Name,
			Rationale: fmt.Sprintf("completeness %.2f is below %.1f; populate missing records", a.ResolutionPotential, kbPopulateThreshold),
		}}
	}
	return nil
}

// Synthesize builds the adjusted component set the optimized simulation
// runs against: the aggregate token reduction is distributed evenly, the
// aggregate cognitive reduction is applied uniformly, and the remaining
// scores are nudged up to their fixed ceilings. The input is copied,
// never mutated.
func Synthesize(audits []types.AuditResult, proposals []types.Proposal) []types.AuditResult {
	if len(audits) == 0 {
		return nil
	}

	var tokenReduction int
	var cognitiveReduction float64
	for _, p := range proposals {
		tokenReduction += p.TokenReduction
		cognitiveReduction += p.CognitiveReduction
	}
	tokenShare := tokenReduction / len(audits)
	cognitiveShare := cognitiveReduction / float64(len(audits))

	optimized := make([]types.AuditResult, len(audits))
	for i, a := range audits {
		adjusted := a
		adjusted.TokenCount = max(0, a.TokenCount-tokenShare)
		adjusted.CognitiveLoad = max(0, a.CognitiveLoad-cognitiveShare)
		adjusted.DisciplineScore = nudge(a.DisciplineScore, disciplineDelta, disciplineCeiling)
		adjusted.ResolutionPotential = nudge(a.ResolutionPotential, resolutionDelta, resolutionCeiling)
		adjusted.TraceabilityScore = nudge(a.TraceabilityScore, traceabilityDelta, traceabilityCeiling)
		optimized[i] = adjusted
	}
	return optimized
}

// Run derives proposals, synthesizes the optimized component set, and
// re-simulates with the same per-index seeding and the same profile.
func Run(profile *types.PatternProfile, audits []types.AuditResult, count, workers int) (*Outcome, error) {
	proposals := Propose(audits)

	sim, err := simulate.New(profile, Synthesize(audits, proposals))
	if err != nil {
		return nil, err
	}
	sim.Workers = workers

	optimized, err := sim.Simulate(count)
	if err != nil {
		return nil, err
	}

	return &Outcome{Proposals: proposals, Optimized: optimized}, nil
}

// nudge raises a score by delta without crossing its ceiling; scores
// already above the ceiling are left alone.
func nudge(score, delta, ceiling float64) float64 {
	raised := score + delta
	if raised > ceiling {
		if score > ceiling {
			return score
		}
		return ceiling
	}
	return raised
}
