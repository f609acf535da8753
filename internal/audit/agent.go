package audit

import (
	"fmt"
	"strings"

	"github.com/boshu2/agentaudit/internal/types"
)

// Word ceilings for the agent instruction document.
const (
	agentMaxWords    = 3000
	agentTargetWords = 2000
)

// agentScorer audits the top-level agent instruction document.
//
// Indicator sets (each composite is the mean of its fixed set):
//   - discipline:   RULES, PROTOCOL, DO:, RECOVERY section markers
//   - resolution:   RECOVERY, VERIFY, GOTCHA section markers
//   - traceability: session, knowledge, workflow references
//
// Section markers are uppercase by convention and matched case-sensitively;
// traceability references are matched case-insensitively.
type agentScorer struct{}

func (agentScorer) score(name, content string) types.AuditResult {
	words := wordCount(content)

	result := types.AuditResult{
		Kind:         types.KindAgent,
		Name:         name,
		TokenCount:   words,
		SectionCount: countSections(content),
	}

	hasRecovery := strings.Contains(content, "RECOVERY")

	result.CognitiveLoad = ratioScore(float64(words), agentMaxWords)
	result.DisciplineScore = indicatorMean(
		strings.Contains(content, "RULES"),
		strings.Contains(content, "PROTOCOL"),
		strings.Contains(content, "DO:"),
		hasRecovery,
	)
	result.ResolutionPotential = indicatorMean(
		hasRecovery,
		strings.Contains(content, "VERIFY"),
		strings.Contains(content, "GOTCHA"),
	)
	result.TraceabilityScore = indicatorMean(
		has(content, "session"),
		has(content, "knowledge"),
		has(content, "workflow"),
	)

	if words > agentMaxWords {
		result.Issues = append(result.Issues, fmt.Sprintf(
			"high token count: %d words exceeds limit %d (target %d)",
			words, agentMaxWords, agentTargetWords))
	}
	if !hasRecovery {
		result.Issues = append(result.Issues, "missing recovery section")
	}
	if !strings.Contains(content, "RULES") {
		result.Issues = append(result.Issues, "missing rules section")
	}
	if !strings.Contains(content, "PROTOCOL") {
		result.Issues = append(result.Issues, "missing protocol section")
	}

	// Relocation only makes sense when the subsection exists and the
	// document is over the hard ceiling.
	if strings.Contains(content, "GOTCHA") && words > agentMaxWords {
		result.Suggestions = append(result.Suggestions,
			"relocate the GOTCHAS subsection to the knowledge base to reduce size")
	}
	if words > agentTargetWords && result.SectionCount > 10 {
		result.Suggestions = append(result.Suggestions, fmt.Sprintf(
			"consolidate %d sections toward the %d-word target", result.SectionCount, agentTargetWords))
	}

	return result
}
