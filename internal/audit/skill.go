package audit

import (
	"fmt"
	"strings"

	"github.com/boshu2/agentaudit/internal/types"
)

// Word ceilings for skill documents.
const (
	skillMaxWords      = 350
	skillTargetWords   = 250
	skillCognitiveBase = 250
)

// skillScorer audits skill definition documents.
//
// Indicator sets:
//   - discipline:   description field, when-to-use guidance
//   - resolution:   validation script reference, gotcha notes
//   - traceability: scripts/ path reference, markdown link
type skillScorer struct{}

func (skillScorer) score(name, content string) types.AuditResult {
	words := wordCount(content)

	result := types.AuditResult{
		Kind:         types.KindSkill,
		Name:         name,
		TokenCount:   words,
		SectionCount: countSections(content),
	}

	hasDescription := has(content, "description:")

	result.CognitiveLoad = ratioScore(float64(words), skillCognitiveBase)
	result.DisciplineScore = indicatorMean(
		hasDescription,
		has(content, "when to use"),
	)
	result.ResolutionPotential = indicatorMean(
		has(content, "validate"),
		has(content, "gotcha"),
	)
	result.TraceabilityScore = indicatorMean(
		has(content, "scripts/"),
		strings.Contains(content, "]("),
	)

	if words > skillMaxWords {
		result.Issues = append(result.Issues, fmt.Sprintf(
			"%d words exceeds limit %d (target %d)", words, skillMaxWords, skillTargetWords))
	}
	if !hasDescription {
		result.Issues = append(result.Issues, "missing description field")
	}

	// Only suggest moving detail out when a references section already
	// exists to receive it and the limit is exceeded.
	if words > skillMaxWords && has(content, "references") {
		result.Suggestions = append(result.Suggestions,
			"move detail into the references section to get under the word limit")
	}

	return result
}
