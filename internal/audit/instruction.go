package audit

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/boshu2/agentaudit/internal/types"
)

// instructionTargetWords is the word target for per-task instruction docs.
const instructionTargetWords = 200

var orderedStepPattern = regexp.MustCompile(`(?m)^\s*\d+\.\s`)

// instructionScorer audits per-task instruction documents.
//
// Indicator sets:
//   - discipline:   imperative language (must/always/never), ordered steps
//   - resolution:   fenced example block, expected-outcome statement
//   - traceability: markdown link to another artifact, scope heading
type instructionScorer struct{}

func (instructionScorer) score(name, content string) types.AuditResult {
	words := wordCount(content)

	result := types.AuditResult{
		Kind:         types.KindInstruction,
		Name:         name,
		TokenCount:   words,
		SectionCount: countSections(content),
	}

	result.CognitiveLoad = ratioScore(float64(words), instructionTargetWords)
	result.DisciplineScore = indicatorMean(
		has(content, "must") || has(content, "always") || has(content, "never"),
		orderedStepPattern.MatchString(content),
	)
	result.ResolutionPotential = indicatorMean(
		strings.Contains(content, "```"),
		has(content, "expected"),
	)
	result.TraceabilityScore = indicatorMean(
		strings.Contains(content, "]("),
		result.SectionCount > 0,
	)

	if words > instructionTargetWords {
		result.Issues = append(result.Issues, fmt.Sprintf(
			"%d words exceeds the %d-word target", words, instructionTargetWords))
	}
	if !orderedStepPattern.MatchString(content) {
		result.Issues = append(result.Issues, "no ordered step list")
	}

	// Compressing into a reference only helps when there is an example
	// block to move and the target is already blown.
	if words > instructionTargetWords && strings.Contains(content, "```") {
		result.Suggestions = append(result.Suggestions,
			"move example blocks to a reference doc to get under the word target")
	}

	return result
}
