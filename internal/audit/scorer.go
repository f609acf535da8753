// Package audit scores governance artifacts against kind-specific
// structural rules. Each kind has one scorer sharing the AuditResult
// shape, dispatched on an explicit kind tag.
package audit

import (
	"strings"

	"github.com/boshu2/agentaudit/internal/types"
)

// scorer is the per-kind scoring strategy. Implementations must return
// scores in [0, 1] for any input, including empty content.
type scorer interface {
	score(name, content string) types.AuditResult
}

// scorers maps each kind tag to its strategy.
var scorers = map[types.ArtifactKind]scorer{
	types.KindAgent:         agentScorer{},
	types.KindInstruction:   instructionScorer{},
	types.KindSkill:         skillScorer{},
	types.KindKnowledgeBase: knowledgeBaseScorer{},
}

// Score audits a single artifact. Unknown kinds are a caller bug and
// return ErrUnknownArtifactKind.
func Score(kind types.ArtifactKind, name, content string) (types.AuditResult, error) {
	s, ok := scorers[kind]
	if !ok {
		return types.AuditResult{}, types.ErrUnknownArtifactKind
	}
	return s.score(name, content), nil
}

// ScoreAll audits a batch. Per-artifact problems degrade that artifact's
// result (the knowledge-base scorer handles its own malformed input);
// they never abort the batch.
func ScoreAll(artifacts []Artifact) []types.AuditResult {
	results := make([]types.AuditResult, 0, len(artifacts))
	for _, a := range artifacts {
		result, err := Score(a.Kind, a.Name, a.Content)
		if err != nil {
			continue
		}
		results = append(results, result)
	}
	return results
}

// wordCount counts whitespace-separated words.
func wordCount(content string) int {
	return len(strings.Fields(content))
}

// countSections counts markdown heading lines.
func countSections(content string) int {
	count := 0
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			count++
		}
	}
	return count
}

// has reports case-insensitive substring presence. This is the compliance
// indicator primitive: one marker, one boolean.
func has(content, marker string) bool {
	return strings.Contains(strings.ToLower(content), strings.ToLower(marker))
}

// indicatorMean returns the mean of boolean indicators as a [0, 1] score.
// An empty set scores 0.
func indicatorMean(indicators ...bool) float64 {
	if len(indicators) == 0 {
		return 0
	}
	hits := 0
	for _, ok := range indicators {
		if ok {
			hits++
		}
	}
	return float64(hits) / float64(len(indicators))
}

// ratioScore is min(1, actual/target), the shared sub-metric shape for
// count-against-target indicators.
func ratioScore(actual, target float64) float64 {
	if target <= 0 {
		return 0
	}
	if actual >= target {
		return 1
	}
	if actual < 0 {
		return 0
	}
	return actual / target
}
