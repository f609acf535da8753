package audit

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/boshu2/agentaudit/internal/types"
)

// Knowledge-base record types. The first six are singleton header records;
// entity and relation records repeat.
const (
	recHotCache        = "hot_cache"
	recDomainIndex     = "domain_index"
	recChangeTracking  = "change_tracking"
	recGotchas         = "gotchas"
	recInterconnection = "interconnections"
	recSessionPatterns = "session_patterns"
	recEntity          = "entity"
	recRelation        = "relation"
)

// headerRecords lists the singleton record types expected once each.
var headerRecords = []string{
	recHotCache,
	recDomainIndex,
	recChangeTracking,
	recGotchas,
	recInterconnection,
	recSessionPatterns,
}

// Population targets for repeating records.
const (
	entityTarget   = 20
	relationTarget = 30
)

// kbCognitiveBase is the token estimate at which reading the knowledge
// base saturates cognitive load.
const kbCognitiveBase = 2000

// knowledgeBaseScorer audits the JSONL knowledge graph file.
//
// The token count is a density estimate: file byte size / 4. Completeness
// is the mean over 8 sub-metrics of min(1, actual/target): one per header
// record (target 1 each), entities (target 20), relations (target 30).
// Resolution potential is the completeness mean; traceability is the mean
// of {interconnections present, change_tracking present, relation ratio}.
//
// A malformed file degrades to a single worst-case result (cognitive load
// 1.0, all other scores 0, one parse-error issue) and never aborts a batch.
type knowledgeBaseScorer struct{}

func (knowledgeBaseScorer) score(name, content string) types.AuditResult {
	tokenCount := len(content) / 4

	counts := make(map[string]int)
	parsed := 0
	total := 0
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		total++
		var record struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal([]byte(line), &record); err != nil || record.Type == "" {
			continue
		}
		parsed++
		counts[record.Type]++
	}

	if total == 0 || parsed == 0 {
		return degradedKnowledgeBase(name, tokenCount, total)
	}

	subMetrics := make([]float64, 0, len(headerRecords)+2)
	for _, header := range headerRecords {
		subMetrics = append(subMetrics, ratioScore(float64(counts[header]), 1))
	}
	entityRatio := ratioScore(float64(counts[recEntity]), entityTarget)
	relationRatio := ratioScore(float64(counts[recRelation]), relationTarget)
	subMetrics = append(subMetrics, entityRatio, relationRatio)
	completeness := floatMean(subMetrics)

	result := types.AuditResult{
		Kind:                types.KindKnowledgeBase,
		Name:                name,
		TokenCount:          tokenCount,
		SectionCount:        total,
		CognitiveLoad:       ratioScore(float64(tokenCount), kbCognitiveBase),
		DisciplineScore:     float64(parsed) / float64(total),
		ResolutionPotential: completeness,
		TraceabilityScore: floatMean([]float64{
			ratioScore(float64(counts[recInterconnection]), 1),
			ratioScore(float64(counts[recChangeTracking]), 1),
			relationRatio,
		}),
	}

	for _, header := range headerRecords {
		if counts[header] == 0 {
			result.Issues = append(result.Issues, fmt.Sprintf("missing %s record", header))
		}
	}
	if counts[recEntity] < entityTarget {
		result.Issues = append(result.Issues, fmt.Sprintf(
			"only %d entity records (target %d)", counts[recEntity], entityTarget))
	}
	if bad := total - parsed; bad > 0 {
		result.Issues = append(result.Issues, fmt.Sprintf("%d unparseable records skipped", bad))
	}

	// Populating entities is only actionable when the graph structure is
	// otherwise intact.
	if counts[recEntity] < entityTarget && completeness > 0.5 {
		result.Suggestions = append(result.Suggestions,
			"populate entity records from recent session extractions")
	}

	return result
}

// degradedKnowledgeBase is the worst-case result for malformed input.
func degradedKnowledgeBase(name string, tokenCount, lines int) types.AuditResult {
	return types.AuditResult{
		Kind:          types.KindKnowledgeBase,
		Name:          name,
		TokenCount:    tokenCount,
		SectionCount:  lines,
		CognitiveLoad: 1.0,
		Issues: []string{
			fmt.Sprintf("knowledge base parse error: no valid records in %d lines", lines),
		},
	}
}

// floatMean averages ratio sub-metrics; empty input scores 0.
func floatMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
