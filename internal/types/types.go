// Package types defines the shared data model for the agentaudit pipeline:
// corpus mining, artifact scoring, session simulation, and optimization.
package types

import "time"

// Complexity categorizes a session by how demanding it was.
type Complexity string

const (
	// ComplexitySimple is a short, single-concern session.
	ComplexitySimple Complexity = "Simple"

	// ComplexityMedium is a multi-task session within one area.
	ComplexityMedium Complexity = "Medium"

	// ComplexityComplex is a long, cross-cutting session.
	ComplexityComplex Complexity = "Complex"
)

// Complexities lists all categories in canonical table order.
// Cumulative-weight draws and tie breaks depend on this order.
var Complexities = []Complexity{ComplexitySimple, ComplexityMedium, ComplexityComplex}

// ComplianceRates holds per-corpus compliance ratios, each in [0, 1].
// Each rate is the fraction of documents carrying the named marker.
type ComplianceRates struct {
	// WorkflowLogRate is the fraction of sessions with a workflow log section.
	WorkflowLogRate float64 `json:"workflow_log_rate" yaml:"workflow_log_rate"`

	// SkillUsageRate is the fraction of sessions declaring loaded skills.
	SkillUsageRate float64 `json:"skill_usage_rate" yaml:"skill_usage_rate"`

	// KnowledgeRefRate is the fraction of sessions referencing the knowledge base.
	KnowledgeRefRate float64 `json:"knowledge_ref_rate" yaml:"knowledge_ref_rate"`

	// GateRate is the fraction of sessions with both START and END phase markers.
	GateRate float64 `json:"gate_rate" yaml:"gate_rate"`
}

// PatternProfile is the aggregate statistical summary of a session-log corpus.
// It is computed once per scan and treated as immutable afterwards.
type PatternProfile struct {
	// DurationAvg is the mean session duration in minutes.
	DurationAvg float64 `json:"duration_avg" yaml:"duration_avg"`

	// DurationStd is the population standard deviation of duration.
	DurationStd float64 `json:"duration_std" yaml:"duration_std"`

	// TasksAvg is the mean task count per session.
	TasksAvg float64 `json:"tasks_avg" yaml:"tasks_avg"`

	// TasksStd is the population standard deviation of task count.
	TasksStd float64 `json:"tasks_std" yaml:"tasks_std"`

	// FilesAvg is the mean number of files touched per session.
	FilesAvg float64 `json:"files_avg" yaml:"files_avg"`

	// SkillsAvg is the mean number of skills used per session.
	SkillsAvg float64 `json:"skills_avg" yaml:"skills_avg"`

	// ComplexityDist holds relative weights per complexity category.
	ComplexityDist map[Complexity]float64 `json:"complexity_dist" yaml:"complexity_dist"`

	// ProblemRate is the fraction of sessions that hit a problem marker.
	ProblemRate float64 `json:"problem_rate" yaml:"problem_rate"`

	// Compliance holds the per-marker compliance ratios.
	Compliance ComplianceRates `json:"compliance" yaml:"compliance"`

	// TotalSourceDocuments is how many documents contributed observations.
	TotalSourceDocuments int `json:"total_source_documents" yaml:"total_source_documents"`

	// Default is true when the documented fallback profile was used
	// because the corpus had no usable documents.
	Default bool `json:"default" yaml:"default"`
}

// DefaultProfile returns the documented fallback profile used when the
// corpus yields zero usable documents.
func DefaultProfile() *PatternProfile {
	return &PatternProfile{
		DurationAvg: 20,
		DurationStd: 15,
		TasksAvg:    5,
		TasksStd:    3,
		FilesAvg:    4,
		SkillsAvg:   2,
		ComplexityDist: map[Complexity]float64{
			ComplexitySimple:  40,
			ComplexityMedium:  40,
			ComplexityComplex: 20,
		},
		ProblemRate: 0.15,
		Compliance: ComplianceRates{
			WorkflowLogRate:  0.70,
			SkillUsageRate:   0.65,
			KnowledgeRefRate: 0.60,
			GateRate:         0.85,
		},
		TotalSourceDocuments: 0,
		Default:              true,
	}
}

// ArtifactKind identifies which scoring rules apply to an artifact.
type ArtifactKind string

const (
	// KindAgent is the top-level agent instruction document.
	KindAgent ArtifactKind = "agent"

	// KindInstruction is a per-task instruction document.
	KindInstruction ArtifactKind = "instruction"

	// KindSkill is a skill definition document.
	KindSkill ArtifactKind = "skill"

	// KindKnowledgeBase is the JSONL knowledge graph file.
	KindKnowledgeBase ArtifactKind = "knowledge-base"
)

// AuditResult is the per-artifact structural score. All four scores are
// in [0, 1] and each is the mean of a fixed indicator set for the kind.
type AuditResult struct {
	// Kind selects the scoring rules that produced this result.
	Kind ArtifactKind `json:"kind" yaml:"kind"`

	// Name identifies the artifact (file name or logical id).
	Name string `json:"name" yaml:"name"`

	// TokenCount is the word count, or byte size / 4 for the knowledge base.
	TokenCount int `json:"token_count" yaml:"token_count"`

	// SectionCount is the number of heading markers.
	SectionCount int `json:"section_count" yaml:"section_count"`

	// CognitiveLoad estimates reading burden (higher is worse).
	CognitiveLoad float64 `json:"cognitive_load" yaml:"cognitive_load"`

	// DisciplineScore estimates how well rules and protocol are encoded.
	DisciplineScore float64 `json:"discipline_score" yaml:"discipline_score"`

	// ResolutionPotential estimates how well the artifact supports recovery.
	ResolutionPotential float64 `json:"resolution_potential" yaml:"resolution_potential"`

	// TraceabilityScore estimates how well outcomes can be traced back.
	TraceabilityScore float64 `json:"traceability_score" yaml:"traceability_score"`

	// Issues lists violated thresholds and missing required markers.
	Issues []string `json:"issues,omitempty" yaml:"issues,omitempty"`

	// Suggestions lists structural edits worth considering.
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// SessionMetrics is one simulated session draw. Values are aggregated
// into a SimulationResult and then discarded.
type SessionMetrics struct {
	Complexity     Complexity `json:"complexity"`
	Duration       float64    `json:"duration"`
	Tokens         float64    `json:"tokens"`
	APICalls       float64    `json:"api_calls"`
	TasksCompleted int        `json:"tasks_completed"`
	TasksTotal     int        `json:"tasks_total"`
	CognitiveLoad  float64    `json:"cognitive_load"`
	Discipline     float64    `json:"discipline"`
	Traceability   float64    `json:"traceability"`

	// ResolutionEffectiveness is completion rate times discipline. It is
	// derived from the other draws with no independent noise so the causal
	// link between discipline and outcome survives aggregation.
	ResolutionEffectiveness float64 `json:"resolution_effectiveness"`
}

// SimulationResult is the immutable aggregate over N simulated sessions.
type SimulationResult struct {
	// Sessions is the number of draws aggregated.
	Sessions int `json:"sessions" yaml:"sessions"`

	AvgDuration float64 `json:"avg_duration" yaml:"avg_duration"`
	P50Duration float64 `json:"p50_duration" yaml:"p50_duration"`
	P95Duration float64 `json:"p95_duration" yaml:"p95_duration"`

	AvgTokens   float64 `json:"avg_tokens" yaml:"avg_tokens"`
	AvgAPICalls float64 `json:"avg_api_calls" yaml:"avg_api_calls"`

	AvgTasksCompleted float64 `json:"avg_tasks_completed" yaml:"avg_tasks_completed"`
	AvgTasksTotal     float64 `json:"avg_tasks_total" yaml:"avg_tasks_total"`

	// CompletionRate is mean(tasks_completed) / mean(tasks_total).
	CompletionRate float64 `json:"completion_rate" yaml:"completion_rate"`

	// FailureRate is the fraction of sessions completing under half their tasks.
	FailureRate float64 `json:"failure_rate" yaml:"failure_rate"`

	AvgCognitiveLoad float64 `json:"avg_cognitive_load" yaml:"avg_cognitive_load"`
	AvgDiscipline    float64 `json:"avg_discipline" yaml:"avg_discipline"`
	AvgResolution    float64 `json:"avg_resolution" yaml:"avg_resolution"`
	AvgTraceability  float64 `json:"avg_traceability" yaml:"avg_traceability"`

	// ComplexityDistribution counts sessions per category.
	ComplexityDistribution map[Complexity]int `json:"complexity_distribution" yaml:"complexity_distribution"`

	// ImprovementPotential maps metric name to the gap against its fixed
	// target, zero when the target is already met.
	ImprovementPotential map[string]float64 `json:"improvement_potential" yaml:"improvement_potential"`
}

// ProposalType tags the kind of structural edit a Proposal suggests.
type ProposalType string

const (
	// ProposalOffload moves a subsection into a separate document.
	ProposalOffload ProposalType = "offload"

	// ProposalConsolidate merges overlapping sections.
	ProposalConsolidate ProposalType = "consolidate"

	// ProposalReference replaces inline detail with a reference link.
	ProposalReference ProposalType = "reference"

	// ProposalCompress rewrites toward a word target.
	ProposalCompress ProposalType = "compress"

	// ProposalImproveDescription strengthens weak markers or descriptions.
	ProposalImproveDescription ProposalType = "improve_description"

	// ProposalPopulate fills underpopulated knowledge-base records.
	ProposalPopulate ProposalType = "populate"

	// ProposalGenerate creates a missing or unparseable artifact from scratch.
	ProposalGenerate ProposalType = "generate"
)

// Proposal is a suggested structural edit with its estimated effect.
// Proposals never mutate artifacts; they are simulation inputs only.
type Proposal struct {
	// Type is the edit category.
	Type ProposalType `json:"type" yaml:"type"`

	// Target is the artifact this proposal applies to.
	Target string `json:"target" yaml:"target"`

	// TokenReduction is the estimated word-count saving.
	TokenReduction int `json:"token_reduction" yaml:"token_reduction"`

	// CognitiveReduction is the estimated cognitive load saving.
	CognitiveReduction float64 `json:"cognitive_reduction" yaml:"cognitive_reduction"`

	// Rationale explains why the edit is expected to help.
	Rationale string `json:"rationale" yaml:"rationale"`
}

// BaselineSnapshot is the persisted comparison point for later runs.
// Written as a whole-file overwrite.
type BaselineSnapshot struct {
	// Profile is the pattern profile the baseline was simulated against.
	Profile *PatternProfile `json:"profile"`

	// Result is the baseline simulation result.
	Result *SimulationResult `json:"result"`

	// ComponentCount is how many artifacts were audited.
	ComponentCount int `json:"component_count"`

	// CapturedAt is when the snapshot was written.
	CapturedAt time.Time `json:"captured_at"`
}
