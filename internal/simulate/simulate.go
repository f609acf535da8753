// Package simulate generates synthetic sessions parameterized by a
// mined PatternProfile and a set of artifact AuditResults, and
// aggregates them into a SimulationResult.
//
// Every session index gets its own deterministically seeded generator
// (seed == index). The session sequence for a given count is therefore
// byte-identical across runs, machines, and worker counts, so any
// difference between two runs is attributable only to input parameters.
// Do not replace the per-index reseeding with a single advanced stream:
// baseline/optimized comparability depends on it.
package simulate

import (
	"math"
	"math/rand"
	"sort"

	"github.com/boshu2/agentaudit/internal/types"
)

// Floors applied to raw draws.
const (
	minDuration = 5.0
	minTasks    = 1
	minTokens   = 500.0
	minAPICalls = 3.0
)

// Per-complexity completion base rates.
var completionBase = map[types.Complexity]float64{
	types.ComplexitySimple:  0.95,
	types.ComplexityMedium:  0.88,
	types.ComplexityComplex: 0.78,
}

// Per-complexity API call multipliers.
var apiMultiplier = map[types.Complexity]float64{
	types.ComplexitySimple:  1.0,
	types.ComplexityMedium:  1.5,
	types.ComplexityComplex: 2.5,
}

// Fixed aggregate targets for the improvement-potential gap report.
const (
	targetTokens       = 1500.0
	targetAPICalls     = 8.0
	targetCognitive    = 0.4
	targetDiscipline   = 0.95
	targetResolution   = 0.90
	targetTraceability = 0.85
)

// componentSummary condenses the audit set into the means the session
// draws consume.
type componentSummary struct {
	tokenMean        float64
	cognitiveMean    float64
	disciplineMean   float64
	traceabilityMean float64
}

func summarize(audits []types.AuditResult) componentSummary {
	if len(audits) == 0 {
		return componentSummary{}
	}
	var s componentSummary
	for _, a := range audits {
		s.tokenMean += float64(a.TokenCount)
		s.cognitiveMean += a.CognitiveLoad
		s.disciplineMean += a.DisciplineScore
		s.traceabilityMean += a.TraceabilityScore
	}
	n := float64(len(audits))
	s.tokenMean /= n
	s.cognitiveMean /= n
	s.disciplineMean /= n
	s.traceabilityMean /= n
	return s
}

// Simulator produces SimulationResults from a profile and audit set.
type Simulator struct {
	profile *types.PatternProfile
	summary componentSummary

	// Workers shards session generation when > 1. Sharding never
	// changes the result: sessions are pure functions of their index.
	Workers int
}

// New builds a simulator. The profile is required; an empty audit set is
// legal and yields conservative component means.
func New(profile *types.PatternProfile, audits []types.AuditResult) (*Simulator, error) {
	if profile == nil {
		return nil, types.ErrNilProfile
	}
	return &Simulator{
		profile: profile,
		summary: summarize(audits),
	}, nil
}

// Simulate draws count sessions and aggregates them. A non-positive
// count is a hard configuration error surfaced before any work.
func (s *Simulator) Simulate(count int) (*types.SimulationResult, error) {
	if count < 1 {
		return nil, types.ErrInvalidSessionCount
	}

	sessions := make([]types.SessionMetrics, count)
	if s.Workers > 1 {
		s.generateSharded(sessions)
	} else {
		for i := range sessions {
			sessions[i] = s.session(i)
		}
	}

	return aggregate(sessions), nil
}

// session draws one synthetic session from its dedicated generator.
func (s *Simulator) session(index int) types.SessionMetrics {
	rng := rand.New(rand.NewSource(int64(index)))

	complexity := drawComplexity(rng, s.profile.ComplexityDist)

	duration := rng.NormFloat64()*s.profile.DurationStd + s.profile.DurationAvg
	if duration < minDuration {
		duration = minDuration
	}

	tasksTotal := int(rng.NormFloat64()*s.profile.TasksStd + s.profile.TasksAvg)
	if tasksTotal < minTasks {
		tasksTotal = minTasks
	}

	completionRate := completionBase[complexity] + (s.summary.disciplineMean-0.5)*0.2
	if completionRate > 1.0 {
		completionRate = 1.0
	}
	tasksCompleted := int(float64(tasksTotal) * completionRate)

	tokenBase := s.summary.tokenMean * (1 + float64(tasksTotal)*0.3)
	tokens := tokenBase + rng.NormFloat64()*0.2*tokenBase
	if tokens < minTokens {
		tokens = minTokens
	}

	apiBase := float64(tasksTotal) * 3 * apiMultiplier[complexity]
	apiCalls := apiBase + rng.NormFloat64()*0.3*apiBase
	if apiCalls < minAPICalls {
		apiCalls = minAPICalls
	}

	cognitive := clampScore(s.summary.cognitiveMean + rng.NormFloat64()*0.1)
	discipline := clampScore(s.summary.disciplineMean + rng.NormFloat64()*0.1)
	traceability := clampScore(s.summary.traceabilityMean + rng.NormFloat64()*0.1)

	return types.SessionMetrics{
		Complexity:     complexity,
		Duration:       duration,
		Tokens:         tokens,
		APICalls:       apiCalls,
		TasksCompleted: tasksCompleted,
		TasksTotal:     tasksTotal,
		CognitiveLoad:  cognitive,
		Discipline:     discipline,
		Traceability:   traceability,

		// Derived from the two upstream draws with no independent noise,
		// preserving the causal link between discipline and outcome.
		ResolutionEffectiveness: completionRate * discipline,
	}
}

// drawComplexity makes one uniform draw over cumulative weights in
// canonical table order; ties break by that order. Zero total weight
// falls back to Simple.
func drawComplexity(rng *rand.Rand, dist map[types.Complexity]float64) types.Complexity {
	var total float64
	for _, c := range types.Complexities {
		if w := dist[c]; w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return types.ComplexitySimple
	}

	u := rng.Float64() * total
	var cumulative float64
	for _, c := range types.Complexities {
		w := dist[c]
		if w <= 0 {
			continue
		}
		cumulative += w
		if u < cumulative {
			return c
		}
	}
	return types.Complexities[len(types.Complexities)-1]
}

// clampScore clamps a noisy score draw to [0.1, 1.0].
func clampScore(v float64) float64 {
	if v < 0.1 {
		return 0.1
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}

// aggregate folds all sessions into the immutable result.
func aggregate(sessions []types.SessionMetrics) *types.SimulationResult {
	n := len(sessions)
	nf := float64(n)

	durations := make([]float64, 0, n)
	dist := make(map[types.Complexity]int)
	result := &types.SimulationResult{
		Sessions:               n,
		ComplexityDistribution: dist,
	}

	var completed, total float64
	failures := 0
	for _, sess := range sessions {
		durations = append(durations, sess.Duration)
		dist[sess.Complexity]++

		result.AvgDuration += sess.Duration
		result.AvgTokens += sess.Tokens
		result.AvgAPICalls += sess.APICalls
		result.AvgCognitiveLoad += sess.CognitiveLoad
		result.AvgDiscipline += sess.Discipline
		result.AvgResolution += sess.ResolutionEffectiveness
		result.AvgTraceability += sess.Traceability

		completed += float64(sess.TasksCompleted)
		total += float64(sess.TasksTotal)
		if float64(sess.TasksCompleted) < 0.5*float64(sess.TasksTotal) {
			failures++
		}
	}

	result.AvgDuration /= nf
	result.AvgTokens /= nf
	result.AvgAPICalls /= nf
	result.AvgCognitiveLoad /= nf
	result.AvgDiscipline /= nf
	result.AvgResolution /= nf
	result.AvgTraceability /= nf
	result.AvgTasksCompleted = completed / nf
	result.AvgTasksTotal = total / nf
	if total > 0 {
		result.CompletionRate = completed / total
	}
	result.FailureRate = float64(failures) / nf

	sort.Float64s(durations)
	result.P50Duration = durations[n/2]
	result.P95Duration = durations[percentileIndex(n, 0.95)]

	result.ImprovementPotential = improvementPotential(result)
	return result
}

// percentileIndex returns the 0-based index of the 1-based ⌈q·N⌉ element.
func percentileIndex(n int, q float64) int {
	idx := int(math.Ceil(q*float64(n))) - 1
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

// improvementPotential reports the gap to each fixed target, zero when
// the target is already met.
func improvementPotential(r *types.SimulationResult) map[string]float64 {
	return map[string]float64{
		"token_usage":    gapAbove(r.AvgTokens, targetTokens),
		"api_calls":      gapAbove(r.AvgAPICalls, targetAPICalls),
		"cognitive_load": gapAbove(r.AvgCognitiveLoad, targetCognitive),
		"discipline":     gapBelow(r.AvgDiscipline, targetDiscipline),
		"resolution":     gapBelow(r.AvgResolution, targetResolution),
		"traceability":   gapBelow(r.AvgTraceability, targetTraceability),
	}
}

// gapAbove is the overshoot of a lower-is-better metric.
func gapAbove(value, target float64) float64 {
	if value <= target {
		return 0
	}
	return value - target
}

// gapBelow is the shortfall of a higher-is-better metric.
func gapBelow(value, target float64) float64 {
	if value >= target {
		return 0
	}
	return target - value
}
