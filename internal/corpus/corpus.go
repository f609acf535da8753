// Package corpus mines historical session workflow logs into a single
// aggregate PatternProfile used to parameterize simulation.
package corpus

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/boshu2/agentaudit/internal/logging"
	"github.com/boshu2/agentaudit/internal/types"
)

// Observation is what one session log contributes to the profile.
type Observation struct {
	Duration   float64
	TasksDone  int
	TasksTotal int
	Files      int
	Skills     int
	Complexity types.Complexity

	HasWorkflowLog  bool
	HasSkillUsage   bool
	HasKnowledgeRef bool
	HasGates        bool
	HasProblem      bool
}

// Parser scans a corpus directory and aggregates per-document observations.
type Parser struct {
	log *slog.Logger
}

// NewParser creates a corpus parser.
func NewParser() *Parser {
	return &Parser{log: logging.New("corpus")}
}

// ScanDir reads every markdown document under dir and aggregates the usable
// ones into a profile. A missing or empty directory is not an error: the
// documented default profile is returned instead.
func (p *Parser) ScanDir(dir string) *types.PatternProfile {
	entries, err := os.ReadDir(dir)
	if err != nil {
		p.log.Debug("corpus directory unavailable", "dir", dir, "error", err)
		return types.DefaultProfile()
	}

	var observations []Observation
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			p.log.Debug("skipping unreadable document", "path", path, "error", err)
			continue
		}
		obs, ok := p.ParseDocument(string(data))
		if !ok {
			p.log.Debug("skipping unusable document", "path", path)
			continue
		}
		observations = append(observations, obs)
	}

	return Aggregate(observations)
}

// Aggregate reduces observations to a profile. Zero observations yields
// the documented default profile, never an undefined state.
func Aggregate(observations []Observation) *types.PatternProfile {
	if len(observations) == 0 {
		return types.DefaultProfile()
	}

	n := float64(len(observations))
	durations := make([]float64, 0, len(observations))
	taskTotals := make([]float64, 0, len(observations))
	var files, skills float64
	dist := make(map[types.Complexity]float64)
	var workflow, skillUse, knowledge, gates, problems float64

	for _, obs := range observations {
		durations = append(durations, obs.Duration)
		taskTotals = append(taskTotals, float64(obs.TasksTotal))
		files += float64(obs.Files)
		skills += float64(obs.Skills)
		dist[obs.Complexity]++
		if obs.HasWorkflowLog {
			workflow++
		}
		if obs.HasSkillUsage {
			skillUse++
		}
		if obs.HasKnowledgeRef {
			knowledge++
		}
		if obs.HasGates {
			gates++
		}
		if obs.HasProblem {
			problems++
		}
	}

	return &types.PatternProfile{
		DurationAvg:    mean(durations),
		DurationStd:    populationStd(durations),
		TasksAvg:       mean(taskTotals),
		TasksStd:       populationStd(taskTotals),
		FilesAvg:       files / n,
		SkillsAvg:      skills / n,
		ComplexityDist: dist,
		ProblemRate:    problems / n,
		Compliance: types.ComplianceRates{
			WorkflowLogRate:  workflow / n,
			SkillUsageRate:   skillUse / n,
			KnowledgeRefRate: knowledge / n,
			GateRate:         gates / n,
		},
		TotalSourceDocuments: len(observations),
	}
}

// mean returns the arithmetic mean, 0 for an empty series.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// populationStd returns the population standard deviation (N denominator).
func populationStd(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var sumSq float64
	for _, v := range values {
		d := v - m
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)))
}
