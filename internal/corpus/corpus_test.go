package corpus

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/boshu2/agentaudit/internal/logging"
	"github.com/boshu2/agentaudit/internal/types"
)

func TestMain(m *testing.M) {
	logging.Init(slog.LevelError, "json")
	os.Exit(m.Run())
}

func TestAggregate_EmptyYieldsDefaultProfile(t *testing.T) {
	profile := Aggregate(nil)

	if !profile.Default {
		t.Error("expected default flag for empty corpus")
	}
	if profile.TotalSourceDocuments != 0 {
		t.Errorf("expected 0 source documents, got %d", profile.TotalSourceDocuments)
	}
	if profile.DurationAvg != 20 {
		t.Errorf("expected default duration_avg 20, got %f", profile.DurationAvg)
	}
	if profile.ComplexityDist[types.ComplexitySimple] != 40 {
		t.Errorf("expected Simple weight 40, got %f", profile.ComplexityDist[types.ComplexitySimple])
	}
	if profile.ProblemRate != 0.15 {
		t.Errorf("expected default problem rate 0.15, got %f", profile.ProblemRate)
	}
}

func TestAggregate_PopulationStd(t *testing.T) {
	observations := []Observation{
		{Duration: 10, TasksTotal: 2, Complexity: types.ComplexitySimple},
		{Duration: 20, TasksTotal: 4, Complexity: types.ComplexityMedium},
		{Duration: 30, TasksTotal: 6, Complexity: types.ComplexityComplex},
	}
	profile := Aggregate(observations)

	if profile.DurationAvg != 20 {
		t.Errorf("expected mean 20, got %f", profile.DurationAvg)
	}
	// Population std with N denominator: sqrt((100+0+100)/3)
	want := math.Sqrt(200.0 / 3.0)
	if math.Abs(profile.DurationStd-want) > 1e-9 {
		t.Errorf("expected population std %f, got %f", want, profile.DurationStd)
	}
	if profile.Default {
		t.Error("corpus-derived profile must not carry the default flag")
	}
	if profile.TotalSourceDocuments != 3 {
		t.Errorf("expected 3 source documents, got %d", profile.TotalSourceDocuments)
	}
}

func TestAggregate_ComplianceRatios(t *testing.T) {
	observations := []Observation{
		{HasWorkflowLog: true, HasSkillUsage: true, HasProblem: true},
		{HasWorkflowLog: true},
		{},
		{},
	}
	profile := Aggregate(observations)

	if profile.Compliance.WorkflowLogRate != 0.5 {
		t.Errorf("expected workflow rate 0.5, got %f", profile.Compliance.WorkflowLogRate)
	}
	if profile.Compliance.SkillUsageRate != 0.25 {
		t.Errorf("expected skill rate 0.25, got %f", profile.Compliance.SkillUsageRate)
	}
	if profile.ProblemRate != 0.25 {
		t.Errorf("expected problem rate 0.25, got %f", profile.ProblemRate)
	}
}

func TestParseDocument_Frontmatter(t *testing.T) {
	content := `---
session: 42
duration: 45m
complexity: complex
skills:
  - backend-api
  - testing
files:
  - internal/server/handler.go
  - internal/server/handler_test.go
---
## Work
✓ wire handler
✓ add tests
◆ docs pass
`
	p := NewParser()
	obs, ok := p.ParseDocument(content)
	if !ok {
		t.Fatal("expected usable observation")
	}
	if obs.Duration != 45 {
		t.Errorf("expected duration 45, got %f", obs.Duration)
	}
	if obs.TasksDone != 2 || obs.TasksTotal != 3 {
		t.Errorf("expected 2/3 tasks, got %d/%d", obs.TasksDone, obs.TasksTotal)
	}
	if obs.Skills != 2 {
		t.Errorf("expected 2 skills, got %d", obs.Skills)
	}
	if obs.Files != 2 {
		t.Errorf("expected 2 files, got %d", obs.Files)
	}
	if obs.Complexity != types.ComplexityComplex {
		t.Errorf("expected explicit complexity label to win, got %s", obs.Complexity)
	}
	if !obs.HasWorkflowLog || !obs.HasSkillUsage {
		t.Error("expected session: and skills: markers to be detected")
	}
}

func TestParseDocument_FreeFormFallback(t *testing.T) {
	content := `Session notes

Spent about 30 minutes chasing a flaky test.
✓ reproduce
✓ fix
✓ verify
Referenced the knowledge graph for the fixture layout.
`
	p := NewParser()
	obs, ok := p.ParseDocument(content)
	if !ok {
		t.Fatal("expected usable observation")
	}
	if obs.Duration != 30 {
		t.Errorf("expected duration 30 from keyword match, got %f", obs.Duration)
	}
	if obs.TasksTotal != 3 {
		t.Errorf("expected 3 tasks, got %d", obs.TasksTotal)
	}
	if obs.Complexity != types.ComplexityMedium {
		t.Errorf("expected Medium from 3 tasks, got %s", obs.Complexity)
	}
	if !obs.HasKnowledgeRef {
		t.Error("expected knowledge graph reference to be detected")
	}
}

func TestParseDocument_DurationDefault(t *testing.T) {
	p := NewParser()
	obs, ok := p.ParseDocument("✓ one thing, no timing info")
	if !ok {
		t.Fatal("expected usable observation")
	}
	if obs.Duration != defaultDuration {
		t.Errorf("expected default duration %d, got %f", defaultDuration, obs.Duration)
	}
}

func TestParseDocument_DurationPatternPriority(t *testing.T) {
	// Both an explicit duration: line and a loose "minutes" mention exist;
	// the more specific pattern must win.
	content := "duration: 50m\nwaited 5 minutes for CI\n"
	p := NewParser()
	obs, _ := p.ParseDocument(content)
	if obs.Duration != 50 {
		t.Errorf("expected specific pattern to win with 50, got %f", obs.Duration)
	}
}

func TestParseDocument_ComplexityBuckets(t *testing.T) {
	tests := []struct {
		name  string
		tasks int
		want  types.Complexity
	}{
		{"zero tasks", 0, types.ComplexitySimple},
		{"two tasks", 2, types.ComplexitySimple},
		{"three tasks", 3, types.ComplexityMedium},
		{"five tasks", 5, types.ComplexityMedium},
		{"six tasks", 6, types.ComplexityComplex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractComplexity("", nil, tt.tasks)
			if got != tt.want {
				t.Errorf("tasks=%d: expected %s, got %s", tt.tasks, tt.want, got)
			}
		})
	}
}

func TestParseDocument_Empty(t *testing.T) {
	p := NewParser()
	if _, ok := p.ParseDocument("   \n  "); ok {
		t.Error("expected blank document to be unusable")
	}
}

func TestParseDocument_MalformedFrontmatterNotFatal(t *testing.T) {
	content := "---\n: : not yaml [\n---\n✓ did the thing in 25 minutes\n"
	p := NewParser()
	obs, ok := p.ParseDocument(content)
	if !ok {
		t.Fatal("malformed frontmatter must fall back, not fail")
	}
	if obs.Duration != 25 {
		t.Errorf("expected fallback extraction to find 25, got %f", obs.Duration)
	}
}

func TestScanDir_MissingDirYieldsDefault(t *testing.T) {
	p := NewParser()
	profile := p.ScanDir(filepath.Join(t.TempDir(), "does-not-exist"))
	if !profile.Default {
		t.Error("expected default profile for missing directory")
	}
}

func TestScanDir_SkipsNonMarkdown(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "session-001.md"), "duration: 10m\n✓ a\n✓ b\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "duration: 99m\n")

	p := NewParser()
	profile := p.ScanDir(dir)

	if profile.TotalSourceDocuments != 1 {
		t.Fatalf("expected 1 document, got %d", profile.TotalSourceDocuments)
	}
	if profile.DurationAvg != 10 {
		t.Errorf("expected duration 10, got %f", profile.DurationAvg)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}
