package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/boshu2/agentaudit/internal/config"
	"github.com/boshu2/agentaudit/internal/report"
)

func TestMineProfile_MissingCorpusUsesDefault(t *testing.T) {
	cfg := config.Default()
	cfg.Corpus.Dir = filepath.Join(t.TempDir(), "absent")

	profile, source := mineProfile(cfg)

	if source != report.SourceDefault {
		t.Errorf("expected default source, got %q", source)
	}
	if !profile.Default || profile.TotalSourceDocuments != 0 {
		t.Errorf("expected default profile with zero documents, got %+v", profile)
	}
	if profile.DurationAvg != 20 {
		t.Errorf("expected default duration 20, got %f", profile.DurationAvg)
	}
}

func TestScoreArtifacts_MissingSources(t *testing.T) {
	cfg := config.Default()
	dir := t.TempDir()
	cfg.Artifacts.AgentFile = filepath.Join(dir, "AGENTS.md")
	cfg.Artifacts.InstructionsDir = filepath.Join(dir, "instructions")
	cfg.Artifacts.SkillsDir = filepath.Join(dir, "skills")
	cfg.Artifacts.KnowledgeFile = filepath.Join(dir, "project_knowledge.json")

	if audits := scoreArtifacts(cfg); len(audits) != 0 {
		t.Errorf("expected no audits from missing sources, got %d", len(audits))
	}
}

func TestEncode_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := encode(&buf, "yaml", map[string]int{"sessions": 5}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(buf.String(), "sessions: 5") {
		t.Errorf("unexpected yaml output: %q", buf.String())
	}
}

func TestEncode_JSONDefault(t *testing.T) {
	var buf bytes.Buffer
	if err := encode(&buf, "", map[string]int{"sessions": 5}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(buf.String(), `"sessions": 5`) {
		t.Errorf("unexpected json output: %q", buf.String())
	}
}

func TestPct(t *testing.T) {
	if got := pct(200, 150); got != -25 {
		t.Errorf("pct(200, 150) = %f, want -25", got)
	}
	if got := pct(0, 150); got != 0 {
		t.Errorf("pct with zero base should be 0, got %f", got)
	}
}
