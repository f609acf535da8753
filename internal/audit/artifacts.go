package audit

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/boshu2/agentaudit/internal/logging"
	"github.com/boshu2/agentaudit/internal/types"
)

// Artifact is one governance document queued for scoring.
type Artifact struct {
	Kind    types.ArtifactKind
	Name    string
	Content string
}

// Sources names the externally owned artifact locations. Any of them may
// be missing; missing sources contribute nothing and are not an error.
type Sources struct {
	// AgentFile is the top-level agent instruction document.
	AgentFile string

	// InstructionsDir holds per-task instruction documents (*.md).
	InstructionsDir string

	// SkillsDir holds skill documents, either flat *.md files or
	// skill-name/SKILL.md subdirectories.
	SkillsDir string

	// KnowledgeFile is the JSONL knowledge graph.
	KnowledgeFile string
}

// LoadArtifacts collects every readable artifact from the given sources.
func LoadArtifacts(src Sources) []Artifact {
	log := logging.New("audit")
	var artifacts []Artifact

	if a, ok := loadFile(types.KindAgent, src.AgentFile); ok {
		artifacts = append(artifacts, a)
	} else if src.AgentFile != "" {
		log.Debug("agent file unavailable", "path", src.AgentFile)
	}

	artifacts = append(artifacts, loadMarkdownDir(types.KindInstruction, src.InstructionsDir)...)
	artifacts = append(artifacts, loadSkills(src.SkillsDir)...)

	if a, ok := loadFile(types.KindKnowledgeBase, src.KnowledgeFile); ok {
		artifacts = append(artifacts, a)
	} else if src.KnowledgeFile != "" {
		log.Debug("knowledge file unavailable", "path", src.KnowledgeFile)
	}

	return artifacts
}

func loadFile(kind types.ArtifactKind, path string) (Artifact, bool) {
	if path == "" {
		return Artifact{}, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Artifact{}, false
	}
	return Artifact{Kind: kind, Name: filepath.Base(path), Content: string(data)}, true
}

func loadMarkdownDir(kind types.ArtifactKind, dir string) []Artifact {
	if dir == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var artifacts []Artifact
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		if a, ok := loadFile(kind, filepath.Join(dir, entry.Name())); ok {
			artifacts = append(artifacts, a)
		}
	}
	return artifacts
}

// loadSkills accepts both flat markdown files and the conventional
// skill-name/SKILL.md layout.
func loadSkills(dir string) []Artifact {
	if dir == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var artifacts []Artifact
	for _, entry := range entries {
		if entry.IsDir() {
			path := filepath.Join(dir, entry.Name(), "SKILL.md")
			if a, ok := loadFile(types.KindSkill, path); ok {
				a.Name = entry.Name()
				artifacts = append(artifacts, a)
			}
			continue
		}
		if strings.HasSuffix(entry.Name(), ".md") {
			if a, ok := loadFile(types.KindSkill, filepath.Join(dir, entry.Name())); ok {
				artifacts = append(artifacts, a)
			}
		}
	}
	return artifacts
}
