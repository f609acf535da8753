package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/boshu2/agentaudit/internal/audit"
	"github.com/boshu2/agentaudit/internal/config"
	"github.com/boshu2/agentaudit/internal/corpus"
	"github.com/boshu2/agentaudit/internal/report"
	"github.com/boshu2/agentaudit/internal/types"
)

// mineProfile scans the corpus directory and reports where the profile
// came from. A missing or empty corpus is not an error: the documented
// default profile is used and labeled as such.
func mineProfile(cfg *config.Config) (*types.PatternProfile, string) {
	profile := corpus.NewParser().ScanDir(cfg.Corpus.Dir)
	source := report.SourceCorpus
	if profile.Default {
		source = report.SourceDefault
	}
	return profile, source
}

// scoreArtifacts loads and scores every configured artifact source.
// Missing sources are skipped, never fatal.
func scoreArtifacts(cfg *config.Config) []types.AuditResult {
	artifacts := audit.LoadArtifacts(audit.Sources{
		AgentFile:       cfg.Artifacts.AgentFile,
		InstructionsDir: cfg.Artifacts.InstructionsDir,
		SkillsDir:       cfg.Artifacts.SkillsDir,
		KnowledgeFile:   cfg.Artifacts.KnowledgeFile,
	})
	return audit.ScoreAll(artifacts)
}

// encode writes v in the requested structured format.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

// writeReport renders the report in the configured format.
func writeReport(cfg *config.Config, rep *report.Report) error {
	switch cfg.Output {
	case "json":
		return rep.WriteJSON(os.Stdout)
	case "yaml":
		return rep.WriteYAML(os.Stdout)
	case "markdown":
		return rep.WriteMarkdown(os.Stdout)
	default:
		return rep.WriteTable(os.Stdout)
	}
}

// printProfile renders a pattern profile for terminal output.
func printProfile(profile *types.PatternProfile, source string) {
	fmt.Println()
	fmt.Println("Corpus Pattern Profile")
	fmt.Println("======================")
	fmt.Printf("Source: %s (%d documents)\n\n", source, profile.TotalSourceDocuments)

	fmt.Println("SESSIONS:")
	fmt.Printf("  Duration:   %.1fm avg (std %.1f)\n", profile.DurationAvg, profile.DurationStd)
	fmt.Printf("  Tasks:      %.1f avg (std %.1f)\n", profile.TasksAvg, profile.TasksStd)
	fmt.Printf("  Files:      %.1f avg\n", profile.FilesAvg)
	fmt.Printf("  Skills:     %.1f avg\n", profile.SkillsAvg)
	fmt.Printf("  Problems:   %.0f%% of sessions\n", profile.ProblemRate*100)
	fmt.Println()

	fmt.Println("COMPLEXITY:")
	for _, c := range types.Complexities {
		if w, ok := profile.ComplexityDist[c]; ok {
			fmt.Printf("  %-8s %.0f\n", c, w)
		}
	}
	fmt.Println()

	fmt.Println("COMPLIANCE:")
	fmt.Printf("  Workflow logs:   %.0f%%\n", profile.Compliance.WorkflowLogRate*100)
	fmt.Printf("  Skill usage:     %.0f%%\n", profile.Compliance.SkillUsageRate*100)
	fmt.Printf("  Knowledge refs:  %.0f%%\n", profile.Compliance.KnowledgeRefRate*100)
	fmt.Printf("  Phase gates:     %.0f%%\n", profile.Compliance.GateRate*100)
}
