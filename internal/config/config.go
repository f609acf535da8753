// Package config provides configuration management for agentaudit.
// Configuration is loaded from (highest to lowest priority):
// 1. Command-line flags
// 2. Environment variables (AGENTAUDIT_*)
// 3. Project config (.agentaudit/config.yaml in cwd)
// 4. Home config (~/.agentaudit/config.yaml)
// 5. Defaults
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all agentaudit configuration.
type Config struct {
	// Output controls the default output format (table, json, yaml, markdown).
	Output string `yaml:"output" json:"output"`

	// BaseDir is the agentaudit data directory (default: .agentaudit).
	BaseDir string `yaml:"base_dir" json:"base_dir"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose" json:"verbose"`

	// Corpus settings
	Corpus CorpusConfig `yaml:"corpus" json:"corpus"`

	// Artifacts settings for artifact locations (configurable, not hardcoded)
	Artifacts ArtifactsConfig `yaml:"artifacts" json:"artifacts"`

	// Simulation settings
	Simulation SimulationConfig `yaml:"simulation" json:"simulation"`
}

// CorpusConfig holds corpus mining settings.
type CorpusConfig struct {
	// Dir is where session workflow logs are read from.
	// Default: .agents/sessions
	Dir string `yaml:"dir" json:"dir"`
}

// ArtifactsConfig holds configurable paths for the audited artifacts.
type ArtifactsConfig struct {
	// AgentFile is the top-level agent instruction document.
	// Default: AGENTS.md
	AgentFile string `yaml:"agent_file" json:"agent_file"`

	// InstructionsDir holds per-task instruction documents.
	// Default: .github/instructions
	InstructionsDir string `yaml:"instructions_dir" json:"instructions_dir"`

	// SkillsDir holds skill documents, flat or one directory per skill.
	// Default: .github/skills
	SkillsDir string `yaml:"skills_dir" json:"skills_dir"`

	// KnowledgeFile is the JSONL knowledge base.
	// Default: project_knowledge.json
	KnowledgeFile string `yaml:"knowledge_file" json:"knowledge_file"`
}

// SimulationConfig holds simulation settings.
type SimulationConfig struct {
	// Sessions is the number of synthetic sessions per run.
	Sessions int `yaml:"sessions" json:"sessions"`

	// Workers shards session generation when > 1. Results are identical
	// at any worker count.
	Workers int `yaml:"workers" json:"workers"`
}

// Default config values (used in resolution and validation).
const (
	defaultOutput   = "table"
	defaultBaseDir  = ".agentaudit"
	defaultSessions = 1000
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Output:  defaultOutput,
		BaseDir: defaultBaseDir,
		Verbose: false,
		Corpus: CorpusConfig{
			Dir: filepath.Join(".agents", "sessions"),
		},
		Artifacts: ArtifactsConfig{
			AgentFile:       "AGENTS.md",
			InstructionsDir: filepath.Join(".github", "instructions"),
			SkillsDir:       filepath.Join(".github", "skills"),
			KnowledgeFile:   "project_knowledge.json",
		},
		Simulation: SimulationConfig{
			Sessions: defaultSessions,
			Workers:  1,
		},
	}
}

// BaselinePath returns the baseline snapshot path under the base dir.
func (c *Config) BaselinePath() string {
	return filepath.Join(c.BaseDir, "baseline.json")
}

// Load loads configuration with proper precedence.
// Priority: flags > env > project > home > defaults
func Load(flagOverrides *Config) (*Config, error) {
	cfg := Default()

	homeConfig, _ := loadFromPath(homeConfigPath())
	if homeConfig != nil {
		cfg = merge(cfg, homeConfig)
	}

	projectConfig, _ := loadFromPath(projectConfigPath())
	if projectConfig != nil {
		cfg = merge(cfg, projectConfig)
	}

	cfg = applyEnv(cfg)

	if flagOverrides != nil {
		cfg = merge(cfg, flagOverrides)
	}

	return cfg, nil
}

// homeConfigPath returns the home config path.
func homeConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".agentaudit", "config.yaml")
}

// projectConfigPath returns the project config path.
func projectConfigPath() string {
	if override := strings.TrimSpace(os.Getenv("AGENTAUDIT_CONFIG")); override != "" {
		return override
	}
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return filepath.Join(cwd, ".agentaudit", "config.yaml")
}

// loadFromPath loads config from a YAML file.
func loadFromPath(path string) (*Config, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv applies environment variable overrides.
func applyEnv(cfg *Config) *Config {
	if v := os.Getenv("AGENTAUDIT_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("AGENTAUDIT_BASE_DIR"); v != "" {
		cfg.BaseDir = v
	}
	if v := os.Getenv("AGENTAUDIT_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
	}
	if v := os.Getenv("AGENTAUDIT_CORPUS_DIR"); v != "" {
		cfg.Corpus.Dir = v
	}
	if v := os.Getenv("AGENTAUDIT_AGENT_FILE"); v != "" {
		cfg.Artifacts.AgentFile = v
	}
	if v := os.Getenv("AGENTAUDIT_INSTRUCTIONS_DIR"); v != "" {
		cfg.Artifacts.InstructionsDir = v
	}
	if v := os.Getenv("AGENTAUDIT_SKILLS_DIR"); v != "" {
		cfg.Artifacts.SkillsDir = v
	}
	if v := os.Getenv("AGENTAUDIT_KNOWLEDGE_FILE"); v != "" {
		cfg.Artifacts.KnowledgeFile = v
	}
	if n, err := strconv.Atoi(os.Getenv("AGENTAUDIT_SESSIONS")); err == nil && n > 0 {
		cfg.Simulation.Sessions = n
	}
	if n, err := strconv.Atoi(os.Getenv("AGENTAUDIT_WORKERS")); err == nil && n > 0 {
		cfg.Simulation.Workers = n
	}
	return cfg
}

// mergeStr overwrites dst with src when src is non-empty.
func mergeStr(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// mergeInt overwrites dst with src when src is non-zero.
func mergeInt(dst *int, src int) {
	if src != 0 {
		*dst = src
	}
}

// merge merges src into dst, with src values taking precedence.
func merge(dst, src *Config) *Config {
	mergeStr(&dst.Output, src.Output)
	mergeStr(&dst.BaseDir, src.BaseDir)
	if src.Verbose {
		dst.Verbose = true
	}

	mergeStr(&dst.Corpus.Dir, src.Corpus.Dir)
	mergeArtifacts(&dst.Artifacts, &src.Artifacts)
	mergeSimulation(&dst.Simulation, &src.Simulation)

	return dst
}

// mergeArtifacts merges artifact path fields.
func mergeArtifacts(dst, src *ArtifactsConfig) {
	mergeStr(&dst.AgentFile, src.AgentFile)
	mergeStr(&dst.InstructionsDir, src.InstructionsDir)
	mergeStr(&dst.SkillsDir, src.SkillsDir)
	mergeStr(&dst.KnowledgeFile, src.KnowledgeFile)
}

// mergeSimulation merges simulation fields.
func mergeSimulation(dst, src *SimulationConfig) {
	mergeInt(&dst.Sessions, src.Sessions)
	mergeInt(&dst.Workers, src.Workers)
}
