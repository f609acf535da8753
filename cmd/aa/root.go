package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/boshu2/agentaudit/internal/config"
	"github.com/boshu2/agentaudit/internal/logging"
)

var (
	// Global flags
	dryRun  bool
	verbose bool
	output  string
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "aa",
	Short: "Governance artifact audit and simulation CLI",
	Long: `aa audits the governance artifacts that constrain an automated
coding assistant (agent instructions, per-task instructions, skills,
and the JSONL knowledge base), then simulates assistant sessions
against them.

Pipeline:
  corpus    Mine historical workflow logs into a pattern profile
  audit     Score artifacts, simulate, optimize, and report
  simulate  Simulate sessions from the current artifacts
  baseline  Capture a baseline snapshot for later comparison

Nothing is ever executed or edited: the tool reads artifacts and
session logs, and reports calibrated estimates only.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		syncConfigFlagToEnv()
		initLogging()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Show what would happen without executing")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format (table, json, yaml, markdown)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ~/.agentaudit/config.yaml)")
}

// loadConfig resolves configuration with flag overrides applied last.
func loadConfig() (*config.Config, error) {
	overrides := &config.Config{
		Output:  strings.TrimSpace(output),
		Verbose: verbose,
	}
	return config.Load(overrides)
}

func initLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logging.Init(level, "text", os.Stderr)
}

func syncConfigFlagToEnv() {
	path := strings.TrimSpace(cfgFile)
	if path == "" {
		return
	}
	_ = os.Setenv("AGENTAUDIT_CONFIG", path)
}
