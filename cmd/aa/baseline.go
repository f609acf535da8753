package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boshu2/agentaudit/internal/report"
	"github.com/boshu2/agentaudit/internal/simulate"
)

var baselineCmd = &cobra.Command{
	Use:   "baseline",
	Short: "Capture a baseline snapshot",
	Long: `Mine the corpus, score the current artifacts, simulate, and store
the result as the comparison point for later 'aa audit --compare' runs.

The snapshot is written as a whole-file overwrite under the base dir.

Examples:
  aa baseline
  aa baseline -o json`,
	RunE: runBaseline,
}

func init() {
	rootCmd.AddCommand(baselineCmd)
}

func runBaseline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if dryRun {
		fmt.Printf("[dry-run] Would capture baseline snapshot to %s\n", cfg.BaselinePath())
		return nil
	}

	profile, source := mineProfile(cfg)
	audits := scoreArtifacts(cfg)

	sim, err := simulate.New(profile, audits)
	if err != nil {
		return err
	}
	sim.Workers = cfg.Simulation.Workers

	result, err := sim.Simulate(cfg.Simulation.Sessions)
	if err != nil {
		return fmt.Errorf("simulate baseline: %w", err)
	}

	snapshot, err := report.SaveBaseline(cfg.BaselinePath(), profile, result, len(audits))
	if err != nil {
		return fmt.Errorf("save baseline: %w", err)
	}

	switch cfg.Output {
	case "json", "yaml":
		return encode(os.Stdout, cfg.Output, snapshot)
	default:
		printSimulation(result, source, len(audits))
		fmt.Printf("\nBaseline saved: %s\n", cfg.BaselinePath())
	}
	return nil
}
