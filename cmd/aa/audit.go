package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/boshu2/agentaudit/internal/config"
	"github.com/boshu2/agentaudit/internal/formatter"
	"github.com/boshu2/agentaudit/internal/optimize"
	"github.com/boshu2/agentaudit/internal/report"
	"github.com/boshu2/agentaudit/internal/simulate"
	"github.com/boshu2/agentaudit/internal/types"
)

var (
	auditSessions int
	auditCompare  bool
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run the full audit pipeline",
	Long: `Run the complete pipeline: mine the corpus, score every artifact,
simulate a baseline, derive optimization proposals, re-simulate the
optimized component set, and report the delta.

With --compare, the baseline simulation is also diffed against the
snapshot previously captured by 'aa baseline'.

Examples:
  aa audit
  aa audit --sessions 5000 -o json
  aa audit --compare`,
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.Flags().IntVar(&auditSessions, "sessions", 0, "Number of sessions (default from config)")
	auditCmd.Flags().BoolVar(&auditCompare, "compare", false, "Compare against the stored baseline snapshot")
}

func runAudit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sessions := cfg.Simulation.Sessions
	if cmd.Flags().Changed("sessions") {
		sessions = auditSessions
	}

	if dryRun {
		fmt.Printf("[dry-run] Would audit artifacts and simulate %d sessions\n", sessions)
		return nil
	}

	profile, source := mineProfile(cfg)
	audits := scoreArtifacts(cfg)

	sim, err := simulate.New(profile, audits)
	if err != nil {
		return err
	}
	sim.Workers = cfg.Simulation.Workers

	baseline, err := sim.Simulate(sessions)
	if err != nil {
		return fmt.Errorf("simulate baseline: %w", err)
	}

	outcome, err := optimize.Run(profile, audits, sessions, cfg.Simulation.Workers)
	if err != nil {
		return fmt.Errorf("optimize: %w", err)
	}

	rep := report.Build(source, profile, audits, baseline, outcome.Proposals, outcome.Optimized)
	if err := writeReport(cfg, rep); err != nil {
		return err
	}

	if auditCompare {
		return compareWithSnapshot(cfg, baseline)
	}
	return nil
}

// compareWithSnapshot diffs the current baseline against the stored one.
func compareWithSnapshot(cfg *config.Config, current *types.SimulationResult) error {
	snapshot, err := report.LoadBaseline(cfg.BaselinePath())
	if err != nil {
		return fmt.Errorf("load baseline snapshot (run 'aa baseline' first): %w", err)
	}

	bold := color.New(color.Bold).PrintlnFunc()
	bold("\nAgainst Stored Baseline")
	fmt.Printf("captured %s, %d components\n",
		snapshot.CapturedAt.Format("2006-01-02 15:04"), snapshot.ComponentCount)

	fmt.Printf("  tokens     %s\n", formatter.Delta(pct(snapshot.Result.AvgTokens, current.AvgTokens)))
	fmt.Printf("  api calls  %s\n", formatter.Delta(pct(snapshot.Result.AvgAPICalls, current.AvgAPICalls)))
	fmt.Printf("  cognitive  %s\n", formatter.Delta(pct(snapshot.Result.AvgCognitiveLoad, current.AvgCognitiveLoad)))
	fmt.Printf("  resolution %s\n", formatter.Gain(pct(snapshot.Result.AvgResolution, current.AvgResolution)))
	return nil
}

func pct(base, value float64) float64 {
	if base == 0 {
		return 0
	}
	return (value - base) / base * 100
}
