package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boshu2/agentaudit/internal/simulate"
	"github.com/boshu2/agentaudit/internal/types"
)

var simulateSessions int

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate assistant sessions from the current artifacts",
	Long: `Run deterministic synthetic sessions parameterized by the mined
pattern profile and the current artifact scores.

The same session count always yields the same result, regardless of
worker count, so runs are comparable across machines.

Examples:
  aa simulate
  aa simulate --sessions 5000 -o json`,
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().IntVar(&simulateSessions, "sessions", 0, "Number of sessions (default from config)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sessions := cfg.Simulation.Sessions
	if cmd.Flags().Changed("sessions") {
		sessions = simulateSessions
	}

	if dryRun {
		fmt.Printf("[dry-run] Would simulate %d sessions\n", sessions)
		return nil
	}

	profile, source := mineProfile(cfg)
	audits := scoreArtifacts(cfg)

	sim, err := simulate.New(profile, audits)
	if err != nil {
		return err
	}
	sim.Workers = cfg.Simulation.Workers

	result, err := sim.Simulate(sessions)
	if err != nil {
		return fmt.Errorf("simulate %d sessions: %w", sessions, err)
	}

	switch cfg.Output {
	case "json", "yaml":
		return encode(os.Stdout, cfg.Output, result)
	default:
		printSimulation(result, source, len(audits))
	}
	return nil
}

func printSimulation(result *types.SimulationResult, source string, componentCount int) {
	fmt.Println()
	fmt.Println("Session Simulation")
	fmt.Println("==================")
	fmt.Printf("Profile: %s, components audited: %d\n\n", source, componentCount)

	fmt.Printf("  Sessions:    %d\n", result.Sessions)
	fmt.Printf("  Duration:    %.1fm avg, %.1fm p50, %.1fm p95\n",
		result.AvgDuration, result.P50Duration, result.P95Duration)
	fmt.Printf("  Tokens:      %.0f avg\n", result.AvgTokens)
	fmt.Printf("  API calls:   %.1f avg\n", result.AvgAPICalls)
	fmt.Printf("  Tasks:       %.1f of %.1f completed (%.1f%%)\n",
		result.AvgTasksCompleted, result.AvgTasksTotal, result.CompletionRate*100)
	fmt.Printf("  Failures:    %.1f%%\n", result.FailureRate*100)
	fmt.Println()

	fmt.Println("COMPLEXITY:")
	for _, c := range types.Complexities {
		if n, ok := result.ComplexityDistribution[c]; ok {
			fmt.Printf("  %-8s %d\n", c, n)
		}
	}
	fmt.Println()

	fmt.Println("IMPROVEMENT POTENTIAL:")
	for _, metric := range []string{"token_usage", "api_calls", "cognitive_load", "discipline", "resolution", "traceability"} {
		fmt.Printf("  %-15s %.2f\n", metric, result.ImprovementPotential[metric])
	}
}
