package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Mine session logs into a pattern profile",
	Long: `Scan the configured corpus directory for workflow logs and
aggregate them into a statistical pattern profile.

A missing or empty corpus directory is not an error: the documented
default profile is reported instead, labeled "default".

Examples:
  aa corpus
  aa corpus -o json
  AGENTAUDIT_CORPUS_DIR=/data/sessions aa corpus`,
	RunE: runCorpus,
}

func init() {
	rootCmd.AddCommand(corpusCmd)
}

func runCorpus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if dryRun {
		fmt.Printf("[dry-run] Would scan corpus directory: %s\n", cfg.Corpus.Dir)
		return nil
	}

	profile, source := mineProfile(cfg)

	switch cfg.Output {
	case "json", "yaml":
		return encode(os.Stdout, cfg.Output, profile)
	default:
		printProfile(profile, source)
	}
	return nil
}
