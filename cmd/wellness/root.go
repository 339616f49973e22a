// ABOUTME: Root Cobra command for the wellness CLI.
// ABOUTME: Loads config, sets up logging and manages the storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/config"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/logging"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/storage"
)

// needsStorage marks commands that open the configured repository before running.
const needsStorage = "needs-storage"

var (
	cfg       *config.Config
	repo      storage.Repository
	logCloser io.Closer

	dataDirFlag  string
	backendFlag  string
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "wellness",
	Short: "75-day diet and workout plan generator",
	Long: `Wellness generates a personalised 75-day Indian diet and workout plan from
a handful of details about a person.

WHAT A PLAN CONTAINS:

  Metrics    BMI, BMI category, BMR, maintenance and daily calorie target
  Macros     daily protein, fat and carbohydrate grams
  Diet       75 days of regional meals, snacks, water, timings and cheat meals
  Workout    75 days of warmups, exercises, cooldowns, rest and deload weeks

QUICK START:

  $ wellness generate --name Asha --age 29 --height 160 --weight 62 \
      --gender female --diet jain --goal weight-loss --frequency 3-4
  $ wellness generate --form asha.yaml --save       # Save the submission
  $ wellness generate --form asha.yaml -f markdown -o plan.md
  $ wellness list                                   # See saved submissions
  $ wellness show abc123                            # Re-render a saved plan

SHARING:

  $ wellness share abc123 --whatsapp --email        # Print share links
  $ wellness share abc123 --webhook                 # POST to webhook_url

MCP INTEGRATION:

  Run 'wellness mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "wellness": { "command": "wellness", "args": ["mcp"] }
    }
  }

CONFIGURATION:

  Settings live in ~/.config/wellness/config.json and can be overridden with
  WELLNESS_BACKEND, WELLNESS_DATA_DIR, WELLNESS_WEBHOOK_URL,
  WELLNESS_LOG_LEVEL, WELLNESS_LOG_FILE and WELLNESS_LOG_JSON.

DATA STORAGE:

  Submissions are stored in SQLite at ~/.local/share/wellness/wellness.db,
  or in a Badger store under ~/.local/share/wellness/kv with backend=badger.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dataDirFlag != "" {
			cfg.DataDir = dataDirFlag
		}
		if backendFlag != "" {
			cfg.Backend = backendFlag
		}
		if logLevelFlag != "" {
			cfg.LogLevel = logLevelFlag
		}

		logCloser = logging.Setup(cfg.LoggerParams())
		log.WithFields(log.Fields{
			"command": cmd.CommandPath(),
			"backend": cfg.GetBackend(),
			"dataDir": cfg.GetDataDir(),
		}).Debug("starting")

		if cmd.Annotations[needsStorage] == "true" {
			return openRepo()
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeAll()
	},
}

// openRepo opens the configured repository once per invocation.
func openRepo() error {
	if repo != nil {
		return nil
	}
	r, err := cfg.OpenStorage()
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	repo = r
	return nil
}

func closeAll() error {
	var err error
	if repo != nil {
		err = repo.Close()
		repo = nil
	}
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
	return err
}

func storageAnnotation() map[string]string {
	return map[string]string{needsStorage: "true"}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "storage backend: sqlite or badger (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn or error")
}
