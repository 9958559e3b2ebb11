package main

import (
	"fmt"
	"ha-sync/internal/adapters/config"
	"ha-sync/internal/adapters/output/homeassistant"
	"ha-sync/internal/adapters/output/position"
	"ha-sync/internal/domain/service"
	"ha-sync/internal/ui"
	"os"

	"github.com/spf13/cobra"
)

var entitiesPath string

// exitCode distinguishes a partial sync (exit 1, summary already printed)
// from the clean error path cobra reports itself.
var exitCode int

var rootCmd = &cobra.Command{
	Use:   "ha-sync",
	Short: "Sync Home Assistant entity locations to position",
	Long: `ha-sync polls the Home Assistant API for entity locations and records
them with the position CLI.

Set HASS_URL and HASS_TOKEN in .env or the environment, list your
entities in entities.yaml, then run ha-sync with no arguments.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(entitiesPath)
		if err != nil {
			return err
		}

		haClient := homeassistant.NewClient(cfg.HassURL, cfg.HassToken)
		recorder := position.NewRecorder(cfg.PositionBin)
		syncService := service.NewSyncService(haClient, recorder, cmd.OutOrStdout())

		summary := syncService.Run(cmd.Context(), cfg.Entities)
		fmt.Fprintln(cmd.OutOrStdout(), ui.FormatSummary(summary.Synced, summary.Total))

		if !summary.AllSynced() {
			exitCode = 1
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&entitiesPath, "entities", "",
		"path to the entities mapping file (default: entities.yaml beside the binary or in the working directory)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(exitCode)
}
