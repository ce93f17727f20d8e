// serpent is a terminal snake game built on a pure event-fold engine.
//
// Usage:
//
//	serpent play              - Play in the local terminal
//	serpent serve             - Start SSH server for remote play
//	serpent scores            - Show high scores
//	serpent replay <file>     - Re-fold a recorded event log
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible food placement
//	--db <path>            - Set database path (default: ~/.serpent/scores.db)
//	--config <path>        - Path to custom config YAML
//	--difficulty <preset>  - easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/serpentlabs/serpent/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "serpent",
	Short: "Serpent - Snake in your terminal",
	Long: `Serpent is a terminal snake game. The snake moves on a fixed grid,
eats food to grow, and dies on walls or its own body.

Available commands:
  play     - Play in the local terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  replay   - Re-fold a recorded event log

Examples:
  serpent play
  serpent play --difficulty hard
  serpent serve --ssh :2222
  serpent scores
  serpent replay game.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Food RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.serpent/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig resolves the effective configuration from the config file
// search path, the --config override and the --difficulty preset.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
