package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/serpentlabs/serpent/internal/platform/tui"
	"github.com/serpentlabs/serpent/internal/storage"
)

var flagRecord string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a game in the current terminal.

Controls:
  WASD/Arrows/hjkl - Steer the snake
  R                - Restart
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow snake (7 ticks per move)
  normal - Default speed (5 ticks per move)
  hard   - Fast snake (3 ticks per move)
  fixed  - Use whatever the config file says

Examples:
  serpent play
  serpent play --difficulty hard
  serpent play --config ./my-rules.yaml
  serpent play --seed 42
  serpent play --record game.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Save the event log to this file on exit")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Terminal size, with sane defaults for non-terminal stdout
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(store, tui.Options{
		Params:   cfg.Params(),
		TickRate: cfg.Timing.TickRate,
		Seed:     flagSeed,
		Record:   flagRecord,
		ScreenW:  width,
		ScreenH:  height,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
