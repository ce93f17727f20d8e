package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/serpentlabs/serpent/internal/platform/tui"
	"github.com/serpentlabs/serpent/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-fold a recorded event log",
	Long: `Load a recorded event log, fold every event through the engine and
print the reconstructed final board. The same log always produces the
same board.

Examples:
  serpent replay game.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) {
	log, err := replay.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading log: %v\n", err)
		os.Exit(1)
	}

	state, err := replay.Replay(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying log: %v\n", err)
		os.Exit(1)
	}

	params := log.Rules.Params()

	// Size the buffer to the board so the box lands at the left edge.
	span := 2*params.BoardSize + 1
	screen := tui.NewScreen(span+2, span+2+3)
	tui.DrawState(screen, params, state)

	fmt.Println(screen.String())
	fmt.Println()
	fmt.Printf("Events:  %d\n", len(log.Events))
	fmt.Printf("Ticks:   %d\n", state.Ticks)
	fmt.Printf("Score:   %d\n", state.Score(params))
	fmt.Printf("Length:  %d\n", state.Snake.Len())
	if state.Over {
		fmt.Println("Result:  game over")
	} else {
		fmt.Println("Result:  in progress")
	}
}
