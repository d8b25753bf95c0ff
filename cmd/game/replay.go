package main

import (
	"github.com/spf13/cobra"

	"github.com/younwookim/playertest/internal/application/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Play back a recorded input file",
	Long: `Run the game with input read from a file written by --record.
The window opens as usual; live keyboard and mouse input is ignored and
the game quits once the recording ends.

Examples:
  playertest replay replay_20260101_120000.json`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	replayer, err := openReplay(args[0])
	if err != nil {
		return err
	}
	logger.Info("replaying", "file", args[0], "frames", replayer.TotalFrames())

	if err := play(cfg, logger, replayer); err != nil {
		return err
	}
	logger.Info("replay finished", "frame", replayer.CurrentFrame())
	return nil
}

func openReplay(filename string) (*replay.Replayer, error) {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return nil, err
	}
	return replay.NewReplayer(*data)
}
