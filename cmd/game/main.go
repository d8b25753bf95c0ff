// playertest is a small screen-stack demo: an intro, a main menu, a player
// moving around the window, a pause overlay and an options screen.
//
// Usage:
//
//	playertest                 - Start the game
//	playertest replay <file>   - Play back a recorded input file
//
// Global flags:
//
//	--config <file>     - Game config JSON (default: embedded game.json)
//	--assets <dir>      - Asset root directory
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--debug             - Show the FPS counter from the start
//	--save-db <path>    - SQLite file for the last session
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/younwookim/playertest/internal/infrastructure/logging"
)

var (
	// Global flags
	flagConfig   string
	flagAssets   string
	flagLogLevel string
	flagDebug    bool
	flagSaveDB   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger, _ := logging.New(os.Stderr, "")
		logger.Error("playertest failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "playertest",
	Short: "Move a player around a window through a stack of screens",
	Long: `playertest opens a window with an intro screen, a main menu and a
playfield where a single player moves with the arrow keys.

Controls:
  Enter      - Leave the intro / start from the menu
  Arrows     - Move the player
  Esc        - Pause / resume / back
  F3         - Toggle the FPS counter
  Mouse      - Click menu buttons

Examples:
  playertest
  playertest --assets ./resource --log-level debug
  playertest --save-db ~/.playertest/session.db
  playertest --record run.json
  playertest replay run.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a game config JSON file")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset root directory (overrides assets.root)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Show the FPS counter")
	rootCmd.PersistentFlags().StringVar(&flagSaveDB, "save-db", "", "SQLite file for the last session (overrides save.path)")

	rootCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (\"auto\" picks a timestamped name)")

	rootCmd.AddCommand(replayCmd)
}
