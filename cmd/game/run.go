package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/playertest/internal/application/game"
	"github.com/younwookim/playertest/internal/application/replay"
	"github.com/younwookim/playertest/internal/application/system"
	"github.com/younwookim/playertest/internal/infrastructure/config"
	"github.com/younwookim/playertest/internal/infrastructure/logging"
	"github.com/younwookim/playertest/internal/infrastructure/render"
	"github.com/younwookim/playertest/internal/infrastructure/resource"
	"github.com/younwookim/playertest/internal/infrastructure/storage"
)

//go:embed configs
var configFS embed.FS

var flagRecord string

const storeTimeout = 2 * time.Second

func runGame(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	var input system.EventSource = system.NewInputSystem(&cfg.Input)
	var recorder *replay.Recorder
	var recordFile string
	if flagRecord != "" {
		recordFile = recordFilename(flagRecord)
		recorder = replay.NewRecorder(input)
		input = recorder
		logger.Info("recording enabled", "file", recordFile)
	}

	runErr := play(cfg, logger, input)

	if recorder != nil {
		saveRecording(recorder, recordFile, logger)
	}
	return runErr
}

// saveRecording stops the recorder and writes it to name. A failure is
// logged; it never hides the game's own error.
func saveRecording(recorder *replay.Recorder, name string, logger *log.Logger) {
	recorder.Stop()
	if err := recorder.Save(name); err != nil {
		logger.Error("failed to save recording", "file", name, "error", err)
		return
	}
	logger.Info("recording saved", "file", name, "frames", recorder.FrameCount(), "started", recorder.Data().StartTime)
}

func recordFilename(flag string) string {
	if flag == "auto" {
		return replay.GenerateFilename()
	}
	return flag
}

// setup loads the configuration and builds the logger from the global flags
func setup() (*config.GameConfig, *log.Logger, error) {
	logger, err := logging.New(os.Stderr, flagLogLevel)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	config.Overrides{
		AssetsRoot: flagAssets,
		SavePath:   flagSaveDB,
		Debug:      flagDebug,
	}.Apply(cfg)

	logger.Debug("config loaded", "width", cfg.Display.Width, "height", cfg.Display.Height, "assets", cfg.Assets.Root)
	return cfg, logger, nil
}

// loadConfig reads path, or the embedded game.json when path is empty
func loadConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.NewLoader(filepath.Dir(path)).Load(filepath.Base(path))
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys).LoadGame()
}

// textureLoader reads textures from the asset root, falling back to
// generated placeholders when enabled.
func textureLoader(cfg *config.GameConfig, assets fs.FS) resource.Loader {
	var loader resource.Loader = resource.NewFSLoader(assets, cfg.Assets.TextureDir)
	if !cfg.Assets.Placeholders {
		return loader
	}
	return resource.ChainLoader{loader, &resource.PlaceholderLoader{
		ButtonW:     cfg.Menu.ButtonWidth,
		ButtonH:     cfg.Menu.ButtonHeight,
		PlayerW:     cfg.Player.Width,
		PlayerH:     cfg.Player.Height,
		BackgroundW: cfg.Display.Width,
		BackgroundH: cfg.Display.Height,
	}}
}

// newGame wires the infrastructure into a game driven by input
func newGame(cfg *config.GameConfig, logger *log.Logger, input system.EventSource) (*game.Game, error) {
	assets := os.DirFS(cfg.Assets.Root)

	face, err := render.LoadFace(assets, cfg.Assets.Font, cfg.Assets.FontSize, logger)
	if err != nil {
		return nil, err
	}
	uiFace, err := render.GoRegular(cfg.Assets.FontSize * 2 / 3)
	if err != nil {
		return nil, err
	}

	cache := resource.NewCache(textureLoader(cfg, assets), logger)
	display := render.New(cache, face, cfg.Display.Width, cfg.Display.Height, logger)

	opts := game.Options{
		Config:   cfg,
		Logger:   logger,
		Input:    input,
		Display:  display,
		Textures: cache,
		Scenes:   sceneFactory(uiFace),
	}
	if cfg.Save.Path != "" {
		store, err := openStore(cfg.Save.Path, logger)
		if err != nil {
			return nil, err
		}
		opts.Store = store
	}

	return game.New(opts), nil
}

// openStore opens the session database and reports how many sessions it
// already holds.
func openStore(path string, logger *log.Logger) (*storage.Store, error) {
	store, err := storage.Open(path)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	n, err := store.Count(ctx)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	logger.Debug("session store opened", "path", path, "sessions", n)
	return store, nil
}

func configureWindow(d config.DisplayConfig) {
	ebiten.SetWindowSize(d.Width, d.Height)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(d.Framerate)
	if d.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowClosingHandled(true)
}

// play runs the game loop until the player quits
func play(cfg *config.GameConfig, logger *log.Logger, input system.EventSource) error {
	g, err := newGame(cfg, logger, input)
	if err != nil {
		return err
	}
	defer g.Shutdown()

	if err := g.Init(); err != nil {
		return fmt.Errorf("init: %w", err)
	}

	configureWindow(cfg.Display)
	logger.Info("starting", "title", cfg.Display.Title, "tps", cfg.Display.Framerate)
	return ebiten.RunGame(g)
}
