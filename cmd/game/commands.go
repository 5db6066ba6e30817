// cmd/game/commands.go
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"go-crafting/internal/app"
	"go-crafting/internal/config"
	"go-crafting/internal/defs"
	"go-crafting/internal/state"
	"go-crafting/internal/ui"
)

var (
	flagStore     string
	flagStorePath string
	flagCatalog   string
	flagDelay     time.Duration
	flagLogLevel  string
	flagDebugAddr string
	flagFont      string
	flagYes       bool

	settings config.Settings
	logger   *slog.Logger

	rootCmd = &cobra.Command{
		Use:               "crafting",
		Short:             "Drag-and-drop crafting minigame",
		SilenceUsage:      true,
		PersistentPreRunE: loadSettings,
		RunE:              runPlay,
	}

	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Open the game window",
		RunE:  runPlay,
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Erase the saved inventory and crafted history",
		RunE:  runReset,
	}

	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Print the saved game",
		RunE:  runStatus,
	}

	catalogCmd = &cobra.Command{
		Use:   "catalog",
		Short: "Print resources and recipes",
		RunE:  runCatalog,
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagStore, "store", "", "persistence backend: memory, badger or sqlite (env CRAFT_STORE)")
	pf.StringVar(&flagStorePath, "store-path", "", "badger directory or sqlite file (env CRAFT_STORE_PATH)")
	pf.StringVar(&flagCatalog, "catalog", "", "YAML catalog, built-in when empty (env CRAFT_CATALOG)")
	pf.DurationVar(&flagDelay, "delay", 0, "preview time before a craft commits (env CRAFT_DELAY)")
	pf.StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error (env CRAFT_LOG_LEVEL)")
	pf.StringVar(&flagDebugAddr, "debug-addr", "", `pprof and metrics address while playing, "off" disables (env CRAFT_DEBUG_ADDR)`)
	pf.StringVar(&flagFont, "font", "", "TrueType font file (env CRAFT_FONT)")

	resetCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "do not ask for confirmation")

	rootCmd.AddCommand(playCmd, resetCmd, statusCmd, catalogCmd)
}

// loadSettings reads the environment and applies flags given explicitly.
func loadSettings(cmd *cobra.Command, args []string) error {
	s, err := config.LoadSettings()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("store") {
		s.Store = flagStore
	}
	if flags.Changed("store-path") {
		s.StorePath = flagStorePath
	}
	if flags.Changed("catalog") {
		s.CatalogPath = flagCatalog
	}
	if flags.Changed("delay") {
		s.CraftDelay = flagDelay
	}
	if flags.Changed("log-level") {
		s.LogLevel = flagLogLevel
	}
	if flags.Changed("debug-addr") {
		s.DebugAddr = flagDebugAddr
	}
	if flags.Changed("font") {
		s.FontPath = flagFont
	}

	level, err := s.Level()
	if err != nil {
		return err
	}
	logger = app.NewLogger(os.Stderr, level)
	slog.SetDefault(logger)
	settings = s
	return nil
}

// openApp wires the game and reports failures through the logger.
func openApp() (*app.App, error) {
	a, err := app.New(settings, logger)
	if err != nil {
		logger.Error("failed to start", "error", err)
		return nil, err
	}
	return a, nil
}

func closeApp(a *app.App) {
	if err := a.Close(); err != nil {
		logger.Error("failed to close", "error", err)
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer closeApp(a)
	a.StartDebugServer()

	fonts := ui.LoadFonts(settings.FontPath, logger)
	sm := state.NewStateMachine()
	sm.SetState(state.NewCraftingState(sm, a.Game, fonts, logger))

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Crafting")
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game loop failed", "error", err)
		return err
	}
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	if !flagYes {
		confirm := false
		err := huh.NewConfirm().
			Title("Erase the saved game?").
			Description("Inventory and crafted history will be lost.").
			Affirmative("Erase").
			Negative("Keep").
			Value(&confirm).
			Run()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("confirm reset: %w", err)
		}
		if !confirm {
			return nil
		}
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer closeApp(a)

	a.Game.ResetGame()
	fmt.Fprintln(cmd.OutOrStdout(), "saved game erased")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer closeApp(a)
	return app.WriteStatus(cmd.OutOrStdout(), a.Game.Snapshot())
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cat, err := defs.LoadCatalog(settings.CatalogPath)
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		return err
	}
	return app.WriteCatalog(cmd.OutOrStdout(), cat)
}
