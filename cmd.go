package main

import (
	"fmt"

	"github.com/automoto/rario/assets"
	"github.com/automoto/rario/components"
	"github.com/automoto/rario/config"
	"github.com/automoto/rario/fonts"
	"github.com/automoto/rario/leveldata"
	"github.com/automoto/rario/prefs"
	"github.com/automoto/rario/scenes"
	"github.com/automoto/rario/sprites"
	"github.com/automoto/rario/systems"
	"github.com/automoto/rario/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/yohamta/donburi"
)

var (
	// Global flags
	flagConfig string
	flagDebug  bool

	flagMap        string
	flagScale      float64
	flagFullscreen bool

	flagTicks int
	flagHold  string
)

var rootCmd = &cobra.Command{
	Use:   "rario",
	Short: "Super Rario Bros - a tiny side-scroller",
	Long: `Run right, jump the pits, mind the pipes.

Controls:
  Left/Right or A/D  - Walk
  Up/W/Space         - Jump
  F11                - Toggle fullscreen
  Esc                - Quit`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			log.SetLevel(log.DebugLevel)
		}
	},
	RunE: runPlay,
}

var checkCmd = &cobra.Command{
	Use:   "check <map>",
	Short: "Parse a map and print its size",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game without a window",
	Long: `Run the simulation headless with a fixed set of held actions and print
the final state of every actor.

Examples:
  rario simulate --ticks 600 --hold right
  rario simulate --ticks 120 --hold right,jump`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagMap, "map", "", "Map file (.txt or .tmx); defaults to the configured map")

	rootCmd.Flags().Float64Var(&flagScale, "scale", 0, "Window scale (saved for next time)")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start fullscreen")

	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Maximum number of ticks to run")
	simulateCmd.Flags().StringVar(&flagHold, "hold", "right", "Comma separated actions held for the whole run")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(simulateCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDebug {
		cfg.Debug.Overlay = true
	}

	store, err := prefs.Open("rario")
	if err != nil {
		log.Warn("could not initialize preferences", "error", err)
	}
	fullscreen := flagFullscreen
	if saved, err := store.Load(); err != nil {
		log.Warn("could not load preferences", "error", err)
	} else if saved != nil {
		if saved.Scale > 0 {
			cfg.Window.Scale = saved.Scale
		}
		fullscreen = fullscreen || saved.Fullscreen
	}
	if cmd.Flags().Changed("scale") {
		if flagScale <= 0 {
			return fmt.Errorf("scale must be positive, got %v", flagScale)
		}
		cfg.Window.Scale = flagScale
		if err := store.Save(prefs.Settings{Scale: flagScale, Fullscreen: fullscreen}); err != nil {
			log.Warn("could not save preferences", "error", err)
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}
	res, err := scenes.LoadResources(cfg, flagMap, store)
	if err != nil {
		return err
	}
	return runGame(res, fullscreen)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	lvl, err := assets.LoadLevel(cfg, args[0])
	if err != nil {
		return err
	}

	w, h := leveldata.Bounds(lvl.Tiles)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d tiles, %.0fx%.0f px, %d enemy spawns\n", args[0], len(lvl.Tiles), w, h, len(lvl.Spawns))
	if w > cfg.World.Width {
		fmt.Fprintf(out, "warning: map is wider than the world (%.0f px); the camera stops at %.0f\n", cfg.World.Width, cfg.MaxScroll())
	}
	return nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	held, err := systems.ParseActions(flagHold)
	if err != nil {
		return err
	}
	mapPath := flagMap
	if mapPath == "" {
		mapPath = cfg.World.Map
	}
	lvl, err := assets.LoadLevel(cfg, mapPath)
	if err != nil {
		return err
	}

	w := donburi.NewWorld()
	factory.PopulateWorld(w, cfg, mapPath, lvl, factory.Textures{})
	pipeline := systems.Pipeline(cfg, held)

	outcome := sprites.OutcomeRunning
	ticks := 0
	for ; ticks < flagTicks && outcome == sprites.OutcomeRunning; ticks++ {
		outcome = systems.Step(w, pipeline)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ticks: %d\noutcome: %s\n", ticks, outcome)
	xBack := 0.0
	if cam, ok := components.Camera.First(w); ok {
		xBack = components.Camera.Get(cam).XBack
	}
	fmt.Fprintf(out, "x_back: %.2f\n", xBack)
	for i, a := range systems.Actors(w) {
		b := a.Base()
		kind := "enemy"
		if _, ok := a.(*sprites.Player); ok {
			kind = "player"
		}
		fmt.Fprintf(out, "%d %-6s x=%.2f (world %.2f) y=%.2f vx=%.3f vy=%.3f falling=%t\n",
			i, kind, b.X, b.X+xBack, b.Y, b.VX, b.VY, b.Falling)
	}
	return nil
}
