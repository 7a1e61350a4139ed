package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-driller/internal/config"
	"github.com/vovakirdan/tui-driller/internal/core"
	"github.com/vovakirdan/tui-driller/internal/games/driller"
	"github.com/vovakirdan/tui-driller/internal/leaderboard"
	"github.com/vovakirdan/tui-driller/internal/platform/audio"
	"github.com/vovakirdan/tui-driller/internal/platform/tui"
	"github.com/vovakirdan/tui-driller/internal/registry"
	"github.com/vovakirdan/tui-driller/internal/replay"
	"github.com/vovakirdan/tui-driller/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRecord     string
	flagAutoplay   bool
	flagNoSound    bool
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing the given variant (default: driller).

Controls:
  Arrows/WASD  - Walk, dig left/right/down/up
  Enter/Space  - Next stage, or try again after game over
  P            - Pause
  R            - Restart (after game over or a cleared stage)
  F3           - Debug overlay
  Esc/B        - Leave (when paused or over)
  Ctrl+S       - Screenshot to ~/.driller/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Finished runs are uploaded when DRILLER_SCORE_API_URL is set.

Examples:
  driller play
  driller play driller_wrap
  driller play --difficulty hard
  driller play --config ./my-driller.yaml
  driller play --seed 42 --record run.drl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record the first run to this replay file")
	playCmd.Flags().BoolVar(&flagAutoplay, "autoplay", false, "Let the bot play")
}

// addGameFlags registers the flags shared by the interactive commands.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable sound effects")
	cmd.Flags().StringVar(&flagPlayer, "player", "", "Name stored with your runs (default: login name)")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := driller.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'driller list' to see them", gameID)
	}
	if err := configureGame(); err != nil {
		return err
	}
	driller.SetAutoplay(flagAutoplay)

	var rec *replay.Recorder
	if flagRecord != "" {
		driller.SetJournalFactory(func(id string, s driller.Settings, seed int64) driller.Journal {
			rec = replay.NewRecorder(id, s, seed)
			return rec
		})
		defer driller.SetJournalFactory(nil)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "game", gameID, "seed", flagSeed, "autoplay", flagAutoplay)
	if err := tui.Run(game, newDeps(store), terminalConfig()); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}

	if rec != nil {
		if dg, ok := game.(*driller.Game); ok {
			rec.Finish(dg.Session().Game().Snapshot())
		}
		if err := replay.Save(flagRecord, rec.Replay()); err != nil {
			return err
		}
		fmt.Printf("Replay saved to %s\n", flagRecord)
	}
	return nil
}

// configureGame applies --config and --difficulty to the driller variants.
func configureGame() error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	driller.SetConfigPath(flagConfig)
	driller.SetDifficultyPreset(flagDifficulty)
	return nil
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database; the game still works without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// newDeps wires storage, sound and score upload for a local session.
func newDeps(store *storage.Store) tui.Deps {
	player, err := audio.NewTonePlayer(!flagNoSound)
	if err != nil {
		logger.Warn("audio unavailable", "error", err)
	}
	return tui.Deps{
		Store:  store,
		Audio:  player,
		Scores: leaderboard.NewClientFromEnv(),
		Player: playerName(),
		Logger: logger,
	}
}

func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
