package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-driller/internal/platform/tui"
	"github.com/vovakirdan/tui-driller/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Inspect, verify or watch recorded runs",
	Long: `Work with replay files written by 'driller play --record'.

Examples:
  driller replay info run.drl
  driller replay verify run.drl
  driller replay watch run.drl --fps 120`,
}

var replayInfoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show what a replay contains",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplayInfo,
}

var replayVerifyCmd = &cobra.Command{
	Use:   "verify <file>",
	Short: "Re-simulate a replay and check its recorded result",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplayVerify,
}

var replayWatchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Play a replay back in the terminal",
	Long: `Play a replay back in the terminal.

Controls:
  P         - Pause playback
  R         - Rewind
  Q/Ctrl+C  - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runReplayWatch,
}

func init() {
	replayCmd.AddCommand(replayInfoCmd)
	replayCmd.AddCommand(replayVerifyCmd)
	replayCmd.AddCommand(replayWatchCmd)
}

func runReplayInfo(_ *cobra.Command, args []string) error {
	rep, err := replay.Load(args[0])
	if err != nil {
		return err
	}

	p := rep.Settings.Params
	r := rep.Result
	fmt.Printf("Replay   %s\n", rep.ID)
	fmt.Printf("Variant  %s\n", rep.GameID)
	fmt.Printf("Recorded %s\n", rep.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Seed     %d\n", rep.Seed)
	fmt.Printf("Field    %d wide, %d rows, %s, %s\n", p.Width, p.SkyRows+p.FieldRows+p.FloorRows, p.Topology, p.Generator)
	fmt.Printf("Inputs   %d (%d ticks)\n", len(rep.Inputs), rep.Ticks())
	fmt.Printf("Result   depth %d, stage %d, %d frames, %s\n", r.Depth, r.Stage, r.Frames, r.Outcome)
	return nil
}

func runReplayVerify(_ *cobra.Command, args []string) error {
	rep, err := replay.Load(args[0])
	if err != nil {
		return err
	}

	err = replay.Verify(rep)
	var mismatch *replay.MismatchError
	switch {
	case errors.As(err, &mismatch):
		logger.Warn("replay mismatch", "file", args[0], "want", mismatch.Want, "got", mismatch.Got)
		return err
	case err != nil:
		return err
	}

	fmt.Printf("OK: depth %d, stage %d after %d frames\n", rep.Result.Depth, rep.Result.Stage, rep.Result.Frames)
	return nil
}

func runReplayWatch(_ *cobra.Command, args []string) error {
	rep, err := replay.Load(args[0])
	if err != nil {
		return err
	}
	pb, err := replay.NewPlayback(rep)
	if err != nil {
		return err
	}

	// Spectating saves nothing
	deps := newDeps(nil)
	deps.Spectate = true
	deps.Scores = nil

	if err := tui.Run(pb, deps, terminalConfig()); err != nil {
		return fmt.Errorf("cannot run playback: %w", err)
	}
	if pb.Err() != nil {
		return pb.Err()
	}
	return nil
}
