package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"slipstream/internal/logging"
	"slipstream/internal/melee"
	"slipstream/internal/segment"
	"slipstream/internal/slp"
)

type actionJSON struct {
	FrameStart int    `json:"frame_start"`
	FrameEnd   int    `json:"frame_end"`
	Stance     string `json:"stance"`
	Action     string `json:"action"`
}

type portActionsJSON struct {
	Port    string       `json:"port"`
	Fighter string       `json:"fighter"`
	Frames  int          `json:"frames"`
	Actions []actionJSON `json:"actions"`
}

func actionToJSON(a segment.Action) actionJSON {
	return actionJSON{
		FrameStart: a.FrameStart,
		FrameEnd:   a.FrameEnd,
		Stance:     a.Stance.String(),
		Action:     a.Taken.String(),
	}
}

func actionsToJSON(actions []segment.Action) []actionJSON {
	out := make([]actionJSON, 0, len(actions))
	for _, a := range actions {
		out = append(out, actionToJSON(a))
	}
	return out
}

func newActionsCommand(ctx *commandContext) *cobra.Command {
	var portFlag string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "actions <replay.slp>",
		Short: "Segment a replay into high-level actions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			ports, err := selectPorts(portFlag)
			if err != nil {
				return err
			}

			game, err := slp.ReadGame(args[0])
			if err != nil {
				return err
			}

			seg := segment.New(cfg.Thresholds())
			out := cmd.OutOrStdout()
			var jsonOut []portActionsJSON
			for _, port := range ports {
				actions, report := seg.Segment(game.FramesFor(port))
				logger.Debug("segmented replay",
					logging.String("replay", args[0]),
					logging.String("port", port.String()),
					logging.Int("frames", report.Frames),
					logging.Int("actions", report.Actions),
					logging.Int("dropped", report.DroppedSpans),
					logging.Int("unknown_states", report.UnknownStates))
				if report.MissingJumpData > 0 {
					logger.Warn("jumps left unclassified; configure analysis.jump_thresholds",
						logging.String("port", port.String()),
						logging.Int("jumps", report.MissingJumpData))
				}

				fighter := playerFor(game, port).Fighter
				if asJSON {
					jsonOut = append(jsonOut, portActionsJSON{
						Port:    port.String(),
						Fighter: fighter.String(),
						Frames:  report.Frames,
						Actions: actionsToJSON(actions),
					})
					continue
				}

				fmt.Fprintf(out, "%s port (%s): %d actions over %d frames\n",
					port, fighter, report.Actions, report.Frames)

				rows := make([][]string, 0, len(actions))
				for _, a := range actions {
					rows = append(rows, []string{
						strconv.Itoa(a.FrameStart),
						strconv.Itoa(a.FrameEnd),
						a.Stance.String(),
						a.Taken.String(),
					})
				}
				if len(rows) > 0 {
					fmt.Fprintln(out, renderTable(
						[]string{"Start", "End", "Stance", "Action"},
						rows,
						[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft},
					))
				}
			}

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(jsonOut)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&portFlag, "port", "both", "Which competitor to segment: low, high, or both")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func selectPorts(flag string) ([]melee.Port, error) {
	switch flag {
	case "low":
		return []melee.Port{melee.PortLow}, nil
	case "high":
		return []melee.Port{melee.PortHigh}, nil
	case "both", "":
		return []melee.Port{melee.PortLow, melee.PortHigh}, nil
	default:
		return nil, fmt.Errorf("invalid --port value %q (use low, high, or both)", flag)
	}
}

func playerFor(game *slp.Game, port melee.Port) slp.PlayerInfo {
	if port == melee.PortLow {
		return game.Info.Low
	}
	return game.Info.High
}
