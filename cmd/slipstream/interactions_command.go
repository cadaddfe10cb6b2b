package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"slipstream/internal/interact"
	"slipstream/internal/melee"
	"slipstream/internal/segment"
	"slipstream/internal/slp"
)

type exchangeJSON struct {
	Initiation actionJSON `json:"initiation"`
	Response   actionJSON `json:"response"`
}

func newInteractionsCommand(ctx *commandContext) *cobra.Command {
	var initiatorFlag string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "interactions <replay.slp>",
		Short: "Pair the two competitors' actions into initiation/response exchanges",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			initiator, err := selectInitiator(initiatorFlag)
			if err != nil {
				return err
			}
			responder := melee.PortHigh
			if initiator == melee.PortHigh {
				responder = melee.PortLow
			}

			game, err := slp.ReadGame(args[0])
			if err != nil {
				return err
			}

			seg := segment.New(cfg.Thresholds())
			initiations, _ := seg.Segment(game.FramesFor(initiator))
			responses, _ := seg.Segment(game.FramesFor(responder))
			pairs := interact.Align(initiations, responses)

			out := cmd.OutOrStdout()
			if asJSON {
				exchanges := make([]exchangeJSON, 0, len(pairs))
				for _, p := range pairs {
					exchanges = append(exchanges, exchangeJSON{
						Initiation: actionToJSON(initiations[p.Initiation]),
						Response:   actionToJSON(responses[p.Response]),
					})
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(exchanges)
			}

			fmt.Fprintf(out, "%s (%s port) initiating against %s (%s port): %d exchanges\n",
				playerFor(game, initiator).Fighter, initiator,
				playerFor(game, responder).Fighter, responder,
				len(pairs))

			rows := make([][]string, 0, len(pairs))
			for _, p := range pairs {
				in := initiations[p.Initiation]
				resp := responses[p.Response]
				rows = append(rows, []string{
					strconv.Itoa(in.FrameStart),
					in.Taken.String(),
					strconv.Itoa(resp.FrameStart),
					resp.Taken.String(),
				})
			}
			if len(rows) > 0 {
				fmt.Fprintln(out, renderTable(
					[]string{"Frame", "Initiation", "Frame", "Response"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft},
				))
			}
			return nil
		},
	}

	cmd.Args = cobra.ExactArgs(1)
	cmd.Flags().StringVar(&initiatorFlag, "initiator", "low", "Which competitor initiates: low or high")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func selectInitiator(flag string) (melee.Port, error) {
	switch flag {
	case "low", "":
		return melee.PortLow, nil
	case "high":
		return melee.PortHigh, nil
	default:
		return 0, fmt.Errorf("invalid --initiator value %q (use low or high)", flag)
	}
}
