package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"slipstream/internal/config"
	"slipstream/internal/library"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "Index the replay directory",
		Long: `Scan reads match metadata from every .slp file directly in the configured
replay directory (or the given directory) and updates the index. Unchanged
files are served from the index without re-reading them; --no-cache decodes
every file fresh and leaves the index untouched.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			dir := cfg.Paths.ReplayDir
			if len(args) == 1 {
				dir, err = config.ExpandPath(args[0])
				if err != nil {
					return err
				}
			}

			var result *library.ScanResult
			if noCache {
				result, err = library.ScanDir(cmd.Context(), dir, logger)
			} else {
				err = ctx.withStore(func(store *library.Store) error {
					var scanErr error
					result, scanErr = library.Scan(cmd.Context(), store, dir, logger)
					return scanErr
				})
			}
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(result.Entries))
			for _, entry := range result.Entries {
				rows = append(rows, []string{
					filepath.Base(entry.Path),
					entry.Info.Stage.String(),
					entry.Info.Low.Fighter.String(),
					entry.Info.High.Fighter.String(),
					entry.Info.Version.String(),
				})
			}

			out := cmd.OutOrStdout()
			if len(rows) > 0 {
				fmt.Fprintln(out, renderTable(
					[]string{"Replay", "Stage", "Low Port", "High Port", "Format"},
					rows,
					nil,
				))
			}
			fmt.Fprintf(out, "%d indexed, %d cached, %d skipped, %d removed\n",
				result.Indexed, result.Cached, result.Skipped, result.Removed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Decode every replay fresh, bypassing the index")
	return cmd
}
