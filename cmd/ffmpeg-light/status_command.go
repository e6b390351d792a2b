package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ffmpeglight/internal/deps"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report availability of the required external binaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			requirements := deps.Requirements()
			for i := range requirements {
				switch requirements[i].Name {
				case "FFmpeg":
					if cfg.Tools.FFmpeg != "" {
						requirements[i].Command = cfg.Tools.FFmpeg
					}
				case "FFprobe":
					if cfg.Tools.FFprobe != "" {
						requirements[i].Command = cfg.Tools.FFprobe
					}
				}
			}
			statuses := deps.CheckBinaries(requirements)

			if asJSON {
				return writeJSON(cmd, statuses)
			}
			headers := []string{"Dependency", "Command", "Available", "Detail"}
			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				available := "yes"
				if !status.Available {
					available = "no"
				}
				rows = append(rows, []string{status.Name, status.Command, available, status.Detail})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print status as JSON")
	return cmd
}
