package main

import (
	"strings"

	"github.com/spf13/cobra"

	"ffmpeglight/internal/errs"
	"ffmpeglight/internal/media"
	"ffmpeglight/internal/thumbnail"
)

func newThumbnailCommand(ctx *commandContext) *cobra.Command {
	var (
		timeSeconds float64
		width       int
		height      int
		format      string
	)

	cmd := &cobra.Command{
		Use:   "thumbnail <input> <output>",
		Short: "Extract a single frame as an image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}
			bins, err := ctx.resolveBinaries()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("time") {
				timeSeconds = cfg.Thumbnail.TimeSeconds
			}
			if width == 0 {
				width = cfg.Thumbnail.Width
			}
			if height == 0 {
				height = cfg.Thumbnail.Height
			}
			if format == "" {
				format = cfg.Thumbnail.Format
			}

			opts := thumbnail.Options{
				Time:   media.SecondsF(timeSeconds),
				Width:  width,
				Height: height,
			}
			switch strings.ToLower(format) {
			case "png":
				opts.Format = thumbnail.PNG
			case "jpeg", "jpg":
				opts.Format = thumbnail.JPEG
			default:
				return errs.InvalidInput("thumbnail format must be png or jpeg")
			}

			logger.Info("extracting thumbnail", "input", args[0], "output", args[1], "at", opts.Time.Timestamp())
			return thumbnail.GenerateWith(cmd.Context(), bins, args[0], args[1], opts)
		},
	}

	cmd.Flags().Float64Var(&timeSeconds, "time", 0, "Seek position in seconds")
	cmd.Flags().IntVar(&width, "width", 0, "Output width")
	cmd.Flags().IntVar(&height, "height", 0, "Output height")
	cmd.Flags().StringVar(&format, "format", "", "Output format (png or jpeg)")
	return cmd
}
