package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"ffmpeglight/internal/media/filters"
	"ffmpeglight/internal/transcode"
)

func newTranscodeCommand(ctx *commandContext) *cobra.Command {
	var (
		videoCodec   string
		audioCodec   string
		videoBitrate int
		audioBitrate int
		frameRate    float64
		preset       string
		width        int
		height       int
		videoFilters []string
		audioFilters []string
		extraArgs    []string
		noOverwrite  bool
	)

	cmd := &cobra.Command{
		Use:   "transcode <input> <output>",
		Short: "Re-encode a media file",
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

			if videoCodec == "" {
				videoCodec = cfg.Transcode.VideoCodec
			}
			if audioCodec == "" {
				audioCodec = cfg.Transcode.AudioCodec
			}
			if videoBitrate == 0 {
				videoBitrate = cfg.Transcode.VideoBitrate
			}
			if audioBitrate == 0 {
				audioBitrate = cfg.Transcode.AudioBitrate
			}
			if preset == "" {
				preset = cfg.Transcode.Preset
			}

			builder := transcode.New().
				Binaries(bins).
				Input(args[0]).
				Output(args[1]).
				Overwrite(!noOverwrite)
			if videoCodec != "" {
				builder.VideoCodec(videoCodec)
			}
			if audioCodec != "" {
				builder.AudioCodec(audioCodec)
			}
			if videoBitrate > 0 {
				builder.VideoBitrate(videoBitrate)
			}
			if audioBitrate > 0 {
				builder.AudioBitrate(audioBitrate)
			}
			if frameRate > 0 {
				builder.FrameRate(frameRate)
			}
			if preset != "" {
				builder.Preset(preset)
			}
			if width > 0 && height > 0 {
				builder.Size(width, height)
			}
			for _, raw := range videoFilters {
				builder.VideoFilter(filters.CustomVideo(raw))
			}
			for _, raw := range audioFilters {
				builder.AudioFilter(filters.CustomAudio(raw))
			}
			if len(extraArgs) > 0 {
				builder.ExtraArgs(extraArgs...)
			}

			jobID := uuid.NewString()
			log := logger.With("job_id", jobID)
			log.Info("transcode starting", "input", args[0], "output", args[1], "ffmpeg", bins.FFmpeg)
			started := time.Now()
			if err := builder.Run(cmd.Context()); err != nil {
				log.Error("transcode failed", "error", err)
				return err
			}
			log.Info("transcode finished", "elapsed", time.Since(started).Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringVar(&videoCodec, "video-codec", "", "Video encoder (e.g. libx264)")
	cmd.Flags().StringVar(&audioCodec, "audio-codec", "", "Audio encoder (e.g. aac)")
	cmd.Flags().IntVar(&videoBitrate, "video-bitrate", 0, "Video bitrate in kbps")
	cmd.Flags().IntVar(&audioBitrate, "audio-bitrate", 0, "Audio bitrate in kbps")
	cmd.Flags().Float64Var(&frameRate, "frame-rate", 0, "Target frame rate")
	cmd.Flags().StringVar(&preset, "preset", "", "Encoder preset")
	cmd.Flags().IntVar(&width, "width", 0, "Scale output to this width")
	cmd.Flags().IntVar(&height, "height", 0, "Scale output to this height")
	cmd.Flags().StringArrayVar(&videoFilters, "vf", nil, "Raw video filter fragment (repeatable)")
	cmd.Flags().StringArrayVar(&audioFilters, "af", nil, "Raw audio filter fragment (repeatable)")
	cmd.Flags().StringArrayVar(&extraArgs, "extra-arg", nil, "Raw ffmpeg argument appended before the output path (repeatable)")
	cmd.Flags().BoolVar(&noOverwrite, "no-overwrite", false, "Fail instead of overwriting the output file")
	return cmd
}
