package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"nfomaker/internal/media"
	"nfomaker/internal/textutil"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the technical metadata extracted from a video file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve input path: %w", err)
			}

			tech, err := media.Extract(cmd.Context(), path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Tool: %s\n", tech.Tool)
			fmt.Fprintln(out, renderTable(
				[]string{"Track", "Codec", "Details", "Language", "Bitrate"},
				techRows(tech),
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}
}

func techRows(tech *media.TechInfo) [][]string {
	var rows [][]string
	general := tech.General
	rows = append(rows, []string{
		"General",
		general.Container,
		fmt.Sprintf("%s, %s", textutil.FormatSize(general.SizeBytes), textutil.FormatDuration(general.DurationSec)),
		"",
		textutil.FormatBitrate(general.OverallBitrate),
	})
	for i, video := range tech.Videos {
		details := fmt.Sprintf("%dx%d", video.Width, video.Height)
		if video.FrameRate > 0 {
			details += fmt.Sprintf(" @ %.3f fps", video.FrameRate)
		}
		if video.HDR != "" {
			details += ", " + video.HDR
		}
		rows = append(rows, []string{
			trackLabel("Video", i, len(tech.Videos)),
			video.Codec,
			details,
			"",
			textutil.FormatBitrate(video.Bitrate),
		})
	}
	for i, audio := range tech.Audios {
		details := audio.ChannelLayout
		if details == "" && audio.Channels > 0 {
			details = strconv.FormatInt(audio.Channels, 10) + " ch"
		}
		rows = append(rows, []string{
			trackLabel("Audio", i, len(tech.Audios)),
			audio.Codec,
			details,
			audio.Language,
			textutil.FormatBitrate(audio.Bitrate),
		})
	}
	for i, subtitle := range tech.Subtitles {
		rows = append(rows, []string{
			trackLabel("Subtitle", i, len(tech.Subtitles)),
			subtitle.Format,
			subtitle.Title,
			subtitle.Language,
			"",
		})
	}
	return rows
}

func trackLabel(kind string, index, total int) string {
	if total <= 1 {
		return kind
	}
	return fmt.Sprintf("%s #%d", kind, index+1)
}
