package media

import (
	"path/filepath"
	"strings"

	"nfomaker/internal/language"
	"nfomaker/internal/media/ffprobe"
	"nfomaker/internal/textutil"
)

// fromFFprobe normalizes an ffprobe result into TechInfo.
func fromFFprobe(result ffprobe.Result, filename string) *TechInfo {
	info := &TechInfo{
		General: GeneralInfo{
			Filename:       filename,
			Extension:      strings.TrimPrefix(filepath.Ext(filename), "."),
			SizeBytes:      result.SizeBytes(),
			DurationSec:    result.DurationSeconds(),
			OverallBitrate: result.BitRate(),
			Container:      containerLabel(result.Format.FormatName),
			EncodedDate:    result.Format.Tag("creation_time", "DATE", "date"),
			WritingApp:     result.Format.Tag("encoder", "ENCODER"),
		},
		Tool: ToolFFprobe,
	}

	for _, stream := range result.Streams {
		switch stream.CodecType {
		case "video":
			if stream.Disposition.AttachedPic == 1 {
				continue
			}
			video := VideoTrack{
				Codec:          strings.ToUpper(stream.CodecName),
				Profile:        stream.Profile,
				Width:          stream.Width,
				Height:         stream.Height,
				AspectRatio:    stream.DisplayAspectRatio,
				ScanType:       scanLabel(stream.FieldOrder),
				Chroma:         chromaFromPixFmt(stream.PixFmt),
				ColorPrimaries: stream.ColorPrimaries,
				ColorTransfer:  firstNonEmpty(stream.ColorTransfer, stream.ColorTRC),
				ColorMatrix:    stream.ColorSpace,
				HDR:            hdrLabel(stream),
			}
			video.Bitrate, _ = textutil.ParseInt(stream.BitRate)
			video.FrameRate, _ = textutil.ParseRational(firstNonEmpty(stream.AvgFrameRate, stream.RFrameRate))
			video.BitDepth, _ = textutil.ParseInt(stream.BitsPerRawSample)
			if video.BitDepth == 0 {
				video.BitDepth = bitDepthFromPixFmt(stream.PixFmt)
			}
			info.Videos = append(info.Videos, video)
		case "audio":
			audio := AudioTrack{
				Codec:         strings.ToUpper(stream.CodecName),
				Channels:      stream.Channels,
				ChannelLayout: stream.ChannelLayout,
				Language:      language.Short(stream.Tag("language")),
				Title:         stream.Tag("title"),
				Default:       boolPtr(stream.Disposition.Default == 1),
				Forced:        boolPtr(stream.Disposition.Forced == 1),
			}
			audio.Bitrate, _ = textutil.ParseInt(stream.BitRate)
			audio.SampleRate, _ = textutil.ParseInt(stream.SampleRate)
			if start, ok := textutil.ParseFloat(stream.StartTime); ok && start != 0 {
				audio.DelayMS = int64(start * 1000)
			}
			info.Audios = append(info.Audios, audio)
		case "subtitle":
			info.Subtitles = append(info.Subtitles, SubtitleTrack{
				Format:   strings.ToUpper(stream.CodecName),
				Language: language.Short(stream.Tag("language")),
				Title:    stream.Tag("title"),
				Default:  boolPtr(stream.Disposition.Default == 1),
				Forced:   boolPtr(stream.Disposition.Forced == 1),
			})
		}
	}

	return info
}

// containerLabel picks a single container name out of ffprobe's comma list,
// such as "matroska,webm".
func containerLabel(formatName string) string {
	name, _, _ := strings.Cut(formatName, ",")
	return strings.ToUpper(strings.TrimSpace(name))
}

func scanLabel(fieldOrder string) string {
	switch strings.ToLower(fieldOrder) {
	case "", "unknown":
		return ""
	case "progressive":
		return "Progressive"
	default:
		return "Interlaced"
	}
}

// chromaFromPixFmt maps common pixel formats onto subsampling labels.
func chromaFromPixFmt(pixFmt string) string {
	lower := strings.ToLower(pixFmt)
	switch {
	case strings.Contains(lower, "444"):
		return "4:4:4"
	case strings.Contains(lower, "422"):
		return "4:2:2"
	case strings.Contains(lower, "420"):
		return "4:2:0"
	}
	return ""
}

func bitDepthFromPixFmt(pixFmt string) int64 {
	lower := strings.ToLower(pixFmt)
	switch {
	case strings.Contains(lower, "12le"), strings.Contains(lower, "12be"):
		return 12
	case strings.Contains(lower, "10le"), strings.Contains(lower, "10be"):
		return 10
	case strings.HasPrefix(lower, "yuv"), strings.HasPrefix(lower, "rgb"), strings.HasPrefix(lower, "bgr"):
		return 8
	}
	return 0
}

// hdrLabel derives an HDR format name from the stream's transfer
// characteristics and side data.
func hdrLabel(stream ffprobe.Stream) string {
	for _, sd := range stream.SideDataList {
		if strings.Contains(strings.ToLower(sd.Type), "dolby vision") {
			return "Dolby Vision"
		}
	}
	switch strings.ToLower(firstNonEmpty(stream.ColorTransfer, stream.ColorTRC)) {
	case "smpte2084":
		return "HDR10"
	case "arib-std-b67":
		return "HLG"
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
