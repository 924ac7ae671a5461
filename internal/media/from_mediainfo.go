package media

import (
	"nfomaker/internal/language"
	"nfomaker/internal/media/mediainfo"
	"nfomaker/internal/textutil"
)

// fromMediaInfo normalizes a mediainfo report into TechInfo.
func fromMediaInfo(report mediainfo.Report, filename string) *TechInfo {
	info := &TechInfo{
		General: GeneralInfo{Filename: filename},
		Tool:    ToolMediaInfo,
	}

	for _, track := range report.Media.Tracks {
		switch track.Type() {
		case mediainfo.TrackGeneral:
			info.General.Extension = track.Value("FileExtension")
			info.General.SizeBytes, _ = textutil.ParseBytes(track.Value("FileSize", "FileSize_String3", "FileSize_String"))
			info.General.DurationSec, _ = textutil.ParseDuration(track.Value("Duration", "Duration_String3", "Duration_String2", "Duration_String1"))
			info.General.OverallBitrate, _ = textutil.ParseInt(track.Value("OverallBitRate", "OverallBitRate_String"))
			info.General.Container = track.Value("Format")
			info.General.EncodedDate = track.Value("Encoded_Date", "EncodedDate")
			info.General.WritingApp = track.Value("WritingApplication")
			info.General.WritingLibrary = track.Value("WritingLibrary")
		case mediainfo.TrackVideo:
			video := VideoTrack{
				Codec:          track.Value("Format", "Format_Commercial"),
				Profile:        track.Value("Format_Profile"),
				AspectRatio:    track.Value("DisplayAspectRatio", "DisplayAspectRatio_String"),
				ScanType:       track.Value("ScanType"),
				Chroma:         track.Value("ChromaSubsampling", "ChromaSubsampling_String"),
				ColorPrimaries: track.Value("ColorPrimaries"),
				ColorTransfer:  track.Value("TransferCharacteristics"),
				ColorMatrix:    track.Value("MatrixCoefficients"),
				HDR:            track.Value("HDR_Format", "HDR_Format_Commercial", "HDR_Format_String", "HDR_Format_Compatibility"),
			}
			video.Bitrate, _ = textutil.ParseInt(track.Value("BitRate", "BitRate_String"))
			video.Width, _ = textutil.ParseInt(track.Value("Width"))
			video.Height, _ = textutil.ParseInt(track.Value("Height"))
			video.FrameRate, _ = textutil.ParseFloat(track.Value("FrameRate"))
			video.BitDepth, _ = textutil.ParseInt(track.Value("BitDepth"))
			info.Videos = append(info.Videos, video)
		case mediainfo.TrackAudio:
			audio := AudioTrack{
				Codec:         track.Value("Format", "Format_Commercial"),
				ChannelLayout: track.Value("ChannelLayout", "ChannelLayout_String"),
				Language:      language.Short(track.Value("Language")),
				Title:         track.Value("Title"),
			}
			audio.Bitrate, _ = textutil.ParseInt(track.Value("BitRate", "BitRate_String"))
			audio.Channels, _ = textutil.ParseInt(track.Value("Channels"))
			audio.SampleRate, _ = textutil.ParseInt(track.Value("SamplingRate"))
			audio.DelayMS, _ = textutil.ParseInt(track.Value("DelayRelativeToVideo"))
			if v, ok := track.Bool("Default"); ok {
				audio.Default = boolPtr(v)
			}
			if v, ok := track.Bool("Forced"); ok {
				audio.Forced = boolPtr(v)
			}
			info.Audios = append(info.Audios, audio)
		case mediainfo.TrackText, "Subtitle":
			subtitle := SubtitleTrack{
				Format:   track.Value("Format", "CodecID"),
				Language: language.Short(track.Value("Language")),
				Title:    track.Value("Title"),
			}
			if v, ok := track.Bool("Default"); ok {
				subtitle.Default = boolPtr(v)
			}
			if v, ok := track.Bool("Forced"); ok {
				subtitle.Forced = boolPtr(v)
			}
			info.Subtitles = append(info.Subtitles, subtitle)
		}
	}

	return info
}
