package nfo

import (
	"fmt"
	"strconv"
	"strings"

	"nfomaker/internal/media"
	"nfomaker/internal/render"
	"nfomaker/internal/textutil"
	"nfomaker/internal/tmdb"
)

// videoCodecLabels maps raw codec names to display labels.
var videoCodecLabels = map[string]string{
	"avc":  "H.264 (AVC)",
	"h264": "H.264 (AVC)",
	"hevc": "H.265 (HEVC)",
	"h265": "H.265 (HEVC)",
	"av1":  "AV1",
}

var audioCodecLabels = map[string]string{
	"ac-3":   "AC3",
	"ac3":    "AC3",
	"e-ac-3": "E-AC3",
	"eac3":   "E-AC3",
	"dts":    "DTS",
	"aac":    "AAC",
	"truehd": "TrueHD",
}

// FileInfo carries the file-level facts shown in the File section.
type FileInfo struct {
	Path        string
	SizeBytes   int64
	DurationSec float64
	Hash        string
}

// BuildOptions are manual overrides applied on top of the resolved metadata.
type BuildOptions struct {
	Title     string
	Year      int
	Source    string
	MatchNote string
}

// BuildSections produces the ordered document sections: Header, Movie,
// Summary, General, Video, Audio, Subtitles, File. Sections with nothing to
// say carry the single sentinel line "N/A".
func BuildSections(movie *tmdb.Movie, tech *media.TechInfo, file FileInfo, opts BuildOptions) []render.Section {
	var general media.GeneralInfo
	var videos []media.VideoTrack
	var audios []media.AudioTrack
	var subtitles []media.SubtitleTrack
	if tech != nil {
		general = tech.General
		videos = tech.Videos
		audios = tech.Audios
		subtitles = tech.Subtitles
	}

	title := opts.Title
	year := opts.Year
	if movie != nil {
		if movie.Title != "" {
			title = movie.Title
		}
		if year == 0 {
			year = movie.Year()
		}
	}
	if title == "" {
		title = general.Filename
	}
	if title == "" {
		title = "Unknown"
	}

	return []render.Section{
		{Name: render.SectionHeader, Lines: headerLines(title, year, opts.Source, videos, audios)},
		{Name: "Movie", Lines: movieLines(movie, title, year, opts.MatchNote)},
		{Name: render.SectionSummary, Lines: summaryLines(movie)},
		{Name: "General", Lines: generalLines(general)},
		{Name: "Video", Lines: videoLines(videos)},
		{Name: "Audio", Lines: audioLines(audios)},
		{Name: "Subtitles", Lines: subtitleLines(subtitles)},
		{Name: "File", Lines: fileLines(file)},
	}
}

func headerLines(title string, year int, source string, videos []media.VideoTrack, audios []media.AudioTrack) []string {
	titleLine := title
	if year > 0 {
		titleLine = fmt.Sprintf("%s (%d)", title, year)
	}

	resolution := textutil.NotAvailable
	if len(videos) > 0 {
		resolution = textutil.QualityLabel(videos[0].Width, videos[0].Height)
	}
	if source == "" {
		source = textutil.NotAvailable
	}
	detail := fmt.Sprintf("Source: %s  |  Resolution: %s  |  Video: %s  |  Audio: %s",
		source, resolution, videoSummary(videos), audioSummary(audios))
	return []string{titleLine, detail}
}

func videoSummary(videos []media.VideoTrack) string {
	if len(videos) == 0 {
		return textutil.NotAvailable
	}
	return codecLabel(videos[0].Codec, videoCodecLabels)
}

func audioSummary(audios []media.AudioTrack) string {
	var parts []string
	for _, audio := range audios {
		lang := strings.TrimSpace(audio.Language)
		if lang == "" {
			lang = textutil.NotAvailable
		}
		part := lang + " " + codecLabel(audio.Codec, audioCodecLabels)
		if channels := channelsLabel(audio.Channels); channels != "" {
			part += " " + channels
		}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return textutil.NotAvailable
	}
	return strings.Join(parts, " + ")
}

func movieLines(movie *tmdb.Movie, title string, year int, matchNote string) []string {
	if movie == nil {
		return []string{"Title: " + title}
	}
	var genres []string
	for _, g := range movie.Genres {
		genres = append(genres, g.Name)
	}
	var countries []string
	for _, c := range movie.ProductionCountries {
		countries = append(countries, c.Name)
	}
	runtime := ""
	if movie.Runtime > 0 {
		runtime = fmt.Sprintf("%d min", movie.Runtime)
	}
	yearValue := ""
	if year > 0 {
		yearValue = strconv.Itoa(year)
	}
	imdbURL := ""
	if movie.IMDbID != "" {
		imdbURL = "https://www.imdb.com/title/" + movie.IMDbID + "/"
	}
	lines := keyValues(
		kv{"Title", movie.Title},
		kv{"Original Title", movie.OriginalTitle},
		kv{"Year", yearValue},
		kv{"Runtime", runtime},
		kv{"Genres", strings.Join(genres, ", ")},
		kv{"Countries", strings.Join(countries, ", ")},
		kv{"TMDB URL", movie.URL()},
		kv{"IMDb URL", imdbURL},
		kv{"TMDB Match", matchNote},
	)
	return orNA(lines)
}

func summaryLines(movie *tmdb.Movie) []string {
	if movie == nil || strings.TrimSpace(movie.Overview) == "" {
		return []string{textutil.NotAvailable}
	}
	return []string{movie.Overview}
}

func generalLines(general media.GeneralInfo) []string {
	lines := keyValues(
		kv{"Filename", general.Filename},
		kv{"Extension", general.Extension},
		kv{"File Size", textutil.FormatSize(general.SizeBytes)},
		kv{"Duration", textutil.FormatDuration(general.DurationSec)},
		kv{"Overall Bitrate", textutil.FormatBitrate(general.OverallBitrate)},
		kv{"Container", general.Container},
		kv{"Encoded Date", general.EncodedDate},
		kv{"Writing App", general.WritingApp},
		kv{"Writing Library", general.WritingLibrary},
	)
	return orNA(lines)
}

func videoLines(videos []media.VideoTrack) []string {
	if len(videos) == 0 {
		return []string{textutil.NotAvailable}
	}
	var lines []string
	for idx, video := range videos {
		if len(videos) > 1 {
			lines = append(lines, fmt.Sprintf("Video #%d", idx+1))
		}
		resolution := ""
		if video.Width > 0 && video.Height > 0 {
			resolution = fmt.Sprintf("%dx%d", video.Width, video.Height)
		}
		frameRate := ""
		if video.FrameRate > 0 {
			frameRate = fmt.Sprintf("%.3f FPS", video.FrameRate)
		}
		lines = append(lines, keyValues(
			kv{"Format", codecLabel(video.Codec, videoCodecLabels)},
			kv{"Profile", video.Profile},
			kv{"Bitrate", textutil.FormatBitrate(video.Bitrate)},
			kv{"Resolution", resolution},
			kv{"Aspect Ratio", video.AspectRatio},
			kv{"Frame Rate", frameRate},
			kv{"Scan Type", video.ScanType},
			kv{"Bit Depth", intUnit(video.BitDepth, "bits")},
			kv{"Chroma", video.Chroma},
			kv{"Color Primaries", video.ColorPrimaries},
			kv{"Transfer", video.ColorTransfer},
			kv{"Matrix", video.ColorMatrix},
			kv{"HDR", video.HDR},
		)...)
		if len(videos) > 1 {
			lines = append(lines, "")
		}
	}
	return orNA(lines)
}

func audioLines(audios []media.AudioTrack) []string {
	if len(audios) == 0 {
		return []string{textutil.NotAvailable}
	}
	var lines []string
	for idx, audio := range audios {
		lines = append(lines, fmt.Sprintf("Audio #%d", idx+1))
		lines = append(lines, keyValues(
			kv{"Format", codecLabel(audio.Codec, audioCodecLabels)},
			kv{"Bitrate", textutil.FormatBitrate(audio.Bitrate)},
			kv{"Channels", channelsLabel(audio.Channels)},
			kv{"Channel Layout", audio.ChannelLayout},
			kv{"Sample Rate", intUnit(audio.SampleRate, "Hz")},
			kv{"Language", audio.Language},
			kv{"Title", audio.Title},
			kv{"Default", boolLabel(audio.Default)},
			kv{"Forced", boolLabel(audio.Forced)},
			kv{"Delay", delayLabel(audio.DelayMS)},
		)...)
		lines = append(lines, "")
	}
	return orNA(lines)
}

func subtitleLines(subtitles []media.SubtitleTrack) []string {
	if len(subtitles) == 0 {
		return []string{textutil.NotAvailable}
	}
	var lines []string
	for idx, sub := range subtitles {
		lines = append(lines, fmt.Sprintf("Subtitle #%d", idx+1))
		lines = append(lines, keyValues(
			kv{"Format", sub.Format},
			kv{"Language", sub.Language},
			kv{"Title", sub.Title},
			kv{"Default", boolLabel(sub.Default)},
			kv{"Forced", boolLabel(sub.Forced)},
		)...)
		lines = append(lines, "")
	}
	return orNA(lines)
}

func fileLines(file FileInfo) []string {
	lines := keyValues(
		kv{"Size", textutil.FormatSize(file.SizeBytes)},
		kv{"Duration", textutil.FormatDuration(file.DurationSec)},
		kv{"Hash", file.Hash},
	)
	return orNA(lines)
}

type kv struct {
	key   string
	value string
}

// keyValues renders "Key: Value" lines, skipping empty values.
func keyValues(pairs ...kv) []string {
	var lines []string
	for _, pair := range pairs {
		if pair.value == "" {
			continue
		}
		lines = append(lines, pair.key+": "+pair.value)
	}
	return lines
}

func orNA(lines []string) []string {
	if len(lines) == 0 {
		return []string{textutil.NotAvailable}
	}
	return lines
}

func codecLabel(codec string, labels map[string]string) string {
	codec = strings.TrimSpace(codec)
	if codec == "" {
		return textutil.NotAvailable
	}
	if label, ok := labels[strings.ToLower(codec)]; ok {
		return label
	}
	return codec
}

var channelNames = map[int64]string{1: "1.0", 2: "2.0", 6: "5.1", 8: "7.1"}

func channelsLabel(channels int64) string {
	if channels <= 0 {
		return ""
	}
	if name, ok := channelNames[channels]; ok {
		return name
	}
	return strconv.FormatInt(channels, 10)
}

func boolLabel(value *bool) string {
	if value == nil {
		return ""
	}
	if *value {
		return "Yes"
	}
	return "No"
}

func intUnit(value int64, unit string) string {
	if value <= 0 {
		return ""
	}
	return fmt.Sprintf("%d %s", value, unit)
}

func delayLabel(ms int64) string {
	if ms == 0 {
		return ""
	}
	return fmt.Sprintf("%d ms", ms)
}
