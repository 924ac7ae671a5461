package naming

import (
	"fmt"
	"path/filepath"
	"strings"

	"nfomaker/internal/media"
	"nfomaker/internal/textutil"
)

// DefaultGroup is the release group tag used when none is configured.
const DefaultGroup = "TSC"

// Placeholder tags for fields that could not be derived.
const (
	placeholderYear       = "YEAR"
	placeholderLang       = "LANG"
	placeholderResolution = "RESOLUTION"
	placeholderSource     = "SOURCE"
	placeholderVideo      = "VIDEO"
)

// ReleaseName proposes a conventional release filename of the form
// Title.Year.LANG.RESOLUTION.SOURCE.CODEC-GROUP.ext. Fields that cannot be
// derived keep uppercase placeholder tags so the caller can spot them.
func ReleaseName(path, title string, year int, tech *media.TechInfo, source, group string) string {
	baseTitle := title
	if baseTitle == "" && tech != nil {
		baseTitle = tech.General.Filename
	}
	if baseTitle == "" {
		baseTitle = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	titleSlug := textutil.DotSlug(baseTitle)

	yearTag := placeholderYear
	if year > 0 {
		yearTag = fmt.Sprintf("%d", year)
	}

	langTag := placeholderLang
	resolutionTag := placeholderResolution
	videoTag := placeholderVideo
	if tech != nil {
		langTag = languageTag(tech.Audios)
		if len(tech.Videos) > 0 {
			if label := textutil.QualityLabel(tech.Videos[0].Width, tech.Videos[0].Height); label != textutil.NotAvailable {
				resolutionTag = label
			}
			videoTag = codecTag(tech.Videos[0].Codec)
		}
	}

	sourceTag := strings.ToUpper(strings.TrimSpace(source))
	if sourceTag == "" {
		sourceTag = placeholderSource
	}
	if group == "" {
		group = DefaultGroup
	}

	ext := filepath.Ext(path)
	return fmt.Sprintf("%s.%s.%s.%s.%s.%s-%s%s",
		titleSlug, yearTag, langTag, resolutionTag, sourceTag, videoTag, group, ext)
}

// languageTag summarizes the audio languages: MULTi for several, the single
// code otherwise.
func languageTag(audios []media.AudioTrack) string {
	var langs []string
	for _, audio := range audios {
		lang := strings.ToUpper(strings.TrimSpace(audio.Language))
		if lang != "" && !containsString(langs, lang) {
			langs = append(langs, lang)
		}
	}
	switch len(langs) {
	case 0:
		return placeholderLang
	case 1:
		return langs[0]
	default:
		return "MULTi"
	}
}

func codecTag(codec string) string {
	switch strings.ToLower(strings.TrimSpace(codec)) {
	case "hevc", "h265", "h.265", "x265":
		return "H265"
	case "avc", "h264", "h.264", "x264":
		return "H264"
	case "av1":
		return "AV1"
	case "":
		return placeholderVideo
	}
	return strings.ToUpper(strings.ReplaceAll(codec, " ", ""))
}
