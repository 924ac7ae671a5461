package naming

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// tagTokens are release annotations stripped from filenames before the
// remaining words are treated as the title.
var tagTokens = map[string]struct{}{
	"1080p": {}, "2160p": {}, "720p": {}, "480p": {},
	"4k": {}, "uhd": {}, "hdr": {}, "hdr10": {}, "hdr10plus": {},
	"dv": {}, "dovi": {},
	"bluray": {}, "bdrip": {}, "brrip": {}, "remux": {},
	"web": {}, "webdl": {}, "web-dl": {}, "webrip": {}, "hdrip": {},
	"x264": {}, "x265": {}, "h264": {}, "h265": {},
	"hevc": {}, "avc": {}, "av1": {},
	"aac": {}, "ac3": {}, "eac3": {}, "ddp": {},
	"dts": {}, "dtshd": {}, "truehd": {}, "atmos": {},
	"5.1": {}, "7.1": {}, "2.0": {},
	"10bit": {}, "8bit": {},
	"proper": {}, "repack": {}, "limited": {},
	"multi": {}, "vostfr": {}, "vfi": {}, "vf": {}, "vff": {},
}

// langTokens map filename language markers to display codes.
var langTokens = map[string]string{
	"fr": "FR", "french": "FR",
	"en": "EN", "eng": "EN", "english": "EN",
	"es": "ES", "spa": "ES",
	"de": "DE", "ger": "DE",
	"it": "IT", "ita": "IT",
	"multi": "MULTI",
}

var (
	yearRe       = regexp.MustCompile(`^(19|20)\d{2}$`)
	resolutionRe = regexp.MustCompile(`^\d{3,4}p$`)
	bracketsRe   = regexp.MustCompile(`[\[({].*?[\])}]`)
	groupTailRe  = regexp.MustCompile(`\s*-\s*[^-]+$`)
)

// ParsedName is the metadata guessed from a filename.
type ParsedName struct {
	Title     string
	Year      int
	Languages []string
	Raw       string
}

var titleCaser = cases.Title(language.Und)

// Parse extracts title, year, and language hints from a release-style
// filename. Bracketed groups and a trailing "-GROUP" suffix are dropped,
// known release tags are filtered, and the leftover words become the title.
func Parse(filename string) ParsedName {
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base := strings.NewReplacer(".", " ", "_", " ").Replace(stem)
	base = bracketsRe.ReplaceAllString(base, " ")
	base = groupTailRe.ReplaceAllString(base, " ")

	parsed := ParsedName{Raw: filename}
	var cleaned []string
	for _, token := range strings.Fields(base) {
		lower := strings.ToLower(token)
		if parsed.Year == 0 && yearRe.MatchString(lower) {
			parsed.Year, _ = strconv.Atoi(lower)
			continue
		}
		if lang, ok := langTokens[lower]; ok {
			if !containsString(parsed.Languages, lang) {
				parsed.Languages = append(parsed.Languages, lang)
			}
			continue
		}
		if _, ok := tagTokens[lower]; ok {
			continue
		}
		if resolutionRe.MatchString(lower) {
			continue
		}
		cleaned = append(cleaned, token)
	}

	parsed.Title = strings.TrimSpace(strings.Join(cleaned, " "))
	if parsed.Title == "" {
		parsed.Title = stem
	} else {
		parsed.Title = titleCaser.String(parsed.Title)
	}
	return parsed
}

// sourceTokens map filename markers to canonical source labels.
var sourceTokens = map[string]string{
	"bdrip":  "BDRIP",
	"dvdrip": "DVDRIP",
	"webrip": "WEBRIP",
	"webdl":  "WEBDL",
	"web-dl": "WEBDL",
	"bluray": "BLURAY",
	"remux":  "REMUX",
	"hdrip":  "HDRIP",
	"brrip":  "BRRIP",
}

var sourceSplitRe = regexp.MustCompile(`[^a-z0-9-]+`)

// DetectSource guesses the release source from the filename, returning ""
// when no known marker is present.
func DetectSource(filename string) string {
	for _, token := range sourceSplitRe.Split(strings.ToLower(filename), -1) {
		if source, ok := sourceTokens[token]; ok {
			return source
		}
	}
	return ""
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
