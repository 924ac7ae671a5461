package media

// Tool names recorded in TechInfo.Tool.
const (
	ToolMediaInfo = "mediainfo"
	ToolFFprobe   = "ffprobe"
)

// TechInfo is the normalized technical metadata of a single video file.
type TechInfo struct {
	General   GeneralInfo
	Videos    []VideoTrack
	Audios    []AudioTrack
	Subtitles []SubtitleTrack
	Tool      string
}

// GeneralInfo carries container-level facts.
type GeneralInfo struct {
	Filename       string
	Extension      string
	SizeBytes      int64
	DurationSec    float64
	OverallBitrate int64
	Container      string
	EncodedDate    string
	WritingApp     string
	WritingLibrary string
}

// VideoTrack describes a single video stream.
type VideoTrack struct {
	Codec          string
	Profile        string
	Bitrate        int64
	Width          int64
	Height         int64
	AspectRatio    string
	FrameRate      float64
	ScanType       string
	BitDepth       int64
	Chroma         string
	ColorPrimaries string
	ColorTransfer  string
	ColorMatrix    string
	HDR            string
}

// AudioTrack describes a single audio stream. Default and Forced stay nil
// when the source tool did not report the flag.
type AudioTrack struct {
	Codec         string
	Bitrate       int64
	Channels      int64
	ChannelLayout string
	SampleRate    int64
	Language      string
	Title         string
	Default       *bool
	Forced        *bool
	DelayMS       int64
}

// SubtitleTrack describes a single subtitle stream.
type SubtitleTrack struct {
	Format   string
	Language string
	Title    string
	Default  *bool
	Forced   *bool
}

func boolPtr(v bool) *bool { return &v }
