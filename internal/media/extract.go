package media

import (
	"context"
	"fmt"
	"path/filepath"

	"nfomaker/internal/media/ffprobe"
	"nfomaker/internal/media/mediainfo"
)

// Extract inspects the file at path and returns its normalized technical
// metadata. MediaInfo is preferred when installed; ffprobe is the fallback.
func Extract(ctx context.Context, path string) (*TechInfo, error) {
	filename := filepath.Base(path)

	if mediainfo.Available() {
		if report, err := mediainfo.Inspect(ctx, mediainfo.Binary, path); err == nil {
			if info := fromMediaInfo(report, filename); len(info.Videos)+len(info.Audios) > 0 || info.General.Container != "" {
				return info, nil
			}
		}
	}

	result, err := ffprobe.Inspect(ctx, "ffprobe", path)
	if err != nil {
		return nil, fmt.Errorf("extract technical metadata (mediainfo/ffprobe): %w", err)
	}
	return fromFFprobe(result, filename), nil
}
