package media

import (
	"context"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

var execCommandContext = exec.CommandContext

// FFmpegExtractor demuxes the audio track of a video file into an mp3 by
// shelling out to ffmpeg.
type FFmpegExtractor struct{}

// Extract writes the audio track of videoPath to a sibling .mp3 file and
// returns its path. The caller owns both files.
func (e *FFmpegExtractor) Extract(ctx context.Context, videoPath string) (string, error) {
	audioPath := strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) + ".mp3"

	cmd := execCommandContext(ctx, "ffmpeg",
		"-y",
		"-i", videoPath,
		"-vn", // drop the video stream
		"-acodec", "libmp3lame",
		audioPath,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		log.Printf("ffmpeg failed: %v, output: %s", err, string(output))
		return "", &ExtractionError{Err: err}
	}

	// ffmpeg can exit 0 without producing output on sources with no audio
	// track, so check the artifact exists.
	if _, err := os.Stat(audioPath); err != nil {
		return "", &ExtractionError{Err: err}
	}

	return audioPath, nil
}
