// Package media acquires source videos and extracts their audio tracks.
package media

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	ytdl "github.com/kkdai/youtube/v2"
)

// AcquisitionError reports that a task's source media could not be fetched.
// Scoped to one task; the task stays pending and is retried on the next run.
type AcquisitionError struct {
	Ref string
	Err error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("acquire %s: %v", e.Ref, e.Err)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}

// ExtractionError reports that the audio track could not be extracted from
// an acquired source. Scoped to one task, like AcquisitionError.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract audio: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// DriveDownloader fetches a file's contents from Drive by file id.
// Implemented by storage.Drive.
type DriveDownloader interface {
	Download(ctx context.Context, fileID string) (io.ReadCloser, error)
}

// Resolver turns a task's source reference into a byte stream. Supported
// forms: "drive:<fileid>", YouTube watch URLs, plain http(s) URLs, and local
// file paths.
type Resolver struct {
	drive   DriveDownloader
	http    *http.Client
	youtube *ytdl.Client
}

func NewResolver(drive DriveDownloader) *Resolver {
	return &Resolver{
		drive:   drive,
		http:    http.DefaultClient,
		youtube: &ytdl.Client{},
	}
}

func isYouTubeRef(ref string) bool {
	return strings.Contains(ref, "youtube.com/watch") || strings.Contains(ref, "youtu.be/")
}

func (r *Resolver) Acquire(ctx context.Context, ref string) (io.ReadCloser, error) {
	switch {
	case strings.HasPrefix(ref, "drive:"):
		if r.drive == nil {
			return nil, &AcquisitionError{Ref: ref, Err: fmt.Errorf("no drive client configured")}
		}
		rc, err := r.drive.Download(ctx, strings.TrimPrefix(ref, "drive:"))
		if err != nil {
			return nil, &AcquisitionError{Ref: ref, Err: err}
		}
		return rc, nil

	case isYouTubeRef(ref):
		return r.acquireYouTube(ctx, ref)

	case strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://"):
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
		if err != nil {
			return nil, &AcquisitionError{Ref: ref, Err: err}
		}
		resp, err := r.http.Do(req)
		if err != nil {
			return nil, &AcquisitionError{Ref: ref, Err: err}
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, &AcquisitionError{Ref: ref, Err: fmt.Errorf("unexpected status %s", resp.Status)}
		}
		return resp.Body, nil

	default:
		f, err := os.Open(ref)
		if err != nil {
			return nil, &AcquisitionError{Ref: ref, Err: err}
		}
		return f, nil
	}
}

// acquireYouTube streams the highest-bitrate format that carries an audio
// track, so the extraction stage always has audio to work with.
func (r *Resolver) acquireYouTube(ctx context.Context, ref string) (io.ReadCloser, error) {
	video, err := r.youtube.GetVideoContext(ctx, ref)
	if err != nil {
		return nil, &AcquisitionError{Ref: ref, Err: err}
	}
	formats := video.Formats.WithAudioChannels()
	if len(formats) == 0 {
		return nil, &AcquisitionError{Ref: ref, Err: fmt.Errorf("no format with an audio track")}
	}
	best := formats[0]
	for _, f := range formats[1:] {
		if f.Bitrate > best.Bitrate {
			best = f
		}
	}
	stream, _, err := r.youtube.GetStreamContext(ctx, video, &best)
	if err != nil {
		return nil, &AcquisitionError{Ref: ref, Err: err}
	}
	return stream, nil
}
