// Package video encodes animation frame sequences into video files using
// an external ffmpeg binary.
//
// Encoding is an optional capability: Detect reports whether ffmpeg is
// present, and callers that get no encoder simply skip video output.
// Frames are streamed to ffmpeg as raw rgb24 data over stdin, so no
// intermediate image files touch the disk.
package video

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os/exec"
	"strconv"
)

// Sentinel errors for the video package.
var (
	// ErrNoFrames is returned when Encode is called with an empty sequence.
	ErrNoFrames = errors.New("video: no frames to encode")

	// ErrFrameSize is returned when frames in one sequence differ in size.
	ErrFrameSize = errors.New("video: inconsistent frame dimensions")
)

// Encoder turns an ordered frame sequence into a video file at path.
type Encoder interface {
	Encode(frames []*image.RGBA, fps int, path string) error
}

// FFmpeg encodes by piping raw rgb24 frames into an ffmpeg subprocess.
type FFmpeg struct {
	bin string
}

// Compile-time check that FFmpeg satisfies Encoder.
var _ Encoder = (*FFmpeg)(nil)

// Detect looks for ffmpeg on PATH. The boolean result is the capability
// signal: false means video output should be skipped, not that anything
// failed.
func Detect() (*FFmpeg, bool) {
	bin, err := exec.LookPath("ffmpeg")
	if err != nil {
		return nil, false
	}
	return &FFmpeg{bin: bin}, true
}

// Encode implements Encoder. All frames must share one size.
func (f *FFmpeg) Encode(frames []*image.RGBA, fps int, path string) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	w := frames[0].Rect.Dx()
	h := frames[0].Rect.Dy()

	raw, err := rawRGB(frames, w, h)
	if err != nil {
		return err
	}

	cmd := exec.Command(f.bin, encodeArgs(w, h, fps, path)...)
	cmd.Stdin = bytes.NewReader(raw)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("video: ffmpeg: %w: %s", err, stderr.String())
	}
	return nil
}

// encodeArgs builds the ffmpeg invocation: raw rgb24 on stdin, H.264 in a
// yuv420p pixel format for broad player compatibility.
func encodeArgs(w, h, fps int, path string) []string {
	return []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgb24",
		"-video_size", fmt.Sprintf("%dx%d", w, h),
		"-framerate", strconv.Itoa(fps),
		"-i", "pipe:0",
		"-c:v", "libx264",
		"-preset", "ultrafast",
		"-crf", "23",
		"-pix_fmt", "yuv420p",
		path,
	}
}

// rawRGB flattens the frames into contiguous rgb24 bytes, dropping the
// alpha channel.
func rawRGB(frames []*image.RGBA, w, h int) ([]byte, error) {
	out := make([]byte, 0, len(frames)*w*h*3)
	for _, f := range frames {
		if f.Rect.Dx() != w || f.Rect.Dy() != h {
			return nil, ErrFrameSize
		}
		for y := f.Rect.Min.Y; y < f.Rect.Max.Y; y++ {
			row := f.Pix[f.PixOffset(f.Rect.Min.X, y):f.PixOffset(f.Rect.Max.X, y)]
			for i := 0; i < len(row); i += 4 {
				out = append(out, row[i], row[i+1], row[i+2])
			}
		}
	}
	return out, nil
}
