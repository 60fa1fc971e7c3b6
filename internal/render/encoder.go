package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os/exec"
	"path/filepath"
)

// Encoder consumes rendered frames in order. It is a pure sink: nothing
// it reports feeds back into the render loop beyond its error.
type Encoder interface {
	// WriteFrame encodes one frame. Frames must arrive in sweep order.
	WriteFrame(img image.Image) error

	// Close finalizes the output. No frames may be written afterwards.
	Close() error
}

// FFmpegEncoder pipes PNG frames to an external ffmpeg process, which
// writes the final video container.
type FFmpegEncoder struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
	path  string
}

// NewFFmpegEncoder starts an ffmpeg process writing to outPath at the
// given frame rate. ffmpegPath is the encoder binary ("ffmpeg" resolves
// through PATH).
func NewFFmpegEncoder(ffmpegPath, outPath string, fps int) (*FFmpegEncoder, error) {
	cmd := exec.Command(ffmpegPath,
		"-y",
		"-f", "image2pipe",
		"-vcodec", "png",
		"-r", fmt.Sprint(fps),
		"-i", "-",
		"-pix_fmt", "yuv420p",
		outPath,
	)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", ffmpegPath, err)
	}

	return &FFmpegEncoder{cmd: cmd, stdin: stdin, path: outPath}, nil
}

// OutputPath returns the path of the video being written.
func (e *FFmpegEncoder) OutputPath() string {
	return e.path
}

// WriteFrame streams one frame to the encoder as PNG.
func (e *FFmpegEncoder) WriteFrame(img image.Image) error {
	return png.Encode(e.stdin, img)
}

// Close ends the frame stream and waits for the encoder to finish the
// container.
func (e *FFmpegEncoder) Close() error {
	if err := e.stdin.Close(); err != nil {
		e.cmd.Wait()
		return err
	}
	if err := e.cmd.Wait(); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(e.path), err)
	}
	return nil
}
