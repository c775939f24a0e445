package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ivlev/promoreel/internal/config"
)

// FrameWriter пишет в w ровно params.Frames кадров raw RGBA по порядку
type FrameWriter func(w io.Writer) error

type VideoEncoder interface {
	EncodeSegment(ctx context.Context, videoPath string, params config.SegmentParams, encoderName string, quality int, frames FrameWriter) error
	Concatenate(ctx context.Context, segmentPaths []string, finalPath string, tmpDir string) error
}

type FFmpegEncoder struct {
	// Binary defaults to "ffmpeg"
	Binary string
}

func (e *FFmpegEncoder) binary() string {
	if e.Binary == "" {
		return "ffmpeg"
	}
	return e.Binary
}

func (e *FFmpegEncoder) EncodeSegment(
	ctx context.Context,
	videoPath string,
	params config.SegmentParams,
	encoderName string,
	quality int,
	frames FrameWriter,
) error {
	args := e.buildFFmpegArgs(videoPath, params, encoderName, quality)

	cmd := exec.CommandContext(ctx, e.binary(), args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("stdin pipe error: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("ffmpeg start error: %w", err)
	}

	// Кадры идут через stdin, без промежуточных файлов на диске
	if err := frames(stdin); err != nil {
		stdin.Close()
		cmd.Wait()
		return fmt.Errorf("write raw error (segment %q): %w", params.Name, err)
	}
	stdin.Close()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg wait error (segment %q): %w\n%s", params.Name, err, tail(out.String(), 20))
	}

	return nil
}

func (e *FFmpegEncoder) buildFFmpegArgs(
	videoPath string,
	params config.SegmentParams,
	encoderName string,
	quality int,
) []string {
	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", params.Width, params.Height),
		"-framerate", fmt.Sprintf("%d", params.FPS),
		"-i", "-",
		"-frames:v", fmt.Sprintf("%d", params.Frames),
		"-pix_fmt", "yuv420p",
		"-c:v", encoderName,
	}
	args = append(args, QualityArgs(encoderName, quality)...)
	args = append(args, videoPath)
	return args
}

// QualityArgs переводит общий параметр качества в флаги конкретного энкодера
func QualityArgs(encoderName string, quality int) []string {
	switch encoderName {
	case "h264_videotoolbox":
		// VideoToolbox не везде поддерживает -q:v, используем битрейт. 75 -> 7.5 Мбит/с
		return []string{"-b:v", fmt.Sprintf("%dk", quality*100)}
	case "h264_nvenc":
		return []string{"-cq", fmt.Sprintf("%d", quality)}
	default: // libx264
		return []string{"-crf", fmt.Sprintf("%d", quality), "-preset", "medium"}
	}
}

// WriteRawRGBA пишет пиксели img без заголовков, строка за строкой
func WriteRawRGBA(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	// Быстрый путь только для RGBA со стандартным шагом (stride) и началом в нуле
	if !ok || rgba.Stride != bounds.Dx()*4 || rgba.Rect.Min.X != 0 || rgba.Rect.Min.Y != 0 {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}
	_, err := w.Write(rgba.Pix)
	return err
}

// Concatenate склеивает сегменты без перекодирования. Таймлайн непрерывный,
// поэтому переходы между сегментами не нужны.
func (e *FFmpegEncoder) Concatenate(ctx context.Context, segmentPaths []string, finalPath string, tmpDir string) error {
	if len(segmentPaths) == 0 {
		return fmt.Errorf("нет сегментов для сборки")
	}

	concatFilePath := filepath.Join(tmpDir, "inputs.txt")
	if err := writeConcatList(concatFilePath, segmentPaths); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, e.binary(), buildConcatArgs(concatFilePath, finalPath)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg concat error: %v, output: %s", err, tail(string(out), 20))
	}
	return nil
}

func buildConcatArgs(listPath, finalPath string) []string {
	return []string{"-y",
		"-f", "concat", "-safe", "0", "-i", listPath,
		"-c", "copy", "-movflags", "+faststart", finalPath,
	}
}

func writeConcatList(path string, segmentPaths []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, p := range segmentPaths {
		absPath, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		// Одинарные кавычки экранируются по правилам concat demuxer
		escaped := strings.ReplaceAll(absPath, "'", `'\''`)
		if _, err := fmt.Fprintf(f, "file '%s'\n", escaped); err != nil {
			return err
		}
	}
	return f.Close()
}

// tail оставляет последние n строк вывода ffmpeg
func tail(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
