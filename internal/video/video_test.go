package video

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ivlev/promoreel/internal/config"
)

func TestBuildFFmpegArgs(t *testing.T) {
	e := &FFmpegEncoder{}
	params := config.SegmentParams{Width: 1920, Height: 1080, FPS: 30, Frames: 165, Name: "metrics"}

	got := e.buildFFmpegArgs("/tmp/s2.mp4", params, "libx264", 20)
	want := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", "1920x1080",
		"-framerate", "30",
		"-i", "-",
		"-frames:v", "165",
		"-pix_fmt", "yuv420p",
		"-c:v", "libx264",
		"-crf", "20", "-preset", "medium",
		"/tmp/s2.mp4",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestQualityArgs(t *testing.T) {
	tests := []struct {
		encoder string
		quality int
		want    []string
	}{
		{"h264_videotoolbox", 75, []string{"-b:v", "7500k"}},
		{"h264_nvenc", 23, []string{"-cq", "23"}},
		{"libx264", 18, []string{"-crf", "18", "-preset", "medium"}},
		{"", 18, []string{"-crf", "18", "-preset", "medium"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, QualityArgs(tt.encoder, tt.quality)); diff != "" {
			t.Errorf("%q: mismatch (-want +got):\n%s", tt.encoder, diff)
		}
	}
}

func TestWriteRawRGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{1, 2, 3, 4})
	img.SetRGBA(1, 0, color.RGBA{5, 6, 7, 8})

	var buf bytes.Buffer
	if err := WriteRawRGBA(&buf, img); err != nil {
		t.Fatal(err)
	}
	if want := []byte{1, 2, 3, 4, 5, 6, 7, 8}; !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("expected %v, got %v", want, buf.Bytes())
	}

	// A sub-image has a wider stride and must be repacked
	wide := image.NewRGBA(image.Rect(0, 0, 4, 2))
	wide.SetRGBA(2, 1, color.RGBA{9, 9, 9, 9})
	buf.Reset()
	if err := WriteRawRGBA(&buf, wide.SubImage(image.Rect(2, 1, 3, 2))); err != nil {
		t.Fatal(err)
	}
	if want := []byte{9, 9, 9, 9}; !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("expected %v, got %v", want, buf.Bytes())
	}
}

func TestWriteConcatList(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "inputs.txt")
	segs := []string{filepath.Join(dir, "s0.mp4"), filepath.Join(dir, "it's.mp4")}

	if err := writeConcatList(list, segs); err != nil {
		t.Fatalf("writeConcatList failed: %v", err)
	}
	data, err := os.ReadFile(list)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(lines))
	}
	if lines[0] != "file '"+segs[0]+"'" {
		t.Errorf("unexpected entry %s", lines[0])
	}
	if !strings.HasSuffix(lines[1], `it'\''s.mp4'`) {
		t.Errorf("expected escaped quote, got %s", lines[1])
	}
}

func TestConcatenateRejectsEmpty(t *testing.T) {
	e := &FFmpegEncoder{}
	if err := e.Concatenate(t.Context(), nil, "out.mp4", t.TempDir()); err == nil {
		t.Error("expected error for no segments")
	}
}

func TestTail(t *testing.T) {
	if got := tail("a\nb\nc\n", 2); got != "b\nc" {
		t.Errorf("expected last two lines, got %q", got)
	}
	if got := tail("only", 5); got != "only" {
		t.Errorf("expected %q, got %q", "only", got)
	}
}
