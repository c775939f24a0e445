package engine

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/promoreel/internal/config"
	"github.com/ivlev/promoreel/internal/director"
	"github.com/ivlev/promoreel/internal/system"
	"github.com/ivlev/promoreel/internal/video"
)

type VideoProject struct {
	Config   *config.Config
	Director *director.Director
	Encoder  video.VideoEncoder
	// Out receives progress and reports; defaults to os.Stdout
	Out io.Writer

	layers  Layers
	pool    *system.ImagePool
	tempDir string
}

func NewVideoProject(cfg *config.Config, d *director.Director, ve video.VideoEncoder) (*VideoProject, error) {
	layers, err := NewLayers(d)
	if err != nil {
		return nil, err
	}
	return &VideoProject{
		Config:   cfg,
		Director: d,
		Encoder:  ve,
		Out:      os.Stdout,
		layers:   layers,
		pool:     system.NewImagePool(),
	}, nil
}

// Chunks returns one encode job per non-empty timeline segment. Zero-length
// segments are never visible and produce no chunk.
func (p *VideoProject) Chunks() []config.SegmentParams {
	tl := p.Director.Timeline()
	var chunks []config.SegmentParams
	for i, seg := range tl.Segments() {
		if seg.Duration == 0 {
			continue
		}
		chunks = append(chunks, config.SegmentParams{
			Width:      p.Director.Width(),
			Height:     p.Director.Height(),
			FPS:        p.Director.FPS(),
			StartFrame: seg.Start,
			Frames:     seg.Duration,
			Name:       seg.Name,
			Index:      i,
		})
	}
	return chunks
}

// Run renders every chunk in parallel, each straight into its own ffmpeg
// process, and concatenates the results into Config.OutputVideo.
func (p *VideoProject) Run(ctx context.Context) error {
	startTime := time.Now()

	chunks := p.Chunks()
	if len(chunks) == 0 {
		return fmt.Errorf("таймлайн пуст: нечего рендерить")
	}
	total := p.Director.Timeline().Total()

	var err error
	p.tempDir, err = os.MkdirTemp("", "promoreel_")
	if err != nil {
		return err
	}
	if p.Config.KeepTemp {
		fmt.Fprintf(p.Out, "[*] Временные файлы сохранены: %s\n", p.tempDir)
	} else {
		defer os.RemoveAll(p.tempDir)
	}

	workers := p.Config.Workers
	if workers <= 0 {
		workers = system.DefaultWorkers()
	}
	frameBytes := uint64(p.Director.Width() * p.Director.Height() * 4)
	if capped := system.CapWorkers(workers, frameBytes); capped < workers {
		fmt.Fprintf(p.Out, "[!] Воркеров уменьшено до %d из-за нехватки памяти\n", capped)
		workers = capped
	}
	if workers > len(chunks) {
		workers = len(chunks)
	}

	fmt.Fprintln(p.Out, "--- [PROJECT: PROMOREEL] ---")
	fmt.Fprintf(p.Out, "[*] Композиция: %s | Сегментов: %d | Кадров: %d\n", p.Config.CompositionPath, len(chunks), total)
	fmt.Fprintf(p.Out, "[*] Разрешение: %dx%d @ %d FPS | Энкодер: %s | Воркеров: %d\n",
		p.Director.Width(), p.Director.Height(), p.Director.FPS(), p.Config.VideoEncoder, workers)
	fmt.Fprintln(p.Out, "-----------------------------")

	prog := newProgress(p.Out, total)
	results := make([]string, len(chunks))
	var done atomic.Int32
	var renderNanos atomic.Int64

	renderStart := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, chunk := range chunks {
		g.Go(func() error {
			segPath := filepath.Join(p.tempDir, fmt.Sprintf("s%03d.mp4", i))
			spent, err := p.encodeChunk(gctx, segPath, chunk, prog)
			renderNanos.Add(int64(spent))
			if err != nil {
				return fmt.Errorf("сегмент %d (%s): %w", chunk.Index, chunk.Name, err)
			}
			results[i] = segPath
			prog.SegmentDone(chunk.Name, int(done.Add(1)), len(chunks))
			return nil
		})
	}
	err = g.Wait()
	prog.Finish()
	if err != nil {
		return err
	}
	renderEnd := time.Now()

	fmt.Fprintln(p.Out, "[*] Сборка финального видео...")
	concatStart := time.Now()
	if err := p.Encoder.Concatenate(ctx, results, p.Config.OutputVideo, p.tempDir); err != nil {
		return fmt.Errorf("ошибка сборки финального видео: %w", err)
	}

	if p.Config.ShowStats {
		p.report(ctx, stats{
			Frames:    total,
			Segments:  len(chunks),
			Workers:   workers,
			Total:     time.Since(startTime),
			Wall:      renderEnd.Sub(renderStart),
			Rendering: time.Duration(renderNanos.Load()),
			Concat:    time.Since(concatStart),
		})
	}

	fmt.Fprintf(p.Out, "[+++] Успех! Видео сохранено: %s\n", p.Config.OutputVideo)
	return nil
}

// encodeChunk streams the chunk's frames into the encoder and returns the
// time spent drawing them.
func (p *VideoProject) encodeChunk(ctx context.Context, segPath string, chunk config.SegmentParams, prog progress) (time.Duration, error) {
	fr, err := NewFrameRenderer(p.Director, p.layers, p.pool)
	if err != nil {
		return 0, err
	}
	defer fr.Close()

	var spent time.Duration
	err = p.Encoder.EncodeSegment(ctx, segPath, chunk, p.Config.VideoEncoder, p.Config.Quality, func(w io.Writer) error {
		for i := 0; i < chunk.Frames; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			t := time.Now()
			img, err := fr.Render(chunk.StartFrame + i)
			if err != nil {
				return err
			}
			spent += time.Since(t)

			err = video.WriteRawRGBA(w, img)
			fr.Release(img)
			if err != nil {
				return err
			}
			prog.Frame()
		}
		return nil
	})
	return spent, err
}

type stats struct {
	Frames    int
	Segments  int
	Workers   int
	Total     time.Duration
	Wall      time.Duration // render + encode, wall clock
	Rendering time.Duration // sum over workers
	Concat    time.Duration
}

func (p *VideoProject) report(ctx context.Context, s stats) {
	fps := float64(s.Frames) / s.Total.Seconds()
	report := fmt.Sprintf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Total Time: %.2fs\n"+
			"Render + Encode: %.2fs\n"+
			"Rendering (CPU, all workers): %.2fs\n"+
			"Concatenation: %.2fs\n"+
			"Effective FPS: %.2f\n"+
			"----------------------------\n",
		p.Config.BuildVersion, s.Total.Seconds(), s.Wall.Seconds(), s.Rendering.Seconds(), s.Concat.Seconds(), fps,
	)
	fmt.Fprint(p.Out, report)

	expected := float64(s.Frames) / float64(p.Director.FPS())
	if got, err := system.ProbeDuration(ctx, p.Config.OutputVideo); err == nil {
		if math.Abs(got-expected) > 1/float64(p.Director.FPS()) {
			fmt.Fprintf(p.Out, "[!] Длительность видео %.3fs, ожидалось %.3fs\n", got, expected)
		}
	}

	// Логирование в файл
	logEntry := fmt.Sprintf("[%s] Build: %s | Composition: %s | Segments: %d | Frames: %d | Workers: %d | Total: %.2fs | Render: %.2fs | FPS: %.2f\n",
		time.Now().Format("2006-01-02 15:04:05"),
		p.Config.BuildVersion,
		filepath.Base(p.Config.CompositionPath),
		s.Segments,
		s.Frames,
		s.Workers,
		s.Total.Seconds(),
		s.Rendering.Seconds(),
		fps,
	)

	f, err := os.OpenFile("benchmark.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		f.WriteString(logEntry)
		f.Close()
	} else {
		fmt.Fprintf(p.Out, "[!] Не удалось записать benchmark.log: %v\n", err)
	}
}
