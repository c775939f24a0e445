package engine

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// progress считает отрисованные кадры. В терминале рисует полосу,
// иначе (CI, перенаправленный вывод) печатает строку на каждый готовый сегмент.
type progress interface {
	Frame()
	SegmentDone(name string, done, total int)
	Finish()
}

func newProgress(out io.Writer, totalFrames int) progress {
	if isTerminal(out) {
		return &barProgress{out: out, bar: progressbar.NewOptions64(int64(totalFrames),
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetDescription("[>] Рендеринг"),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("fr"),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionSetWidth(40),
		)}
	}
	return &logProgress{out: out}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type barProgress struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

func (p *barProgress) Frame() {
	p.bar.Add(1)
}

func (p *barProgress) SegmentDone(string, int, int) {}

func (p *barProgress) Finish() {
	p.bar.Finish()
	fmt.Fprintln(p.out)
}

type logProgress struct {
	out    io.Writer
	frames atomic.Int64
}

func (p *logProgress) Frame() {
	p.frames.Add(1)
}

func (p *logProgress) SegmentDone(name string, done, total int) {
	fmt.Fprintf(p.out, "[>] Готово: %d/%d (%s, кадров всего: %d)\n", done, total, name, p.frames.Load())
}

func (p *logProgress) Finish() {}
