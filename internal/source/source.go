// Package source loads the raster assets a composition refers to, such as
// the brand logo, from image files or PDF documents.
package source

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/ivlev/promoreel/internal/analyzer"
)

// logoPad is the margin in pixels kept around trimmed logo artwork
const logoPad = 8

// Source is a paged raster asset
type Source interface {
	PageCount() int
	GetPageDimensions(index int) (width, height float64, err error)
	RenderPage(index int, dpi int) (image.Image, error)
	Close() error
}

// Open picks a Source by file extension: PDFs go through MuPDF, everything
// else is decoded as an image or a directory of images.
func Open(path string) (Source, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return NewFitzPDFSource(path)
	}
	return NewImageSource(path)
}

// LoadLogo returns the first page of the asset at path rendered at dpi and
// cropped to its artwork, so page margins do not shrink the logo on screen.
func LoadLogo(path string, dpi int) (image.Image, error) {
	src, err := Open(path)
	if err != nil {
		return nil, fmt.Errorf("logo %s: %w", path, err)
	}
	defer src.Close()

	if src.PageCount() == 0 {
		return nil, fmt.Errorf("logo %s: no pages", path)
	}
	img, err := src.RenderPage(0, dpi)
	if err != nil {
		return nil, fmt.Errorf("logo %s: %w", path, err)
	}
	trimmed, err := analyzer.Trim(img, logoPad)
	if err != nil {
		return nil, fmt.Errorf("logo %s: trim: %w", path, err)
	}
	return trimmed, nil
}

func checkIndex(index, count int) error {
	if index < 0 || index >= count {
		return fmt.Errorf("page %d out of range [0, %d)", index, count)
	}
	return nil
}

type FitzPDFSource struct {
	doc  *fitz.Document
	path string
}

func NewFitzPDFSource(path string) (*FitzPDFSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	return &FitzPDFSource{doc: doc, path: path}, nil
}

func (f *FitzPDFSource) PageCount() int {
	return f.doc.NumPage()
}

func (f *FitzPDFSource) GetPageDimensions(index int) (float64, float64, error) {
	if err := checkIndex(index, f.PageCount()); err != nil {
		return 0, 0, err
	}
	rect, err := f.doc.Bound(index)
	if err != nil {
		return 0, 0, err
	}
	return float64(rect.Dx()), float64(rect.Dy()), nil
}

// RenderPage opens its own document handle: a fitz.Document must not be
// used from several goroutines at once.
func (f *FitzPDFSource) RenderPage(index int, dpi int) (image.Image, error) {
	if err := checkIndex(index, f.PageCount()); err != nil {
		return nil, err
	}
	workerDoc, err := fitz.New(f.path)
	if err != nil {
		return nil, err
	}
	defer workerDoc.Close()
	return workerDoc.ImageDPI(index, float64(dpi))
}

func (f *FitzPDFSource) Close() error {
	return f.doc.Close()
}
