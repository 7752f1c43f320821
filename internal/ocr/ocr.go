// Package ocr drives the external OCR engine (tesseract) and converts card
// photos into ordered recognized text lines with bounding boxes and
// confidence scores. The boxes are only ever used for visualization; the
// extraction core consumes the line text alone.
package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/cardkeep/cardkeep/constants"
	"github.com/cardkeep/cardkeep/internal/common"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	TessdataDir   string
	HeicConverter string

	// AcceleratedBinary, when set, is probed first (e.g. an OpenCL build of
	// tesseract); on probe failure the engine silently falls back to the
	// plain binary.
	AcceleratedBinary string

	PSM int // e.g., 6 is good for uniform block of text
	OEM int // 1 = LSTM; leave 0 to use default

	ArtifactCacheDir string
}

// Box is one detected text region, in pixel coordinates of the source image.
type Box struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Line is one OCR-recognized text line.
type Line struct {
	Text       string
	Box        Box
	Confidence float32 // 0..1, mean word confidence
}

// Result holds the full output of one OCR pass.
type Result struct {
	Lines      []Line
	Text       string // newline-joined line text
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32 // mean over lines
}

// Texts returns just the ordered line strings, the shape the extraction
// core consumes.
func (r Result) Texts() []string {
	out := make([]string, len(r.Lines))
	for i, ln := range r.Lines {
		out[i] = ln.Text
	}
	return out
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.ArtifactCacheDir == "" {
		cfg.ArtifactCacheDir = "./tmp"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Lines runs the engine over one card image and returns the recognized
// lines in reading order. HEIC photos are converted to PNG first.
func (e *Extractor) Lines(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("starting ocr pass",
		"path", path, "ext", ext, "scan_job_id", common.ScanJobIDFromContext(ctx))

	if constants.MapExtToFormat(ext) == "" {
		e.logger.Error("unsupported ocr extension", "extension", ext)
		return Result{}, fmt.Errorf("unsupported extension: %q", ext)
	}

	var warns []string
	if constants.IsHEICExt(ext) {
		out, w, cleanup, err := convertHEICtoPNG(ctx, e.runner, e.cfg.HeicConverter, path)
		warns = append(warns, w...)
		if cleanup != nil {
			defer cleanup()
		}
		if err != nil {
			e.logger.Error("heic conversion failed", "path", path, "error", err)
			return Result{Warnings: warns}, err
		}
		path = out
	}

	res, err := e.recognize(ctx, path)
	res.Duration = time.Since(start)
	res.Warnings = append(res.Warnings, warns...)
	return res, err
}

func (e *Extractor) recognize(ctx context.Context, path string) (Result, error) {
	binary := e.binary(ctx)

	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", fmt.Sprintf("%d", e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	args = append(args, "tsv")

	out, errb, err := e.runner.Run(ctx, binary, args...)
	if err != nil {
		return Result{Warnings: []string{string(errb)}}, fmt.Errorf("tesseract: %w", err)
	}

	lines := parseTSVLines(string(out))
	var sum float32
	texts := make([]string, len(lines))
	for i, ln := range lines {
		texts[i] = ln.Text
		sum += ln.Confidence
	}
	var mean float32
	if len(lines) > 0 {
		mean = sum / float32(len(lines))
	}

	return Result{
		Lines:      lines,
		Text:       joinLines(texts),
		Language:   e.cfg.TesseractLang,
		Confidence: mean,
	}, nil
}
