package ocr

import (
	"context"
	"sync"
)

// The engine binary is probed once per process and reused across scans; the
// caller hands the Extractor around as a capability.
var (
	engineOnce   sync.Once
	engineBinary string
)

// binary resolves which tesseract binary to invoke. When an accelerated
// build is configured it is probed first; if the probe fails the engine
// falls back to the plain binary rather than failing the scan.
func (e *Extractor) binary(ctx context.Context) string {
	engineOnce.Do(func() {
		engineBinary = e.cfg.Tesseract
		if e.cfg.AcceleratedBinary == "" {
			return
		}
		if _, _, err := e.runner.Run(ctx, e.cfg.AcceleratedBinary, "--version"); err != nil {
			e.logger.Warn("accelerated ocr binary unavailable, falling back",
				"binary", e.cfg.AcceleratedBinary, "fallback", e.cfg.Tesseract, "error", err)
			return
		}
		engineBinary = e.cfg.AcceleratedBinary
	})
	return engineBinary
}

// resetEngineProbe is a test hook.
func resetEngineProbe() {
	engineOnce = sync.Once{}
	engineBinary = ""
}
