package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/cardkeep/cardkeep/gen/ent"
	"github.com/cardkeep/cardkeep/internal/common"
	"github.com/cardkeep/cardkeep/internal/ocr"
	"github.com/cardkeep/cardkeep/internal/pipeline"
	repo "github.com/cardkeep/cardkeep/internal/repository"
)

// runscan scans a single card image and prints the extracted fields.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runscan <image-path>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer func(entc *ent.Client) {
		if cerr := entc.Close(); cerr != nil {
			logger.Error("close ent client", "error", cerr)
		}
	}(entc)
	if pool != nil {
		defer pool.Close()
	}

	jobsRepo := repo.NewScanJobRepository(entc, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:         cfg.OCR.Tesseract,
		TesseractLang:     cfg.OCR.TesseractLang,
		TessdataDir:       cfg.OCR.TessdataDir,
		AcceleratedBinary: cfg.OCR.AcceleratedBinary,
		HeicConverter:     cfg.OCR.HeicConverter,
		PSM:               cfg.OCR.PSM,
		ArtifactCacheDir:  cfg.OCR.ArtifactCacheDir,
	}, logger)

	p := pipeline.NewPipeline(jobsRepo, extractor, logger)

	start := time.Now()
	res, err := p.Run(ctx, path)
	dur := time.Since(start)

	if err != nil {
		logger.Error("scan failed",
			"job_id", res.JobID, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	job, err := jobsRepo.GetByID(ctx, res.JobID)
	if err != nil {
		logger.Error("fetch job failed", "job_id", res.JobID, "error", err)
		os.Exit(1)
	}

	status := ""
	if job.Status != nil {
		status = *job.Status
	}
	logger.Info("scan OK",
		"job_id", res.JobID,
		"status", status,
		"lines", len(res.Lines),
		"full_name", res.Fields.FullName,
		"organization", res.Fields.Organization,
		"job_title", res.Fields.JobTitle,
		"contact_number", res.Fields.ContactNumber,
		"business_email", res.Fields.BusinessEmail,
		"business_url", res.Fields.BusinessURL,
		"street_address", res.Fields.StreetAddress,
		"duration_ms", dur.Milliseconds(),
	)
}
