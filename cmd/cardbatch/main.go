package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cardkeep/cardkeep/constants"
	"github.com/cardkeep/cardkeep/internal/common"
	"github.com/cardkeep/cardkeep/internal/export"
	"github.com/cardkeep/cardkeep/internal/ocr"
	"github.com/cardkeep/cardkeep/internal/pipeline"
	repo "github.com/cardkeep/cardkeep/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

// cardbatch scans every card image under a directory, saves the extracted
// contacts, and writes an XLSX roster next to the directory.
func main() {
	var (
		inmem = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir   = flag.String("dir", "", "directory to scan card images from (required)")
		out   = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "contacts.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	dbCfg := repo.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}
	if *inmem {
		dbCfg.Driver = "sqlite"
		dbCfg.DSN = "file:cardbatch?mode=memory&cache=shared"
	}

	entc, pool, err := repo.Open(ctx, dbCfg, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	contactsRepo := repo.NewContactRepository(entc, logger)
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
	pipe := pipeline.NewPipeline(jobsRepo, extractor, logger)

	var scanned, saved, failed int
	err = filepath.WalkDir(*dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != *dir {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			return nil
		}

		scanned++
		res, err := pipe.Run(ctx, path)
		if err != nil {
			logger.Error("scan failed", "path", path, "error", err)
			failed++
			return nil
		}
		if res.Fields.IsEmpty() {
			logger.Info("no fields extracted, skipping save", "path", path)
			return nil
		}

		c, err := contactsRepo.Save(ctx, res.Fields)
		if err != nil {
			logger.Error("save failed", "path", path, "error", err)
			failed++
			return nil
		}
		if err := jobsRepo.SetContactID(ctx, res.JobID, c.ID); err != nil {
			logger.Error("link scan to contact failed", "job_id", res.JobID, "error", err)
		}
		saved++
		return nil
	})
	if err != nil {
		logger.Error("walk failed", "dir", *dir, "error", err)
		os.Exit(1)
	}

	logger.Info("batch done", "scanned", scanned, "saved", saved, "failed", failed)

	exporter := export.NewService(contactsRepo, logger)
	xlsx, err := exporter.ExportContactsXLSX(ctx, "")
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsx, 0o644); err != nil {
		logger.Error("write xlsx failed", "out", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("roster written", "out", *out, "bytes", len(xlsx))
}
