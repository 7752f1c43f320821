// Package pipeline wires OCR and field extraction into one scan operation
// with job-level audit persistence.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/cardkeep/cardkeep/constants"
	"github.com/cardkeep/cardkeep/internal/common"
	"github.com/cardkeep/cardkeep/internal/extract"
	"github.com/cardkeep/cardkeep/internal/ocr"
	"github.com/cardkeep/cardkeep/internal/repository"
)

// LineRecognizer is the OCR collaborator: image path in, ordered recognized
// lines out. *ocr.Extractor is the production implementation.
type LineRecognizer interface {
	Lines(ctx context.Context, path string) (ocr.Result, error)
}

// Result is what one scan hands to the review surface.
type Result struct {
	JobID  uuid.UUID
	Fields extract.ContactFields
	Lines  []ocr.Line // geometry for the box overlay
}

type Pipeline struct {
	JobsRepo   repository.ScanJobRepository
	Recognizer LineRecognizer
	Log        *slog.Logger

	schema map[string]any
}

func NewPipeline(jobs repository.ScanJobRepository, rec LineRecognizer, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{
		JobsRepo:   jobs,
		Recognizer: rec,
		Log:        log,
		schema:     extract.BuildContactJSONSchema(),
	}
}

// Run starts a scan job, runs OCR, assembles the contact record, and
// persists both stages. Extraction itself cannot fail; OCR and persistence
// failures mark the job FAILED.
func (p *Pipeline) Run(ctx context.Context, sourcePath string) (Result, error) {
	format := constants.MapExtToFormat(filepath.Ext(sourcePath))
	if format == "" {
		return Result{}, fmt.Errorf("unsupported format: %s", filepath.Ext(sourcePath))
	}

	job, err := p.JobsRepo.Start(ctx, sourcePath, format)
	if err != nil {
		return Result{}, err
	}
	ctx = common.WithScanJobID(ctx, job.ID.String())

	res, err := p.Recognizer.Lines(ctx, sourcePath)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return Result{JobID: job.ID}, common.WrapError(err, "ocr")
	}

	if err := p.JobsRepo.FinishOCRSuccess(ctx, job.ID, res.Text, len(res.Lines), res.Confidence); err != nil {
		return Result{JobID: job.ID}, err
	}

	fields := extract.Extract(res.Texts())

	extracted, err := json.Marshal(fields)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return Result{JobID: job.ID}, common.WrapError(err, "encode record")
	}
	// a schema violation here means a matcher regressed, not a bad card
	if err := extract.ValidateJSONAgainstSchema(p.schema, extracted); err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return Result{JobID: job.ID}, common.WrapError(err, "record schema")
	}

	if err := p.JobsRepo.FinishExtractSuccess(ctx, job.ID, extracted); err != nil {
		return Result{JobID: job.ID}, err
	}

	p.Log.Info("scan.ok",
		"job_id", job.ID, "request_id", common.RequestIDFromContext(ctx),
		"source_path", sourcePath,
		"lines", len(res.Lines), "ocr_confidence", res.Confidence,
		"full_name", fields.FullName, "email", fields.BusinessEmail,
	)

	return Result{JobID: job.ID, Fields: fields, Lines: res.Lines}, nil
}
