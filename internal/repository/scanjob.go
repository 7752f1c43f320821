package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cardkeep/cardkeep/constants"
	"github.com/cardkeep/cardkeep/gen/ent"
	"github.com/cardkeep/cardkeep/internal/entity"
	"github.com/cardkeep/cardkeep/internal/utils"
)

type ScanJobRepository interface {
	Start(ctx context.Context, sourcePath, format string) (*ent.ScanJob, error)
	FinishOCRSuccess(ctx context.Context, jobID uuid.UUID, ocrText string, lineCount int, confidence float32) error
	FinishExtractSuccess(ctx context.Context, jobID uuid.UUID, extracted []byte) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	SetContactID(ctx context.Context, jobID, contactID uuid.UUID) error
	GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ScanJob, error)
}

type scanJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewScanJobRepository(entc *ent.Client, log *slog.Logger) ScanJobRepository {
	return &scanJobRepo{ent: entc, log: log}
}

func (r *scanJobRepo) Start(ctx context.Context, sourcePath, format string) (*ent.ScanJob, error) {
	job, err := r.ent.ScanJob.
		Create().
		SetSourcePath(sourcePath).
		SetFormat(format).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("scan_job start failed", "source_path", sourcePath, "err", err)
		return nil, err
	}
	r.log.Info("scan_job started", "job_id", job.ID, "source_path", sourcePath, "format", format)
	return job, nil
}

func (r *scanJobRepo) FinishOCRSuccess(ctx context.Context, jobID uuid.UUID, ocrText string, lineCount int, confidence float32) error {
	_, err := r.ent.ScanJob.
		UpdateOneID(jobID).
		SetOcrText(ocrText).
		SetLineCount(lineCount).
		SetOcrConfidence(confidence).
		SetStatus(string(constants.JobStatusOCROK)).
		Save(ctx)
	if err != nil {
		r.log.Error("scan_job finish(OCR_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("scan_job finished OCR", "job_id", jobID, "lines", lineCount, "confidence", confidence)
	return nil
}

func (r *scanJobRepo) FinishExtractSuccess(ctx context.Context, jobID uuid.UUID, extracted []byte) error {
	_, err := r.ent.ScanJob.
		UpdateOneID(jobID).
		SetExtractedJSON(json.RawMessage(extracted)).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusExtractOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("scan_job finish(EXTRACT_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("scan_job finished extraction", "job_id", jobID)
	return nil
}

func (r *scanJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ScanJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("scan_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("scan_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func (r *scanJobRepo) SetContactID(ctx context.Context, jobID, contactID uuid.UUID) error {
	_, err := r.ent.ScanJob.
		UpdateOneID(jobID).
		SetContactID(contactID).
		Save(ctx)
	if err != nil {
		r.log.Error("scan_job link contact failed", "job_id", jobID, "contact_id", contactID, "err", err)
		return err
	}
	return nil
}

func (r *scanJobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ScanJob, error) {
	job, err := r.ent.ScanJob.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return utils.ToScanJob(job), nil
}
