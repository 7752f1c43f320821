package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/cardkeep/cardkeep/constants"
	"github.com/cardkeep/cardkeep/gen/ent"
	"github.com/cardkeep/cardkeep/internal/entity"
	"github.com/cardkeep/cardkeep/internal/ocr"
)

type fakeRecognizer struct {
	res ocr.Result
	err error
}

func (f *fakeRecognizer) Lines(context.Context, string) (ocr.Result, error) {
	return f.res, f.err
}

// fakeJobs records the job lifecycle in memory.
type fakeJobs struct {
	id        uuid.UUID
	status    constants.JobStatus
	ocrText   string
	lineCount int
	extracted []byte
	failMsg   string
}

func (f *fakeJobs) Start(_ context.Context, _, _ string) (*ent.ScanJob, error) {
	f.id = uuid.New()
	f.status = constants.JobStatusRunning
	return &ent.ScanJob{ID: f.id}, nil
}

func (f *fakeJobs) FinishOCRSuccess(_ context.Context, _ uuid.UUID, ocrText string, lineCount int, _ float32) error {
	f.status = constants.JobStatusOCROK
	f.ocrText = ocrText
	f.lineCount = lineCount
	return nil
}

func (f *fakeJobs) FinishExtractSuccess(_ context.Context, _ uuid.UUID, extracted []byte) error {
	f.status = constants.JobStatusExtractOK
	f.extracted = extracted
	return nil
}

func (f *fakeJobs) FinishFailure(_ context.Context, _ uuid.UUID, message string) error {
	f.status = constants.JobStatusFailed
	f.failMsg = message
	return nil
}

func (f *fakeJobs) SetContactID(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func (f *fakeJobs) GetByID(context.Context, uuid.UUID) (*entity.ScanJob, error) { return nil, nil }

func cardResult(texts ...string) ocr.Result {
	lines := make([]ocr.Line, len(texts))
	joined := ""
	for i, t := range texts {
		lines[i] = ocr.Line{Text: t, Confidence: 0.9}
		if i > 0 {
			joined += "\n"
		}
		joined += t
	}
	return ocr.Result{Lines: lines, Text: joined, Confidence: 0.9}
}

func TestPipelineRun(t *testing.T) {
	jobs := &fakeJobs{}
	rec := &fakeRecognizer{res: cardResult(
		"John Smith",
		"Senior Engineer",
		"john.smith@acme.com",
		"+1 415-555-0199",
	)}

	p := NewPipeline(jobs, rec, nil)
	res, err := p.Run(context.Background(), "card.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.JobID != jobs.id {
		t.Errorf("job id mismatch")
	}
	if jobs.status != constants.JobStatusExtractOK {
		t.Errorf("job status = %s, want EXTRACT_OK", jobs.status)
	}
	if jobs.lineCount != 4 {
		t.Errorf("line count = %d, want 4", jobs.lineCount)
	}
	if res.Fields.FullName != "John Smith" || res.Fields.ContactNumber != "+14155550199" {
		t.Errorf("fields = %+v", res.Fields)
	}

	var persisted map[string]any
	if err := json.Unmarshal(jobs.extracted, &persisted); err != nil {
		t.Fatalf("persisted record is not JSON: %v", err)
	}
	if persisted["business_email"] != "john.smith@acme.com" {
		t.Errorf("persisted email = %v", persisted["business_email"])
	}
}

func TestPipelineRun_OCRFailureMarksJobFailed(t *testing.T) {
	jobs := &fakeJobs{}
	rec := &fakeRecognizer{err: errors.New("decode failed")}

	p := NewPipeline(jobs, rec, nil)
	if _, err := p.Run(context.Background(), "card.jpg"); err == nil {
		t.Fatal("expected error")
	}
	if jobs.status != constants.JobStatusFailed {
		t.Errorf("job status = %s, want FAILED", jobs.status)
	}
	if jobs.failMsg == "" {
		t.Error("failure message not persisted")
	}
}

func TestPipelineRun_UnsupportedFormat(t *testing.T) {
	p := NewPipeline(&fakeJobs{}, &fakeRecognizer{}, nil)
	if _, err := p.Run(context.Background(), "card.tiff"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestPipelineRun_EmptyCardStillSucceeds(t *testing.T) {
	jobs := &fakeJobs{}
	p := NewPipeline(jobs, &fakeRecognizer{res: ocr.Result{}}, nil)

	res, err := p.Run(context.Background(), "card.png")
	if err != nil {
		t.Fatalf("blank card must not fail: %v", err)
	}
	if !res.Fields.IsEmpty() {
		t.Errorf("fields = %+v, want empty record", res.Fields)
	}
	if jobs.status != constants.JobStatusExtractOK {
		t.Errorf("job status = %s, want EXTRACT_OK", jobs.status)
	}
}
