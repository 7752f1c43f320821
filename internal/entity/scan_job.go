package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ScanJob represents one card scan for data transfer between layers.
type ScanJob struct {
	ID            uuid.UUID       `json:"id"`
	SourcePath    string          `json:"source_path"`
	Format        string          `json:"format"`
	StartedAt     time.Time       `json:"started_at"`
	FinishedAt    *time.Time      `json:"finished_at,omitempty"`
	Status        *string         `json:"status,omitempty"`
	ErrorMessage  *string         `json:"error_message,omitempty"`
	OCRConfidence *float32        `json:"ocr_confidence,omitempty"`
	LineCount     int             `json:"line_count"`
	OCRText       *string         `json:"ocr_text,omitempty"`
	ExtractedJSON json.RawMessage `json:"extracted_json,omitempty"`
	ContactID     *uuid.UUID      `json:"contact_id,omitempty"`
}
