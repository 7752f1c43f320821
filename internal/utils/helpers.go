package utils

import (
	"time"

	"github.com/cardkeep/cardkeep/gen/ent"
	cardspb "github.com/cardkeep/cardkeep/gen/proto/cards/v1"
	"github.com/cardkeep/cardkeep/internal/entity"
	"github.com/cardkeep/cardkeep/internal/extract"
	"github.com/cardkeep/cardkeep/internal/ocr"
)

func ToContact(e *ent.Contact) *entity.Contact {
	return &entity.Contact{
		ID:            e.ID,
		FullName:      e.FullName,
		Organization:  e.Organization,
		JobTitle:      e.JobTitle,
		ContactNumber: e.ContactNumber,
		BusinessEmail: e.BusinessEmail,
		BusinessURL:   e.BusinessURL,
		StreetAddress: e.StreetAddress,
		LocationCity:  e.LocationCity,
		LocationState: e.LocationState,
		PostalCode:    e.PostalCode,
		RawText:       e.RawText,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToScanJob(e *ent.ScanJob) *entity.ScanJob {
	return &entity.ScanJob{
		ID:            e.ID,
		SourcePath:    e.SourcePath,
		Format:        e.Format,
		StartedAt:     e.StartedAt,
		FinishedAt:    e.FinishedAt,
		Status:        e.Status,
		ErrorMessage:  e.ErrorMessage,
		OCRConfidence: e.OcrConfidence,
		LineCount:     e.LineCount,
		OCRText:       e.OcrText,
		ExtractedJSON: e.ExtractedJSON,
		ContactID:     e.ContactID,
	}
}

func ToPBContact(c *entity.Contact) *cardspb.Contact {
	return &cardspb.Contact{
		Id:            c.ID.String(),
		FullName:      c.FullName,
		Organization:  c.Organization,
		JobTitle:      c.JobTitle,
		ContactNumber: c.ContactNumber,
		BusinessEmail: c.BusinessEmail,
		BusinessUrl:   c.BusinessURL,
		StreetAddress: c.StreetAddress,
		LocationCity:  c.LocationCity,
		LocationState: c.LocationState,
		PostalCode:    c.PostalCode,
		RawText:       c.RawText,
		CreatedAt:     c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBFields(f extract.ContactFields) *cardspb.ContactFields {
	return &cardspb.ContactFields{
		FullName:      f.FullName,
		Organization:  f.Organization,
		JobTitle:      f.JobTitle,
		ContactNumber: f.ContactNumber,
		BusinessEmail: f.BusinessEmail,
		BusinessUrl:   f.BusinessURL,
		StreetAddress: f.StreetAddress,
		LocationCity:  f.LocationCity,
		LocationState: f.LocationState,
		PostalCode:    f.PostalCode,
		RawText:       f.RawText,
	}
}

func FromPBFields(f *cardspb.ContactFields) extract.ContactFields {
	if f == nil {
		return extract.ContactFields{}
	}
	return extract.ContactFields{
		FullName:      f.GetFullName(),
		Organization:  f.GetOrganization(),
		JobTitle:      f.GetJobTitle(),
		ContactNumber: f.GetContactNumber(),
		BusinessEmail: f.GetBusinessEmail(),
		BusinessURL:   f.GetBusinessUrl(),
		StreetAddress: f.GetStreetAddress(),
		LocationCity:  f.GetLocationCity(),
		LocationState: f.GetLocationState(),
		PostalCode:    f.GetPostalCode(),
		RawText:       f.GetRawText(),
	}
}

func ToPBLines(lines []ocr.Line) []*cardspb.TextLine {
	out := make([]*cardspb.TextLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, &cardspb.TextLine{
			Text: l.Text,
			Box: &cardspb.Box{
				Left:   int32(l.Box.Left),
				Top:    int32(l.Box.Top),
				Width:  int32(l.Box.Width),
				Height: int32(l.Box.Height),
			},
			Confidence: l.Confidence,
		})
	}
	return out
}
