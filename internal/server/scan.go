package server

import (
	"context"
	"log/slog"
	"strings"

	cardspb "github.com/cardkeep/cardkeep/gen/proto/cards/v1"
	"github.com/cardkeep/cardkeep/internal/common"
	"github.com/cardkeep/cardkeep/internal/pipeline"
	"github.com/cardkeep/cardkeep/internal/utils"
	"github.com/cardkeep/cardkeep/internal/vision"
)

// ScanService runs the OCR and extraction half of CardsService.
type ScanService struct {
	pipeline *pipeline.Pipeline
	logger   *slog.Logger
}

func NewScanService(p *pipeline.Pipeline, logger *slog.Logger) *ScanService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScanService{pipeline: p, logger: logger}
}

func (s *ScanService) ScanCard(ctx context.Context, req *cardspb.ScanCardRequest) (*cardspb.ScanCardResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("scan request missing path")
		return nil, common.InvalidArgumentError("path is required")
	}

	s.logger.Info("starting card scan", "path", path, "annotate", req.GetAnnotate())
	res, err := s.pipeline.Run(ctx, path)
	if err != nil {
		s.logger.Error("scan.failed", "path", path, "error", err)
		return nil, common.InvalidArgumentErrorf("scan: %v", err)
	}

	resp := &cardspb.ScanCardResponse{
		JobId:  res.JobID.String(),
		Fields: utils.ToPBFields(res.Fields),
		Lines:  utils.ToPBLines(res.Lines),
	}

	if req.GetAnnotate() {
		png, err := vision.AnnotateImage(path, res.Lines)
		if err != nil {
			// annotation is cosmetic; the scan result still stands
			s.logger.Error("annotate.failed", "path", path, "error", err)
		} else {
			resp.AnnotatedPng = png
		}
	}

	return resp, nil
}
