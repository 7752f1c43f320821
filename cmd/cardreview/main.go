package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cardkeep/cardkeep/constants"
	"github.com/cardkeep/cardkeep/internal/common"
	"github.com/cardkeep/cardkeep/internal/ocr"
	"github.com/cardkeep/cardkeep/internal/pipeline"
	repo "github.com/cardkeep/cardkeep/internal/repository"
	"github.com/cardkeep/cardkeep/internal/review"
)

// cardreview scans one card image and walks the reviewer through the
// save / edit / delete workflow on the resulting contact.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: cardreview <image-path>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	entc, pool, err := repo.Open(ctx, repo.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
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

	res, err := pipe.Run(ctx, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scan: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Extracted contact:")
	printFields := func() {
		fmt.Printf("  Full Name:      %s\n", res.Fields.FullName)
		fmt.Printf("  Job Title:      %s\n", res.Fields.JobTitle)
		fmt.Printf("  Contact Number: %s\n", res.Fields.ContactNumber)
		fmt.Printf("  Business Email: %s\n", res.Fields.BusinessEmail)
		fmt.Printf("  Business URL:   %s\n", res.Fields.BusinessURL)
		fmt.Printf("  Street Address: %s\n", res.Fields.StreetAddress)
	}
	printFields()

	saved, err := contactsRepo.Save(ctx, res.Fields)
	if err != nil {
		fmt.Fprintf(os.Stderr, "save: %v\n", err)
		os.Exit(1)
	}
	if err := jobsRepo.SetContactID(ctx, res.JobID, saved.ID); err != nil {
		logger.Warn("link scan to contact failed", "job_id", res.JobID, "error", err)
	}
	fmt.Printf("Saved as %s\n", saved.ID)

	m := review.NewMachine()
	if err := m.Fire(review.EventSelect); err != nil {
		fmt.Fprintf(os.Stderr, "review: %v\n", err)
		os.Exit(1)
	}

	in := bufio.NewScanner(os.Stdin)
	for m.State() != review.Idle {
		switch m.State() {
		case review.Reviewing:
			fmt.Print("review> [e]dit name, [d]elete, [q]uit: ")
		case review.ConfirmingEdit:
			fmt.Print("edit field=value (e.g. email=jane@acme.com, empty cancels): ")
		case review.ConfirmingDelete:
			fmt.Print("really delete? [y/N]: ")
		}
		if !in.Scan() {
			return
		}
		input := strings.TrimSpace(in.Text())

		switch m.State() {
		case review.Reviewing:
			switch strings.ToLower(input) {
			case "e":
				_ = m.Fire(review.EventRequestEdit)
			case "d":
				_ = m.Fire(review.EventRequestWipe)
			case "q":
				_ = m.Fire(review.EventDeselect)
			}
		case review.ConfirmingEdit:
			if input == "" {
				_ = m.Fire(review.EventCancel)
				continue
			}
			upd, ok := parseEdit(input)
			if !ok {
				fmt.Fprintln(os.Stderr, "unrecognized field, try e.g. name=, title=, email=, phone=")
				continue
			}
			if _, err := contactsRepo.UpdateByID(ctx, saved.ID, upd); err != nil {
				fmt.Fprintf(os.Stderr, "update: %v\n", err)
			} else {
				fmt.Println("Updated.")
			}
			_ = m.Fire(review.EventConfirm)
		case review.ConfirmingDelete:
			if strings.EqualFold(input, "y") {
				if err := contactsRepo.DeleteByID(ctx, saved.ID); err != nil {
					fmt.Fprintf(os.Stderr, "delete: %v\n", err)
					_ = m.Fire(review.EventCancel)
					continue
				}
				fmt.Println("Deleted.")
				_ = m.Fire(review.EventConfirm)
			} else {
				_ = m.Fire(review.EventCancel)
			}
		}
	}
}

// parseEdit turns "email=jane@acme.com" into a partial update, accepting the
// loose field labels the review form historically used.
func parseEdit(input string) (repo.ContactUpdate, bool) {
	label, value, found := strings.Cut(input, "=")
	if !found {
		return repo.ContactUpdate{}, false
	}
	kind, ok := constants.CanonicalizeField(label)
	if !ok {
		return repo.ContactUpdate{}, false
	}
	value = strings.TrimSpace(value)

	var upd repo.ContactUpdate
	switch kind {
	case constants.FullName:
		upd.FullName = &value
	case constants.Organization:
		upd.Organization = &value
	case constants.JobTitle:
		upd.JobTitle = &value
	case constants.ContactNumber:
		upd.ContactNumber = &value
	case constants.BusinessEmail:
		upd.BusinessEmail = &value
	case constants.BusinessURL:
		upd.BusinessURL = &value
	case constants.StreetAddress:
		upd.StreetAddress = &value
	case constants.LocationCity:
		upd.LocationCity = &value
	case constants.LocationState:
		upd.LocationState = &value
	case constants.PostalCode:
		upd.PostalCode = &value
	default:
		return repo.ContactUpdate{}, false
	}
	return upd, true
}
