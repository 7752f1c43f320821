package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/cardkeep/cardkeep/gen/ent"
	cardspb "github.com/cardkeep/cardkeep/gen/proto/cards/v1"
	"github.com/cardkeep/cardkeep/internal/common"
	"github.com/cardkeep/cardkeep/internal/entity"
	"github.com/cardkeep/cardkeep/internal/export"
	"github.com/cardkeep/cardkeep/internal/repository"
	"github.com/cardkeep/cardkeep/internal/utils"
)

// ContactsService carries the persistence half of CardsService: saving,
// listing, editing and exporting contact records.
type ContactsService struct {
	contacts repository.ContactRepository
	exporter *export.Service
	logger   *slog.Logger
}

func NewContactsService(contacts repository.ContactRepository, exporter *export.Service, logger *slog.Logger) *ContactsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactsService{
		contacts: contacts,
		exporter: exporter,
		logger:   logger,
	}
}

func (s *ContactsService) SaveContact(ctx context.Context, req *cardspb.SaveContactRequest) (*cardspb.SaveContactResponse, error) {
	fields := utils.FromPBFields(req.GetFields())
	if fields.IsEmpty() {
		s.logger.Error("save contact request carries no fields")
		return nil, common.InvalidArgumentError("at least one contact field is required")
	}

	v := common.NewValidator().
		Field("full_name", fields.FullName, func(n string, val interface{}) *common.ValidationError {
			return common.MaxLength(n, val, 256)
		}).
		Field("business_email", fields.BusinessEmail, common.Email)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	c, err := s.contacts.Save(ctx, fields)
	if err != nil {
		return nil, common.InternalErrorf("save contact: %v", err)
	}
	return &cardspb.SaveContactResponse{Contact: utils.ToPBContact(c)}, nil
}

func (s *ContactsService) ListContacts(ctx context.Context, req *cardspb.ListContactsRequest) (*cardspb.ListContactsResponse, error) {
	search := strings.TrimSpace(req.GetSearch())

	recs, err := s.contacts.ListContacts(ctx, search)
	if err != nil {
		return nil, common.InternalErrorf("list contacts: %v", err)
	}
	s.logger.Info("contacts listed", "search", search, "count", len(recs))

	out := make([]*cardspb.Contact, 0, len(recs))
	for _, c := range recs {
		out = append(out, utils.ToPBContact(c))
	}
	return &cardspb.ListContactsResponse{Contacts: out}, nil
}

func (s *ContactsService) GetContact(ctx context.Context, req *cardspb.GetContactRequest) (*cardspb.GetContactResponse, error) {
	c, err := s.resolve(ctx, req.GetId(), req.GetFullName())
	if err != nil {
		return nil, err
	}
	return &cardspb.GetContactResponse{Contact: utils.ToPBContact(c)}, nil
}

func (s *ContactsService) UpdateContact(ctx context.Context, req *cardspb.UpdateContactRequest) (*cardspb.UpdateContactResponse, error) {
	existing, err := s.resolve(ctx, req.GetId(), req.GetFullName())
	if err != nil {
		return nil, err
	}

	if req.BusinessEmail != nil {
		v := common.NewValidator().Field("business_email", *req.BusinessEmail, common.Email)
		if err := common.ValidateAndReturnError(v); err != nil {
			return nil, err
		}
	}

	upd := repository.ContactUpdate{
		FullName:      req.NewFullName,
		Organization:  req.Organization,
		JobTitle:      req.JobTitle,
		ContactNumber: req.ContactNumber,
		BusinessEmail: req.BusinessEmail,
		BusinessURL:   req.BusinessUrl,
		StreetAddress: req.StreetAddress,
		LocationCity:  req.LocationCity,
		LocationState: req.LocationState,
		PostalCode:    req.PostalCode,
	}

	c, err := s.contacts.UpdateByID(ctx, existing.ID, upd)
	if err != nil {
		return nil, common.InternalErrorf("update contact: %v", err)
	}
	return &cardspb.UpdateContactResponse{Contact: utils.ToPBContact(c)}, nil
}

func (s *ContactsService) DeleteContact(ctx context.Context, req *cardspb.DeleteContactRequest) (*cardspb.DeleteContactResponse, error) {
	existing, err := s.resolve(ctx, req.GetId(), req.GetFullName())
	if err != nil {
		return nil, err
	}

	if err := s.contacts.DeleteByID(ctx, existing.ID); err != nil {
		return nil, common.InternalErrorf("delete contact: %v", err)
	}
	return &cardspb.DeleteContactResponse{Deleted: true}, nil
}

func (s *ContactsService) ExportContacts(ctx context.Context, req *cardspb.ExportContactsRequest) (*cardspb.ExportContactsResponse, error) {
	xlsx, err := s.exporter.ExportContactsXLSX(ctx, strings.TrimSpace(req.GetSearch()))
	if err != nil {
		s.logger.Error("export.xlsx.failed", "error", err)
		return nil, common.InternalError(err.Error())
	}
	return &cardspb.ExportContactsResponse{Xlsx: xlsx}, nil
}

// resolve looks a contact up by id when given, else by full name. Name-keyed
// addressing is for clients that predate surrogate ids; on collision the most
// recent contact wins.
func (s *ContactsService) resolve(ctx context.Context, id, fullName string) (*entity.Contact, error) {
	id = strings.TrimSpace(id)
	fullName = strings.TrimSpace(fullName)

	if id != "" {
		contactID, err := uuid.Parse(id)
		if err != nil {
			s.logger.Error("invalid contact id", "id", id, "error", err)
			return nil, common.InvalidArgumentError("id must be a UUID")
		}
		c, err := s.contacts.GetByID(ctx, contactID)
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("contact not found")
		}
		if err != nil {
			return nil, common.InternalErrorf("get contact: %v", err)
		}
		return c, nil
	}

	if fullName == "" {
		s.logger.Error("contact lookup missing both id and full_name")
		return nil, common.InvalidArgumentError("id or full_name is required")
	}
	c, err := s.contacts.GetByName(ctx, fullName)
	if ent.IsNotFound(err) {
		return nil, common.NotFoundError("contact not found")
	}
	if err != nil {
		return nil, common.InternalErrorf("get contact: %v", err)
	}
	return c, nil
}
