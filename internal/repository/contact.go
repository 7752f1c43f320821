package repository

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/cardkeep/cardkeep/gen/ent"
	"github.com/cardkeep/cardkeep/gen/ent/contact"
	"github.com/cardkeep/cardkeep/internal/entity"
	"github.com/cardkeep/cardkeep/internal/extract"
	"github.com/cardkeep/cardkeep/internal/utils"
)

// ContactUpdate carries the partial fields of an update; nil pointers leave
// the stored value untouched.
type ContactUpdate struct {
	FullName      *string
	Organization  *string
	JobTitle      *string
	ContactNumber *string
	BusinessEmail *string
	BusinessURL   *string
	StreetAddress *string
	LocationCity  *string
	LocationState *string
	PostalCode    *string
}

type ContactRepository interface {
	Save(ctx context.Context, fields extract.ContactFields) (*entity.Contact, error)
	ListContacts(ctx context.Context, search string) ([]*entity.Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
	GetByName(ctx context.Context, fullName string) (*entity.Contact, error)
	UpdateByID(ctx context.Context, id uuid.UUID, upd ContactUpdate) (*entity.Contact, error)
	UpdateByName(ctx context.Context, fullName string, upd ContactUpdate) (*entity.Contact, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	DeleteByName(ctx context.Context, fullName string) error
}

type contactRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewContactRepository(client *ent.Client, logger *slog.Logger) ContactRepository {
	return &contactRepository{
		client: client,
		logger: logger,
	}
}

func (r *contactRepository) Save(ctx context.Context, fields extract.ContactFields) (*entity.Contact, error) {
	rec, err := r.client.Contact.Create().
		SetFullName(fields.FullName).
		SetOrganization(fields.Organization).
		SetJobTitle(fields.JobTitle).
		SetContactNumber(fields.ContactNumber).
		SetBusinessEmail(fields.BusinessEmail).
		SetBusinessURL(fields.BusinessURL).
		SetStreetAddress(fields.StreetAddress).
		SetLocationCity(fields.LocationCity).
		SetLocationState(fields.LocationState).
		SetPostalCode(fields.PostalCode).
		SetRawText(fields.RawText).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to save contact", "full_name", fields.FullName, "error", err)
		return nil, err
	}
	r.logger.Info("contact saved", "contact_id", rec.ID, "full_name", rec.FullName)
	return utils.ToContact(rec), nil
}

// ListContacts returns contacts most-recently-created first. A non-empty
// search term filters by case-insensitive substring across the text fields.
func (r *contactRepository) ListContacts(ctx context.Context, search string) ([]*entity.Contact, error) {
	recs, err := r.client.Contact.Query().
		Order(ent.Desc(contact.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list contacts", "error", err)
		return nil, err
	}

	result := make([]*entity.Contact, 0, len(recs))
	for _, rec := range recs {
		c := utils.ToContact(rec)
		if search == "" || matchesSearch(c, search) {
			result = append(result, c)
		}
	}
	return result, nil
}

func matchesSearch(c *entity.Contact, term string) bool {
	term = strings.ToLower(term)
	for _, v := range []string{
		c.FullName, c.Organization, c.JobTitle, c.ContactNumber,
		c.BusinessEmail, c.BusinessURL, c.StreetAddress,
		c.LocationCity, c.LocationState, c.PostalCode,
	} {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}

func (r *contactRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	rec, err := r.client.Contact.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToContact(rec), nil
}

// GetByName resolves a contact through its display name; on a name
// collision the most recently created contact wins.
func (r *contactRepository) GetByName(ctx context.Context, fullName string) (*entity.Contact, error) {
	rec, err := r.client.Contact.Query().
		Where(contact.FullName(fullName)).
		Order(ent.Desc(contact.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToContact(rec), nil
}

func (r *contactRepository) UpdateByID(ctx context.Context, id uuid.UUID, upd ContactUpdate) (*entity.Contact, error) {
	builder := r.client.Contact.UpdateOneID(id).
		SetNillableFullName(upd.FullName).
		SetNillableOrganization(upd.Organization).
		SetNillableJobTitle(upd.JobTitle).
		SetNillableContactNumber(upd.ContactNumber).
		SetNillableBusinessEmail(upd.BusinessEmail).
		SetNillableBusinessURL(upd.BusinessURL).
		SetNillableStreetAddress(upd.StreetAddress).
		SetNillableLocationCity(upd.LocationCity).
		SetNillableLocationState(upd.LocationState).
		SetNillablePostalCode(upd.PostalCode)

	rec, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update contact", "contact_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("contact updated", "contact_id", id)
	return utils.ToContact(rec), nil
}

func (r *contactRepository) UpdateByName(ctx context.Context, fullName string, upd ContactUpdate) (*entity.Contact, error) {
	existing, err := r.GetByName(ctx, fullName)
	if err != nil {
		return nil, err
	}
	return r.UpdateByID(ctx, existing.ID, upd)
}

func (r *contactRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Contact.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete contact", "contact_id", id, "error", err)
		return err
	}
	r.logger.Info("contact deleted", "contact_id", id)
	return nil
}

func (r *contactRepository) DeleteByName(ctx context.Context, fullName string) error {
	existing, err := r.GetByName(ctx, fullName)
	if err != nil {
		return err
	}
	return r.DeleteByID(ctx, existing.ID)
}
