package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cardkeep/cardkeep/internal/entity"
	"github.com/cardkeep/cardkeep/internal/extract"
	"github.com/cardkeep/cardkeep/internal/repository"
)

type fakeContacts struct {
	contacts []*entity.Contact
}

func (f *fakeContacts) Save(context.Context, extract.ContactFields) (*entity.Contact, error) {
	return nil, nil
}

func (f *fakeContacts) ListContacts(_ context.Context, search string) ([]*entity.Contact, error) {
	if search == "" {
		return f.contacts, nil
	}
	out := []*entity.Contact{}
	for _, c := range f.contacts {
		if c.Organization == search {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeContacts) GetByID(context.Context, uuid.UUID) (*entity.Contact, error) {
	return nil, nil
}

func (f *fakeContacts) GetByName(context.Context, string) (*entity.Contact, error) {
	return nil, nil
}

func (f *fakeContacts) UpdateByID(context.Context, uuid.UUID, repository.ContactUpdate) (*entity.Contact, error) {
	return nil, nil
}

func (f *fakeContacts) UpdateByName(context.Context, string, repository.ContactUpdate) (*entity.Contact, error) {
	return nil, nil
}

func (f *fakeContacts) DeleteByID(context.Context, uuid.UUID) error { return nil }

func (f *fakeContacts) DeleteByName(context.Context, string) error { return nil }

func TestExportContactsXLSX(t *testing.T) {
	repo := &fakeContacts{contacts: []*entity.Contact{
		{
			ID:            uuid.New(),
			FullName:      "Jane Doe",
			Organization:  "Acme Corp",
			JobTitle:      "VP Sales",
			ContactNumber: "+15551234567",
			BusinessEmail: "jane@acme.com",
			BusinessURL:   "www.acme.com",
			CreatedAt:     time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:           uuid.New(),
			FullName:     "John Smith",
			Organization: "Globex",
			CreatedAt:    time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC),
		},
	}}
	svc := NewService(repo, nil)

	out, err := svc.ExportContactsXLSX(context.Background(), "")
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Contacts")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, "Full Name", rows[0][0])
	require.Equal(t, "Business Email", rows[0][4])

	require.Equal(t, "Jane Doe", rows[1][0])
	require.Equal(t, "jane@acme.com", rows[1][4])
	require.Equal(t, "2026-03-14", rows[1][10])
	require.Equal(t, "John Smith", rows[2][0])
}

func TestExportContactsXLSXSearch(t *testing.T) {
	repo := &fakeContacts{contacts: []*entity.Contact{
		{ID: uuid.New(), FullName: "Jane Doe", Organization: "Acme Corp"},
		{ID: uuid.New(), FullName: "John Smith", Organization: "Globex"},
	}}
	svc := NewService(repo, nil)

	out, err := svc.ExportContactsXLSX(context.Background(), "Globex")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Contacts")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "John Smith", rows[1][0])
}

func TestExportContactsXLSXEmpty(t *testing.T) {
	svc := NewService(&fakeContacts{}, nil)

	out, err := svc.ExportContactsXLSX(context.Background(), "")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Contacts")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
