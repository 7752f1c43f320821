package server

import (
	"context"

	cardspb "github.com/cardkeep/cardkeep/gen/proto/cards/v1"
)

// CardsServer stitches the scan and contact halves into the single
// CardsService the wire contract exposes.
type CardsServer struct {
	cardspb.UnimplementedCardsServiceServer
	scan     *ScanService
	contacts *ContactsService
}

func NewCardsServer(scan *ScanService, contacts *ContactsService) *CardsServer {
	return &CardsServer{scan: scan, contacts: contacts}
}

func (s *CardsServer) ScanCard(ctx context.Context, req *cardspb.ScanCardRequest) (*cardspb.ScanCardResponse, error) {
	return s.scan.ScanCard(ctx, req)
}

func (s *CardsServer) SaveContact(ctx context.Context, req *cardspb.SaveContactRequest) (*cardspb.SaveContactResponse, error) {
	return s.contacts.SaveContact(ctx, req)
}

func (s *CardsServer) ListContacts(ctx context.Context, req *cardspb.ListContactsRequest) (*cardspb.ListContactsResponse, error) {
	return s.contacts.ListContacts(ctx, req)
}

func (s *CardsServer) GetContact(ctx context.Context, req *cardspb.GetContactRequest) (*cardspb.GetContactResponse, error) {
	return s.contacts.GetContact(ctx, req)
}

func (s *CardsServer) UpdateContact(ctx context.Context, req *cardspb.UpdateContactRequest) (*cardspb.UpdateContactResponse, error) {
	return s.contacts.UpdateContact(ctx, req)
}

func (s *CardsServer) DeleteContact(ctx context.Context, req *cardspb.DeleteContactRequest) (*cardspb.DeleteContactResponse, error) {
	return s.contacts.DeleteContact(ctx, req)
}

func (s *CardsServer) ExportContacts(ctx context.Context, req *cardspb.ExportContactsRequest) (*cardspb.ExportContactsResponse, error) {
	return s.contacts.ExportContacts(ctx, req)
}
