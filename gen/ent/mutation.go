// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cardkeep/cardkeep/gen/ent/contact"
	"github.com/cardkeep/cardkeep/gen/ent/predicate"
	"github.com/cardkeep/cardkeep/gen/ent/scanjob"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeContact = "Contact"
	TypeScanJob = "ScanJob"
)

// ContactMutation represents an operation that mutates the Contact nodes in the graph.
type ContactMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	full_name      *string
	organization   *string
	job_title      *string
	contact_number *string
	business_email *string
	business_url   *string
	street_address *string
	location_city  *string
	location_state *string
	postal_code    *string
	raw_text       *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	scans          map[uuid.UUID]struct{}
	removedscans   map[uuid.UUID]struct{}
	clearedscans   bool
	done           bool
	oldValue       func(context.Context) (*Contact, error)
	predicates     []predicate.Contact
}

var _ ent.Mutation = (*ContactMutation)(nil)

// contactOption allows management of the mutation configuration using functional options.
type contactOption func(*ContactMutation)

// newContactMutation creates new mutation for the Contact entity.
func newContactMutation(c config, op Op, opts ...contactOption) *ContactMutation {
	m := &ContactMutation{
		config:        c,
		op:            op,
		typ:           TypeContact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContactID sets the ID field of the mutation.
func withContactID(id uuid.UUID) contactOption {
	return func(m *ContactMutation) {
		var (
			err   error
			once  sync.Once
			value *Contact
		)
		m.oldValue = func(ctx context.Context) (*Contact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Contact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContact sets the old Contact of the mutation.
func withContact(node *Contact) contactOption {
	return func(m *ContactMutation) {
		m.oldValue = func(context.Context) (*Contact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Contact entities.
func (m *ContactMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContactMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContactMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Contact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFullName sets the "full_name" field.
func (m *ContactMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *ContactMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ClearFullName clears the value of the "full_name" field.
func (m *ContactMutation) ClearFullName() {
	m.full_name = nil
	m.clearedFields[contact.FieldFullName] = struct{}{}
}

// FullNameCleared returns if the "full_name" field was cleared in this mutation.
func (m *ContactMutation) FullNameCleared() bool {
	_, ok := m.clearedFields[contact.FieldFullName]
	return ok
}

// ResetFullName resets all changes to the "full_name" field.
func (m *ContactMutation) ResetFullName() {
	m.full_name = nil
	delete(m.clearedFields, contact.FieldFullName)
}

// SetOrganization sets the "organization" field.
func (m *ContactMutation) SetOrganization(s string) {
	m.organization = &s
}

// Organization returns the value of the "organization" field in the mutation.
func (m *ContactMutation) Organization() (r string, exists bool) {
	v := m.organization
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganization returns the old "organization" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldOrganization(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganization is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganization requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganization: %w", err)
	}
	return oldValue.Organization, nil
}

// ClearOrganization clears the value of the "organization" field.
func (m *ContactMutation) ClearOrganization() {
	m.organization = nil
	m.clearedFields[contact.FieldOrganization] = struct{}{}
}

// OrganizationCleared returns if the "organization" field was cleared in this mutation.
func (m *ContactMutation) OrganizationCleared() bool {
	_, ok := m.clearedFields[contact.FieldOrganization]
	return ok
}

// ResetOrganization resets all changes to the "organization" field.
func (m *ContactMutation) ResetOrganization() {
	m.organization = nil
	delete(m.clearedFields, contact.FieldOrganization)
}

// SetJobTitle sets the "job_title" field.
func (m *ContactMutation) SetJobTitle(s string) {
	m.job_title = &s
}

// JobTitle returns the value of the "job_title" field in the mutation.
func (m *ContactMutation) JobTitle() (r string, exists bool) {
	v := m.job_title
	if v == nil {
		return
	}
	return *v, true
}

// OldJobTitle returns the old "job_title" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldJobTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobTitle: %w", err)
	}
	return oldValue.JobTitle, nil
}

// ClearJobTitle clears the value of the "job_title" field.
func (m *ContactMutation) ClearJobTitle() {
	m.job_title = nil
	m.clearedFields[contact.FieldJobTitle] = struct{}{}
}

// JobTitleCleared returns if the "job_title" field was cleared in this mutation.
func (m *ContactMutation) JobTitleCleared() bool {
	_, ok := m.clearedFields[contact.FieldJobTitle]
	return ok
}

// ResetJobTitle resets all changes to the "job_title" field.
func (m *ContactMutation) ResetJobTitle() {
	m.job_title = nil
	delete(m.clearedFields, contact.FieldJobTitle)
}

// SetContactNumber sets the "contact_number" field.
func (m *ContactMutation) SetContactNumber(s string) {
	m.contact_number = &s
}

// ContactNumber returns the value of the "contact_number" field in the mutation.
func (m *ContactMutation) ContactNumber() (r string, exists bool) {
	v := m.contact_number
	if v == nil {
		return
	}
	return *v, true
}

// OldContactNumber returns the old "contact_number" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldContactNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactNumber: %w", err)
	}
	return oldValue.ContactNumber, nil
}

// ClearContactNumber clears the value of the "contact_number" field.
func (m *ContactMutation) ClearContactNumber() {
	m.contact_number = nil
	m.clearedFields[contact.FieldContactNumber] = struct{}{}
}

// ContactNumberCleared returns if the "contact_number" field was cleared in this mutation.
func (m *ContactMutation) ContactNumberCleared() bool {
	_, ok := m.clearedFields[contact.FieldContactNumber]
	return ok
}

// ResetContactNumber resets all changes to the "contact_number" field.
func (m *ContactMutation) ResetContactNumber() {
	m.contact_number = nil
	delete(m.clearedFields, contact.FieldContactNumber)
}

// SetBusinessEmail sets the "business_email" field.
func (m *ContactMutation) SetBusinessEmail(s string) {
	m.business_email = &s
}

// BusinessEmail returns the value of the "business_email" field in the mutation.
func (m *ContactMutation) BusinessEmail() (r string, exists bool) {
	v := m.business_email
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessEmail returns the old "business_email" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldBusinessEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessEmail: %w", err)
	}
	return oldValue.BusinessEmail, nil
}

// ClearBusinessEmail clears the value of the "business_email" field.
func (m *ContactMutation) ClearBusinessEmail() {
	m.business_email = nil
	m.clearedFields[contact.FieldBusinessEmail] = struct{}{}
}

// BusinessEmailCleared returns if the "business_email" field was cleared in this mutation.
func (m *ContactMutation) BusinessEmailCleared() bool {
	_, ok := m.clearedFields[contact.FieldBusinessEmail]
	return ok
}

// ResetBusinessEmail resets all changes to the "business_email" field.
func (m *ContactMutation) ResetBusinessEmail() {
	m.business_email = nil
	delete(m.clearedFields, contact.FieldBusinessEmail)
}

// SetBusinessURL sets the "business_url" field.
func (m *ContactMutation) SetBusinessURL(s string) {
	m.business_url = &s
}

// BusinessURL returns the value of the "business_url" field in the mutation.
func (m *ContactMutation) BusinessURL() (r string, exists bool) {
	v := m.business_url
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessURL returns the old "business_url" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldBusinessURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessURL: %w", err)
	}
	return oldValue.BusinessURL, nil
}

// ClearBusinessURL clears the value of the "business_url" field.
func (m *ContactMutation) ClearBusinessURL() {
	m.business_url = nil
	m.clearedFields[contact.FieldBusinessURL] = struct{}{}
}

// BusinessURLCleared returns if the "business_url" field was cleared in this mutation.
func (m *ContactMutation) BusinessURLCleared() bool {
	_, ok := m.clearedFields[contact.FieldBusinessURL]
	return ok
}

// ResetBusinessURL resets all changes to the "business_url" field.
func (m *ContactMutation) ResetBusinessURL() {
	m.business_url = nil
	delete(m.clearedFields, contact.FieldBusinessURL)
}

// SetStreetAddress sets the "street_address" field.
func (m *ContactMutation) SetStreetAddress(s string) {
	m.street_address = &s
}

// StreetAddress returns the value of the "street_address" field in the mutation.
func (m *ContactMutation) StreetAddress() (r string, exists bool) {
	v := m.street_address
	if v == nil {
		return
	}
	return *v, true
}

// OldStreetAddress returns the old "street_address" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldStreetAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreetAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreetAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreetAddress: %w", err)
	}
	return oldValue.StreetAddress, nil
}

// ClearStreetAddress clears the value of the "street_address" field.
func (m *ContactMutation) ClearStreetAddress() {
	m.street_address = nil
	m.clearedFields[contact.FieldStreetAddress] = struct{}{}
}

// StreetAddressCleared returns if the "street_address" field was cleared in this mutation.
func (m *ContactMutation) StreetAddressCleared() bool {
	_, ok := m.clearedFields[contact.FieldStreetAddress]
	return ok
}

// ResetStreetAddress resets all changes to the "street_address" field.
func (m *ContactMutation) ResetStreetAddress() {
	m.street_address = nil
	delete(m.clearedFields, contact.FieldStreetAddress)
}

// SetLocationCity sets the "location_city" field.
func (m *ContactMutation) SetLocationCity(s string) {
	m.location_city = &s
}

// LocationCity returns the value of the "location_city" field in the mutation.
func (m *ContactMutation) LocationCity() (r string, exists bool) {
	v := m.location_city
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationCity returns the old "location_city" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldLocationCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationCity: %w", err)
	}
	return oldValue.LocationCity, nil
}

// ClearLocationCity clears the value of the "location_city" field.
func (m *ContactMutation) ClearLocationCity() {
	m.location_city = nil
	m.clearedFields[contact.FieldLocationCity] = struct{}{}
}

// LocationCityCleared returns if the "location_city" field was cleared in this mutation.
func (m *ContactMutation) LocationCityCleared() bool {
	_, ok := m.clearedFields[contact.FieldLocationCity]
	return ok
}

// ResetLocationCity resets all changes to the "location_city" field.
func (m *ContactMutation) ResetLocationCity() {
	m.location_city = nil
	delete(m.clearedFields, contact.FieldLocationCity)
}

// SetLocationState sets the "location_state" field.
func (m *ContactMutation) SetLocationState(s string) {
	m.location_state = &s
}

// LocationState returns the value of the "location_state" field in the mutation.
func (m *ContactMutation) LocationState() (r string, exists bool) {
	v := m.location_state
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationState returns the old "location_state" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldLocationState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationState: %w", err)
	}
	return oldValue.LocationState, nil
}

// ClearLocationState clears the value of the "location_state" field.
func (m *ContactMutation) ClearLocationState() {
	m.location_state = nil
	m.clearedFields[contact.FieldLocationState] = struct{}{}
}

// LocationStateCleared returns if the "location_state" field was cleared in this mutation.
func (m *ContactMutation) LocationStateCleared() bool {
	_, ok := m.clearedFields[contact.FieldLocationState]
	return ok
}

// ResetLocationState resets all changes to the "location_state" field.
func (m *ContactMutation) ResetLocationState() {
	m.location_state = nil
	delete(m.clearedFields, contact.FieldLocationState)
}

// SetPostalCode sets the "postal_code" field.
func (m *ContactMutation) SetPostalCode(s string) {
	m.postal_code = &s
}

// PostalCode returns the value of the "postal_code" field in the mutation.
func (m *ContactMutation) PostalCode() (r string, exists bool) {
	v := m.postal_code
	if v == nil {
		return
	}
	return *v, true
}

// OldPostalCode returns the old "postal_code" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldPostalCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostalCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostalCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostalCode: %w", err)
	}
	return oldValue.PostalCode, nil
}

// ClearPostalCode clears the value of the "postal_code" field.
func (m *ContactMutation) ClearPostalCode() {
	m.postal_code = nil
	m.clearedFields[contact.FieldPostalCode] = struct{}{}
}

// PostalCodeCleared returns if the "postal_code" field was cleared in this mutation.
func (m *ContactMutation) PostalCodeCleared() bool {
	_, ok := m.clearedFields[contact.FieldPostalCode]
	return ok
}

// ResetPostalCode resets all changes to the "postal_code" field.
func (m *ContactMutation) ResetPostalCode() {
	m.postal_code = nil
	delete(m.clearedFields, contact.FieldPostalCode)
}

// SetRawText sets the "raw_text" field.
func (m *ContactMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *ContactMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *ContactMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[contact.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *ContactMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[contact.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *ContactMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, contact.FieldRawText)
}

// SetCreatedAt sets the "created_at" field.
func (m *ContactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ContactMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ContactMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ContactMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddScanIDs adds the "scans" edge to the ScanJob entity by ids.
func (m *ContactMutation) AddScanIDs(ids ...uuid.UUID) {
	if m.scans == nil {
		m.scans = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.scans[ids[i]] = struct{}{}
	}
}

// ClearScans clears the "scans" edge to the ScanJob entity.
func (m *ContactMutation) ClearScans() {
	m.clearedscans = true
}

// ScansCleared reports if the "scans" edge to the ScanJob entity was cleared.
func (m *ContactMutation) ScansCleared() bool {
	return m.clearedscans
}

// RemoveScanIDs removes the "scans" edge to the ScanJob entity by IDs.
func (m *ContactMutation) RemoveScanIDs(ids ...uuid.UUID) {
	if m.removedscans == nil {
		m.removedscans = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.scans, ids[i])
		m.removedscans[ids[i]] = struct{}{}
	}
}

// RemovedScans returns the removed IDs of the "scans" edge to the ScanJob entity.
func (m *ContactMutation) RemovedScansIDs() (ids []uuid.UUID) {
	for id := range m.removedscans {
		ids = append(ids, id)
	}
	return
}

// ScansIDs returns the "scans" edge IDs in the mutation.
func (m *ContactMutation) ScansIDs() (ids []uuid.UUID) {
	for id := range m.scans {
		ids = append(ids, id)
	}
	return
}

// ResetScans resets all changes to the "scans" edge.
func (m *ContactMutation) ResetScans() {
	m.scans = nil
	m.clearedscans = false
	m.removedscans = nil
}

// Where appends a list predicates to the ContactMutation builder.
func (m *ContactMutation) Where(ps ...predicate.Contact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Contact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Contact).
func (m *ContactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContactMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.full_name != nil {
		fields = append(fields, contact.FieldFullName)
	}
	if m.organization != nil {
		fields = append(fields, contact.FieldOrganization)
	}
	if m.job_title != nil {
		fields = append(fields, contact.FieldJobTitle)
	}
	if m.contact_number != nil {
		fields = append(fields, contact.FieldContactNumber)
	}
	if m.business_email != nil {
		fields = append(fields, contact.FieldBusinessEmail)
	}
	if m.business_url != nil {
		fields = append(fields, contact.FieldBusinessURL)
	}
	if m.street_address != nil {
		fields = append(fields, contact.FieldStreetAddress)
	}
	if m.location_city != nil {
		fields = append(fields, contact.FieldLocationCity)
	}
	if m.location_state != nil {
		fields = append(fields, contact.FieldLocationState)
	}
	if m.postal_code != nil {
		fields = append(fields, contact.FieldPostalCode)
	}
	if m.raw_text != nil {
		fields = append(fields, contact.FieldRawText)
	}
	if m.created_at != nil {
		fields = append(fields, contact.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, contact.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contact.FieldFullName:
		return m.FullName()
	case contact.FieldOrganization:
		return m.Organization()
	case contact.FieldJobTitle:
		return m.JobTitle()
	case contact.FieldContactNumber:
		return m.ContactNumber()
	case contact.FieldBusinessEmail:
		return m.BusinessEmail()
	case contact.FieldBusinessURL:
		return m.BusinessURL()
	case contact.FieldStreetAddress:
		return m.StreetAddress()
	case contact.FieldLocationCity:
		return m.LocationCity()
	case contact.FieldLocationState:
		return m.LocationState()
	case contact.FieldPostalCode:
		return m.PostalCode()
	case contact.FieldRawText:
		return m.RawText()
	case contact.FieldCreatedAt:
		return m.CreatedAt()
	case contact.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contact.FieldFullName:
		return m.OldFullName(ctx)
	case contact.FieldOrganization:
		return m.OldOrganization(ctx)
	case contact.FieldJobTitle:
		return m.OldJobTitle(ctx)
	case contact.FieldContactNumber:
		return m.OldContactNumber(ctx)
	case contact.FieldBusinessEmail:
		return m.OldBusinessEmail(ctx)
	case contact.FieldBusinessURL:
		return m.OldBusinessURL(ctx)
	case contact.FieldStreetAddress:
		return m.OldStreetAddress(ctx)
	case contact.FieldLocationCity:
		return m.OldLocationCity(ctx)
	case contact.FieldLocationState:
		return m.OldLocationState(ctx)
	case contact.FieldPostalCode:
		return m.OldPostalCode(ctx)
	case contact.FieldRawText:
		return m.OldRawText(ctx)
	case contact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case contact.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Contact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contact.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case contact.FieldOrganization:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganization(v)
		return nil
	case contact.FieldJobTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobTitle(v)
		return nil
	case contact.FieldContactNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactNumber(v)
		return nil
	case contact.FieldBusinessEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessEmail(v)
		return nil
	case contact.FieldBusinessURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessURL(v)
		return nil
	case contact.FieldStreetAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreetAddress(v)
		return nil
	case contact.FieldLocationCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationCity(v)
		return nil
	case contact.FieldLocationState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationState(v)
		return nil
	case contact.FieldPostalCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostalCode(v)
		return nil
	case contact.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case contact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case contact.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Contact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContactMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContactMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Contact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contact.FieldFullName) {
		fields = append(fields, contact.FieldFullName)
	}
	if m.FieldCleared(contact.FieldOrganization) {
		fields = append(fields, contact.FieldOrganization)
	}
	if m.FieldCleared(contact.FieldJobTitle) {
		fields = append(fields, contact.FieldJobTitle)
	}
	if m.FieldCleared(contact.FieldContactNumber) {
		fields = append(fields, contact.FieldContactNumber)
	}
	if m.FieldCleared(contact.FieldBusinessEmail) {
		fields = append(fields, contact.FieldBusinessEmail)
	}
	if m.FieldCleared(contact.FieldBusinessURL) {
		fields = append(fields, contact.FieldBusinessURL)
	}
	if m.FieldCleared(contact.FieldStreetAddress) {
		fields = append(fields, contact.FieldStreetAddress)
	}
	if m.FieldCleared(contact.FieldLocationCity) {
		fields = append(fields, contact.FieldLocationCity)
	}
	if m.FieldCleared(contact.FieldLocationState) {
		fields = append(fields, contact.FieldLocationState)
	}
	if m.FieldCleared(contact.FieldPostalCode) {
		fields = append(fields, contact.FieldPostalCode)
	}
	if m.FieldCleared(contact.FieldRawText) {
		fields = append(fields, contact.FieldRawText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContactMutation) ClearField(name string) error {
	switch name {
	case contact.FieldFullName:
		m.ClearFullName()
		return nil
	case contact.FieldOrganization:
		m.ClearOrganization()
		return nil
	case contact.FieldJobTitle:
		m.ClearJobTitle()
		return nil
	case contact.FieldContactNumber:
		m.ClearContactNumber()
		return nil
	case contact.FieldBusinessEmail:
		m.ClearBusinessEmail()
		return nil
	case contact.FieldBusinessURL:
		m.ClearBusinessURL()
		return nil
	case contact.FieldStreetAddress:
		m.ClearStreetAddress()
		return nil
	case contact.FieldLocationCity:
		m.ClearLocationCity()
		return nil
	case contact.FieldLocationState:
		m.ClearLocationState()
		return nil
	case contact.FieldPostalCode:
		m.ClearPostalCode()
		return nil
	case contact.FieldRawText:
		m.ClearRawText()
		return nil
	}
	return fmt.Errorf("unknown Contact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContactMutation) ResetField(name string) error {
	switch name {
	case contact.FieldFullName:
		m.ResetFullName()
		return nil
	case contact.FieldOrganization:
		m.ResetOrganization()
		return nil
	case contact.FieldJobTitle:
		m.ResetJobTitle()
		return nil
	case contact.FieldContactNumber:
		m.ResetContactNumber()
		return nil
	case contact.FieldBusinessEmail:
		m.ResetBusinessEmail()
		return nil
	case contact.FieldBusinessURL:
		m.ResetBusinessURL()
		return nil
	case contact.FieldStreetAddress:
		m.ResetStreetAddress()
		return nil
	case contact.FieldLocationCity:
		m.ResetLocationCity()
		return nil
	case contact.FieldLocationState:
		m.ResetLocationState()
		return nil
	case contact.FieldPostalCode:
		m.ResetPostalCode()
		return nil
	case contact.FieldRawText:
		m.ResetRawText()
		return nil
	case contact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case contact.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Contact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContactMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.scans != nil {
		edges = append(edges, contact.EdgeScans)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContactMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contact.EdgeScans:
		ids := make([]ent.Value, 0, len(m.scans))
		for id := range m.scans {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedscans != nil {
		edges = append(edges, contact.EdgeScans)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContactMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case contact.EdgeScans:
		ids := make([]ent.Value, 0, len(m.removedscans))
		for id := range m.removedscans {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedscans {
		edges = append(edges, contact.EdgeScans)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContactMutation) EdgeCleared(name string) bool {
	switch name {
	case contact.EdgeScans:
		return m.clearedscans
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContactMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Contact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContactMutation) ResetEdge(name string) error {
	switch name {
	case contact.EdgeScans:
		m.ResetScans()
		return nil
	}
	return fmt.Errorf("unknown Contact edge %s", name)
}

// ScanJobMutation represents an operation that mutates the ScanJob nodes in the graph.
type ScanJobMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	source_path          *string
	format               *string
	started_at           *time.Time
	finished_at          *time.Time
	status               *string
	error_message        *string
	ocr_confidence       *float32
	addocr_confidence    *float32
	line_count           *int
	addline_count        *int
	ocr_text             *string
	extracted_json       *json.RawMessage
	appendextracted_json json.RawMessage
	clearedFields        map[string]struct{}
	contact              *uuid.UUID
	clearedcontact       bool
	done                 bool
	oldValue             func(context.Context) (*ScanJob, error)
	predicates           []predicate.ScanJob
}

var _ ent.Mutation = (*ScanJobMutation)(nil)

// scanjobOption allows management of the mutation configuration using functional options.
type scanjobOption func(*ScanJobMutation)

// newScanJobMutation creates new mutation for the ScanJob entity.
func newScanJobMutation(c config, op Op, opts ...scanjobOption) *ScanJobMutation {
	m := &ScanJobMutation{
		config:        c,
		op:            op,
		typ:           TypeScanJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScanJobID sets the ID field of the mutation.
func withScanJobID(id uuid.UUID) scanjobOption {
	return func(m *ScanJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ScanJob
		)
		m.oldValue = func(ctx context.Context) (*ScanJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScanJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScanJob sets the old ScanJob of the mutation.
func withScanJob(node *ScanJob) scanjobOption {
	return func(m *ScanJobMutation) {
		m.oldValue = func(context.Context) (*ScanJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScanJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScanJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScanJob entities.
func (m *ScanJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScanJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScanJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScanJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContactID sets the "contact_id" field.
func (m *ScanJobMutation) SetContactID(u uuid.UUID) {
	m.contact = &u
}

// ContactID returns the value of the "contact_id" field in the mutation.
func (m *ScanJobMutation) ContactID() (r uuid.UUID, exists bool) {
	v := m.contact
	if v == nil {
		return
	}
	return *v, true
}

// OldContactID returns the old "contact_id" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldContactID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactID: %w", err)
	}
	return oldValue.ContactID, nil
}

// ClearContactID clears the value of the "contact_id" field.
func (m *ScanJobMutation) ClearContactID() {
	m.contact = nil
	m.clearedFields[scanjob.FieldContactID] = struct{}{}
}

// ContactIDCleared returns if the "contact_id" field was cleared in this mutation.
func (m *ScanJobMutation) ContactIDCleared() bool {
	_, ok := m.clearedFields[scanjob.FieldContactID]
	return ok
}

// ResetContactID resets all changes to the "contact_id" field.
func (m *ScanJobMutation) ResetContactID() {
	m.contact = nil
	delete(m.clearedFields, scanjob.FieldContactID)
}

// SetSourcePath sets the "source_path" field.
func (m *ScanJobMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *ScanJobMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *ScanJobMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetFormat sets the "format" field.
func (m *ScanJobMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ScanJobMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ScanJobMutation) ResetFormat() {
	m.format = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ScanJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ScanJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ScanJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ScanJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ScanJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ScanJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[scanjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ScanJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[scanjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ScanJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, scanjob.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *ScanJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScanJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *ScanJobMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[scanjob.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *ScanJobMutation) StatusCleared() bool {
	_, ok := m.clearedFields[scanjob.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *ScanJobMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, scanjob.FieldStatus)
}

// SetErrorMessage sets the "error_message" field.
func (m *ScanJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ScanJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ScanJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[scanjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ScanJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[scanjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ScanJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, scanjob.FieldErrorMessage)
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (m *ScanJobMutation) SetOcrConfidence(f float32) {
	m.ocr_confidence = &f
	m.addocr_confidence = nil
}

// OcrConfidence returns the value of the "ocr_confidence" field in the mutation.
func (m *ScanJobMutation) OcrConfidence() (r float32, exists bool) {
	v := m.ocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrConfidence returns the old "ocr_confidence" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldOcrConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrConfidence: %w", err)
	}
	return oldValue.OcrConfidence, nil
}

// AddOcrConfidence adds f to the "ocr_confidence" field.
func (m *ScanJobMutation) AddOcrConfidence(f float32) {
	if m.addocr_confidence != nil {
		*m.addocr_confidence += f
	} else {
		m.addocr_confidence = &f
	}
}

// AddedOcrConfidence returns the value that was added to the "ocr_confidence" field in this mutation.
func (m *ScanJobMutation) AddedOcrConfidence() (r float32, exists bool) {
	v := m.addocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (m *ScanJobMutation) ClearOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
	m.clearedFields[scanjob.FieldOcrConfidence] = struct{}{}
}

// OcrConfidenceCleared returns if the "ocr_confidence" field was cleared in this mutation.
func (m *ScanJobMutation) OcrConfidenceCleared() bool {
	_, ok := m.clearedFields[scanjob.FieldOcrConfidence]
	return ok
}

// ResetOcrConfidence resets all changes to the "ocr_confidence" field.
func (m *ScanJobMutation) ResetOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
	delete(m.clearedFields, scanjob.FieldOcrConfidence)
}

// SetLineCount sets the "line_count" field.
func (m *ScanJobMutation) SetLineCount(i int) {
	m.line_count = &i
	m.addline_count = nil
}

// LineCount returns the value of the "line_count" field in the mutation.
func (m *ScanJobMutation) LineCount() (r int, exists bool) {
	v := m.line_count
	if v == nil {
		return
	}
	return *v, true
}

// OldLineCount returns the old "line_count" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldLineCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLineCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLineCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLineCount: %w", err)
	}
	return oldValue.LineCount, nil
}

// AddLineCount adds i to the "line_count" field.
func (m *ScanJobMutation) AddLineCount(i int) {
	if m.addline_count != nil {
		*m.addline_count += i
	} else {
		m.addline_count = &i
	}
}

// AddedLineCount returns the value that was added to the "line_count" field in this mutation.
func (m *ScanJobMutation) AddedLineCount() (r int, exists bool) {
	v := m.addline_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetLineCount resets all changes to the "line_count" field.
func (m *ScanJobMutation) ResetLineCount() {
	m.line_count = nil
	m.addline_count = nil
}

// SetOcrText sets the "ocr_text" field.
func (m *ScanJobMutation) SetOcrText(s string) {
	m.ocr_text = &s
}

// OcrText returns the value of the "ocr_text" field in the mutation.
func (m *ScanJobMutation) OcrText() (r string, exists bool) {
	v := m.ocr_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrText returns the old "ocr_text" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldOcrText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrText: %w", err)
	}
	return oldValue.OcrText, nil
}

// ClearOcrText clears the value of the "ocr_text" field.
func (m *ScanJobMutation) ClearOcrText() {
	m.ocr_text = nil
	m.clearedFields[scanjob.FieldOcrText] = struct{}{}
}

// OcrTextCleared returns if the "ocr_text" field was cleared in this mutation.
func (m *ScanJobMutation) OcrTextCleared() bool {
	_, ok := m.clearedFields[scanjob.FieldOcrText]
	return ok
}

// ResetOcrText resets all changes to the "ocr_text" field.
func (m *ScanJobMutation) ResetOcrText() {
	m.ocr_text = nil
	delete(m.clearedFields, scanjob.FieldOcrText)
}

// SetExtractedJSON sets the "extracted_json" field.
func (m *ScanJobMutation) SetExtractedJSON(jm json.RawMessage) {
	m.extracted_json = &jm
	m.appendextracted_json = nil
}

// ExtractedJSON returns the value of the "extracted_json" field in the mutation.
func (m *ScanJobMutation) ExtractedJSON() (r json.RawMessage, exists bool) {
	v := m.extracted_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedJSON returns the old "extracted_json" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldExtractedJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedJSON: %w", err)
	}
	return oldValue.ExtractedJSON, nil
}

// AppendExtractedJSON adds jm to the "extracted_json" field.
func (m *ScanJobMutation) AppendExtractedJSON(jm json.RawMessage) {
	m.appendextracted_json = append(m.appendextracted_json, jm...)
}

// AppendedExtractedJSON returns the list of values that were appended to the "extracted_json" field in this mutation.
func (m *ScanJobMutation) AppendedExtractedJSON() (json.RawMessage, bool) {
	if len(m.appendextracted_json) == 0 {
		return nil, false
	}
	return m.appendextracted_json, true
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (m *ScanJobMutation) ClearExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	m.clearedFields[scanjob.FieldExtractedJSON] = struct{}{}
}

// ExtractedJSONCleared returns if the "extracted_json" field was cleared in this mutation.
func (m *ScanJobMutation) ExtractedJSONCleared() bool {
	_, ok := m.clearedFields[scanjob.FieldExtractedJSON]
	return ok
}

// ResetExtractedJSON resets all changes to the "extracted_json" field.
func (m *ScanJobMutation) ResetExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	delete(m.clearedFields, scanjob.FieldExtractedJSON)
}

// ClearContact clears the "contact" edge to the Contact entity.
func (m *ScanJobMutation) ClearContact() {
	m.clearedcontact = true
	m.clearedFields[scanjob.FieldContactID] = struct{}{}
}

// ContactCleared reports if the "contact" edge to the Contact entity was cleared.
func (m *ScanJobMutation) ContactCleared() bool {
	return m.ContactIDCleared() || m.clearedcontact
}

// ContactIDs returns the "contact" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContactID instead. It exists only for internal usage by the builders.
func (m *ScanJobMutation) ContactIDs() (ids []uuid.UUID) {
	if id := m.contact; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContact resets all changes to the "contact" edge.
func (m *ScanJobMutation) ResetContact() {
	m.contact = nil
	m.clearedcontact = false
}

// Where appends a list predicates to the ScanJobMutation builder.
func (m *ScanJobMutation) Where(ps ...predicate.ScanJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScanJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScanJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScanJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScanJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScanJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScanJob).
func (m *ScanJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScanJobMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.contact != nil {
		fields = append(fields, scanjob.FieldContactID)
	}
	if m.source_path != nil {
		fields = append(fields, scanjob.FieldSourcePath)
	}
	if m.format != nil {
		fields = append(fields, scanjob.FieldFormat)
	}
	if m.started_at != nil {
		fields = append(fields, scanjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, scanjob.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, scanjob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, scanjob.FieldErrorMessage)
	}
	if m.ocr_confidence != nil {
		fields = append(fields, scanjob.FieldOcrConfidence)
	}
	if m.line_count != nil {
		fields = append(fields, scanjob.FieldLineCount)
	}
	if m.ocr_text != nil {
		fields = append(fields, scanjob.FieldOcrText)
	}
	if m.extracted_json != nil {
		fields = append(fields, scanjob.FieldExtractedJSON)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScanJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scanjob.FieldContactID:
		return m.ContactID()
	case scanjob.FieldSourcePath:
		return m.SourcePath()
	case scanjob.FieldFormat:
		return m.Format()
	case scanjob.FieldStartedAt:
		return m.StartedAt()
	case scanjob.FieldFinishedAt:
		return m.FinishedAt()
	case scanjob.FieldStatus:
		return m.Status()
	case scanjob.FieldErrorMessage:
		return m.ErrorMessage()
	case scanjob.FieldOcrConfidence:
		return m.OcrConfidence()
	case scanjob.FieldLineCount:
		return m.LineCount()
	case scanjob.FieldOcrText:
		return m.OcrText()
	case scanjob.FieldExtractedJSON:
		return m.ExtractedJSON()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScanJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scanjob.FieldContactID:
		return m.OldContactID(ctx)
	case scanjob.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case scanjob.FieldFormat:
		return m.OldFormat(ctx)
	case scanjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case scanjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case scanjob.FieldStatus:
		return m.OldStatus(ctx)
	case scanjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case scanjob.FieldOcrConfidence:
		return m.OldOcrConfidence(ctx)
	case scanjob.FieldLineCount:
		return m.OldLineCount(ctx)
	case scanjob.FieldOcrText:
		return m.OldOcrText(ctx)
	case scanjob.FieldExtractedJSON:
		return m.OldExtractedJSON(ctx)
	}
	return nil, fmt.Errorf("unknown ScanJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScanJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scanjob.FieldContactID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactID(v)
		return nil
	case scanjob.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case scanjob.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case scanjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case scanjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case scanjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scanjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case scanjob.FieldOcrConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrConfidence(v)
		return nil
	case scanjob.FieldLineCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLineCount(v)
		return nil
	case scanjob.FieldOcrText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrText(v)
		return nil
	case scanjob.FieldExtractedJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedJSON(v)
		return nil
	}
	return fmt.Errorf("unknown ScanJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScanJobMutation) AddedFields() []string {
	var fields []string
	if m.addocr_confidence != nil {
		fields = append(fields, scanjob.FieldOcrConfidence)
	}
	if m.addline_count != nil {
		fields = append(fields, scanjob.FieldLineCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScanJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scanjob.FieldOcrConfidence:
		return m.AddedOcrConfidence()
	case scanjob.FieldLineCount:
		return m.AddedLineCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScanJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scanjob.FieldOcrConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOcrConfidence(v)
		return nil
	case scanjob.FieldLineCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLineCount(v)
		return nil
	}
	return fmt.Errorf("unknown ScanJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScanJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scanjob.FieldContactID) {
		fields = append(fields, scanjob.FieldContactID)
	}
	if m.FieldCleared(scanjob.FieldFinishedAt) {
		fields = append(fields, scanjob.FieldFinishedAt)
	}
	if m.FieldCleared(scanjob.FieldStatus) {
		fields = append(fields, scanjob.FieldStatus)
	}
	if m.FieldCleared(scanjob.FieldErrorMessage) {
		fields = append(fields, scanjob.FieldErrorMessage)
	}
	if m.FieldCleared(scanjob.FieldOcrConfidence) {
		fields = append(fields, scanjob.FieldOcrConfidence)
	}
	if m.FieldCleared(scanjob.FieldOcrText) {
		fields = append(fields, scanjob.FieldOcrText)
	}
	if m.FieldCleared(scanjob.FieldExtractedJSON) {
		fields = append(fields, scanjob.FieldExtractedJSON)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScanJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScanJobMutation) ClearField(name string) error {
	switch name {
	case scanjob.FieldContactID:
		m.ClearContactID()
		return nil
	case scanjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case scanjob.FieldStatus:
		m.ClearStatus()
		return nil
	case scanjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case scanjob.FieldOcrConfidence:
		m.ClearOcrConfidence()
		return nil
	case scanjob.FieldOcrText:
		m.ClearOcrText()
		return nil
	case scanjob.FieldExtractedJSON:
		m.ClearExtractedJSON()
		return nil
	}
	return fmt.Errorf("unknown ScanJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScanJobMutation) ResetField(name string) error {
	switch name {
	case scanjob.FieldContactID:
		m.ResetContactID()
		return nil
	case scanjob.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case scanjob.FieldFormat:
		m.ResetFormat()
		return nil
	case scanjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case scanjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case scanjob.FieldStatus:
		m.ResetStatus()
		return nil
	case scanjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case scanjob.FieldOcrConfidence:
		m.ResetOcrConfidence()
		return nil
	case scanjob.FieldLineCount:
		m.ResetLineCount()
		return nil
	case scanjob.FieldOcrText:
		m.ResetOcrText()
		return nil
	case scanjob.FieldExtractedJSON:
		m.ResetExtractedJSON()
		return nil
	}
	return fmt.Errorf("unknown ScanJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScanJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.contact != nil {
		edges = append(edges, scanjob.EdgeContact)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScanJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scanjob.EdgeContact:
		if id := m.contact; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScanJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScanJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScanJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcontact {
		edges = append(edges, scanjob.EdgeContact)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScanJobMutation) EdgeCleared(name string) bool {
	switch name {
	case scanjob.EdgeContact:
		return m.clearedcontact
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScanJobMutation) ClearEdge(name string) error {
	switch name {
	case scanjob.EdgeContact:
		m.ClearContact()
		return nil
	}
	return fmt.Errorf("unknown ScanJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScanJobMutation) ResetEdge(name string) error {
	switch name {
	case scanjob.EdgeContact:
		m.ResetContact()
		return nil
	}
	return fmt.Errorf("unknown ScanJob edge %s", name)
}
