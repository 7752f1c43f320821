// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cardkeep/cardkeep/gen/ent/contact"
	"github.com/cardkeep/cardkeep/gen/ent/predicate"
	"github.com/cardkeep/cardkeep/gen/ent/scanjob"
	"github.com/google/uuid"
)

// ContactUpdate is the builder for updating Contact entities.
type ContactUpdate struct {
	config
	hooks    []Hook
	mutation *ContactMutation
}

// Where appends a list predicates to the ContactUpdate builder.
func (_u *ContactUpdate) Where(ps ...predicate.Contact) *ContactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *ContactUpdate) SetFullName(v string) *ContactUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableFullName(v *string) *ContactUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// ClearFullName clears the value of the "full_name" field.
func (_u *ContactUpdate) ClearFullName() *ContactUpdate {
	_u.mutation.ClearFullName()
	return _u
}

// SetOrganization sets the "organization" field.
func (_u *ContactUpdate) SetOrganization(v string) *ContactUpdate {
	_u.mutation.SetOrganization(v)
	return _u
}

// SetNillableOrganization sets the "organization" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableOrganization(v *string) *ContactUpdate {
	if v != nil {
		_u.SetOrganization(*v)
	}
	return _u
}

// ClearOrganization clears the value of the "organization" field.
func (_u *ContactUpdate) ClearOrganization() *ContactUpdate {
	_u.mutation.ClearOrganization()
	return _u
}

// SetJobTitle sets the "job_title" field.
func (_u *ContactUpdate) SetJobTitle(v string) *ContactUpdate {
	_u.mutation.SetJobTitle(v)
	return _u
}

// SetNillableJobTitle sets the "job_title" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableJobTitle(v *string) *ContactUpdate {
	if v != nil {
		_u.SetJobTitle(*v)
	}
	return _u
}

// ClearJobTitle clears the value of the "job_title" field.
func (_u *ContactUpdate) ClearJobTitle() *ContactUpdate {
	_u.mutation.ClearJobTitle()
	return _u
}

// SetContactNumber sets the "contact_number" field.
func (_u *ContactUpdate) SetContactNumber(v string) *ContactUpdate {
	_u.mutation.SetContactNumber(v)
	return _u
}

// SetNillableContactNumber sets the "contact_number" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableContactNumber(v *string) *ContactUpdate {
	if v != nil {
		_u.SetContactNumber(*v)
	}
	return _u
}

// ClearContactNumber clears the value of the "contact_number" field.
func (_u *ContactUpdate) ClearContactNumber() *ContactUpdate {
	_u.mutation.ClearContactNumber()
	return _u
}

// SetBusinessEmail sets the "business_email" field.
func (_u *ContactUpdate) SetBusinessEmail(v string) *ContactUpdate {
	_u.mutation.SetBusinessEmail(v)
	return _u
}

// SetNillableBusinessEmail sets the "business_email" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableBusinessEmail(v *string) *ContactUpdate {
	if v != nil {
		_u.SetBusinessEmail(*v)
	}
	return _u
}

// ClearBusinessEmail clears the value of the "business_email" field.
func (_u *ContactUpdate) ClearBusinessEmail() *ContactUpdate {
	_u.mutation.ClearBusinessEmail()
	return _u
}

// SetBusinessURL sets the "business_url" field.
func (_u *ContactUpdate) SetBusinessURL(v string) *ContactUpdate {
	_u.mutation.SetBusinessURL(v)
	return _u
}

// SetNillableBusinessURL sets the "business_url" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableBusinessURL(v *string) *ContactUpdate {
	if v != nil {
		_u.SetBusinessURL(*v)
	}
	return _u
}

// ClearBusinessURL clears the value of the "business_url" field.
func (_u *ContactUpdate) ClearBusinessURL() *ContactUpdate {
	_u.mutation.ClearBusinessURL()
	return _u
}

// SetStreetAddress sets the "street_address" field.
func (_u *ContactUpdate) SetStreetAddress(v string) *ContactUpdate {
	_u.mutation.SetStreetAddress(v)
	return _u
}

// SetNillableStreetAddress sets the "street_address" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableStreetAddress(v *string) *ContactUpdate {
	if v != nil {
		_u.SetStreetAddress(*v)
	}
	return _u
}

// ClearStreetAddress clears the value of the "street_address" field.
func (_u *ContactUpdate) ClearStreetAddress() *ContactUpdate {
	_u.mutation.ClearStreetAddress()
	return _u
}

// SetLocationCity sets the "location_city" field.
func (_u *ContactUpdate) SetLocationCity(v string) *ContactUpdate {
	_u.mutation.SetLocationCity(v)
	return _u
}

// SetNillableLocationCity sets the "location_city" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableLocationCity(v *string) *ContactUpdate {
	if v != nil {
		_u.SetLocationCity(*v)
	}
	return _u
}

// ClearLocationCity clears the value of the "location_city" field.
func (_u *ContactUpdate) ClearLocationCity() *ContactUpdate {
	_u.mutation.ClearLocationCity()
	return _u
}

// SetLocationState sets the "location_state" field.
func (_u *ContactUpdate) SetLocationState(v string) *ContactUpdate {
	_u.mutation.SetLocationState(v)
	return _u
}

// SetNillableLocationState sets the "location_state" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableLocationState(v *string) *ContactUpdate {
	if v != nil {
		_u.SetLocationState(*v)
	}
	return _u
}

// ClearLocationState clears the value of the "location_state" field.
func (_u *ContactUpdate) ClearLocationState() *ContactUpdate {
	_u.mutation.ClearLocationState()
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *ContactUpdate) SetPostalCode(v string) *ContactUpdate {
	_u.mutation.SetPostalCode(v)
	return _u
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_u *ContactUpdate) SetNillablePostalCode(v *string) *ContactUpdate {
	if v != nil {
		_u.SetPostalCode(*v)
	}
	return _u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (_u *ContactUpdate) ClearPostalCode() *ContactUpdate {
	_u.mutation.ClearPostalCode()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ContactUpdate) SetRawText(v string) *ContactUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableRawText(v *string) *ContactUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *ContactUpdate) ClearRawText() *ContactUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContactUpdate) SetCreatedAt(v time.Time) *ContactUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableCreatedAt(v *time.Time) *ContactUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContactUpdate) SetUpdatedAt(v time.Time) *ContactUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddScanIDs adds the "scans" edge to the ScanJob entity by IDs.
func (_u *ContactUpdate) AddScanIDs(ids ...uuid.UUID) *ContactUpdate {
	_u.mutation.AddScanIDs(ids...)
	return _u
}

// AddScans adds the "scans" edges to the ScanJob entity.
func (_u *ContactUpdate) AddScans(v ...*ScanJob) *ContactUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScanIDs(ids...)
}

// Mutation returns the ContactMutation object of the builder.
func (_u *ContactUpdate) Mutation() *ContactMutation {
	return _u.mutation
}

// ClearScans clears all "scans" edges to the ScanJob entity.
func (_u *ContactUpdate) ClearScans() *ContactUpdate {
	_u.mutation.ClearScans()
	return _u
}

// RemoveScanIDs removes the "scans" edge to ScanJob entities by IDs.
func (_u *ContactUpdate) RemoveScanIDs(ids ...uuid.UUID) *ContactUpdate {
	_u.mutation.RemoveScanIDs(ids...)
	return _u
}

// RemoveScans removes "scans" edges to ScanJob entities.
func (_u *ContactUpdate) RemoveScans(v ...*ScanJob) *ContactUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScanIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContactUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContactUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ContactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(contact.Table, contact.Columns, sqlgraph.NewFieldSpec(contact.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(contact.FieldFullName, field.TypeString, value)
	}
	if _u.mutation.FullNameCleared() {
		_spec.ClearField(contact.FieldFullName, field.TypeString)
	}
	if value, ok := _u.mutation.Organization(); ok {
		_spec.SetField(contact.FieldOrganization, field.TypeString, value)
	}
	if _u.mutation.OrganizationCleared() {
		_spec.ClearField(contact.FieldOrganization, field.TypeString)
	}
	if value, ok := _u.mutation.JobTitle(); ok {
		_spec.SetField(contact.FieldJobTitle, field.TypeString, value)
	}
	if _u.mutation.JobTitleCleared() {
		_spec.ClearField(contact.FieldJobTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ContactNumber(); ok {
		_spec.SetField(contact.FieldContactNumber, field.TypeString, value)
	}
	if _u.mutation.ContactNumberCleared() {
		_spec.ClearField(contact.FieldContactNumber, field.TypeString)
	}
	if value, ok := _u.mutation.BusinessEmail(); ok {
		_spec.SetField(contact.FieldBusinessEmail, field.TypeString, value)
	}
	if _u.mutation.BusinessEmailCleared() {
		_spec.ClearField(contact.FieldBusinessEmail, field.TypeString)
	}
	if value, ok := _u.mutation.BusinessURL(); ok {
		_spec.SetField(contact.FieldBusinessURL, field.TypeString, value)
	}
	if _u.mutation.BusinessURLCleared() {
		_spec.ClearField(contact.FieldBusinessURL, field.TypeString)
	}
	if value, ok := _u.mutation.StreetAddress(); ok {
		_spec.SetField(contact.FieldStreetAddress, field.TypeString, value)
	}
	if _u.mutation.StreetAddressCleared() {
		_spec.ClearField(contact.FieldStreetAddress, field.TypeString)
	}
	if value, ok := _u.mutation.LocationCity(); ok {
		_spec.SetField(contact.FieldLocationCity, field.TypeString, value)
	}
	if _u.mutation.LocationCityCleared() {
		_spec.ClearField(contact.FieldLocationCity, field.TypeString)
	}
	if value, ok := _u.mutation.LocationState(); ok {
		_spec.SetField(contact.FieldLocationState, field.TypeString, value)
	}
	if _u.mutation.LocationStateCleared() {
		_spec.ClearField(contact.FieldLocationState, field.TypeString)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(contact.FieldPostalCode, field.TypeString, value)
	}
	if _u.mutation.PostalCodeCleared() {
		_spec.ClearField(contact.FieldPostalCode, field.TypeString)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(contact.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(contact.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(contact.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ScansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.ScansTable,
			Columns: []string{contact.ScansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScansIDs(); len(nodes) > 0 && !_u.mutation.ScansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.ScansTable,
			Columns: []string{contact.ScansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScansIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.ScansTable,
			Columns: []string{contact.ScansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContactUpdateOne is the builder for updating a single Contact entity.
type ContactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContactMutation
}

// SetFullName sets the "full_name" field.
func (_u *ContactUpdateOne) SetFullName(v string) *ContactUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableFullName(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// ClearFullName clears the value of the "full_name" field.
func (_u *ContactUpdateOne) ClearFullName() *ContactUpdateOne {
	_u.mutation.ClearFullName()
	return _u
}

// SetOrganization sets the "organization" field.
func (_u *ContactUpdateOne) SetOrganization(v string) *ContactUpdateOne {
	_u.mutation.SetOrganization(v)
	return _u
}

// SetNillableOrganization sets the "organization" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableOrganization(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetOrganization(*v)
	}
	return _u
}

// ClearOrganization clears the value of the "organization" field.
func (_u *ContactUpdateOne) ClearOrganization() *ContactUpdateOne {
	_u.mutation.ClearOrganization()
	return _u
}

// SetJobTitle sets the "job_title" field.
func (_u *ContactUpdateOne) SetJobTitle(v string) *ContactUpdateOne {
	_u.mutation.SetJobTitle(v)
	return _u
}

// SetNillableJobTitle sets the "job_title" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableJobTitle(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetJobTitle(*v)
	}
	return _u
}

// ClearJobTitle clears the value of the "job_title" field.
func (_u *ContactUpdateOne) ClearJobTitle() *ContactUpdateOne {
	_u.mutation.ClearJobTitle()
	return _u
}

// SetContactNumber sets the "contact_number" field.
func (_u *ContactUpdateOne) SetContactNumber(v string) *ContactUpdateOne {
	_u.mutation.SetContactNumber(v)
	return _u
}

// SetNillableContactNumber sets the "contact_number" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableContactNumber(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetContactNumber(*v)
	}
	return _u
}

// ClearContactNumber clears the value of the "contact_number" field.
func (_u *ContactUpdateOne) ClearContactNumber() *ContactUpdateOne {
	_u.mutation.ClearContactNumber()
	return _u
}

// SetBusinessEmail sets the "business_email" field.
func (_u *ContactUpdateOne) SetBusinessEmail(v string) *ContactUpdateOne {
	_u.mutation.SetBusinessEmail(v)
	return _u
}

// SetNillableBusinessEmail sets the "business_email" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableBusinessEmail(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetBusinessEmail(*v)
	}
	return _u
}

// ClearBusinessEmail clears the value of the "business_email" field.
func (_u *ContactUpdateOne) ClearBusinessEmail() *ContactUpdateOne {
	_u.mutation.ClearBusinessEmail()
	return _u
}

// SetBusinessURL sets the "business_url" field.
func (_u *ContactUpdateOne) SetBusinessURL(v string) *ContactUpdateOne {
	_u.mutation.SetBusinessURL(v)
	return _u
}

// SetNillableBusinessURL sets the "business_url" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableBusinessURL(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetBusinessURL(*v)
	}
	return _u
}

// ClearBusinessURL clears the value of the "business_url" field.
func (_u *ContactUpdateOne) ClearBusinessURL() *ContactUpdateOne {
	_u.mutation.ClearBusinessURL()
	return _u
}

// SetStreetAddress sets the "street_address" field.
func (_u *ContactUpdateOne) SetStreetAddress(v string) *ContactUpdateOne {
	_u.mutation.SetStreetAddress(v)
	return _u
}

// SetNillableStreetAddress sets the "street_address" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableStreetAddress(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetStreetAddress(*v)
	}
	return _u
}

// ClearStreetAddress clears the value of the "street_address" field.
func (_u *ContactUpdateOne) ClearStreetAddress() *ContactUpdateOne {
	_u.mutation.ClearStreetAddress()
	return _u
}

// SetLocationCity sets the "location_city" field.
func (_u *ContactUpdateOne) SetLocationCity(v string) *ContactUpdateOne {
	_u.mutation.SetLocationCity(v)
	return _u
}

// SetNillableLocationCity sets the "location_city" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableLocationCity(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetLocationCity(*v)
	}
	return _u
}

// ClearLocationCity clears the value of the "location_city" field.
func (_u *ContactUpdateOne) ClearLocationCity() *ContactUpdateOne {
	_u.mutation.ClearLocationCity()
	return _u
}

// SetLocationState sets the "location_state" field.
func (_u *ContactUpdateOne) SetLocationState(v string) *ContactUpdateOne {
	_u.mutation.SetLocationState(v)
	return _u
}

// SetNillableLocationState sets the "location_state" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableLocationState(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetLocationState(*v)
	}
	return _u
}

// ClearLocationState clears the value of the "location_state" field.
func (_u *ContactUpdateOne) ClearLocationState() *ContactUpdateOne {
	_u.mutation.ClearLocationState()
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *ContactUpdateOne) SetPostalCode(v string) *ContactUpdateOne {
	_u.mutation.SetPostalCode(v)
	return _u
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillablePostalCode(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetPostalCode(*v)
	}
	return _u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (_u *ContactUpdateOne) ClearPostalCode() *ContactUpdateOne {
	_u.mutation.ClearPostalCode()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ContactUpdateOne) SetRawText(v string) *ContactUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableRawText(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *ContactUpdateOne) ClearRawText() *ContactUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContactUpdateOne) SetCreatedAt(v time.Time) *ContactUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableCreatedAt(v *time.Time) *ContactUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContactUpdateOne) SetUpdatedAt(v time.Time) *ContactUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddScanIDs adds the "scans" edge to the ScanJob entity by IDs.
func (_u *ContactUpdateOne) AddScanIDs(ids ...uuid.UUID) *ContactUpdateOne {
	_u.mutation.AddScanIDs(ids...)
	return _u
}

// AddScans adds the "scans" edges to the ScanJob entity.
func (_u *ContactUpdateOne) AddScans(v ...*ScanJob) *ContactUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScanIDs(ids...)
}

// Mutation returns the ContactMutation object of the builder.
func (_u *ContactUpdateOne) Mutation() *ContactMutation {
	return _u.mutation
}

// ClearScans clears all "scans" edges to the ScanJob entity.
func (_u *ContactUpdateOne) ClearScans() *ContactUpdateOne {
	_u.mutation.ClearScans()
	return _u
}

// RemoveScanIDs removes the "scans" edge to ScanJob entities by IDs.
func (_u *ContactUpdateOne) RemoveScanIDs(ids ...uuid.UUID) *ContactUpdateOne {
	_u.mutation.RemoveScanIDs(ids...)
	return _u
}

// RemoveScans removes "scans" edges to ScanJob entities.
func (_u *ContactUpdateOne) RemoveScans(v ...*ScanJob) *ContactUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScanIDs(ids...)
}

// Where appends a list predicates to the ContactUpdate builder.
func (_u *ContactUpdateOne) Where(ps ...predicate.Contact) *ContactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContactUpdateOne) Select(field string, fields ...string) *ContactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contact entity.
func (_u *ContactUpdateOne) Save(ctx context.Context) (*Contact, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContactUpdateOne) SaveX(ctx context.Context) *Contact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContactUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ContactUpdateOne) sqlSave(ctx context.Context) (_node *Contact, err error) {
	_spec := sqlgraph.NewUpdateSpec(contact.Table, contact.Columns, sqlgraph.NewFieldSpec(contact.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contact.FieldID)
		for _, f := range fields {
			if !contact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contact.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(contact.FieldFullName, field.TypeString, value)
	}
	if _u.mutation.FullNameCleared() {
		_spec.ClearField(contact.FieldFullName, field.TypeString)
	}
	if value, ok := _u.mutation.Organization(); ok {
		_spec.SetField(contact.FieldOrganization, field.TypeString, value)
	}
	if _u.mutation.OrganizationCleared() {
		_spec.ClearField(contact.FieldOrganization, field.TypeString)
	}
	if value, ok := _u.mutation.JobTitle(); ok {
		_spec.SetField(contact.FieldJobTitle, field.TypeString, value)
	}
	if _u.mutation.JobTitleCleared() {
		_spec.ClearField(contact.FieldJobTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ContactNumber(); ok {
		_spec.SetField(contact.FieldContactNumber, field.TypeString, value)
	}
	if _u.mutation.ContactNumberCleared() {
		_spec.ClearField(contact.FieldContactNumber, field.TypeString)
	}
	if value, ok := _u.mutation.BusinessEmail(); ok {
		_spec.SetField(contact.FieldBusinessEmail, field.TypeString, value)
	}
	if _u.mutation.BusinessEmailCleared() {
		_spec.ClearField(contact.FieldBusinessEmail, field.TypeString)
	}
	if value, ok := _u.mutation.BusinessURL(); ok {
		_spec.SetField(contact.FieldBusinessURL, field.TypeString, value)
	}
	if _u.mutation.BusinessURLCleared() {
		_spec.ClearField(contact.FieldBusinessURL, field.TypeString)
	}
	if value, ok := _u.mutation.StreetAddress(); ok {
		_spec.SetField(contact.FieldStreetAddress, field.TypeString, value)
	}
	if _u.mutation.StreetAddressCleared() {
		_spec.ClearField(contact.FieldStreetAddress, field.TypeString)
	}
	if value, ok := _u.mutation.LocationCity(); ok {
		_spec.SetField(contact.FieldLocationCity, field.TypeString, value)
	}
	if _u.mutation.LocationCityCleared() {
		_spec.ClearField(contact.FieldLocationCity, field.TypeString)
	}
	if value, ok := _u.mutation.LocationState(); ok {
		_spec.SetField(contact.FieldLocationState, field.TypeString, value)
	}
	if _u.mutation.LocationStateCleared() {
		_spec.ClearField(contact.FieldLocationState, field.TypeString)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(contact.FieldPostalCode, field.TypeString, value)
	}
	if _u.mutation.PostalCodeCleared() {
		_spec.ClearField(contact.FieldPostalCode, field.TypeString)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(contact.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(contact.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(contact.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ScansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.ScansTable,
			Columns: []string{contact.ScansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScansIDs(); len(nodes) > 0 && !_u.mutation.ScansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.ScansTable,
			Columns: []string{contact.ScansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScansIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.ScansTable,
			Columns: []string{contact.ScansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Contact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
