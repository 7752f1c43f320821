// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cardkeep/cardkeep/gen/ent/contact"
	"github.com/cardkeep/cardkeep/gen/ent/scanjob"
	"github.com/google/uuid"
)

// ContactCreate is the builder for creating a Contact entity.
type ContactCreate struct {
	config
	mutation *ContactMutation
	hooks    []Hook
}

// SetFullName sets the "full_name" field.
func (_c *ContactCreate) SetFullName(v string) *ContactCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_c *ContactCreate) SetNillableFullName(v *string) *ContactCreate {
	if v != nil {
		_c.SetFullName(*v)
	}
	return _c
}

// SetOrganization sets the "organization" field.
func (_c *ContactCreate) SetOrganization(v string) *ContactCreate {
	_c.mutation.SetOrganization(v)
	return _c
}

// SetNillableOrganization sets the "organization" field if the given value is not nil.
func (_c *ContactCreate) SetNillableOrganization(v *string) *ContactCreate {
	if v != nil {
		_c.SetOrganization(*v)
	}
	return _c
}

// SetJobTitle sets the "job_title" field.
func (_c *ContactCreate) SetJobTitle(v string) *ContactCreate {
	_c.mutation.SetJobTitle(v)
	return _c
}

// SetNillableJobTitle sets the "job_title" field if the given value is not nil.
func (_c *ContactCreate) SetNillableJobTitle(v *string) *ContactCreate {
	if v != nil {
		_c.SetJobTitle(*v)
	}
	return _c
}

// SetContactNumber sets the "contact_number" field.
func (_c *ContactCreate) SetContactNumber(v string) *ContactCreate {
	_c.mutation.SetContactNumber(v)
	return _c
}

// SetNillableContactNumber sets the "contact_number" field if the given value is not nil.
func (_c *ContactCreate) SetNillableContactNumber(v *string) *ContactCreate {
	if v != nil {
		_c.SetContactNumber(*v)
	}
	return _c
}

// SetBusinessEmail sets the "business_email" field.
func (_c *ContactCreate) SetBusinessEmail(v string) *ContactCreate {
	_c.mutation.SetBusinessEmail(v)
	return _c
}

// SetNillableBusinessEmail sets the "business_email" field if the given value is not nil.
func (_c *ContactCreate) SetNillableBusinessEmail(v *string) *ContactCreate {
	if v != nil {
		_c.SetBusinessEmail(*v)
	}
	return _c
}

// SetBusinessURL sets the "business_url" field.
func (_c *ContactCreate) SetBusinessURL(v string) *ContactCreate {
	_c.mutation.SetBusinessURL(v)
	return _c
}

// SetNillableBusinessURL sets the "business_url" field if the given value is not nil.
func (_c *ContactCreate) SetNillableBusinessURL(v *string) *ContactCreate {
	if v != nil {
		_c.SetBusinessURL(*v)
	}
	return _c
}

// SetStreetAddress sets the "street_address" field.
func (_c *ContactCreate) SetStreetAddress(v string) *ContactCreate {
	_c.mutation.SetStreetAddress(v)
	return _c
}

// SetNillableStreetAddress sets the "street_address" field if the given value is not nil.
func (_c *ContactCreate) SetNillableStreetAddress(v *string) *ContactCreate {
	if v != nil {
		_c.SetStreetAddress(*v)
	}
	return _c
}

// SetLocationCity sets the "location_city" field.
func (_c *ContactCreate) SetLocationCity(v string) *ContactCreate {
	_c.mutation.SetLocationCity(v)
	return _c
}

// SetNillableLocationCity sets the "location_city" field if the given value is not nil.
func (_c *ContactCreate) SetNillableLocationCity(v *string) *ContactCreate {
	if v != nil {
		_c.SetLocationCity(*v)
	}
	return _c
}

// SetLocationState sets the "location_state" field.
func (_c *ContactCreate) SetLocationState(v string) *ContactCreate {
	_c.mutation.SetLocationState(v)
	return _c
}

// SetNillableLocationState sets the "location_state" field if the given value is not nil.
func (_c *ContactCreate) SetNillableLocationState(v *string) *ContactCreate {
	if v != nil {
		_c.SetLocationState(*v)
	}
	return _c
}

// SetPostalCode sets the "postal_code" field.
func (_c *ContactCreate) SetPostalCode(v string) *ContactCreate {
	_c.mutation.SetPostalCode(v)
	return _c
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_c *ContactCreate) SetNillablePostalCode(v *string) *ContactCreate {
	if v != nil {
		_c.SetPostalCode(*v)
	}
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *ContactCreate) SetRawText(v string) *ContactCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *ContactCreate) SetNillableRawText(v *string) *ContactCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContactCreate) SetCreatedAt(v time.Time) *ContactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContactCreate) SetNillableCreatedAt(v *time.Time) *ContactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ContactCreate) SetUpdatedAt(v time.Time) *ContactCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ContactCreate) SetNillableUpdatedAt(v *time.Time) *ContactCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContactCreate) SetID(v uuid.UUID) *ContactCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ContactCreate) SetNillableID(v *uuid.UUID) *ContactCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddScanIDs adds the "scans" edge to the ScanJob entity by IDs.
func (_c *ContactCreate) AddScanIDs(ids ...uuid.UUID) *ContactCreate {
	_c.mutation.AddScanIDs(ids...)
	return _c
}

// AddScans adds the "scans" edges to the ScanJob entity.
func (_c *ContactCreate) AddScans(v ...*ScanJob) *ContactCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddScanIDs(ids...)
}

// Mutation returns the ContactMutation object of the builder.
func (_c *ContactCreate) Mutation() *ContactMutation {
	return _c.mutation
}

// Save creates the Contact in the database.
func (_c *ContactCreate) Save(ctx context.Context) (*Contact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContactCreate) SaveX(ctx context.Context) *Contact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContactCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := contact.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := contact.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContactCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Contact.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Contact.updated_at"`)}
	}
	return nil
}

func (_c *ContactCreate) sqlSave(ctx context.Context) (*Contact, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContactCreate) createSpec() (*Contact, *sqlgraph.CreateSpec) {
	var (
		_node = &Contact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contact.Table, sqlgraph.NewFieldSpec(contact.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(contact.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.Organization(); ok {
		_spec.SetField(contact.FieldOrganization, field.TypeString, value)
		_node.Organization = value
	}
	if value, ok := _c.mutation.JobTitle(); ok {
		_spec.SetField(contact.FieldJobTitle, field.TypeString, value)
		_node.JobTitle = value
	}
	if value, ok := _c.mutation.ContactNumber(); ok {
		_spec.SetField(contact.FieldContactNumber, field.TypeString, value)
		_node.ContactNumber = value
	}
	if value, ok := _c.mutation.BusinessEmail(); ok {
		_spec.SetField(contact.FieldBusinessEmail, field.TypeString, value)
		_node.BusinessEmail = value
	}
	if value, ok := _c.mutation.BusinessURL(); ok {
		_spec.SetField(contact.FieldBusinessURL, field.TypeString, value)
		_node.BusinessURL = value
	}
	if value, ok := _c.mutation.StreetAddress(); ok {
		_spec.SetField(contact.FieldStreetAddress, field.TypeString, value)
		_node.StreetAddress = value
	}
	if value, ok := _c.mutation.LocationCity(); ok {
		_spec.SetField(contact.FieldLocationCity, field.TypeString, value)
		_node.LocationCity = value
	}
	if value, ok := _c.mutation.LocationState(); ok {
		_spec.SetField(contact.FieldLocationState, field.TypeString, value)
		_node.LocationState = value
	}
	if value, ok := _c.mutation.PostalCode(); ok {
		_spec.SetField(contact.FieldPostalCode, field.TypeString, value)
		_node.PostalCode = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(contact.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(contact.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ScansIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContactCreateBulk is the builder for creating many Contact entities in bulk.
type ContactCreateBulk struct {
	config
	err      error
	builders []*ContactCreate
}

// Save creates the Contact entities in the database.
func (_c *ContactCreateBulk) Save(ctx context.Context) ([]*Contact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Contact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContactMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ContactCreateBulk) SaveX(ctx context.Context) []*Contact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
