// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/procurehq/procurement-tracker/gen/ent/document"
	"github.com/procurehq/procurement-tracker/gen/ent/supplier"
)

// SupplierCreate is the builder for creating a Supplier entity.
type SupplierCreate struct {
	config
	mutation *SupplierMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *SupplierCreate) SetTenantID(v uuid.UUID) *SupplierCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SupplierCreate) SetName(v string) *SupplierCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNormalizedName sets the "normalized_name" field.
func (_c *SupplierCreate) SetNormalizedName(v string) *SupplierCreate {
	_c.mutation.SetNormalizedName(v)
	return _c
}

// SetContactEmail sets the "contact_email" field.
func (_c *SupplierCreate) SetContactEmail(v string) *SupplierCreate {
	_c.mutation.SetContactEmail(v)
	return _c
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (_c *SupplierCreate) SetNillableContactEmail(v *string) *SupplierCreate {
	if v != nil {
		_c.SetContactEmail(*v)
	}
	return _c
}

// SetContactPhone sets the "contact_phone" field.
func (_c *SupplierCreate) SetContactPhone(v string) *SupplierCreate {
	_c.mutation.SetContactPhone(v)
	return _c
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (_c *SupplierCreate) SetNillableContactPhone(v *string) *SupplierCreate {
	if v != nil {
		_c.SetContactPhone(*v)
	}
	return _c
}

// SetContactAddress sets the "contact_address" field.
func (_c *SupplierCreate) SetContactAddress(v string) *SupplierCreate {
	_c.mutation.SetContactAddress(v)
	return _c
}

// SetNillableContactAddress sets the "contact_address" field if the given value is not nil.
func (_c *SupplierCreate) SetNillableContactAddress(v *string) *SupplierCreate {
	if v != nil {
		_c.SetContactAddress(*v)
	}
	return _c
}

// SetTaxID sets the "tax_id" field.
func (_c *SupplierCreate) SetTaxID(v string) *SupplierCreate {
	_c.mutation.SetTaxID(v)
	return _c
}

// SetNillableTaxID sets the "tax_id" field if the given value is not nil.
func (_c *SupplierCreate) SetNillableTaxID(v *string) *SupplierCreate {
	if v != nil {
		_c.SetTaxID(*v)
	}
	return _c
}

// SetTotalSpend sets the "total_spend" field.
func (_c *SupplierCreate) SetTotalSpend(v float64) *SupplierCreate {
	_c.mutation.SetTotalSpend(v)
	return _c
}

// SetNillableTotalSpend sets the "total_spend" field if the given value is not nil.
func (_c *SupplierCreate) SetNillableTotalSpend(v *float64) *SupplierCreate {
	if v != nil {
		_c.SetTotalSpend(*v)
	}
	return _c
}

// SetPerformanceRating sets the "performance_rating" field.
func (_c *SupplierCreate) SetPerformanceRating(v float64) *SupplierCreate {
	_c.mutation.SetPerformanceRating(v)
	return _c
}

// SetNillablePerformanceRating sets the "performance_rating" field if the given value is not nil.
func (_c *SupplierCreate) SetNillablePerformanceRating(v *float64) *SupplierCreate {
	if v != nil {
		_c.SetPerformanceRating(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SupplierCreate) SetStatus(v supplier.Status) *SupplierCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SupplierCreate) SetNillableStatus(v *supplier.Status) *SupplierCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SupplierCreate) SetCreatedAt(v time.Time) *SupplierCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SupplierCreate) SetNillableCreatedAt(v *time.Time) *SupplierCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SupplierCreate) SetUpdatedAt(v time.Time) *SupplierCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SupplierCreate) SetNillableUpdatedAt(v *time.Time) *SupplierCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SupplierCreate) SetID(v uuid.UUID) *SupplierCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SupplierCreate) SetNillableID(v *uuid.UUID) *SupplierCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_c *SupplierCreate) AddDocumentIDs(ids ...uuid.UUID) *SupplierCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_c *SupplierCreate) AddDocuments(v ...*Document) *SupplierCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// Mutation returns the SupplierMutation object of the builder.
func (_c *SupplierCreate) Mutation() *SupplierMutation {
	return _c.mutation
}

// Save creates the Supplier in the database.
func (_c *SupplierCreate) Save(ctx context.Context) (*Supplier, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SupplierCreate) SaveX(ctx context.Context) *Supplier {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupplierCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupplierCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SupplierCreate) defaults() {
	if _, ok := _c.mutation.TotalSpend(); !ok {
		v := supplier.DefaultTotalSpend
		_c.mutation.SetTotalSpend(v)
	}
	if _, ok := _c.mutation.PerformanceRating(); !ok {
		v := supplier.DefaultPerformanceRating
		_c.mutation.SetPerformanceRating(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := supplier.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := supplier.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := supplier.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := supplier.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SupplierCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Supplier.tenant_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Supplier.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := supplier.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Supplier.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NormalizedName(); !ok {
		return &ValidationError{Name: "normalized_name", err: errors.New(`ent: missing required field "Supplier.normalized_name"`)}
	}
	if v, ok := _c.mutation.NormalizedName(); ok {
		if err := supplier.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "Supplier.normalized_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalSpend(); !ok {
		return &ValidationError{Name: "total_spend", err: errors.New(`ent: missing required field "Supplier.total_spend"`)}
	}
	if v, ok := _c.mutation.TotalSpend(); ok {
		if err := supplier.TotalSpendValidator(v); err != nil {
			return &ValidationError{Name: "total_spend", err: fmt.Errorf(`ent: validator failed for field "Supplier.total_spend": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PerformanceRating(); !ok {
		return &ValidationError{Name: "performance_rating", err: errors.New(`ent: missing required field "Supplier.performance_rating"`)}
	}
	if v, ok := _c.mutation.PerformanceRating(); ok {
		if err := supplier.PerformanceRatingValidator(v); err != nil {
			return &ValidationError{Name: "performance_rating", err: fmt.Errorf(`ent: validator failed for field "Supplier.performance_rating": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Supplier.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := supplier.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Supplier.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Supplier.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Supplier.updated_at"`)}
	}
	return nil
}

func (_c *SupplierCreate) sqlSave(ctx context.Context) (*Supplier, error) {
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

func (_c *SupplierCreate) createSpec() (*Supplier, *sqlgraph.CreateSpec) {
	var (
		_node = &Supplier{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(supplier.Table, sqlgraph.NewFieldSpec(supplier.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(supplier.FieldTenantID, field.TypeUUID, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(supplier.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.NormalizedName(); ok {
		_spec.SetField(supplier.FieldNormalizedName, field.TypeString, value)
		_node.NormalizedName = value
	}
	if value, ok := _c.mutation.ContactEmail(); ok {
		_spec.SetField(supplier.FieldContactEmail, field.TypeString, value)
		_node.ContactEmail = &value
	}
	if value, ok := _c.mutation.ContactPhone(); ok {
		_spec.SetField(supplier.FieldContactPhone, field.TypeString, value)
		_node.ContactPhone = &value
	}
	if value, ok := _c.mutation.ContactAddress(); ok {
		_spec.SetField(supplier.FieldContactAddress, field.TypeString, value)
		_node.ContactAddress = &value
	}
	if value, ok := _c.mutation.TaxID(); ok {
		_spec.SetField(supplier.FieldTaxID, field.TypeString, value)
		_node.TaxID = &value
	}
	if value, ok := _c.mutation.TotalSpend(); ok {
		_spec.SetField(supplier.FieldTotalSpend, field.TypeFloat64, value)
		_node.TotalSpend = value
	}
	if value, ok := _c.mutation.PerformanceRating(); ok {
		_spec.SetField(supplier.FieldPerformanceRating, field.TypeFloat64, value)
		_node.PerformanceRating = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(supplier.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(supplier.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(supplier.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.DocumentsTable,
			Columns: []string{supplier.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SupplierCreateBulk is the builder for creating many Supplier entities in bulk.
type SupplierCreateBulk struct {
	config
	err      error
	builders []*SupplierCreate
}

// Save creates the Supplier entities in the database.
func (_c *SupplierCreateBulk) Save(ctx context.Context) ([]*Supplier, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Supplier, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SupplierMutation)
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
func (_c *SupplierCreateBulk) SaveX(ctx context.Context) []*Supplier {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupplierCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupplierCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
