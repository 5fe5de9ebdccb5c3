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
	"github.com/google/uuid"
	"github.com/procurehq/procurement-tracker/gen/ent/document"
	"github.com/procurehq/procurement-tracker/gen/ent/predicate"
	"github.com/procurehq/procurement-tracker/gen/ent/supplier"
)

// SupplierUpdate is the builder for updating Supplier entities.
type SupplierUpdate struct {
	config
	hooks    []Hook
	mutation *SupplierMutation
}

// Where appends a list predicates to the SupplierUpdate builder.
func (_u *SupplierUpdate) Where(ps ...predicate.Supplier) *SupplierUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *SupplierUpdate) SetTenantID(v uuid.UUID) *SupplierUpdate {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *SupplierUpdate) SetNillableTenantID(v *uuid.UUID) *SupplierUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SupplierUpdate) SetName(v string) *SupplierUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SupplierUpdate) SetNillableName(v *string) *SupplierUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *SupplierUpdate) SetNormalizedName(v string) *SupplierUpdate {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *SupplierUpdate) SetNillableNormalizedName(v *string) *SupplierUpdate {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetContactEmail sets the "contact_email" field.
func (_u *SupplierUpdate) SetContactEmail(v string) *SupplierUpdate {
	_u.mutation.SetContactEmail(v)
	return _u
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (_u *SupplierUpdate) SetNillableContactEmail(v *string) *SupplierUpdate {
	if v != nil {
		_u.SetContactEmail(*v)
	}
	return _u
}

// ClearContactEmail clears the value of the "contact_email" field.
func (_u *SupplierUpdate) ClearContactEmail() *SupplierUpdate {
	_u.mutation.ClearContactEmail()
	return _u
}

// SetContactPhone sets the "contact_phone" field.
func (_u *SupplierUpdate) SetContactPhone(v string) *SupplierUpdate {
	_u.mutation.SetContactPhone(v)
	return _u
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (_u *SupplierUpdate) SetNillableContactPhone(v *string) *SupplierUpdate {
	if v != nil {
		_u.SetContactPhone(*v)
	}
	return _u
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (_u *SupplierUpdate) ClearContactPhone() *SupplierUpdate {
	_u.mutation.ClearContactPhone()
	return _u
}

// SetContactAddress sets the "contact_address" field.
func (_u *SupplierUpdate) SetContactAddress(v string) *SupplierUpdate {
	_u.mutation.SetContactAddress(v)
	return _u
}

// SetNillableContactAddress sets the "contact_address" field if the given value is not nil.
func (_u *SupplierUpdate) SetNillableContactAddress(v *string) *SupplierUpdate {
	if v != nil {
		_u.SetContactAddress(*v)
	}
	return _u
}

// ClearContactAddress clears the value of the "contact_address" field.
func (_u *SupplierUpdate) ClearContactAddress() *SupplierUpdate {
	_u.mutation.ClearContactAddress()
	return _u
}

// SetTaxID sets the "tax_id" field.
func (_u *SupplierUpdate) SetTaxID(v string) *SupplierUpdate {
	_u.mutation.SetTaxID(v)
	return _u
}

// SetNillableTaxID sets the "tax_id" field if the given value is not nil.
func (_u *SupplierUpdate) SetNillableTaxID(v *string) *SupplierUpdate {
	if v != nil {
		_u.SetTaxID(*v)
	}
	return _u
}

// ClearTaxID clears the value of the "tax_id" field.
func (_u *SupplierUpdate) ClearTaxID() *SupplierUpdate {
	_u.mutation.ClearTaxID()
	return _u
}

// SetTotalSpend sets the "total_spend" field.
func (_u *SupplierUpdate) SetTotalSpend(v float64) *SupplierUpdate {
	_u.mutation.ResetTotalSpend()
	_u.mutation.SetTotalSpend(v)
	return _u
}

// SetNillableTotalSpend sets the "total_spend" field if the given value is not nil.
func (_u *SupplierUpdate) SetNillableTotalSpend(v *float64) *SupplierUpdate {
	if v != nil {
		_u.SetTotalSpend(*v)
	}
	return _u
}

// AddTotalSpend adds value to the "total_spend" field.
func (_u *SupplierUpdate) AddTotalSpend(v float64) *SupplierUpdate {
	_u.mutation.AddTotalSpend(v)
	return _u
}

// SetPerformanceRating sets the "performance_rating" field.
func (_u *SupplierUpdate) SetPerformanceRating(v float64) *SupplierUpdate {
	_u.mutation.ResetPerformanceRating()
	_u.mutation.SetPerformanceRating(v)
	return _u
}

// SetNillablePerformanceRating sets the "performance_rating" field if the given value is not nil.
func (_u *SupplierUpdate) SetNillablePerformanceRating(v *float64) *SupplierUpdate {
	if v != nil {
		_u.SetPerformanceRating(*v)
	}
	return _u
}

// AddPerformanceRating adds value to the "performance_rating" field.
func (_u *SupplierUpdate) AddPerformanceRating(v float64) *SupplierUpdate {
	_u.mutation.AddPerformanceRating(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SupplierUpdate) SetStatus(v supplier.Status) *SupplierUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SupplierUpdate) SetNillableStatus(v *supplier.Status) *SupplierUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SupplierUpdate) SetCreatedAt(v time.Time) *SupplierUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SupplierUpdate) SetNillableCreatedAt(v *time.Time) *SupplierUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SupplierUpdate) SetUpdatedAt(v time.Time) *SupplierUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *SupplierUpdate) AddDocumentIDs(ids ...uuid.UUID) *SupplierUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *SupplierUpdate) AddDocuments(v ...*Document) *SupplierUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the SupplierMutation object of the builder.
func (_u *SupplierUpdate) Mutation() *SupplierMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *SupplierUpdate) ClearDocuments() *SupplierUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *SupplierUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *SupplierUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *SupplierUpdate) RemoveDocuments(v ...*Document) *SupplierUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SupplierUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupplierUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SupplierUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupplierUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SupplierUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := supplier.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupplierUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := supplier.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Supplier.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedName(); ok {
		if err := supplier.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "Supplier.normalized_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalSpend(); ok {
		if err := supplier.TotalSpendValidator(v); err != nil {
			return &ValidationError{Name: "total_spend", err: fmt.Errorf(`ent: validator failed for field "Supplier.total_spend": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PerformanceRating(); ok {
		if err := supplier.PerformanceRatingValidator(v); err != nil {
			return &ValidationError{Name: "performance_rating", err: fmt.Errorf(`ent: validator failed for field "Supplier.performance_rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := supplier.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Supplier.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SupplierUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(supplier.Table, supplier.Columns, sqlgraph.NewFieldSpec(supplier.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(supplier.FieldTenantID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(supplier.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(supplier.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContactEmail(); ok {
		_spec.SetField(supplier.FieldContactEmail, field.TypeString, value)
	}
	if _u.mutation.ContactEmailCleared() {
		_spec.ClearField(supplier.FieldContactEmail, field.TypeString)
	}
	if value, ok := _u.mutation.ContactPhone(); ok {
		_spec.SetField(supplier.FieldContactPhone, field.TypeString, value)
	}
	if _u.mutation.ContactPhoneCleared() {
		_spec.ClearField(supplier.FieldContactPhone, field.TypeString)
	}
	if value, ok := _u.mutation.ContactAddress(); ok {
		_spec.SetField(supplier.FieldContactAddress, field.TypeString, value)
	}
	if _u.mutation.ContactAddressCleared() {
		_spec.ClearField(supplier.FieldContactAddress, field.TypeString)
	}
	if value, ok := _u.mutation.TaxID(); ok {
		_spec.SetField(supplier.FieldTaxID, field.TypeString, value)
	}
	if _u.mutation.TaxIDCleared() {
		_spec.ClearField(supplier.FieldTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.TotalSpend(); ok {
		_spec.SetField(supplier.FieldTotalSpend, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalSpend(); ok {
		_spec.AddField(supplier.FieldTotalSpend, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PerformanceRating(); ok {
		_spec.SetField(supplier.FieldPerformanceRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPerformanceRating(); ok {
		_spec.AddField(supplier.FieldPerformanceRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(supplier.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(supplier.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(supplier.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supplier.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SupplierUpdateOne is the builder for updating a single Supplier entity.
type SupplierUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SupplierMutation
}

// SetTenantID sets the "tenant_id" field.
func (_u *SupplierUpdateOne) SetTenantID(v uuid.UUID) *SupplierUpdateOne {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *SupplierUpdateOne) SetNillableTenantID(v *uuid.UUID) *SupplierUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SupplierUpdateOne) SetName(v string) *SupplierUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SupplierUpdateOne) SetNillableName(v *string) *SupplierUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *SupplierUpdateOne) SetNormalizedName(v string) *SupplierUpdateOne {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *SupplierUpdateOne) SetNillableNormalizedName(v *string) *SupplierUpdateOne {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetContactEmail sets the "contact_email" field.
func (_u *SupplierUpdateOne) SetContactEmail(v string) *SupplierUpdateOne {
	_u.mutation.SetContactEmail(v)
	return _u
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (_u *SupplierUpdateOne) SetNillableContactEmail(v *string) *SupplierUpdateOne {
	if v != nil {
		_u.SetContactEmail(*v)
	}
	return _u
}

// ClearContactEmail clears the value of the "contact_email" field.
func (_u *SupplierUpdateOne) ClearContactEmail() *SupplierUpdateOne {
	_u.mutation.ClearContactEmail()
	return _u
}

// SetContactPhone sets the "contact_phone" field.
func (_u *SupplierUpdateOne) SetContactPhone(v string) *SupplierUpdateOne {
	_u.mutation.SetContactPhone(v)
	return _u
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (_u *SupplierUpdateOne) SetNillableContactPhone(v *string) *SupplierUpdateOne {
	if v != nil {
		_u.SetContactPhone(*v)
	}
	return _u
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (_u *SupplierUpdateOne) ClearContactPhone() *SupplierUpdateOne {
	_u.mutation.ClearContactPhone()
	return _u
}

// SetContactAddress sets the "contact_address" field.
func (_u *SupplierUpdateOne) SetContactAddress(v string) *SupplierUpdateOne {
	_u.mutation.SetContactAddress(v)
	return _u
}

// SetNillableContactAddress sets the "contact_address" field if the given value is not nil.
func (_u *SupplierUpdateOne) SetNillableContactAddress(v *string) *SupplierUpdateOne {
	if v != nil {
		_u.SetContactAddress(*v)
	}
	return _u
}

// ClearContactAddress clears the value of the "contact_address" field.
func (_u *SupplierUpdateOne) ClearContactAddress() *SupplierUpdateOne {
	_u.mutation.ClearContactAddress()
	return _u
}

// SetTaxID sets the "tax_id" field.
func (_u *SupplierUpdateOne) SetTaxID(v string) *SupplierUpdateOne {
	_u.mutation.SetTaxID(v)
	return _u
}

// SetNillableTaxID sets the "tax_id" field if the given value is not nil.
func (_u *SupplierUpdateOne) SetNillableTaxID(v *string) *SupplierUpdateOne {
	if v != nil {
		_u.SetTaxID(*v)
	}
	return _u
}

// ClearTaxID clears the value of the "tax_id" field.
func (_u *SupplierUpdateOne) ClearTaxID() *SupplierUpdateOne {
	_u.mutation.ClearTaxID()
	return _u
}

// SetTotalSpend sets the "total_spend" field.
func (_u *SupplierUpdateOne) SetTotalSpend(v float64) *SupplierUpdateOne {
	_u.mutation.ResetTotalSpend()
	_u.mutation.SetTotalSpend(v)
	return _u
}

// SetNillableTotalSpend sets the "total_spend" field if the given value is not nil.
func (_u *SupplierUpdateOne) SetNillableTotalSpend(v *float64) *SupplierUpdateOne {
	if v != nil {
		_u.SetTotalSpend(*v)
	}
	return _u
}

// AddTotalSpend adds value to the "total_spend" field.
func (_u *SupplierUpdateOne) AddTotalSpend(v float64) *SupplierUpdateOne {
	_u.mutation.AddTotalSpend(v)
	return _u
}

// SetPerformanceRating sets the "performance_rating" field.
func (_u *SupplierUpdateOne) SetPerformanceRating(v float64) *SupplierUpdateOne {
	_u.mutation.ResetPerformanceRating()
	_u.mutation.SetPerformanceRating(v)
	return _u
}

// SetNillablePerformanceRating sets the "performance_rating" field if the given value is not nil.
func (_u *SupplierUpdateOne) SetNillablePerformanceRating(v *float64) *SupplierUpdateOne {
	if v != nil {
		_u.SetPerformanceRating(*v)
	}
	return _u
}

// AddPerformanceRating adds value to the "performance_rating" field.
func (_u *SupplierUpdateOne) AddPerformanceRating(v float64) *SupplierUpdateOne {
	_u.mutation.AddPerformanceRating(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SupplierUpdateOne) SetStatus(v supplier.Status) *SupplierUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SupplierUpdateOne) SetNillableStatus(v *supplier.Status) *SupplierUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SupplierUpdateOne) SetCreatedAt(v time.Time) *SupplierUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SupplierUpdateOne) SetNillableCreatedAt(v *time.Time) *SupplierUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SupplierUpdateOne) SetUpdatedAt(v time.Time) *SupplierUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *SupplierUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *SupplierUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *SupplierUpdateOne) AddDocuments(v ...*Document) *SupplierUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the SupplierMutation object of the builder.
func (_u *SupplierUpdateOne) Mutation() *SupplierMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *SupplierUpdateOne) ClearDocuments() *SupplierUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *SupplierUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *SupplierUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *SupplierUpdateOne) RemoveDocuments(v ...*Document) *SupplierUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Where appends a list predicates to the SupplierUpdate builder.
func (_u *SupplierUpdateOne) Where(ps ...predicate.Supplier) *SupplierUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SupplierUpdateOne) Select(field string, fields ...string) *SupplierUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Supplier entity.
func (_u *SupplierUpdateOne) Save(ctx context.Context) (*Supplier, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupplierUpdateOne) SaveX(ctx context.Context) *Supplier {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SupplierUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupplierUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SupplierUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := supplier.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupplierUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := supplier.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Supplier.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedName(); ok {
		if err := supplier.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "Supplier.normalized_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalSpend(); ok {
		if err := supplier.TotalSpendValidator(v); err != nil {
			return &ValidationError{Name: "total_spend", err: fmt.Errorf(`ent: validator failed for field "Supplier.total_spend": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PerformanceRating(); ok {
		if err := supplier.PerformanceRatingValidator(v); err != nil {
			return &ValidationError{Name: "performance_rating", err: fmt.Errorf(`ent: validator failed for field "Supplier.performance_rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := supplier.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Supplier.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SupplierUpdateOne) sqlSave(ctx context.Context) (_node *Supplier, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(supplier.Table, supplier.Columns, sqlgraph.NewFieldSpec(supplier.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Supplier.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, supplier.FieldID)
		for _, f := range fields {
			if !supplier.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != supplier.FieldID {
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
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(supplier.FieldTenantID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(supplier.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(supplier.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContactEmail(); ok {
		_spec.SetField(supplier.FieldContactEmail, field.TypeString, value)
	}
	if _u.mutation.ContactEmailCleared() {
		_spec.ClearField(supplier.FieldContactEmail, field.TypeString)
	}
	if value, ok := _u.mutation.ContactPhone(); ok {
		_spec.SetField(supplier.FieldContactPhone, field.TypeString, value)
	}
	if _u.mutation.ContactPhoneCleared() {
		_spec.ClearField(supplier.FieldContactPhone, field.TypeString)
	}
	if value, ok := _u.mutation.ContactAddress(); ok {
		_spec.SetField(supplier.FieldContactAddress, field.TypeString, value)
	}
	if _u.mutation.ContactAddressCleared() {
		_spec.ClearField(supplier.FieldContactAddress, field.TypeString)
	}
	if value, ok := _u.mutation.TaxID(); ok {
		_spec.SetField(supplier.FieldTaxID, field.TypeString, value)
	}
	if _u.mutation.TaxIDCleared() {
		_spec.ClearField(supplier.FieldTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.TotalSpend(); ok {
		_spec.SetField(supplier.FieldTotalSpend, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalSpend(); ok {
		_spec.AddField(supplier.FieldTotalSpend, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PerformanceRating(); ok {
		_spec.SetField(supplier.FieldPerformanceRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPerformanceRating(); ok {
		_spec.AddField(supplier.FieldPerformanceRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(supplier.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(supplier.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(supplier.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Supplier{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supplier.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
