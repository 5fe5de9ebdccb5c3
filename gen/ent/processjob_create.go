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
	"github.com/procurehq/procurement-tracker/gen/ent/processjob"
)

// ProcessJobCreate is the builder for creating a ProcessJob entity.
type ProcessJobCreate struct {
	config
	mutation *ProcessJobMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ProcessJobCreate) SetDocumentID(v uuid.UUID) *ProcessJobCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProcessJobCreate) SetStatus(v string) *ProcessJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProcessJobCreate) SetNillableStatus(v *string) *ProcessJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetModelUsed sets the "model_used" field.
func (_c *ProcessJobCreate) SetModelUsed(v string) *ProcessJobCreate {
	_c.mutation.SetModelUsed(v)
	return _c
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_c *ProcessJobCreate) SetNillableModelUsed(v *string) *ProcessJobCreate {
	if v != nil {
		_c.SetModelUsed(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ProcessJobCreate) SetConfidence(v float64) *ProcessJobCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ProcessJobCreate) SetNillableConfidence(v *float64) *ProcessJobCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetCorrections sets the "corrections" field.
func (_c *ProcessJobCreate) SetCorrections(v []string) *ProcessJobCreate {
	_c.mutation.SetCorrections(v)
	return _c
}

// SetCacheHit sets the "cache_hit" field.
func (_c *ProcessJobCreate) SetCacheHit(v bool) *ProcessJobCreate {
	_c.mutation.SetCacheHit(v)
	return _c
}

// SetNillableCacheHit sets the "cache_hit" field if the given value is not nil.
func (_c *ProcessJobCreate) SetNillableCacheHit(v *bool) *ProcessJobCreate {
	if v != nil {
		_c.SetCacheHit(*v)
	}
	return _c
}

// SetRawOutput sets the "raw_output" field.
func (_c *ProcessJobCreate) SetRawOutput(v []byte) *ProcessJobCreate {
	_c.mutation.SetRawOutput(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ProcessJobCreate) SetErrorMessage(v string) *ProcessJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ProcessJobCreate) SetNillableErrorMessage(v *string) *ProcessJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ProcessJobCreate) SetStartedAt(v time.Time) *ProcessJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ProcessJobCreate) SetNillableStartedAt(v *time.Time) *ProcessJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ProcessJobCreate) SetFinishedAt(v time.Time) *ProcessJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ProcessJobCreate) SetNillableFinishedAt(v *time.Time) *ProcessJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcessJobCreate) SetID(v uuid.UUID) *ProcessJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProcessJobCreate) SetNillableID(v *uuid.UUID) *ProcessJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ProcessJobCreate) SetDocument(v *Document) *ProcessJobCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the ProcessJobMutation object of the builder.
func (_c *ProcessJobCreate) Mutation() *ProcessJobMutation {
	return _c.mutation
}

// Save creates the ProcessJob in the database.
func (_c *ProcessJobCreate) Save(ctx context.Context) (*ProcessJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessJobCreate) SaveX(ctx context.Context) *ProcessJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := processjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CacheHit(); !ok {
		v := processjob.DefaultCacheHit
		_c.mutation.SetCacheHit(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := processjob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := processjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessJobCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ProcessJob.document_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProcessJob.status"`)}
	}
	if _, ok := _c.mutation.CacheHit(); !ok {
		return &ValidationError{Name: "cache_hit", err: errors.New(`ent: missing required field "ProcessJob.cache_hit"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ProcessJob.started_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "ProcessJob.document"`)}
	}
	return nil
}

func (_c *ProcessJobCreate) sqlSave(ctx context.Context) (*ProcessJob, error) {
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

func (_c *ProcessJobCreate) createSpec() (*ProcessJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processjob.Table, sqlgraph.NewFieldSpec(processjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(processjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ModelUsed(); ok {
		_spec.SetField(processjob.FieldModelUsed, field.TypeString, value)
		_node.ModelUsed = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(processjob.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.Corrections(); ok {
		_spec.SetField(processjob.FieldCorrections, field.TypeJSON, value)
		_node.Corrections = value
	}
	if value, ok := _c.mutation.CacheHit(); ok {
		_spec.SetField(processjob.FieldCacheHit, field.TypeBool, value)
		_node.CacheHit = value
	}
	if value, ok := _c.mutation.RawOutput(); ok {
		_spec.SetField(processjob.FieldRawOutput, field.TypeBytes, value)
		_node.RawOutput = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(processjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(processjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(processjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processjob.DocumentTable,
			Columns: []string{processjob.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProcessJobCreateBulk is the builder for creating many ProcessJob entities in bulk.
type ProcessJobCreateBulk struct {
	config
	err      error
	builders []*ProcessJobCreate
}

// Save creates the ProcessJob entities in the database.
func (_c *ProcessJobCreateBulk) Save(ctx context.Context) ([]*ProcessJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessJobMutation)
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
func (_c *ProcessJobCreateBulk) SaveX(ctx context.Context) []*ProcessJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
