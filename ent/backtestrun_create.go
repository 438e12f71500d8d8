// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promptlens/promptlens/ent/backtestrun"
)

// BacktestRunCreate is the builder for creating a BacktestRun entity.
type BacktestRunCreate struct {
	config
	mutation *BacktestRunMutation
	hooks    []Hook
}

// SetPromptID sets the "prompt_id" field.
func (_c *BacktestRunCreate) SetPromptID(v string) *BacktestRunCreate {
	_c.mutation.SetPromptID(v)
	return _c
}

// SetModels sets the "models" field.
func (_c *BacktestRunCreate) SetModels(v []string) *BacktestRunCreate {
	_c.mutation.SetModels(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *BacktestRunCreate) SetStatus(v backtestrun.Status) *BacktestRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BacktestRunCreate) SetNillableStatus(v *backtestrun.Status) *BacktestRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *BacktestRunCreate) SetCompletedAt(v time.Time) *BacktestRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *BacktestRunCreate) SetNillableCompletedAt(v *time.Time) *BacktestRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BacktestRunCreate) SetCreatedAt(v time.Time) *BacktestRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BacktestRunCreate) SetNillableCreatedAt(v *time.Time) *BacktestRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BacktestRunCreate) SetID(v string) *BacktestRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BacktestRunMutation object of the builder.
func (_c *BacktestRunCreate) Mutation() *BacktestRunMutation {
	return _c.mutation
}

// Save creates the BacktestRun in the database.
func (_c *BacktestRunCreate) Save(ctx context.Context) (*BacktestRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BacktestRunCreate) SaveX(ctx context.Context) *BacktestRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BacktestRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BacktestRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BacktestRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := backtestrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := backtestrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BacktestRunCreate) check() error {
	if _, ok := _c.mutation.PromptID(); !ok {
		return &ValidationError{Name: "prompt_id", err: errors.New(`ent: missing required field "BacktestRun.prompt_id"`)}
	}
	if _, ok := _c.mutation.Models(); !ok {
		return &ValidationError{Name: "models", err: errors.New(`ent: missing required field "BacktestRun.models"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "BacktestRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := backtestrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BacktestRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BacktestRun.created_at"`)}
	}
	return nil
}

func (_c *BacktestRunCreate) sqlSave(ctx context.Context) (*BacktestRun, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected BacktestRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BacktestRunCreate) createSpec() (*BacktestRun, *sqlgraph.CreateSpec) {
	var (
		_node = &BacktestRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(backtestrun.Table, sqlgraph.NewFieldSpec(backtestrun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PromptID(); ok {
		_spec.SetField(backtestrun.FieldPromptID, field.TypeString, value)
		_node.PromptID = value
	}
	if value, ok := _c.mutation.Models(); ok {
		_spec.SetField(backtestrun.FieldModels, field.TypeJSON, value)
		_node.Models = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(backtestrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(backtestrun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(backtestrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// BacktestRunCreateBulk is the builder for creating many BacktestRun entities in bulk.
type BacktestRunCreateBulk struct {
	config
	err      error
	builders []*BacktestRunCreate
}

// Save creates the BacktestRun entities in the database.
func (_c *BacktestRunCreateBulk) Save(ctx context.Context) ([]*BacktestRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BacktestRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BacktestRunMutation)
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
func (_c *BacktestRunCreateBulk) SaveX(ctx context.Context) []*BacktestRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BacktestRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BacktestRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
