// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/promptlens/promptlens/ent/backtestrun"
	"github.com/promptlens/promptlens/ent/predicate"
)

// BacktestRunUpdate is the builder for updating BacktestRun entities.
type BacktestRunUpdate struct {
	config
	hooks    []Hook
	mutation *BacktestRunMutation
}

// Where appends a list predicates to the BacktestRunUpdate builder.
func (_u *BacktestRunUpdate) Where(ps ...predicate.BacktestRun) *BacktestRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetModels sets the "models" field.
func (_u *BacktestRunUpdate) SetModels(v []string) *BacktestRunUpdate {
	_u.mutation.SetModels(v)
	return _u
}

// AppendModels appends value to the "models" field.
func (_u *BacktestRunUpdate) AppendModels(v []string) *BacktestRunUpdate {
	_u.mutation.AppendModels(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *BacktestRunUpdate) SetStatus(v backtestrun.Status) *BacktestRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BacktestRunUpdate) SetNillableStatus(v *backtestrun.Status) *BacktestRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *BacktestRunUpdate) SetCompletedAt(v time.Time) *BacktestRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *BacktestRunUpdate) SetNillableCompletedAt(v *time.Time) *BacktestRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *BacktestRunUpdate) ClearCompletedAt() *BacktestRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the BacktestRunMutation object of the builder.
func (_u *BacktestRunUpdate) Mutation() *BacktestRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BacktestRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BacktestRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BacktestRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BacktestRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BacktestRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := backtestrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BacktestRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BacktestRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(backtestrun.Table, backtestrun.Columns, sqlgraph.NewFieldSpec(backtestrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Models(); ok {
		_spec.SetField(backtestrun.FieldModels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, backtestrun.FieldModels, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(backtestrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(backtestrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(backtestrun.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{backtestrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BacktestRunUpdateOne is the builder for updating a single BacktestRun entity.
type BacktestRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BacktestRunMutation
}

// SetModels sets the "models" field.
func (_u *BacktestRunUpdateOne) SetModels(v []string) *BacktestRunUpdateOne {
	_u.mutation.SetModels(v)
	return _u
}

// AppendModels appends value to the "models" field.
func (_u *BacktestRunUpdateOne) AppendModels(v []string) *BacktestRunUpdateOne {
	_u.mutation.AppendModels(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *BacktestRunUpdateOne) SetStatus(v backtestrun.Status) *BacktestRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BacktestRunUpdateOne) SetNillableStatus(v *backtestrun.Status) *BacktestRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *BacktestRunUpdateOne) SetCompletedAt(v time.Time) *BacktestRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *BacktestRunUpdateOne) SetNillableCompletedAt(v *time.Time) *BacktestRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *BacktestRunUpdateOne) ClearCompletedAt() *BacktestRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the BacktestRunMutation object of the builder.
func (_u *BacktestRunUpdateOne) Mutation() *BacktestRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the BacktestRunUpdate builder.
func (_u *BacktestRunUpdateOne) Where(ps ...predicate.BacktestRun) *BacktestRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BacktestRunUpdateOne) Select(field string, fields ...string) *BacktestRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BacktestRun entity.
func (_u *BacktestRunUpdateOne) Save(ctx context.Context) (*BacktestRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BacktestRunUpdateOne) SaveX(ctx context.Context) *BacktestRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BacktestRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BacktestRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BacktestRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := backtestrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BacktestRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BacktestRunUpdateOne) sqlSave(ctx context.Context) (_node *BacktestRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(backtestrun.Table, backtestrun.Columns, sqlgraph.NewFieldSpec(backtestrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BacktestRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, backtestrun.FieldID)
		for _, f := range fields {
			if !backtestrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != backtestrun.FieldID {
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
	if value, ok := _u.mutation.Models(); ok {
		_spec.SetField(backtestrun.FieldModels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, backtestrun.FieldModels, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(backtestrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(backtestrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(backtestrun.FieldCompletedAt, field.TypeTime)
	}
	_node = &BacktestRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{backtestrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
