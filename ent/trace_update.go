// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promptlens/promptlens/ent/predicate"
	"github.com/promptlens/promptlens/ent/span"
	"github.com/promptlens/promptlens/ent/trace"
)

// TraceUpdate is the builder for updating Trace entities.
type TraceUpdate struct {
	config
	hooks    []Hook
	mutation *TraceMutation
}

// Where appends a list predicates to the TraceUpdate builder.
func (_u *TraceUpdate) Where(ps ...predicate.Trace) *TraceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *TraceUpdate) SetConversationID(v string) *TraceUpdate {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *TraceUpdate) SetNillableConversationID(v *string) *TraceUpdate {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (_u *TraceUpdate) ClearConversationID() *TraceUpdate {
	_u.mutation.ClearConversationID()
	return _u
}

// AddSpanIDs adds the "spans" edge to the Span entity by IDs.
func (_u *TraceUpdate) AddSpanIDs(ids ...string) *TraceUpdate {
	_u.mutation.AddSpanIDs(ids...)
	return _u
}

// AddSpans adds the "spans" edges to the Span entity.
func (_u *TraceUpdate) AddSpans(v ...*Span) *TraceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSpanIDs(ids...)
}

// Mutation returns the TraceMutation object of the builder.
func (_u *TraceUpdate) Mutation() *TraceMutation {
	return _u.mutation
}

// ClearSpans clears all "spans" edges to the Span entity.
func (_u *TraceUpdate) ClearSpans() *TraceUpdate {
	_u.mutation.ClearSpans()
	return _u
}

// RemoveSpanIDs removes the "spans" edge to Span entities by IDs.
func (_u *TraceUpdate) RemoveSpanIDs(ids ...string) *TraceUpdate {
	_u.mutation.RemoveSpanIDs(ids...)
	return _u
}

// RemoveSpans removes "spans" edges to Span entities.
func (_u *TraceUpdate) RemoveSpans(v ...*Span) *TraceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSpanIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TraceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TraceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TraceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TraceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TraceUpdate) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Trace.project"`)
	}
	return nil
}

func (_u *TraceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trace.Table, trace.Columns, sqlgraph.NewFieldSpec(trace.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(trace.FieldConversationID, field.TypeString, value)
	}
	if _u.mutation.ConversationIDCleared() {
		_spec.ClearField(trace.FieldConversationID, field.TypeString)
	}
	if _u.mutation.SpansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   trace.SpansTable,
			Columns: []string{trace.SpansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(span.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSpansIDs(); len(nodes) > 0 && !_u.mutation.SpansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   trace.SpansTable,
			Columns: []string{trace.SpansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(span.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpansIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   trace.SpansTable,
			Columns: []string{trace.SpansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(span.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TraceUpdateOne is the builder for updating a single Trace entity.
type TraceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TraceMutation
}

// SetConversationID sets the "conversation_id" field.
func (_u *TraceUpdateOne) SetConversationID(v string) *TraceUpdateOne {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *TraceUpdateOne) SetNillableConversationID(v *string) *TraceUpdateOne {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (_u *TraceUpdateOne) ClearConversationID() *TraceUpdateOne {
	_u.mutation.ClearConversationID()
	return _u
}

// AddSpanIDs adds the "spans" edge to the Span entity by IDs.
func (_u *TraceUpdateOne) AddSpanIDs(ids ...string) *TraceUpdateOne {
	_u.mutation.AddSpanIDs(ids...)
	return _u
}

// AddSpans adds the "spans" edges to the Span entity.
func (_u *TraceUpdateOne) AddSpans(v ...*Span) *TraceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSpanIDs(ids...)
}

// Mutation returns the TraceMutation object of the builder.
func (_u *TraceUpdateOne) Mutation() *TraceMutation {
	return _u.mutation
}

// ClearSpans clears all "spans" edges to the Span entity.
func (_u *TraceUpdateOne) ClearSpans() *TraceUpdateOne {
	_u.mutation.ClearSpans()
	return _u
}

// RemoveSpanIDs removes the "spans" edge to Span entities by IDs.
func (_u *TraceUpdateOne) RemoveSpanIDs(ids ...string) *TraceUpdateOne {
	_u.mutation.RemoveSpanIDs(ids...)
	return _u
}

// RemoveSpans removes "spans" edges to Span entities.
func (_u *TraceUpdateOne) RemoveSpans(v ...*Span) *TraceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSpanIDs(ids...)
}

// Where appends a list predicates to the TraceUpdate builder.
func (_u *TraceUpdateOne) Where(ps ...predicate.Trace) *TraceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TraceUpdateOne) Select(field string, fields ...string) *TraceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Trace entity.
func (_u *TraceUpdateOne) Save(ctx context.Context) (*Trace, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TraceUpdateOne) SaveX(ctx context.Context) *Trace {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TraceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TraceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TraceUpdateOne) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Trace.project"`)
	}
	return nil
}

func (_u *TraceUpdateOne) sqlSave(ctx context.Context) (_node *Trace, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trace.Table, trace.Columns, sqlgraph.NewFieldSpec(trace.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Trace.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trace.FieldID)
		for _, f := range fields {
			if !trace.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trace.FieldID {
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
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(trace.FieldConversationID, field.TypeString, value)
	}
	if _u.mutation.ConversationIDCleared() {
		_spec.ClearField(trace.FieldConversationID, field.TypeString)
	}
	if _u.mutation.SpansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   trace.SpansTable,
			Columns: []string{trace.SpansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(span.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSpansIDs(); len(nodes) > 0 && !_u.mutation.SpansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   trace.SpansTable,
			Columns: []string{trace.SpansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(span.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpansIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   trace.SpansTable,
			Columns: []string{trace.SpansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(span.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Trace{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
