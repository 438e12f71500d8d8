// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promptlens/promptlens/ent/span"
	"github.com/promptlens/promptlens/ent/trace"
)

// SpanCreate is the builder for creating a Span entity.
type SpanCreate struct {
	config
	mutation *SpanMutation
	hooks    []Hook
}

// SetTraceID sets the "trace_id" field.
func (_c *SpanCreate) SetTraceID(v string) *SpanCreate {
	_c.mutation.SetTraceID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *SpanCreate) SetProjectID(v string) *SpanCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetParentSpanID sets the "parent_span_id" field.
func (_c *SpanCreate) SetParentSpanID(v string) *SpanCreate {
	_c.mutation.SetParentSpanID(v)
	return _c
}

// SetNillableParentSpanID sets the "parent_span_id" field if the given value is not nil.
func (_c *SpanCreate) SetNillableParentSpanID(v *string) *SpanCreate {
	if v != nil {
		_c.SetParentSpanID(*v)
	}
	return _c
}

// SetPromptID sets the "prompt_id" field.
func (_c *SpanCreate) SetPromptID(v string) *SpanCreate {
	_c.mutation.SetPromptID(v)
	return _c
}

// SetNillablePromptID sets the "prompt_id" field if the given value is not nil.
func (_c *SpanCreate) SetNillablePromptID(v *string) *SpanCreate {
	if v != nil {
		_c.SetPromptID(*v)
	}
	return _c
}

// SetStartTimeUnixNano sets the "start_time_unix_nano" field.
func (_c *SpanCreate) SetStartTimeUnixNano(v int64) *SpanCreate {
	_c.mutation.SetStartTimeUnixNano(v)
	return _c
}

// SetEndTimeUnixNano sets the "end_time_unix_nano" field.
func (_c *SpanCreate) SetEndTimeUnixNano(v int64) *SpanCreate {
	_c.mutation.SetEndTimeUnixNano(v)
	return _c
}

// SetInput sets the "input" field.
func (_c *SpanCreate) SetInput(v string) *SpanCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_c *SpanCreate) SetNillableInput(v *string) *SpanCreate {
	if v != nil {
		_c.SetInput(*v)
	}
	return _c
}

// SetOutput sets the "output" field.
func (_c *SpanCreate) SetOutput(v []map[string]interface{}) *SpanCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetInputParams sets the "input_params" field.
func (_c *SpanCreate) SetInputParams(v map[string]interface{}) *SpanCreate {
	_c.mutation.SetInputParams(v)
	return _c
}

// SetOutputParams sets the "output_params" field.
func (_c *SpanCreate) SetOutputParams(v map[string]interface{}) *SpanCreate {
	_c.mutation.SetOutputParams(v)
	return _c
}

// SetOperation sets the "operation" field.
func (_c *SpanCreate) SetOperation(v string) *SpanCreate {
	_c.mutation.SetOperation(v)
	return _c
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_c *SpanCreate) SetNillableOperation(v *string) *SpanCreate {
	if v != nil {
		_c.SetOperation(*v)
	}
	return _c
}

// SetMetadataAttributes sets the "metadata_attributes" field.
func (_c *SpanCreate) SetMetadataAttributes(v map[string]interface{}) *SpanCreate {
	_c.mutation.SetMetadataAttributes(v)
	return _c
}

// SetFeedbackScore sets the "feedback_score" field.
func (_c *SpanCreate) SetFeedbackScore(v map[string]interface{}) *SpanCreate {
	_c.mutation.SetFeedbackScore(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SpanCreate) SetCreatedAt(v time.Time) *SpanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SpanCreate) SetNillableCreatedAt(v *time.Time) *SpanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SpanCreate) SetID(v string) *SpanCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTrace sets the "trace" edge to the Trace entity.
func (_c *SpanCreate) SetTrace(v *Trace) *SpanCreate {
	return _c.SetTraceID(v.ID)
}

// Mutation returns the SpanMutation object of the builder.
func (_c *SpanCreate) Mutation() *SpanMutation {
	return _c.mutation
}

// Save creates the Span in the database.
func (_c *SpanCreate) Save(ctx context.Context) (*Span, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SpanCreate) SaveX(ctx context.Context) *Span {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SpanCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := span.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SpanCreate) check() error {
	if _, ok := _c.mutation.TraceID(); !ok {
		return &ValidationError{Name: "trace_id", err: errors.New(`ent: missing required field "Span.trace_id"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Span.project_id"`)}
	}
	if _, ok := _c.mutation.StartTimeUnixNano(); !ok {
		return &ValidationError{Name: "start_time_unix_nano", err: errors.New(`ent: missing required field "Span.start_time_unix_nano"`)}
	}
	if _, ok := _c.mutation.EndTimeUnixNano(); !ok {
		return &ValidationError{Name: "end_time_unix_nano", err: errors.New(`ent: missing required field "Span.end_time_unix_nano"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Span.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := span.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Span.id": %w`, err)}
		}
	}
	if len(_c.mutation.TraceIDs()) == 0 {
		return &ValidationError{Name: "trace", err: errors.New(`ent: missing required edge "Span.trace"`)}
	}
	return nil
}

func (_c *SpanCreate) sqlSave(ctx context.Context) (*Span, error) {
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
			return nil, fmt.Errorf("unexpected Span.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SpanCreate) createSpec() (*Span, *sqlgraph.CreateSpec) {
	var (
		_node = &Span{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(span.Table, sqlgraph.NewFieldSpec(span.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(span.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.ParentSpanID(); ok {
		_spec.SetField(span.FieldParentSpanID, field.TypeString, value)
		_node.ParentSpanID = &value
	}
	if value, ok := _c.mutation.PromptID(); ok {
		_spec.SetField(span.FieldPromptID, field.TypeString, value)
		_node.PromptID = &value
	}
	if value, ok := _c.mutation.StartTimeUnixNano(); ok {
		_spec.SetField(span.FieldStartTimeUnixNano, field.TypeInt64, value)
		_node.StartTimeUnixNano = value
	}
	if value, ok := _c.mutation.EndTimeUnixNano(); ok {
		_spec.SetField(span.FieldEndTimeUnixNano, field.TypeInt64, value)
		_node.EndTimeUnixNano = value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(span.FieldInput, field.TypeString, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(span.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.InputParams(); ok {
		_spec.SetField(span.FieldInputParams, field.TypeJSON, value)
		_node.InputParams = value
	}
	if value, ok := _c.mutation.OutputParams(); ok {
		_spec.SetField(span.FieldOutputParams, field.TypeJSON, value)
		_node.OutputParams = value
	}
	if value, ok := _c.mutation.Operation(); ok {
		_spec.SetField(span.FieldOperation, field.TypeString, value)
		_node.Operation = value
	}
	if value, ok := _c.mutation.MetadataAttributes(); ok {
		_spec.SetField(span.FieldMetadataAttributes, field.TypeJSON, value)
		_node.MetadataAttributes = value
	}
	if value, ok := _c.mutation.FeedbackScore(); ok {
		_spec.SetField(span.FieldFeedbackScore, field.TypeJSON, value)
		_node.FeedbackScore = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(span.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TraceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   span.TraceTable,
			Columns: []string{span.TraceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trace.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TraceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SpanCreateBulk is the builder for creating many Span entities in bulk.
type SpanCreateBulk struct {
	config
	err      error
	builders []*SpanCreate
}

// Save creates the Span entities in the database.
func (_c *SpanCreateBulk) Save(ctx context.Context) ([]*Span, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Span, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SpanMutation)
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
func (_c *SpanCreateBulk) SaveX(ctx context.Context) []*Span {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
