// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/promptlens/promptlens/ent/predicate"
	"github.com/promptlens/promptlens/ent/span"
)

// SpanUpdate is the builder for updating Span entities.
type SpanUpdate struct {
	config
	hooks    []Hook
	mutation *SpanMutation
}

// Where appends a list predicates to the SpanUpdate builder.
func (_u *SpanUpdate) Where(ps ...predicate.Span) *SpanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParentSpanID sets the "parent_span_id" field.
func (_u *SpanUpdate) SetParentSpanID(v string) *SpanUpdate {
	_u.mutation.SetParentSpanID(v)
	return _u
}

// SetNillableParentSpanID sets the "parent_span_id" field if the given value is not nil.
func (_u *SpanUpdate) SetNillableParentSpanID(v *string) *SpanUpdate {
	if v != nil {
		_u.SetParentSpanID(*v)
	}
	return _u
}

// ClearParentSpanID clears the value of the "parent_span_id" field.
func (_u *SpanUpdate) ClearParentSpanID() *SpanUpdate {
	_u.mutation.ClearParentSpanID()
	return _u
}

// SetPromptID sets the "prompt_id" field.
func (_u *SpanUpdate) SetPromptID(v string) *SpanUpdate {
	_u.mutation.SetPromptID(v)
	return _u
}

// SetNillablePromptID sets the "prompt_id" field if the given value is not nil.
func (_u *SpanUpdate) SetNillablePromptID(v *string) *SpanUpdate {
	if v != nil {
		_u.SetPromptID(*v)
	}
	return _u
}

// ClearPromptID clears the value of the "prompt_id" field.
func (_u *SpanUpdate) ClearPromptID() *SpanUpdate {
	_u.mutation.ClearPromptID()
	return _u
}

// SetStartTimeUnixNano sets the "start_time_unix_nano" field.
func (_u *SpanUpdate) SetStartTimeUnixNano(v int64) *SpanUpdate {
	_u.mutation.ResetStartTimeUnixNano()
	_u.mutation.SetStartTimeUnixNano(v)
	return _u
}

// SetNillableStartTimeUnixNano sets the "start_time_unix_nano" field if the given value is not nil.
func (_u *SpanUpdate) SetNillableStartTimeUnixNano(v *int64) *SpanUpdate {
	if v != nil {
		_u.SetStartTimeUnixNano(*v)
	}
	return _u
}

// AddStartTimeUnixNano adds value to the "start_time_unix_nano" field.
func (_u *SpanUpdate) AddStartTimeUnixNano(v int64) *SpanUpdate {
	_u.mutation.AddStartTimeUnixNano(v)
	return _u
}

// SetEndTimeUnixNano sets the "end_time_unix_nano" field.
func (_u *SpanUpdate) SetEndTimeUnixNano(v int64) *SpanUpdate {
	_u.mutation.ResetEndTimeUnixNano()
	_u.mutation.SetEndTimeUnixNano(v)
	return _u
}

// SetNillableEndTimeUnixNano sets the "end_time_unix_nano" field if the given value is not nil.
func (_u *SpanUpdate) SetNillableEndTimeUnixNano(v *int64) *SpanUpdate {
	if v != nil {
		_u.SetEndTimeUnixNano(*v)
	}
	return _u
}

// AddEndTimeUnixNano adds value to the "end_time_unix_nano" field.
func (_u *SpanUpdate) AddEndTimeUnixNano(v int64) *SpanUpdate {
	_u.mutation.AddEndTimeUnixNano(v)
	return _u
}

// SetInput sets the "input" field.
func (_u *SpanUpdate) SetInput(v string) *SpanUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *SpanUpdate) SetNillableInput(v *string) *SpanUpdate {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *SpanUpdate) ClearInput() *SpanUpdate {
	_u.mutation.ClearInput()
	return _u
}

// SetOutput sets the "output" field.
func (_u *SpanUpdate) SetOutput(v []map[string]interface{}) *SpanUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// AppendOutput appends value to the "output" field.
func (_u *SpanUpdate) AppendOutput(v []map[string]interface{}) *SpanUpdate {
	_u.mutation.AppendOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *SpanUpdate) ClearOutput() *SpanUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetInputParams sets the "input_params" field.
func (_u *SpanUpdate) SetInputParams(v map[string]interface{}) *SpanUpdate {
	_u.mutation.SetInputParams(v)
	return _u
}

// ClearInputParams clears the value of the "input_params" field.
func (_u *SpanUpdate) ClearInputParams() *SpanUpdate {
	_u.mutation.ClearInputParams()
	return _u
}

// SetOutputParams sets the "output_params" field.
func (_u *SpanUpdate) SetOutputParams(v map[string]interface{}) *SpanUpdate {
	_u.mutation.SetOutputParams(v)
	return _u
}

// ClearOutputParams clears the value of the "output_params" field.
func (_u *SpanUpdate) ClearOutputParams() *SpanUpdate {
	_u.mutation.ClearOutputParams()
	return _u
}

// SetOperation sets the "operation" field.
func (_u *SpanUpdate) SetOperation(v string) *SpanUpdate {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *SpanUpdate) SetNillableOperation(v *string) *SpanUpdate {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// ClearOperation clears the value of the "operation" field.
func (_u *SpanUpdate) ClearOperation() *SpanUpdate {
	_u.mutation.ClearOperation()
	return _u
}

// SetMetadataAttributes sets the "metadata_attributes" field.
func (_u *SpanUpdate) SetMetadataAttributes(v map[string]interface{}) *SpanUpdate {
	_u.mutation.SetMetadataAttributes(v)
	return _u
}

// ClearMetadataAttributes clears the value of the "metadata_attributes" field.
func (_u *SpanUpdate) ClearMetadataAttributes() *SpanUpdate {
	_u.mutation.ClearMetadataAttributes()
	return _u
}

// SetFeedbackScore sets the "feedback_score" field.
func (_u *SpanUpdate) SetFeedbackScore(v map[string]interface{}) *SpanUpdate {
	_u.mutation.SetFeedbackScore(v)
	return _u
}

// ClearFeedbackScore clears the value of the "feedback_score" field.
func (_u *SpanUpdate) ClearFeedbackScore() *SpanUpdate {
	_u.mutation.ClearFeedbackScore()
	return _u
}

// Mutation returns the SpanMutation object of the builder.
func (_u *SpanUpdate) Mutation() *SpanMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SpanUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SpanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpanUpdate) check() error {
	if _u.mutation.TraceCleared() && len(_u.mutation.TraceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Span.trace"`)
	}
	return nil
}

func (_u *SpanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(span.Table, span.Columns, sqlgraph.NewFieldSpec(span.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParentSpanID(); ok {
		_spec.SetField(span.FieldParentSpanID, field.TypeString, value)
	}
	if _u.mutation.ParentSpanIDCleared() {
		_spec.ClearField(span.FieldParentSpanID, field.TypeString)
	}
	if value, ok := _u.mutation.PromptID(); ok {
		_spec.SetField(span.FieldPromptID, field.TypeString, value)
	}
	if _u.mutation.PromptIDCleared() {
		_spec.ClearField(span.FieldPromptID, field.TypeString)
	}
	if value, ok := _u.mutation.StartTimeUnixNano(); ok {
		_spec.SetField(span.FieldStartTimeUnixNano, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedStartTimeUnixNano(); ok {
		_spec.AddField(span.FieldStartTimeUnixNano, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.EndTimeUnixNano(); ok {
		_spec.SetField(span.FieldEndTimeUnixNano, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEndTimeUnixNano(); ok {
		_spec.AddField(span.FieldEndTimeUnixNano, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(span.FieldInput, field.TypeString, value)
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(span.FieldInput, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(span.FieldOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, span.FieldOutput, value)
		})
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(span.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.InputParams(); ok {
		_spec.SetField(span.FieldInputParams, field.TypeJSON, value)
	}
	if _u.mutation.InputParamsCleared() {
		_spec.ClearField(span.FieldInputParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputParams(); ok {
		_spec.SetField(span.FieldOutputParams, field.TypeJSON, value)
	}
	if _u.mutation.OutputParamsCleared() {
		_spec.ClearField(span.FieldOutputParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(span.FieldOperation, field.TypeString, value)
	}
	if _u.mutation.OperationCleared() {
		_spec.ClearField(span.FieldOperation, field.TypeString)
	}
	if value, ok := _u.mutation.MetadataAttributes(); ok {
		_spec.SetField(span.FieldMetadataAttributes, field.TypeJSON, value)
	}
	if _u.mutation.MetadataAttributesCleared() {
		_spec.ClearField(span.FieldMetadataAttributes, field.TypeJSON)
	}
	if value, ok := _u.mutation.FeedbackScore(); ok {
		_spec.SetField(span.FieldFeedbackScore, field.TypeJSON, value)
	}
	if _u.mutation.FeedbackScoreCleared() {
		_spec.ClearField(span.FieldFeedbackScore, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{span.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SpanUpdateOne is the builder for updating a single Span entity.
type SpanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SpanMutation
}

// SetParentSpanID sets the "parent_span_id" field.
func (_u *SpanUpdateOne) SetParentSpanID(v string) *SpanUpdateOne {
	_u.mutation.SetParentSpanID(v)
	return _u
}

// SetNillableParentSpanID sets the "parent_span_id" field if the given value is not nil.
func (_u *SpanUpdateOne) SetNillableParentSpanID(v *string) *SpanUpdateOne {
	if v != nil {
		_u.SetParentSpanID(*v)
	}
	return _u
}

// ClearParentSpanID clears the value of the "parent_span_id" field.
func (_u *SpanUpdateOne) ClearParentSpanID() *SpanUpdateOne {
	_u.mutation.ClearParentSpanID()
	return _u
}

// SetPromptID sets the "prompt_id" field.
func (_u *SpanUpdateOne) SetPromptID(v string) *SpanUpdateOne {
	_u.mutation.SetPromptID(v)
	return _u
}

// SetNillablePromptID sets the "prompt_id" field if the given value is not nil.
func (_u *SpanUpdateOne) SetNillablePromptID(v *string) *SpanUpdateOne {
	if v != nil {
		_u.SetPromptID(*v)
	}
	return _u
}

// ClearPromptID clears the value of the "prompt_id" field.
func (_u *SpanUpdateOne) ClearPromptID() *SpanUpdateOne {
	_u.mutation.ClearPromptID()
	return _u
}

// SetStartTimeUnixNano sets the "start_time_unix_nano" field.
func (_u *SpanUpdateOne) SetStartTimeUnixNano(v int64) *SpanUpdateOne {
	_u.mutation.ResetStartTimeUnixNano()
	_u.mutation.SetStartTimeUnixNano(v)
	return _u
}

// SetNillableStartTimeUnixNano sets the "start_time_unix_nano" field if the given value is not nil.
func (_u *SpanUpdateOne) SetNillableStartTimeUnixNano(v *int64) *SpanUpdateOne {
	if v != nil {
		_u.SetStartTimeUnixNano(*v)
	}
	return _u
}

// AddStartTimeUnixNano adds value to the "start_time_unix_nano" field.
func (_u *SpanUpdateOne) AddStartTimeUnixNano(v int64) *SpanUpdateOne {
	_u.mutation.AddStartTimeUnixNano(v)
	return _u
}

// SetEndTimeUnixNano sets the "end_time_unix_nano" field.
func (_u *SpanUpdateOne) SetEndTimeUnixNano(v int64) *SpanUpdateOne {
	_u.mutation.ResetEndTimeUnixNano()
	_u.mutation.SetEndTimeUnixNano(v)
	return _u
}

// SetNillableEndTimeUnixNano sets the "end_time_unix_nano" field if the given value is not nil.
func (_u *SpanUpdateOne) SetNillableEndTimeUnixNano(v *int64) *SpanUpdateOne {
	if v != nil {
		_u.SetEndTimeUnixNano(*v)
	}
	return _u
}

// AddEndTimeUnixNano adds value to the "end_time_unix_nano" field.
func (_u *SpanUpdateOne) AddEndTimeUnixNano(v int64) *SpanUpdateOne {
	_u.mutation.AddEndTimeUnixNano(v)
	return _u
}

// SetInput sets the "input" field.
func (_u *SpanUpdateOne) SetInput(v string) *SpanUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *SpanUpdateOne) SetNillableInput(v *string) *SpanUpdateOne {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *SpanUpdateOne) ClearInput() *SpanUpdateOne {
	_u.mutation.ClearInput()
	return _u
}

// SetOutput sets the "output" field.
func (_u *SpanUpdateOne) SetOutput(v []map[string]interface{}) *SpanUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// AppendOutput appends value to the "output" field.
func (_u *SpanUpdateOne) AppendOutput(v []map[string]interface{}) *SpanUpdateOne {
	_u.mutation.AppendOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *SpanUpdateOne) ClearOutput() *SpanUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetInputParams sets the "input_params" field.
func (_u *SpanUpdateOne) SetInputParams(v map[string]interface{}) *SpanUpdateOne {
	_u.mutation.SetInputParams(v)
	return _u
}

// ClearInputParams clears the value of the "input_params" field.
func (_u *SpanUpdateOne) ClearInputParams() *SpanUpdateOne {
	_u.mutation.ClearInputParams()
	return _u
}

// SetOutputParams sets the "output_params" field.
func (_u *SpanUpdateOne) SetOutputParams(v map[string]interface{}) *SpanUpdateOne {
	_u.mutation.SetOutputParams(v)
	return _u
}

// ClearOutputParams clears the value of the "output_params" field.
func (_u *SpanUpdateOne) ClearOutputParams() *SpanUpdateOne {
	_u.mutation.ClearOutputParams()
	return _u
}

// SetOperation sets the "operation" field.
func (_u *SpanUpdateOne) SetOperation(v string) *SpanUpdateOne {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *SpanUpdateOne) SetNillableOperation(v *string) *SpanUpdateOne {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// ClearOperation clears the value of the "operation" field.
func (_u *SpanUpdateOne) ClearOperation() *SpanUpdateOne {
	_u.mutation.ClearOperation()
	return _u
}

// SetMetadataAttributes sets the "metadata_attributes" field.
func (_u *SpanUpdateOne) SetMetadataAttributes(v map[string]interface{}) *SpanUpdateOne {
	_u.mutation.SetMetadataAttributes(v)
	return _u
}

// ClearMetadataAttributes clears the value of the "metadata_attributes" field.
func (_u *SpanUpdateOne) ClearMetadataAttributes() *SpanUpdateOne {
	_u.mutation.ClearMetadataAttributes()
	return _u
}

// SetFeedbackScore sets the "feedback_score" field.
func (_u *SpanUpdateOne) SetFeedbackScore(v map[string]interface{}) *SpanUpdateOne {
	_u.mutation.SetFeedbackScore(v)
	return _u
}

// ClearFeedbackScore clears the value of the "feedback_score" field.
func (_u *SpanUpdateOne) ClearFeedbackScore() *SpanUpdateOne {
	_u.mutation.ClearFeedbackScore()
	return _u
}

// Mutation returns the SpanMutation object of the builder.
func (_u *SpanUpdateOne) Mutation() *SpanMutation {
	return _u.mutation
}

// Where appends a list predicates to the SpanUpdate builder.
func (_u *SpanUpdateOne) Where(ps ...predicate.Span) *SpanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SpanUpdateOne) Select(field string, fields ...string) *SpanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Span entity.
func (_u *SpanUpdateOne) Save(ctx context.Context) (*Span, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpanUpdateOne) SaveX(ctx context.Context) *Span {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SpanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpanUpdateOne) check() error {
	if _u.mutation.TraceCleared() && len(_u.mutation.TraceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Span.trace"`)
	}
	return nil
}

func (_u *SpanUpdateOne) sqlSave(ctx context.Context) (_node *Span, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(span.Table, span.Columns, sqlgraph.NewFieldSpec(span.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Span.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, span.FieldID)
		for _, f := range fields {
			if !span.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != span.FieldID {
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
	if value, ok := _u.mutation.ParentSpanID(); ok {
		_spec.SetField(span.FieldParentSpanID, field.TypeString, value)
	}
	if _u.mutation.ParentSpanIDCleared() {
		_spec.ClearField(span.FieldParentSpanID, field.TypeString)
	}
	if value, ok := _u.mutation.PromptID(); ok {
		_spec.SetField(span.FieldPromptID, field.TypeString, value)
	}
	if _u.mutation.PromptIDCleared() {
		_spec.ClearField(span.FieldPromptID, field.TypeString)
	}
	if value, ok := _u.mutation.StartTimeUnixNano(); ok {
		_spec.SetField(span.FieldStartTimeUnixNano, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedStartTimeUnixNano(); ok {
		_spec.AddField(span.FieldStartTimeUnixNano, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.EndTimeUnixNano(); ok {
		_spec.SetField(span.FieldEndTimeUnixNano, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEndTimeUnixNano(); ok {
		_spec.AddField(span.FieldEndTimeUnixNano, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(span.FieldInput, field.TypeString, value)
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(span.FieldInput, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(span.FieldOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, span.FieldOutput, value)
		})
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(span.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.InputParams(); ok {
		_spec.SetField(span.FieldInputParams, field.TypeJSON, value)
	}
	if _u.mutation.InputParamsCleared() {
		_spec.ClearField(span.FieldInputParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputParams(); ok {
		_spec.SetField(span.FieldOutputParams, field.TypeJSON, value)
	}
	if _u.mutation.OutputParamsCleared() {
		_spec.ClearField(span.FieldOutputParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(span.FieldOperation, field.TypeString, value)
	}
	if _u.mutation.OperationCleared() {
		_spec.ClearField(span.FieldOperation, field.TypeString)
	}
	if value, ok := _u.mutation.MetadataAttributes(); ok {
		_spec.SetField(span.FieldMetadataAttributes, field.TypeJSON, value)
	}
	if _u.mutation.MetadataAttributesCleared() {
		_spec.ClearField(span.FieldMetadataAttributes, field.TypeJSON)
	}
	if value, ok := _u.mutation.FeedbackScore(); ok {
		_spec.SetField(span.FieldFeedbackScore, field.TypeJSON, value)
	}
	if _u.mutation.FeedbackScoreCleared() {
		_spec.ClearField(span.FieldFeedbackScore, field.TypeJSON)
	}
	_node = &Span{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{span.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
