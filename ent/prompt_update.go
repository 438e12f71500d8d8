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
	"github.com/promptlens/promptlens/ent/predicate"
	"github.com/promptlens/promptlens/ent/prompt"
)

// PromptUpdate is the builder for updating Prompt entities.
type PromptUpdate struct {
	config
	hooks    []Hook
	mutation *PromptMutation
}

// Where appends a list predicates to the PromptUpdate builder.
func (_u *PromptUpdate) Where(ps ...predicate.Prompt) *PromptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContent sets the "content" field.
func (_u *PromptUpdate) SetContent(v string) *PromptUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableContent(v *string) *PromptUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *PromptUpdate) SetContentHash(v string) *PromptUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableContentHash(v *string) *PromptUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *PromptUpdate) SetDisplayName(v string) *PromptUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableDisplayName(v *string) *PromptUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *PromptUpdate) ClearDisplayName() *PromptUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetTags sets the "tags" field.
func (_u *PromptUpdate) SetTags(v []string) *PromptUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *PromptUpdate) AppendTags(v []string) *PromptUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *PromptUpdate) ClearTags() *PromptUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetEvaluationCriteria sets the "evaluation_criteria" field.
func (_u *PromptUpdate) SetEvaluationCriteria(v map[string]interface{}) *PromptUpdate {
	_u.mutation.SetEvaluationCriteria(v)
	return _u
}

// ClearEvaluationCriteria clears the value of the "evaluation_criteria" field.
func (_u *PromptUpdate) ClearEvaluationCriteria() *PromptUpdate {
	_u.mutation.ClearEvaluationCriteria()
	return _u
}

// SetAgentDescription sets the "agent_description" field.
func (_u *PromptUpdate) SetAgentDescription(v map[string]interface{}) *PromptUpdate {
	_u.mutation.SetAgentDescription(v)
	return _u
}

// ClearAgentDescription clears the value of the "agent_description" field.
func (_u *PromptUpdate) ClearAgentDescription() *PromptUpdate {
	_u.mutation.ClearAgentDescription()
	return _u
}

// SetImprovementMetadata sets the "improvement_metadata" field.
func (_u *PromptUpdate) SetImprovementMetadata(v map[string]interface{}) *PromptUpdate {
	_u.mutation.SetImprovementMetadata(v)
	return _u
}

// ClearImprovementMetadata clears the value of the "improvement_metadata" field.
func (_u *PromptUpdate) ClearImprovementMetadata() *PromptUpdate {
	_u.mutation.ClearImprovementMetadata()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PromptUpdate) SetIsActive(v bool) *PromptUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableIsActive(v *bool) *PromptUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PromptUpdate) SetUpdatedAt(v time.Time) *PromptUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PromptMutation object of the builder.
func (_u *PromptUpdate) Mutation() *PromptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PromptUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PromptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PromptUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prompt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PromptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(prompt.Table, prompt.Columns, sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(prompt.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(prompt.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(prompt.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(prompt.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(prompt.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, prompt.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(prompt.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.EvaluationCriteria(); ok {
		_spec.SetField(prompt.FieldEvaluationCriteria, field.TypeJSON, value)
	}
	if _u.mutation.EvaluationCriteriaCleared() {
		_spec.ClearField(prompt.FieldEvaluationCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.AgentDescription(); ok {
		_spec.SetField(prompt.FieldAgentDescription, field.TypeJSON, value)
	}
	if _u.mutation.AgentDescriptionCleared() {
		_spec.ClearField(prompt.FieldAgentDescription, field.TypeJSON)
	}
	if value, ok := _u.mutation.ImprovementMetadata(); ok {
		_spec.SetField(prompt.FieldImprovementMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ImprovementMetadataCleared() {
		_spec.ClearField(prompt.FieldImprovementMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(prompt.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prompt.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prompt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PromptUpdateOne is the builder for updating a single Prompt entity.
type PromptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PromptMutation
}

// SetContent sets the "content" field.
func (_u *PromptUpdateOne) SetContent(v string) *PromptUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableContent(v *string) *PromptUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *PromptUpdateOne) SetContentHash(v string) *PromptUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableContentHash(v *string) *PromptUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *PromptUpdateOne) SetDisplayName(v string) *PromptUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableDisplayName(v *string) *PromptUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *PromptUpdateOne) ClearDisplayName() *PromptUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetTags sets the "tags" field.
func (_u *PromptUpdateOne) SetTags(v []string) *PromptUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *PromptUpdateOne) AppendTags(v []string) *PromptUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *PromptUpdateOne) ClearTags() *PromptUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetEvaluationCriteria sets the "evaluation_criteria" field.
func (_u *PromptUpdateOne) SetEvaluationCriteria(v map[string]interface{}) *PromptUpdateOne {
	_u.mutation.SetEvaluationCriteria(v)
	return _u
}

// ClearEvaluationCriteria clears the value of the "evaluation_criteria" field.
func (_u *PromptUpdateOne) ClearEvaluationCriteria() *PromptUpdateOne {
	_u.mutation.ClearEvaluationCriteria()
	return _u
}

// SetAgentDescription sets the "agent_description" field.
func (_u *PromptUpdateOne) SetAgentDescription(v map[string]interface{}) *PromptUpdateOne {
	_u.mutation.SetAgentDescription(v)
	return _u
}

// ClearAgentDescription clears the value of the "agent_description" field.
func (_u *PromptUpdateOne) ClearAgentDescription() *PromptUpdateOne {
	_u.mutation.ClearAgentDescription()
	return _u
}

// SetImprovementMetadata sets the "improvement_metadata" field.
func (_u *PromptUpdateOne) SetImprovementMetadata(v map[string]interface{}) *PromptUpdateOne {
	_u.mutation.SetImprovementMetadata(v)
	return _u
}

// ClearImprovementMetadata clears the value of the "improvement_metadata" field.
func (_u *PromptUpdateOne) ClearImprovementMetadata() *PromptUpdateOne {
	_u.mutation.ClearImprovementMetadata()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PromptUpdateOne) SetIsActive(v bool) *PromptUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableIsActive(v *bool) *PromptUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PromptUpdateOne) SetUpdatedAt(v time.Time) *PromptUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PromptMutation object of the builder.
func (_u *PromptUpdateOne) Mutation() *PromptMutation {
	return _u.mutation
}

// Where appends a list predicates to the PromptUpdate builder.
func (_u *PromptUpdateOne) Where(ps ...predicate.Prompt) *PromptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PromptUpdateOne) Select(field string, fields ...string) *PromptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Prompt entity.
func (_u *PromptUpdateOne) Save(ctx context.Context) (*Prompt, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptUpdateOne) SaveX(ctx context.Context) *Prompt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PromptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PromptUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prompt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PromptUpdateOne) sqlSave(ctx context.Context) (_node *Prompt, err error) {
	_spec := sqlgraph.NewUpdateSpec(prompt.Table, prompt.Columns, sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Prompt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prompt.FieldID)
		for _, f := range fields {
			if !prompt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != prompt.FieldID {
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
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(prompt.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(prompt.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(prompt.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(prompt.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(prompt.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, prompt.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(prompt.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.EvaluationCriteria(); ok {
		_spec.SetField(prompt.FieldEvaluationCriteria, field.TypeJSON, value)
	}
	if _u.mutation.EvaluationCriteriaCleared() {
		_spec.ClearField(prompt.FieldEvaluationCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.AgentDescription(); ok {
		_spec.SetField(prompt.FieldAgentDescription, field.TypeJSON, value)
	}
	if _u.mutation.AgentDescriptionCleared() {
		_spec.ClearField(prompt.FieldAgentDescription, field.TypeJSON)
	}
	if value, ok := _u.mutation.ImprovementMetadata(); ok {
		_spec.SetField(prompt.FieldImprovementMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ImprovementMetadataCleared() {
		_spec.ClearField(prompt.FieldImprovementMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(prompt.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prompt.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Prompt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prompt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
