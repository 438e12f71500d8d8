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
	"github.com/promptlens/promptlens/ent/predicate"
	"github.com/promptlens/promptlens/ent/suggestion"
)

// SuggestionUpdate is the builder for updating Suggestion entities.
type SuggestionUpdate struct {
	config
	hooks    []Hook
	mutation *SuggestionMutation
}

// Where appends a list predicates to the SuggestionUpdate builder.
func (_u *SuggestionUpdate) Where(ps ...predicate.Suggestion) *SuggestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNewPromptText sets the "new_prompt_text" field.
func (_u *SuggestionUpdate) SetNewPromptText(v string) *SuggestionUpdate {
	_u.mutation.SetNewPromptText(v)
	return _u
}

// SetNillableNewPromptText sets the "new_prompt_text" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableNewPromptText(v *string) *SuggestionUpdate {
	if v != nil {
		_u.SetNewPromptText(*v)
	}
	return _u
}

// ClearNewPromptText clears the value of the "new_prompt_text" field.
func (_u *SuggestionUpdate) ClearNewPromptText() *SuggestionUpdate {
	_u.mutation.ClearNewPromptText()
	return _u
}

// SetNewPromptVersion sets the "new_prompt_version" field.
func (_u *SuggestionUpdate) SetNewPromptVersion(v int) *SuggestionUpdate {
	_u.mutation.ResetNewPromptVersion()
	_u.mutation.SetNewPromptVersion(v)
	return _u
}

// SetNillableNewPromptVersion sets the "new_prompt_version" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableNewPromptVersion(v *int) *SuggestionUpdate {
	if v != nil {
		_u.SetNewPromptVersion(*v)
	}
	return _u
}

// AddNewPromptVersion adds value to the "new_prompt_version" field.
func (_u *SuggestionUpdate) AddNewPromptVersion(v int) *SuggestionUpdate {
	_u.mutation.AddNewPromptVersion(v)
	return _u
}

// ClearNewPromptVersion clears the value of the "new_prompt_version" field.
func (_u *SuggestionUpdate) ClearNewPromptVersion() *SuggestionUpdate {
	_u.mutation.ClearNewPromptVersion()
	return _u
}

// SetScores sets the "scores" field.
func (_u *SuggestionUpdate) SetScores(v map[string]interface{}) *SuggestionUpdate {
	_u.mutation.SetScores(v)
	return _u
}

// ClearScores clears the value of the "scores" field.
func (_u *SuggestionUpdate) ClearScores() *SuggestionUpdate {
	_u.mutation.ClearScores()
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *SuggestionUpdate) SetRecommendations(v map[string]interface{}) *SuggestionUpdate {
	_u.mutation.SetRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *SuggestionUpdate) ClearRecommendations() *SuggestionUpdate {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SuggestionUpdate) SetStatus(v suggestion.Status) *SuggestionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableStatus(v *suggestion.Status) *SuggestionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVote sets the "vote" field.
func (_u *SuggestionUpdate) SetVote(v int) *SuggestionUpdate {
	_u.mutation.ResetVote()
	_u.mutation.SetVote(v)
	return _u
}

// SetNillableVote sets the "vote" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableVote(v *int) *SuggestionUpdate {
	if v != nil {
		_u.SetVote(*v)
	}
	return _u
}

// AddVote adds value to the "vote" field.
func (_u *SuggestionUpdate) AddVote(v int) *SuggestionUpdate {
	_u.mutation.AddVote(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *SuggestionUpdate) SetFeedback(v string) *SuggestionUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableFeedback(v *string) *SuggestionUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *SuggestionUpdate) ClearFeedback() *SuggestionUpdate {
	_u.mutation.ClearFeedback()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SuggestionUpdate) SetUpdatedAt(v time.Time) *SuggestionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SuggestionMutation object of the builder.
func (_u *SuggestionUpdate) Mutation() *SuggestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SuggestionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SuggestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SuggestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SuggestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SuggestionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := suggestion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SuggestionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := suggestion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Suggestion.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Vote(); ok {
		if err := suggestion.VoteValidator(v); err != nil {
			return &ValidationError{Name: "vote", err: fmt.Errorf(`ent: validator failed for field "Suggestion.vote": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Suggestion.project"`)
	}
	return nil
}

func (_u *SuggestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(suggestion.Table, suggestion.Columns, sqlgraph.NewFieldSpec(suggestion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NewPromptText(); ok {
		_spec.SetField(suggestion.FieldNewPromptText, field.TypeString, value)
	}
	if _u.mutation.NewPromptTextCleared() {
		_spec.ClearField(suggestion.FieldNewPromptText, field.TypeString)
	}
	if value, ok := _u.mutation.NewPromptVersion(); ok {
		_spec.SetField(suggestion.FieldNewPromptVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewPromptVersion(); ok {
		_spec.AddField(suggestion.FieldNewPromptVersion, field.TypeInt, value)
	}
	if _u.mutation.NewPromptVersionCleared() {
		_spec.ClearField(suggestion.FieldNewPromptVersion, field.TypeInt)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(suggestion.FieldScores, field.TypeJSON, value)
	}
	if _u.mutation.ScoresCleared() {
		_spec.ClearField(suggestion.FieldScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(suggestion.FieldRecommendations, field.TypeJSON, value)
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(suggestion.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(suggestion.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Vote(); ok {
		_spec.SetField(suggestion.FieldVote, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVote(); ok {
		_spec.AddField(suggestion.FieldVote, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(suggestion.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(suggestion.FieldFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(suggestion.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{suggestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SuggestionUpdateOne is the builder for updating a single Suggestion entity.
type SuggestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SuggestionMutation
}

// SetNewPromptText sets the "new_prompt_text" field.
func (_u *SuggestionUpdateOne) SetNewPromptText(v string) *SuggestionUpdateOne {
	_u.mutation.SetNewPromptText(v)
	return _u
}

// SetNillableNewPromptText sets the "new_prompt_text" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableNewPromptText(v *string) *SuggestionUpdateOne {
	if v != nil {
		_u.SetNewPromptText(*v)
	}
	return _u
}

// ClearNewPromptText clears the value of the "new_prompt_text" field.
func (_u *SuggestionUpdateOne) ClearNewPromptText() *SuggestionUpdateOne {
	_u.mutation.ClearNewPromptText()
	return _u
}

// SetNewPromptVersion sets the "new_prompt_version" field.
func (_u *SuggestionUpdateOne) SetNewPromptVersion(v int) *SuggestionUpdateOne {
	_u.mutation.ResetNewPromptVersion()
	_u.mutation.SetNewPromptVersion(v)
	return _u
}

// SetNillableNewPromptVersion sets the "new_prompt_version" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableNewPromptVersion(v *int) *SuggestionUpdateOne {
	if v != nil {
		_u.SetNewPromptVersion(*v)
	}
	return _u
}

// AddNewPromptVersion adds value to the "new_prompt_version" field.
func (_u *SuggestionUpdateOne) AddNewPromptVersion(v int) *SuggestionUpdateOne {
	_u.mutation.AddNewPromptVersion(v)
	return _u
}

// ClearNewPromptVersion clears the value of the "new_prompt_version" field.
func (_u *SuggestionUpdateOne) ClearNewPromptVersion() *SuggestionUpdateOne {
	_u.mutation.ClearNewPromptVersion()
	return _u
}

// SetScores sets the "scores" field.
func (_u *SuggestionUpdateOne) SetScores(v map[string]interface{}) *SuggestionUpdateOne {
	_u.mutation.SetScores(v)
	return _u
}

// ClearScores clears the value of the "scores" field.
func (_u *SuggestionUpdateOne) ClearScores() *SuggestionUpdateOne {
	_u.mutation.ClearScores()
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *SuggestionUpdateOne) SetRecommendations(v map[string]interface{}) *SuggestionUpdateOne {
	_u.mutation.SetRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *SuggestionUpdateOne) ClearRecommendations() *SuggestionUpdateOne {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SuggestionUpdateOne) SetStatus(v suggestion.Status) *SuggestionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableStatus(v *suggestion.Status) *SuggestionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVote sets the "vote" field.
func (_u *SuggestionUpdateOne) SetVote(v int) *SuggestionUpdateOne {
	_u.mutation.ResetVote()
	_u.mutation.SetVote(v)
	return _u
}

// SetNillableVote sets the "vote" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableVote(v *int) *SuggestionUpdateOne {
	if v != nil {
		_u.SetVote(*v)
	}
	return _u
}

// AddVote adds value to the "vote" field.
func (_u *SuggestionUpdateOne) AddVote(v int) *SuggestionUpdateOne {
	_u.mutation.AddVote(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *SuggestionUpdateOne) SetFeedback(v string) *SuggestionUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableFeedback(v *string) *SuggestionUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *SuggestionUpdateOne) ClearFeedback() *SuggestionUpdateOne {
	_u.mutation.ClearFeedback()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SuggestionUpdateOne) SetUpdatedAt(v time.Time) *SuggestionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SuggestionMutation object of the builder.
func (_u *SuggestionUpdateOne) Mutation() *SuggestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SuggestionUpdate builder.
func (_u *SuggestionUpdateOne) Where(ps ...predicate.Suggestion) *SuggestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SuggestionUpdateOne) Select(field string, fields ...string) *SuggestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Suggestion entity.
func (_u *SuggestionUpdateOne) Save(ctx context.Context) (*Suggestion, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SuggestionUpdateOne) SaveX(ctx context.Context) *Suggestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SuggestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SuggestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SuggestionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := suggestion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SuggestionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := suggestion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Suggestion.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Vote(); ok {
		if err := suggestion.VoteValidator(v); err != nil {
			return &ValidationError{Name: "vote", err: fmt.Errorf(`ent: validator failed for field "Suggestion.vote": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Suggestion.project"`)
	}
	return nil
}

func (_u *SuggestionUpdateOne) sqlSave(ctx context.Context) (_node *Suggestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(suggestion.Table, suggestion.Columns, sqlgraph.NewFieldSpec(suggestion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Suggestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, suggestion.FieldID)
		for _, f := range fields {
			if !suggestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != suggestion.FieldID {
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
	if value, ok := _u.mutation.NewPromptText(); ok {
		_spec.SetField(suggestion.FieldNewPromptText, field.TypeString, value)
	}
	if _u.mutation.NewPromptTextCleared() {
		_spec.ClearField(suggestion.FieldNewPromptText, field.TypeString)
	}
	if value, ok := _u.mutation.NewPromptVersion(); ok {
		_spec.SetField(suggestion.FieldNewPromptVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewPromptVersion(); ok {
		_spec.AddField(suggestion.FieldNewPromptVersion, field.TypeInt, value)
	}
	if _u.mutation.NewPromptVersionCleared() {
		_spec.ClearField(suggestion.FieldNewPromptVersion, field.TypeInt)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(suggestion.FieldScores, field.TypeJSON, value)
	}
	if _u.mutation.ScoresCleared() {
		_spec.ClearField(suggestion.FieldScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(suggestion.FieldRecommendations, field.TypeJSON, value)
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(suggestion.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(suggestion.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Vote(); ok {
		_spec.SetField(suggestion.FieldVote, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVote(); ok {
		_spec.AddField(suggestion.FieldVote, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(suggestion.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(suggestion.FieldFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(suggestion.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Suggestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{suggestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
