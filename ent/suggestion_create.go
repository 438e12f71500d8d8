// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promptlens/promptlens/ent/project"
	"github.com/promptlens/promptlens/ent/suggestion"
)

// SuggestionCreate is the builder for creating a Suggestion entity.
type SuggestionCreate struct {
	config
	mutation *SuggestionMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *SuggestionCreate) SetProjectID(v string) *SuggestionCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetPromptSlug sets the "prompt_slug" field.
func (_c *SuggestionCreate) SetPromptSlug(v string) *SuggestionCreate {
	_c.mutation.SetPromptSlug(v)
	return _c
}

// SetNewPromptText sets the "new_prompt_text" field.
func (_c *SuggestionCreate) SetNewPromptText(v string) *SuggestionCreate {
	_c.mutation.SetNewPromptText(v)
	return _c
}

// SetNillableNewPromptText sets the "new_prompt_text" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableNewPromptText(v *string) *SuggestionCreate {
	if v != nil {
		_c.SetNewPromptText(*v)
	}
	return _c
}

// SetNewPromptVersion sets the "new_prompt_version" field.
func (_c *SuggestionCreate) SetNewPromptVersion(v int) *SuggestionCreate {
	_c.mutation.SetNewPromptVersion(v)
	return _c
}

// SetNillableNewPromptVersion sets the "new_prompt_version" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableNewPromptVersion(v *int) *SuggestionCreate {
	if v != nil {
		_c.SetNewPromptVersion(*v)
	}
	return _c
}

// SetScores sets the "scores" field.
func (_c *SuggestionCreate) SetScores(v map[string]interface{}) *SuggestionCreate {
	_c.mutation.SetScores(v)
	return _c
}

// SetRecommendations sets the "recommendations" field.
func (_c *SuggestionCreate) SetRecommendations(v map[string]interface{}) *SuggestionCreate {
	_c.mutation.SetRecommendations(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SuggestionCreate) SetStatus(v suggestion.Status) *SuggestionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableStatus(v *suggestion.Status) *SuggestionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetVote sets the "vote" field.
func (_c *SuggestionCreate) SetVote(v int) *SuggestionCreate {
	_c.mutation.SetVote(v)
	return _c
}

// SetNillableVote sets the "vote" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableVote(v *int) *SuggestionCreate {
	if v != nil {
		_c.SetVote(*v)
	}
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *SuggestionCreate) SetFeedback(v string) *SuggestionCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableFeedback(v *string) *SuggestionCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SuggestionCreate) SetCreatedAt(v time.Time) *SuggestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableCreatedAt(v *time.Time) *SuggestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SuggestionCreate) SetUpdatedAt(v time.Time) *SuggestionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableUpdatedAt(v *time.Time) *SuggestionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SuggestionCreate) SetID(v string) *SuggestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *SuggestionCreate) SetProject(v *Project) *SuggestionCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the SuggestionMutation object of the builder.
func (_c *SuggestionCreate) Mutation() *SuggestionMutation {
	return _c.mutation
}

// Save creates the Suggestion in the database.
func (_c *SuggestionCreate) Save(ctx context.Context) (*Suggestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SuggestionCreate) SaveX(ctx context.Context) *Suggestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SuggestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SuggestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SuggestionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := suggestion.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Vote(); !ok {
		v := suggestion.DefaultVote
		_c.mutation.SetVote(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := suggestion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := suggestion.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SuggestionCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Suggestion.project_id"`)}
	}
	if _, ok := _c.mutation.PromptSlug(); !ok {
		return &ValidationError{Name: "prompt_slug", err: errors.New(`ent: missing required field "Suggestion.prompt_slug"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Suggestion.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := suggestion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Suggestion.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Vote(); !ok {
		return &ValidationError{Name: "vote", err: errors.New(`ent: missing required field "Suggestion.vote"`)}
	}
	if v, ok := _c.mutation.Vote(); ok {
		if err := suggestion.VoteValidator(v); err != nil {
			return &ValidationError{Name: "vote", err: fmt.Errorf(`ent: validator failed for field "Suggestion.vote": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Suggestion.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Suggestion.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Suggestion.project"`)}
	}
	return nil
}

func (_c *SuggestionCreate) sqlSave(ctx context.Context) (*Suggestion, error) {
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
			return nil, fmt.Errorf("unexpected Suggestion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SuggestionCreate) createSpec() (*Suggestion, *sqlgraph.CreateSpec) {
	var (
		_node = &Suggestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(suggestion.Table, sqlgraph.NewFieldSpec(suggestion.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PromptSlug(); ok {
		_spec.SetField(suggestion.FieldPromptSlug, field.TypeString, value)
		_node.PromptSlug = value
	}
	if value, ok := _c.mutation.NewPromptText(); ok {
		_spec.SetField(suggestion.FieldNewPromptText, field.TypeString, value)
		_node.NewPromptText = &value
	}
	if value, ok := _c.mutation.NewPromptVersion(); ok {
		_spec.SetField(suggestion.FieldNewPromptVersion, field.TypeInt, value)
		_node.NewPromptVersion = &value
	}
	if value, ok := _c.mutation.Scores(); ok {
		_spec.SetField(suggestion.FieldScores, field.TypeJSON, value)
		_node.Scores = value
	}
	if value, ok := _c.mutation.Recommendations(); ok {
		_spec.SetField(suggestion.FieldRecommendations, field.TypeJSON, value)
		_node.Recommendations = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(suggestion.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Vote(); ok {
		_spec.SetField(suggestion.FieldVote, field.TypeInt, value)
		_node.Vote = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(suggestion.FieldFeedback, field.TypeString, value)
		_node.Feedback = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(suggestion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(suggestion.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   suggestion.ProjectTable,
			Columns: []string{suggestion.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SuggestionCreateBulk is the builder for creating many Suggestion entities in bulk.
type SuggestionCreateBulk struct {
	config
	err      error
	builders []*SuggestionCreate
}

// Save creates the Suggestion entities in the database.
func (_c *SuggestionCreateBulk) Save(ctx context.Context) ([]*Suggestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Suggestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SuggestionMutation)
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
func (_c *SuggestionCreateBulk) SaveX(ctx context.Context) []*Suggestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SuggestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SuggestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
