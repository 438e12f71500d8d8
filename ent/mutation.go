// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/promptlens/promptlens/ent/backtestrun"
	"github.com/promptlens/promptlens/ent/job"
	"github.com/promptlens/promptlens/ent/predicate"
	"github.com/promptlens/promptlens/ent/project"
	"github.com/promptlens/promptlens/ent/prompt"
	"github.com/promptlens/promptlens/ent/span"
	"github.com/promptlens/promptlens/ent/suggestion"
	"github.com/promptlens/promptlens/ent/trace"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBacktestRun = "BacktestRun"
	TypeJob         = "Job"
	TypeProject     = "Project"
	TypePrompt      = "Prompt"
	TypeSpan        = "Span"
	TypeSuggestion  = "Suggestion"
	TypeTrace       = "Trace"
)

// BacktestRunMutation represents an operation that mutates the BacktestRun nodes in the graph.
type BacktestRunMutation struct {
	config
	op            Op
	typ           string
	id            *string
	prompt_id     *string
	models        *[]string
	appendmodels  []string
	status        *backtestrun.Status
	completed_at  *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*BacktestRun, error)
	predicates    []predicate.BacktestRun
}

var _ ent.Mutation = (*BacktestRunMutation)(nil)

// backtestrunOption allows management of the mutation configuration using functional options.
type backtestrunOption func(*BacktestRunMutation)

// newBacktestRunMutation creates new mutation for the BacktestRun entity.
func newBacktestRunMutation(c config, op Op, opts ...backtestrunOption) *BacktestRunMutation {
	m := &BacktestRunMutation{
		config:        c,
		op:            op,
		typ:           TypeBacktestRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBacktestRunID sets the ID field of the mutation.
func withBacktestRunID(id string) backtestrunOption {
	return func(m *BacktestRunMutation) {
		var (
			err   error
			once  sync.Once
			value *BacktestRun
		)
		m.oldValue = func(ctx context.Context) (*BacktestRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BacktestRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBacktestRun sets the old BacktestRun of the mutation.
func withBacktestRun(node *BacktestRun) backtestrunOption {
	return func(m *BacktestRunMutation) {
		m.oldValue = func(context.Context) (*BacktestRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BacktestRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BacktestRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BacktestRun entities.
func (m *BacktestRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BacktestRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BacktestRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BacktestRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPromptID sets the "prompt_id" field.
func (m *BacktestRunMutation) SetPromptID(s string) {
	m.prompt_id = &s
}

// PromptID returns the value of the "prompt_id" field in the mutation.
func (m *BacktestRunMutation) PromptID() (r string, exists bool) {
	v := m.prompt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptID returns the old "prompt_id" field's value of the BacktestRun entity.
// If the BacktestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BacktestRunMutation) OldPromptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptID: %w", err)
	}
	return oldValue.PromptID, nil
}

// ResetPromptID resets all changes to the "prompt_id" field.
func (m *BacktestRunMutation) ResetPromptID() {
	m.prompt_id = nil
}

// SetModels sets the "models" field.
func (m *BacktestRunMutation) SetModels(s []string) {
	m.models = &s
	m.appendmodels = nil
}

// Models returns the value of the "models" field in the mutation.
func (m *BacktestRunMutation) Models() (r []string, exists bool) {
	v := m.models
	if v == nil {
		return
	}
	return *v, true
}

// OldModels returns the old "models" field's value of the BacktestRun entity.
// If the BacktestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BacktestRunMutation) OldModels(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModels: %w", err)
	}
	return oldValue.Models, nil
}

// AppendModels adds s to the "models" field.
func (m *BacktestRunMutation) AppendModels(s []string) {
	m.appendmodels = append(m.appendmodels, s...)
}

// AppendedModels returns the list of values that were appended to the "models" field in this mutation.
func (m *BacktestRunMutation) AppendedModels() ([]string, bool) {
	if len(m.appendmodels) == 0 {
		return nil, false
	}
	return m.appendmodels, true
}

// ResetModels resets all changes to the "models" field.
func (m *BacktestRunMutation) ResetModels() {
	m.models = nil
	m.appendmodels = nil
}

// SetStatus sets the "status" field.
func (m *BacktestRunMutation) SetStatus(b backtestrun.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BacktestRunMutation) Status() (r backtestrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the BacktestRun entity.
// If the BacktestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BacktestRunMutation) OldStatus(ctx context.Context) (v backtestrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BacktestRunMutation) ResetStatus() {
	m.status = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *BacktestRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *BacktestRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the BacktestRun entity.
// If the BacktestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BacktestRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *BacktestRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[backtestrun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *BacktestRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[backtestrun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *BacktestRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, backtestrun.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *BacktestRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BacktestRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BacktestRun entity.
// If the BacktestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BacktestRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BacktestRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the BacktestRunMutation builder.
func (m *BacktestRunMutation) Where(ps ...predicate.BacktestRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BacktestRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BacktestRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BacktestRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BacktestRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BacktestRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BacktestRun).
func (m *BacktestRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BacktestRunMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.prompt_id != nil {
		fields = append(fields, backtestrun.FieldPromptID)
	}
	if m.models != nil {
		fields = append(fields, backtestrun.FieldModels)
	}
	if m.status != nil {
		fields = append(fields, backtestrun.FieldStatus)
	}
	if m.completed_at != nil {
		fields = append(fields, backtestrun.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, backtestrun.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BacktestRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case backtestrun.FieldPromptID:
		return m.PromptID()
	case backtestrun.FieldModels:
		return m.Models()
	case backtestrun.FieldStatus:
		return m.Status()
	case backtestrun.FieldCompletedAt:
		return m.CompletedAt()
	case backtestrun.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BacktestRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case backtestrun.FieldPromptID:
		return m.OldPromptID(ctx)
	case backtestrun.FieldModels:
		return m.OldModels(ctx)
	case backtestrun.FieldStatus:
		return m.OldStatus(ctx)
	case backtestrun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case backtestrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BacktestRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BacktestRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case backtestrun.FieldPromptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptID(v)
		return nil
	case backtestrun.FieldModels:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModels(v)
		return nil
	case backtestrun.FieldStatus:
		v, ok := value.(backtestrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case backtestrun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case backtestrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BacktestRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BacktestRunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BacktestRunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BacktestRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BacktestRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BacktestRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(backtestrun.FieldCompletedAt) {
		fields = append(fields, backtestrun.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BacktestRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BacktestRunMutation) ClearField(name string) error {
	switch name {
	case backtestrun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown BacktestRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BacktestRunMutation) ResetField(name string) error {
	switch name {
	case backtestrun.FieldPromptID:
		m.ResetPromptID()
		return nil
	case backtestrun.FieldModels:
		m.ResetModels()
		return nil
	case backtestrun.FieldStatus:
		m.ResetStatus()
		return nil
	case backtestrun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case backtestrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BacktestRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BacktestRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BacktestRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BacktestRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BacktestRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BacktestRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BacktestRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BacktestRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BacktestRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BacktestRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BacktestRun edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	_type                *job.Type
	prompt_slug          *string
	status               *job.Status
	task_id              *string
	triggered_by_user_id *string
	result               *map[string]interface{}
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	project              *string
	clearedproject       bool
	done                 bool
	oldValue             func(context.Context) (*Job, error)
	predicates           []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetType sets the "type" field.
func (m *JobMutation) SetType(j job.Type) {
	m._type = &j
}

// GetType returns the value of the "type" field in the mutation.
func (m *JobMutation) GetType() (r job.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldType(ctx context.Context) (v job.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *JobMutation) ResetType() {
	m._type = nil
}

// SetProjectID sets the "project_id" field.
func (m *JobMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *JobMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *JobMutation) ResetProjectID() {
	m.project = nil
}

// SetPromptSlug sets the "prompt_slug" field.
func (m *JobMutation) SetPromptSlug(s string) {
	m.prompt_slug = &s
}

// PromptSlug returns the value of the "prompt_slug" field in the mutation.
func (m *JobMutation) PromptSlug() (r string, exists bool) {
	v := m.prompt_slug
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptSlug returns the old "prompt_slug" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPromptSlug(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptSlug: %w", err)
	}
	return oldValue.PromptSlug, nil
}

// ClearPromptSlug clears the value of the "prompt_slug" field.
func (m *JobMutation) ClearPromptSlug() {
	m.prompt_slug = nil
	m.clearedFields[job.FieldPromptSlug] = struct{}{}
}

// PromptSlugCleared returns if the "prompt_slug" field was cleared in this mutation.
func (m *JobMutation) PromptSlugCleared() bool {
	_, ok := m.clearedFields[job.FieldPromptSlug]
	return ok
}

// ResetPromptSlug resets all changes to the "prompt_slug" field.
func (m *JobMutation) ResetPromptSlug() {
	m.prompt_slug = nil
	delete(m.clearedFields, job.FieldPromptSlug)
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetTaskID sets the "task_id" field.
func (m *JobMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *JobMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *JobMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[job.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *JobMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[job.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *JobMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, job.FieldTaskID)
}

// SetTriggeredByUserID sets the "triggered_by_user_id" field.
func (m *JobMutation) SetTriggeredByUserID(s string) {
	m.triggered_by_user_id = &s
}

// TriggeredByUserID returns the value of the "triggered_by_user_id" field in the mutation.
func (m *JobMutation) TriggeredByUserID() (r string, exists bool) {
	v := m.triggered_by_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggeredByUserID returns the old "triggered_by_user_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTriggeredByUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggeredByUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggeredByUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggeredByUserID: %w", err)
	}
	return oldValue.TriggeredByUserID, nil
}

// ClearTriggeredByUserID clears the value of the "triggered_by_user_id" field.
func (m *JobMutation) ClearTriggeredByUserID() {
	m.triggered_by_user_id = nil
	m.clearedFields[job.FieldTriggeredByUserID] = struct{}{}
}

// TriggeredByUserIDCleared returns if the "triggered_by_user_id" field was cleared in this mutation.
func (m *JobMutation) TriggeredByUserIDCleared() bool {
	_, ok := m.clearedFields[job.FieldTriggeredByUserID]
	return ok
}

// ResetTriggeredByUserID resets all changes to the "triggered_by_user_id" field.
func (m *JobMutation) ResetTriggeredByUserID() {
	m.triggered_by_user_id = nil
	delete(m.clearedFields, job.FieldTriggeredByUserID)
}

// SetResult sets the "result" field.
func (m *JobMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *JobMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *JobMutation) ClearResult() {
	m.result = nil
	m.clearedFields[job.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *JobMutation) ResultCleared() bool {
	_, ok := m.clearedFields[job.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *JobMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, job.FieldResult)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *JobMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[job.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *JobMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *JobMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *JobMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m._type != nil {
		fields = append(fields, job.FieldType)
	}
	if m.project != nil {
		fields = append(fields, job.FieldProjectID)
	}
	if m.prompt_slug != nil {
		fields = append(fields, job.FieldPromptSlug)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.task_id != nil {
		fields = append(fields, job.FieldTaskID)
	}
	if m.triggered_by_user_id != nil {
		fields = append(fields, job.FieldTriggeredByUserID)
	}
	if m.result != nil {
		fields = append(fields, job.FieldResult)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldType:
		return m.GetType()
	case job.FieldProjectID:
		return m.ProjectID()
	case job.FieldPromptSlug:
		return m.PromptSlug()
	case job.FieldStatus:
		return m.Status()
	case job.FieldTaskID:
		return m.TaskID()
	case job.FieldTriggeredByUserID:
		return m.TriggeredByUserID()
	case job.FieldResult:
		return m.Result()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldType:
		return m.OldType(ctx)
	case job.FieldProjectID:
		return m.OldProjectID(ctx)
	case job.FieldPromptSlug:
		return m.OldPromptSlug(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldTaskID:
		return m.OldTaskID(ctx)
	case job.FieldTriggeredByUserID:
		return m.OldTriggeredByUserID(ctx)
	case job.FieldResult:
		return m.OldResult(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldType:
		v, ok := value.(job.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case job.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case job.FieldPromptSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptSlug(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case job.FieldTriggeredByUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggeredByUserID(v)
		return nil
	case job.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldPromptSlug) {
		fields = append(fields, job.FieldPromptSlug)
	}
	if m.FieldCleared(job.FieldTaskID) {
		fields = append(fields, job.FieldTaskID)
	}
	if m.FieldCleared(job.FieldTriggeredByUserID) {
		fields = append(fields, job.FieldTriggeredByUserID)
	}
	if m.FieldCleared(job.FieldResult) {
		fields = append(fields, job.FieldResult)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldPromptSlug:
		m.ClearPromptSlug()
		return nil
	case job.FieldTaskID:
		m.ClearTaskID()
		return nil
	case job.FieldTriggeredByUserID:
		m.ClearTriggeredByUserID()
		return nil
	case job.FieldResult:
		m.ClearResult()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldType:
		m.ResetType()
		return nil
	case job.FieldProjectID:
		m.ResetProjectID()
		return nil
	case job.FieldPromptSlug:
		m.ResetPromptSlug()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldTaskID:
		m.ResetTaskID()
		return nil
	case job.FieldTriggeredByUserID:
		m.ResetTriggeredByUserID()
		return nil
	case job.FieldResult:
		m.ResetResult()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, job.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, job.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	case job.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	name               *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	traces             map[string]struct{}
	removedtraces      map[string]struct{}
	clearedtraces      bool
	prompts            map[string]struct{}
	removedprompts     map[string]struct{}
	clearedprompts     bool
	jobs               map[string]struct{}
	removedjobs        map[string]struct{}
	clearedjobs        bool
	suggestions        map[string]struct{}
	removedsuggestions map[string]struct{}
	clearedsuggestions bool
	done               bool
	oldValue           func(context.Context) (*Project, error)
	predicates         []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddTraceIDs adds the "traces" edge to the Trace entity by ids.
func (m *ProjectMutation) AddTraceIDs(ids ...string) {
	if m.traces == nil {
		m.traces = make(map[string]struct{})
	}
	for i := range ids {
		m.traces[ids[i]] = struct{}{}
	}
}

// ClearTraces clears the "traces" edge to the Trace entity.
func (m *ProjectMutation) ClearTraces() {
	m.clearedtraces = true
}

// TracesCleared reports if the "traces" edge to the Trace entity was cleared.
func (m *ProjectMutation) TracesCleared() bool {
	return m.clearedtraces
}

// RemoveTraceIDs removes the "traces" edge to the Trace entity by IDs.
func (m *ProjectMutation) RemoveTraceIDs(ids ...string) {
	if m.removedtraces == nil {
		m.removedtraces = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.traces, ids[i])
		m.removedtraces[ids[i]] = struct{}{}
	}
}

// RemovedTraces returns the removed IDs of the "traces" edge to the Trace entity.
func (m *ProjectMutation) RemovedTracesIDs() (ids []string) {
	for id := range m.removedtraces {
		ids = append(ids, id)
	}
	return
}

// TracesIDs returns the "traces" edge IDs in the mutation.
func (m *ProjectMutation) TracesIDs() (ids []string) {
	for id := range m.traces {
		ids = append(ids, id)
	}
	return
}

// ResetTraces resets all changes to the "traces" edge.
func (m *ProjectMutation) ResetTraces() {
	m.traces = nil
	m.clearedtraces = false
	m.removedtraces = nil
}

// AddPromptIDs adds the "prompts" edge to the Prompt entity by ids.
func (m *ProjectMutation) AddPromptIDs(ids ...string) {
	if m.prompts == nil {
		m.prompts = make(map[string]struct{})
	}
	for i := range ids {
		m.prompts[ids[i]] = struct{}{}
	}
}

// ClearPrompts clears the "prompts" edge to the Prompt entity.
func (m *ProjectMutation) ClearPrompts() {
	m.clearedprompts = true
}

// PromptsCleared reports if the "prompts" edge to the Prompt entity was cleared.
func (m *ProjectMutation) PromptsCleared() bool {
	return m.clearedprompts
}

// RemovePromptIDs removes the "prompts" edge to the Prompt entity by IDs.
func (m *ProjectMutation) RemovePromptIDs(ids ...string) {
	if m.removedprompts == nil {
		m.removedprompts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.prompts, ids[i])
		m.removedprompts[ids[i]] = struct{}{}
	}
}

// RemovedPrompts returns the removed IDs of the "prompts" edge to the Prompt entity.
func (m *ProjectMutation) RemovedPromptsIDs() (ids []string) {
	for id := range m.removedprompts {
		ids = append(ids, id)
	}
	return
}

// PromptsIDs returns the "prompts" edge IDs in the mutation.
func (m *ProjectMutation) PromptsIDs() (ids []string) {
	for id := range m.prompts {
		ids = append(ids, id)
	}
	return
}

// ResetPrompts resets all changes to the "prompts" edge.
func (m *ProjectMutation) ResetPrompts() {
	m.prompts = nil
	m.clearedprompts = false
	m.removedprompts = nil
}

// AddJobIDs adds the "jobs" edge to the Job entity by ids.
func (m *ProjectMutation) AddJobIDs(ids ...string) {
	if m.jobs == nil {
		m.jobs = make(map[string]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the Job entity.
func (m *ProjectMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the Job entity was cleared.
func (m *ProjectMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the Job entity by IDs.
func (m *ProjectMutation) RemoveJobIDs(ids ...string) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the Job entity.
func (m *ProjectMutation) RemovedJobsIDs() (ids []string) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *ProjectMutation) JobsIDs() (ids []string) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *ProjectMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// AddSuggestionIDs adds the "suggestions" edge to the Suggestion entity by ids.
func (m *ProjectMutation) AddSuggestionIDs(ids ...string) {
	if m.suggestions == nil {
		m.suggestions = make(map[string]struct{})
	}
	for i := range ids {
		m.suggestions[ids[i]] = struct{}{}
	}
}

// ClearSuggestions clears the "suggestions" edge to the Suggestion entity.
func (m *ProjectMutation) ClearSuggestions() {
	m.clearedsuggestions = true
}

// SuggestionsCleared reports if the "suggestions" edge to the Suggestion entity was cleared.
func (m *ProjectMutation) SuggestionsCleared() bool {
	return m.clearedsuggestions
}

// RemoveSuggestionIDs removes the "suggestions" edge to the Suggestion entity by IDs.
func (m *ProjectMutation) RemoveSuggestionIDs(ids ...string) {
	if m.removedsuggestions == nil {
		m.removedsuggestions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.suggestions, ids[i])
		m.removedsuggestions[ids[i]] = struct{}{}
	}
}

// RemovedSuggestions returns the removed IDs of the "suggestions" edge to the Suggestion entity.
func (m *ProjectMutation) RemovedSuggestionsIDs() (ids []string) {
	for id := range m.removedsuggestions {
		ids = append(ids, id)
	}
	return
}

// SuggestionsIDs returns the "suggestions" edge IDs in the mutation.
func (m *ProjectMutation) SuggestionsIDs() (ids []string) {
	for id := range m.suggestions {
		ids = append(ids, id)
	}
	return
}

// ResetSuggestions resets all changes to the "suggestions" edge.
func (m *ProjectMutation) ResetSuggestions() {
	m.suggestions = nil
	m.clearedsuggestions = false
	m.removedsuggestions = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.traces != nil {
		edges = append(edges, project.EdgeTraces)
	}
	if m.prompts != nil {
		edges = append(edges, project.EdgePrompts)
	}
	if m.jobs != nil {
		edges = append(edges, project.EdgeJobs)
	}
	if m.suggestions != nil {
		edges = append(edges, project.EdgeSuggestions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeTraces:
		ids := make([]ent.Value, 0, len(m.traces))
		for id := range m.traces {
			ids = append(ids, id)
		}
		return ids
	case project.EdgePrompts:
		ids := make([]ent.Value, 0, len(m.prompts))
		for id := range m.prompts {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeSuggestions:
		ids := make([]ent.Value, 0, len(m.suggestions))
		for id := range m.suggestions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedtraces != nil {
		edges = append(edges, project.EdgeTraces)
	}
	if m.removedprompts != nil {
		edges = append(edges, project.EdgePrompts)
	}
	if m.removedjobs != nil {
		edges = append(edges, project.EdgeJobs)
	}
	if m.removedsuggestions != nil {
		edges = append(edges, project.EdgeSuggestions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeTraces:
		ids := make([]ent.Value, 0, len(m.removedtraces))
		for id := range m.removedtraces {
			ids = append(ids, id)
		}
		return ids
	case project.EdgePrompts:
		ids := make([]ent.Value, 0, len(m.removedprompts))
		for id := range m.removedprompts {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeSuggestions:
		ids := make([]ent.Value, 0, len(m.removedsuggestions))
		for id := range m.removedsuggestions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedtraces {
		edges = append(edges, project.EdgeTraces)
	}
	if m.clearedprompts {
		edges = append(edges, project.EdgePrompts)
	}
	if m.clearedjobs {
		edges = append(edges, project.EdgeJobs)
	}
	if m.clearedsuggestions {
		edges = append(edges, project.EdgeSuggestions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeTraces:
		return m.clearedtraces
	case project.EdgePrompts:
		return m.clearedprompts
	case project.EdgeJobs:
		return m.clearedjobs
	case project.EdgeSuggestions:
		return m.clearedsuggestions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeTraces:
		m.ResetTraces()
		return nil
	case project.EdgePrompts:
		m.ResetPrompts()
		return nil
	case project.EdgeJobs:
		m.ResetJobs()
		return nil
	case project.EdgeSuggestions:
		m.ResetSuggestions()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// PromptMutation represents an operation that mutates the Prompt nodes in the graph.
type PromptMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	project_id           *string
	slug                 *string
	version              *int
	addversion           *int
	content              *string
	content_hash         *string
	display_name         *string
	tags                 *[]string
	appendtags           []string
	evaluation_criteria  *map[string]interface{}
	agent_description    *map[string]interface{}
	improvement_metadata *map[string]interface{}
	is_active            *bool
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Prompt, error)
	predicates           []predicate.Prompt
}

var _ ent.Mutation = (*PromptMutation)(nil)

// promptOption allows management of the mutation configuration using functional options.
type promptOption func(*PromptMutation)

// newPromptMutation creates new mutation for the Prompt entity.
func newPromptMutation(c config, op Op, opts ...promptOption) *PromptMutation {
	m := &PromptMutation{
		config:        c,
		op:            op,
		typ:           TypePrompt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromptID sets the ID field of the mutation.
func withPromptID(id string) promptOption {
	return func(m *PromptMutation) {
		var (
			err   error
			once  sync.Once
			value *Prompt
		)
		m.oldValue = func(ctx context.Context) (*Prompt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Prompt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPrompt sets the old Prompt of the mutation.
func withPrompt(node *Prompt) promptOption {
	return func(m *PromptMutation) {
		m.oldValue = func(context.Context) (*Prompt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Prompt entities.
func (m *PromptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Prompt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *PromptMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *PromptMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *PromptMutation) ResetProjectID() {
	m.project_id = nil
}

// SetSlug sets the "slug" field.
func (m *PromptMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *PromptMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *PromptMutation) ResetSlug() {
	m.slug = nil
}

// SetVersion sets the "version" field.
func (m *PromptMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *PromptMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *PromptMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *PromptMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *PromptMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetContent sets the "content" field.
func (m *PromptMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *PromptMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *PromptMutation) ResetContent() {
	m.content = nil
}

// SetContentHash sets the "content_hash" field.
func (m *PromptMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *PromptMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *PromptMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetDisplayName sets the "display_name" field.
func (m *PromptMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *PromptMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldDisplayName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *PromptMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[prompt.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *PromptMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[prompt.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *PromptMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, prompt.FieldDisplayName)
}

// SetTags sets the "tags" field.
func (m *PromptMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *PromptMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *PromptMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *PromptMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *PromptMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[prompt.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *PromptMutation) TagsCleared() bool {
	_, ok := m.clearedFields[prompt.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *PromptMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, prompt.FieldTags)
}

// SetEvaluationCriteria sets the "evaluation_criteria" field.
func (m *PromptMutation) SetEvaluationCriteria(value map[string]interface{}) {
	m.evaluation_criteria = &value
}

// EvaluationCriteria returns the value of the "evaluation_criteria" field in the mutation.
func (m *PromptMutation) EvaluationCriteria() (r map[string]interface{}, exists bool) {
	v := m.evaluation_criteria
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluationCriteria returns the old "evaluation_criteria" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldEvaluationCriteria(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluationCriteria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluationCriteria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluationCriteria: %w", err)
	}
	return oldValue.EvaluationCriteria, nil
}

// ClearEvaluationCriteria clears the value of the "evaluation_criteria" field.
func (m *PromptMutation) ClearEvaluationCriteria() {
	m.evaluation_criteria = nil
	m.clearedFields[prompt.FieldEvaluationCriteria] = struct{}{}
}

// EvaluationCriteriaCleared returns if the "evaluation_criteria" field was cleared in this mutation.
func (m *PromptMutation) EvaluationCriteriaCleared() bool {
	_, ok := m.clearedFields[prompt.FieldEvaluationCriteria]
	return ok
}

// ResetEvaluationCriteria resets all changes to the "evaluation_criteria" field.
func (m *PromptMutation) ResetEvaluationCriteria() {
	m.evaluation_criteria = nil
	delete(m.clearedFields, prompt.FieldEvaluationCriteria)
}

// SetAgentDescription sets the "agent_description" field.
func (m *PromptMutation) SetAgentDescription(value map[string]interface{}) {
	m.agent_description = &value
}

// AgentDescription returns the value of the "agent_description" field in the mutation.
func (m *PromptMutation) AgentDescription() (r map[string]interface{}, exists bool) {
	v := m.agent_description
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentDescription returns the old "agent_description" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldAgentDescription(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentDescription: %w", err)
	}
	return oldValue.AgentDescription, nil
}

// ClearAgentDescription clears the value of the "agent_description" field.
func (m *PromptMutation) ClearAgentDescription() {
	m.agent_description = nil
	m.clearedFields[prompt.FieldAgentDescription] = struct{}{}
}

// AgentDescriptionCleared returns if the "agent_description" field was cleared in this mutation.
func (m *PromptMutation) AgentDescriptionCleared() bool {
	_, ok := m.clearedFields[prompt.FieldAgentDescription]
	return ok
}

// ResetAgentDescription resets all changes to the "agent_description" field.
func (m *PromptMutation) ResetAgentDescription() {
	m.agent_description = nil
	delete(m.clearedFields, prompt.FieldAgentDescription)
}

// SetImprovementMetadata sets the "improvement_metadata" field.
func (m *PromptMutation) SetImprovementMetadata(value map[string]interface{}) {
	m.improvement_metadata = &value
}

// ImprovementMetadata returns the value of the "improvement_metadata" field in the mutation.
func (m *PromptMutation) ImprovementMetadata() (r map[string]interface{}, exists bool) {
	v := m.improvement_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldImprovementMetadata returns the old "improvement_metadata" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldImprovementMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImprovementMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImprovementMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImprovementMetadata: %w", err)
	}
	return oldValue.ImprovementMetadata, nil
}

// ClearImprovementMetadata clears the value of the "improvement_metadata" field.
func (m *PromptMutation) ClearImprovementMetadata() {
	m.improvement_metadata = nil
	m.clearedFields[prompt.FieldImprovementMetadata] = struct{}{}
}

// ImprovementMetadataCleared returns if the "improvement_metadata" field was cleared in this mutation.
func (m *PromptMutation) ImprovementMetadataCleared() bool {
	_, ok := m.clearedFields[prompt.FieldImprovementMetadata]
	return ok
}

// ResetImprovementMetadata resets all changes to the "improvement_metadata" field.
func (m *PromptMutation) ResetImprovementMetadata() {
	m.improvement_metadata = nil
	delete(m.clearedFields, prompt.FieldImprovementMetadata)
}

// SetIsActive sets the "is_active" field.
func (m *PromptMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *PromptMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *PromptMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PromptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PromptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PromptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PromptMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PromptMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PromptMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PromptMutation builder.
func (m *PromptMutation) Where(ps ...predicate.Prompt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Prompt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Prompt).
func (m *PromptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromptMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.project_id != nil {
		fields = append(fields, prompt.FieldProjectID)
	}
	if m.slug != nil {
		fields = append(fields, prompt.FieldSlug)
	}
	if m.version != nil {
		fields = append(fields, prompt.FieldVersion)
	}
	if m.content != nil {
		fields = append(fields, prompt.FieldContent)
	}
	if m.content_hash != nil {
		fields = append(fields, prompt.FieldContentHash)
	}
	if m.display_name != nil {
		fields = append(fields, prompt.FieldDisplayName)
	}
	if m.tags != nil {
		fields = append(fields, prompt.FieldTags)
	}
	if m.evaluation_criteria != nil {
		fields = append(fields, prompt.FieldEvaluationCriteria)
	}
	if m.agent_description != nil {
		fields = append(fields, prompt.FieldAgentDescription)
	}
	if m.improvement_metadata != nil {
		fields = append(fields, prompt.FieldImprovementMetadata)
	}
	if m.is_active != nil {
		fields = append(fields, prompt.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, prompt.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, prompt.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prompt.FieldProjectID:
		return m.ProjectID()
	case prompt.FieldSlug:
		return m.Slug()
	case prompt.FieldVersion:
		return m.Version()
	case prompt.FieldContent:
		return m.Content()
	case prompt.FieldContentHash:
		return m.ContentHash()
	case prompt.FieldDisplayName:
		return m.DisplayName()
	case prompt.FieldTags:
		return m.Tags()
	case prompt.FieldEvaluationCriteria:
		return m.EvaluationCriteria()
	case prompt.FieldAgentDescription:
		return m.AgentDescription()
	case prompt.FieldImprovementMetadata:
		return m.ImprovementMetadata()
	case prompt.FieldIsActive:
		return m.IsActive()
	case prompt.FieldCreatedAt:
		return m.CreatedAt()
	case prompt.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prompt.FieldProjectID:
		return m.OldProjectID(ctx)
	case prompt.FieldSlug:
		return m.OldSlug(ctx)
	case prompt.FieldVersion:
		return m.OldVersion(ctx)
	case prompt.FieldContent:
		return m.OldContent(ctx)
	case prompt.FieldContentHash:
		return m.OldContentHash(ctx)
	case prompt.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case prompt.FieldTags:
		return m.OldTags(ctx)
	case prompt.FieldEvaluationCriteria:
		return m.OldEvaluationCriteria(ctx)
	case prompt.FieldAgentDescription:
		return m.OldAgentDescription(ctx)
	case prompt.FieldImprovementMetadata:
		return m.OldImprovementMetadata(ctx)
	case prompt.FieldIsActive:
		return m.OldIsActive(ctx)
	case prompt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case prompt.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Prompt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prompt.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case prompt.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case prompt.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case prompt.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case prompt.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case prompt.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case prompt.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case prompt.FieldEvaluationCriteria:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluationCriteria(v)
		return nil
	case prompt.FieldAgentDescription:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentDescription(v)
		return nil
	case prompt.FieldImprovementMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImprovementMetadata(v)
		return nil
	case prompt.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case prompt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case prompt.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Prompt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromptMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, prompt.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case prompt.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case prompt.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Prompt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(prompt.FieldDisplayName) {
		fields = append(fields, prompt.FieldDisplayName)
	}
	if m.FieldCleared(prompt.FieldTags) {
		fields = append(fields, prompt.FieldTags)
	}
	if m.FieldCleared(prompt.FieldEvaluationCriteria) {
		fields = append(fields, prompt.FieldEvaluationCriteria)
	}
	if m.FieldCleared(prompt.FieldAgentDescription) {
		fields = append(fields, prompt.FieldAgentDescription)
	}
	if m.FieldCleared(prompt.FieldImprovementMetadata) {
		fields = append(fields, prompt.FieldImprovementMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromptMutation) ClearField(name string) error {
	switch name {
	case prompt.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	case prompt.FieldTags:
		m.ClearTags()
		return nil
	case prompt.FieldEvaluationCriteria:
		m.ClearEvaluationCriteria()
		return nil
	case prompt.FieldAgentDescription:
		m.ClearAgentDescription()
		return nil
	case prompt.FieldImprovementMetadata:
		m.ClearImprovementMetadata()
		return nil
	}
	return fmt.Errorf("unknown Prompt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromptMutation) ResetField(name string) error {
	switch name {
	case prompt.FieldProjectID:
		m.ResetProjectID()
		return nil
	case prompt.FieldSlug:
		m.ResetSlug()
		return nil
	case prompt.FieldVersion:
		m.ResetVersion()
		return nil
	case prompt.FieldContent:
		m.ResetContent()
		return nil
	case prompt.FieldContentHash:
		m.ResetContentHash()
		return nil
	case prompt.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case prompt.FieldTags:
		m.ResetTags()
		return nil
	case prompt.FieldEvaluationCriteria:
		m.ResetEvaluationCriteria()
		return nil
	case prompt.FieldAgentDescription:
		m.ResetAgentDescription()
		return nil
	case prompt.FieldImprovementMetadata:
		m.ResetImprovementMetadata()
		return nil
	case prompt.FieldIsActive:
		m.ResetIsActive()
		return nil
	case prompt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case prompt.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Prompt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Prompt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Prompt edge %s", name)
}

// SpanMutation represents an operation that mutates the Span nodes in the graph.
type SpanMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	project_id              *string
	parent_span_id          *string
	prompt_id               *string
	start_time_unix_nano    *int64
	addstart_time_unix_nano *int64
	end_time_unix_nano      *int64
	addend_time_unix_nano   *int64
	input                   *string
	output                  *[]map[string]interface{}
	appendoutput            []map[string]interface{}
	input_params            *map[string]interface{}
	output_params           *map[string]interface{}
	operation               *string
	metadata_attributes     *map[string]interface{}
	feedback_score          *map[string]interface{}
	created_at              *time.Time
	clearedFields           map[string]struct{}
	trace                   *string
	clearedtrace            bool
	done                    bool
	oldValue                func(context.Context) (*Span, error)
	predicates              []predicate.Span
}

var _ ent.Mutation = (*SpanMutation)(nil)

// spanOption allows management of the mutation configuration using functional options.
type spanOption func(*SpanMutation)

// newSpanMutation creates new mutation for the Span entity.
func newSpanMutation(c config, op Op, opts ...spanOption) *SpanMutation {
	m := &SpanMutation{
		config:        c,
		op:            op,
		typ:           TypeSpan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSpanID sets the ID field of the mutation.
func withSpanID(id string) spanOption {
	return func(m *SpanMutation) {
		var (
			err   error
			once  sync.Once
			value *Span
		)
		m.oldValue = func(ctx context.Context) (*Span, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Span.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSpan sets the old Span of the mutation.
func withSpan(node *Span) spanOption {
	return func(m *SpanMutation) {
		m.oldValue = func(context.Context) (*Span, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SpanMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SpanMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Span entities.
func (m *SpanMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SpanMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SpanMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Span.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTraceID sets the "trace_id" field.
func (m *SpanMutation) SetTraceID(s string) {
	m.trace = &s
}

// TraceID returns the value of the "trace_id" field in the mutation.
func (m *SpanMutation) TraceID() (r string, exists bool) {
	v := m.trace
	if v == nil {
		return
	}
	return *v, true
}

// OldTraceID returns the old "trace_id" field's value of the Span entity.
// If the Span object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpanMutation) OldTraceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTraceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTraceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTraceID: %w", err)
	}
	return oldValue.TraceID, nil
}

// ResetTraceID resets all changes to the "trace_id" field.
func (m *SpanMutation) ResetTraceID() {
	m.trace = nil
}

// SetProjectID sets the "project_id" field.
func (m *SpanMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *SpanMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Span entity.
// If the Span object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpanMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *SpanMutation) ResetProjectID() {
	m.project_id = nil
}

// SetParentSpanID sets the "parent_span_id" field.
func (m *SpanMutation) SetParentSpanID(s string) {
	m.parent_span_id = &s
}

// ParentSpanID returns the value of the "parent_span_id" field in the mutation.
func (m *SpanMutation) ParentSpanID() (r string, exists bool) {
	v := m.parent_span_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentSpanID returns the old "parent_span_id" field's value of the Span entity.
// If the Span object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpanMutation) OldParentSpanID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentSpanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentSpanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentSpanID: %w", err)
	}
	return oldValue.ParentSpanID, nil
}

// ClearParentSpanID clears the value of the "parent_span_id" field.
func (m *SpanMutation) ClearParentSpanID() {
	m.parent_span_id = nil
	m.clearedFields[span.FieldParentSpanID] = struct{}{}
}

// ParentSpanIDCleared returns if the "parent_span_id" field was cleared in this mutation.
func (m *SpanMutation) ParentSpanIDCleared() bool {
	_, ok := m.clearedFields[span.FieldParentSpanID]
	return ok
}

// ResetParentSpanID resets all changes to the "parent_span_id" field.
func (m *SpanMutation) ResetParentSpanID() {
	m.parent_span_id = nil
	delete(m.clearedFields, span.FieldParentSpanID)
}

// SetPromptID sets the "prompt_id" field.
func (m *SpanMutation) SetPromptID(s string) {
	m.prompt_id = &s
}

// PromptID returns the value of the "prompt_id" field in the mutation.
func (m *SpanMutation) PromptID() (r string, exists bool) {
	v := m.prompt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptID returns the old "prompt_id" field's value of the Span entity.
// If the Span object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpanMutation) OldPromptID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptID: %w", err)
	}
	return oldValue.PromptID, nil
}

// ClearPromptID clears the value of the "prompt_id" field.
func (m *SpanMutation) ClearPromptID() {
	m.prompt_id = nil
	m.clearedFields[span.FieldPromptID] = struct{}{}
}

// PromptIDCleared returns if the "prompt_id" field was cleared in this mutation.
func (m *SpanMutation) PromptIDCleared() bool {
	_, ok := m.clearedFields[span.FieldPromptID]
	return ok
}

// ResetPromptID resets all changes to the "prompt_id" field.
func (m *SpanMutation) ResetPromptID() {
	m.prompt_id = nil
	delete(m.clearedFields, span.FieldPromptID)
}

// SetStartTimeUnixNano sets the "start_time_unix_nano" field.
func (m *SpanMutation) SetStartTimeUnixNano(i int64) {
	m.start_time_unix_nano = &i
	m.addstart_time_unix_nano = nil
}

// StartTimeUnixNano returns the value of the "start_time_unix_nano" field in the mutation.
func (m *SpanMutation) StartTimeUnixNano() (r int64, exists bool) {
	v := m.start_time_unix_nano
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTimeUnixNano returns the old "start_time_unix_nano" field's value of the Span entity.
// If the Span object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpanMutation) OldStartTimeUnixNano(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTimeUnixNano is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTimeUnixNano requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTimeUnixNano: %w", err)
	}
	return oldValue.StartTimeUnixNano, nil
}

// AddStartTimeUnixNano adds i to the "start_time_unix_nano" field.
func (m *SpanMutation) AddStartTimeUnixNano(i int64) {
	if m.addstart_time_unix_nano != nil {
		*m.addstart_time_unix_nano += i
	} else {
		m.addstart_time_unix_nano = &i
	}
}

// AddedStartTimeUnixNano returns the value that was added to the "start_time_unix_nano" field in this mutation.
func (m *SpanMutation) AddedStartTimeUnixNano() (r int64, exists bool) {
	v := m.addstart_time_unix_nano
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartTimeUnixNano resets all changes to the "start_time_unix_nano" field.
func (m *SpanMutation) ResetStartTimeUnixNano() {
	m.start_time_unix_nano = nil
	m.addstart_time_unix_nano = nil
}

// SetEndTimeUnixNano sets the "end_time_unix_nano" field.
func (m *SpanMutation) SetEndTimeUnixNano(i int64) {
	m.end_time_unix_nano = &i
	m.addend_time_unix_nano = nil
}

// EndTimeUnixNano returns the value of the "end_time_unix_nano" field in the mutation.
func (m *SpanMutation) EndTimeUnixNano() (r int64, exists bool) {
	v := m.end_time_unix_nano
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTimeUnixNano returns the old "end_time_unix_nano" field's value of the Span entity.
// If the Span object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpanMutation) OldEndTimeUnixNano(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTimeUnixNano is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTimeUnixNano requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTimeUnixNano: %w", err)
	}
	return oldValue.EndTimeUnixNano, nil
}

// AddEndTimeUnixNano adds i to the "end_time_unix_nano" field.
func (m *SpanMutation) AddEndTimeUnixNano(i int64) {
	if m.addend_time_unix_nano != nil {
		*m.addend_time_unix_nano += i
	} else {
		m.addend_time_unix_nano = &i
	}
}

// AddedEndTimeUnixNano returns the value that was added to the "end_time_unix_nano" field in this mutation.
func (m *SpanMutation) AddedEndTimeUnixNano() (r int64, exists bool) {
	v := m.addend_time_unix_nano
	if v == nil {
		return
	}
	return *v, true
}

// ResetEndTimeUnixNano resets all changes to the "end_time_unix_nano" field.
func (m *SpanMutation) ResetEndTimeUnixNano() {
	m.end_time_unix_nano = nil
	m.addend_time_unix_nano = nil
}

// SetInput sets the "input" field.
func (m *SpanMutation) SetInput(s string) {
	m.input = &s
}

// Input returns the value of the "input" field in the mutation.
func (m *SpanMutation) Input() (r string, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the Span entity.
// If the Span object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpanMutation) OldInput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ClearInput clears the value of the "input" field.
func (m *SpanMutation) ClearInput() {
	m.input = nil
	m.clearedFields[span.FieldInput] = struct{}{}
}

// InputCleared returns if the "input" field was cleared in this mutation.
func (m *SpanMutation) InputCleared() bool {
	_, ok := m.clearedFields[span.FieldInput]
	return ok
}

// ResetInput resets all changes to the "input" field.
func (m *SpanMutation) ResetInput() {
	m.input = nil
	delete(m.clearedFields, span.FieldInput)
}

// SetOutput sets the "output" field.
func (m *SpanMutation) SetOutput(value []map[string]interface{}) {
	m.output = &value
	m.appendoutput = nil
}

// Output returns the value of the "output" field in the mutation.
func (m *SpanMutation) Output() (r []map[string]interface{}, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the Span entity.
// If the Span object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpanMutation) OldOutput(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// AppendOutput adds value to the "output" field.
func (m *SpanMutation) AppendOutput(value []map[string]interface{}) {
	m.appendoutput = append(m.appendoutput, value...)
}

// AppendedOutput returns the list of values that were appended to the "output" field in this mutation.
func (m *SpanMutation) AppendedOutput() ([]map[string]interface{}, bool) {
	if len(m.appendoutput) == 0 {
		return nil, false
	}
	return m.appendoutput, true
}

// ClearOutput clears the value of the "output" field.
func (m *SpanMutation) ClearOutput() {
	m.output = nil
	m.appendoutput = nil
	m.clearedFields[span.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *SpanMutation) OutputCleared() bool {
	_, ok := m.clearedFields[span.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *SpanMutation) ResetOutput() {
	m.output = nil
	m.appendoutput = nil
	delete(m.clearedFields, span.FieldOutput)
}

// SetInputParams sets the "input_params" field.
func (m *SpanMutation) SetInputParams(value map[string]interface{}) {
	m.input_params = &value
}

// InputParams returns the value of the "input_params" field in the mutation.
func (m *SpanMutation) InputParams() (r map[string]interface{}, exists bool) {
	v := m.input_params
	if v == nil {
		return
	}
	return *v, true
}

// OldInputParams returns the old "input_params" field's value of the Span entity.
// If the Span object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpanMutation) OldInputParams(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputParams: %w", err)
	}
	return oldValue.InputParams, nil
}

// ClearInputParams clears the value of the "input_params" field.
func (m *SpanMutation) ClearInputParams() {
	m.input_params = nil
	m.clearedFields[span.FieldInputParams] = struct{}{}
}

// InputParamsCleared returns if the "input_params" field was cleared in this mutation.
func (m *SpanMutation) InputParamsCleared() bool {
	_, ok := m.clearedFields[span.FieldInputParams]
	return ok
}

// ResetInputParams resets all changes to the "input_params" field.
func (m *SpanMutation) ResetInputParams() {
	m.input_params = nil
	delete(m.clearedFields, span.FieldInputParams)
}

// SetOutputParams sets the "output_params" field.
func (m *SpanMutation) SetOutputParams(value map[string]interface{}) {
	m.output_params = &value
}

// OutputParams returns the value of the "output_params" field in the mutation.
func (m *SpanMutation) OutputParams() (r map[string]interface{}, exists bool) {
	v := m.output_params
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputParams returns the old "output_params" field's value of the Span entity.
// If the Span object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpanMutation) OldOutputParams(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputParams: %w", err)
	}
	return oldValue.OutputParams, nil
}

// ClearOutputParams clears the value of the "output_params" field.
func (m *SpanMutation) ClearOutputParams() {
	m.output_params = nil
	m.clearedFields[span.FieldOutputParams] = struct{}{}
}

// OutputParamsCleared returns if the "output_params" field was cleared in this mutation.
func (m *SpanMutation) OutputParamsCleared() bool {
	_, ok := m.clearedFields[span.FieldOutputParams]
	return ok
}

// ResetOutputParams resets all changes to the "output_params" field.
func (m *SpanMutation) ResetOutputParams() {
	m.output_params = nil
	delete(m.clearedFields, span.FieldOutputParams)
}

// SetOperation sets the "operation" field.
func (m *SpanMutation) SetOperation(s string) {
	m.operation = &s
}

// Operation returns the value of the "operation" field in the mutation.
func (m *SpanMutation) Operation() (r string, exists bool) {
	v := m.operation
	if v == nil {
		return
	}
	return *v, true
}

// OldOperation returns the old "operation" field's value of the Span entity.
// If the Span object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpanMutation) OldOperation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperation: %w", err)
	}
	return oldValue.Operation, nil
}

// ClearOperation clears the value of the "operation" field.
func (m *SpanMutation) ClearOperation() {
	m.operation = nil
	m.clearedFields[span.FieldOperation] = struct{}{}
}

// OperationCleared returns if the "operation" field was cleared in this mutation.
func (m *SpanMutation) OperationCleared() bool {
	_, ok := m.clearedFields[span.FieldOperation]
	return ok
}

// ResetOperation resets all changes to the "operation" field.
func (m *SpanMutation) ResetOperation() {
	m.operation = nil
	delete(m.clearedFields, span.FieldOperation)
}

// SetMetadataAttributes sets the "metadata_attributes" field.
func (m *SpanMutation) SetMetadataAttributes(value map[string]interface{}) {
	m.metadata_attributes = &value
}

// MetadataAttributes returns the value of the "metadata_attributes" field in the mutation.
func (m *SpanMutation) MetadataAttributes() (r map[string]interface{}, exists bool) {
	v := m.metadata_attributes
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadataAttributes returns the old "metadata_attributes" field's value of the Span entity.
// If the Span object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpanMutation) OldMetadataAttributes(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadataAttributes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadataAttributes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadataAttributes: %w", err)
	}
	return oldValue.MetadataAttributes, nil
}

// ClearMetadataAttributes clears the value of the "metadata_attributes" field.
func (m *SpanMutation) ClearMetadataAttributes() {
	m.metadata_attributes = nil
	m.clearedFields[span.FieldMetadataAttributes] = struct{}{}
}

// MetadataAttributesCleared returns if the "metadata_attributes" field was cleared in this mutation.
func (m *SpanMutation) MetadataAttributesCleared() bool {
	_, ok := m.clearedFields[span.FieldMetadataAttributes]
	return ok
}

// ResetMetadataAttributes resets all changes to the "metadata_attributes" field.
func (m *SpanMutation) ResetMetadataAttributes() {
	m.metadata_attributes = nil
	delete(m.clearedFields, span.FieldMetadataAttributes)
}

// SetFeedbackScore sets the "feedback_score" field.
func (m *SpanMutation) SetFeedbackScore(value map[string]interface{}) {
	m.feedback_score = &value
}

// FeedbackScore returns the value of the "feedback_score" field in the mutation.
func (m *SpanMutation) FeedbackScore() (r map[string]interface{}, exists bool) {
	v := m.feedback_score
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedbackScore returns the old "feedback_score" field's value of the Span entity.
// If the Span object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpanMutation) OldFeedbackScore(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedbackScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedbackScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedbackScore: %w", err)
	}
	return oldValue.FeedbackScore, nil
}

// ClearFeedbackScore clears the value of the "feedback_score" field.
func (m *SpanMutation) ClearFeedbackScore() {
	m.feedback_score = nil
	m.clearedFields[span.FieldFeedbackScore] = struct{}{}
}

// FeedbackScoreCleared returns if the "feedback_score" field was cleared in this mutation.
func (m *SpanMutation) FeedbackScoreCleared() bool {
	_, ok := m.clearedFields[span.FieldFeedbackScore]
	return ok
}

// ResetFeedbackScore resets all changes to the "feedback_score" field.
func (m *SpanMutation) ResetFeedbackScore() {
	m.feedback_score = nil
	delete(m.clearedFields, span.FieldFeedbackScore)
}

// SetCreatedAt sets the "created_at" field.
func (m *SpanMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SpanMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Span entity.
// If the Span object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpanMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SpanMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTrace clears the "trace" edge to the Trace entity.
func (m *SpanMutation) ClearTrace() {
	m.clearedtrace = true
	m.clearedFields[span.FieldTraceID] = struct{}{}
}

// TraceCleared reports if the "trace" edge to the Trace entity was cleared.
func (m *SpanMutation) TraceCleared() bool {
	return m.clearedtrace
}

// TraceIDs returns the "trace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TraceID instead. It exists only for internal usage by the builders.
func (m *SpanMutation) TraceIDs() (ids []string) {
	if id := m.trace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTrace resets all changes to the "trace" edge.
func (m *SpanMutation) ResetTrace() {
	m.trace = nil
	m.clearedtrace = false
}

// Where appends a list predicates to the SpanMutation builder.
func (m *SpanMutation) Where(ps ...predicate.Span) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SpanMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SpanMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Span, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SpanMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SpanMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Span).
func (m *SpanMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SpanMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.trace != nil {
		fields = append(fields, span.FieldTraceID)
	}
	if m.project_id != nil {
		fields = append(fields, span.FieldProjectID)
	}
	if m.parent_span_id != nil {
		fields = append(fields, span.FieldParentSpanID)
	}
	if m.prompt_id != nil {
		fields = append(fields, span.FieldPromptID)
	}
	if m.start_time_unix_nano != nil {
		fields = append(fields, span.FieldStartTimeUnixNano)
	}
	if m.end_time_unix_nano != nil {
		fields = append(fields, span.FieldEndTimeUnixNano)
	}
	if m.input != nil {
		fields = append(fields, span.FieldInput)
	}
	if m.output != nil {
		fields = append(fields, span.FieldOutput)
	}
	if m.input_params != nil {
		fields = append(fields, span.FieldInputParams)
	}
	if m.output_params != nil {
		fields = append(fields, span.FieldOutputParams)
	}
	if m.operation != nil {
		fields = append(fields, span.FieldOperation)
	}
	if m.metadata_attributes != nil {
		fields = append(fields, span.FieldMetadataAttributes)
	}
	if m.feedback_score != nil {
		fields = append(fields, span.FieldFeedbackScore)
	}
	if m.created_at != nil {
		fields = append(fields, span.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SpanMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case span.FieldTraceID:
		return m.TraceID()
	case span.FieldProjectID:
		return m.ProjectID()
	case span.FieldParentSpanID:
		return m.ParentSpanID()
	case span.FieldPromptID:
		return m.PromptID()
	case span.FieldStartTimeUnixNano:
		return m.StartTimeUnixNano()
	case span.FieldEndTimeUnixNano:
		return m.EndTimeUnixNano()
	case span.FieldInput:
		return m.Input()
	case span.FieldOutput:
		return m.Output()
	case span.FieldInputParams:
		return m.InputParams()
	case span.FieldOutputParams:
		return m.OutputParams()
	case span.FieldOperation:
		return m.Operation()
	case span.FieldMetadataAttributes:
		return m.MetadataAttributes()
	case span.FieldFeedbackScore:
		return m.FeedbackScore()
	case span.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SpanMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case span.FieldTraceID:
		return m.OldTraceID(ctx)
	case span.FieldProjectID:
		return m.OldProjectID(ctx)
	case span.FieldParentSpanID:
		return m.OldParentSpanID(ctx)
	case span.FieldPromptID:
		return m.OldPromptID(ctx)
	case span.FieldStartTimeUnixNano:
		return m.OldStartTimeUnixNano(ctx)
	case span.FieldEndTimeUnixNano:
		return m.OldEndTimeUnixNano(ctx)
	case span.FieldInput:
		return m.OldInput(ctx)
	case span.FieldOutput:
		return m.OldOutput(ctx)
	case span.FieldInputParams:
		return m.OldInputParams(ctx)
	case span.FieldOutputParams:
		return m.OldOutputParams(ctx)
	case span.FieldOperation:
		return m.OldOperation(ctx)
	case span.FieldMetadataAttributes:
		return m.OldMetadataAttributes(ctx)
	case span.FieldFeedbackScore:
		return m.OldFeedbackScore(ctx)
	case span.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Span field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpanMutation) SetField(name string, value ent.Value) error {
	switch name {
	case span.FieldTraceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTraceID(v)
		return nil
	case span.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case span.FieldParentSpanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentSpanID(v)
		return nil
	case span.FieldPromptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptID(v)
		return nil
	case span.FieldStartTimeUnixNano:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTimeUnixNano(v)
		return nil
	case span.FieldEndTimeUnixNano:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTimeUnixNano(v)
		return nil
	case span.FieldInput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case span.FieldOutput:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case span.FieldInputParams:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputParams(v)
		return nil
	case span.FieldOutputParams:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputParams(v)
		return nil
	case span.FieldOperation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperation(v)
		return nil
	case span.FieldMetadataAttributes:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadataAttributes(v)
		return nil
	case span.FieldFeedbackScore:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedbackScore(v)
		return nil
	case span.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Span field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SpanMutation) AddedFields() []string {
	var fields []string
	if m.addstart_time_unix_nano != nil {
		fields = append(fields, span.FieldStartTimeUnixNano)
	}
	if m.addend_time_unix_nano != nil {
		fields = append(fields, span.FieldEndTimeUnixNano)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SpanMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case span.FieldStartTimeUnixNano:
		return m.AddedStartTimeUnixNano()
	case span.FieldEndTimeUnixNano:
		return m.AddedEndTimeUnixNano()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpanMutation) AddField(name string, value ent.Value) error {
	switch name {
	case span.FieldStartTimeUnixNano:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartTimeUnixNano(v)
		return nil
	case span.FieldEndTimeUnixNano:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndTimeUnixNano(v)
		return nil
	}
	return fmt.Errorf("unknown Span numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SpanMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(span.FieldParentSpanID) {
		fields = append(fields, span.FieldParentSpanID)
	}
	if m.FieldCleared(span.FieldPromptID) {
		fields = append(fields, span.FieldPromptID)
	}
	if m.FieldCleared(span.FieldInput) {
		fields = append(fields, span.FieldInput)
	}
	if m.FieldCleared(span.FieldOutput) {
		fields = append(fields, span.FieldOutput)
	}
	if m.FieldCleared(span.FieldInputParams) {
		fields = append(fields, span.FieldInputParams)
	}
	if m.FieldCleared(span.FieldOutputParams) {
		fields = append(fields, span.FieldOutputParams)
	}
	if m.FieldCleared(span.FieldOperation) {
		fields = append(fields, span.FieldOperation)
	}
	if m.FieldCleared(span.FieldMetadataAttributes) {
		fields = append(fields, span.FieldMetadataAttributes)
	}
	if m.FieldCleared(span.FieldFeedbackScore) {
		fields = append(fields, span.FieldFeedbackScore)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SpanMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SpanMutation) ClearField(name string) error {
	switch name {
	case span.FieldParentSpanID:
		m.ClearParentSpanID()
		return nil
	case span.FieldPromptID:
		m.ClearPromptID()
		return nil
	case span.FieldInput:
		m.ClearInput()
		return nil
	case span.FieldOutput:
		m.ClearOutput()
		return nil
	case span.FieldInputParams:
		m.ClearInputParams()
		return nil
	case span.FieldOutputParams:
		m.ClearOutputParams()
		return nil
	case span.FieldOperation:
		m.ClearOperation()
		return nil
	case span.FieldMetadataAttributes:
		m.ClearMetadataAttributes()
		return nil
	case span.FieldFeedbackScore:
		m.ClearFeedbackScore()
		return nil
	}
	return fmt.Errorf("unknown Span nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SpanMutation) ResetField(name string) error {
	switch name {
	case span.FieldTraceID:
		m.ResetTraceID()
		return nil
	case span.FieldProjectID:
		m.ResetProjectID()
		return nil
	case span.FieldParentSpanID:
		m.ResetParentSpanID()
		return nil
	case span.FieldPromptID:
		m.ResetPromptID()
		return nil
	case span.FieldStartTimeUnixNano:
		m.ResetStartTimeUnixNano()
		return nil
	case span.FieldEndTimeUnixNano:
		m.ResetEndTimeUnixNano()
		return nil
	case span.FieldInput:
		m.ResetInput()
		return nil
	case span.FieldOutput:
		m.ResetOutput()
		return nil
	case span.FieldInputParams:
		m.ResetInputParams()
		return nil
	case span.FieldOutputParams:
		m.ResetOutputParams()
		return nil
	case span.FieldOperation:
		m.ResetOperation()
		return nil
	case span.FieldMetadataAttributes:
		m.ResetMetadataAttributes()
		return nil
	case span.FieldFeedbackScore:
		m.ResetFeedbackScore()
		return nil
	case span.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Span field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SpanMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.trace != nil {
		edges = append(edges, span.EdgeTrace)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SpanMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case span.EdgeTrace:
		if id := m.trace; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SpanMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SpanMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SpanMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtrace {
		edges = append(edges, span.EdgeTrace)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SpanMutation) EdgeCleared(name string) bool {
	switch name {
	case span.EdgeTrace:
		return m.clearedtrace
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SpanMutation) ClearEdge(name string) error {
	switch name {
	case span.EdgeTrace:
		m.ClearTrace()
		return nil
	}
	return fmt.Errorf("unknown Span unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SpanMutation) ResetEdge(name string) error {
	switch name {
	case span.EdgeTrace:
		m.ResetTrace()
		return nil
	}
	return fmt.Errorf("unknown Span edge %s", name)
}

// SuggestionMutation represents an operation that mutates the Suggestion nodes in the graph.
type SuggestionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	prompt_slug           *string
	new_prompt_text       *string
	new_prompt_version    *int
	addnew_prompt_version *int
	scores                *map[string]interface{}
	recommendations       *map[string]interface{}
	status                *suggestion.Status
	vote                  *int
	addvote               *int
	feedback              *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	project               *string
	clearedproject        bool
	done                  bool
	oldValue              func(context.Context) (*Suggestion, error)
	predicates            []predicate.Suggestion
}

var _ ent.Mutation = (*SuggestionMutation)(nil)

// suggestionOption allows management of the mutation configuration using functional options.
type suggestionOption func(*SuggestionMutation)

// newSuggestionMutation creates new mutation for the Suggestion entity.
func newSuggestionMutation(c config, op Op, opts ...suggestionOption) *SuggestionMutation {
	m := &SuggestionMutation{
		config:        c,
		op:            op,
		typ:           TypeSuggestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSuggestionID sets the ID field of the mutation.
func withSuggestionID(id string) suggestionOption {
	return func(m *SuggestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Suggestion
		)
		m.oldValue = func(ctx context.Context) (*Suggestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Suggestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSuggestion sets the old Suggestion of the mutation.
func withSuggestion(node *Suggestion) suggestionOption {
	return func(m *SuggestionMutation) {
		m.oldValue = func(context.Context) (*Suggestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SuggestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SuggestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Suggestion entities.
func (m *SuggestionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SuggestionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SuggestionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Suggestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *SuggestionMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *SuggestionMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *SuggestionMutation) ResetProjectID() {
	m.project = nil
}

// SetPromptSlug sets the "prompt_slug" field.
func (m *SuggestionMutation) SetPromptSlug(s string) {
	m.prompt_slug = &s
}

// PromptSlug returns the value of the "prompt_slug" field in the mutation.
func (m *SuggestionMutation) PromptSlug() (r string, exists bool) {
	v := m.prompt_slug
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptSlug returns the old "prompt_slug" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldPromptSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptSlug: %w", err)
	}
	return oldValue.PromptSlug, nil
}

// ResetPromptSlug resets all changes to the "prompt_slug" field.
func (m *SuggestionMutation) ResetPromptSlug() {
	m.prompt_slug = nil
}

// SetNewPromptText sets the "new_prompt_text" field.
func (m *SuggestionMutation) SetNewPromptText(s string) {
	m.new_prompt_text = &s
}

// NewPromptText returns the value of the "new_prompt_text" field in the mutation.
func (m *SuggestionMutation) NewPromptText() (r string, exists bool) {
	v := m.new_prompt_text
	if v == nil {
		return
	}
	return *v, true
}

// OldNewPromptText returns the old "new_prompt_text" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldNewPromptText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewPromptText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewPromptText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewPromptText: %w", err)
	}
	return oldValue.NewPromptText, nil
}

// ClearNewPromptText clears the value of the "new_prompt_text" field.
func (m *SuggestionMutation) ClearNewPromptText() {
	m.new_prompt_text = nil
	m.clearedFields[suggestion.FieldNewPromptText] = struct{}{}
}

// NewPromptTextCleared returns if the "new_prompt_text" field was cleared in this mutation.
func (m *SuggestionMutation) NewPromptTextCleared() bool {
	_, ok := m.clearedFields[suggestion.FieldNewPromptText]
	return ok
}

// ResetNewPromptText resets all changes to the "new_prompt_text" field.
func (m *SuggestionMutation) ResetNewPromptText() {
	m.new_prompt_text = nil
	delete(m.clearedFields, suggestion.FieldNewPromptText)
}

// SetNewPromptVersion sets the "new_prompt_version" field.
func (m *SuggestionMutation) SetNewPromptVersion(i int) {
	m.new_prompt_version = &i
	m.addnew_prompt_version = nil
}

// NewPromptVersion returns the value of the "new_prompt_version" field in the mutation.
func (m *SuggestionMutation) NewPromptVersion() (r int, exists bool) {
	v := m.new_prompt_version
	if v == nil {
		return
	}
	return *v, true
}

// OldNewPromptVersion returns the old "new_prompt_version" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldNewPromptVersion(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewPromptVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewPromptVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewPromptVersion: %w", err)
	}
	return oldValue.NewPromptVersion, nil
}

// AddNewPromptVersion adds i to the "new_prompt_version" field.
func (m *SuggestionMutation) AddNewPromptVersion(i int) {
	if m.addnew_prompt_version != nil {
		*m.addnew_prompt_version += i
	} else {
		m.addnew_prompt_version = &i
	}
}

// AddedNewPromptVersion returns the value that was added to the "new_prompt_version" field in this mutation.
func (m *SuggestionMutation) AddedNewPromptVersion() (r int, exists bool) {
	v := m.addnew_prompt_version
	if v == nil {
		return
	}
	return *v, true
}

// ClearNewPromptVersion clears the value of the "new_prompt_version" field.
func (m *SuggestionMutation) ClearNewPromptVersion() {
	m.new_prompt_version = nil
	m.addnew_prompt_version = nil
	m.clearedFields[suggestion.FieldNewPromptVersion] = struct{}{}
}

// NewPromptVersionCleared returns if the "new_prompt_version" field was cleared in this mutation.
func (m *SuggestionMutation) NewPromptVersionCleared() bool {
	_, ok := m.clearedFields[suggestion.FieldNewPromptVersion]
	return ok
}

// ResetNewPromptVersion resets all changes to the "new_prompt_version" field.
func (m *SuggestionMutation) ResetNewPromptVersion() {
	m.new_prompt_version = nil
	m.addnew_prompt_version = nil
	delete(m.clearedFields, suggestion.FieldNewPromptVersion)
}

// SetScores sets the "scores" field.
func (m *SuggestionMutation) SetScores(value map[string]interface{}) {
	m.scores = &value
}

// Scores returns the value of the "scores" field in the mutation.
func (m *SuggestionMutation) Scores() (r map[string]interface{}, exists bool) {
	v := m.scores
	if v == nil {
		return
	}
	return *v, true
}

// OldScores returns the old "scores" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldScores(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScores: %w", err)
	}
	return oldValue.Scores, nil
}

// ClearScores clears the value of the "scores" field.
func (m *SuggestionMutation) ClearScores() {
	m.scores = nil
	m.clearedFields[suggestion.FieldScores] = struct{}{}
}

// ScoresCleared returns if the "scores" field was cleared in this mutation.
func (m *SuggestionMutation) ScoresCleared() bool {
	_, ok := m.clearedFields[suggestion.FieldScores]
	return ok
}

// ResetScores resets all changes to the "scores" field.
func (m *SuggestionMutation) ResetScores() {
	m.scores = nil
	delete(m.clearedFields, suggestion.FieldScores)
}

// SetRecommendations sets the "recommendations" field.
func (m *SuggestionMutation) SetRecommendations(value map[string]interface{}) {
	m.recommendations = &value
}

// Recommendations returns the value of the "recommendations" field in the mutation.
func (m *SuggestionMutation) Recommendations() (r map[string]interface{}, exists bool) {
	v := m.recommendations
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendations returns the old "recommendations" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldRecommendations(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendations: %w", err)
	}
	return oldValue.Recommendations, nil
}

// ClearRecommendations clears the value of the "recommendations" field.
func (m *SuggestionMutation) ClearRecommendations() {
	m.recommendations = nil
	m.clearedFields[suggestion.FieldRecommendations] = struct{}{}
}

// RecommendationsCleared returns if the "recommendations" field was cleared in this mutation.
func (m *SuggestionMutation) RecommendationsCleared() bool {
	_, ok := m.clearedFields[suggestion.FieldRecommendations]
	return ok
}

// ResetRecommendations resets all changes to the "recommendations" field.
func (m *SuggestionMutation) ResetRecommendations() {
	m.recommendations = nil
	delete(m.clearedFields, suggestion.FieldRecommendations)
}

// SetStatus sets the "status" field.
func (m *SuggestionMutation) SetStatus(s suggestion.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SuggestionMutation) Status() (r suggestion.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldStatus(ctx context.Context) (v suggestion.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SuggestionMutation) ResetStatus() {
	m.status = nil
}

// SetVote sets the "vote" field.
func (m *SuggestionMutation) SetVote(i int) {
	m.vote = &i
	m.addvote = nil
}

// Vote returns the value of the "vote" field in the mutation.
func (m *SuggestionMutation) Vote() (r int, exists bool) {
	v := m.vote
	if v == nil {
		return
	}
	return *v, true
}

// OldVote returns the old "vote" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldVote(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVote: %w", err)
	}
	return oldValue.Vote, nil
}

// AddVote adds i to the "vote" field.
func (m *SuggestionMutation) AddVote(i int) {
	if m.addvote != nil {
		*m.addvote += i
	} else {
		m.addvote = &i
	}
}

// AddedVote returns the value that was added to the "vote" field in this mutation.
func (m *SuggestionMutation) AddedVote() (r int, exists bool) {
	v := m.addvote
	if v == nil {
		return
	}
	return *v, true
}

// ResetVote resets all changes to the "vote" field.
func (m *SuggestionMutation) ResetVote() {
	m.vote = nil
	m.addvote = nil
}

// SetFeedback sets the "feedback" field.
func (m *SuggestionMutation) SetFeedback(s string) {
	m.feedback = &s
}

// Feedback returns the value of the "feedback" field in the mutation.
func (m *SuggestionMutation) Feedback() (r string, exists bool) {
	v := m.feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedback returns the old "feedback" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldFeedback(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedback: %w", err)
	}
	return oldValue.Feedback, nil
}

// ClearFeedback clears the value of the "feedback" field.
func (m *SuggestionMutation) ClearFeedback() {
	m.feedback = nil
	m.clearedFields[suggestion.FieldFeedback] = struct{}{}
}

// FeedbackCleared returns if the "feedback" field was cleared in this mutation.
func (m *SuggestionMutation) FeedbackCleared() bool {
	_, ok := m.clearedFields[suggestion.FieldFeedback]
	return ok
}

// ResetFeedback resets all changes to the "feedback" field.
func (m *SuggestionMutation) ResetFeedback() {
	m.feedback = nil
	delete(m.clearedFields, suggestion.FieldFeedback)
}

// SetCreatedAt sets the "created_at" field.
func (m *SuggestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SuggestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SuggestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SuggestionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SuggestionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SuggestionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *SuggestionMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[suggestion.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *SuggestionMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *SuggestionMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *SuggestionMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the SuggestionMutation builder.
func (m *SuggestionMutation) Where(ps ...predicate.Suggestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SuggestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SuggestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Suggestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SuggestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SuggestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Suggestion).
func (m *SuggestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SuggestionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.project != nil {
		fields = append(fields, suggestion.FieldProjectID)
	}
	if m.prompt_slug != nil {
		fields = append(fields, suggestion.FieldPromptSlug)
	}
	if m.new_prompt_text != nil {
		fields = append(fields, suggestion.FieldNewPromptText)
	}
	if m.new_prompt_version != nil {
		fields = append(fields, suggestion.FieldNewPromptVersion)
	}
	if m.scores != nil {
		fields = append(fields, suggestion.FieldScores)
	}
	if m.recommendations != nil {
		fields = append(fields, suggestion.FieldRecommendations)
	}
	if m.status != nil {
		fields = append(fields, suggestion.FieldStatus)
	}
	if m.vote != nil {
		fields = append(fields, suggestion.FieldVote)
	}
	if m.feedback != nil {
		fields = append(fields, suggestion.FieldFeedback)
	}
	if m.created_at != nil {
		fields = append(fields, suggestion.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, suggestion.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SuggestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case suggestion.FieldProjectID:
		return m.ProjectID()
	case suggestion.FieldPromptSlug:
		return m.PromptSlug()
	case suggestion.FieldNewPromptText:
		return m.NewPromptText()
	case suggestion.FieldNewPromptVersion:
		return m.NewPromptVersion()
	case suggestion.FieldScores:
		return m.Scores()
	case suggestion.FieldRecommendations:
		return m.Recommendations()
	case suggestion.FieldStatus:
		return m.Status()
	case suggestion.FieldVote:
		return m.Vote()
	case suggestion.FieldFeedback:
		return m.Feedback()
	case suggestion.FieldCreatedAt:
		return m.CreatedAt()
	case suggestion.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SuggestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case suggestion.FieldProjectID:
		return m.OldProjectID(ctx)
	case suggestion.FieldPromptSlug:
		return m.OldPromptSlug(ctx)
	case suggestion.FieldNewPromptText:
		return m.OldNewPromptText(ctx)
	case suggestion.FieldNewPromptVersion:
		return m.OldNewPromptVersion(ctx)
	case suggestion.FieldScores:
		return m.OldScores(ctx)
	case suggestion.FieldRecommendations:
		return m.OldRecommendations(ctx)
	case suggestion.FieldStatus:
		return m.OldStatus(ctx)
	case suggestion.FieldVote:
		return m.OldVote(ctx)
	case suggestion.FieldFeedback:
		return m.OldFeedback(ctx)
	case suggestion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case suggestion.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Suggestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SuggestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case suggestion.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case suggestion.FieldPromptSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptSlug(v)
		return nil
	case suggestion.FieldNewPromptText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewPromptText(v)
		return nil
	case suggestion.FieldNewPromptVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewPromptVersion(v)
		return nil
	case suggestion.FieldScores:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScores(v)
		return nil
	case suggestion.FieldRecommendations:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendations(v)
		return nil
	case suggestion.FieldStatus:
		v, ok := value.(suggestion.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case suggestion.FieldVote:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVote(v)
		return nil
	case suggestion.FieldFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedback(v)
		return nil
	case suggestion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case suggestion.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Suggestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SuggestionMutation) AddedFields() []string {
	var fields []string
	if m.addnew_prompt_version != nil {
		fields = append(fields, suggestion.FieldNewPromptVersion)
	}
	if m.addvote != nil {
		fields = append(fields, suggestion.FieldVote)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SuggestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case suggestion.FieldNewPromptVersion:
		return m.AddedNewPromptVersion()
	case suggestion.FieldVote:
		return m.AddedVote()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SuggestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case suggestion.FieldNewPromptVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNewPromptVersion(v)
		return nil
	case suggestion.FieldVote:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVote(v)
		return nil
	}
	return fmt.Errorf("unknown Suggestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SuggestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(suggestion.FieldNewPromptText) {
		fields = append(fields, suggestion.FieldNewPromptText)
	}
	if m.FieldCleared(suggestion.FieldNewPromptVersion) {
		fields = append(fields, suggestion.FieldNewPromptVersion)
	}
	if m.FieldCleared(suggestion.FieldScores) {
		fields = append(fields, suggestion.FieldScores)
	}
	if m.FieldCleared(suggestion.FieldRecommendations) {
		fields = append(fields, suggestion.FieldRecommendations)
	}
	if m.FieldCleared(suggestion.FieldFeedback) {
		fields = append(fields, suggestion.FieldFeedback)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SuggestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SuggestionMutation) ClearField(name string) error {
	switch name {
	case suggestion.FieldNewPromptText:
		m.ClearNewPromptText()
		return nil
	case suggestion.FieldNewPromptVersion:
		m.ClearNewPromptVersion()
		return nil
	case suggestion.FieldScores:
		m.ClearScores()
		return nil
	case suggestion.FieldRecommendations:
		m.ClearRecommendations()
		return nil
	case suggestion.FieldFeedback:
		m.ClearFeedback()
		return nil
	}
	return fmt.Errorf("unknown Suggestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SuggestionMutation) ResetField(name string) error {
	switch name {
	case suggestion.FieldProjectID:
		m.ResetProjectID()
		return nil
	case suggestion.FieldPromptSlug:
		m.ResetPromptSlug()
		return nil
	case suggestion.FieldNewPromptText:
		m.ResetNewPromptText()
		return nil
	case suggestion.FieldNewPromptVersion:
		m.ResetNewPromptVersion()
		return nil
	case suggestion.FieldScores:
		m.ResetScores()
		return nil
	case suggestion.FieldRecommendations:
		m.ResetRecommendations()
		return nil
	case suggestion.FieldStatus:
		m.ResetStatus()
		return nil
	case suggestion.FieldVote:
		m.ResetVote()
		return nil
	case suggestion.FieldFeedback:
		m.ResetFeedback()
		return nil
	case suggestion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case suggestion.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Suggestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SuggestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, suggestion.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SuggestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case suggestion.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SuggestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SuggestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SuggestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, suggestion.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SuggestionMutation) EdgeCleared(name string) bool {
	switch name {
	case suggestion.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SuggestionMutation) ClearEdge(name string) error {
	switch name {
	case suggestion.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Suggestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SuggestionMutation) ResetEdge(name string) error {
	switch name {
	case suggestion.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown Suggestion edge %s", name)
}

// TraceMutation represents an operation that mutates the Trace nodes in the graph.
type TraceMutation struct {
	config
	op              Op
	typ             string
	id              *string
	conversation_id *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	project         *string
	clearedproject  bool
	spans           map[string]struct{}
	removedspans    map[string]struct{}
	clearedspans    bool
	done            bool
	oldValue        func(context.Context) (*Trace, error)
	predicates      []predicate.Trace
}

var _ ent.Mutation = (*TraceMutation)(nil)

// traceOption allows management of the mutation configuration using functional options.
type traceOption func(*TraceMutation)

// newTraceMutation creates new mutation for the Trace entity.
func newTraceMutation(c config, op Op, opts ...traceOption) *TraceMutation {
	m := &TraceMutation{
		config:        c,
		op:            op,
		typ:           TypeTrace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTraceID sets the ID field of the mutation.
func withTraceID(id string) traceOption {
	return func(m *TraceMutation) {
		var (
			err   error
			once  sync.Once
			value *Trace
		)
		m.oldValue = func(ctx context.Context) (*Trace, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Trace.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrace sets the old Trace of the mutation.
func withTrace(node *Trace) traceOption {
	return func(m *TraceMutation) {
		m.oldValue = func(context.Context) (*Trace, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TraceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TraceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Trace entities.
func (m *TraceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TraceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TraceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Trace.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *TraceMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *TraceMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Trace entity.
// If the Trace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *TraceMutation) ResetProjectID() {
	m.project = nil
}

// SetConversationID sets the "conversation_id" field.
func (m *TraceMutation) SetConversationID(s string) {
	m.conversation_id = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *TraceMutation) ConversationID() (r string, exists bool) {
	v := m.conversation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the Trace entity.
// If the Trace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceMutation) OldConversationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ClearConversationID clears the value of the "conversation_id" field.
func (m *TraceMutation) ClearConversationID() {
	m.conversation_id = nil
	m.clearedFields[trace.FieldConversationID] = struct{}{}
}

// ConversationIDCleared returns if the "conversation_id" field was cleared in this mutation.
func (m *TraceMutation) ConversationIDCleared() bool {
	_, ok := m.clearedFields[trace.FieldConversationID]
	return ok
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *TraceMutation) ResetConversationID() {
	m.conversation_id = nil
	delete(m.clearedFields, trace.FieldConversationID)
}

// SetCreatedAt sets the "created_at" field.
func (m *TraceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TraceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Trace entity.
// If the Trace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TraceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *TraceMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[trace.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *TraceMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *TraceMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *TraceMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddSpanIDs adds the "spans" edge to the Span entity by ids.
func (m *TraceMutation) AddSpanIDs(ids ...string) {
	if m.spans == nil {
		m.spans = make(map[string]struct{})
	}
	for i := range ids {
		m.spans[ids[i]] = struct{}{}
	}
}

// ClearSpans clears the "spans" edge to the Span entity.
func (m *TraceMutation) ClearSpans() {
	m.clearedspans = true
}

// SpansCleared reports if the "spans" edge to the Span entity was cleared.
func (m *TraceMutation) SpansCleared() bool {
	return m.clearedspans
}

// RemoveSpanIDs removes the "spans" edge to the Span entity by IDs.
func (m *TraceMutation) RemoveSpanIDs(ids ...string) {
	if m.removedspans == nil {
		m.removedspans = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.spans, ids[i])
		m.removedspans[ids[i]] = struct{}{}
	}
}

// RemovedSpans returns the removed IDs of the "spans" edge to the Span entity.
func (m *TraceMutation) RemovedSpansIDs() (ids []string) {
	for id := range m.removedspans {
		ids = append(ids, id)
	}
	return
}

// SpansIDs returns the "spans" edge IDs in the mutation.
func (m *TraceMutation) SpansIDs() (ids []string) {
	for id := range m.spans {
		ids = append(ids, id)
	}
	return
}

// ResetSpans resets all changes to the "spans" edge.
func (m *TraceMutation) ResetSpans() {
	m.spans = nil
	m.clearedspans = false
	m.removedspans = nil
}

// Where appends a list predicates to the TraceMutation builder.
func (m *TraceMutation) Where(ps ...predicate.Trace) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TraceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TraceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Trace, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TraceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TraceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Trace).
func (m *TraceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TraceMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.project != nil {
		fields = append(fields, trace.FieldProjectID)
	}
	if m.conversation_id != nil {
		fields = append(fields, trace.FieldConversationID)
	}
	if m.created_at != nil {
		fields = append(fields, trace.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TraceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trace.FieldProjectID:
		return m.ProjectID()
	case trace.FieldConversationID:
		return m.ConversationID()
	case trace.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TraceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trace.FieldProjectID:
		return m.OldProjectID(ctx)
	case trace.FieldConversationID:
		return m.OldConversationID(ctx)
	case trace.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Trace field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TraceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trace.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case trace.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case trace.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Trace field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TraceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TraceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TraceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Trace numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TraceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(trace.FieldConversationID) {
		fields = append(fields, trace.FieldConversationID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TraceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TraceMutation) ClearField(name string) error {
	switch name {
	case trace.FieldConversationID:
		m.ClearConversationID()
		return nil
	}
	return fmt.Errorf("unknown Trace nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TraceMutation) ResetField(name string) error {
	switch name {
	case trace.FieldProjectID:
		m.ResetProjectID()
		return nil
	case trace.FieldConversationID:
		m.ResetConversationID()
		return nil
	case trace.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Trace field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TraceMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, trace.EdgeProject)
	}
	if m.spans != nil {
		edges = append(edges, trace.EdgeSpans)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TraceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case trace.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case trace.EdgeSpans:
		ids := make([]ent.Value, 0, len(m.spans))
		for id := range m.spans {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TraceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedspans != nil {
		edges = append(edges, trace.EdgeSpans)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TraceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case trace.EdgeSpans:
		ids := make([]ent.Value, 0, len(m.removedspans))
		for id := range m.removedspans {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TraceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, trace.EdgeProject)
	}
	if m.clearedspans {
		edges = append(edges, trace.EdgeSpans)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TraceMutation) EdgeCleared(name string) bool {
	switch name {
	case trace.EdgeProject:
		return m.clearedproject
	case trace.EdgeSpans:
		return m.clearedspans
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TraceMutation) ClearEdge(name string) error {
	switch name {
	case trace.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Trace unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TraceMutation) ResetEdge(name string) error {
	switch name {
	case trace.EdgeProject:
		m.ResetProject()
		return nil
	case trace.EdgeSpans:
		m.ResetSpans()
		return nil
	}
	return fmt.Errorf("unknown Trace edge %s", name)
}
