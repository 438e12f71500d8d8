// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/promptlens/promptlens/ent/backtestrun"
	"github.com/promptlens/promptlens/ent/job"
	"github.com/promptlens/promptlens/ent/project"
	"github.com/promptlens/promptlens/ent/prompt"
	"github.com/promptlens/promptlens/ent/schema"
	"github.com/promptlens/promptlens/ent/span"
	"github.com/promptlens/promptlens/ent/suggestion"
	"github.com/promptlens/promptlens/ent/trace"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	backtestrunFields := schema.BacktestRun{}.Fields()
	_ = backtestrunFields
	// backtestrunDescCreatedAt is the schema descriptor for created_at field.
	backtestrunDescCreatedAt := backtestrunFields[5].Descriptor()
	// backtestrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	backtestrun.DefaultCreatedAt = backtestrunDescCreatedAt.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[8].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[9].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[2].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	promptFields := schema.Prompt{}.Fields()
	_ = promptFields
	// promptDescVersion is the schema descriptor for version field.
	promptDescVersion := promptFields[3].Descriptor()
	// prompt.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	prompt.VersionValidator = promptDescVersion.Validators[0].(func(int) error)
	// promptDescIsActive is the schema descriptor for is_active field.
	promptDescIsActive := promptFields[11].Descriptor()
	// prompt.DefaultIsActive holds the default value on creation for the is_active field.
	prompt.DefaultIsActive = promptDescIsActive.Default.(bool)
	// promptDescCreatedAt is the schema descriptor for created_at field.
	promptDescCreatedAt := promptFields[12].Descriptor()
	// prompt.DefaultCreatedAt holds the default value on creation for the created_at field.
	prompt.DefaultCreatedAt = promptDescCreatedAt.Default.(func() time.Time)
	// promptDescUpdatedAt is the schema descriptor for updated_at field.
	promptDescUpdatedAt := promptFields[13].Descriptor()
	// prompt.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	prompt.DefaultUpdatedAt = promptDescUpdatedAt.Default.(func() time.Time)
	// prompt.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	prompt.UpdateDefaultUpdatedAt = promptDescUpdatedAt.UpdateDefault.(func() time.Time)
	spanFields := schema.Span{}.Fields()
	_ = spanFields
	// spanDescCreatedAt is the schema descriptor for created_at field.
	spanDescCreatedAt := spanFields[14].Descriptor()
	// span.DefaultCreatedAt holds the default value on creation for the created_at field.
	span.DefaultCreatedAt = spanDescCreatedAt.Default.(func() time.Time)
	// spanDescID is the schema descriptor for id field.
	spanDescID := spanFields[0].Descriptor()
	// span.IDValidator is a validator for the "id" field. It is called by the builders before save.
	span.IDValidator = spanDescID.Validators[0].(func(string) error)
	suggestionFields := schema.Suggestion{}.Fields()
	_ = suggestionFields
	// suggestionDescVote is the schema descriptor for vote field.
	suggestionDescVote := suggestionFields[8].Descriptor()
	// suggestion.DefaultVote holds the default value on creation for the vote field.
	suggestion.DefaultVote = suggestionDescVote.Default.(int)
	// suggestion.VoteValidator is a validator for the "vote" field. It is called by the builders before save.
	suggestion.VoteValidator = func() func(int) error {
		validators := suggestionDescVote.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(vote int) error {
			for _, fn := range fns {
				if err := fn(vote); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// suggestionDescCreatedAt is the schema descriptor for created_at field.
	suggestionDescCreatedAt := suggestionFields[10].Descriptor()
	// suggestion.DefaultCreatedAt holds the default value on creation for the created_at field.
	suggestion.DefaultCreatedAt = suggestionDescCreatedAt.Default.(func() time.Time)
	// suggestionDescUpdatedAt is the schema descriptor for updated_at field.
	suggestionDescUpdatedAt := suggestionFields[11].Descriptor()
	// suggestion.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	suggestion.DefaultUpdatedAt = suggestionDescUpdatedAt.Default.(func() time.Time)
	// suggestion.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	suggestion.UpdateDefaultUpdatedAt = suggestionDescUpdatedAt.UpdateDefault.(func() time.Time)
	traceFields := schema.Trace{}.Fields()
	_ = traceFields
	// traceDescCreatedAt is the schema descriptor for created_at field.
	traceDescCreatedAt := traceFields[3].Descriptor()
	// trace.DefaultCreatedAt holds the default value on creation for the created_at field.
	trace.DefaultCreatedAt = traceDescCreatedAt.Default.(func() time.Time)
}
