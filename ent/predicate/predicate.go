// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BacktestRun is the predicate function for backtestrun builders.
type BacktestRun func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Prompt is the predicate function for prompt builders.
type Prompt func(*sql.Selector)

// Span is the predicate function for span builders.
type Span func(*sql.Selector)

// Suggestion is the predicate function for suggestion builders.
type Suggestion func(*sql.Selector)

// Trace is the predicate function for trace builders.
type Trace func(*sql.Selector)
