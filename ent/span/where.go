// Code generated by ent, DO NOT EDIT.

package span

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/promptlens/promptlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Span {
	return predicate.Span(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Span {
	return predicate.Span(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Span {
	return predicate.Span(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Span {
	return predicate.Span(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Span {
	return predicate.Span(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Span {
	return predicate.Span(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Span {
	return predicate.Span(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Span {
	return predicate.Span(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Span {
	return predicate.Span(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Span {
	return predicate.Span(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Span {
	return predicate.Span(sql.FieldContainsFold(FieldID, id))
}

// TraceID applies equality check predicate on the "trace_id" field. It's identical to TraceIDEQ.
func TraceID(v string) predicate.Span {
	return predicate.Span(sql.FieldEQ(FieldTraceID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Span {
	return predicate.Span(sql.FieldEQ(FieldProjectID, v))
}

// ParentSpanID applies equality check predicate on the "parent_span_id" field. It's identical to ParentSpanIDEQ.
func ParentSpanID(v string) predicate.Span {
	return predicate.Span(sql.FieldEQ(FieldParentSpanID, v))
}

// PromptID applies equality check predicate on the "prompt_id" field. It's identical to PromptIDEQ.
func PromptID(v string) predicate.Span {
	return predicate.Span(sql.FieldEQ(FieldPromptID, v))
}

// StartTimeUnixNano applies equality check predicate on the "start_time_unix_nano" field. It's identical to StartTimeUnixNanoEQ.
func StartTimeUnixNano(v int64) predicate.Span {
	return predicate.Span(sql.FieldEQ(FieldStartTimeUnixNano, v))
}

// EndTimeUnixNano applies equality check predicate on the "end_time_unix_nano" field. It's identical to EndTimeUnixNanoEQ.
func EndTimeUnixNano(v int64) predicate.Span {
	return predicate.Span(sql.FieldEQ(FieldEndTimeUnixNano, v))
}

// Input applies equality check predicate on the "input" field. It's identical to InputEQ.
func Input(v string) predicate.Span {
	return predicate.Span(sql.FieldEQ(FieldInput, v))
}

// Operation applies equality check predicate on the "operation" field. It's identical to OperationEQ.
func Operation(v string) predicate.Span {
	return predicate.Span(sql.FieldEQ(FieldOperation, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Span {
	return predicate.Span(sql.FieldEQ(FieldCreatedAt, v))
}

// TraceIDEQ applies the EQ predicate on the "trace_id" field.
func TraceIDEQ(v string) predicate.Span {
	return predicate.Span(sql.FieldEQ(FieldTraceID, v))
}

// TraceIDNEQ applies the NEQ predicate on the "trace_id" field.
func TraceIDNEQ(v string) predicate.Span {
	return predicate.Span(sql.FieldNEQ(FieldTraceID, v))
}

// TraceIDIn applies the In predicate on the "trace_id" field.
func TraceIDIn(vs ...string) predicate.Span {
	return predicate.Span(sql.FieldIn(FieldTraceID, vs...))
}

// TraceIDNotIn applies the NotIn predicate on the "trace_id" field.
func TraceIDNotIn(vs ...string) predicate.Span {
	return predicate.Span(sql.FieldNotIn(FieldTraceID, vs...))
}

// TraceIDGT applies the GT predicate on the "trace_id" field.
func TraceIDGT(v string) predicate.Span {
	return predicate.Span(sql.FieldGT(FieldTraceID, v))
}

// TraceIDGTE applies the GTE predicate on the "trace_id" field.
func TraceIDGTE(v string) predicate.Span {
	return predicate.Span(sql.FieldGTE(FieldTraceID, v))
}

// TraceIDLT applies the LT predicate on the "trace_id" field.
func TraceIDLT(v string) predicate.Span {
	return predicate.Span(sql.FieldLT(FieldTraceID, v))
}

// TraceIDLTE applies the LTE predicate on the "trace_id" field.
func TraceIDLTE(v string) predicate.Span {
	return predicate.Span(sql.FieldLTE(FieldTraceID, v))
}

// TraceIDContains applies the Contains predicate on the "trace_id" field.
func TraceIDContains(v string) predicate.Span {
	return predicate.Span(sql.FieldContains(FieldTraceID, v))
}

// TraceIDHasPrefix applies the HasPrefix predicate on the "trace_id" field.
func TraceIDHasPrefix(v string) predicate.Span {
	return predicate.Span(sql.FieldHasPrefix(FieldTraceID, v))
}

// TraceIDHasSuffix applies the HasSuffix predicate on the "trace_id" field.
func TraceIDHasSuffix(v string) predicate.Span {
	return predicate.Span(sql.FieldHasSuffix(FieldTraceID, v))
}

// TraceIDEqualFold applies the EqualFold predicate on the "trace_id" field.
func TraceIDEqualFold(v string) predicate.Span {
	return predicate.Span(sql.FieldEqualFold(FieldTraceID, v))
}

// TraceIDContainsFold applies the ContainsFold predicate on the "trace_id" field.
func TraceIDContainsFold(v string) predicate.Span {
	return predicate.Span(sql.FieldContainsFold(FieldTraceID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Span {
	return predicate.Span(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Span {
	return predicate.Span(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Span {
	return predicate.Span(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Span {
	return predicate.Span(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Span {
	return predicate.Span(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Span {
	return predicate.Span(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Span {
	return predicate.Span(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Span {
	return predicate.Span(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Span {
	return predicate.Span(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Span {
	return predicate.Span(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Span {
	return predicate.Span(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Span {
	return predicate.Span(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Span {
	return predicate.Span(sql.FieldContainsFold(FieldProjectID, v))
}

// ParentSpanIDEQ applies the EQ predicate on the "parent_span_id" field.
func ParentSpanIDEQ(v string) predicate.Span {
	return predicate.Span(sql.FieldEQ(FieldParentSpanID, v))
}

// ParentSpanIDNEQ applies the NEQ predicate on the "parent_span_id" field.
func ParentSpanIDNEQ(v string) predicate.Span {
	return predicate.Span(sql.FieldNEQ(FieldParentSpanID, v))
}

// ParentSpanIDIn applies the In predicate on the "parent_span_id" field.
func ParentSpanIDIn(vs ...string) predicate.Span {
	return predicate.Span(sql.FieldIn(FieldParentSpanID, vs...))
}

// ParentSpanIDNotIn applies the NotIn predicate on the "parent_span_id" field.
func ParentSpanIDNotIn(vs ...string) predicate.Span {
	return predicate.Span(sql.FieldNotIn(FieldParentSpanID, vs...))
}

// ParentSpanIDGT applies the GT predicate on the "parent_span_id" field.
func ParentSpanIDGT(v string) predicate.Span {
	return predicate.Span(sql.FieldGT(FieldParentSpanID, v))
}

// ParentSpanIDGTE applies the GTE predicate on the "parent_span_id" field.
func ParentSpanIDGTE(v string) predicate.Span {
	return predicate.Span(sql.FieldGTE(FieldParentSpanID, v))
}

// ParentSpanIDLT applies the LT predicate on the "parent_span_id" field.
func ParentSpanIDLT(v string) predicate.Span {
	return predicate.Span(sql.FieldLT(FieldParentSpanID, v))
}

// ParentSpanIDLTE applies the LTE predicate on the "parent_span_id" field.
func ParentSpanIDLTE(v string) predicate.Span {
	return predicate.Span(sql.FieldLTE(FieldParentSpanID, v))
}

// ParentSpanIDContains applies the Contains predicate on the "parent_span_id" field.
func ParentSpanIDContains(v string) predicate.Span {
	return predicate.Span(sql.FieldContains(FieldParentSpanID, v))
}

// ParentSpanIDHasPrefix applies the HasPrefix predicate on the "parent_span_id" field.
func ParentSpanIDHasPrefix(v string) predicate.Span {
	return predicate.Span(sql.FieldHasPrefix(FieldParentSpanID, v))
}

// ParentSpanIDHasSuffix applies the HasSuffix predicate on the "parent_span_id" field.
func ParentSpanIDHasSuffix(v string) predicate.Span {
	return predicate.Span(sql.FieldHasSuffix(FieldParentSpanID, v))
}

// ParentSpanIDIsNil applies the IsNil predicate on the "parent_span_id" field.
func ParentSpanIDIsNil() predicate.Span {
	return predicate.Span(sql.FieldIsNull(FieldParentSpanID))
}

// ParentSpanIDNotNil applies the NotNil predicate on the "parent_span_id" field.
func ParentSpanIDNotNil() predicate.Span {
	return predicate.Span(sql.FieldNotNull(FieldParentSpanID))
}

// ParentSpanIDEqualFold applies the EqualFold predicate on the "parent_span_id" field.
func ParentSpanIDEqualFold(v string) predicate.Span {
	return predicate.Span(sql.FieldEqualFold(FieldParentSpanID, v))
}

// ParentSpanIDContainsFold applies the ContainsFold predicate on the "parent_span_id" field.
func ParentSpanIDContainsFold(v string) predicate.Span {
	return predicate.Span(sql.FieldContainsFold(FieldParentSpanID, v))
}

// PromptIDEQ applies the EQ predicate on the "prompt_id" field.
func PromptIDEQ(v string) predicate.Span {
	return predicate.Span(sql.FieldEQ(FieldPromptID, v))
}

// PromptIDNEQ applies the NEQ predicate on the "prompt_id" field.
func PromptIDNEQ(v string) predicate.Span {
	return predicate.Span(sql.FieldNEQ(FieldPromptID, v))
}

// PromptIDIn applies the In predicate on the "prompt_id" field.
func PromptIDIn(vs ...string) predicate.Span {
	return predicate.Span(sql.FieldIn(FieldPromptID, vs...))
}

// PromptIDNotIn applies the NotIn predicate on the "prompt_id" field.
func PromptIDNotIn(vs ...string) predicate.Span {
	return predicate.Span(sql.FieldNotIn(FieldPromptID, vs...))
}

// PromptIDGT applies the GT predicate on the "prompt_id" field.
func PromptIDGT(v string) predicate.Span {
	return predicate.Span(sql.FieldGT(FieldPromptID, v))
}

// PromptIDGTE applies the GTE predicate on the "prompt_id" field.
func PromptIDGTE(v string) predicate.Span {
	return predicate.Span(sql.FieldGTE(FieldPromptID, v))
}

// PromptIDLT applies the LT predicate on the "prompt_id" field.
func PromptIDLT(v string) predicate.Span {
	return predicate.Span(sql.FieldLT(FieldPromptID, v))
}

// PromptIDLTE applies the LTE predicate on the "prompt_id" field.
func PromptIDLTE(v string) predicate.Span {
	return predicate.Span(sql.FieldLTE(FieldPromptID, v))
}

// PromptIDContains applies the Contains predicate on the "prompt_id" field.
func PromptIDContains(v string) predicate.Span {
	return predicate.Span(sql.FieldContains(FieldPromptID, v))
}

// PromptIDHasPrefix applies the HasPrefix predicate on the "prompt_id" field.
func PromptIDHasPrefix(v string) predicate.Span {
	return predicate.Span(sql.FieldHasPrefix(FieldPromptID, v))
}

// PromptIDHasSuffix applies the HasSuffix predicate on the "prompt_id" field.
func PromptIDHasSuffix(v string) predicate.Span {
	return predicate.Span(sql.FieldHasSuffix(FieldPromptID, v))
}

// PromptIDIsNil applies the IsNil predicate on the "prompt_id" field.
func PromptIDIsNil() predicate.Span {
	return predicate.Span(sql.FieldIsNull(FieldPromptID))
}

// PromptIDNotNil applies the NotNil predicate on the "prompt_id" field.
func PromptIDNotNil() predicate.Span {
	return predicate.Span(sql.FieldNotNull(FieldPromptID))
}

// PromptIDEqualFold applies the EqualFold predicate on the "prompt_id" field.
func PromptIDEqualFold(v string) predicate.Span {
	return predicate.Span(sql.FieldEqualFold(FieldPromptID, v))
}

// PromptIDContainsFold applies the ContainsFold predicate on the "prompt_id" field.
func PromptIDContainsFold(v string) predicate.Span {
	return predicate.Span(sql.FieldContainsFold(FieldPromptID, v))
}

// StartTimeUnixNanoEQ applies the EQ predicate on the "start_time_unix_nano" field.
func StartTimeUnixNanoEQ(v int64) predicate.Span {
	return predicate.Span(sql.FieldEQ(FieldStartTimeUnixNano, v))
}

// StartTimeUnixNanoNEQ applies the NEQ predicate on the "start_time_unix_nano" field.
func StartTimeUnixNanoNEQ(v int64) predicate.Span {
	return predicate.Span(sql.FieldNEQ(FieldStartTimeUnixNano, v))
}

// StartTimeUnixNanoIn applies the In predicate on the "start_time_unix_nano" field.
func StartTimeUnixNanoIn(vs ...int64) predicate.Span {
	return predicate.Span(sql.FieldIn(FieldStartTimeUnixNano, vs...))
}

// StartTimeUnixNanoNotIn applies the NotIn predicate on the "start_time_unix_nano" field.
func StartTimeUnixNanoNotIn(vs ...int64) predicate.Span {
	return predicate.Span(sql.FieldNotIn(FieldStartTimeUnixNano, vs...))
}

// StartTimeUnixNanoGT applies the GT predicate on the "start_time_unix_nano" field.
func StartTimeUnixNanoGT(v int64) predicate.Span {
	return predicate.Span(sql.FieldGT(FieldStartTimeUnixNano, v))
}

// StartTimeUnixNanoGTE applies the GTE predicate on the "start_time_unix_nano" field.
func StartTimeUnixNanoGTE(v int64) predicate.Span {
	return predicate.Span(sql.FieldGTE(FieldStartTimeUnixNano, v))
}

// StartTimeUnixNanoLT applies the LT predicate on the "start_time_unix_nano" field.
func StartTimeUnixNanoLT(v int64) predicate.Span {
	return predicate.Span(sql.FieldLT(FieldStartTimeUnixNano, v))
}

// StartTimeUnixNanoLTE applies the LTE predicate on the "start_time_unix_nano" field.
func StartTimeUnixNanoLTE(v int64) predicate.Span {
	return predicate.Span(sql.FieldLTE(FieldStartTimeUnixNano, v))
}

// EndTimeUnixNanoEQ applies the EQ predicate on the "end_time_unix_nano" field.
func EndTimeUnixNanoEQ(v int64) predicate.Span {
	return predicate.Span(sql.FieldEQ(FieldEndTimeUnixNano, v))
}

// EndTimeUnixNanoNEQ applies the NEQ predicate on the "end_time_unix_nano" field.
func EndTimeUnixNanoNEQ(v int64) predicate.Span {
	return predicate.Span(sql.FieldNEQ(FieldEndTimeUnixNano, v))
}

// EndTimeUnixNanoIn applies the In predicate on the "end_time_unix_nano" field.
func EndTimeUnixNanoIn(vs ...int64) predicate.Span {
	return predicate.Span(sql.FieldIn(FieldEndTimeUnixNano, vs...))
}

// EndTimeUnixNanoNotIn applies the NotIn predicate on the "end_time_unix_nano" field.
func EndTimeUnixNanoNotIn(vs ...int64) predicate.Span {
	return predicate.Span(sql.FieldNotIn(FieldEndTimeUnixNano, vs...))
}

// EndTimeUnixNanoGT applies the GT predicate on the "end_time_unix_nano" field.
func EndTimeUnixNanoGT(v int64) predicate.Span {
	return predicate.Span(sql.FieldGT(FieldEndTimeUnixNano, v))
}

// EndTimeUnixNanoGTE applies the GTE predicate on the "end_time_unix_nano" field.
func EndTimeUnixNanoGTE(v int64) predicate.Span {
	return predicate.Span(sql.FieldGTE(FieldEndTimeUnixNano, v))
}

// EndTimeUnixNanoLT applies the LT predicate on the "end_time_unix_nano" field.
func EndTimeUnixNanoLT(v int64) predicate.Span {
	return predicate.Span(sql.FieldLT(FieldEndTimeUnixNano, v))
}

// EndTimeUnixNanoLTE applies the LTE predicate on the "end_time_unix_nano" field.
func EndTimeUnixNanoLTE(v int64) predicate.Span {
	return predicate.Span(sql.FieldLTE(FieldEndTimeUnixNano, v))
}

// InputEQ applies the EQ predicate on the "input" field.
func InputEQ(v string) predicate.Span {
	return predicate.Span(sql.FieldEQ(FieldInput, v))
}

// InputNEQ applies the NEQ predicate on the "input" field.
func InputNEQ(v string) predicate.Span {
	return predicate.Span(sql.FieldNEQ(FieldInput, v))
}

// InputIn applies the In predicate on the "input" field.
func InputIn(vs ...string) predicate.Span {
	return predicate.Span(sql.FieldIn(FieldInput, vs...))
}

// InputNotIn applies the NotIn predicate on the "input" field.
func InputNotIn(vs ...string) predicate.Span {
	return predicate.Span(sql.FieldNotIn(FieldInput, vs...))
}

// InputGT applies the GT predicate on the "input" field.
func InputGT(v string) predicate.Span {
	return predicate.Span(sql.FieldGT(FieldInput, v))
}

// InputGTE applies the GTE predicate on the "input" field.
func InputGTE(v string) predicate.Span {
	return predicate.Span(sql.FieldGTE(FieldInput, v))
}

// InputLT applies the LT predicate on the "input" field.
func InputLT(v string) predicate.Span {
	return predicate.Span(sql.FieldLT(FieldInput, v))
}

// InputLTE applies the LTE predicate on the "input" field.
func InputLTE(v string) predicate.Span {
	return predicate.Span(sql.FieldLTE(FieldInput, v))
}

// InputContains applies the Contains predicate on the "input" field.
func InputContains(v string) predicate.Span {
	return predicate.Span(sql.FieldContains(FieldInput, v))
}

// InputHasPrefix applies the HasPrefix predicate on the "input" field.
func InputHasPrefix(v string) predicate.Span {
	return predicate.Span(sql.FieldHasPrefix(FieldInput, v))
}

// InputHasSuffix applies the HasSuffix predicate on the "input" field.
func InputHasSuffix(v string) predicate.Span {
	return predicate.Span(sql.FieldHasSuffix(FieldInput, v))
}

// InputIsNil applies the IsNil predicate on the "input" field.
func InputIsNil() predicate.Span {
	return predicate.Span(sql.FieldIsNull(FieldInput))
}

// InputNotNil applies the NotNil predicate on the "input" field.
func InputNotNil() predicate.Span {
	return predicate.Span(sql.FieldNotNull(FieldInput))
}

// InputEqualFold applies the EqualFold predicate on the "input" field.
func InputEqualFold(v string) predicate.Span {
	return predicate.Span(sql.FieldEqualFold(FieldInput, v))
}

// InputContainsFold applies the ContainsFold predicate on the "input" field.
func InputContainsFold(v string) predicate.Span {
	return predicate.Span(sql.FieldContainsFold(FieldInput, v))
}

// OutputIsNil applies the IsNil predicate on the "output" field.
func OutputIsNil() predicate.Span {
	return predicate.Span(sql.FieldIsNull(FieldOutput))
}

// OutputNotNil applies the NotNil predicate on the "output" field.
func OutputNotNil() predicate.Span {
	return predicate.Span(sql.FieldNotNull(FieldOutput))
}

// InputParamsIsNil applies the IsNil predicate on the "input_params" field.
func InputParamsIsNil() predicate.Span {
	return predicate.Span(sql.FieldIsNull(FieldInputParams))
}

// InputParamsNotNil applies the NotNil predicate on the "input_params" field.
func InputParamsNotNil() predicate.Span {
	return predicate.Span(sql.FieldNotNull(FieldInputParams))
}

// OutputParamsIsNil applies the IsNil predicate on the "output_params" field.
func OutputParamsIsNil() predicate.Span {
	return predicate.Span(sql.FieldIsNull(FieldOutputParams))
}

// OutputParamsNotNil applies the NotNil predicate on the "output_params" field.
func OutputParamsNotNil() predicate.Span {
	return predicate.Span(sql.FieldNotNull(FieldOutputParams))
}

// OperationEQ applies the EQ predicate on the "operation" field.
func OperationEQ(v string) predicate.Span {
	return predicate.Span(sql.FieldEQ(FieldOperation, v))
}

// OperationNEQ applies the NEQ predicate on the "operation" field.
func OperationNEQ(v string) predicate.Span {
	return predicate.Span(sql.FieldNEQ(FieldOperation, v))
}

// OperationIn applies the In predicate on the "operation" field.
func OperationIn(vs ...string) predicate.Span {
	return predicate.Span(sql.FieldIn(FieldOperation, vs...))
}

// OperationNotIn applies the NotIn predicate on the "operation" field.
func OperationNotIn(vs ...string) predicate.Span {
	return predicate.Span(sql.FieldNotIn(FieldOperation, vs...))
}

// OperationGT applies the GT predicate on the "operation" field.
func OperationGT(v string) predicate.Span {
	return predicate.Span(sql.FieldGT(FieldOperation, v))
}

// OperationGTE applies the GTE predicate on the "operation" field.
func OperationGTE(v string) predicate.Span {
	return predicate.Span(sql.FieldGTE(FieldOperation, v))
}

// OperationLT applies the LT predicate on the "operation" field.
func OperationLT(v string) predicate.Span {
	return predicate.Span(sql.FieldLT(FieldOperation, v))
}

// OperationLTE applies the LTE predicate on the "operation" field.
func OperationLTE(v string) predicate.Span {
	return predicate.Span(sql.FieldLTE(FieldOperation, v))
}

// OperationContains applies the Contains predicate on the "operation" field.
func OperationContains(v string) predicate.Span {
	return predicate.Span(sql.FieldContains(FieldOperation, v))
}

// OperationHasPrefix applies the HasPrefix predicate on the "operation" field.
func OperationHasPrefix(v string) predicate.Span {
	return predicate.Span(sql.FieldHasPrefix(FieldOperation, v))
}

// OperationHasSuffix applies the HasSuffix predicate on the "operation" field.
func OperationHasSuffix(v string) predicate.Span {
	return predicate.Span(sql.FieldHasSuffix(FieldOperation, v))
}

// OperationIsNil applies the IsNil predicate on the "operation" field.
func OperationIsNil() predicate.Span {
	return predicate.Span(sql.FieldIsNull(FieldOperation))
}

// OperationNotNil applies the NotNil predicate on the "operation" field.
func OperationNotNil() predicate.Span {
	return predicate.Span(sql.FieldNotNull(FieldOperation))
}

// OperationEqualFold applies the EqualFold predicate on the "operation" field.
func OperationEqualFold(v string) predicate.Span {
	return predicate.Span(sql.FieldEqualFold(FieldOperation, v))
}

// OperationContainsFold applies the ContainsFold predicate on the "operation" field.
func OperationContainsFold(v string) predicate.Span {
	return predicate.Span(sql.FieldContainsFold(FieldOperation, v))
}

// MetadataAttributesIsNil applies the IsNil predicate on the "metadata_attributes" field.
func MetadataAttributesIsNil() predicate.Span {
	return predicate.Span(sql.FieldIsNull(FieldMetadataAttributes))
}

// MetadataAttributesNotNil applies the NotNil predicate on the "metadata_attributes" field.
func MetadataAttributesNotNil() predicate.Span {
	return predicate.Span(sql.FieldNotNull(FieldMetadataAttributes))
}

// FeedbackScoreIsNil applies the IsNil predicate on the "feedback_score" field.
func FeedbackScoreIsNil() predicate.Span {
	return predicate.Span(sql.FieldIsNull(FieldFeedbackScore))
}

// FeedbackScoreNotNil applies the NotNil predicate on the "feedback_score" field.
func FeedbackScoreNotNil() predicate.Span {
	return predicate.Span(sql.FieldNotNull(FieldFeedbackScore))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Span {
	return predicate.Span(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Span {
	return predicate.Span(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Span {
	return predicate.Span(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Span {
	return predicate.Span(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Span {
	return predicate.Span(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Span {
	return predicate.Span(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Span {
	return predicate.Span(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Span {
	return predicate.Span(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTrace applies the HasEdge predicate on the "trace" edge.
func HasTrace() predicate.Span {
	return predicate.Span(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TraceTable, TraceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTraceWith applies the HasEdge predicate on the "trace" edge with a given conditions (other predicates).
func HasTraceWith(preds ...predicate.Trace) predicate.Span {
	return predicate.Span(func(s *sql.Selector) {
		step := newTraceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Span) predicate.Span {
	return predicate.Span(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Span) predicate.Span {
	return predicate.Span(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Span) predicate.Span {
	return predicate.Span(sql.NotPredicates(p))
}
