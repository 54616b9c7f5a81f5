// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/billfold/invoice-ingest/gen/ent/ingestjob"
	"github.com/billfold/invoice-ingest/gen/ent/jobbatch"
	"github.com/google/uuid"
)

// JobBatch is the model entity for the JobBatch schema.
type JobBatch struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// Seq holds the value of the "seq" field.
	Seq int `json:"seq,omitempty"`
	// Uids holds the value of the "uids" field.
	Uids json.RawMessage `json:"uids,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Extracted holds the value of the "extracted" field.
	Extracted uint32 `json:"extracted,omitempty"`
	// Duplicates holds the value of the "duplicates" field.
	Duplicates uint32 `json:"duplicates,omitempty"`
	// Failed holds the value of the "failed" field.
	Failed uint32 `json:"failed,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobBatchQuery when eager-loading is set.
	Edges        JobBatchEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobBatchEdges holds the relations/edges for other nodes in the graph.
type JobBatchEdges struct {
	// Job holds the value of the job edge.
	Job *IngestJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobBatchEdges) JobOrErr() (*IngestJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: ingestjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JobBatch) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case jobbatch.FieldUids:
			values[i] = new([]byte)
		case jobbatch.FieldSeq, jobbatch.FieldExtracted, jobbatch.FieldDuplicates, jobbatch.FieldFailed:
			values[i] = new(sql.NullInt64)
		case jobbatch.FieldStatus:
			values[i] = new(sql.NullString)
		case jobbatch.FieldID, jobbatch.FieldJobID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JobBatch fields.
func (_m *JobBatch) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case jobbatch.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case jobbatch.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case jobbatch.FieldSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seq", values[i])
			} else if value.Valid {
				_m.Seq = int(value.Int64)
			}
		case jobbatch.FieldUids:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field uids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Uids); err != nil {
					return fmt.Errorf("unmarshal field uids: %w", err)
				}
			}
		case jobbatch.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case jobbatch.FieldExtracted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field extracted", values[i])
			} else if value.Valid {
				_m.Extracted = uint32(value.Int64)
			}
		case jobbatch.FieldDuplicates:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duplicates", values[i])
			} else if value.Valid {
				_m.Duplicates = uint32(value.Int64)
			}
		case jobbatch.FieldFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed", values[i])
			} else if value.Valid {
				_m.Failed = uint32(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the JobBatch.
// This includes values selected through modifiers, order, etc.
func (_m *JobBatch) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the JobBatch entity.
func (_m *JobBatch) QueryJob() *IngestJobQuery {
	return NewJobBatchClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this JobBatch.
// Note that you need to call JobBatch.Unwrap() before calling this method if this JobBatch
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JobBatch) Update() *JobBatchUpdateOne {
	return NewJobBatchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JobBatch entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JobBatch) Unwrap() *JobBatch {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: JobBatch is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JobBatch) String() string {
	var builder strings.Builder
	builder.WriteString("JobBatch(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seq))
	builder.WriteString(", ")
	builder.WriteString("uids=")
	builder.WriteString(fmt.Sprintf("%v", _m.Uids))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("extracted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Extracted))
	builder.WriteString(", ")
	builder.WriteString("duplicates=")
	builder.WriteString(fmt.Sprintf("%v", _m.Duplicates))
	builder.WriteString(", ")
	builder.WriteString("failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Failed))
	builder.WriteByte(')')
	return builder.String()
}

// JobBatches is a parsable slice of JobBatch.
type JobBatches []*JobBatch
