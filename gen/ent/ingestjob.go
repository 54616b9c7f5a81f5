// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/billfold/invoice-ingest/gen/ent/ingestjob"
	"github.com/billfold/invoice-ingest/gen/ent/profile"
	"github.com/google/uuid"
)

// IngestJob is the model entity for the IngestJob schema.
type IngestJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// Phase holds the value of the "phase" field.
	Phase string `json:"phase,omitempty"`
	// Folder holds the value of the "folder" field.
	Folder string `json:"folder,omitempty"`
	// Criteria holds the value of the "criteria" field.
	Criteria string `json:"criteria,omitempty"`
	// Cursor holds the value of the "cursor" field.
	Cursor uint32 `json:"cursor,omitempty"`
	// Scanned holds the value of the "scanned" field.
	Scanned uint32 `json:"scanned,omitempty"`
	// Matched holds the value of the "matched" field.
	Matched uint32 `json:"matched,omitempty"`
	// Extracted holds the value of the "extracted" field.
	Extracted uint32 `json:"extracted,omitempty"`
	// Duplicates holds the value of the "duplicates" field.
	Duplicates uint32 `json:"duplicates,omitempty"`
	// Failed holds the value of the "failed" field.
	Failed uint32 `json:"failed,omitempty"`
	// ErrorLog holds the value of the "error_log" field.
	ErrorLog json.RawMessage `json:"error_log,omitempty"`
	// Cancelled holds the value of the "cancelled" field.
	Cancelled bool `json:"cancelled,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IngestJobQuery when eager-loading is set.
	Edges        IngestJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IngestJobEdges holds the relations/edges for other nodes in the graph.
type IngestJobEdges struct {
	// Profile holds the value of the profile edge.
	Profile *Profile `json:"profile,omitempty"`
	// Batches holds the value of the batches edge.
	Batches []*JobBatch `json:"batches,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IngestJobEdges) ProfileOrErr() (*Profile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// BatchesOrErr returns the Batches value or an error if the edge
// was not loaded in eager-loading.
func (e IngestJobEdges) BatchesOrErr() ([]*JobBatch, error) {
	if e.loadedTypes[1] {
		return e.Batches, nil
	}
	return nil, &NotLoadedError{edge: "batches"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IngestJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ingestjob.FieldErrorLog:
			values[i] = new([]byte)
		case ingestjob.FieldCancelled:
			values[i] = new(sql.NullBool)
		case ingestjob.FieldCursor, ingestjob.FieldScanned, ingestjob.FieldMatched, ingestjob.FieldExtracted, ingestjob.FieldDuplicates, ingestjob.FieldFailed:
			values[i] = new(sql.NullInt64)
		case ingestjob.FieldPhase, ingestjob.FieldFolder, ingestjob.FieldCriteria:
			values[i] = new(sql.NullString)
		case ingestjob.FieldStartedAt, ingestjob.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case ingestjob.FieldID, ingestjob.FieldProfileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IngestJob fields.
func (_m *IngestJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ingestjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case ingestjob.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				_m.ProfileID = *value
			}
		case ingestjob.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = value.String
			}
		case ingestjob.FieldFolder:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field folder", values[i])
			} else if value.Valid {
				_m.Folder = value.String
			}
		case ingestjob.FieldCriteria:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field criteria", values[i])
			} else if value.Valid {
				_m.Criteria = value.String
			}
		case ingestjob.FieldCursor:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cursor", values[i])
			} else if value.Valid {
				_m.Cursor = uint32(value.Int64)
			}
		case ingestjob.FieldScanned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scanned", values[i])
			} else if value.Valid {
				_m.Scanned = uint32(value.Int64)
			}
		case ingestjob.FieldMatched:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field matched", values[i])
			} else if value.Valid {
				_m.Matched = uint32(value.Int64)
			}
		case ingestjob.FieldExtracted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field extracted", values[i])
			} else if value.Valid {
				_m.Extracted = uint32(value.Int64)
			}
		case ingestjob.FieldDuplicates:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duplicates", values[i])
			} else if value.Valid {
				_m.Duplicates = uint32(value.Int64)
			}
		case ingestjob.FieldFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed", values[i])
			} else if value.Valid {
				_m.Failed = uint32(value.Int64)
			}
		case ingestjob.FieldErrorLog:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field error_log", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ErrorLog); err != nil {
					return fmt.Errorf("unmarshal field error_log: %w", err)
				}
			}
		case ingestjob.FieldCancelled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cancelled", values[i])
			} else if value.Valid {
				_m.Cancelled = value.Bool
			}
		case ingestjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case ingestjob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IngestJob.
// This includes values selected through modifiers, order, etc.
func (_m *IngestJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProfile queries the "profile" edge of the IngestJob entity.
func (_m *IngestJob) QueryProfile() *ProfileQuery {
	return NewIngestJobClient(_m.config).QueryProfile(_m)
}

// QueryBatches queries the "batches" edge of the IngestJob entity.
func (_m *IngestJob) QueryBatches() *JobBatchQuery {
	return NewIngestJobClient(_m.config).QueryBatches(_m)
}

// Update returns a builder for updating this IngestJob.
// Note that you need to call IngestJob.Unwrap() before calling this method if this IngestJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IngestJob) Update() *IngestJobUpdateOne {
	return NewIngestJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IngestJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IngestJob) Unwrap() *IngestJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IngestJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IngestJob) String() string {
	var builder strings.Builder
	builder.WriteString("IngestJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(_m.Phase)
	builder.WriteString(", ")
	builder.WriteString("folder=")
	builder.WriteString(_m.Folder)
	builder.WriteString(", ")
	builder.WriteString("criteria=")
	builder.WriteString(_m.Criteria)
	builder.WriteString(", ")
	builder.WriteString("cursor=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cursor))
	builder.WriteString(", ")
	builder.WriteString("scanned=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scanned))
	builder.WriteString(", ")
	builder.WriteString("matched=")
	builder.WriteString(fmt.Sprintf("%v", _m.Matched))
	builder.WriteString(", ")
	builder.WriteString("extracted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Extracted))
	builder.WriteString(", ")
	builder.WriteString("duplicates=")
	builder.WriteString(fmt.Sprintf("%v", _m.Duplicates))
	builder.WriteString(", ")
	builder.WriteString("failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Failed))
	builder.WriteString(", ")
	builder.WriteString("error_log=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorLog))
	builder.WriteString(", ")
	builder.WriteString("cancelled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cancelled))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// IngestJobs is a parsable slice of IngestJob.
type IngestJobs []*IngestJob
