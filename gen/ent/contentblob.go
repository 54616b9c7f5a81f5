// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/billfold/invoice-ingest/gen/ent/contentblob"
	"github.com/billfold/invoice-ingest/gen/ent/profile"
	"github.com/google/uuid"
)

// ContentBlob is the model entity for the ContentBlob schema.
type ContentBlob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// Hash holds the value of the "hash" field.
	Hash []byte `json:"hash,omitempty"`
	// ByteSize holds the value of the "byte_size" field.
	ByteSize int64 `json:"byte_size,omitempty"`
	// StorageRef holds the value of the "storage_ref" field.
	StorageRef string `json:"storage_ref,omitempty"`
	// FirstSeenAt holds the value of the "first_seen_at" field.
	FirstSeenAt time.Time `json:"first_seen_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContentBlobQuery when eager-loading is set.
	Edges        ContentBlobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContentBlobEdges holds the relations/edges for other nodes in the graph.
type ContentBlobEdges struct {
	// Profile holds the value of the profile edge.
	Profile *Profile `json:"profile,omitempty"`
	// Invoices holds the value of the invoices edge.
	Invoices []*Invoice `json:"invoices,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContentBlobEdges) ProfileOrErr() (*Profile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// InvoicesOrErr returns the Invoices value or an error if the edge
// was not loaded in eager-loading.
func (e ContentBlobEdges) InvoicesOrErr() ([]*Invoice, error) {
	if e.loadedTypes[1] {
		return e.Invoices, nil
	}
	return nil, &NotLoadedError{edge: "invoices"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContentBlob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contentblob.FieldHash:
			values[i] = new([]byte)
		case contentblob.FieldByteSize:
			values[i] = new(sql.NullInt64)
		case contentblob.FieldStorageRef:
			values[i] = new(sql.NullString)
		case contentblob.FieldFirstSeenAt:
			values[i] = new(sql.NullTime)
		case contentblob.FieldID, contentblob.FieldProfileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContentBlob fields.
func (_m *ContentBlob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contentblob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case contentblob.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				_m.ProfileID = *value
			}
		case contentblob.FieldHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field hash", values[i])
			} else if value != nil {
				_m.Hash = *value
			}
		case contentblob.FieldByteSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field byte_size", values[i])
			} else if value.Valid {
				_m.ByteSize = value.Int64
			}
		case contentblob.FieldStorageRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_ref", values[i])
			} else if value.Valid {
				_m.StorageRef = value.String
			}
		case contentblob.FieldFirstSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen_at", values[i])
			} else if value.Valid {
				_m.FirstSeenAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContentBlob.
// This includes values selected through modifiers, order, etc.
func (_m *ContentBlob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProfile queries the "profile" edge of the ContentBlob entity.
func (_m *ContentBlob) QueryProfile() *ProfileQuery {
	return NewContentBlobClient(_m.config).QueryProfile(_m)
}

// QueryInvoices queries the "invoices" edge of the ContentBlob entity.
func (_m *ContentBlob) QueryInvoices() *InvoiceQuery {
	return NewContentBlobClient(_m.config).QueryInvoices(_m)
}

// Update returns a builder for updating this ContentBlob.
// Note that you need to call ContentBlob.Unwrap() before calling this method if this ContentBlob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ContentBlob) Update() *ContentBlobUpdateOne {
	return NewContentBlobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ContentBlob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ContentBlob) Unwrap() *ContentBlob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContentBlob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ContentBlob) String() string {
	var builder strings.Builder
	builder.WriteString("ContentBlob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	builder.WriteString("hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.Hash))
	builder.WriteString(", ")
	builder.WriteString("byte_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.ByteSize))
	builder.WriteString(", ")
	builder.WriteString("storage_ref=")
	builder.WriteString(_m.StorageRef)
	builder.WriteString(", ")
	builder.WriteString("first_seen_at=")
	builder.WriteString(_m.FirstSeenAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ContentBlobs is a parsable slice of ContentBlob.
type ContentBlobs []*ContentBlob
