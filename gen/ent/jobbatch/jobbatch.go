// Code generated by ent, DO NOT EDIT.

package jobbatch

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the jobbatch type in the database.
	Label = "job_batch"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldSeq holds the string denoting the seq field in the database.
	FieldSeq = "seq"
	// FieldUids holds the string denoting the uids field in the database.
	FieldUids = "uids"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldExtracted holds the string denoting the extracted field in the database.
	FieldExtracted = "extracted"
	// FieldDuplicates holds the string denoting the duplicates field in the database.
	FieldDuplicates = "duplicates"
	// FieldFailed holds the string denoting the failed field in the database.
	FieldFailed = "failed"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// Table holds the table name of the jobbatch in the database.
	Table = "job_batches"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "job_batches"
	// JobInverseTable is the table name for the IngestJob entity.
	// It exists in this package in order to avoid circular dependency with the "ingestjob" package.
	JobInverseTable = "ingest_jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
)

// Columns holds all SQL columns for jobbatch fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldSeq,
	FieldUids,
	FieldStatus,
	FieldExtracted,
	FieldDuplicates,
	FieldFailed,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SeqValidator is a validator for the "seq" field. It is called by the builders before save.
	SeqValidator func(int) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultExtracted holds the default value on creation for the "extracted" field.
	DefaultExtracted uint32
	// DefaultDuplicates holds the default value on creation for the "duplicates" field.
	DefaultDuplicates uint32
	// DefaultFailed holds the default value on creation for the "failed" field.
	DefaultFailed uint32
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the JobBatch queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// BySeq orders the results by the seq field.
func BySeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeq, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByExtracted orders the results by the extracted field.
func ByExtracted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtracted, opts...).ToFunc()
}

// ByDuplicates orders the results by the duplicates field.
func ByDuplicates(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuplicates, opts...).ToFunc()
}

// ByFailed orders the results by the failed field.
func ByFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailed, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
