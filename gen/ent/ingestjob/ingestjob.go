// Code generated by ent, DO NOT EDIT.

package ingestjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the ingestjob type in the database.
	Label = "ingest_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProfileID holds the string denoting the profile_id field in the database.
	FieldProfileID = "profile_id"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldFolder holds the string denoting the folder field in the database.
	FieldFolder = "folder"
	// FieldCriteria holds the string denoting the criteria field in the database.
	FieldCriteria = "criteria"
	// FieldCursor holds the string denoting the cursor field in the database.
	FieldCursor = "cursor"
	// FieldScanned holds the string denoting the scanned field in the database.
	FieldScanned = "scanned"
	// FieldMatched holds the string denoting the matched field in the database.
	FieldMatched = "matched"
	// FieldExtracted holds the string denoting the extracted field in the database.
	FieldExtracted = "extracted"
	// FieldDuplicates holds the string denoting the duplicates field in the database.
	FieldDuplicates = "duplicates"
	// FieldFailed holds the string denoting the failed field in the database.
	FieldFailed = "failed"
	// FieldErrorLog holds the string denoting the error_log field in the database.
	FieldErrorLog = "error_log"
	// FieldCancelled holds the string denoting the cancelled field in the database.
	FieldCancelled = "cancelled"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// EdgeProfile holds the string denoting the profile edge name in mutations.
	EdgeProfile = "profile"
	// EdgeBatches holds the string denoting the batches edge name in mutations.
	EdgeBatches = "batches"
	// Table holds the table name of the ingestjob in the database.
	Table = "ingest_jobs"
	// ProfileTable is the table that holds the profile relation/edge.
	ProfileTable = "ingest_jobs"
	// ProfileInverseTable is the table name for the Profile entity.
	// It exists in this package in order to avoid circular dependency with the "profile" package.
	ProfileInverseTable = "profiles"
	// ProfileColumn is the table column denoting the profile relation/edge.
	ProfileColumn = "profile_id"
	// BatchesTable is the table that holds the batches relation/edge.
	BatchesTable = "job_batches"
	// BatchesInverseTable is the table name for the JobBatch entity.
	// It exists in this package in order to avoid circular dependency with the "jobbatch" package.
	BatchesInverseTable = "job_batches"
	// BatchesColumn is the table column denoting the batches relation/edge.
	BatchesColumn = "job_id"
)

// Columns holds all SQL columns for ingestjob fields.
var Columns = []string{
	FieldID,
	FieldProfileID,
	FieldPhase,
	FieldFolder,
	FieldCriteria,
	FieldCursor,
	FieldScanned,
	FieldMatched,
	FieldExtracted,
	FieldDuplicates,
	FieldFailed,
	FieldErrorLog,
	FieldCancelled,
	FieldStartedAt,
	FieldFinishedAt,
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
	// DefaultPhase holds the default value on creation for the "phase" field.
	DefaultPhase string
	// PhaseValidator is a validator for the "phase" field. It is called by the builders before save.
	PhaseValidator func(string) error
	// FolderValidator is a validator for the "folder" field. It is called by the builders before save.
	FolderValidator func(string) error
	// DefaultCursor holds the default value on creation for the "cursor" field.
	DefaultCursor uint32
	// DefaultScanned holds the default value on creation for the "scanned" field.
	DefaultScanned uint32
	// DefaultMatched holds the default value on creation for the "matched" field.
	DefaultMatched uint32
	// DefaultExtracted holds the default value on creation for the "extracted" field.
	DefaultExtracted uint32
	// DefaultDuplicates holds the default value on creation for the "duplicates" field.
	DefaultDuplicates uint32
	// DefaultFailed holds the default value on creation for the "failed" field.
	DefaultFailed uint32
	// DefaultCancelled holds the default value on creation for the "cancelled" field.
	DefaultCancelled bool
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the IngestJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProfileID orders the results by the profile_id field.
func ByProfileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileID, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByFolder orders the results by the folder field.
func ByFolder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFolder, opts...).ToFunc()
}

// ByCriteria orders the results by the criteria field.
func ByCriteria(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCriteria, opts...).ToFunc()
}

// ByCursor orders the results by the cursor field.
func ByCursor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCursor, opts...).ToFunc()
}

// ByScanned orders the results by the scanned field.
func ByScanned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScanned, opts...).ToFunc()
}

// ByMatched orders the results by the matched field.
func ByMatched(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatched, opts...).ToFunc()
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

// ByCancelled orders the results by the cancelled field.
func ByCancelled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelled, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByProfileField orders the results by profile field.
func ByProfileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProfileStep(), sql.OrderByField(field, opts...))
	}
}

// ByBatchesCount orders the results by batches count.
func ByBatchesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBatchesStep(), opts...)
	}
}

// ByBatches orders the results by batches terms.
func ByBatches(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBatchesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProfileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProfileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
	)
}
func newBatchesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BatchesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BatchesTable, BatchesColumn),
	)
}
