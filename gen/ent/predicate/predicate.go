// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ContentBlob is the predicate function for contentblob builders.
type ContentBlob func(*sql.Selector)

// IngestJob is the predicate function for ingestjob builders.
type IngestJob func(*sql.Selector)

// Invoice is the predicate function for invoice builders.
type Invoice func(*sql.Selector)

// JobBatch is the predicate function for jobbatch builders.
type JobBatch func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)
