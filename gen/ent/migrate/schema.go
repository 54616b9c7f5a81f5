// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContentBlobsColumns holds the columns for the "content_blobs" table.
	ContentBlobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "byte_size", Type: field.TypeInt64},
		{Name: "storage_ref", Type: field.TypeString},
		{Name: "first_seen_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// ContentBlobsTable holds the schema information for the "content_blobs" table.
	ContentBlobsTable = &schema.Table{
		Name:       "content_blobs",
		Columns:    ContentBlobsColumns,
		PrimaryKey: []*schema.Column{ContentBlobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "content_blobs_profiles_blobs",
				Columns:    []*schema.Column{ContentBlobsColumns[5]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contentblob_profile_id_hash",
				Unique:  true,
				Columns: []*schema.Column{ContentBlobsColumns[5], ContentBlobsColumns[1]},
			},
		},
	}
	// IngestJobsColumns holds the columns for the "ingest_jobs" table.
	IngestJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "phase", Type: field.TypeString, Default: "PENDING"},
		{Name: "folder", Type: field.TypeString},
		{Name: "criteria", Type: field.TypeString, Nullable: true},
		{Name: "cursor", Type: field.TypeUint32, Default: 0},
		{Name: "scanned", Type: field.TypeUint32, Default: 0},
		{Name: "matched", Type: field.TypeUint32, Default: 0},
		{Name: "extracted", Type: field.TypeUint32, Default: 0},
		{Name: "duplicates", Type: field.TypeUint32, Default: 0},
		{Name: "failed", Type: field.TypeUint32, Default: 0},
		{Name: "error_log", Type: field.TypeJSON, Nullable: true},
		{Name: "cancelled", Type: field.TypeBool, Default: false},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// IngestJobsTable holds the schema information for the "ingest_jobs" table.
	IngestJobsTable = &schema.Table{
		Name:       "ingest_jobs",
		Columns:    IngestJobsColumns,
		PrimaryKey: []*schema.Column{IngestJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ingest_jobs_profiles_jobs",
				Columns:    []*schema.Column{IngestJobsColumns[14]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ingestjob_profile_id_phase_started_at",
				Unique:  false,
				Columns: []*schema.Column{IngestJobsColumns[14], IngestJobsColumns[1], IngestJobsColumns[12]},
			},
		},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "invoice_type", Type: field.TypeString},
		{Name: "canonical_fields", Type: field.TypeJSON},
		{Name: "raw_engine_output", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence_scores", Type: field.TypeJSON, Nullable: true},
		{Name: "validation", Type: field.TypeJSON, Nullable: true},
		{Name: "source", Type: field.TypeString},
		{Name: "lifecycle_state", Type: field.TypeString, Default: "ACTIVE"},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "blob_id", Type: field.TypeUUID},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoices_content_blobs_invoices",
				Columns:    []*schema.Column{InvoicesColumns[12]},
				RefColumns: []*schema.Column{ContentBlobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "invoices_profiles_invoices",
				Columns:    []*schema.Column{InvoicesColumns[13]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_profile_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{InvoicesColumns[13], InvoicesColumns[1]},
			},
			{
				Name:    "invoice_profile_id_lifecycle_state_created_at",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[13], InvoicesColumns[8], InvoicesColumns[10]},
			},
		},
	}
	// JobBatchesColumns holds the columns for the "job_batches" table.
	JobBatchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "seq", Type: field.TypeInt},
		{Name: "uids", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "extracted", Type: field.TypeUint32, Default: 0},
		{Name: "duplicates", Type: field.TypeUint32, Default: 0},
		{Name: "failed", Type: field.TypeUint32, Default: 0},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// JobBatchesTable holds the schema information for the "job_batches" table.
	JobBatchesTable = &schema.Table{
		Name:       "job_batches",
		Columns:    JobBatchesColumns,
		PrimaryKey: []*schema.Column{JobBatchesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_batches_ingest_jobs_batches",
				Columns:    []*schema.Column{JobBatchesColumns[7]},
				RefColumns: []*schema.Column{IngestJobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "jobbatch_job_id_seq",
				Unique:  true,
				Columns: []*schema.Column{JobBatchesColumns[7], JobBatchesColumns[1]},
			},
			{
				Name:    "jobbatch_job_id_status",
				Unique:  false,
				Columns: []*schema.Column{JobBatchesColumns[7], JobBatchesColumns[3]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContentBlobsTable,
		IngestJobsTable,
		InvoicesTable,
		JobBatchesTable,
		ProfilesTable,
	}
)

func init() {
	ContentBlobsTable.ForeignKeys[0].RefTable = ProfilesTable
	ContentBlobsTable.Annotation = &entsql.Annotation{
		Table: "content_blobs",
	}
	IngestJobsTable.ForeignKeys[0].RefTable = ProfilesTable
	IngestJobsTable.Annotation = &entsql.Annotation{
		Table: "ingest_jobs",
	}
	InvoicesTable.ForeignKeys[0].RefTable = ContentBlobsTable
	InvoicesTable.ForeignKeys[1].RefTable = ProfilesTable
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
	JobBatchesTable.ForeignKeys[0].RefTable = IngestJobsTable
	JobBatchesTable.Annotation = &entsql.Annotation{
		Table: "job_batches",
	}
	ProfilesTable.Annotation = &entsql.Annotation{
		Table: "profiles",
	}
}
