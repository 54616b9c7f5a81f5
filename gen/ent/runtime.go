// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/billfold/invoice-ingest/db/ent/schema"
	"github.com/billfold/invoice-ingest/gen/ent/contentblob"
	"github.com/billfold/invoice-ingest/gen/ent/ingestjob"
	"github.com/billfold/invoice-ingest/gen/ent/invoice"
	"github.com/billfold/invoice-ingest/gen/ent/jobbatch"
	"github.com/billfold/invoice-ingest/gen/ent/profile"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contentblobFields := schema.ContentBlob{}.Fields()
	_ = contentblobFields
	// contentblobDescHash is the schema descriptor for hash field.
	contentblobDescHash := contentblobFields[2].Descriptor()
	// contentblob.HashValidator is a validator for the "hash" field. It is called by the builders before save.
	contentblob.HashValidator = contentblobDescHash.Validators[0].(func([]byte) error)
	// contentblobDescByteSize is the schema descriptor for byte_size field.
	contentblobDescByteSize := contentblobFields[3].Descriptor()
	// contentblob.ByteSizeValidator is a validator for the "byte_size" field. It is called by the builders before save.
	contentblob.ByteSizeValidator = contentblobDescByteSize.Validators[0].(func(int64) error)
	// contentblobDescStorageRef is the schema descriptor for storage_ref field.
	contentblobDescStorageRef := contentblobFields[4].Descriptor()
	// contentblob.StorageRefValidator is a validator for the "storage_ref" field. It is called by the builders before save.
	contentblob.StorageRefValidator = contentblobDescStorageRef.Validators[0].(func(string) error)
	// contentblobDescFirstSeenAt is the schema descriptor for first_seen_at field.
	contentblobDescFirstSeenAt := contentblobFields[5].Descriptor()
	// contentblob.DefaultFirstSeenAt holds the default value on creation for the first_seen_at field.
	contentblob.DefaultFirstSeenAt = contentblobDescFirstSeenAt.Default.(func() time.Time)
	// contentblobDescID is the schema descriptor for id field.
	contentblobDescID := contentblobFields[0].Descriptor()
	// contentblob.DefaultID holds the default value on creation for the id field.
	contentblob.DefaultID = contentblobDescID.Default.(func() uuid.UUID)
	ingestjobFields := schema.IngestJob{}.Fields()
	_ = ingestjobFields
	// ingestjobDescPhase is the schema descriptor for phase field.
	ingestjobDescPhase := ingestjobFields[2].Descriptor()
	// ingestjob.DefaultPhase holds the default value on creation for the phase field.
	ingestjob.DefaultPhase = ingestjobDescPhase.Default.(string)
	// ingestjob.PhaseValidator is a validator for the "phase" field. It is called by the builders before save.
	ingestjob.PhaseValidator = ingestjobDescPhase.Validators[0].(func(string) error)
	// ingestjobDescFolder is the schema descriptor for folder field.
	ingestjobDescFolder := ingestjobFields[3].Descriptor()
	// ingestjob.FolderValidator is a validator for the "folder" field. It is called by the builders before save.
	ingestjob.FolderValidator = ingestjobDescFolder.Validators[0].(func(string) error)
	// ingestjobDescCursor is the schema descriptor for cursor field.
	ingestjobDescCursor := ingestjobFields[5].Descriptor()
	// ingestjob.DefaultCursor holds the default value on creation for the cursor field.
	ingestjob.DefaultCursor = ingestjobDescCursor.Default.(uint32)
	// ingestjobDescScanned is the schema descriptor for scanned field.
	ingestjobDescScanned := ingestjobFields[6].Descriptor()
	// ingestjob.DefaultScanned holds the default value on creation for the scanned field.
	ingestjob.DefaultScanned = ingestjobDescScanned.Default.(uint32)
	// ingestjobDescMatched is the schema descriptor for matched field.
	ingestjobDescMatched := ingestjobFields[7].Descriptor()
	// ingestjob.DefaultMatched holds the default value on creation for the matched field.
	ingestjob.DefaultMatched = ingestjobDescMatched.Default.(uint32)
	// ingestjobDescExtracted is the schema descriptor for extracted field.
	ingestjobDescExtracted := ingestjobFields[8].Descriptor()
	// ingestjob.DefaultExtracted holds the default value on creation for the extracted field.
	ingestjob.DefaultExtracted = ingestjobDescExtracted.Default.(uint32)
	// ingestjobDescDuplicates is the schema descriptor for duplicates field.
	ingestjobDescDuplicates := ingestjobFields[9].Descriptor()
	// ingestjob.DefaultDuplicates holds the default value on creation for the duplicates field.
	ingestjob.DefaultDuplicates = ingestjobDescDuplicates.Default.(uint32)
	// ingestjobDescFailed is the schema descriptor for failed field.
	ingestjobDescFailed := ingestjobFields[10].Descriptor()
	// ingestjob.DefaultFailed holds the default value on creation for the failed field.
	ingestjob.DefaultFailed = ingestjobDescFailed.Default.(uint32)
	// ingestjobDescCancelled is the schema descriptor for cancelled field.
	ingestjobDescCancelled := ingestjobFields[12].Descriptor()
	// ingestjob.DefaultCancelled holds the default value on creation for the cancelled field.
	ingestjob.DefaultCancelled = ingestjobDescCancelled.Default.(bool)
	// ingestjobDescStartedAt is the schema descriptor for started_at field.
	ingestjobDescStartedAt := ingestjobFields[13].Descriptor()
	// ingestjob.DefaultStartedAt holds the default value on creation for the started_at field.
	ingestjob.DefaultStartedAt = ingestjobDescStartedAt.Default.(func() time.Time)
	// ingestjobDescID is the schema descriptor for id field.
	ingestjobDescID := ingestjobFields[0].Descriptor()
	// ingestjob.DefaultID holds the default value on creation for the id field.
	ingestjob.DefaultID = ingestjobDescID.Default.(func() uuid.UUID)
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescContentHash is the schema descriptor for content_hash field.
	invoiceDescContentHash := invoiceFields[3].Descriptor()
	// invoice.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	invoice.ContentHashValidator = invoiceDescContentHash.Validators[0].(func([]byte) error)
	// invoiceDescInvoiceType is the schema descriptor for invoice_type field.
	invoiceDescInvoiceType := invoiceFields[4].Descriptor()
	// invoice.InvoiceTypeValidator is a validator for the "invoice_type" field. It is called by the builders before save.
	invoice.InvoiceTypeValidator = func() func(string) error {
		validators := invoiceDescInvoiceType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(invoice_type string) error {
			for _, fn := range fns {
				if err := fn(invoice_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// invoiceDescSource is the schema descriptor for source field.
	invoiceDescSource := invoiceFields[9].Descriptor()
	// invoice.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	invoice.SourceValidator = func() func(string) error {
		validators := invoiceDescSource.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(source string) error {
			for _, fn := range fns {
				if err := fn(source); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// invoiceDescLifecycleState is the schema descriptor for lifecycle_state field.
	invoiceDescLifecycleState := invoiceFields[10].Descriptor()
	// invoice.DefaultLifecycleState holds the default value on creation for the lifecycle_state field.
	invoice.DefaultLifecycleState = invoiceDescLifecycleState.Default.(string)
	// invoice.LifecycleStateValidator is a validator for the "lifecycle_state" field. It is called by the builders before save.
	invoice.LifecycleStateValidator = invoiceDescLifecycleState.Validators[0].(func(string) error)
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[12].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceFields[13].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	jobbatchFields := schema.JobBatch{}.Fields()
	_ = jobbatchFields
	// jobbatchDescSeq is the schema descriptor for seq field.
	jobbatchDescSeq := jobbatchFields[2].Descriptor()
	// jobbatch.SeqValidator is a validator for the "seq" field. It is called by the builders before save.
	jobbatch.SeqValidator = jobbatchDescSeq.Validators[0].(func(int) error)
	// jobbatchDescStatus is the schema descriptor for status field.
	jobbatchDescStatus := jobbatchFields[4].Descriptor()
	// jobbatch.DefaultStatus holds the default value on creation for the status field.
	jobbatch.DefaultStatus = jobbatchDescStatus.Default.(string)
	// jobbatch.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	jobbatch.StatusValidator = jobbatchDescStatus.Validators[0].(func(string) error)
	// jobbatchDescExtracted is the schema descriptor for extracted field.
	jobbatchDescExtracted := jobbatchFields[5].Descriptor()
	// jobbatch.DefaultExtracted holds the default value on creation for the extracted field.
	jobbatch.DefaultExtracted = jobbatchDescExtracted.Default.(uint32)
	// jobbatchDescDuplicates is the schema descriptor for duplicates field.
	jobbatchDescDuplicates := jobbatchFields[6].Descriptor()
	// jobbatch.DefaultDuplicates holds the default value on creation for the duplicates field.
	jobbatch.DefaultDuplicates = jobbatchDescDuplicates.Default.(uint32)
	// jobbatchDescFailed is the schema descriptor for failed field.
	jobbatchDescFailed := jobbatchFields[7].Descriptor()
	// jobbatch.DefaultFailed holds the default value on creation for the failed field.
	jobbatch.DefaultFailed = jobbatchDescFailed.Default.(uint32)
	// jobbatchDescID is the schema descriptor for id field.
	jobbatchDescID := jobbatchFields[0].Descriptor()
	// jobbatch.DefaultID holds the default value on creation for the id field.
	jobbatch.DefaultID = jobbatchDescID.Default.(func() uuid.UUID)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[1].Descriptor()
	// profile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	profile.NameValidator = profileDescName.Validators[0].(func(string) error)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[2].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[3].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileFields[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
}
