package constants

// JobPhase is the canonical phase for rows in ingest_jobs.
type JobPhase string

// Stable values (store these exact strings in DB).
const (
	JobPhasePending       JobPhase = "PENDING"        // created, no invocation yet
	JobPhaseScanning      JobPhase = "SCANNING"       // mailbox scan in progress (resumable)
	JobPhaseScanFailed    JobPhase = "SCAN_FAILED"    // terminal: mailbox unreachable or scan aborted
	JobPhaseScanComplete  JobPhase = "SCAN_COMPLETE"  // all messages scanned, batches enqueued
	JobPhaseExtracting    JobPhase = "EXTRACTING"     // batches being processed
	JobPhaseExtractFailed JobPhase = "EXTRACT_FAILED" // terminal: extraction aborted
	JobPhaseComplete      JobPhase = "COMPLETE"       // terminal: all batches reported
	JobPhaseCancelled     JobPhase = "CANCELLED"      // terminal: cancelled at a batch boundary
)

// Terminal reports whether a phase accepts no further invocations.
func (p JobPhase) Terminal() bool {
	switch p {
	case JobPhaseScanFailed, JobPhaseExtractFailed, JobPhaseComplete, JobPhaseCancelled:
		return true
	}
	return false
}

// BatchStatus is the canonical status for rows in job_batches.
type BatchStatus string

const (
	BatchStatusPending BatchStatus = "PENDING"
	BatchStatusRunning BatchStatus = "RUNNING"
	BatchStatusDone    BatchStatus = "DONE"
	BatchStatusFailed  BatchStatus = "FAILED"
)

func (s BatchStatus) Terminal() bool {
	return s == BatchStatusDone || s == BatchStatusFailed
}

// InvoiceSource records which channel produced an invoice.
type InvoiceSource string

const (
	SourceUpload  InvoiceSource = "UPLOAD"
	SourceMailbox InvoiceSource = "MAILBOX"
)

// LifecycleState is the soft-delete state of an invoice.
type LifecycleState string

const (
	LifecycleActive      LifecycleState = "ACTIVE"
	LifecycleSoftDeleted LifecycleState = "SOFT_DELETED"
)
