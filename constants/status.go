package constants

// DocumentStatus is the canonical status for rows in documents.
type DocumentStatus string

// Stable values (store these exact strings in DB).
const (
	DocumentUploaded   DocumentStatus = "UPLOADED"   // stored, not yet processed
	DocumentProcessing DocumentStatus = "PROCESSING" // extraction in progress
	DocumentProcessed  DocumentStatus = "PROCESSED"  // fields extracted and persisted
	DocumentFailed     DocumentStatus = "FAILED"     // terminal failure
)

// JobStatus is the canonical status for rows in process_jobs.
type JobStatus string

const (
	JobQueued    JobStatus = "QUEUED"
	JobRunning   JobStatus = "RUNNING"
	JobExtractOK JobStatus = "EXTRACT_OK" // extraction + reconciliation completed
	JobFailed    JobStatus = "FAILED"
)

// SupplierStatus is the lifecycle status of a supplier record.
type SupplierStatus string

const (
	SupplierActive    SupplierStatus = "active"
	SupplierInactive  SupplierStatus = "inactive"
	SupplierSuspended SupplierStatus = "suspended"
)

// FallbackModelName is recorded as model_used when the AI provider fails and
// the deterministic extractor's output is served instead.
const FallbackModelName = "pattern-matching-fallback"
