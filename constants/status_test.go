package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The status strings are stored verbatim in the database; they must not drift.
func TestJobStatusValues(t *testing.T) {
	assert.Equal(t, JobStatus("QUEUED"), JobQueued)
	assert.Equal(t, JobStatus("RUNNING"), JobRunning)
	assert.Equal(t, JobStatus("EXTRACT_OK"), JobExtractOK)
	assert.Equal(t, JobStatus("FAILED"), JobFailed)
}

func TestDocumentStatusValues(t *testing.T) {
	assert.Equal(t, DocumentStatus("UPLOADED"), DocumentUploaded)
	assert.Equal(t, DocumentStatus("PROCESSING"), DocumentProcessing)
	assert.Equal(t, DocumentStatus("PROCESSED"), DocumentProcessed)
	assert.Equal(t, DocumentStatus("FAILED"), DocumentFailed)
}
