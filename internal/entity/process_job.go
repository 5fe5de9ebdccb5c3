package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/procurehq/procurement-tracker/constants"
)

// ProcessJob records one pipeline run over a document.
type ProcessJob struct {
	ID           uuid.UUID           `json:"id"`
	DocumentID   uuid.UUID           `json:"document_id"`
	Status       constants.JobStatus `json:"status"`
	ModelUsed    *string             `json:"model_used,omitempty"`
	Confidence   *float64            `json:"confidence,omitempty"`
	Corrections  []string            `json:"corrections,omitempty"`
	CacheHit     bool                `json:"cache_hit"`
	ErrorMessage *string             `json:"error_message,omitempty"`
	StartedAt    time.Time           `json:"started_at"`
	FinishedAt   *time.Time          `json:"finished_at,omitempty"`
}
