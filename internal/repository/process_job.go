package repository

import (
	"context"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/procurehq/procurement-tracker/constants"
	"github.com/procurehq/procurement-tracker/gen/ent"
	"github.com/procurehq/procurement-tracker/gen/ent/processjob"
	"github.com/procurehq/procurement-tracker/internal/entity"
	"github.com/procurehq/procurement-tracker/internal/extraction"
	"github.com/procurehq/procurement-tracker/internal/pipeline"
)

// processJobRepository implements pipeline.JobStore on the ent client.
type processJobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProcessJobRepository(client *ent.Client, logger *slog.Logger) pipeline.JobStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &processJobRepository{client: client, logger: logger}
}

func (r *processJobRepository) Start(ctx context.Context, docID uuid.UUID) (uuid.UUID, error) {
	row, err := r.client.ProcessJob.Create().
		SetDocumentID(docID).
		SetStatus(string(constants.JobRunning)).
		SetStartedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.logger.Error("process job create failed", "document_id", docID, "error", err)
		return uuid.Nil, err
	}
	return row.ID, nil
}

func (r *processJobRepository) FinishSuccess(ctx context.Context, jobID uuid.UUID, res extraction.Result, corrections []string, cacheHit bool, rawJSON []byte) error {
	upd := r.client.ProcessJob.UpdateOneID(jobID).
		SetStatus(string(constants.JobExtractOK)).
		SetModelUsed(res.ModelUsed).
		SetConfidence(res.ConfidenceScore).
		SetCacheHit(cacheHit).
		SetFinishedAt(time.Now().UTC())
	if len(corrections) > 0 {
		upd.SetCorrections(corrections)
	}
	if len(rawJSON) > 0 {
		upd.SetRawOutput(rawJSON)
	}

	if err := upd.Exec(ctx); err != nil {
		r.logger.Error("process job finalize failed", "job_id", jobID, "error", err)
		return err
	}
	return nil
}

func (r *processJobRepository) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	err := r.client.ProcessJob.UpdateOneID(jobID).
		SetStatus(string(constants.JobFailed)).
		SetErrorMessage(message).
		SetFinishedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("process job failure update failed", "job_id", jobID, "error", err)
	}
	return err
}

// ListByDocument returns the run history for a document, newest first.
func (r *processJobRepository) ListByDocument(ctx context.Context, docID uuid.UUID) ([]entity.ProcessJob, error) {
	rows, err := r.client.ProcessJob.Query().
		Where(processjob.DocumentID(docID)).
		Order(processjob.ByStartedAt(entsql.OrderDesc())).
		All(ctx)
	if err != nil {
		r.logger.Error("process job list failed", "document_id", docID, "error", err)
		return nil, err
	}

	result := make([]entity.ProcessJob, len(rows))
	for i, row := range rows {
		result[i] = toProcessJob(row)
	}
	return result, nil
}

func toProcessJob(row *ent.ProcessJob) entity.ProcessJob {
	return entity.ProcessJob{
		ID:           row.ID,
		DocumentID:   row.DocumentID,
		Status:       constants.JobStatus(row.Status),
		ModelUsed:    row.ModelUsed,
		Confidence:   row.Confidence,
		Corrections:  row.Corrections,
		CacheHit:     row.CacheHit,
		ErrorMessage: row.ErrorMessage,
		StartedAt:    row.StartedAt,
		FinishedAt:   row.FinishedAt,
	}
}
