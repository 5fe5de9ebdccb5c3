package extraction

import "context"

// Request identifies one extraction. The same triple is both the provider
// request and the cache identity: two requests are cache-equivalent iff the
// triple is equal after trimming. Immutable once constructed.
type Request struct {
	NormalizedText   string
	DocumentType     string
	PromptTemplateID string
}

// Result is what an extractor produces for a request.
type Result struct {
	Fields           CanonicalFields `json:"fields"`
	ProcessingTimeMS int64           `json:"processing_time_ms"`
	ModelUsed        string          `json:"model_used"`
	ConfidenceScore  float64         `json:"confidence_score"` // 0..1
}

// FieldExtractor is the interface the pipeline depends on. The raw JSON the
// provider returned is handed back for persistence/debugging alongside the
// decoded result.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, req Request) (Result, []byte /*rawJSON*/, error)
}
