package repository

import (
	"context"
	"time"

	"dispute-core/internal/domain/entity"
)

// DisputeClassifier is the schema-constrained model call producing an
// eligibility judgment. Implementations must not return free text.
type DisputeClassifier interface {
	Classify(ctx context.Context, input string, dctx *entity.DisputeContext, knowledge string) (*entity.ClassificationResult, error)
}

// ResponseGenerator is the model call producing the five-field response body.
type ResponseGenerator interface {
	Generate(ctx context.Context, input string, dctx *entity.DisputeContext, knowledge string, classification *entity.ClassificationResult) (*entity.ResponseContent, error)
}

// KnowledgeRetriever returns ranked reference passages for a query.
type KnowledgeRetriever interface {
	Retrieve(ctx context.Context, query string, topK int) ([]string, error)
}

type Embedder interface {
	CreateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// InteractionStore is the append-only event store plus the dispute-history
// reads backing the cooldown policy.
type InteractionStore interface {
	AppendLog(ctx context.Context, row *entity.InteractionLog) error
	RecordDispute(ctx context.Context, rec *entity.DisputeRecord) error
	RecentDisputes(ctx context.Context, clientID, bureau, identity string, window time.Duration) ([]entity.DisputeRecord, error)
}
