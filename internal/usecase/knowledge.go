package usecase

import (
	"context"
	"strings"

	"dispute-core/internal/domain/entity"
	"dispute-core/internal/domain/repository"

	"go.uber.org/zap"
)

// Knowledge is the assembled reference context handed to both model stages.
type Knowledge struct {
	Context string
	Source  string // "retrieval" or "static"; empty means fail-closed
	Docs    []string
}

// KnowledgeService builds the candidate document set for an action and fills
// it from the retrieval service, falling back to the static corpus unless
// strict mode demands failing closed.
type KnowledgeService struct {
	retriever repository.KnowledgeRetriever // nil when no service is configured
	rules     *entity.RuleSet
	strict    bool
	maxChars  int
	topK      int
	logger    *zap.Logger
}

func NewKnowledgeService(retriever repository.KnowledgeRetriever, rules *entity.RuleSet, strict bool, maxChars, topK int, logger *zap.Logger) *KnowledgeService {
	return &KnowledgeService{
		retriever: retriever,
		rules:     rules,
		strict:    strict,
		maxChars:  maxChars,
		topK:      topK,
		logger:    logger,
	}
}

// Assemble is deterministic: same action, subtype and service state produce
// the same candidate set and the same context block.
func (k *KnowledgeService) Assemble(ctx context.Context, action entity.Action, subtype string) Knowledge {
	docs := k.rules.CandidateDocs(action)

	if k.retriever != nil {
		query := strings.Join(docs, " ")
		if subtype != "" {
			query += " " + subtype
		}
		passages, err := k.retriever.Retrieve(ctx, query, k.topK)
		if err != nil {
			k.logger.Warn("knowledge retrieval failed", zap.Error(err))
		} else if len(passages) > 0 {
			return Knowledge{
				Context: capChars(strings.Join(passages, "\n\n"), k.maxChars),
				Source:  "retrieval",
				Docs:    docs,
			}
		}
	}

	if k.strict {
		return Knowledge{Docs: docs}
	}
	return Knowledge{
		Context: capChars(k.staticContext(docs), k.maxChars),
		Source:  "static",
		Docs:    docs,
	}
}

// staticContext synthesizes a fallback block from the candidate document
// catalog plus the forbidden-phrase list.
func (k *KnowledgeService) staticContext(docs []string) string {
	var b strings.Builder
	b.WriteString("Reference documents (" + k.rules.Version + "):\n")
	for _, doc := range docs {
		b.WriteString("- " + doc)
		if summary := k.rules.DocSummaries[doc]; summary != "" {
			b.WriteString(": " + summary)
		}
		b.WriteString("\n")
	}
	b.WriteString("\nForbidden phrasing:\n")
	for _, p := range k.rules.ForbiddenPhrases {
		b.WriteString("- " + p + "\n")
	}
	return b.String()
}

func capChars(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max]
}
