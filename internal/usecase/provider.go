package usecase

import (
	"context"
	"time"

	"dispute-core/internal/domain/entity"
	"dispute-core/internal/domain/repository"
)

// Model calls get one attempt under a bounded timeout. There is no retry
// layer: a failed call degrades to the stage's fixed fallback value instead,
// so one slow request cannot hang the whole pipeline.

type TimeoutClassifier struct {
	inner   repository.DisputeClassifier
	timeout time.Duration
}

func NewTimeoutClassifier(inner repository.DisputeClassifier, timeout time.Duration) *TimeoutClassifier {
	return &TimeoutClassifier{inner: inner, timeout: timeout}
}

func (t *TimeoutClassifier) Classify(ctx context.Context, input string, dctx *entity.DisputeContext, knowledge string) (*entity.ClassificationResult, error) {
	callCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Classify(callCtx, input, dctx, knowledge)
}

type TimeoutGenerator struct {
	inner   repository.ResponseGenerator
	timeout time.Duration
}

func NewTimeoutGenerator(inner repository.ResponseGenerator, timeout time.Duration) *TimeoutGenerator {
	return &TimeoutGenerator{inner: inner, timeout: timeout}
}

func (t *TimeoutGenerator) Generate(ctx context.Context, input string, dctx *entity.DisputeContext, knowledge string, classification *entity.ClassificationResult) (*entity.ResponseContent, error) {
	callCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Generate(callCtx, input, dctx, knowledge, classification)
}
