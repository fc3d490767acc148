package usecase

import (
	"context"
	"errors"
	"time"

	"dispute-core/internal/domain/entity"
	"dispute-core/internal/domain/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StageEmitter receives a status message before each externally-observable
// pipeline stage. The streaming delivery adapter turns these into SSE status
// events; single-shot delivery passes nil.
type StageEmitter func(message string)

const (
	stageValidatingScope = "validating scope"
	stageRetrieving      = "retrieving knowledge"
	stageClassifying     = "classifying"
	stageGenerating      = "generating"
	stageChecking        = "checking compliance"
	stageSaving          = "saving"
)

// Orchestrator runs the gated dispute pipeline. One call per request, strictly
// sequential, no shared state between requests. Every outcome — refused or
// not — comes back as a well-formed response; Execute never returns an error.
type Orchestrator struct {
	rules      *entity.RuleSet
	gate       *Gatekeeper
	knowledge  *KnowledgeService
	cooldown   *CooldownPolicy
	classifier repository.DisputeClassifier
	generator  repository.ResponseGenerator
	validator  *OutputValidator
	store      repository.InteractionStore
	versions   entity.ModelVersions
	logger     *zap.Logger
}

func NewOrchestrator(
	rules *entity.RuleSet,
	knowledge *KnowledgeService,
	cooldown *CooldownPolicy,
	classifier repository.DisputeClassifier,
	generator repository.ResponseGenerator,
	store repository.InteractionStore,
	versions entity.ModelVersions,
	logger *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		rules:      rules,
		gate:       NewGatekeeper(rules),
		knowledge:  knowledge,
		cooldown:   cooldown,
		classifier: classifier,
		generator:  generator,
		validator:  NewOutputValidator(rules),
		store:      store,
		versions:   versions,
		logger:     logger,
	}
}

// outcome is the delivery-agnostic result of the pipeline body, before tags,
// versions and timing are attached.
type outcome struct {
	success        bool
	classification *entity.ClassificationResult
	response       *entity.ResponseContent
	validation     *entity.ValidationResult
	flags          []string
	score          float64
	wasRefused     bool
	refusalReason  string
	reasonTag      string // tag label when it differs from the refusal reason
}

func refusalOutcome(reason string, body *entity.ResponseContent, cls *entity.ClassificationResult, flags []string) outcome {
	return outcome{
		classification: cls,
		response:       body,
		flags:          flags,
		wasRefused:     true,
		refusalReason:  reason,
	}
}

func (o *Orchestrator) Execute(ctx context.Context, req entity.DisputeRequest, emit StageEmitter) *entity.OrchestratorResponse {
	start := time.Now()
	if emit == nil {
		emit = func(string) {}
	}

	sanitized := SanitizeInput(req.Input)

	emit(stageValidatingScope)
	if scope := o.gate.CheckScope(sanitized); !scope.Valid {
		o.logger.Info("request refused: out of scope",
			zap.String("user_id", req.UserID), zap.String("topic", scope.Topic))
		return o.finish(ctx, req, start, emit,
			refusalOutcome(entity.RefusalOutOfScope, scopeRefusalContent(), nil, nil))
	}

	if o.gate.DetectInjection(req.Input) {
		o.logger.Info("request refused: prompt injection", zap.String("user_id", req.UserID))
		return o.finish(ctx, req, start, emit,
			refusalOutcome(entity.RefusalPromptInjection, injectionSafeContent(), nil,
				[]string{entity.RefusalPromptInjection}))
	}

	if comp := CheckCompleteness(o.rules, req.Context); !comp.Complete {
		cls := entity.InsufficientClassification(0, comp.MissingFields, []string{})
		return o.finish(ctx, req, start, emit,
			refusalOutcome(entity.RefusalInsufficientInfo, completenessContent(comp.MissingFields), cls, nil))
	}

	emit(stageRetrieving)
	subtype := ""
	if req.Context != nil {
		subtype = req.Context.DisputeType
	}
	knowledge := o.knowledge.Assemble(ctx, req.Action, subtype)
	if knowledge.Context == "" {
		o.logger.Warn("retrieval empty in strict mode", zap.String("action", string(req.Action)))
		return o.finish(ctx, req, start, emit,
			refusalOutcome(entity.RefusalRetrievalEmpty, ragEmptyContent(), nil, nil))
	}

	decision := o.cooldown.Check(ctx, req)
	if decision.Suppressed {
		// A valid, successful answer: the item was disputed recently, so the
		// pipeline answers "not eligible right now" instead of refusing.
		cls := &entity.ClassificationResult{
			Eligibility: entity.EligibilityNotEligible,
			Confidence:  0.55,
			Reasoning: entity.Reasoning{
				Factors:          []string{"repeated dispute attempts against this item within the cooldown window"},
				RequiredEvidence: []string{},
				ComplianceFlags:  []string{},
			},
		}
		return o.finish(ctx, req, start, emit, outcome{
			success:        true,
			classification: cls,
			response:       cooldownContent(decision.Attempts),
			score:          cls.Confidence,
			reasonTag:      entity.TagDisputeCooldown,
		})
	}

	emit(stageClassifying)
	cls, err := o.classifier.Classify(ctx, sanitized, req.Context, knowledge.Context)
	if err != nil {
		flag := entity.FlagClassificationError
		if errors.Is(err, entity.ErrModelOutputParse) {
			flag = entity.FlagParseError
		}
		o.logger.Warn("classifier degraded to fallback", zap.Error(err))
		cls = entity.InsufficientClassification(0, []string{}, []string{flag})
	}

	emit(stageGenerating)
	var extraFlags []string
	resp, err := o.generator.Generate(ctx, sanitized, req.Context, knowledge.Context, cls)
	if err != nil {
		o.logger.Warn("generator degraded to fallback", zap.Error(err))
		resp = safeEducationalContent(cls)
		extraFlags = append(extraFlags, entity.FlagGenerationFallback)
	}

	emit(stageChecking)
	val := o.validator.Validate(resp, cls)
	flags := append(append([]string{}, val.ComplianceFlags...), extraFlags...)
	score := ConfidenceScore(len(knowledge.Context), cls.Confidence, len(val.MissingSections), len(flags))

	out := outcome{
		success:        true,
		classification: cls,
		response:       resp,
		validation:     val,
		flags:          flags,
		score:          score,
	}
	switch {
	case val.ShouldRefuse:
		out.success = false
		out.wasRefused = true
		out.refusalReason = val.RefusalReason
		out.response = complianceRefusalContent(cls)
	case score < RefusalThreshold:
		out.success = false
		out.wasRefused = true
		out.refusalReason = entity.RefusalLowConfidence
		out.response = lowConfidenceContent(val.MissingSections)
	default:
		o.recordDispute(ctx, decision.Identity, cls)
	}

	return o.finish(ctx, req, start, emit, out)
}

// finish assembles the final response, persists the interaction row and
// returns. All branches of Execute converge here, so exactly one log row is
// written per request.
func (o *Orchestrator) finish(ctx context.Context, req entity.DisputeRequest, start time.Time, emit StageEmitter, out outcome) *entity.OrchestratorResponse {
	res := o.assemble(req, start, out)
	emit(stageSaving)
	o.persist(ctx, req, res)
	return res
}

func (o *Orchestrator) assemble(req entity.DisputeRequest, start time.Time, out outcome) *entity.OrchestratorResponse {
	if out.flags == nil {
		out.flags = []string{}
	}

	tags := entity.ResponseTags{
		ConfidenceLevel: ConfidenceLevel(out.score),
		ComplianceRisk:  ComplianceRisk(len(out.flags)),
		RefusalReason:   out.refusalReason,
	}
	if out.reasonTag != "" {
		tags.RefusalReason = out.reasonTag
	}
	if req.Context != nil {
		tags.DisputeType = req.Context.DisputeType
	}
	if out.classification != nil {
		tags.EligibilityLabel = string(out.classification.Eligibility)
	}

	return &entity.OrchestratorResponse{
		Success:          out.success,
		Classification:   out.classification,
		Response:         out.response,
		ConfidenceScore:  out.score,
		Tags:             tags,
		ModelVersions:    o.versions,
		Validation:       out.validation,
		ComplianceFlags:  out.flags,
		WasRefused:       out.wasRefused,
		RefusalReason:    out.refusalReason,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}
}

// persist writes the audit row. Failures are swallowed: logging must never
// fail the user-facing request. The write runs on an uncancelable context so
// a client disconnect mid-stream cannot abort it.
func (o *Orchestrator) persist(ctx context.Context, req entity.DisputeRequest, res *entity.OrchestratorResponse) {
	row := &entity.InteractionLog{
		ID:              uuid.NewString(),
		UserID:          req.UserID,
		Action:          req.Action,
		Input:           req.Input,
		Context:         req.Context,
		Classification:  res.Classification,
		Response:        res.Response,
		ComplianceFlags: res.ComplianceFlags,
		WasRefused:      res.WasRefused,
		RefusalReason:   res.RefusalReason,
		TrainingReady:   !res.WasRefused,
		CreatedAt:       time.Now().UTC(),
	}

	logCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := o.store.AppendLog(logCtx, row); err != nil {
		o.logger.Warn("interaction log write failed", zap.Error(err))
	}
}

// recordDispute files a dispute attempt for future cooldown reads. Only
// actual dispute recommendations count as attempts.
func (o *Orchestrator) recordDispute(ctx context.Context, id DisputeIdentity, cls *entity.ClassificationResult) {
	if !id.Resolvable() || cls == nil {
		return
	}
	if cls.Eligibility != entity.EligibilityEligible && cls.Eligibility != entity.EligibilityConditional {
		return
	}
	rec := &entity.DisputeRecord{
		ID:          uuid.NewString(),
		ClientID:    id.ClientID,
		Bureau:      id.Bureau,
		Identity:    id.Identity,
		Eligibility: cls.Eligibility,
		CreatedAt:   time.Now().UTC(),
	}
	if err := o.store.RecordDispute(ctx, rec); err != nil {
		o.logger.Warn("dispute record write failed", zap.Error(err))
	}
}
