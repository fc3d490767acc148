package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dispute-core/internal/domain/entity"
	"dispute-core/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeClassifier struct{}

func (f *fakeClassifier) Classify(ctx context.Context, input string, dctx *entity.DisputeContext, knowledge string) (*entity.ClassificationResult, error) {
	return &entity.ClassificationResult{
		Eligibility: entity.EligibilityEligible,
		Confidence:  0.9,
		Reasoning: entity.Reasoning{
			Factors:          []string{"balance mismatch"},
			RequiredEvidence: []string{},
			ComplianceFlags:  []string{},
		},
	}, nil
}

type fakeGenerator struct{}

func (f *fakeGenerator) Generate(ctx context.Context, input string, dctx *entity.DisputeContext, knowledge string, cls *entity.ClassificationResult) (*entity.ResponseContent, error) {
	return &entity.ResponseContent{
		Summary:           "The account appears disputable.",
		Analysis:          "The reported balance does not match the provided records.",
		EligibilityStatus: string(cls.Eligibility),
		RecommendedAction: "File a dispute citing the balance discrepancy.",
		NextSteps:         []string{"Gather statements", "Submit the dispute"},
	}, nil
}

type fakeStore struct {
	logs int
}

func (f *fakeStore) AppendLog(ctx context.Context, row *entity.InteractionLog) error {
	f.logs++
	return nil
}

func (f *fakeStore) RecordDispute(ctx context.Context, rec *entity.DisputeRecord) error {
	return nil
}

func (f *fakeStore) RecentDisputes(ctx context.Context, clientID, bureau, identity string, window time.Duration) ([]entity.DisputeRecord, error) {
	return nil, nil
}

func newTestApp() (*fiber.App, *fakeStore) {
	rules := entity.DefaultRuleSet()
	store := &fakeStore{}
	knowledge := usecase.NewKnowledgeService(nil, rules, false, 3500, 4, zap.NewNop())
	cooldown := usecase.NewCooldownPolicy(store, 30*24*time.Hour, 2, zap.NewNop())
	versions := entity.ModelVersions{Classifier: "clf-v2", Core: "core-v2", Retriever: "ret-v1"}
	orch := usecase.NewOrchestrator(rules, knowledge, cooldown,
		&fakeClassifier{}, &fakeGenerator{}, store, versions, zap.NewNop())

	app := fiber.New()
	SetupRouter(app, NewDisputeHandler(orch, zap.NewNop()))
	return app, store
}

func postDispute(t *testing.T, app *fiber.App, body entity.DisputeRequest) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/v1/dispute", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func sampleRequest() entity.DisputeRequest {
	return entity.DisputeRequest{
		Action: entity.ActionClassifyDispute,
		Input:  "Please review this collection account",
		UserID: "user-1",
		Context: &entity.DisputeContext{
			AccountType: "collection",
			Bureau:      "equifax",
			DisputeItems: []entity.DisputeItem{{
				CreditorName:  "Midland Credit",
				AccountNumber: "ACC-42",
				DisputeReason: "not_mine",
			}},
		},
	}
}

func TestHandleDispute_SingleShot(t *testing.T) {
	app, store := newTestApp()

	resp := postDispute(t, app, sampleRequest())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var res entity.OrchestratorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.True(t, res.Success)
	assert.False(t, res.WasRefused)
	assert.Equal(t, "eligible", res.Tags.EligibilityLabel)
	assert.Equal(t, 1, store.logs)
}

func TestHandleDispute_RefusalIsStill200(t *testing.T) {
	app, _ := newTestApp()

	req := sampleRequest()
	req.Context = nil
	req.Input = "which crypto should I buy"
	resp := postDispute(t, app, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var res entity.OrchestratorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.False(t, res.Success)
	assert.True(t, res.WasRefused)
	assert.Equal(t, entity.RefusalOutOfScope, res.RefusalReason)
}

func TestHandleDispute_RejectsMalformedRequests(t *testing.T) {
	app, _ := newTestApp()

	t.Run("missing required fields", func(t *testing.T) {
		resp := postDispute(t, app, entity.DisputeRequest{Input: "hello"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/dispute", strings.NewReader("not json"))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandleDispute_Streaming(t *testing.T) {
	app, store := newTestApp()

	req := sampleRequest()
	req.Stream = true
	resp := postDispute(t, app, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	events := parseSSE(t, string(body))

	require.NotEmpty(t, events)
	var statuses []string
	for _, ev := range events[:len(events)-1] {
		assert.Equal(t, "status", ev.name)
		var s statusEvent
		require.NoError(t, json.Unmarshal([]byte(ev.data), &s))
		statuses = append(statuses, s.Message)
	}
	assert.Equal(t, []string{
		"validating scope",
		"retrieving knowledge",
		"classifying",
		"generating",
		"checking compliance",
		"saving",
	}, statuses)

	terminal := events[len(events)-1]
	assert.Equal(t, "result", terminal.name)
	var res resultEvent
	require.NoError(t, json.Unmarshal([]byte(terminal.data), &res))
	require.NotNil(t, res.Result)
	assert.True(t, res.Result.Success)
	assert.Equal(t, 1, store.logs)
}

func TestStreamingMatchesSingleShot(t *testing.T) {
	appA, _ := newTestApp()
	respA := postDispute(t, appA, sampleRequest())
	var single entity.OrchestratorResponse
	require.NoError(t, json.NewDecoder(respA.Body).Decode(&single))

	appB, _ := newTestApp()
	req := sampleRequest()
	req.Stream = true
	respB := postDispute(t, appB, req)
	body, err := io.ReadAll(respB.Body)
	require.NoError(t, err)
	events := parseSSE(t, string(body))
	var terminal resultEvent
	require.NoError(t, json.Unmarshal([]byte(events[len(events)-1].data), &terminal))

	single.ProcessingTimeMs = 0
	terminal.Result.ProcessingTimeMs = 0
	a, err := json.Marshal(single)
	require.NoError(t, err)
	b, err := json.Marshal(terminal.Result)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

type sseFrame struct {
	name string
	data string
}

func parseSSE(t *testing.T, body string) []sseFrame {
	t.Helper()
	var frames []sseFrame
	for _, block := range strings.Split(strings.TrimSpace(body), "\n\n") {
		var frame sseFrame
		for _, line := range strings.Split(block, "\n") {
			switch {
			case strings.HasPrefix(line, "event: "):
				frame.name = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				frame.data = strings.TrimPrefix(line, "data: ")
			}
		}
		require.NotEmpty(t, frame.name)
		frames = append(frames, frame)
	}
	return frames
}
