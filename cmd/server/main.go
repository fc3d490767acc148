package main

import (
	"context"
	"log"
	"time"

	"dispute-core/internal/adapter/api"
	"dispute-core/internal/adapter/client"
	"dispute-core/internal/adapter/store"
	"dispute-core/internal/config"
	"dispute-core/internal/domain/entity"
	"dispute-core/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/qdrant/go-client/qdrant"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const modelCallTimeout = 25 * time.Second

func main() {
	if err := godotenv.Load(".env.dev"); err != nil {
		log.Println("Warning: .env.dev file not found, using system environment variables")
	}
	ctx := context.Background()
	cfg := config.Load()

	logger, err := zap.NewProductionConfig().Build()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	// Redis for the interaction log and dispute history
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	// Qdrant for knowledge retrieval
	qClient, err := qdrant.NewClient(&qdrant.Config{
		Host: cfg.QdrantHost,
		Port: cfg.QdrantPort,
	})
	if err != nil {
		logger.Fatal("failed to connect to qdrant", zap.Error(err))
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  cfg.GoogleProject,
		Location: cfg.GoogleLocation,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		logger.Fatal("failed to init genai client", zap.Error(err))
	}

	rules := entity.DefaultRuleSet()

	embedder := client.NewEmbedder(genaiClient, cfg.EmbeddingModel)
	classifier := usecase.NewTimeoutClassifier(
		client.NewGeminiClassifier(genaiClient, cfg.ClassifierModel), modelCallTimeout)
	generator := usecase.NewTimeoutGenerator(
		client.NewGeminiGenerator(genaiClient, cfg.GeneratorModel, rules), modelCallTimeout)

	retriever := store.NewQdrantRetriever(qClient, embedder, cfg.QdrantCollection)
	if err := retriever.InitCollection(ctx, 768); err != nil {
		logger.Fatal("failed to init qdrant collection", zap.Error(err))
	}

	interactions := store.NewRedisInteractionStore(rdb)

	knowledge := usecase.NewKnowledgeService(retriever, rules,
		cfg.StrictRetrieval, cfg.RAGMaxChars, cfg.RetrievalTopK, logger)
	cooldown := usecase.NewCooldownPolicy(interactions,
		cfg.CooldownWindow, cfg.CooldownMaxAttempts, logger)

	versions := entity.ModelVersions{
		Classifier: cfg.ClassifierVersion,
		Core:       cfg.CoreVersion,
		Retriever:  cfg.RetrieverVersion,
	}

	// Inject the adapters into the orchestration layer
	orchestrator := usecase.NewOrchestrator(rules, knowledge, cooldown,
		classifier, generator, interactions, versions, logger)

	// Initialize API Layer (Delivery Layer)
	app := fiber.New(fiber.Config{
		AppName: "Dispute-Core Gateway",
	})

	handler := api.NewDisputeHandler(orchestrator, logger)
	api.SetupRouter(app, handler)

	// Start Server
	logger.Info("dispute-core gateway running", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
