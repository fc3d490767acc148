package config

import (
	"os"
	"strconv"
	"time"
)

// Config is read once at boot from the environment. Model-version strings are
// the identifiers reported in responses, not the models actually invoked.
type Config struct {
	Port             string
	RedisAddr        string
	QdrantHost       string
	QdrantPort       int
	QdrantCollection string
	GoogleProject    string
	GoogleLocation   string

	ClassifierModel string
	GeneratorModel  string
	EmbeddingModel  string

	StrictRetrieval bool
	RAGMaxChars     int
	RetrievalTopK   int

	CooldownWindow      time.Duration
	CooldownMaxAttempts int

	ClassifierVersion string
	CoreVersion       string
	RetrieverVersion  string
}

func Load() Config {
	cfg := Config{
		Port:             getenv("PORT", "8080"),
		RedisAddr:        getenv("REDIS_ADDR", "localhost:6379"),
		QdrantHost:       getenv("QDRANT_HOST", "localhost"),
		QdrantPort:       getint("QDRANT_PORT", 6334),
		QdrantCollection: getenv("QDRANT_COLLECTION", "credit_knowledge"),
		GoogleProject:    os.Getenv("GOOGLE_CLOUD_PROJECT"),
		GoogleLocation:   os.Getenv("GOOGLE_CLOUD_LOCATION"),

		ClassifierModel: getenv("CLASSIFIER_MODEL", "gemini-2.5-flash"),
		GeneratorModel:  getenv("GENERATOR_MODEL", "gemini-2.5-flash"),
		EmbeddingModel:  getenv("EMBEDDING_MODEL", "text-embedding-004"),

		StrictRetrieval: getbool("STRICT_RETRIEVAL", false),
		RAGMaxChars:     getint("RAG_MAX_CHARS", 3500),
		RetrievalTopK:   getint("RETRIEVAL_TOP_K", 4),

		CooldownWindow:      time.Duration(getint("COOLDOWN_WINDOW_DAYS", 30)) * 24 * time.Hour,
		CooldownMaxAttempts: getint("COOLDOWN_MAX_ATTEMPTS", 2),

		ClassifierVersion: getenv("MODEL_VERSION_CLASSIFIER", "dispute-classifier-v2"),
		CoreVersion:       getenv("MODEL_VERSION_CORE", "dispute-core-v2"),
		RetrieverVersion:  getenv("MODEL_VERSION_RETRIEVER", "knowledge-retriever-v1"),
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getbool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
