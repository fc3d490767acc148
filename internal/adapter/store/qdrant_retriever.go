package store

import (
	"context"
	"fmt"

	"dispute-core/internal/domain/repository"

	"github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// QdrantRetriever serves ranked knowledge passages: the query is embedded and
// matched against the knowledge collection, and passage text comes back from
// the point payload.
type QdrantRetriever struct {
	client         *qdrant.Client
	embedder       repository.Embedder
	collectionName string
}

func NewQdrantRetriever(client *qdrant.Client, embedder repository.Embedder, collectionName string) *QdrantRetriever {
	return &QdrantRetriever{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
	}
}

func (s *QdrantRetriever) InitCollection(ctx context.Context, dim uint64) error {
	_, err := s.client.GetCollectionInfo(ctx, s.collectionName)
	if err != nil {
		st, ok := status.FromError(err)
		if ok && st.Code() == codes.NotFound {
			err := s.client.CreateCollection(ctx, &qdrant.CreateCollection{
				CollectionName: s.collectionName,
				VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
					Size:     dim,
					Distance: qdrant.Distance_Cosine,
				}),
			})
			if err != nil {
				return fmt.Errorf("failed to create collection: %w", err)
			}
		} else {
			return err
		}
	}
	return nil
}

func (s *QdrantRetriever) Retrieve(ctx context.Context, query string, topK int) ([]string, error) {
	vector, err := s.embedder.CreateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query embedding failed: %w", err)
	}

	res, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collectionName,
		Query:          qdrant.NewQuery(vector...),
		Limit:          qdrant.PtrOf(uint64(topK)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("knowledge query failed: %w", err)
	}

	passages := make([]string, 0, len(res))
	for _, hit := range res {
		if text := hit.Payload["text"].GetStringValue(); text != "" {
			passages = append(passages, text)
		}
	}
	return passages, nil
}
