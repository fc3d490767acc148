package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"dispute-core/internal/domain/entity"

	"github.com/redis/go-redis/v9"
)

const interactionLogKey = "interactions"

// RedisInteractionStore holds the append-only interaction log and the
// per-identity dispute history the cooldown policy reads.
type RedisInteractionStore struct {
	client *redis.Client
}

func NewRedisInteractionStore(client *redis.Client) *RedisInteractionStore {
	return &RedisInteractionStore{client: client}
}

func (r *RedisInteractionStore) AppendLog(ctx context.Context, row *entity.InteractionLog) error {
	b, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("marshal interaction log: %w", err)
	}
	return r.client.RPush(ctx, interactionLogKey, b).Err()
}

func disputeKey(clientID, bureau, identity string) string {
	return "disputes:" + clientID + ":" + bureau + ":" + identity
}

func (r *RedisInteractionStore) RecordDispute(ctx context.Context, rec *entity.DisputeRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal dispute record: %w", err)
	}
	key := disputeKey(rec.ClientID, rec.Bureau, rec.Identity)
	return r.client.ZAdd(ctx, key, redis.Z{
		Score:  float64(rec.CreatedAt.Unix()),
		Member: b,
	}).Err()
}

func (r *RedisInteractionStore) RecentDisputes(ctx context.Context, clientID, bureau, identity string, window time.Duration) ([]entity.DisputeRecord, error) {
	key := disputeKey(clientID, bureau, identity)
	cutoff := time.Now().Add(-window).Unix()

	// Expire attempts that fell out of the window.
	r.client.ZRemRangeByScore(ctx, key, "-inf", "("+strconv.FormatInt(cutoff, 10))

	vals, err := r.client.ZRangeByScore(ctx, key, &redis.ZRangeBy{
		Min: strconv.FormatInt(cutoff, 10),
		Max: "+inf",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("dispute history read failed: %w", err)
	}

	records := make([]entity.DisputeRecord, 0, len(vals))
	for _, v := range vals {
		var rec entity.DisputeRecord
		if err := json.Unmarshal([]byte(v), &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
