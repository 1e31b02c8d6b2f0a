package data

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	trendingKey = "truthlens.trending"
	trendingMax = 20
)

// TrendingEntry is the compact record shown in the trending feed.
type TrendingEntry struct {
	ID              string    `json:"id"`
	InputType       string    `json:"inputType"`
	ExtractedClaim  string    `json:"extractedClaim"`
	Verdict         string    `json:"verdict"`
	ConfidenceScore uint8     `json:"confidenceScore"`
	CreatedAt       time.Time `json:"createdAt"`
}

// PushTrending prepends a completed check to the feed, keeping the newest 20.
func PushTrending(ctx context.Context, rdb *redis.Client, entry TrendingEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	pipe := rdb.TxPipeline()
	pipe.LPush(ctx, trendingKey, payload)
	pipe.LTrim(ctx, trendingKey, 0, trendingMax-1)
	_, err = pipe.Exec(ctx)
	return err
}

// RecentTrending returns the feed, newest first.
func RecentTrending(ctx context.Context, rdb *redis.Client) ([]TrendingEntry, error) {
	raw, err := rdb.LRange(ctx, trendingKey, 0, trendingMax-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]TrendingEntry, 0, len(raw))
	for _, item := range raw {
		var entry TrendingEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
