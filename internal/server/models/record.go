// Package models defines server-side data models persisted in the database.
package models

import "time"

// Record is one row of generated_uuids. The JSON names match the columns,
// so the payload produced by row_to_json decodes into it directly.
type Record struct {
	ID        int64     `json:"id"`
	UUID      string    `json:"uuid"`
	CreatedAt time.Time `json:"created_at"`
	ClientID  string    `json:"client_id"`
	IsGift    bool      `json:"is_gift"`
}

// Stats is the read model over the counters table.
type Stats struct {
	TotalGenerated int64 `json:"total_generated"`
	Collisions     int64 `json:"collisions"`
}

// GenerateResult is the outcome of a single generation attempt. Exactly one
// of Record and Collision is set.
type GenerateResult struct {
	UUID      string
	Record    *Record
	Collision bool
}

// FeedConfig tells a client where the live feed is and how to authenticate.
type FeedConfig struct {
	FeedAddr  string    `json:"feed_addr"`
	FeedToken string    `json:"feed_token"`
	ExpiresAt time.Time `json:"expires_at"`
}
