// Package models defines the data the client receives from the server.
package models

import "time"

// Record is one generated identifier as seen by the client.
type Record struct {
	ID        int64     `json:"id"`
	UUID      string    `json:"uuid"`
	CreatedAt time.Time `json:"created_at"`
	ClientID  string    `json:"client_id"`
	IsGift    bool      `json:"is_gift"`
}

// Stats mirrors GET /stats.
type Stats struct {
	TotalGenerated int64 `json:"total_generated"`
	Collisions     int64 `json:"collisions"`
}

// GenerateResult is the outcome of POST /generate. On a collision Record is
// nil and Collision is set.
type GenerateResult struct {
	UUID      string  `json:"uuid"`
	Record    *Record `json:"data,omitempty"`
	Collision bool    `json:"-"`
}

// FeedConfig mirrors GET /config.
type FeedConfig struct {
	FeedAddr  string    `json:"feed_addr"`
	FeedToken string    `json:"feed_token"`
	ExpiresAt time.Time `json:"expires_at"`
}
