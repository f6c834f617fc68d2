// Package common contains shared constants and sentinel errors used across
// uuidfeed components.
package common

const (
	// FeedTokenHeaderName is the gRPC metadata key carrying the feed token.
	FeedTokenHeaderName = "feed_token"

	// CounterTotalGenerated and CounterCollisions name the rows of the
	// counters table.
	CounterTotalGenerated = "total_generated"
	CounterCollisions     = "collisions"

	// SystemClientID marks records produced by the server itself.
	SystemClientID = "SYSTEM_GENERATOR"

	// FeedChannel is the PostgreSQL NOTIFY channel fired on every insert
	// into generated_uuids.
	FeedChannel = "generated_uuids"
)
