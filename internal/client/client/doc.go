// Package client contains the client-side transports of uuidfeed.
//
// # Overview
//
// The package provides:
//  1. An HTTP API client (see HTTPClient) for generate, bulk-generate,
//     stats, history and feed configuration.
//  2. A live feed subscriber (see Subscriber) that opens the gRPC server
//     stream with a feed token, hands every record to a callback, and on
//     disconnect waits, backfills from history and resubscribes.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable for transport failures and 5xx responses,
// common.ErrCollision for a rejected bulk batch and common.ErrInvalidRequest
// for 4xx responses. A single-value collision is not an error; it is
// reported through models.GenerateResult.Collision.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package client
