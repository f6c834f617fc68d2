// Package cli provides the interactive uuidfeed terminal client.
//
// It wires configuration, the local session store, the HTTP API client and
// the live feed subscriber behind a small REPL. Records pushed by the
// server are merged into a bounded, de-duplicated list and echoed as they
// arrive.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
