// Package remote talks to the hosted "notes" collection over its REST
// interface.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     FetchLatest, Insert, Upsert, each scoped by the owner id.
//  2. A concrete HTTP implementation (see HTTPClient) that builds
//     PostgREST-style requests, carries the API key as both apikey and
//     bearer headers plus the owner identity header, and maps transport,
//     status and payload failures to sentinel errors.
//
// # Error Handling
//
// Failures are exposed as sentinel errors matched with errors.Is:
// ErrNetwork (transport unreachable or timed out), ErrServer (non-2xx
// response), ErrDecode (malformed payload).
//
// Requests are never retried here; retry policy belongs to the sync engine.
// All operations accept context.Context and honor cancellation/timeouts.
package remote
