// Package http implements the read-only wave feed.
//
// It exposes the wave list and its count as JSON, the configured version as
// text, and the middleware shared by every route: panic recovery, trace IDs
// with a request-scoped logger, request timeouts and access logging. Handlers
// only read snapshots from the service layer; the list itself is kept fresh
// by the refresh worker.
package http
