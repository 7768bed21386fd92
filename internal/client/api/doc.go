// Package api implements the HTTP/JSON client for the job-board backend.
//
// The backend wraps every response in an envelope:
//
//	{ "success": bool, "data": ..., "message": "...", "error": "..." }
//
// The Client interface lists the logical operations; HTTPClient is the
// concrete implementation. Transport failures and HTTP statuses are mapped to
// the sentinel errors in errors.go at this boundary, so callers never branch
// on status codes.
package api
