package domain

import "context"

// Response carries what the engine needs from one HTTP exchange.
type Response struct {
	StatusCode int
	Body       string
}

// Poster performs a single submission attempt against a target.
// A returned error means a transport-level failure (connection refused,
// timeout, TLS error); a non-200 status is a normal Response.
type Poster interface {
	Post(ctx context.Context, t Target, flag Flag) (Response, error)
}

// ReportWriter persists a result sequence and returns the path written.
type ReportWriter interface {
	Write(all []SubmissionResult) (string, error)
}
