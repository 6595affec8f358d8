package domain

// SubmissionResult is the outcome of one (flag, target) task. Immutable
// once produced. The Flag field holds only the redacted preview; the
// full token is never serialized.
type SubmissionResult struct {
	Target     string `json:"target"`
	Flag       string `json:"flag"`
	Success    bool   `json:"success"`
	StatusCode int    `json:"status_code,omitempty"`
	Response   string `json:"response,omitempty"`
	Attempt    int    `json:"attempt,omitempty"`
	Error      string `json:"error,omitempty"`
}
