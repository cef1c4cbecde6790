package model

// Scope carries the authenticated caller identity through a request.
// Auth middleware fills it; use cases read it to stamp audit fields.
// UserID is empty when the deployment runs without per-key identities.
type Scope struct {
	UserID string
}
