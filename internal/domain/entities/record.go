package entities

// Record is the external knowledge-base row keyed by participant email.
// This service looks it up and patches it; it never creates or deletes one.
type Record struct {
	PageID string
	Email  string
}
