package models

import "time"

// AccessToken is the bearer token returned by the OAuth2 token endpoint.
// It lives for the duration of one publish run and is never cached.
type AccessToken struct {
	Raw       string    // the opaque bearer string
	ExpiresAt time.Time // zero when the token carries no readable expiry
}

// Outcome is the terminal state of a publish run.
type Outcome string

const (
	OutcomeCreated Outcome = "Created"
	OutcomeUpdated Outcome = "Updated"
)

// PublishResult reports how a publish run ended.
type PublishResult struct {
	Outcome    Outcome
	SecretName string
}
