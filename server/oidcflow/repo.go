// Package oidcflow tracks in-flight identity-provider sign-ins between the
// redirect to the provider and the callback.
package oidcflow

import "time"

// FlowState is everything the callback needs to finish a sign-in: the PKCE
// verifier, the nonce to check, and where the user was headed.
type FlowState struct {
	CodeVerifier string
	Nonce        string
	ReturnURL    string
	Locale       string
	CreatedAt    time.Time
}

type Repo interface {
	Upsert(state string, flowState *FlowState) error
	Get(state string) (*FlowState, error)
	Delete(state string) error
}
