package models

import "time"

// Credential is a usable access credential for one tenant shop, extracted
// from a stored session record. It is what the upload pipeline carries into
// every asset API call.
type Credential struct {
	// Shop is the normalized tenant domain the credential belongs to
	// (e.g. "example.myshopify.com").
	Shop string `json:"shop"`

	// AccessToken is the opaque Admin API token. Never logged in full.
	AccessToken string `json:"-"`

	// Scope is the comma-separated list of API scopes granted to the token.
	Scope string `json:"scope"`

	// IsOnline reports whether the originating session was an online
	// (user-bound, short-lived) session rather than an offline one.
	IsOnline bool `json:"is_online"`
}

// SessionRecord is one row of the credential store. The store may hold many
// historical records per shop; at most one is current but the table does not
// enforce that, so the resolver picks deterministically.
type SessionRecord struct {
	// SessionID is the store key. Offline sessions follow the
	// "offline_<shop>" convention; online sessions carry a generated suffix.
	SessionID string `json:"session_id"`

	// Shop is the tenant domain recorded at session creation time.
	Shop string `json:"shop"`

	// Payload is the serialized session body as persisted by the embedded
	// app framework. The access token lives inside it.
	Payload []byte `json:"-"`

	// CreatedAt orders records newest-first during fallback resolution.
	CreatedAt time.Time `json:"created_at"`
}

// SessionPayload is the subset of the serialized session body the resolver
// cares about. Unknown fields are ignored during decoding.
type SessionPayload struct {
	Shop        string `json:"shop"`
	AccessToken string `json:"accessToken"`
	Scope       string `json:"scope"`
	IsOnline    bool   `json:"isOnline"`
}
