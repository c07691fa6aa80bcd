// Package common contains constants and helpers shared by the client
// transport, services and display surfaces.
package common

// HTTP header names used on outbound API calls.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)

// Keys of the client-side key/value stores. The durable store keeps the
// token between runs; the preferred language is written to both stores.
const (
	AuthTokenKey         = "auth_token"
	LastUsernameKey      = "last_username"
	PreferredLanguageKey = "preferred_language"
)
