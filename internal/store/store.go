// Package store is the client-persisted state slot: tokens and the cached
// user profile, each with its own expiry. The gateway backs it with a JSON
// file so a session survives restarts; tests use the in-memory
// implementation.
package store

import "time"

// Keys for the persisted slots.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyUser         = "user"
)

// Lifetimes for the persisted slots: short for the access token, longer
// for the refresh token and the cached profile.
const (
	AccessTokenTTL  = 24 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
	UserTTL         = 7 * 24 * time.Hour
)

// Store is key/value storage with per-entry expiry. Expired entries read
// as absent.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string, ttl time.Duration)
	Remove(key string)
}
