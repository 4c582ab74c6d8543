package store

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Credentials adapts a Store to the API client's token source. The refresh
// flow writes new access tokens through SetAccessToken; Clear is the one
// teardown path shared by logout and refresh exhaustion.
type Credentials struct {
	Store Store
}

func NewCredentials(s Store) *Credentials {
	return &Credentials{Store: s}
}

func (c *Credentials) AccessToken() string {
	v, _ := c.Store.Get(KeyAccessToken)
	return v
}

func (c *Credentials) RefreshToken() string {
	v, _ := c.Store.Get(KeyRefreshToken)
	return v
}

func (c *Credentials) SetAccessToken(token string) {
	c.Store.Set(KeyAccessToken, token, accessTTL(token))
}

// SetTokens persists a freshly issued pair with their respective lifetimes.
func (c *Credentials) SetTokens(access, refresh string) {
	c.Store.Set(KeyAccessToken, access, accessTTL(access))
	c.Store.Set(KeyRefreshToken, refresh, RefreshTokenTTL)
}

// Clear drops everything: tokens and the cached profile. Always succeeds
// locally; no server round trip involved.
func (c *Credentials) Clear() {
	c.Store.Remove(KeyAccessToken)
	c.Store.Remove(KeyRefreshToken)
	c.Store.Remove(KeyUser)
}

// accessTTL reads the token's own exp claim (unverified; the client is not
// the audience that needs signature checks) so the stored copy dies with
// the token. Unparseable tokens get the default lifetime.
func accessTTL(token string) time.Duration {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return AccessTokenTTL
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return AccessTokenTTL
	}
	ttl := time.Until(exp.Time)
	if ttl <= 0 || ttl > AccessTokenTTL {
		return AccessTokenTTL
	}
	return ttl
}
