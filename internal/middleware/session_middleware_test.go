package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olowojude/Food-Flex/external/foodflex"
	"github.com/olowojude/Food-Flex/internal/services"
	"github.com/olowojude/Food-Flex/internal/store"
)

// Role checks only read persisted state; no backend is involved.
func newGatedSession(t *testing.T, userJSON string) *services.SessionService {
	t.Helper()
	creds := store.NewCredentials(store.NewMemory())
	if userJSON != "" {
		creds.SetTokens("acc", "ref")
		creds.Store.Set(store.KeyUser, userJSON, 0)
	}
	api := foodflex.NewClient("http://backend.invalid", creds)
	return services.NewSessionService(api, creds)
}

func serveGated(t *testing.T, mw echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.GET("/app/page", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, mw)

	req := httptest.NewRequest(http.MethodGet, "/app/page", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuthRedirectsAnonymousToLogin(t *testing.T) {
	ss := newGatedSession(t, "")
	rec := serveGated(t, RequireAuth(ss))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestRequireAuthPassesSignedIn(t *testing.T) {
	ss := newGatedSession(t, `{"id":1,"role":"BUYER"}`)
	rec := serveGated(t, RequireAuth(ss))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireBuyerRedirectsWrongRoleHome(t *testing.T) {
	ss := newGatedSession(t, `{"id":2,"role":"SELLER"}`)
	rec := serveGated(t, RequireBuyer(ss))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}

func TestRequireBuyerRedirectsAnonymousToLogin(t *testing.T) {
	ss := newGatedSession(t, "")
	rec := serveGated(t, RequireBuyer(ss))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestRequireSellerPassesSeller(t *testing.T) {
	ss := newGatedSession(t, `{"id":2,"role":"SELLER"}`)
	rec := serveGated(t, RequireSeller(ss))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdminAcceptsSuperuser(t *testing.T) {
	// legacy superusers whose role was never migrated still pass
	ss := newGatedSession(t, `{"id":3,"role":"BUYER","is_superuser":true}`)
	rec := serveGated(t, RequireAdmin(ss))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdminRejectsBuyer(t *testing.T) {
	ss := newGatedSession(t, `{"id":1,"role":"BUYER"}`)
	rec := serveGated(t, RequireAdmin(ss))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}
