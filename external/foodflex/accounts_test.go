package foodflex

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginUnwrapsNestedTokens(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/login/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ada@foodflex.ng", body["email"])

		w.Write([]byte(`{
			"message": "Login successful",
			"user": {"id": 3, "email": "ada@foodflex.ng", "role": "BUYER"},
			"tokens": {"access": "acc-nested", "refresh": "ref-nested"}
		}`))
	})

	c := newTestClient(t, mux, nil)
	res, err := c.Login(context.Background(), "ada@foodflex.ng", "pw")
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.User.ID)
	assert.Equal(t, "acc-nested", res.Tokens.Access)
	assert.Equal(t, "ref-nested", res.Tokens.Refresh)
}

func TestRegisterAcceptsFlattenedTokens(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/register/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{
			"user": {"id": 9, "email": "new@foodflex.ng", "role": "BUYER"},
			"access": "acc-flat",
			"refresh": "ref-flat"
		}`))
	})

	c := newTestClient(t, mux, nil)
	res, err := c.Register(context.Background(), RegisterRequest{Email: "new@foodflex.ng"})
	require.NoError(t, err)
	assert.Equal(t, "acc-flat", res.Tokens.Access)
	assert.Equal(t, "ref-flat", res.Tokens.Refresh)
}

func TestAuthResponseWithoutTokensIsAnError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/login/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user": {"id": 3, "role": "BUYER"}}`))
	})

	c := newTestClient(t, mux, nil)
	_, err := c.Login(context.Background(), "a@b.com", "pw")
	assert.Error(t, err)
}

func TestLogoutSendsRefreshToken(t *testing.T) {
	var got map[string]string
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/logout/", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"message": "Logged out"}`))
	})

	c := newTestClient(t, mux, &fakeTokens{access: "acc", refresh: "ref"})
	require.NoError(t, c.Logout(context.Background(), "ref"))
	assert.Equal(t, "ref", got["refresh_token"])
}
