package services

import (
	"context"
	"io"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olowojude/Food-Flex/external/foodflex"
)

func TestLoginPersistsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/login/", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{
			"message": "Login successful",
			"user": {"id": 3, "username": "ada", "email": "ada@foodflex.ng", "role": "BUYER"},
			"tokens": {"access": "acc-1", "refresh": "ref-1"}
		}`)
	})
	api, creds := newTestAPI(t, mux)
	ss := NewSessionService(api, creds)

	user, err := ss.Login(context.Background(), "ada@foodflex.ng", "pw")
	require.NoError(t, err)
	assert.Equal(t, "ada", user.Username)

	assert.Equal(t, "acc-1", creds.AccessToken())
	assert.Equal(t, "ref-1", creds.RefreshToken())
	require.True(t, ss.Authenticated())
	assert.True(t, ss.IsBuyer())
	assert.False(t, ss.IsSeller())
	assert.False(t, ss.IsAdmin())
}

func TestLoginRequiresBothFields(t *testing.T) {
	var calls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	})
	api, creds := newTestAPI(t, mux)
	ss := NewSessionService(api, creds)

	_, err := ss.Login(context.Background(), "", "pw")
	assert.EqualError(t, err, "please provide both email and password")
	_, err = ss.Login(context.Background(), "a@b.com", "")
	assert.EqualError(t, err, "please provide both email and password")
	assert.EqualValues(t, 0, atomic.LoadInt32(&calls))
}

func TestRegisterLocalValidation(t *testing.T) {
	var calls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	})
	api, creds := newTestAPI(t, mux)
	ss := NewSessionService(api, creds)
	ctx := context.Background()

	base := foodflex.RegisterRequest{
		Username:  "ada",
		Email:     "ada@foodflex.ng",
		FirstName: "Ada",
		LastName:  "Obi",
		Password:  "longenough",
		Password2: "longenough",
	}

	missing := base
	missing.FirstName = ""
	_, err := ss.Register(ctx, missing)
	assert.EqualError(t, err, "username, email, first name and last name are required")

	badEmail := base
	badEmail.Email = "not-an-email"
	_, err = ss.Register(ctx, badEmail)
	assert.EqualError(t, err, "invalid email format")

	short := base
	short.Password, short.Password2 = "short", "short"
	_, err = ss.Register(ctx, short)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password too short")

	mismatch := base
	mismatch.Password2 = "different-pass"
	_, err = ss.Register(ctx, mismatch)
	assert.EqualError(t, err, "password fields didn't match")

	assert.EqualValues(t, 0, atomic.LoadInt32(&calls), "invalid forms never reach the network")
}

func TestRegisterPersistsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/register/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{
			"user": {"id": 9, "username": "new", "email": "new@foodflex.ng", "role": "BUYER"},
			"access": "acc-9",
			"refresh": "ref-9"
		}`)
	})
	api, creds := newTestAPI(t, mux)
	ss := NewSessionService(api, creds)

	user, err := ss.Register(context.Background(), foodflex.RegisterRequest{
		Username:  "new",
		Email:     "new@foodflex.ng",
		FirstName: "New",
		LastName:  "User",
		Password:  "longenough",
		Password2: "longenough",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), user.ID)
	assert.Equal(t, "acc-9", creds.AccessToken())
	assert.True(t, ss.Authenticated())
}

func TestLogoutClearsEvenWhenServerFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/login/", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{
			"user": {"id": 3, "role": "BUYER"},
			"tokens": {"access": "acc-1", "refresh": "ref-1"}
		}`)
	})
	mux.HandleFunc("/accounts/logout/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error":"blacklist unavailable"}`)
	})
	api, creds := newTestAPI(t, mux)
	ss := NewSessionService(api, creds)

	_, err := ss.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)

	ss.Logout(context.Background())
	assert.False(t, ss.Authenticated())
	assert.Empty(t, creds.AccessToken())
	assert.Empty(t, creds.RefreshToken())
}

func TestRoleHelpersWhenLoggedOut(t *testing.T) {
	api, creds := newTestAPI(t, http.NewServeMux())
	creds.Clear()
	ss := NewSessionService(api, creds)

	assert.False(t, ss.Authenticated())
	assert.False(t, ss.IsBuyer())
	assert.False(t, ss.IsSeller())
	assert.False(t, ss.IsAdmin())
	assert.Nil(t, ss.Current())
}

func TestUpdateProfileReplacesCachedCopy(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/login/", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{
			"user": {"id": 3, "first_name": "Ada", "role": "BUYER"},
			"tokens": {"access": "acc-1", "refresh": "ref-1"}
		}`)
	})
	mux.HandleFunc("/accounts/profile/", func(w http.ResponseWriter, r *http.Request) {
		// canonical server copy, not an echo of the request
		io.WriteString(w, `{"id": 3, "first_name": "Adaeze", "role": "BUYER"}`)
	})
	api, creds := newTestAPI(t, mux)
	ss := NewSessionService(api, creds)

	_, err := ss.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)

	updated, err := ss.UpdateProfile(context.Background(), foodflex.ProfileUpdate{FirstName: "Adaeze"})
	require.NoError(t, err)
	assert.Equal(t, "Adaeze", updated.FirstName)
	assert.Equal(t, "Adaeze", ss.Current().FirstName)
}
