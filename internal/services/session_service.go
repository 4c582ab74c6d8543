package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"

	"github.com/olowojude/Food-Flex/external/foodflex"
	"github.com/olowojude/Food-Flex/internal/model"
	"github.com/olowojude/Food-Flex/internal/store"
)

const MinPasswordLen = 8

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// SessionService owns the authenticated principal: it logs in, persists the
// token pair and a cached profile copy, and tears everything down on logout.
// It initializes before the cart holder; everything else reads it.
type SessionService struct {
	API   *foodflex.Client
	Creds *store.Credentials
}

func NewSessionService(api *foodflex.Client, creds *store.Credentials) *SessionService {
	return &SessionService{API: api, Creds: creds}
}

func (s *SessionService) Login(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, errors.New("please provide both email and password")
	}

	res, err := s.API.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.Creds.SetTokens(res.Tokens.Access, res.Tokens.Refresh)
	s.saveUser(&res.User)
	return &res.User, nil
}

// Register validates the form locally first; only a clean form reaches the
// network. Server-side rejections still surface verbatim.
func (s *SessionService) Register(ctx context.Context, req foodflex.RegisterRequest) (*model.User, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	res, err := s.API.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	s.Creds.SetTokens(res.Tokens.Access, res.Tokens.Refresh)
	s.saveUser(&res.User)
	return &res.User, nil
}

func validateRegistration(req foodflex.RegisterRequest) error {
	if req.Username == "" || req.Email == "" || req.FirstName == "" || req.LastName == "" {
		return errors.New("username, email, first name and last name are required")
	}
	if !emailRegex.MatchString(req.Email) {
		return errors.New("invalid email format")
	}
	if len(req.Password) < MinPasswordLen {
		return fmt.Errorf("password too short: must be at least %d characters", MinPasswordLen)
	}
	if req.Password != req.Password2 {
		return errors.New("password fields didn't match")
	}
	return nil
}

// Logout clears all persisted session state unconditionally. The server-side
// token blacklist call is best effort; its failure never blocks teardown.
func (s *SessionService) Logout(ctx context.Context) {
	if refresh := s.Creds.RefreshToken(); refresh != "" {
		if err := s.API.Logout(ctx, refresh); err != nil {
			log.Printf("logout blacklist call failed: %v", err)
		}
	}
	s.Creds.Clear()
}

// Current returns the cached profile copy, or nil when logged out. A corrupt
// slot is dropped rather than surfaced.
func (s *SessionService) Current() *model.User {
	raw, ok := s.Creds.Store.Get(store.KeyUser)
	if !ok {
		return nil
	}
	var u model.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		s.Creds.Store.Remove(store.KeyUser)
		return nil
	}
	return &u
}

func (s *SessionService) Authenticated() bool { return s.Current() != nil }
func (s *SessionService) IsBuyer() bool       { return s.Current().IsBuyer() }
func (s *SessionService) IsSeller() bool      { return s.Current().IsSeller() }
func (s *SessionService) IsAdmin() bool       { return s.Current().IsAdmin() }

// UpdateProfile waits for the server's canonical representation and replaces
// the local copy with it. No optimistic write.
func (s *SessionService) UpdateProfile(ctx context.Context, req foodflex.ProfileUpdate) (*model.User, error) {
	u, err := s.API.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}
	s.saveUser(u)
	return u, nil
}

// RefreshUser re-reads the profile from the server.
func (s *SessionService) RefreshUser(ctx context.Context) (*model.User, error) {
	u, err := s.API.Profile(ctx)
	if err != nil {
		return nil, err
	}
	s.saveUser(u)
	return u, nil
}

func (s *SessionService) saveUser(u *model.User) {
	raw, err := json.Marshal(u)
	if err != nil {
		return
	}
	s.Creds.Store.Set(store.KeyUser, string(raw), store.UserTTL)
}
