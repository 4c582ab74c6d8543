package foodflex

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/olowojude/Food-Flex/internal/model"
)

// Tokens is the JWT pair issued on login and registration.
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AuthResult is the normalized outcome of login/register.
type AuthResult struct {
	User   model.User
	Tokens Tokens
}

// authPayload absorbs both response shapes the backend has used: tokens
// nested under "tokens" (login) or flattened at the top level (register).
type authPayload struct {
	User    model.User `json:"user"`
	Tokens  *Tokens    `json:"tokens"`
	Access  string     `json:"access"`
	Refresh string     `json:"refresh"`
}

func (p *authPayload) result() (*AuthResult, error) {
	access, refresh := p.Access, p.Refresh
	if p.Tokens != nil {
		access, refresh = p.Tokens.Access, p.Tokens.Refresh
	}
	if access == "" || refresh == "" {
		return nil, fmt.Errorf("auth response missing tokens")
	}
	return &AuthResult{User: p.User, Tokens: Tokens{Access: access, Refresh: refresh}}, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var payload authPayload
	if err := c.do(ctx, http.MethodPost, "/accounts/login/", nil, body, &payload); err != nil {
		return nil, err
	}
	return payload.result()
}

// RegisterRequest carries the registration form. Password2 is the
// confirmation field the serializer insists on.
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Password    string `json:"password"`
	Password2   string `json:"password2"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	var payload authPayload
	if err := c.do(ctx, http.MethodPost, "/accounts/register/", nil, req, &payload); err != nil {
		return nil, err
	}
	return payload.result()
}

// Logout blacklists the refresh token server-side. Callers treat failures
// as non-fatal; local teardown never waits on this.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	body := map[string]string{"refresh_token": refreshToken}
	return c.do(ctx, http.MethodPost, "/accounts/logout/", nil, body, nil)
}

func (c *Client) Profile(ctx context.Context) (*model.User, error) {
	var u model.User
	if err := c.do(ctx, http.MethodGet, "/accounts/profile/", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ProfileUpdate is a partial profile edit; zero-valued fields are omitted.
type ProfileUpdate struct {
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
	Address      string `json:"address,omitempty"`
}

// UpdateProfile returns the server's canonical representation; callers
// replace their local copy with it rather than patching optimistically.
func (c *Client) UpdateProfile(ctx context.Context, req ProfileUpdate) (*model.User, error) {
	var u model.User
	if err := c.do(ctx, http.MethodPut, "/accounts/profile/", nil, req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword, confirm string) error {
	body := map[string]string{
		"old_password":     oldPassword,
		"new_password":     newPassword,
		"confirm_password": confirm,
	}
	return c.do(ctx, http.MethodPost, "/accounts/profile/password/", nil, body, nil)
}

// SellerApplication is the business profile submitted when a buyer applies
// to become a seller.
type SellerApplication struct {
	BusinessName        string `json:"business_name"`
	BusinessDescription string `json:"business_description"`
	BusinessAddress     string `json:"business_address"`
}

func (c *Client) ApplyForSeller(ctx context.Context, req SellerApplication) error {
	return c.do(ctx, http.MethodPost, "/accounts/profile/business/apply/", nil, req, nil)
}

func (c *Client) SellerProfile(ctx context.Context) (*model.SellerProfile, error) {
	var p model.SellerProfile
	if err := c.do(ctx, http.MethodGet, "/accounts/profile/business/", nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateSellerProfile(ctx context.Context, req SellerApplication) (*model.SellerProfile, error) {
	var p model.SellerProfile
	if err := c.do(ctx, http.MethodPut, "/accounts/profile/business/update/", nil, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UserPage is one page of the admin user listing.
type UserPage struct {
	Count    int          `json:"count"`
	Next     *string      `json:"next"`
	Previous *string      `json:"previous"`
	Results  []model.User `json:"results"`
}

// UserQuery filters the admin user listing.
type UserQuery struct {
	Search string
	Role   string
	Page   int
}

func (q UserQuery) values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Role != "" {
		v.Set("role", q.Role)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	return v
}

func (c *Client) Users(ctx context.Context, q UserQuery) (*UserPage, error) {
	var page UserPage
	if err := c.do(ctx, http.MethodGet, "/accounts/users/", q.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) User(ctx context.Context, userID int64) (*model.User, error) {
	var u model.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/accounts/users/%d/", userID), nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UpdateUser(ctx context.Context, userID int64, fields map[string]any) (*model.User, error) {
	var u model.User
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/accounts/users/%d/update/", userID), nil, fields, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) DeleteUser(ctx context.Context, userID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/accounts/users/%d/delete/", userID), nil, nil, nil)
}

func (c *Client) ApproveSeller(ctx context.Context, userID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/accounts/users/%d/approve-seller/", userID), nil, nil, nil)
}
