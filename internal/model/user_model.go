package model

import "time"

// Roles assigned by the backend.
const (
	RoleBuyer  = "BUYER"
	RoleSeller = "SELLER"
	RoleAdmin  = "ADMIN"
)

// User mirrors the profile representation returned by /accounts/ endpoints.
type User struct {
	ID               int64      `json:"id"`
	Username         string     `json:"username"`
	Email            string     `json:"email"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	FullName         string     `json:"full_name,omitempty"`
	PhoneNumber      string     `json:"phone_number,omitempty"`
	Role             string     `json:"role"`
	ProfileImage     string     `json:"profile_image,omitempty"`
	Address          string     `json:"address,omitempty"`
	IsVerified       bool       `json:"is_verified"`
	IsSellerApproved bool       `json:"is_seller_approved"`
	IsSuperuser      bool       `json:"is_superuser,omitempty"`
	DateJoined       *time.Time `json:"date_joined,omitempty"`
}

func (u *User) IsBuyer() bool  { return u != nil && u.Role == RoleBuyer }
func (u *User) IsSeller() bool { return u != nil && u.Role == RoleSeller }

// IsAdmin also accepts superusers whose role was never migrated to ADMIN.
func (u *User) IsAdmin() bool {
	return u != nil && (u.Role == RoleAdmin || u.IsSuperuser)
}

// SellerProfile is the business profile attached to approved sellers.
type SellerProfile struct {
	ID                   int64      `json:"id"`
	User                 *User      `json:"user,omitempty"`
	BusinessName         string     `json:"business_name"`
	BusinessDescription  string     `json:"business_description"`
	BusinessAddress      string     `json:"business_address"`
	WalletBalance        Money      `json:"wallet_balance"`
	TotalEarnings        Money      `json:"total_earnings"`
	TotalProducts        int        `json:"total_products"`
	TotalOrdersFulfilled int        `json:"total_orders_fulfilled"`
	CreatedAt            *time.Time `json:"created_at,omitempty"`
	UpdatedAt            *time.Time `json:"updated_at,omitempty"`
}
