package model

import (
	"context"
	"strings"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, id string, update UserUpdate) (User, error)
	SetPassword(ctx context.Context, id string, passwordHash string, changedAt time.Time) error
	SetLastLogin(ctx context.Context, id string, at time.Time) error
	Deactivate(ctx context.Context, id string) error
	List(ctx context.Context, params ListUsersParams) ([]User, int64, error)
	Stats(ctx context.Context) (UserStats, error)
	Ping(ctx context.Context) error
}

// Role is the access level of a user.
type Role string

const (
	RoleUser   Role = "user"
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleVendor, RoleAdmin:
		return true
	}
	return false
}

// UserStatus is the lifecycle state of an account.
type UserStatus string

const (
	StatusActive      UserStatus = "active"
	StatusDeactivated UserStatus = "deactivated"
)

// Valid reports whether s is one of the known statuses.
func (s UserStatus) Valid() bool {
	return s == StatusActive || s == StatusDeactivated
}

// User represents a stored account. PasswordHash is loaded for verification
// only and never leaves the service layer.
type User struct {
	ID                string
	Email             string
	PasswordHash      string `json:"-"`
	FirstName         string
	LastName          string
	Role              Role
	Status            UserStatus
	LastLogin         *time.Time
	PasswordChangedAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// FullName joins first and last name.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsActive reports whether the account may authenticate.
func (u User) IsActive() bool {
	return u.Status == StatusActive
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ChangedPasswordAfter reports whether a token issued at issuedAt predates the
// last password change. Token timestamps carry second precision, so a token
// issued within the same second as the change is treated as stale.
func (u User) ChangedPasswordAfter(issuedAt time.Time) bool {
	if u.PasswordChangedAt == nil {
		return false
	}
	return issuedAt.Unix() <= u.PasswordChangedAt.Unix()
}

// UserUpdate lists the fields a generic update may touch. Email and password
// are deliberately absent; nil means "leave unchanged".
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Role      *Role
	Status    *UserStatus
}

// IsEmpty reports whether the update changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Role == nil && u.Status == nil
}

// ProfileUpdate is the self-service subset of UserUpdate.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
