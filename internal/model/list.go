package model

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// SortOrder is the direction of a listing sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortableUserFields maps API sort keys to whether they are accepted.
var SortableUserFields = map[string]bool{
	"createdAt": true,
	"updatedAt": true,
	"email":     true,
	"firstName": true,
	"lastName":  true,
	"role":      true,
	"lastLogin": true,
}

// ListUsersParams describes a paginated user query.
type ListUsersParams struct {
	Page            int64
	Limit           int64
	Role            *Role
	Search          string
	SortBy          string
	SortOrder       SortOrder
	IncludeInactive bool
}

// Normalize fills defaults and clamps the page window.
func (p ListUsersParams) Normalize() ListUsersParams {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	// Keep Skip within int64.
	if maxPage := math.MaxInt64 / p.Limit; p.Page > maxPage {
		p.Page = maxPage
	}
	if p.SortBy == "" {
		p.SortBy = "createdAt"
	}
	if p.SortOrder != SortAsc {
		p.SortOrder = SortDesc
	}
	return p
}

// Skip returns the number of records before the current page.
func (p ListUsersParams) Skip() int64 {
	return (p.Page - 1) * p.Limit
}

// UserPage is one page of a user listing.
type UserPage struct {
	Users      []User
	Page       int64
	Limit      int64
	Total      int64
	TotalPages int64
}

// RoleStats aggregates users of a single role.
type RoleStats struct {
	Role        Role
	Count       int64
	ActiveCount int64
}

// UserStats aggregates the whole user collection.
type UserStats struct {
	Total    int64
	Active   int64
	Inactive int64
	ByRole   []RoleStats
}
