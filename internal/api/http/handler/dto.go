package handler

import (
	"time"

	"github.com/dtroode/wedwisely-server/internal/model"
)

// userResponse is the public view of a user. It has no password field.
type userResponse struct {
	ID                string     `json:"id"`
	Email             string     `json:"email"`
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	FullName          string     `json:"fullName"`
	Role              model.Role `json:"role"`
	Status            string     `json:"status"`
	IsActive          bool       `json:"isActive"`
	LastLogin         *time.Time `json:"lastLogin"`
	PasswordChangedAt *time.Time `json:"passwordChangedAt"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func newUserResponse(u model.User) userResponse {
	return userResponse{
		ID:                u.ID,
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		FullName:          u.FullName(),
		Role:              u.Role,
		Status:            string(u.Status),
		IsActive:          u.IsActive(),
		LastLogin:         u.LastLogin,
		PasswordChangedAt: u.PasswordChangedAt,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

type tokensResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

func newTokensResponse(p model.TokenPair) tokensResponse {
	return tokensResponse{
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		ExpiresIn:    p.ExpiresIn,
	}
}

type authResponse struct {
	User   userResponse   `json:"user"`
	Tokens tokensResponse `json:"tokens"`
}

func newAuthResponse(r model.AuthResult) authResponse {
	return authResponse{User: newUserResponse(r.User), Tokens: newTokensResponse(r.Tokens)}
}

// refreshUser is the trimmed user returned by the refresh endpoint.
type refreshUser struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
}

type refreshResponse struct {
	User   refreshUser    `json:"user"`
	Tokens tokensResponse `json:"tokens"`
}

type pagination struct {
	CurrentPage int64 `json:"currentPage"`
	TotalPages  int64 `json:"totalPages"`
	TotalUsers  int64 `json:"totalUsers"`
	Limit       int64 `json:"limit"`
}

type userListResponse struct {
	Users      []userResponse `json:"users"`
	Pagination pagination     `json:"pagination"`
}

func newUserListResponse(p model.UserPage) userListResponse {
	users := make([]userResponse, 0, len(p.Users))
	for _, u := range p.Users {
		users = append(users, newUserResponse(u))
	}
	return userListResponse{
		Users: users,
		Pagination: pagination{
			CurrentPage: p.Page,
			TotalPages:  p.TotalPages,
			TotalUsers:  p.Total,
			Limit:       p.Limit,
		},
	}
}

type roleStats struct {
	Role        model.Role `json:"role"`
	Count       int64      `json:"count"`
	ActiveCount int64      `json:"activeCount"`
}

type statsResponse struct {
	TotalUsers    int64       `json:"totalUsers"`
	ActiveUsers   int64       `json:"activeUsers"`
	InactiveUsers int64       `json:"inactiveUsers"`
	RoleStats     []roleStats `json:"roleStats"`
}

func newStatsResponse(s model.UserStats) statsResponse {
	out := statsResponse{
		TotalUsers:    s.Total,
		ActiveUsers:   s.Active,
		InactiveUsers: s.Inactive,
		RoleStats:     make([]roleStats, 0, len(s.ByRole)),
	}
	for _, r := range s.ByRole {
		out.RoleStats = append(out.RoleStats, roleStats{Role: r.Role, Count: r.Count, ActiveCount: r.ActiveCount})
	}
	return out
}

type registerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	FirstName string `json:"firstName" binding:"required,max=50"`
	LastName  string `json:"lastName" binding:"required,max=50"`
	Role      string `json:"role" binding:"omitempty,role"`
}

func (r registerRequest) params() model.RegisterParams {
	return model.RegisterParams{
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Role:      model.Role(r.Role),
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type profileRequest struct {
	FirstName *string `json:"firstName" binding:"omitnil,min=1,max=50"`
	LastName  *string `json:"lastName" binding:"omitnil,min=1,max=50"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// updateUserRequest accepts isActive as an alias for status.
type updateUserRequest struct {
	FirstName *string `json:"firstName" binding:"omitnil,min=1,max=50"`
	LastName  *string `json:"lastName" binding:"omitnil,min=1,max=50"`
	Role      *string `json:"role" binding:"omitnil,role"`
	Status    *string `json:"status" binding:"omitnil,oneof=active deactivated"`
	IsActive  *bool   `json:"isActive"`
}

func (r updateUserRequest) update() model.UserUpdate {
	u := model.UserUpdate{FirstName: r.FirstName, LastName: r.LastName}
	if r.Role != nil {
		role := model.Role(*r.Role)
		u.Role = &role
	}
	switch {
	case r.Status != nil:
		status := model.UserStatus(*r.Status)
		u.Status = &status
	case r.IsActive != nil:
		status := model.StatusDeactivated
		if *r.IsActive {
			status = model.StatusActive
		}
		u.Status = &status
	}
	return u
}

type listUsersQuery struct {
	Page            int64  `form:"page"`
	Limit           int64  `form:"limit"`
	Role            string `form:"role" binding:"omitempty,role"`
	Search          string `form:"search"`
	SortBy          string `form:"sortBy"`
	SortOrder       string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
	IncludeInactive bool   `form:"includeInactive"`
}

func (q listUsersQuery) params() model.ListUsersParams {
	p := model.ListUsersParams{
		Page:            q.Page,
		Limit:           q.Limit,
		Search:          q.Search,
		SortBy:          q.SortBy,
		SortOrder:       model.SortOrder(q.SortOrder),
		IncludeInactive: q.IncludeInactive,
	}
	if q.Role != "" {
		role := model.Role(q.Role)
		p.Role = &role
	}
	return p
}
