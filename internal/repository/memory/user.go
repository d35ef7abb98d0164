// Package memory provides an in-process UserStore for local runs and tests.
package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dtroode/wedwisely-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]model.User
	byEmail map[string]string
	now     func() time.Time
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]model.User),
		byEmail: make(map[string]string),
		now:     time.Now,
	}
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[model.NormalizeEmail(email)]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (r *UserRepository) Create(_ context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.Email = model.NormalizeEmail(user.Email)
	if _, taken := r.byEmail[user.Email]; taken {
		return model.User{}, model.ErrDuplicateEmail
	}

	now := r.now().UTC()
	user.ID = primitive.NewObjectID().Hex()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.LastLogin = nil
	user.PasswordChangedAt = nil
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	if user.Status == "" {
		user.Status = model.StatusActive
	}

	r.byID[user.ID] = user
	r.byEmail[user.Email] = user.ID
	return user, nil
}

func (r *UserRepository) Update(_ context.Context, id string, update model.UserUpdate) (model.User, error) {
	var out model.User
	err := r.mutate(id, func(u *model.User) {
		if update.FirstName != nil {
			u.FirstName = *update.FirstName
		}
		if update.LastName != nil {
			u.LastName = *update.LastName
		}
		if update.Role != nil {
			u.Role = *update.Role
		}
		if update.Status != nil {
			u.Status = *update.Status
		}
		u.UpdatedAt = r.now().UTC()
		out = *u
	})
	return out, err
}

func (r *UserRepository) SetPassword(_ context.Context, id string, passwordHash string, changedAt time.Time) error {
	return r.mutate(id, func(u *model.User) {
		at := changedAt.UTC()
		u.PasswordHash = passwordHash
		u.PasswordChangedAt = &at
		u.UpdatedAt = r.now().UTC()
	})
}

func (r *UserRepository) SetLastLogin(_ context.Context, id string, at time.Time) error {
	return r.mutate(id, func(u *model.User) {
		at := at.UTC()
		u.LastLogin = &at
	})
}

func (r *UserRepository) Deactivate(_ context.Context, id string) error {
	return r.mutate(id, func(u *model.User) {
		u.Status = model.StatusDeactivated
		u.UpdatedAt = r.now().UTC()
	})
}

func (r *UserRepository) mutate(id string, fn func(*model.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return model.ErrNotFound
	}
	fn(&u)
	r.byID[id] = u
	return nil
}

func (r *UserRepository) List(_ context.Context, params model.ListUsersParams) ([]model.User, int64, error) {
	params = params.Normalize()
	search := strings.ToLower(params.Search)

	r.mu.RLock()
	matched := make([]model.User, 0, len(r.byID))
	for _, u := range r.byID {
		if !params.IncludeInactive && !u.IsActive() {
			continue
		}
		if params.Role != nil && u.Role != *params.Role {
			continue
		}
		if search != "" && !matchesSearch(u, search) {
			continue
		}
		matched = append(matched, u)
	}
	r.mu.RUnlock()

	slices.SortFunc(matched, func(a, b model.User) int {
		c := compareBy(params.SortBy, a, b)
		if c == 0 {
			c = strings.Compare(a.ID, b.ID)
		}
		if params.SortOrder == model.SortDesc {
			return -c
		}
		return c
	})

	total := int64(len(matched))
	start := min(params.Skip(), total)
	end := min(start+params.Limit, total)
	return matched[start:end], total, nil
}

func (r *UserRepository) Stats(_ context.Context) (model.UserStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byRole := make(map[model.Role]*model.RoleStats)
	var stats model.UserStats
	for _, u := range r.byID {
		rs, ok := byRole[u.Role]
		if !ok {
			rs = &model.RoleStats{Role: u.Role}
			byRole[u.Role] = rs
		}
		rs.Count++
		stats.Total++
		if u.IsActive() {
			rs.ActiveCount++
			stats.Active++
		}
	}
	stats.Inactive = stats.Total - stats.Active

	stats.ByRole = make([]model.RoleStats, 0, len(byRole))
	for _, rs := range byRole {
		stats.ByRole = append(stats.ByRole, *rs)
	}
	slices.SortFunc(stats.ByRole, func(a, b model.RoleStats) int {
		return strings.Compare(string(a.Role), string(b.Role))
	})

	return stats, nil
}

func (r *UserRepository) Ping(context.Context) error {
	return nil
}

func matchesSearch(u model.User, search string) bool {
	return strings.Contains(strings.ToLower(u.FirstName), search) ||
		strings.Contains(strings.ToLower(u.LastName), search) ||
		strings.Contains(u.Email, search)
}

func compareBy(field string, a, b model.User) int {
	switch field {
	case "updatedAt":
		return a.UpdatedAt.Compare(b.UpdatedAt)
	case "email":
		return strings.Compare(a.Email, b.Email)
	case "firstName":
		return strings.Compare(a.FirstName, b.FirstName)
	case "lastName":
		return strings.Compare(a.LastName, b.LastName)
	case "role":
		return cmp.Compare(a.Role, b.Role)
	case "lastLogin":
		return compareOptionalTime(a.LastLogin, b.LastLogin)
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

// compareOptionalTime orders missing values first, as MongoDB sorts null before dates.
func compareOptionalTime(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Compare(*b)
	}
}
