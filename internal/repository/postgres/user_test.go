package postgres

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/wedwisely-server/internal/model"
)

var (
	fixedNow   = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	allColumns = []string{"id", "email", "password", "first_name", "last_name", "role", "status",
		"last_login", "password_changed_at", "created_at", "updated_at"}
)

func newMockRepository(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	r := NewUserRepository(db)
	r.now = func() time.Time { return fixedNow }
	return r, mock
}

func userRow(id, email string, status model.UserStatus, lastLogin any) *sqlmock.Rows {
	return sqlmock.NewRows(allColumns).AddRow(
		id, email, "hash", "Jane", "Doe", "user", string(status),
		lastLogin, nil, fixedNow, fixedNow,
	)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(m sqlmock.Sqlmock)
		wantErr error
		wantID  string
	}{
		{
			name: "found",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`SELECT .+ FROM users WHERE email = \$1`).
					WithArgs("bride@example.com").
					WillReturnRows(userRow("u1", "bride@example.com", model.StatusActive, fixedNow))
			},
			wantID: "u1",
		},
		{
			name: "missing",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`SELECT .+ FROM users WHERE email = \$1`).
					WithArgs("bride@example.com").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, mock := newMockRepository(t)
			tt.setup(mock)

			got, err := r.GetByEmail(ctx, "  Bride@Example.com ")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
			assert.Equal(t, model.RoleUser, got.Role)
			require.NotNil(t, got.LastLogin)
			assert.Nil(t, got.PasswordChangedAt)
		})
	}
}

func TestUserRepository_GetByID_DriverError(t *testing.T) {
	r, mock := newMockRepository(t)
	mock.ExpectQuery(`SELECT .+ FROM users WHERE id = \$1`).
		WithArgs("u1").
		WillReturnError(errors.New("connection reset"))

	_, err := r.GetByID(context.Background(), "u1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrNotFound)
	assert.Contains(t, err.Error(), "failed to get user by id")
}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	insert := `INSERT INTO users \(id, email, password, first_name, last_name, role, status, created_at, updated_at\)`

	t.Run("defaults role and status", func(t *testing.T) {
		r, mock := newMockRepository(t)
		mock.ExpectQuery(insert).
			WithArgs(sqlmock.AnyArg(), "bride@example.com", "hash", "Jane", "Doe", "user", "active", fixedNow, fixedNow).
			WillReturnRows(userRow("generated", "bride@example.com", model.StatusActive, nil))

		saved, err := r.Create(ctx, model.User{Email: "Bride@Example.com", PasswordHash: "hash", FirstName: "Jane", LastName: "Doe"})
		require.NoError(t, err)
		assert.Equal(t, "generated", saved.ID)
		assert.Nil(t, saved.LastLogin)
	})

	t.Run("duplicate email", func(t *testing.T) {
		r, mock := newMockRepository(t)
		mock.ExpectQuery(insert).
			WillReturnError(&pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_email_unique"})

		_, err := r.Create(ctx, model.User{Email: "bride@example.com"})
		assert.ErrorIs(t, err, model.ErrDuplicateEmail)
	})
}

func TestUserRepository_Update(t *testing.T) {
	ctx := context.Background()
	first := "Janet"
	vendor := model.RoleVendor

	t.Run("sets only provided fields", func(t *testing.T) {
		r, mock := newMockRepository(t)
		mock.ExpectQuery(`UPDATE users SET updated_at = \$1, first_name = \$2, role = \$3 WHERE id = \$4 RETURNING`).
			WithArgs(fixedNow, "Janet", "vendor", "u1").
			WillReturnRows(userRow("u1", "bride@example.com", model.StatusActive, nil))

		_, err := r.Update(ctx, "u1", model.UserUpdate{FirstName: &first, Role: &vendor})
		require.NoError(t, err)
	})

	t.Run("missing user", func(t *testing.T) {
		r, mock := newMockRepository(t)
		mock.ExpectQuery(`UPDATE users SET`).WillReturnError(sql.ErrNoRows)

		_, err := r.Update(ctx, "missing", model.UserUpdate{FirstName: &first})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestUserRepository_Mutations(t *testing.T) {
	ctx := context.Background()
	changedAt := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	r, mock := newMockRepository(t)
	mock.ExpectExec(`UPDATE users SET password = \$1, password_changed_at = \$2, updated_at = \$3 WHERE id = \$4`).
		WithArgs("new-hash", changedAt, fixedNow, "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE users SET last_login = \$1 WHERE id = \$2`).
		WithArgs(changedAt, "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE users SET status = \$1, updated_at = \$2 WHERE id = \$3`).
		WithArgs("deactivated", fixedNow, "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE users SET status`).
		WillReturnError(errors.New("read-only transaction"))

	assert.NoError(t, r.SetPassword(ctx, "u1", "new-hash", changedAt))
	assert.ErrorIs(t, r.SetLastLogin(ctx, "missing", changedAt), model.ErrNotFound)
	assert.NoError(t, r.Deactivate(ctx, "u1"))

	err := r.Deactivate(ctx, "u2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to deactivate user")
}

func TestUserRepository_List(t *testing.T) {
	r, mock := newMockRepository(t)
	vendor := model.RoleVendor

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users WHERE status = \$1 AND role = \$2 AND \(first_name ILIKE \$3 OR last_name ILIKE \$3 OR email ILIKE \$3\)`).
		WithArgs("active", "vendor", `%50\%\_off%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT .+ FROM users WHERE .+ ORDER BY email ASC NULLS FIRST, id ASC LIMIT \$4 OFFSET \$5`).
		WithArgs("active", "vendor", `%50\%\_off%`, int64(2), int64(2)).
		WillReturnRows(userRow("u3", "c@example.com", model.StatusActive, nil))

	users, total, err := r.List(context.Background(), model.ListUsersParams{
		Page: 2, Limit: 2, Role: &vendor, Search: "50%_off", SortBy: "email", SortOrder: model.SortAsc,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, users, 1)
	assert.Equal(t, "u3", users[0].ID)
}

func TestUserRepository_ListHugePageOffsetStaysPositive(t *testing.T) {
	r, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users WHERE status = \$1`).
		WithArgs("active").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT .+ FROM users WHERE status = \$1 ORDER BY .+ LIMIT \$2 OFFSET \$3`).
		WithArgs("active", int64(100), int64((math.MaxInt64/100-1)*100)).
		WillReturnRows(sqlmock.NewRows(allColumns))

	users, total, err := r.List(context.Background(), model.ListUsersParams{Page: 100000000000000000, Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Empty(t, users)
}

func TestBuildListFilter(t *testing.T) {
	where, args := buildListFilter(model.ListUsersParams{IncludeInactive: true})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = buildListFilter(model.ListUsersParams{})
	assert.Equal(t, " WHERE status = $1", where)
	assert.Equal(t, []any{"active"}, args)
}

func TestBuildSort(t *testing.T) {
	tests := []struct {
		params model.ListUsersParams
		want   string
	}{
		{params: model.ListUsersParams{}.Normalize(), want: "created_at DESC NULLS LAST, id DESC"},
		{params: model.ListUsersParams{SortBy: "lastLogin", SortOrder: model.SortAsc}, want: "last_login ASC NULLS FIRST, id ASC"},
		{params: model.ListUsersParams{SortBy: "password; DROP TABLE users", SortOrder: model.SortDesc}, want: "created_at DESC NULLS LAST, id DESC"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, buildSort(tt.params))
	}
}

func TestUserRepository_Stats(t *testing.T) {
	r, mock := newMockRepository(t)
	mock.ExpectQuery(`SELECT role, COUNT\(\*\), COUNT\(\*\) FILTER \(WHERE status = \$1\)`).
		WithArgs("active").
		WillReturnRows(sqlmock.NewRows([]string{"role", "count", "active"}).
			AddRow("admin", 1, 1).
			AddRow("user", 5, 4).
			AddRow("vendor", 2, 1))

	stats, err := r.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(8), stats.Total)
	assert.Equal(t, int64(6), stats.Active)
	assert.Equal(t, int64(2), stats.Inactive)
	assert.Equal(t, []model.RoleStats{
		{Role: model.RoleAdmin, Count: 1, ActiveCount: 1},
		{Role: model.RoleUser, Count: 5, ActiveCount: 4},
		{Role: model.RoleVendor, Count: 2, ActiveCount: 1},
	}, stats.ByRole)
}

func TestUserRepository_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(errors.New("down"))
	assert.Error(t, NewUserRepository(db).Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
