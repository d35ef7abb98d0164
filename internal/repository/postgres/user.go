package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/wedwisely-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const uniqueViolation = "23505"

const userColumns = `id, email, password, first_name, last_name, role, status,
	last_login, password_changed_at, created_at, updated_at`

var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"email":     "email",
	"firstName": "first_name",
	"lastName":  "last_name",
	"role":      "role",
	"lastLogin": "last_login",
}

type UserRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{
		db:  db,
		now: time.Now,
	}
}

// timestamp matches the microsecond precision of timestamptz.
func (r *UserRepository) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Microsecond)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (model.User, error) {
	var (
		u                model.User
		role, status     string
		lastLogin        sql.NullTime
		passwordChangeAt sql.NullTime
	)
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &role, &status,
		&lastLogin, &passwordChangeAt, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return model.User{}, err
	}
	u.Role = model.Role(role)
	u.Status = model.UserStatus(status)
	if lastLogin.Valid {
		t := lastLogin.Time.UTC()
		u.LastLogin = &t
	}
	if passwordChangeAt.Valid {
		t := passwordChangeAt.Time.UTC()
		u.PasswordChangedAt = &t
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return u, nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (model.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	user, err := r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, model.NormalizeEmail(email))
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, err
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	user, err := r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, err
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	now := r.timestamp()
	user.ID = uuid.NewString()
	user.Email = model.NormalizeEmail(user.Email)
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	if user.Status == "" {
		user.Status = model.StatusActive
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `INSERT INTO users (id, email, password, first_name, last_name, role, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING ` + userColumns

	saved, err := scanUser(r.db.QueryRowContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		string(user.Role), string(user.Status), user.CreatedAt, user.UpdatedAt,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.User{}, model.ErrDuplicateEmail
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, update model.UserUpdate) (model.User, error) {
	set := []string{"updated_at = $1"}
	args := []any{r.timestamp()}
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if update.FirstName != nil {
		add("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		add("last_name", *update.LastName)
	}
	if update.Role != nil {
		add("role", string(*update.Role))
	}
	if update.Status != nil {
		add("status", string(*update.Status))
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), len(args), userColumns)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) SetPassword(ctx context.Context, id string, passwordHash string, changedAt time.Time) error {
	return r.exec(ctx, "set password",
		`UPDATE users SET password = $1, password_changed_at = $2, updated_at = $3 WHERE id = $4`,
		passwordHash, changedAt.UTC(), r.timestamp(), id)
}

func (r *UserRepository) SetLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.exec(ctx, "set last login",
		`UPDATE users SET last_login = $1 WHERE id = $2`,
		at.UTC(), id)
}

func (r *UserRepository) Deactivate(ctx context.Context, id string) error {
	return r.exec(ctx, "deactivate user",
		`UPDATE users SET status = $1, updated_at = $2 WHERE id = $3`,
		string(model.StatusDeactivated), r.timestamp(), id)
}

func (r *UserRepository) exec(ctx context.Context, op, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context, params model.ListUsersParams) ([]model.User, int64, error) {
	params = params.Normalize()
	where, args := buildListFilter(params)

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	args = append(args, params.Limit, params.Skip())
	query := fmt.Sprintf(`SELECT %s FROM users%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		userColumns, where, buildSort(params), len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0, params.Limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, total, nil
}

func (r *UserRepository) Stats(ctx context.Context) (model.UserStats, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT role, COUNT(*), COUNT(*) FILTER (WHERE status = $1)
		FROM users GROUP BY role ORDER BY role`, string(model.StatusActive))
	if err != nil {
		return model.UserStats{}, fmt.Errorf("failed to aggregate user stats: %w", err)
	}
	defer rows.Close()

	stats := model.UserStats{ByRole: []model.RoleStats{}}
	for rows.Next() {
		var (
			role string
			rs   model.RoleStats
		)
		if err := rows.Scan(&role, &rs.Count, &rs.ActiveCount); err != nil {
			return model.UserStats{}, fmt.Errorf("failed to scan user stats: %w", err)
		}
		rs.Role = model.Role(role)
		stats.Total += rs.Count
		stats.Active += rs.ActiveCount
		stats.ByRole = append(stats.ByRole, rs)
	}
	if err := rows.Err(); err != nil {
		return model.UserStats{}, fmt.Errorf("failed to iterate user stats: %w", err)
	}
	stats.Inactive = stats.Total - stats.Active

	return stats, nil
}

func (r *UserRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func buildListFilter(params model.ListUsersParams) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if !params.IncludeInactive {
		args = append(args, string(model.StatusActive))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if params.Role != nil {
		args = append(args, string(*params.Role))
		conds = append(conds, fmt.Sprintf("role = $%d", len(args)))
	}
	if params.Search != "" {
		args = append(args, "%"+likeEscaper.Replace(params.Search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d)", n, n, n))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// buildSort expects normalized params. NULLs sort first ascending and last
// descending, the same as the document store; id breaks ties.
func buildSort(params model.ListUsersParams) string {
	column, ok := sortColumns[params.SortBy]
	if !ok {
		column = "created_at"
	}
	if params.SortOrder == model.SortAsc {
		return column + " ASC NULLS FIRST, id ASC"
	}
	return column + " DESC NULLS LAST, id DESC"
}
