package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dtroode/wedwisely-server/internal/apierrors"
	"github.com/dtroode/wedwisely-server/internal/logger"
	"github.com/dtroode/wedwisely-server/internal/model"
	"github.com/dtroode/wedwisely-server/internal/password"
)

const (
	minPasswordLength = 8
	maxNameLength     = 50
)

type noopEvents struct{}

func (noopEvents) Record(string, string) {}

// AuthOption customizes Auth.
type AuthOption func(*Auth)

// WithAuthEvents reports authentication outcomes to rec.
func WithAuthEvents(rec model.AuthEvents) AuthOption {
	return func(a *Auth) { a.events = rec }
}

// WithAuthClock replaces time.Now, for tests.
func WithAuthClock(now func() time.Time) AuthOption {
	return func(a *Auth) { a.now = now }
}

type Auth struct {
	users  model.UserStore
	hasher model.PasswordHasher
	tokens *TokenService
	logger *logger.Logger
	events model.AuthEvents
	now    func() time.Time
}

func NewAuth(
	users model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
	opts ...AuthOption,
) *Auth {
	a := &Auth{
		users:  users,
		hasher: hasher,
		tokens: NewTokenService(tokenManager, users, logger),
		logger: logger,
		events: noopEvents{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Register creates an account. The requested role is honored only when actor
// is an active admin; everyone else gets RoleUser.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams, actor *model.User) (model.AuthResult, error) {
	if params.Role == "" {
		params.Role = model.RoleUser
	}
	if actor == nil || !actor.IsAdmin() || !actor.IsActive() {
		if params.Role != model.RoleUser {
			a.logger.Info("Auth service: privileged role requested without admin actor, forcing user role",
				"email", params.Email,
				"requested_role", params.Role)
		}
		params.Role = model.RoleUser
	}

	res, err := a.register(ctx, params)
	a.record(model.EventRegister, err)
	return res, err
}

// CreateAdmin registers an admin account on behalf of an admin actor.
func (a *Auth) CreateAdmin(ctx context.Context, params model.RegisterParams, actor *model.User) (model.AuthResult, error) {
	if actor == nil || !actor.IsAdmin() {
		return model.AuthResult{}, apierrors.NewErrAdminRequired()
	}

	params.Role = model.RoleAdmin
	return a.register(ctx, params)
}

// SeedAdmin creates the initial admin from the operator CLI. An existing
// account with the same email is returned unchanged.
func (a *Auth) SeedAdmin(ctx context.Context, params model.RegisterParams) (model.User, bool, error) {
	existing, err := a.users.GetByEmail(ctx, model.NormalizeEmail(params.Email))
	if err == nil {
		a.logger.Info("Auth service: admin already exists, skipping seed",
			"email", existing.Email,
			"role", existing.Role)
		return existing, false, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, false, fmt.Errorf("failed to get user by email: %w", err)
	}

	params.Role = model.RoleAdmin
	user, err := a.createUser(ctx, params)
	if err != nil {
		return model.User{}, false, err
	}
	return user, true, nil
}

func (a *Auth) register(ctx context.Context, params model.RegisterParams) (model.AuthResult, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", params.Email,
		"role", params.Role)

	user, err := a.createUser(ctx, params)
	if err != nil {
		return model.AuthResult{}, err
	}

	tokens, err := a.tokens.Issue(user)
	if err != nil {
		a.logger.Error("Auth service: failed to issue tokens",
			"user_id", user.ID,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to issue tokens: %w", err)
	}

	a.logger.Info("Auth service: user registered successfully",
		"user_id", user.ID,
		"role", user.Role)

	return model.AuthResult{User: user, Tokens: tokens}, nil
}

func (a *Auth) createUser(ctx context.Context, params model.RegisterParams) (model.User, error) {
	params.Email = model.NormalizeEmail(params.Email)
	params.FirstName = strings.TrimSpace(params.FirstName)
	params.LastName = strings.TrimSpace(params.LastName)

	if err := validateRegistration(params); err != nil {
		return model.User{}, err
	}

	_, err := a.users.GetByEmail(ctx, params.Email)
	if err == nil {
		a.logger.Info("Auth service: user already exists",
			"email", params.Email)
		return model.User{}, apierrors.NewErrEmailIsTaken(params.Email)
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := a.hashPassword(params.Password)
	if err != nil {
		return model.User{}, err
	}

	user, err := a.users.Create(ctx, model.User{
		Email:        params.Email,
		PasswordHash: hash,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Role:         params.Role,
		Status:       model.StatusActive,
	})
	if err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			return model.User{}, apierrors.NewErrEmailIsTaken(params.Email)
		}
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials. Unknown email, deactivated account and wrong
// password all produce the same error.
func (a *Auth) Login(ctx context.Context, email, plaintext string) (model.AuthResult, error) {
	res, err := a.login(ctx, email, plaintext)
	a.record(model.EventLogin, err)
	return res, err
}

func (a *Auth) login(ctx context.Context, email, plaintext string) (model.AuthResult, error) {
	email = model.NormalizeEmail(email)
	if email == "" || plaintext == "" {
		return model.AuthResult{}, apierrors.NewErrValidation("Email and password are required")
	}

	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Debug("Auth service: login for unknown email",
				"email", email)
			return model.AuthResult{}, apierrors.NewErrInvalidCredentials()
		}
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(plaintext, user.PasswordHash) {
		a.logger.Info("Auth service: wrong password",
			"user_id", user.ID)
		return model.AuthResult{}, apierrors.NewErrInvalidCredentials()
	}

	if !user.IsActive() {
		a.logger.Info("Auth service: login attempt for deactivated account",
			"user_id", user.ID)
		return model.AuthResult{}, apierrors.NewErrInvalidCredentials()
	}

	now := a.now()
	if err := a.users.SetLastLogin(ctx, user.ID, now); err != nil {
		a.logger.Error("Auth service: failed to update last login",
			"user_id", user.ID,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to update last login: %w", err)
	}
	user.LastLogin = &now

	tokens, err := a.tokens.Issue(user)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to issue tokens: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return model.AuthResult{User: user, Tokens: tokens}, nil
}

// RefreshToken exchanges a refresh token for a new pair.
func (a *Auth) RefreshToken(ctx context.Context, refreshToken string) (model.AuthResult, error) {
	if refreshToken == "" {
		return model.AuthResult{}, apierrors.NewErrValidation("Refresh token is required")
	}

	user, tokens, err := a.tokens.Refresh(ctx, refreshToken)
	a.record(model.EventRefresh, err)
	if err != nil {
		return model.AuthResult{}, err
	}

	return model.AuthResult{User: user, Tokens: tokens}, nil
}

// Authenticate resolves a bearer access token to its user.
func (a *Auth) Authenticate(ctx context.Context, accessToken string) (model.User, error) {
	user, err := a.tokens.Authenticate(ctx, accessToken)
	if err != nil {
		a.record(model.EventAuthenticate, err)
	}
	return user, err
}

func (a *Auth) GetCurrentUser(ctx context.Context, id string) (model.User, error) {
	user, err := a.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, apierrors.NewErrUserNotFound(id)
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// UpdateProfile changes the caller's own names. Email, role and password
// are not part of ProfileUpdate and cannot be reached here.
func (a *Auth) UpdateProfile(ctx context.Context, id string, update model.ProfileUpdate) (model.User, error) {
	if err := validateNames(update.FirstName, update.LastName); err != nil {
		return model.User{}, err
	}

	user, err := a.users.Update(ctx, id, model.UserUpdate{
		FirstName: trimmed(update.FirstName),
		LastName:  trimmed(update.LastName),
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, apierrors.NewErrUserNotFound(id)
		}
		a.logger.Error("Auth service: failed to update profile",
			"user_id", id,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}

// ChangePassword replaces the password and stamps passwordChangedAt, which
// invalidates every token issued before now.
func (a *Auth) ChangePassword(ctx context.Context, id, current, next string) error {
	err := a.changePassword(ctx, id, current, next)
	a.record(model.EventChangePassword, err)
	return err
}

func (a *Auth) changePassword(ctx context.Context, id, current, next string) error {
	if current == "" || next == "" {
		return apierrors.NewErrValidation("Current password and new password are required")
	}

	user, err := a.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return apierrors.NewErrUserNotFound(id)
		}
		return fmt.Errorf("failed to get user by id: %w", err)
	}

	if !a.hasher.Verify(current, user.PasswordHash) {
		return apierrors.NewErrCurrentPasswordIncorrect()
	}

	if err := validatePassword(next); err != nil {
		return err
	}

	hash, err := a.hashPassword(next)
	if err != nil {
		return err
	}

	if err := a.users.SetPassword(ctx, id, hash, a.now()); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return apierrors.NewErrUserNotFound(id)
		}
		a.logger.Error("Auth service: failed to store new password",
			"user_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to set password: %w", err)
	}

	a.logger.Info("Auth service: password changed",
		"user_id", id)

	return nil
}

func (a *Auth) hashPassword(plaintext string) (string, error) {
	hash, err := a.hasher.Hash(plaintext)
	if err != nil {
		if errors.Is(err, password.ErrTooLong) {
			return "", apierrors.NewErrValidation(fmt.Sprintf("Password must be at most %d bytes long", password.MaxLength))
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

func (a *Auth) record(event string, err error) {
	outcome := model.OutcomeSuccess
	if err != nil {
		outcome = model.OutcomeFailure
	}
	a.events.Record(event, outcome)
}

func validateRegistration(params model.RegisterParams) error {
	if params.Email == "" || params.Password == "" || params.FirstName == "" || params.LastName == "" {
		return apierrors.NewErrValidation("Email, password, first name and last name are required")
	}
	if !strings.Contains(params.Email, "@") {
		return apierrors.NewErrValidation("Please provide a valid email")
	}
	if !params.Role.Valid() {
		return apierrors.NewErrValidation("Role must be one of user, vendor, admin")
	}
	if err := validateNames(&params.FirstName, &params.LastName); err != nil {
		return err
	}
	return validatePassword(params.Password)
}

func validatePassword(plaintext string) error {
	if len(plaintext) < minPasswordLength {
		return apierrors.NewErrValidation(fmt.Sprintf("Password must be at least %d characters long", minPasswordLength))
	}
	if len(plaintext) > password.MaxLength {
		return apierrors.NewErrValidation(fmt.Sprintf("Password must be at most %d bytes long", password.MaxLength))
	}
	return nil
}

func validateNames(first, last *string) error {
	for _, n := range []*string{first, last} {
		if n == nil {
			continue
		}
		v := strings.TrimSpace(*n)
		if v == "" {
			return apierrors.NewErrValidation("Name cannot be empty")
		}
		if len([]rune(v)) > maxNameLength {
			return apierrors.NewErrValidation(fmt.Sprintf("Name cannot exceed %d characters", maxNameLength))
		}
	}
	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
