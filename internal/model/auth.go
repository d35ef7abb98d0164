package model

// PasswordHasher hashes and verifies credentials.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// RegisterParams is the input of a registration.
type RegisterParams struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      Role
}

// AuthEvents records the outcome of authentication attempts.
type AuthEvents interface {
	Record(event, outcome string)
}

// Auth event names and outcomes.
const (
	EventRegister       = "register"
	EventLogin          = "login"
	EventRefresh        = "refresh"
	EventChangePassword = "change_password"
	EventAuthenticate   = "authenticate"

	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)
