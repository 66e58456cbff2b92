package auth

import "golang.org/x/crypto/bcrypt"

// CheckAdminPassword compares a login attempt against the configured
// bcrypt hash of the admin password.
func CheckAdminPassword(bcryptHash []byte, password string) bool {
	return bcrypt.CompareHashAndPassword(bcryptHash, []byte(password)) == nil
}

// HashPassword is used by setup tooling to produce the hash that goes
// into the environment.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}
