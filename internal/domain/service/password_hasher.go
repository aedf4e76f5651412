package service

// PasswordHasher hashes account passwords and verifies sign-in attempts.
// Stored hashes never leave the repository layer in responses.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
