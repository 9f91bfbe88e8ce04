// Package service declares the stateless collaborators the usecases depend on:
// hashing, tokens, credential rules and event publishing.
package service

// PasswordHasher turns plaintext passwords into stored hashes and back-checks them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool
}
