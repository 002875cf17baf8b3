package model

// PasswordHasher derives and checks salted one-way password hashes.
// Implementations must use a deliberately slow algorithm.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
