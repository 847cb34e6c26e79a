package security

// PasswordHasher turns login secrets into one-way hashes and checks candidates against them
type PasswordHasher interface {
	// Hash returns a salted hash of the plaintext secret
	Hash(plain string) (string, error)
	// Verify reports whether plain matches the stored hash
	Verify(hash, plain string) bool
}
