package service

// CodeHasher hashes verification codes for storage and checks submitted
// codes against stored hashes.
type CodeHasher interface {
	// Hash generates a salted hash from a plaintext code.
	Hash(code string) (string, error)

	// Check compares a plaintext code with a stored hash.
	Check(code, hash string) bool
}
