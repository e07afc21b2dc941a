package cryptox

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a login password with bcrypt at the library default
// cost. The random per-call salt is embedded in the returned string, so
// hashing the same password twice yields different representations.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// Hash comparison happens inside the bcrypt family and does not leak where
// a mismatch occurs.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
