package user

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
	// ValidatePassword reports whether password matches hash. A non-nil error
	// means the stored hash itself is malformed, not that the password is wrong.
	ValidatePassword(password RawPassword, hash PasswordHash) (bool, error)
}
