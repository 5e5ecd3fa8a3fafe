package user

// Authenticate compares the plaintext password exactly, then checks the lock.
// A wrong password on a locked account still reports ErrInvalidCredential.
func (u User) Authenticate(password string) error {
	if u.Password != password {
		return ErrInvalidCredential
	}
	if u.Locked {
		return ErrLocked
	}

	return nil
}
