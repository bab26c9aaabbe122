package mocks

import "errors"

// ErrPasswordMismatch is returned by MockPasswordVerifier when
// ShouldSucceed is false.
var ErrPasswordMismatch = errors.New("password does not match")

// MockPasswordHasher implements auth.PasswordHasher for testing. The
// default behavior prefixes the plaintext so tests can assert hashing
// happened without paying for bcrypt.
type MockPasswordHasher struct {
	HashFn func(password string) (string, error)

	HashErr       error
	HashCallCount int
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	m.HashCallCount++
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return "hashed:" + password, nil
}

// MockPasswordVerifier implements auth.PasswordVerifier for testing.
type MockPasswordVerifier struct {
	ShouldSucceed bool
	CompareFn     func(hashedPassword, password string) error

	CompareCalledWith struct {
		HashedPassword string
		Password       string
	}
	CompareCallCount int
}

func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	m.CompareCalledWith.HashedPassword = hashedPassword
	m.CompareCalledWith.Password = password
	m.CompareCallCount++

	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if m.ShouldSucceed {
		return nil
	}
	return ErrPasswordMismatch
}
