package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
)

const DefaultCost = bcrypt.DefaultCost

func HashPassword(password string) (string, error) {
	return hashWithCost(password, DefaultCost)
}

func hashWithCost(password string, cost int) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}

// Verifier keeps only the hash of a configured secret so the plain value
// does not stay in memory after startup.
type Verifier struct {
	hash string
}

func NewVerifier(plain string) (*Verifier, error) {
	return newVerifierWithCost(plain, DefaultCost)
}

// NewFastVerifier uses the minimum bcrypt cost. Tests only.
func NewFastVerifier(plain string) (*Verifier, error) {
	return newVerifierWithCost(plain, bcrypt.MinCost)
}

func newVerifierWithCost(plain string, cost int) (*Verifier, error) {
	hash, err := hashWithCost(plain, cost)
	if err != nil {
		return nil, err
	}
	return &Verifier{hash: hash}, nil
}

func (v *Verifier) Verify(password string) error {
	return ComparePassword(v.hash, password)
}
