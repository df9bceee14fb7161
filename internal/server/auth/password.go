package auth

import (
	"github.com/dmitrijs2005/jwtauth/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// DefaultHashCost is the bcrypt work factor applied to new passwords.
const DefaultHashCost = 10

// MaxPasswordBytes is the longest password bcrypt will hash.
const MaxPasswordBytes = 72

const dummyPassword = "jwtauth-dummy-password"

// HashPassword returns the bcrypt hash of plain using cost. A cost outside
// bcrypt's accepted range falls back to DefaultHashCost; config validation
// keeps configured costs inside it.
func HashPassword(plain string, cost int) (string, error) {
	if len(plain) > MaxPasswordBytes {
		return "", common.ErrPasswordTooLong
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultHashCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ComparePassword reports whether plain matches hash.
func ComparePassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// NewDummyHash hashes a fixed password at cost. Sign-in compares against it
// when no account matches, so an unknown email costs the same bcrypt work as
// a wrong password.
func NewDummyHash(cost int) (string, error) {
	return HashPassword(dummyPassword, cost)
}
