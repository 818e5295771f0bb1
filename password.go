package bankcore

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is used when the service is constructed with a
// non-positive cost.
const DefaultBcryptCost = bcrypt.DefaultCost

func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
