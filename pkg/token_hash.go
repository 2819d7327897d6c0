package pkg

import "golang.org/x/crypto/bcrypt"

const TokenHashCost = 14

// HashToken returns the bcrypt hash stored in place of an api token.
func HashToken(token string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(token), TokenHashCost)
	if err != nil {
		return "", err
	}
	return BytesToString(hash), nil
}

func TokenMatchesHash(token, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)) == nil
}
