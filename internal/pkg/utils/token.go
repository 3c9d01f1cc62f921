package utils

import (
	"crypto/sha256"
	"encoding/base64"
)

// HashToken hashes the input string using SHA256 and encodes the result in base64.
func HashToken(input string) string {
	hash := sha256.Sum256([]byte(input))
	return base64.StdEncoding.EncodeToString(hash[:])
}
