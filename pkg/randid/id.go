// Package randid provides random ID generation utilities.
package randid

import "math/rand/v2"

const (
	alphanumeric = "abcdefghijklmnopqrstuvwxyz0123456789"

	// NonceLength fits Discord's 25 character nonce limit.
	NonceLength = 20
)

// Generate creates a random alphanumeric ID of the specified length.
func Generate(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = alphanumeric[rand.IntN(len(alphanumeric))]
	}
	return string(b)
}

// Nonce returns a random value suitable for a message create nonce.
func Nonce() string {
	return Generate(NonceLength)
}
