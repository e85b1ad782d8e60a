// Package auth covers credential digests and session tokens.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// DigestPassword hashes the password only (independent of account/email).
// The digest is the stored form; login compares digests, so this must stay
// deterministic across releases.
func DigestPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
