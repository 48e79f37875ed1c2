package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/pbkdf2"
)

// KeyLen is the PBKDF2 output length in bytes. It equals the SHA-256 digest size.
const KeyLen = sha256.Size

// ErrInvalidIterations is returned when a derivation is requested with a
// non-positive iteration count.
var ErrInvalidIterations = errors.New("pbkdf2 iteration count must be positive")

// SHA256Hex returns the SHA-256 hex digest of data.
func SHA256Hex(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// PBKDF2SHA256Hex derives a KeyLen-byte key from password and salt using
// PBKDF2 with HMAC-SHA256 and returns it as lowercase hex.
//
// The salt is copied into a memguard LockedBuffer for the duration of the
// derivation so it cannot be swapped to disk, and wiped on return. The caller's
// salt slice is zeroed by memguard as part of the copy.
func PBKDF2SHA256Hex(password, salt []byte, iterations int) (string, error) {
	if iterations <= 0 {
		return "", ErrInvalidIterations
	}

	saltBuf := memguard.NewBufferFromBytes(salt)
	defer saltBuf.Destroy()

	key := pbkdf2.Key(password, saltBuf.Bytes(), iterations, KeyLen, sha256.New)
	defer memguard.WipeBytes(key)

	return hex.EncodeToString(key), nil
}
