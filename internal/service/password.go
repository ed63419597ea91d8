package service

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Password digests use the format pbkdf2:sha256:<iterations>$<salt>$<hex>,
// so digests issued by earlier deployments of the platform keep verifying.
const (
	pbkdf2Iterations = 600000
	pbkdf2KeyLen     = 32
	saltLength       = 12
)

const saltAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// HashPassword derives a salted PBKDF2-SHA256 digest from the plaintext.
// The plaintext is never stored or logged.
func HashPassword(plaintext string) (string, error) {
	salt, err := randomSalt(saltLength)
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(plaintext), []byte(salt), pbkdf2Iterations, pbkdf2KeyLen, sha256.New)
	return fmt.Sprintf("pbkdf2:sha256:%d$%s$%s", pbkdf2Iterations, salt, hex.EncodeToString(key)), nil
}

// VerifyPassword reports whether plaintext matches the stored digest.
// A digest in an unrecognized format verifies false rather than erroring.
func VerifyPassword(digest, plaintext string) bool {
	iterStr, rest, ok := splitDigest(digest)
	if !ok {
		return false
	}

	iterations, err := strconv.Atoi(iterStr)
	if err != nil || iterations < 1 {
		return false
	}

	salt, expected, ok := strings.Cut(rest, "$")
	if !ok || salt == "" || expected == "" {
		return false
	}

	key := pbkdf2.Key([]byte(plaintext), []byte(salt), iterations, pbkdf2KeyLen, sha256.New)
	computed := hex.EncodeToString(key)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(expected)) == 1
}

// splitDigest peels off the "pbkdf2:sha256:" prefix and splits the iteration
// count from the salt$hash remainder.
func splitDigest(digest string) (iterations, rest string, ok bool) {
	withoutPrefix, found := strings.CutPrefix(digest, "pbkdf2:sha256:")
	if !found {
		return "", "", false
	}
	return strings.Cut(withoutPrefix, "$")
}

func randomSalt(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = saltAlphabet[int(b)%len(saltAlphabet)]
	}
	return string(buf), nil
}
