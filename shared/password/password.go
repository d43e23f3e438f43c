package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default cost for bcrypt hashing
	DefaultCost = bcrypt.DefaultCost

	DigestBcrypt = "bcrypt"
	DigestSHA256 = "sha256"

	sha256Separator = "$"
	saltLength      = 8
)

var (
	ErrInvalidPassword   = errors.New("invalid password")
	ErrEmptyPassword     = errors.New("password cannot be empty")
	ErrHashingPassword   = errors.New("error hashing password")
	ErrVerifyingPassword = errors.New("error verifying password")
	ErrUnknownDigest     = errors.New("unknown password digest")
)

// Digest hashes new passwords. Verification does not depend on the configured
// digest: the stored hash identifies its own format.
type Digest interface {
	Hash(password string) (string, error)
}

type bcryptDigest struct{}

type sha256Digest struct{}

// NewDigest returns the digest registered under name.
func NewDigest(name string) (Digest, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", DigestBcrypt:
		return bcryptDigest{}, nil
	case DigestSHA256:
		return sha256Digest{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDigest, name)
	}
}

func (bcryptDigest) Hash(password string) (string, error) {
	return Hash(password)
}

// Hash produces "sha256$<salt>$<hex(sha256(salt+password))>".
func (sha256Digest) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	raw := make([]byte, saltLength/2)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	salt := hex.EncodeToString(raw)

	return strings.Join([]string{DigestSHA256, salt, sha256Hex(salt, password)}, sha256Separator), nil
}

// Hash generates a bcrypt hash of the password
func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	return string(bytes), nil
}

// decoyHash is a bcrypt hash of a random secret nobody knows.
var decoyHash = sync.OnceValue(func() string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(rand.Text()), DefaultCost)

	return string(hash)
})

// Decoy runs a full bcrypt comparison that can never succeed. Callers with no stored
// hash use it so that a missing account costs as much as a wrong password.
func Decoy(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(decoyHash()), []byte(password)); err == nil {
		return fmt.Errorf("%w: decoy matched", ErrVerifyingPassword)
	}

	return ErrInvalidPassword
}

// Verify checks if the provided password matches the hash. Both bcrypt hashes and
// "sha256$salt$hex" digests are accepted.
func Verify(password, hash string) error {
	if password == "" || hash == "" {
		return ErrInvalidPassword
	}

	if strings.HasPrefix(hash, DigestSHA256+sha256Separator) {
		return verifySHA256(password, hash)
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPassword
		}

		return fmt.Errorf("%w: %w", ErrVerifyingPassword, err)
	}

	return nil
}

func verifySHA256(password, hash string) error {
	parts := strings.Split(hash, sha256Separator)
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return fmt.Errorf("%w: malformed sha256 digest", ErrVerifyingPassword)
	}

	expected := sha256Hex(parts[1], password)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(parts[2]))) != 1 {
		return ErrInvalidPassword
	}

	return nil
}

func sha256Hex(salt, password string) string {
	sum := sha256.Sum256([]byte(salt + password))

	return hex.EncodeToString(sum[:])
}
