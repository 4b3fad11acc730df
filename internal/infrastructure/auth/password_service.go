package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

const (
	saltBytes      = 16
	hashIterations = 100_000
	hashKeyLength  = 32
)

// PasswordServiceImpl implements domain.PasswordService with
// PBKDF2-SHA512. Salt and digest are stored in separate columns, so the
// same stored salt can be replayed to recompute a candidate digest.
type PasswordServiceImpl struct{}

// NewPasswordService creates a new password service
func NewPasswordService() domain.PasswordService {
	return &PasswordServiceImpl{}
}

// NewSalt implements domain.PasswordService
func (p *PasswordServiceImpl) NewSalt() (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return base64.RawStdEncoding.EncodeToString(salt), nil
}

// Hash implements domain.PasswordService
func (p *PasswordServiceImpl) Hash(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), hashIterations, hashKeyLength, sha512.New)
	return base64.RawStdEncoding.EncodeToString(key)
}

// Matches implements domain.PasswordService
func (p *PasswordServiceImpl) Matches(password, salt, digest string) bool {
	candidate := p.Hash(password, salt)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(digest)) == 1
}
