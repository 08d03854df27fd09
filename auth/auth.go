package auth

import (
	"crypto/sha256"
	"strings"
	"time"

	"github.com/o1egl/paseto"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTTL    = 24 * time.Hour
	tokenFooter = "fashionfinds-admin"
)

// Verifier holds the resolved admin credential set. It is built once at
// startup and read-only afterwards.
type Verifier struct {
	creds  map[string]string
	secret []byte
}

// NewVerifier parses ADMIN_USERS ("user:pass,user:pass") and merges in
// the single fallback user when its username is not already taken, so
// multi-user entries win on collision. The paseto key is derived from
// the configured secret.
func NewVerifier(multiUsers, fallbackUser, fallbackPass, secretKey string) *Verifier {
	creds := parseCredentials(multiUsers)
	if fallbackUser != "" {
		if _, exists := creds[fallbackUser]; !exists {
			creds[fallbackUser] = fallbackPass
		}
	}
	key := sha256.Sum256([]byte(secretKey))
	return &Verifier{creds: creds, secret: key[:]}
}

// parseCredentials splits a comma-separated list of "user:pass" pairs
// on the first colon, trimming whitespace. Entries without a colon or
// with an empty username are skipped.
func parseCredentials(value string) map[string]string {
	creds := make(map[string]string)
	for _, entry := range strings.Split(value, ",") {
		user, pass, ok := strings.Cut(entry, ":")
		if !ok {
			continue
		}
		user = strings.TrimSpace(user)
		if user == "" {
			continue
		}
		creds[user] = strings.TrimSpace(pass)
	}
	return creds
}

// Verify checks a username/password pair against the credential set.
// Stored values that look like bcrypt hashes are compared with bcrypt;
// anything else compares byte-for-byte.
func (v *Verifier) Verify(username, password string) bool {
	stored, ok := v.creds[username]
	if !ok {
		return false
	}
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return stored == password
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") ||
		strings.HasPrefix(s, "$2b$") ||
		strings.HasPrefix(s, "$2y$")
}

// IssueToken returns a paseto v2 local token for a verified admin.
func (v *Verifier) IssueToken(username string) (string, error) {
	now := time.Now()
	jsonToken := paseto.JSONToken{
		Subject:    username,
		IssuedAt:   now,
		Expiration: now.Add(tokenTTL),
	}
	return paseto.NewV2().Encrypt(v.secret, jsonToken, tokenFooter)
}

// CheckToken decrypts a bearer token and returns the admin username it
// was issued for. Tokens for users no longer in the credential set are
// rejected.
func (v *Verifier) CheckToken(token string) (string, bool) {
	var jsonToken paseto.JSONToken
	var footer string
	if err := paseto.NewV2().Decrypt(token, v.secret, &jsonToken, &footer); err != nil {
		return "", false
	}
	if footer != tokenFooter || time.Now().After(jsonToken.Expiration) {
		return "", false
	}
	if _, ok := v.creds[jsonToken.Subject]; !ok {
		return "", false
	}
	return jsonToken.Subject, true
}
