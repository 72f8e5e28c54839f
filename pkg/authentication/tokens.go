// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const apiKeyBytes = 32

// HashSecret is the digest under which session tokens and api keys are
// stored and looked up.
func HashSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// SessionTokens issues and checks HS256 signed session tokens. The token
// is opaque to clients: expiry and revocation are decided by the stored
// session, the signature only rejects forged tokens before any lookup.
type SessionTokens struct {
	secret []byte
}

func (t *SessionTokens) Issue(userID string, expiresAt time.Time) (string, error) {
	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate session nonce: %w", err)
	}

	claims := jwt.RegisteredClaims{
		ID:        base64.RawURLEncoding.EncodeToString(nonce),
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *SessionTokens) Verify(raw string) error {
	_, err := jwt.ParseWithClaims(
		raw,
		&jwt.RegisteredClaims{},
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	return err
}

func NewSessionTokens(secret string) *SessionTokens {
	return &SessionTokens{secret: []byte(secret)}
}

// GenerateAPIKey returns a new raw key, the short prefix displayed to
// identify it and the hash to store.
func GenerateAPIKey(prefix string) (raw, display, hash string, err error) {
	b := make([]byte, apiKeyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", "", "", fmt.Errorf("failed to generate api key: %w", err)
	}

	raw = prefix + base64.RawURLEncoding.EncodeToString(b)
	display = raw[:len(prefix)+8]

	return raw, display, HashSecret(raw), nil
}
