package email

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// SignInToken is the payload carried by an email sign-in link.
type SignInToken struct {
	Email     string `json:"e"`
	Provider  string `json:"p"`
	ExpiresAt int64  `json:"x"`
	Nonce     string `json:"n"`
}

// IssueSignInToken encodes t as "<payload>.<signature>", both base64url,
// signed with HMAC-SHA256.
func IssueSignInToken(secret string, t SignInToken) (string, error) {
	if secret == "" {
		return "", ErrMissingSecret
	}
	data, err := json.Marshal(t)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data) + "." +
		base64.RawURLEncoding.EncodeToString(sign(secret, data)), nil
}

// VerifySignInToken checks the signature and expiry of raw and returns its
// payload.
func VerifySignInToken(secret, raw string, now time.Time) (SignInToken, error) {
	if secret == "" {
		return SignInToken{}, ErrMissingSecret
	}
	payloadEnc, sigEnc, ok := strings.Cut(raw, ".")
	if !ok {
		return SignInToken{}, ErrInvalidToken
	}
	data, err := base64.RawURLEncoding.DecodeString(payloadEnc)
	if err != nil {
		return SignInToken{}, ErrInvalidToken
	}
	sig, err := base64.RawURLEncoding.DecodeString(sigEnc)
	if err != nil {
		return SignInToken{}, ErrInvalidToken
	}
	if !hmac.Equal(sig, sign(secret, data)) {
		return SignInToken{}, ErrInvalidToken
	}

	var t SignInToken
	if err := json.Unmarshal(data, &t); err != nil {
		return SignInToken{}, ErrInvalidToken
	}
	if now.Unix() >= t.ExpiresAt {
		return SignInToken{}, ErrTokenExpired
	}
	return t, nil
}

func sign(secret string, data []byte) []byte {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return h.Sum(nil)
}
