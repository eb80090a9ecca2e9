package service

import "crypto/subtle"

// AccessGate compares entered codes with a fixed shared secret.
type AccessGate struct {
	secret []byte
}

// NewAccessGate creates an AccessGate for the given secret.
func NewAccessGate(secret string) *AccessGate {
	return &AccessGate{secret: []byte(secret)}
}

// SubmitCode reports whether input equals the secret exactly.
// Any number of attempts is allowed.
func (g *AccessGate) SubmitCode(input string) bool {
	return subtle.ConstantTimeCompare([]byte(input), g.secret) == 1
}
