package session

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultRole is assumed when the backend omits the role field.
const DefaultRole = "EMPLOYEE"

// Session is the authenticated user as returned by the backend, plus the
// profile fields a user may fill in later. A session is considered present
// only when it carries a token.
type Session struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Token       string `json:"token"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Company     string `json:"company,omitempty"`
	WorkAddress string `json:"workAddress,omitempty"`
}

// DisplayName returns the first name when known, otherwise the first word of
// the full name.
func (s *Session) DisplayName() string {
	if s.FirstName != "" {
		return s.FirstName
	}
	if s.Name == "" {
		return "User"
	}
	name, _, _ := strings.Cut(s.Name, " ")
	return name
}

// TokenClaims decodes the bearer token's claims without verifying the
// signature. Verification is the backend's job; the client only reads claims
// for display (expiry, subject).
func (s *Session) TokenClaims() (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.Token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}
