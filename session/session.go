package session

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// Role is the caller's role as reported by the backend at login.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleUser       Role = "USER"
)

// Session is the persisted identity of the current caller. An empty field is
// absent. Token and TenantID are independent: a token may exist while tenant
// selection is still pending.
type Session struct {
	Token    string
	UserID   string
	Role     Role
	TenantID string
}

// HasToken reports whether any token is held. The token is opaque, its
// shape is never validated.
func (s Session) HasToken() bool {
	return s.Token != ""
}

func (s Session) HasTenant() bool {
	return s.TenantID != ""
}

// IsEmpty reports whether no field is set.
func (s Session) IsEmpty() bool {
	return s == Session{}
}

// OAuth2Token returns the bearer token in the form golang.org/x/oauth2
// understands, or nil when no token is held.
func (s Session) OAuth2Token() *oauth2.Token {
	if !s.HasToken() {
		return nil
	}
	return &oauth2.Token{AccessToken: s.Token, TokenType: "Bearer"}
}

// TokenClaims is the informational subset of a JWT token.
type TokenClaims struct {
	Subject   string
	Tenant    string
	ExpiresAt time.Time
}

// Claims decodes the token's JWT claims without verifying the signature.
// It is for display only; ok is false for opaque, non-JWT tokens.
func (s Session) Claims() (claims TokenClaims, ok bool) {
	if !s.HasToken() {
		return TokenClaims{}, false
	}
	parsed := jwtlib.MapClaims{}
	if _, _, err := jwtlib.NewParser().ParseUnverified(s.Token, parsed); err != nil {
		return TokenClaims{}, false
	}
	claims.Subject, _ = parsed.GetSubject()
	if exp, err := parsed.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	if tenant, isString := parsed["tenant"].(string); isString {
		claims.Tenant = tenant
	}
	return claims, true
}

// Update is a partial Session. A nil field is left untouched; a pointer to
// the empty value removes the field.
type Update struct {
	Token    *string
	UserID   *string
	Role     *Role
	TenantID *string
}
