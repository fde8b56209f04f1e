package fakebackend

import (
	"errors"
	"fmt"
	"sync"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenExpiry = time.Hour

// tokens issues HS256 access tokens and tracks which ones are still live.
type tokens struct {
	secret  []byte
	nowTime func() time.Time
	live    map[string]bool // jti to live
	lock    sync.Mutex
}

func newTokens(nowTime func() time.Time) *tokens {
	return &tokens{
		secret:  []byte(uuid.New().String()),
		nowTime: nowTime,
		live:    make(map[string]bool),
	}
}

func (t *tokens) issue(accountID, tenant string) (string, error) {
	jti := uuid.New().String()
	claims := jwtlib.MapClaims{
		"sub":    accountID,
		"tenant": tenant,
		"iat":    t.nowTime().Unix(),
		"exp":    t.nowTime().Add(tokenExpiry).Unix(),
		"jti":    jti,
	}
	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign JWT token: %w", err)
	}

	t.lock.Lock()
	defer t.lock.Unlock()
	t.live[jti] = true
	return signed, nil
}

// verify returns the account id the token was issued to.
func (t *tokens) verify(raw string) (string, error) {
	parsed, err := jwtlib.Parse(raw, func(*jwtlib.Token) (interface{}, error) {
		return t.secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}), jwtlib.WithTimeFunc(t.nowTime))
	if err != nil {
		return "", err
	}
	claims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return "", errors.New("unexpected claims type")
	}
	jti, _ := claims["jti"].(string)

	t.lock.Lock()
	live := t.live[jti]
	t.lock.Unlock()
	if !live {
		return "", errors.New("token revoked")
	}
	return claims.GetSubject()
}

func (t *tokens) revokeAll() {
	t.lock.Lock()
	defer t.lock.Unlock()
	clear(t.live)
}
