package mock

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var errRevoked = errors.New("token revoked")

// IssueToken creates a signed JWT token for account
func (s *IdentityService) IssueToken(account *Account) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    s.Issuer,
		Subject:   strconv.Itoa(account.ID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.TokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

// parseToken validates bearer token and returns its claims
func (s *IdentityService) parseToken(raw string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if s.Revoked(claims.ID) {
		return nil, errRevoked
	}
	return claims, nil
}

func (s *IdentityService) authenticate(r *http.Request) (*jwt.RegisteredClaims, *Account, error) {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, nil, fmt.Errorf("invalid authorization header")
	}
	claims, err := s.parseToken(parts[1])
	if err != nil {
		return nil, nil, err
	}
	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid subject: %w", err)
	}
	account := s.accountByID(id)
	if account == nil {
		return nil, nil, fmt.Errorf("unknown subject %v", id)
	}
	return claims, account, nil
}
