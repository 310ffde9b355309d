// internal/services/auth_service.go
package services

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// adminPasscode is a fixed shared secret, not a per-user credential and
// not configuration.
const adminPasscode = "2580"

const adminSessionTTL = 8 * time.Hour

type AdminClaims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// AuthService implements the admin-area gate: a short numeric passcode
// challenge that, on success, yields a session token. The signing key
// is generated per process, so admin sessions are volatile and die with
// a restart; nothing about them is ever persisted.
type AuthService interface {
	VerifyPasscode(code string) bool
	IssueAdminToken() (string, error)
	ParseAdminToken(token string) error
}

type authService struct {
	passcodeHash []byte
	jwtKey       []byte
}

func NewAuthService() AuthService {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPasscode), bcrypt.DefaultCost)
	if err != nil {
		panic("failed to hash admin passcode: " + err.Error())
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic("failed to generate session key: " + err.Error())
	}
	return &authService{passcodeHash: hash, jwtKey: key}
}

func (s *authService) VerifyPasscode(code string) bool {
	return bcrypt.CompareHashAndPassword(s.passcodeHash, []byte(code)) == nil
}

func (s *authService) IssueAdminToken() (string, error) {
	now := time.Now()
	claims := AdminClaims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(adminSessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

func (s *authService) ParseAdminToken(tokenStr string) error {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.jwtKey, nil
	})
	if err != nil || !token.Valid {
		return fmt.Errorf("invalid or expired admin session")
	}
	if !claims.Admin {
		return fmt.Errorf("invalid or expired admin session")
	}
	return nil
}
