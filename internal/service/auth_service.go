package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTTL   = 200 * time.Minute
	bcryptCost = 10
)

// AuthService handles signup, signin and token verification.
type AuthService struct {
	users      repository.Users
	signingKey []byte
}

func NewAuthService(users repository.Users, signingKey string) *AuthService {
	return &AuthService{users: users, signingKey: []byte(signingKey)}
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// SignUp validates the payload, enforces email uniqueness and stores the
// user with a bcrypt hash. The plaintext password never leaves this method.
func (s *AuthService) SignUp(ctx context.Context, in SignupInput) error {
	if verr := validateSignup(in); verr != nil {
		return verr
	}

	existing, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return fmt.Errorf("check existing email: %w", err)
	}
	if existing != nil {
		return ErrEmailTaken
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return err
	}

	u := models.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, u); err != nil {
		// The pre-check above races with concurrent signups; the UNIQUE index
		// on email is the real guard.
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// SignIn validates credentials and issues a signed token. Unknown email and
// wrong password return the same error so callers can't probe for accounts.
func (s *AuthService) SignIn(ctx context.Context, in SigninInput) (SigninResult, error) {
	if verr := validateSignin(in); verr != nil {
		return SigninResult{}, verr
	}

	u, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return SigninResult{}, fmt.Errorf("look up user: %w", err)
	}
	if u == nil {
		return SigninResult{}, ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, in.Password); err != nil {
		return SigninResult{}, ErrInvalidCredentials
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return SigninResult{}, fmt.Errorf("issue token: %w", err)
	}
	return SigninResult{Token: token, User: *u}, nil
}

// ParseToken parses JWT and returns the embedded userId
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash (constant-time, via bcrypt)
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed JWT for a user
func (s *AuthService) issueToken(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString(s.signingKey)
}

// isUniqueViolation matches the sqlite driver's constraint error text.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
