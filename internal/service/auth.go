package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/AiraSunae/Blogify/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

const sessionTTL = 24 * time.Hour

// AuthService handles registration, login, session tokens, and the access
// guard's liveness check.
type AuthService struct {
	users  domain.UserRepository
	secret []byte
}

// NewAuthService creates a new AuthService. The secret signs session tokens.
func NewAuthService(users domain.UserRepository, secret string) *AuthService {
	return &AuthService{users: users, secret: []byte(secret)}
}

// Register creates a new user account after validating inputs. The password
// is hashed before it reaches storage.
func (s *AuthService) Register(ctx context.Context, name, address, password string) (*domain.User, error) {
	if name == "" || address == "" || password == "" {
		return nil, fmt.Errorf("%w: name, address, and password are required", domain.ErrInvalidInput)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Address:      address,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateAddress) {
			return nil, domain.ErrDuplicateAddress
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials. ErrNoSuchAddress and ErrBadPassword are
// distinct so the login form can show different copy; callers must not leak
// them anywhere else.
func (s *AuthService) Login(ctx context.Context, address, password string) (*domain.User, error) {
	user, err := s.users.GetByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoSuchAddress
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !VerifyPassword(user.PasswordHash, password) {
		return nil, domain.ErrBadPassword
	}

	return user, nil
}

// IssueToken returns a signed session token bound to the user's id.
func (s *AuthService) IssueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(user.ID, 10),
		"iat": now.Unix(),
		"exp": now.Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and validates a session token, returning the user id
// from the sub claim.
func (s *AuthService) ValidateToken(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, domain.ErrUnauthorized
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, domain.ErrUnauthorized
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, domain.ErrUnauthorized
	}

	return userID, nil
}

// GetUserByID retrieves a user by id. Identity resolution goes through here
// on every request; nothing is cached.
func (s *AuthService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// Authorize is the access-guard check: the identity must be present and its
// address must appear in a fresh scan of every registered address. The scan
// is deliberate — a session whose backing user was removed is denied even
// while its token is still valid.
func (s *AuthService) Authorize(ctx context.Context, user *domain.User) error {
	if user == nil {
		return domain.ErrForbidden
	}

	addresses, err := s.users.ListAddresses(ctx)
	if err != nil {
		return fmt.Errorf("list addresses: %w", err)
	}

	if !slices.Contains(addresses, user.Address) {
		return domain.ErrForbidden
	}
	return nil
}
