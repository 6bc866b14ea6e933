package services

import (
	"errors"
	"fmt"
	"time"

	"quill/internal/models"
	"quill/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and session token resolution.
// The session credential is an HS256 token carrying only the user id, signed
// with the configured secret and delivered to the browser in a cookie.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// SessionDuration returns how long an issued session token stays valid.
func (s *AuthService) SessionDuration() time.Duration {
	return s.tokenDurat
}

// Register creates a new user with a bcrypt-hashed password and returns the
// user together with a fresh session token. Returns models.ErrDuplicateEmail
// when the email is already registered.
func (s *AuthService) Register(email, password, name string) (*models.User, string, error) {
	if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
		return nil, "", models.ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hashed),
		Name:     name,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			return nil, "", models.ErrDuplicateEmail
		}
		return nil, "", fmt.Errorf("failed to register user: %w", err)
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates a user by email and password and returns the user with
// a fresh session token. Returns models.ErrUserNotFound when no user has
// that email and models.ErrInvalidPassword on a hash mismatch; the two cases
// stay distinct so the form can show the right message.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, "", models.ErrUserNotFound
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", models.ErrInvalidPassword
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// IssueToken signs a session token for the given user id.
func (s *AuthService) IssueToken(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     now.Add(s.tokenDurat).Unix(),
		"iat":     now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses a session token and returns the user id it carries.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid session token")
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", errors.New("session token carries no user id")
	}
	return userID, nil
}

// CurrentUser resolves a session token to its user. Any failure — missing
// token, bad signature, expiry, deleted user — means anonymous, so the
// return is nil rather than an error.
func (s *AuthService) CurrentUser(tokenString string) *models.User {
	if tokenString == "" {
		return nil
	}
	userID, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil
	}
	return user
}
