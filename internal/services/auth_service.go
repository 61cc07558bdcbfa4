package services

import (
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/paras2003gupta/Workout-Log/internal/models"
	"github.com/paras2003gupta/Workout-Log/internal/repositories"
	"github.com/paras2003gupta/Workout-Log/pkg/apperror"
)

// AuthService handles registration, login, and token verification.
type AuthService struct {
	userRepo      repositories.UserRepository
	jwtSecret     []byte
	tokenDuration time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		jwtSecret:     []byte(jwtSecret),
		tokenDuration: 24 * time.Hour,
	}
}

// Register hashes the password and persists a new user. It does not log the
// user in.
func (s *AuthService) Register(username, password string) (*models.User, error) {
	if existing, err := s.userRepo.GetByUsername(username); err == nil && existing != nil {
		return nil, apperror.NewConflictError("username already exists", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues a signed token valid for 24
// hours. Unknown username and wrong password produce the same error so the
// response does not reveal which one failed.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return "", apperror.NewAuthError("invalid credentials", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperror.NewAuthError("invalid credentials", nil)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      now.Add(s.tokenDuration).Unix(),
		"iat":      now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", apperror.NewInternalError("failed to generate token", err)
	}

	return tokenString, nil
}

// VerifyToken validates a token's signature and expiry, then resolves the
// embedded user. A token for a user that no longer exists is rejected.
func (s *AuthService) VerifyToken(tokenString string) (*models.User, error) {
	if tokenString == "" {
		return nil, apperror.NewAuthError("token is missing", nil)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperror.NewAuthError("unexpected signing method", nil)
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, apperror.NewAuthError("invalid or expired token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperror.NewAuthError("invalid or expired token", nil)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, apperror.NewAuthError("invalid or expired token", nil)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, apperror.NewAuthError("invalid or expired token", err)
	}
	return user, nil
}
