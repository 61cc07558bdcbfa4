package services_test

import (
	"io"
	"log"
	"os"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/paras2003gupta/Workout-Log/internal/models"
	"github.com/paras2003gupta/Workout-Log/internal/services"
	"github.com/paras2003gupta/Workout-Log/pkg/apperror"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// TestMain suppresses logging during tests for cleaner output.
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

const testJWTSecret = "test_jwt_secret"

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	notFound := apperror.NewNotFoundError("user not found", nil)

	// Successful registration
	mockRepo.On("GetByUsername", "alice").Return(nil, notFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	user, err := authService.Register("alice", "password123")
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	// The stored verifier must be a hash, never the plaintext
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
	mockRepo.AssertExpectations(t)

	// Duplicate username
	mockRepo.On("GetByUsername", "alice").Return(&models.User{ID: "u-1", Username: "alice"}, nil).Once()
	_, err = authService.Register("alice", "password123")
	assert.Error(t, err)
	assert.True(t, apperror.IsType(err, apperror.ConflictError))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:           "user-123",
		Username:     "alice",
		PasswordHash: string(hashedPassword),
	}

	// Successful login
	mockRepo.On("GetByUsername", "alice").Return(user, nil).Once()
	token, err := authService.Login("alice", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, "alice", claims["username"])
	// Expiry is 24 hours after issuance
	exp := int64(claims["exp"].(float64))
	iat := int64(claims["iat"].(float64))
	assert.Equal(t, int64(24*60*60), exp-iat)
	mockRepo.AssertExpectations(t)

	// Wrong password
	mockRepo.On("GetByUsername", "alice").Return(user, nil).Once()
	_, err = authService.Login("alice", "wrongpassword")
	assert.Error(t, err)
	assert.True(t, apperror.IsType(err, apperror.AuthError))
	wrongPasswordMsg := err.Error()
	mockRepo.AssertExpectations(t)

	// Unknown user yields the same error message as a wrong password
	mockRepo.On("GetByUsername", "nobody").Return(nil, apperror.NewNotFoundError("user not found", nil)).Once()
	_, err = authService.Login("nobody", "password123")
	assert.Error(t, err)
	assert.True(t, apperror.IsType(err, apperror.AuthError))
	assert.Equal(t, wrongPasswordMsg, err.Error())
	mockRepo.AssertExpectations(t)
}

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func TestAuthService_VerifyToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	user := &models.User{ID: "user-123", Username: "alice"}

	// Valid token resolves to the embedded user
	validToken := signedToken(t, testJWTSecret, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	mockRepo.On("GetByID", "user-123").Return(user, nil).Once()

	got, err := authService.VerifyToken(validToken)
	assert.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	mockRepo.AssertExpectations(t)

	// Missing token
	_, err = authService.VerifyToken("")
	assert.True(t, apperror.IsType(err, apperror.AuthError))

	// Malformed token
	_, err = authService.VerifyToken("not.a.token")
	assert.True(t, apperror.IsType(err, apperror.AuthError))

	// Wrong signing key
	forged := signedToken(t, "some-other-secret", jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	_, err = authService.VerifyToken(forged)
	assert.True(t, apperror.IsType(err, apperror.AuthError))

	// Expired token
	expired := signedToken(t, testJWTSecret, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	_, err = authService.VerifyToken(expired)
	assert.True(t, apperror.IsType(err, apperror.AuthError))

	// Token for a user that no longer exists
	orphanToken := signedToken(t, testJWTSecret, jwt.MapClaims{
		"user_id": "gone-456",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	mockRepo.On("GetByID", "gone-456").Return(nil, apperror.NewNotFoundError("user not found", nil)).Once()
	_, err = authService.VerifyToken(orphanToken)
	assert.True(t, apperror.IsType(err, apperror.AuthError))
	mockRepo.AssertExpectations(t)
}
