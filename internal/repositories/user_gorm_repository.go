package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/paras2003gupta/Workout-Log/internal/models"
	"github.com/paras2003gupta/Workout-Log/pkg/apperror"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create inserts a new user. The ID and creation time are assigned here if
// the caller has not set them.
func (r *GORMUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.NewConflictError("username already exists", err)
		}
		return apperror.NewDatabaseError("failed to create user", err)
	}
	return nil
}

// GetByUsername retrieves a user by their username.
func (r *GORMUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("user with username %s not found", username), err)
		}
		return nil, apperror.NewDatabaseError(fmt.Sprintf("failed to get user by username %s", username), err)
	}
	return &user, nil
}

// GetByID retrieves a user by their ID.
func (r *GORMUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("user with ID %s not found", id), err)
		}
		return nil, apperror.NewDatabaseError(fmt.Sprintf("failed to get user by ID %s", id), err)
	}
	return &user, nil
}

// Delete removes a user. Owned workouts are removed in the same transaction;
// GORM's cascade constraint covers engines that enforce it, the explicit
// delete covers sqlite files created without foreign_keys=on.
func (r *GORMUserRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Workout{}, "user_id = ?", id).Error; err != nil {
			return apperror.NewDatabaseError("failed to delete user workouts", err)
		}
		res := tx.Delete(&models.User{}, "id = ?", id)
		if res.Error != nil {
			return apperror.NewDatabaseError("failed to delete user", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperror.NewNotFoundError(fmt.Sprintf("user with ID %s not found for deletion", id), nil)
		}
		return nil
	})
}
