package repositories

import "github.com/paras2003gupta/Workout-Log/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	Delete(id string) error
}
