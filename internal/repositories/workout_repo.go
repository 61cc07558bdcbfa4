package repositories

import "github.com/paras2003gupta/Workout-Log/internal/models"

// WorkoutRepository defines the interface for workout data access. Every
// read and write is scoped by the owning user's ID so cross-user access is
// impossible at this layer.
type WorkoutRepository interface {
	Create(workout *models.Workout) error
	GetByOwner(userID, id string) (*models.Workout, error)
	ListByOwner(userID, muscleGroup string, limit, offset int) ([]models.Workout, int64, error)
	Update(workout *models.Workout) error
	DeleteByOwner(userID, id string) error
}
