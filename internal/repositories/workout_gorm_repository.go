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

// GORMWorkoutRepository is a GORM implementation of WorkoutRepository.
type GORMWorkoutRepository struct {
	db *gorm.DB
}

// NewGORMWorkoutRepository creates a new instance of GORMWorkoutRepository.
func NewGORMWorkoutRepository(db *gorm.DB) *GORMWorkoutRepository {
	return &GORMWorkoutRepository{
		db: db,
	}
}

// Create inserts a new workout. ID and creation timestamp are assigned here.
func (r *GORMWorkoutRepository) Create(workout *models.Workout) error {
	if workout.ID == "" {
		workout.ID = uuid.New().String()
	}
	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = time.Now().UTC()
	}
	if err := r.db.Create(workout).Error; err != nil {
		return apperror.NewDatabaseError("failed to create workout", err)
	}
	return nil
}

// GetByOwner retrieves a workout by ID, restricted to the given owner. A row
// owned by someone else is indistinguishable from a nonexistent one.
func (r *GORMWorkoutRepository) GetByOwner(userID, id string) (*models.Workout, error) {
	var workout models.Workout
	if err := r.db.First(&workout, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("workout not found", err)
		}
		return nil, apperror.NewDatabaseError(fmt.Sprintf("failed to get workout %s", id), err)
	}
	return &workout, nil
}

// ListByOwner returns one page of the owner's workouts ordered by creation
// time descending, plus the total row count for the same predicate. An empty
// muscleGroup disables the filter.
func (r *GORMWorkoutRepository) ListByOwner(userID, muscleGroup string, limit, offset int) ([]models.Workout, int64, error) {
	query := r.db.Model(&models.Workout{}).Where("user_id = ?", userID)
	if muscleGroup != "" {
		query = query.Where("muscle_group = ?", muscleGroup)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperror.NewDatabaseError("failed to count workouts", err)
	}

	var workouts []models.Workout
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&workouts).Error; err != nil {
		return nil, 0, apperror.NewDatabaseError("failed to list workouts", err)
	}
	return workouts, total, nil
}

// Update overwrites the mutable fields of a workout. The predicate includes
// the owner so the write and the ownership check are one atomic statement.
// Updates uses a map because a struct would skip zero values like sets=0.
func (r *GORMWorkoutRepository) Update(workout *models.Workout) error {
	res := r.db.Model(&models.Workout{}).
		Where("id = ? AND user_id = ?", workout.ID, workout.UserID).
		Updates(map[string]interface{}{
			"exercise_name": workout.ExerciseName,
			"muscle_group":  workout.MuscleGroup,
			"is_cardio":     workout.IsCardio,
			"sets":          workout.Sets,
			"reps":          workout.Reps,
			"weight_kg":     workout.WeightKg,
		})
	if res.Error != nil {
		return apperror.NewDatabaseError("failed to update workout", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NewNotFoundError("workout not found", nil)
	}
	return nil
}

// DeleteByOwner removes a workout, scoped to the owner in the same statement.
func (r *GORMWorkoutRepository) DeleteByOwner(userID, id string) error {
	res := r.db.Delete(&models.Workout{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return apperror.NewDatabaseError("failed to delete workout", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NewNotFoundError("workout not found", nil)
	}
	return nil
}
