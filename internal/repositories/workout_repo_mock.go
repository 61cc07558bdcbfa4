package repositories

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/paras2003gupta/Workout-Log/internal/models"
	"github.com/paras2003gupta/Workout-Log/pkg/apperror"
)

// MockWorkoutRepository is an in-memory implementation of WorkoutRepository.
type MockWorkoutRepository struct {
	workouts map[string]models.Workout
	mu       sync.RWMutex
}

// NewMockWorkoutRepository creates a new instance of MockWorkoutRepository.
func NewMockWorkoutRepository() *MockWorkoutRepository {
	return &MockWorkoutRepository{
		workouts: make(map[string]models.Workout),
	}
}

// Create adds a new workout.
func (r *MockWorkoutRepository) Create(workout *models.Workout) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if workout.ID == "" {
		workout.ID = uuid.New().String()
	}
	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = time.Now().UTC()
	}
	r.workouts[workout.ID] = *workout
	return nil
}

// GetByOwner returns a workout by ID when it belongs to the given owner.
func (r *MockWorkoutRepository) GetByOwner(userID, id string) (*models.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	workout, ok := r.workouts[id]
	if !ok || workout.UserID != userID {
		return nil, apperror.NewNotFoundError("workout not found", nil)
	}
	return &workout, nil
}

// ListByOwner returns a page of the owner's workouts, newest first, and the
// total count matching the predicate.
func (r *MockWorkoutRepository) ListByOwner(userID, muscleGroup string, limit, offset int) ([]models.Workout, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Workout
	for _, w := range r.workouts {
		if w.UserID != userID {
			continue
		}
		if muscleGroup != "" && w.MuscleGroup != muscleGroup {
			continue
		}
		matched = append(matched, w)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return []models.Workout{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

// Update overwrites an existing workout owned by the same user.
func (r *MockWorkoutRepository) Update(workout *models.Workout) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.workouts[workout.ID]
	if !ok || existing.UserID != workout.UserID {
		return apperror.NewNotFoundError("workout not found", nil)
	}
	// Creation time is immutable.
	workout.CreatedAt = existing.CreatedAt
	r.workouts[workout.ID] = *workout
	return nil
}

// DeleteByOwner removes a workout owned by the given user.
func (r *MockWorkoutRepository) DeleteByOwner(userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	workout, ok := r.workouts[id]
	if !ok || workout.UserID != userID {
		return apperror.NewNotFoundError("workout not found", nil)
	}
	delete(r.workouts, id)
	return nil
}
