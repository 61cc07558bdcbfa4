package services

import (
	"log"
	"time"

	"github.com/paras2003gupta/Workout-Log/internal/models"
	"github.com/paras2003gupta/Workout-Log/internal/repositories"
	"github.com/paras2003gupta/Workout-Log/pkg/rabbitmq"
)

const (
	defaultPage    = 1
	defaultPerPage = 5
)

// WorkoutService handles business logic for workout entries. Every method
// takes the already-authenticated owner's ID and operates only on that
// user's rows.
type WorkoutService struct {
	workoutRepo repositories.WorkoutRepository
	mqClient    *rabbitmq.Client
}

// NewWorkoutService creates a new WorkoutService. mqClient may be nil, in
// which case event publishing is skipped.
func NewWorkoutService(workoutRepo repositories.WorkoutRepository, mqClient *rabbitmq.Client) *WorkoutService {
	return &WorkoutService{
		workoutRepo: workoutRepo,
		mqClient:    mqClient,
	}
}

// Create persists a new workout for the owner and returns the serialized
// record including the computed total volume.
func (s *WorkoutService) Create(ownerID string, req models.CreateWorkoutRequest) (*models.WorkoutResponse, error) {
	workout := &models.Workout{
		UserID:       ownerID,
		ExerciseName: *req.ExerciseName,
		MuscleGroup:  *req.MuscleGroup,
		IsCardio:     *req.IsCardio,
		Sets:         *req.Sets,
		Reps:         *req.Reps,
		WeightKg:     *req.WeightKg,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.workoutRepo.Create(workout); err != nil {
		return nil, err
	}

	s.publishEvent("workout.created", workout)

	resp := workout.ToResponse()
	return &resp, nil
}

// List returns one page of the owner's workouts, newest first, optionally
// filtered by exact muscle group. Out-of-range pages yield an empty list.
func (s *WorkoutService) List(ownerID string, page, perPage int, muscleGroup string) (*models.WorkoutPage, error) {
	if page < 1 {
		page = defaultPage
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}

	offset := (page - 1) * perPage
	workouts, total, err := s.workoutRepo.ListByOwner(ownerID, muscleGroup, perPage, offset)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))

	items := make([]models.WorkoutResponse, 0, len(workouts))
	for i := range workouts {
		items = append(items, workouts[i].ToResponse())
	}

	return &models.WorkoutPage{
		Workouts:    items,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}, nil
}

// Update applies a partial update to a workout owned by the given user.
// Fields absent from the request keep their stored value. The response is
// re-serialized so total volume reflects the new values.
func (s *WorkoutService) Update(ownerID, workoutID string, req models.UpdateWorkoutRequest) (*models.WorkoutResponse, error) {
	workout, err := s.workoutRepo.GetByOwner(ownerID, workoutID)
	if err != nil {
		return nil, err
	}

	if req.ExerciseName != nil {
		workout.ExerciseName = *req.ExerciseName
	}
	if req.MuscleGroup != nil {
		workout.MuscleGroup = *req.MuscleGroup
	}
	if req.IsCardio != nil {
		workout.IsCardio = *req.IsCardio
	}
	if req.Sets != nil {
		workout.Sets = *req.Sets
	}
	if req.Reps != nil {
		workout.Reps = *req.Reps
	}
	if req.WeightKg != nil {
		workout.WeightKg = *req.WeightKg
	}

	if err := s.workoutRepo.Update(workout); err != nil {
		return nil, err
	}

	resp := workout.ToResponse()
	return &resp, nil
}

// Delete removes a workout owned by the given user.
func (s *WorkoutService) Delete(ownerID, workoutID string) error {
	if err := s.workoutRepo.DeleteByOwner(ownerID, workoutID); err != nil {
		return err
	}

	s.publishEvent("workout.deleted", &models.Workout{ID: workoutID, UserID: ownerID})
	return nil
}

// publishEvent emits a workout lifecycle event. Publish failures are logged
// and never fail the request.
func (s *WorkoutService) publishEvent(event string, workout *models.Workout) {
	if s.mqClient == nil {
		return
	}
	err := s.mqClient.PublishWorkoutEvent(rabbitmq.WorkoutEvent{
		Event:     event,
		WorkoutID: workout.ID,
		UserID:    workout.UserID,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("Warning: failed to publish %s event for workout %s: %v", event, workout.ID, err)
	}
}
