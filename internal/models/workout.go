package models

import "time"

// Workout represents a single logged workout entry.
type Workout struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID       string    `json:"user_id" gorm:"type:varchar(36);index;not null"`
	ExerciseName string    `json:"exercise_name" gorm:"type:varchar(120);not null"`
	MuscleGroup  string    `json:"muscle_group" gorm:"type:varchar(50);not null"`
	IsCardio     bool      `json:"is_cardio" gorm:"not null"`
	Sets         int       `json:"sets" gorm:"not null"`
	Reps         int       `json:"reps" gorm:"not null"`
	WeightKg     float64   `json:"weight_kg" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

// TotalVolume computes sets * reps * weight for strength workouts.
// Cardio workouts always report zero volume. Derived, never stored.
func (w *Workout) TotalVolume() float64 {
	if w.IsCardio {
		return 0
	}
	return float64(w.Sets*w.Reps) * w.WeightKg
}

// WorkoutResponse is the serialized form of a workout, including the
// computed total volume.
type WorkoutResponse struct {
	ID           string  `json:"id"`
	ExerciseName string  `json:"exercise_name"`
	MuscleGroup  string  `json:"muscle_group"`
	IsCardio     bool    `json:"is_cardio"`
	Sets         int     `json:"sets"`
	Reps         int     `json:"reps"`
	WeightKg     float64 `json:"weight_kg"`
	TotalVolume  float64 `json:"total_volume"`
	CreatedAt    string  `json:"created_at"`
}

// ToResponse serializes the workout. TotalVolume is recomputed here on every
// call so edits to sets/reps/weight/is_cardio are reflected immediately.
func (w *Workout) ToResponse() WorkoutResponse {
	return WorkoutResponse{
		ID:           w.ID,
		ExerciseName: w.ExerciseName,
		MuscleGroup:  w.MuscleGroup,
		IsCardio:     w.IsCardio,
		Sets:         w.Sets,
		Reps:         w.Reps,
		WeightKg:     w.WeightKg,
		TotalVolume:  w.TotalVolume(),
		CreatedAt:    w.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// WorkoutPage is the pagination envelope returned by the list endpoint.
type WorkoutPage struct {
	Workouts    []WorkoutResponse `json:"workouts"`
	TotalPages  int               `json:"total_pages"`
	CurrentPage int               `json:"current_page"`
	HasNext     bool              `json:"has_next"`
	HasPrev     bool              `json:"has_prev"`
}
