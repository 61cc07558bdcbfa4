package models

// RegisterRequest is the request body for user registration.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateWorkoutRequest is the request body for creating a workout.
// Pointer fields distinguish an absent field from a zero value, so
// e.g. "is_cardio": false still counts as present.
type CreateWorkoutRequest struct {
	ExerciseName *string  `json:"exercise_name" validate:"required,min=1,max=120"`
	MuscleGroup  *string  `json:"muscle_group" validate:"required,min=1,max=50"`
	IsCardio     *bool    `json:"is_cardio" validate:"required"`
	Sets         *int     `json:"sets" validate:"required,gte=0"`
	Reps         *int     `json:"reps" validate:"required,gte=0"`
	WeightKg     *float64 `json:"weight_kg" validate:"required,gte=0"`
}

// UpdateWorkoutRequest is the request body for a partial update. Nil fields
// keep their stored value.
type UpdateWorkoutRequest struct {
	ExerciseName *string  `json:"exercise_name" validate:"omitempty,min=1,max=120"`
	MuscleGroup  *string  `json:"muscle_group" validate:"omitempty,min=1,max=50"`
	IsCardio     *bool    `json:"is_cardio"`
	Sets         *int     `json:"sets" validate:"omitempty,gte=0"`
	Reps         *int     `json:"reps" validate:"omitempty,gte=0"`
	WeightKg     *float64 `json:"weight_kg" validate:"omitempty,gte=0"`
}
