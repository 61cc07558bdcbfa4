package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/paras2003gupta/Workout-Log/internal/models"
	"github.com/paras2003gupta/Workout-Log/internal/services"
)

// WorkoutHandler handles HTTP requests for workout entries. All routes are
// registered behind the auth middleware, which stores the verified user in
// the request locals.
type WorkoutHandler struct {
	workoutService *services.WorkoutService
	validate       *validator.Validate
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService *services.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{
		workoutService: workoutService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the workout routes with the given router group.
func (h *WorkoutHandler) RegisterRoutes(router fiber.Router) {
	workoutRoutes := router.Group("/workouts")
	workoutRoutes.Post("/", h.HandleCreateWorkout)
	workoutRoutes.Get("/", h.HandleListWorkouts)
	workoutRoutes.Put("/:id", h.HandleUpdateWorkout)
	workoutRoutes.Delete("/:id", h.HandleDeleteWorkout)
}

// currentUserID reads the authenticated user's ID placed by the middleware.
func currentUserID(c *fiber.Ctx) string {
	if id, ok := c.Locals("user_id").(string); ok {
		return id
	}
	return ""
}

// HandleCreateWorkout creates a new workout for the authenticated user.
func (h *WorkoutHandler) HandleCreateWorkout(c *fiber.Ctx) error {
	var req models.CreateWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create workout request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing required fields",
		})
	}

	workout, err := h.workoutService.Create(currentUserID(c), req)
	if err != nil {
		log.Printf("Error creating workout: %v", err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(workout)
}

// HandleListWorkouts returns one page of the authenticated user's workouts.
// Query params: page (default 1), per_page (default 5), muscle_group
// (optional exact-match filter).
func (h *WorkoutHandler) HandleListWorkouts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 5)
	muscleGroup := c.Query("muscle_group")

	result, err := h.workoutService.List(currentUserID(c), page, perPage, muscleGroup)
	if err != nil {
		log.Printf("Error listing workouts: %v", err)
		return respondError(c, err)
	}

	return c.JSON(result)
}

// HandleUpdateWorkout applies a partial update to one of the authenticated
// user's workouts.
func (h *WorkoutHandler) HandleUpdateWorkout(c *fiber.Ctx) error {
	workoutID := c.Params("id")

	var req models.UpdateWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update workout request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid field values",
		})
	}

	workout, err := h.workoutService.Update(currentUserID(c), workoutID, req)
	if err != nil {
		log.Printf("Error updating workout %s: %v", workoutID, err)
		return respondError(c, err)
	}

	return c.JSON(workout)
}

// HandleDeleteWorkout deletes one of the authenticated user's workouts.
func (h *WorkoutHandler) HandleDeleteWorkout(c *fiber.Ctx) error {
	workoutID := c.Params("id")

	if err := h.workoutService.Delete(currentUserID(c), workoutID); err != nil {
		log.Printf("Error deleting workout %s: %v", workoutID, err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Workout deleted successfully",
	})
}
