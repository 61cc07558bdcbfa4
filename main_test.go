package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paras2003gupta/Workout-Log/internal/middleware"
	"github.com/paras2003gupta/Workout-Log/internal/repositories"
	"github.com/paras2003gupta/Workout-Log/internal/services"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// TestBuildAppSmoke wires the app over the in-memory repositories and walks
// the happy path end to end: health, register, login, create, list.
func TestBuildAppSmoke(t *testing.T) {
	v := viper.New()
	v.SetDefault("JWT_SECRET", "test_jwt_secret")
	v.AutomaticEnv()

	userRepo := repositories.NewMockUserRepository()
	workoutRepo := repositories.NewMockWorkoutRepository()

	authService := services.NewAuthService(userRepo, v.GetString("JWT_SECRET"))
	workoutService := services.NewWorkoutService(workoutRepo, nil)

	app := buildApp(authService, workoutService)

	// Health check
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Protected routes fail closed without a token
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/workouts", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Register and login
	creds, _ := json.Marshal(map[string]string{"username": "smoke", "password": "password123"})

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(creds))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	req = httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(creds))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var loginResp map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginResp))
	resp.Body.Close()
	token := loginResp["token"]
	require.NotEmpty(t, token)

	// Create a workout
	workoutBody, _ := json.Marshal(map[string]interface{}{
		"exercise_name": "Squat",
		"muscle_group":  "Legs",
		"is_cardio":     false,
		"sets":          5,
		"reps":          5,
		"weight_kg":     100.0,
	})
	req = httptest.NewRequest(http.MethodPost, "/api/workouts", bytes.NewReader(workoutBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.TokenHeader, token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var created map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	assert.Equal(t, float64(2500), created["total_volume"])

	// List it back
	req = httptest.NewRequest(http.MethodGet, "/api/workouts", nil)
	req.Header.Set(middleware.TokenHeader, token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var page map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	resp.Body.Close()
	assert.Equal(t, float64(1), page["total_pages"])
	assert.Len(t, page["workouts"], 1)
}

func TestOpenDatabaseDriverSelection(t *testing.T) {
	// A plain path is treated as a sqlite file
	db, err := openDatabase("file::memory:?cache=shared")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", db.Dialector.Name())
}
