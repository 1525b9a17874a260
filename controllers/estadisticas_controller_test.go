package controllers_test

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"gestioncursos/models"
)

func TestGetStats(t *testing.T) {
	f := newFixture(t)
	token := f.login(t)

	course := models.Course{Name: "Active course", StateID: models.StateActive}
	f.db.Create(&course)
	f.db.Create(&models.Course{Name: "Cancelled course", StateID: models.StateCancelled})

	soon := time.Now().AddDate(0, 0, 10)
	started := time.Now().AddDate(0, 0, -1)
	ends := time.Now().AddDate(0, 0, 20)
	farOut := time.Now().AddDate(0, 0, 60)

	// one upcoming, one in progress, one active but outside the 30-day window
	f.db.Create(&models.Cycle{CourseID: course.ID, Name: "upcoming", StateID: models.StateActive, ClassStartDate: &soon})
	f.db.Create(&models.Cycle{CourseID: course.ID, Name: "running", StateID: models.StateActive, ClassStartDate: &started, ClassEndDate: &ends})
	f.db.Create(&models.Cycle{CourseID: course.ID, Name: "distant", StateID: models.StateActive, ClassStartDate: &farOut})
	f.db.Create(&models.Cycle{CourseID: course.ID, Name: "cancelled", StateID: models.StateCancelled, ClassStartDate: &soon})

	resp := f.request(t, "GET", "/api/estadisticas", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.Equal(t, float64(1), result["active_courses"])
	assert.Equal(t, float64(3), result["active_cycles"])
	assert.Equal(t, float64(1), result["upcoming_cycles"])
	assert.Equal(t, float64(1), result["in_progress_cycles"])
}

func TestGetStatsEmptyDatabase(t *testing.T) {
	f := newFixture(t)
	token := f.login(t)

	resp := f.request(t, "GET", "/api/estadisticas", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.Equal(t, float64(0), result["active_courses"])
	assert.Equal(t, float64(0), result["active_cycles"])
	assert.Equal(t, float64(0), result["upcoming_cycles"])
	assert.Equal(t, float64(0), result["in_progress_cycles"])
}

func TestListStates(t *testing.T) {
	f := newFixture(t)
	token := f.login(t)

	resp := f.request(t, "GET", "/api/estados", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeList(t, resp)
	assert.Len(t, result, 5)
	assert.Equal(t, "Active", result[0]["name"])
	assert.Equal(t, "Cancelled", result[2]["name"])
}
