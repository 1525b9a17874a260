package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestioncursos/models"
	"gestioncursos/utils"
)

type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

type statsResponse struct {
	ActiveCourses    int64 `json:"active_courses"`
	ActiveCycles     int64 `json:"active_cycles"`
	UpcomingCycles   int64 `json:"upcoming_cycles"`
	InProgressCycles int64 `json:"in_progress_cycles"`
}

// GetStats runs four independent counts, computed fresh per request. The
// counts are not taken under one snapshot; a mutation racing between them can
// skew the dashboard by one, which is acceptable here.
func (sc *StatsController) GetStats(c *fiber.Ctx) error {
	var stats statsResponse

	now := time.Now()
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	horizon := today.AddDate(0, 0, 30)

	if err := sc.DB.Model(&models.Course{}).
		Where("state_id = ?", models.StateActive).
		Count(&stats.ActiveCourses).Error; err != nil {
		return utils.InternalServerError(c, "Could not compute statistics")
	}

	if err := sc.DB.Model(&models.Cycle{}).
		Where("state_id = ?", models.StateActive).
		Count(&stats.ActiveCycles).Error; err != nil {
		return utils.InternalServerError(c, "Could not compute statistics")
	}

	if err := sc.DB.Model(&models.Cycle{}).
		Where("state_id = ? AND class_start_date BETWEEN ? AND ?", models.StateActive, today, horizon).
		Count(&stats.UpcomingCycles).Error; err != nil {
		return utils.InternalServerError(c, "Could not compute statistics")
	}

	if err := sc.DB.Model(&models.Cycle{}).
		Where("state_id = ? AND class_start_date <= ? AND class_end_date >= ?", models.StateActive, now, now).
		Count(&stats.InProgressCycles).Error; err != nil {
		return utils.InternalServerError(c, "Could not compute statistics")
	}

	return c.JSON(stats)
}
