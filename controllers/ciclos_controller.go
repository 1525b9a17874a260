package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestioncursos/models"
	"gestioncursos/utils"
)

type CyclesController struct {
	DB *gorm.DB
}

func NewCyclesController(db *gorm.DB) *CyclesController {
	return &CyclesController{DB: db}
}

// CycleInput mirrors CourseInput: updates overwrite every field.
type CycleInput struct {
	CourseID       uint       `json:"course_id" validate:"required"`
	Name           string     `json:"name" validate:"required"`
	RegularPrice   float64    `json:"regular_price"`
	PromoPrice     float64    `json:"promo_price"`
	ClassStartDate *time.Time `json:"class_start_date"`
	ClassEndDate   *time.Time `json:"class_end_date"`
	TotalDuration  string     `json:"total_duration"`
	StateID        uint       `json:"state_id"`
}

func (cc *CyclesController) ListCycles(c *fiber.Ctx) error {
	// Inner join: a cycle without a live parent course never shows up.
	query := cc.DB.InnerJoins("Course").Preload("State").Order("cycles.course_id DESC")

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(cycles.name) LIKE ?", pattern)
	}
	if idcurso := c.Query("idcurso"); idcurso != "" {
		query = query.Where("cycles.course_id = ?", idcurso)
	}
	if estado := c.Query("estado"); estado != "" {
		query = query.Where("cycles.state_id = ?", estado)
	}

	var cycles []models.Cycle
	if err := query.Find(&cycles).Error; err != nil {
		return utils.InternalServerError(c, "Could not query cycles")
	}
	return c.JSON(cycles)
}

func (cc *CyclesController) GetCycle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid cycle id")
	}

	var cycle models.Cycle
	if err := cc.DB.Preload("Course").Preload("State").First(&cycle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Cycle not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}
	return c.JSON(cycle)
}

func (cc *CyclesController) CreateCycle(c *fiber.Ctx) error {
	var input CycleInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	input.Name = strings.TrimSpace(input.Name)

	if err := validate.Struct(input); err != nil {
		return utils.BadRequest(c, "Course id and name are required")
	}

	// Explicit parent check so the caller gets a clear message instead of a
	// foreign-key error.
	var parentCount int64
	if err := cc.DB.Model(&models.Course{}).Where("id = ?", input.CourseID).Count(&parentCount).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if parentCount == 0 {
		return utils.BadRequest(c, "Course does not exist")
	}

	if input.StateID == 0 {
		input.StateID = models.StateActive
	}

	cycle := models.Cycle{
		CourseID:       input.CourseID,
		Name:           input.Name,
		RegularPrice:   input.RegularPrice,
		PromoPrice:     input.PromoPrice,
		ClassStartDate: input.ClassStartDate,
		ClassEndDate:   input.ClassEndDate,
		TotalDuration:  input.TotalDuration,
		StateID:        input.StateID,
	}
	if err := cc.DB.Create(&cycle).Error; err != nil {
		return utils.InternalServerError(c, "Could not create cycle")
	}

	cc.DB.Preload("Course").Preload("State").First(&cycle, cycle.ID)
	return c.Status(fiber.StatusCreated).JSON(cycle)
}

func (cc *CyclesController) UpdateCycle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid cycle id")
	}

	var cycle models.Cycle
	if err := cc.DB.First(&cycle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Cycle not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var input CycleInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	input.Name = strings.TrimSpace(input.Name)

	if err := validate.Struct(input); err != nil {
		return utils.BadRequest(c, "Course id and name are required")
	}

	if input.CourseID != cycle.CourseID {
		var parentCount int64
		if err := cc.DB.Model(&models.Course{}).Where("id = ?", input.CourseID).Count(&parentCount).Error; err != nil {
			return utils.InternalServerError(c, "Could not query database")
		}
		if parentCount == 0 {
			return utils.BadRequest(c, "Course does not exist")
		}
	}
	if input.StateID == 0 {
		input.StateID = models.StateActive
	}

	cycle.CourseID = input.CourseID
	cycle.Name = input.Name
	cycle.RegularPrice = input.RegularPrice
	cycle.PromoPrice = input.PromoPrice
	cycle.ClassStartDate = input.ClassStartDate
	cycle.ClassEndDate = input.ClassEndDate
	cycle.TotalDuration = input.TotalDuration
	cycle.StateID = input.StateID

	if err := cc.DB.Save(&cycle).Error; err != nil {
		return utils.InternalServerError(c, "Could not update cycle")
	}

	cc.DB.Preload("Course").Preload("State").First(&cycle, cycle.ID)
	return c.JSON(cycle)
}

// DeleteCycle soft-deletes unconditionally; cycles have no dependents.
func (cc *CyclesController) DeleteCycle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid cycle id")
	}

	var cycle models.Cycle
	if err := cc.DB.First(&cycle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Cycle not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	err = cc.DB.Model(&cycle).Updates(map[string]interface{}{
		"state_id":     models.StateCancelled,
		"cancelled_at": time.Now(),
	}).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not delete cycle")
	}

	return c.JSON(fiber.Map{"message": "Cycle deleted"})
}
