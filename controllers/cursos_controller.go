package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestioncursos/models"
	"gestioncursos/utils"
)

var validate = validator.New()

var errHasCycles = errors.New("course has associated cycles")

type CoursesController struct {
	DB *gorm.DB
}

func NewCoursesController(db *gorm.DB) *CoursesController {
	return &CoursesController{DB: db}
}

// CourseInput is the request body for create and update. Updates overwrite
// every field: anything omitted from the body is written back as its zero
// value.
type CourseInput struct {
	Name           string  `json:"name" validate:"required"`
	Description    string  `json:"description"`
	TargetAudience string  `json:"target_audience"`
	DailyHours     float64 `json:"daily_hours"`
	Schedule       string  `json:"schedule"`
	Frequency      string  `json:"frequency"`
	StateID        uint    `json:"state_id"`
}

func (cc *CoursesController) ListCourses(c *fiber.Ctx) error {
	query := cc.DB.Preload("State").Order("id DESC")

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if estado := c.Query("estado"); estado != "" {
		query = query.Where("state_id = ?", estado)
	}

	var courses []models.Course
	if err := query.Find(&courses).Error; err != nil {
		return utils.InternalServerError(c, "Could not query courses")
	}
	return c.JSON(courses)
}

func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course id")
	}

	var course models.Course
	if err := cc.DB.Preload("State").First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}
	return c.JSON(course)
}

func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	var input CourseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	input.Name = strings.TrimSpace(input.Name)

	if err := validate.Struct(input); err != nil {
		return utils.BadRequest(c, "Name is required")
	}
	if input.StateID == 0 {
		input.StateID = models.StateActive
	}

	course := models.Course{
		Name:           input.Name,
		Description:    input.Description,
		TargetAudience: input.TargetAudience,
		DailyHours:     input.DailyHours,
		Schedule:       input.Schedule,
		Frequency:      input.Frequency,
		StateID:        input.StateID,
	}
	if err := cc.DB.Create(&course).Error; err != nil {
		return utils.InternalServerError(c, "Could not create course")
	}

	cc.DB.Preload("State").First(&course, course.ID)
	return c.Status(fiber.StatusCreated).JSON(course)
}

func (cc *CoursesController) UpdateCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course id")
	}

	var course models.Course
	if err := cc.DB.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var input CourseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	input.Name = strings.TrimSpace(input.Name)

	if err := validate.Struct(input); err != nil {
		return utils.BadRequest(c, "Name is required")
	}
	if input.StateID == 0 {
		input.StateID = models.StateActive
	}

	course.Name = input.Name
	course.Description = input.Description
	course.TargetAudience = input.TargetAudience
	course.DailyHours = input.DailyHours
	course.Schedule = input.Schedule
	course.Frequency = input.Frequency
	course.StateID = input.StateID

	if err := cc.DB.Save(&course).Error; err != nil {
		return utils.InternalServerError(c, "Could not update course")
	}

	cc.DB.Preload("State").First(&course, course.ID)
	return c.JSON(course)
}

// DeleteCourse soft-deletes: the row keeps existing, marked cancelled. The
// dependent-cycle check and the update run in one transaction so a cycle
// created concurrently cannot slip past the check.
func (cc *CoursesController) DeleteCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course id")
	}

	err = cc.DB.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.First(&course, id).Error; err != nil {
			return err
		}

		var cycleCount int64
		if err := tx.Model(&models.Cycle{}).Where("course_id = ?", course.ID).Count(&cycleCount).Error; err != nil {
			return err
		}
		if cycleCount > 0 {
			return errHasCycles
		}

		return tx.Model(&course).Updates(map[string]interface{}{
			"state_id":     models.StateCancelled,
			"cancelled_at": time.Now(),
		}).Error
	})

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return utils.NotFound(c, "Course not found")
	case errors.Is(err, errHasCycles):
		return utils.BadRequest(c, "Course has associated cycles")
	case err != nil:
		return utils.InternalServerError(c, "Could not delete course")
	}

	return c.JSON(fiber.Map{"message": "Course deleted"})
}
