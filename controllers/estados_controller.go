package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestioncursos/models"
	"gestioncursos/utils"
)

type StatesController struct {
	DB *gorm.DB
}

func NewStatesController(db *gorm.DB) *StatesController {
	return &StatesController{DB: db}
}

func (sc *StatesController) ListStates(c *fiber.Ctx) error {
	var states []models.State
	if err := sc.DB.Order("id").Find(&states).Error; err != nil {
		return utils.InternalServerError(c, "Could not query states")
	}
	return c.JSON(states)
}
