package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nexthire/engine"
	"nexthire/models"
	"nexthire/utils"
)

type GoalController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewGoalController(db *gorm.DB, logger *log.Logger) *GoalController {
	return &GoalController{
		DB:     db,
		Logger: logger,
	}
}

type CreateGoalInput struct {
	Type   string `json:"type" validate:"required,oneof=contacts firms coffee_chats outreach"`
	Target int    `json:"target" validate:"required,min=1,max=1000"`
	Period string `json:"period" validate:"required,oneof=weekly monthly"`
}

// GetGoals lists the user's goals for the current week, seeding the
// defaults on first visit.
func (gc *GoalController) GetGoals(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	start, end := engine.WeekWindow(time.Now())

	var goals []models.Goal
	if err := gc.DB.Where("user_id = ? AND start_date < ? AND end_date > ?", user.ID, end, start).
		Find(&goals).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to get goals", err)
	}

	if len(goals) == 0 {
		goals = models.DefaultGoals(user.ID, start, end)
		if err := gc.DB.Create(&goals).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to seed default goals", err)
		}
		gc.Logger.Printf("seeded default goals for user %d", user.ID)
	}

	return c.JSON(utils.SuccessResponse(goals))
}

// CreateGoal adds a custom goal covering the current period.
func (gc *GoalController) CreateGoal(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var input CreateGoalInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	now := time.Now()
	var start, end time.Time
	if input.Period == models.PeriodMonthly {
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end = start.AddDate(0, 1, 0)
	} else {
		start, end = engine.WeekWindow(now)
	}

	goal := models.Goal{
		UserID:    user.ID,
		Type:      input.Type,
		Target:    input.Target,
		Period:    input.Period,
		StartDate: start,
		EndDate:   end,
	}

	if err := gc.DB.Create(&goal).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create goal", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(goal))
}

// UpdateGoal changes a goal's target.
func (gc *GoalController) UpdateGoal(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	goalID := utils.ParseUint(c.Params("id"))

	var goal models.Goal
	if err := gc.DB.Where("id = ? AND user_id = ?", goalID, user.ID).First(&goal).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Goal not found", err)
	}

	var input struct {
		Target int `json:"target" validate:"required,min=1,max=1000"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	goal.Target = input.Target
	if err := gc.DB.Save(&goal).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update goal", err)
	}

	return c.JSON(utils.SuccessResponse(goal))
}

// GetGoalProgress returns each active goal with its progress toward the
// target.
func (gc *GoalController) GetGoalProgress(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var goals []models.Goal
	now := time.Now()
	if err := gc.DB.Where("user_id = ? AND start_date <= ? AND end_date >= ?", user.ID, now, now).
		Find(&goals).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to get goals", err)
	}

	var activities []models.Activity
	if err := gc.DB.Where("user_id = ?", user.ID).
		Order("occurred_at DESC").
		Limit(1000).
		Find(&activities).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to get activities", err)
	}

	return c.JSON(utils.SuccessResponse(engine.ComputeGoalProgress(goals, activities)))
}
