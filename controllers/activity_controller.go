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

type ActivityController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewActivityController(db *gorm.DB, logger *log.Logger) *ActivityController {
	return &ActivityController{
		DB:     db,
		Logger: logger,
	}
}

type CreateActivityInput struct {
	Type       string     `json:"type" validate:"required,oneof=contact_added firm_added coffee_chat outreach_sent"`
	Summary    string     `json:"summary" validate:"max=500"`
	OccurredAt *time.Time `json:"occurred_at"`
}

// ActivityView is an activity decorated with a human-readable age.
type ActivityView struct {
	models.Activity
	Elapsed string `json:"elapsed"`
}

// GetActivities lists recent activities with relative timestamps.
func (ac *ActivityController) GetActivities(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 500 {
		limit = 50
	}

	var activities []models.Activity
	if err := ac.DB.Where("user_id = ?", user.ID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&activities).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to get activities", err)
	}

	now := time.Now()
	views := make([]ActivityView, 0, len(activities))
	for _, a := range activities {
		occurred := a.OccurredAt
		views = append(views, ActivityView{
			Activity: a,
			Elapsed:  engine.ElapsedLabel(&occurred, now),
		})
	}

	return c.JSON(utils.SuccessResponse(views))
}

// CreateActivity logs a manual activity, such as a coffee chat the user
// scheduled outside the app.
func (ac *ActivityController) CreateActivity(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var input CreateActivityInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	occurredAt := time.Now()
	if input.OccurredAt != nil {
		occurredAt = *input.OccurredAt
	}

	activity := models.Activity{
		UserID:     user.ID,
		Type:       input.Type,
		Summary:    input.Summary,
		OccurredAt: occurredAt,
	}

	if err := ac.DB.Create(&activity).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create activity", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(activity))
}
