package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nexthire/models"
	"nexthire/utils"
)

type OutreachController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewOutreachController(db *gorm.DB, logger *log.Logger) *OutreachController {
	return &OutreachController{
		DB:     db,
		Logger: logger,
	}
}

type CreateThreadInput struct {
	ContactName string `json:"contact_name" validate:"required,min=1,max=200"`
	JobTitle    string `json:"job_title" validate:"max=200"`
	Company     string `json:"company" validate:"max=200"`
	HasDraft    bool   `json:"has_draft"`
}

type UpdateThreadInput struct {
	Status   *string `json:"status"`
	HasDraft *bool   `json:"has_draft"`
}

// GetThreads lists the user's outreach threads, most recently active
// first.
func (oc *OutreachController) GetThreads(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	query := oc.DB.Where("user_id = ?", user.ID)
	if status := c.Query("status"); status != "" {
		if !models.ValidThreadStatus(status) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown thread status", nil)
		}
		query = query.Where("status = ?", status)
	}

	var threads []models.OutreachThread
	if err := query.Order("last_activity_at DESC NULLS LAST").Find(&threads).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to get threads", err)
	}

	return c.JSON(utils.SuccessResponse(threads))
}

// CreateThread starts a new outreach thread and logs an outreach_sent
// activity.
func (oc *OutreachController) CreateThread(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var input CreateThreadInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	now := time.Now()
	thread := models.OutreachThread{
		UserID:         user.ID,
		PublicID:       uuid.NewString(),
		ContactName:    input.ContactName,
		JobTitle:       input.JobTitle,
		Company:        input.Company,
		Status:         models.ThreadNoReplyYet,
		HasDraft:       input.HasDraft,
		LastActivityAt: &now,
	}

	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&thread).Error; err != nil {
			return err
		}
		return tx.Create(&models.Activity{
			UserID:     user.ID,
			Type:       models.ActivityOutreachSent,
			Summary:    fmt.Sprintf("Reached out to %s", thread.ContactName),
			OccurredAt: now,
		}).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create thread", err)
	}

	oc.Logger.Printf("created outreach thread %s for user %d", thread.PublicID, user.ID)
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(thread))
}

// UpdateThread changes a thread's status or draft flag. Any change
// bumps the activity timestamp.
func (oc *OutreachController) UpdateThread(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	publicID := c.Params("id")

	var thread models.OutreachThread
	if err := oc.DB.Where("public_id = ? AND user_id = ?", publicID, user.ID).First(&thread).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Thread not found", err)
	}

	var input UpdateThreadInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if input.Status != nil {
		if !models.ValidThreadStatus(*input.Status) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown thread status", nil)
		}
		thread.Status = *input.Status
	}
	if input.HasDraft != nil {
		thread.HasDraft = *input.HasDraft
	}

	now := time.Now()
	thread.LastActivityAt = &now

	if err := oc.DB.Save(&thread).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update thread", err)
	}

	return c.JSON(utils.SuccessResponse(thread))
}

// ArchiveThread removes a thread from the follow-up pipeline without
// deleting its history.
func (oc *OutreachController) ArchiveThread(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	publicID := c.Params("id")

	var thread models.OutreachThread
	if err := oc.DB.Where("public_id = ? AND user_id = ?", publicID, user.ID).First(&thread).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Thread not found", err)
	}

	now := time.Now()
	thread.Status = models.ThreadArchived
	thread.LastActivityAt = &now

	if err := oc.DB.Save(&thread).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to archive thread", err)
	}

	return c.JSON(utils.SuccessResponse(thread))
}
